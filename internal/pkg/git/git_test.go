// Copyright (c) Contributors to the Apptainer project, established as
//   Apptainer a Series of LF Projects LLC.
//   For website terms of use, trademark policy, privacy policy and other
//   project policies see https://lfprojects.org/policies
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package git

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// testRepo is a throwaway git repository with a single tracked file.
type testRepo struct {
	t    *testing.T
	dir  string
	r    *git.Repository
	w    *git.Worktree
	when time.Time
}

func newTestRepo(t *testing.T) *testRepo {
	t.Helper()

	dir := t.TempDir()

	r, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatal(err)
	}

	w, err := r.Worktree()
	if err != nil {
		t.Fatal(err)
	}

	return &testRepo{
		t:    t,
		dir:  dir,
		r:    r,
		w:    w,
		when: time.Date(2021, time.March, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (tr *testRepo) signature() *object.Signature {
	return &object.Signature{
		Name:  "Test",
		Email: "test@example.com",
		When:  tr.when,
	}
}

func (tr *testRepo) writeFile(name, content string) {
	tr.t.Helper()

	if err := os.WriteFile(filepath.Join(tr.dir, name), []byte(content), 0o644); err != nil {
		tr.t.Fatal(err)
	}
}

// commit writes content to the tracked file and commits it.
func (tr *testRepo) commit(content string) plumbing.Hash {
	tr.t.Helper()

	tr.writeFile("file.txt", content)

	if _, err := tr.w.Add("file.txt"); err != nil {
		tr.t.Fatal(err)
	}

	tr.when = tr.when.Add(time.Minute)

	h, err := tr.w.Commit(content, &git.CommitOptions{
		Author:    tr.signature(),
		Committer: tr.signature(),
	})
	if err != nil {
		tr.t.Fatal(err)
	}
	return h
}

func (tr *testRepo) lightweightTag(name string, h plumbing.Hash) {
	tr.t.Helper()

	if _, err := tr.r.CreateTag(name, h, nil); err != nil {
		tr.t.Fatal(err)
	}
}

func (tr *testRepo) annotatedTag(name string, h plumbing.Hash) {
	tr.t.Helper()

	_, err := tr.r.CreateTag(name, h, &git.CreateTagOptions{
		Tagger:  tr.signature(),
		Message: name,
	})
	if err != nil {
		tr.t.Fatal(err)
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name           string
		setup          func(tr *testRepo) plumbing.Hash
		wantDescrErr   error
		wantVersionErr error
		wantTag        string
		wantClean      bool
		wantDescr      func(h plumbing.Hash) string
		wantVersion    string
	}{
		{
			name: "NoTags",
			setup: func(tr *testRepo) plumbing.Hash {
				return tr.commit("one")
			},
			wantDescrErr:   errAnnotatedTagNotFound,
			wantVersionErr: errTagNotFound,
			wantClean:      true,
		},
		{
			name: "LightweightNonSemverTag",
			setup: func(tr *testRepo) plumbing.Hash {
				h := tr.commit("one")
				tr.lightweightTag("release", h)
				return h
			},
			wantDescrErr:   errAnnotatedTagNotFound,
			wantVersionErr: errTagNotFound,
			wantClean:      true,
		},
		{
			name: "AnnotatedNonSemverTag",
			setup: func(tr *testRepo) plumbing.Hash {
				tr.annotatedTag("release", tr.commit("one"))
				return tr.commit("two")
			},
			wantVersionErr: errTagNotFound,
			wantTag:        "release",
			wantClean:      true,
			wantDescr: func(h plumbing.Hash) string {
				return "release-1-g" + h.String()[:7]
			},
		},
		{
			name: "LightweightTagged",
			setup: func(tr *testRepo) plumbing.Hash {
				h := tr.commit("one")
				tr.lightweightTag("1.2.3", h)
				return h
			},
			wantDescrErr: errAnnotatedTagNotFound,
			wantClean:    true,
			wantVersion:  "1.2.3",
		},
		{
			name: "AnnotatedTagged",
			setup: func(tr *testRepo) plumbing.Hash {
				h := tr.commit("one")
				tr.annotatedTag("v2.0", h)
				return h
			},
			wantTag:     "v2.0",
			wantClean:   true,
			wantDescr:   func(plumbing.Hash) string { return "v2.0" },
			wantVersion: "2.0.0",
		},
		{
			name: "Commits",
			setup: func(tr *testRepo) plumbing.Hash {
				tr.annotatedTag("1.2.3", tr.commit("one"))
				tr.commit("two")
				return tr.commit("three")
			},
			wantTag:   "1.2.3",
			wantClean: true,
			wantDescr: func(h plumbing.Hash) string {
				return "1.2.3-2-g" + h.String()[:7]
			},
			wantVersion: "1.2.4-0.devel.2",
		},
		{
			name: "NearestTag",
			setup: func(tr *testRepo) plumbing.Hash {
				tr.annotatedTag("1.0.0", tr.commit("one"))
				tr.annotatedTag("1.1.0", tr.commit("two"))
				return tr.commit("three")
			},
			wantTag:   "1.1.0",
			wantClean: true,
			wantDescr: func(h plumbing.Hash) string {
				return "1.1.0-1-g" + h.String()[:7]
			},
			wantVersion: "1.1.1-0.devel.1",
		},
		{
			name: "LightweightTagNearer",
			setup: func(tr *testRepo) plumbing.Hash {
				tr.annotatedTag("1.0.0", tr.commit("one"))
				tr.lightweightTag("1.1.0", tr.commit("two"))
				return tr.commit("three")
			},
			wantTag:   "1.0.0",
			wantClean: true,
			wantDescr: func(h plumbing.Hash) string {
				return "1.0.0-2-g" + h.String()[:7]
			},
			wantVersion: "1.1.1-0.devel.1",
		},
		{
			name: "Modified",
			setup: func(tr *testRepo) plumbing.Hash {
				h := tr.commit("one")
				tr.annotatedTag("1.2.3", h)
				tr.writeFile("file.txt", "changed")
				return h
			},
			wantTag:     "1.2.3",
			wantDescr:   func(plumbing.Hash) string { return "1.2.3+" },
			wantVersion: "1.2.3",
		},
		{
			name: "ModifiedCommits",
			setup: func(tr *testRepo) plumbing.Hash {
				tr.annotatedTag("1.2.3", tr.commit("one"))
				h := tr.commit("two")
				tr.writeFile("file.txt", "changed")
				return h
			},
			wantTag: "1.2.3",
			wantDescr: func(h plumbing.Hash) string {
				return "1.2.3-1-g" + h.String()[:7] + "+"
			},
			wantVersion: "1.2.4-0.devel.1",
		},
		{
			name: "Untracked",
			setup: func(tr *testRepo) plumbing.Hash {
				h := tr.commit("one")
				tr.annotatedTag("1.2.3", h)
				tr.writeFile("untracked.txt", "new")
				return h
			},
			wantTag:     "1.2.3",
			wantClean:   true,
			wantDescr:   func(plumbing.Hash) string { return "1.2.3" },
			wantVersion: "1.2.3",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTestRepo(t)
			h := tt.setup(tr)

			d, err := Describe(tr.dir)
			if err != nil {
				t.Fatal(err)
			}

			if got, want := d.IsClean(), tt.wantClean; got != want {
				t.Errorf("got clean %v, want %v", got, want)
			}
			if got, want := d.CommitHash(), h.String(); got != want {
				t.Errorf("got hash %v, want %v", got, want)
			}
			if got, want := d.CommitTime(), tr.when; !got.Equal(want) {
				t.Errorf("got commit time %v, want %v", got, want)
			}
			if got, want := d.Tag(), tt.wantTag; got != want {
				t.Errorf("got tag %v, want %v", got, want)
			}

			descr, err := d.Descriptor()
			if got, want := err, tt.wantDescrErr; !errors.Is(got, want) {
				t.Errorf("got descriptor error %v, want %v", got, want)
			} else if err == nil {
				if got, want := descr, tt.wantDescr(h); got != want {
					t.Errorf("got descriptor %v, want %v", got, want)
				}
			}

			v, err := d.Version()
			if got, want := err, tt.wantVersionErr; !errors.Is(got, want) {
				t.Errorf("got version error %v, want %v", got, want)
			} else if err == nil {
				if got, want := v.String(), tt.wantVersion; got != want {
					t.Errorf("got version %v, want %v", got, want)
				}
			}
		})
	}
}

func TestDescribe_NotRepository(t *testing.T) {
	if _, err := Describe(t.TempDir()); !errors.Is(err, git.ErrRepositoryNotExists) {
		t.Errorf("got error %v, want %v", err, git.ErrRepositoryNotExists)
	}
}

func TestDescribeCommand(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git executable not found")
	}

	tests := []struct {
		name    string
		setup   func(tr *testRepo)
		wantErr bool
	}{
		{
			name: "AnnotatedModified",
			setup: func(tr *testRepo) {
				tr.annotatedTag("1.0.0", tr.commit("one"))
				tr.commit("two")
				tr.writeFile("file.txt", "changed")
			},
		},
		{
			name: "AnnotatedNonSemver",
			setup: func(tr *testRepo) {
				tr.annotatedTag("release", tr.commit("one"))
				tr.commit("two")
			},
		},
		{
			name: "LightweightOnly",
			setup: func(tr *testRepo) {
				tr.lightweightTag("1.0.0", tr.commit("one"))
				tr.commit("two")
			},
			wantErr: true,
		},
		{
			name: "LightweightNearer",
			setup: func(tr *testRepo) {
				tr.annotatedTag("1.0.0", tr.commit("one"))
				tr.lightweightTag("1.1.0", tr.commit("two"))
				tr.commit("three")
			},
		},
		{
			name: "NoTags",
			setup: func(tr *testRepo) {
				tr.commit("one")
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTestRepo(t)
			tt.setup(tr)

			d, err := Describe(tr.dir)
			if err != nil {
				t.Fatal(err)
			}

			want, wantErr := d.Descriptor()
			got, gotErr := DescribeCommand(tr.dir)

			if (gotErr != nil) != tt.wantErr {
				t.Fatalf("got git error %v, want error %v", gotErr, tt.wantErr)
			}
			if (wantErr != nil) != tt.wantErr {
				t.Fatalf("got descriptor error %v, want error %v", wantErr, tt.wantErr)
			}

			if got != want {
				t.Errorf("got %q, want %q", got, want)
			}
		})
	}
}
