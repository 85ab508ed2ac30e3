// Copyright (c) Contributors to the Apptainer project, established as
//   Apptainer a Series of LF Projects LLC.
//   For website terms of use, trademark policy, privacy policy and other
//   project policies see https://lfprojects.org/policies
// Copyright (c) 2021, Sylabs Inc. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package git

import (
	"errors"
	"fmt"
	"time"

	"github.com/blang/semver/v4"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
	"github.com/magefile/mage/sh"
)

// abbrevLen is the number of hex digits used to abbreviate a commit hash.
const abbrevLen = 7

// tag is a tag that holds a semantic version.
type tag struct {
	name string
	v    semver.Version
}

// tagSet contains the tags of a repository, keyed by the hash of the commit they refer to.
type tagSet struct {
	annotated map[plumbing.Hash]string // annotated tags, whatever their name
	versions  map[plumbing.Hash]tag    // annotated and lightweight tags holding semantic versions
}

// getTags returns the tags of r.
func getTags(r *git.Repository) (*tagSet, error) {
	// Get a list of tags. Note that we cannot use r.TagObjects() directly, since that returns
	// objects that are not referenced (for example, deleted tags.)
	iter, err := r.Tags()
	if err != nil {
		return nil, err
	}

	tags := tagSet{
		annotated: make(map[plumbing.Hash]string),
		versions:  make(map[plumbing.Hash]tag),
	}

	err = iter.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().Short()

		target := ref.Hash() // lightweight tag
		obj, err := r.TagObject(ref.Hash())
		switch {
		case err == nil:
			target = obj.Target // annotated tag
			tags.annotated[target] = name
		case errors.Is(err, plumbing.ErrObjectNotFound):
		default:
			return err
		}

		// Select tags that contain a valid semantic version.
		if v, err := semver.ParseTolerant(name); err == nil {
			tags.versions[target] = tag{name, v}
		}
		return nil
	})
	return &tags, err
}

// isModified reports whether s contains changes to tracked files. Untracked files are not
// considered.
func isModified(s git.Status) bool {
	for _, fs := range s {
		if fs.Worktree == git.Untracked {
			continue
		}
		if fs.Staging != git.Unmodified || fs.Worktree != git.Unmodified {
			return true
		}
	}
	return false
}

// Description describes the state of a git repository.
type Description struct {
	isClean bool            // if true, tracked files in the working tree are unmodified
	c       *object.Commit  // commit being described
	tag     string          // name of nearest annotated tag reachable from commit (or empty if none found)
	tagN    uint64          // commits between nearest annotated tag and commit (if tag is non-empty)
	v       *semver.Version // version of nearest semver tag reachable from commit (or nil if none found)
	n       uint64          // commits between nearest semver tag and commit (if v is non-nil)
}

// describe returns a Description of commit c.
func describe(r *git.Repository, c *object.Commit) (*Description, error) {
	d := Description{c: c}

	tags, err := getTags(r)
	if err != nil {
		return nil, err
	}

	// Get commit log.
	logIter, err := r.Log(&git.LogOptions{
		Order: git.LogOrderCommitterTime,
		From:  c.Hash,
	})
	if err != nil {
		return nil, err
	}

	// Iterate through commit log until we find both an annotated tag and a version.
	var i uint64
	err = logIter.ForEach(func(c *object.Commit) error {
		if name, ok := tags.annotated[c.Hash]; ok && d.tag == "" {
			d.tag = name
			d.tagN = i
		}
		if t, ok := tags.versions[c.Hash]; ok && d.v == nil {
			d.v = &t.v
			d.n = i
		}
		if d.tag != "" && d.v != nil {
			return storer.ErrStop
		}
		i++
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Get working tree status.
	w, err := r.Worktree()
	if err != nil {
		return nil, err
	}

	status, err := w.Status()
	if err != nil {
		return nil, err
	}

	d.isClean = !isModified(status)

	return &d, nil
}

// Describe returns a description of HEAD of the git repository at path.
func Describe(path string) (*Description, error) {
	// Open git repo.
	r, err := git.PlainOpen(path)
	if err != nil {
		return nil, err
	}

	// Get HEAD ref.
	head, err := r.Head()
	if err != nil {
		return nil, err
	}

	// Get HEAD commit.
	c, err := r.CommitObject(head.Hash())
	if err != nil {
		return nil, err
	}

	return describe(r, c)
}

// IsClean returns true if tracked files in the git working tree are unmodified.
func (d *Description) IsClean() bool {
	return d.isClean
}

// CommitHash returns the hash of the commit described by d.
func (d *Description) CommitHash() string {
	return d.c.Hash.String()
}

// CommitTime returns the time of the commit described by d.
func (d *Description) CommitTime() time.Time {
	return d.c.Committer.When
}

// Tag returns the name of the nearest annotated tag, or an empty string if none was found.
func (d *Description) Tag() string {
	return d.tag
}

var (
	errTagNotFound          = errors.New("semantic version tag not found")
	errAnnotatedTagNotFound = errors.New("annotated tag not found")
)

// Descriptor returns d in the form of "git describe --dirty=+" output, based on the nearest
// annotated tag. For example:
//   - "1.2.3" if the tag is on the commit and the working tree is clean.
//   - "1.2.3-4-gdeadbee" if the commit is 4 commits past the tag.
//   - "1.2.3-4-gdeadbee+" if, in addition, tracked files have been modified.
func (d *Description) Descriptor() (string, error) {
	if d.tag == "" {
		return "", errAnnotatedTagNotFound
	}

	s := d.tag
	if d.tagN > 0 {
		s += fmt.Sprintf("-%d-g%s", d.tagN, d.CommitHash()[:abbrevLen])
	}
	if !d.isClean {
		s += "+"
	}
	return s, nil
}

// Version returns a semantic version based on d. If d is tagged directly, the parsed version is
// returned. Otherwise, a version is derived that preserves semantic precedence.
//
// For example:
//   - If the nearest semver tag is "v0.1.2-alpha.1" and d.n = 1, 0.1.2-alpha.1.0.devel.1 is returned.
//   - If the nearest semver tag is "v0.1.2" and d.n = 1, 0.1.3-0.devel.1 is returned.
//   - If the nearest semver tag is "v0.1.3" and d.n = 0, 0.1.3 is returned.
func (d *Description) Version() (semver.Version, error) {
	if d.v == nil {
		return semver.Version{}, errTagNotFound
	}

	// If this version wasn't tagged directly, modify tag.
	v := *d.v
	if d.n > 0 {
		if len(v.Pre) == 0 {
			v.Patch++
		}

		// Append "0.devel.N" pre-release components.
		v.Pre = append(v.Pre,
			semver.PRVersion{VersionNum: 0, IsNum: true},
			semver.PRVersion{VersionStr: "devel"},
			semver.PRVersion{VersionNum: d.n, IsNum: true},
		)
	}

	return v, nil
}

// DescribeCommand runs "git describe --dirty=+" in the git repository at path using the git
// executable, and returns its output.
func DescribeCommand(path string) (string, error) {
	s, err := sh.Output("git", "-C", path, "describe", "--dirty=+")
	if err != nil {
		return "", fmt.Errorf("git describe failed: %w", err)
	}
	return s, nil
}
