// Copyright (c) Contributors to the Apptainer project, established as
//   Apptainer a Series of LF Projects LLC.
//   For website terms of use, trademark policy, privacy policy and other
//   project policies see https://lfprojects.org/policies
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package buildnum

import (
	"bufio"
	"os"
	"strconv"
)

// DefaultCounterFile is the conventional name of the build counter file.
const DefaultCounterFile = "buildnum"

// Store persists the build counter.
type Store interface {
	// Load returns the stored counter. If no counter could be read, ok is false.
	Load() (n int, ok bool)

	// Save replaces the stored counter with n.
	Save(n int) error
}

// FileStore is a Store backed by a single line text file.
//
// Access is not locked; concurrent users of the same file may lose an increment.
type FileStore struct {
	path string
}

// NewFileStore returns a FileStore that keeps the counter in the file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the path of the counter file.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the first line of the counter file. A missing, empty or unreadable file results
// in ok being false. A line that is not a valid integer is read as zero.
func (s *FileStore) Load() (int, bool) {
	f, err := os.Open(s.path)
	if err != nil {
		return 0, false
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	if !sc.Scan() {
		return 0, false
	}

	return Coerce(sc.Text()), true
}

// Save writes n to the counter file, followed by a newline. The file is created or truncated.
func (s *FileStore) Save(n int) error {
	return os.WriteFile(s.path, []byte(strconv.Itoa(n)+"\n"), 0o644) //nolint:gosec
}

// MemoryStore is a Store that holds the counter in memory. The zero value holds no counter.
type MemoryStore struct {
	n     int
	saved bool
}

// Load returns the counter most recently saved, if any.
func (s *MemoryStore) Load() (int, bool) {
	return s.n, s.saved
}

// Save records n.
func (s *MemoryStore) Save(n int) error {
	s.n = n
	s.saved = true
	return nil
}
