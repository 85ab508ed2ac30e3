// Copyright (c) Contributors to the Apptainer project, established as
//   Apptainer a Series of LF Projects LLC.
//   For website terms of use, trademark policy, privacy policy and other
//   project policies see https://lfprojects.org/policies
// Copyright (c) 2021, Sylabs Inc. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

//go:build mage
// +build mage

package main

import (
	"strconv"
	"strings"
	"time"

	"github.com/apptainer/buildnum/internal/pkg/git"
	"github.com/apptainer/buildnum/pkg/buildnum"
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Aliases defines command-line aliases exposed by Mage.
//
//nolint:deadcode
var Aliases = map[string]interface{}{
	"build":   Build.All,
	"cover":   Cover.All,
	"install": Install.All,
	"test":    Test.All,
}

const mainPackage = "./cmd/buildnum"

// ldFlags returns linker flags that stamp the binary with version information derived from
// the git repository in the current directory. The build counter is updated as a side effect.
func ldFlags() (string, error) {
	d, err := git.Describe(".")
	if err != nil {
		return "", err
	}

	sv, err := d.Version()
	if err != nil {
		return "", err
	}

	s, err := d.Descriptor()
	if err != nil {
		return "", err
	}

	bd, err := buildnum.ParseDescriptor(s)
	if err != nil {
		return "", err
	}

	v, err := buildnum.Compute(bd, buildnum.NewFileStore(buildnum.DefaultCounterFile))
	if err != nil {
		return "", err
	}

	state := "clean"
	if !d.IsClean() {
		state = "dirty"
	}

	flags := []string{
		"-X main.version=" + sv.String(),
		"-X main.number=" + strconv.FormatInt(v.Number, 10),
		"-X main.builtBy=mage",
		"-X main.commit=" + d.CommitHash(),
		"-X main.state=" + state,
		"-X main.date=" + d.CommitTime().UTC().Format(time.RFC3339),
	}
	return strings.Join(flags, " "), nil
}

type Build mg.Namespace

// All compiles all assets.
func (ns Build) All() {
	mg.Deps(ns.Source)
}

// Source compiles all source code.
func (Build) Source() error {
	flags, err := ldFlags()
	if err != nil {
		return err
	}

	return sh.RunV(mg.GoCmd(), "build", "-ldflags", flags, mainPackage)
}

type Install mg.Namespace

// All installs all assets.
func (ns Install) All() {
	mg.Deps(ns.Bin)
}

// Bin installs binary to GOBIN.
func (Install) Bin() error {
	flags, err := ldFlags()
	if err != nil {
		return err
	}

	return sh.RunV(mg.GoCmd(), "install", "-ldflags", flags, mainPackage)
}

type Test mg.Namespace

// All runs all tests.
func (ns Test) All() {
	mg.Deps(ns.Unit)
}

// Unit runs all unit tests.
func (Test) Unit() error {
	return sh.RunV(mg.GoCmd(), "test", "./...")
}

type Cover mg.Namespace

// All runs all tests, writing coverage profile to the specified path.
func (ns Cover) All(path string) {
	mg.Deps(mg.F(ns.Unit, path))
}

// Unit runs all unit tests, writing coverage profile to the specified path.
func (Cover) Unit(path string) error {
	return sh.RunV(mg.GoCmd(), "test", "-coverprofile", path, "./...")
}
