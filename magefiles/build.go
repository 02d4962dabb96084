//go:build mage

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main provides build targets for the tinker project using Mage.
//
// Usage:
//
//	mage build        Compile tinker binary to bin/
//	mage test:all     Run all tests
//	mage test:unit    Run the entity tests in pkg/
//	mage test:cover   Run all tests with a coverage profile
//	mage demo         Build, then run every demonstration
//	mage lint         Run golangci-lint
//	mage clean        Remove build artifacts
//	mage install      Install tinker to GOPATH/bin
//	mage stats        Print Go LOC and documentation word counts
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binaryName = "tinker"
	binaryDir  = "bin"
	cmdDir     = "./cmd/tinker"
)

// demos lists the entity subcommands in the order Demo runs them.
var demos = []string{"account", "book", "car", "coffee", "phone"}

// Build compiles the tinker binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Demo builds the binary and runs every entity demonstration.
func Demo() error {
	mg.Deps(Build)
	bin := filepath.Join(binaryDir, binaryName)
	for _, d := range demos {
		if err := sh.RunV(bin, d); err != nil {
			return err
		}
	}
	return nil
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV(binGo, "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output(binGo, "env", "GOPATH")
	if err != nil {
		return err
	}
	src := filepath.Join(binaryDir, binaryName)
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, src)
}
