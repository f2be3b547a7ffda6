//go:build mage

// Package main provides build targets for clines using Mage.
//
// Usage:
//
//	mage build    Compile the clines binary to bin/
//	mage test     Run all tests
//	mage vet      Run go vet
//	mage clean    Remove build artifacts
//	mage install  Install clines to GOPATH/bin
//	mage loc      Print the effective line count of this repository
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"

	"github.com/prittamravi/clines/internal/config"
	"github.com/prittamravi/clines/internal/report"
	"github.com/prittamravi/clines/internal/scan"
)

const (
	binGo      = "go"
	binaryName = "clines"
	binaryDir  = "bin"
	cmdDir     = "./cmd/clines"
)

// Build compiles the clines binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests.
func Test() error {
	return sh.RunV(binGo, "test", "./...")
}

// Vet runs go vet.
func Vet() error {
	return sh.RunV(binGo, "vet", "./...")
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

// Loc prints the effective line count of this repository without touching
// the README.
func Loc() error {
	cfg := config.Default(config.Extended)
	cfg.IgnoreDirs = append(cfg.IgnoreDirs, binaryDir)
	result, err := scan.New(scan.Options{Config: cfg, SkipBinaryAssets: true}).Walk(context.Background(), ".")
	if err != nil {
		return err
	}
	fmt.Print(report.Table(result))
	fmt.Println(report.Summary(result))
	return nil
}
