// Package testutil provides test helpers for CLI tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// HeaderTemplate and SourceTemplate are a minimal template pair.
const (
	HeaderTemplate = `#pragma once

class ActiveModuleImpl {
public:
    ActiveModuleImpl();
    ~ActiveModuleImpl();
};
`
	SourceTemplate = `#include "ActiveModuleImpl.h"

ActiveModuleImpl::ActiveModuleImpl() {}
ActiveModuleImpl::~ActiveModuleImpl() {}
`
)

// WriteFile creates a file with the given content in the specified directory.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// ReadFile returns the content of a file, failing the test if it cannot be read.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file %s: %v", path, err)
	}
	return string(data)
}

// WriteTemplates writes the template pair into dir.
func WriteTemplates(t *testing.T, dir string) {
	t.Helper()
	WriteFile(t, dir, "ActiveModuleImpl.h", HeaderTemplate)
	WriteFile(t, dir, "ActiveModuleImpl.cpp", SourceTemplate)
}

// TemplateWorkdir creates a temporary directory holding the template pair,
// makes it the working directory for the rest of the test, and isolates HOME
// so no user config is read.
func TemplateWorkdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	WriteTemplates(t, dir)
	IsolateHome(t)
	Chdir(t, dir)
	return dir
}

// Chdir changes the working directory to dir for the rest of the test and
// restores the previous one on cleanup, mirroring testing.T.Chdir (Go 1.24+).
func Chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to chdir to %s: %v", dir, err)
	}
	t.Setenv("PWD", dir)
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("failed to restore working directory %s: %v", prev, err)
		}
	})
}

// IsolateHome points HOME at an empty temporary directory and clears the
// implgen environment overrides.
func IsolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("IMPLGEN_CONFIG", "")
	t.Setenv("IMPLGEN_LOG_LEVEL", "")
	t.Setenv("IMPLGEN_LOG_TIMESTAMPS", "")
	return home
}

// AssertNotExists fails the test if path exists.
func AssertNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected %s not to exist", path)
	} else if !os.IsNotExist(err) {
		t.Errorf("stat %s: %v", path, err)
	}
}
