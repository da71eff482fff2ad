package main

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opmodel/implgen/internal/testutil"
)

var implgenBinary string

func TestMain(m *testing.M) {
	// Build the binary once for all tests
	tmpDir, err := os.MkdirTemp("", "implgen-e2e-*")
	if err != nil {
		panic("failed to create temp dir: " + err.Error())
	}

	implgenBinary = filepath.Join(tmpDir, "implgen")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	cmd := exec.CommandContext(ctx, "go", "build", "-o", implgenBinary, ".")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		cancel()
		os.RemoveAll(tmpDir)
		panic("failed to build implgen binary: " + err.Error())
	}
	cancel()

	code := m.Run()
	os.RemoveAll(tmpDir)
	os.Exit(code)
}

// runImplgen runs the binary in workDir and returns its output and exit code.
func runImplgen(t *testing.T, workDir string, args ...string) (stdout, stderr string, code int) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, implgenBinary, args...)
	cmd.Dir = workDir
	cmd.Env = append(os.Environ(), "HOME="+t.TempDir(), "IMPLGEN_CONFIG=")

	stdoutBytes, err := cmd.Output()
	var stderrBytes []byte
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		stderrBytes = exitErr.Stderr
		return string(stdoutBytes), string(stderrBytes), exitErr.ExitCode()
	}
	require.NoError(t, err)
	return string(stdoutBytes), "", 0
}

func TestE2E_Generate(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "ActiveModuleImpl.h", "class ActiveModuleImpl { ActiveModuleImpl(); };")
	testutil.WriteFile(t, dir, "ActiveModuleImpl.cpp", "ActiveModuleImpl::ActiveModuleImpl() {}")

	stdout, _, code := runImplgen(t, dir, "-n", "Widget", "-p", "out")
	require.Equal(t, 0, code)

	assert.Equal(t, "class Widget { Widget(); };", testutil.ReadFile(t, filepath.Join(dir, "out", "Widget", "Widget.h")))
	assert.Equal(t, "Widget::Widget() {}", testutil.ReadFile(t, filepath.Join(dir, "out", "Widget", "Widget.cpp")))
	assert.Contains(t, stdout, "Generated class 'Widget'")
}

func TestE2E_ExitCodes(t *testing.T) {
	tests := []struct {
		name      string
		templates bool
		args      []string
		wantCode  int
	}{
		{"help", true, []string{"-h"}, 0},
		{"missing name", true, []string{"-p", "out"}, 2},
		{"missing path", true, []string{"-n", "Widget"}, 2},
		{"unknown flag", true, []string{"-n", "Widget", "-p", "out", "-x"}, 2},
		{"missing templates", false, []string{"-n", "Widget", "-p", "out"}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.templates {
				testutil.WriteTemplates(t, dir)
			}

			_, _, code := runImplgen(t, dir, tt.args...)
			assert.Equal(t, tt.wantCode, code)
			if tt.wantCode != 0 {
				testutil.AssertNotExists(t, filepath.Join(dir, "out"))
			}
		})
	}
}

func TestE2E_UsageOnStderr(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteTemplates(t, dir)

	stdout, stderr, code := runImplgen(t, dir, "-n", "Widget")
	assert.Equal(t, 2, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Usage:")
	assert.Contains(t, stderr, "--path")
}
