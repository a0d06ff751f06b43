// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package integration

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain builds the abacus binary once before running tests. The binary
// is built without cgo so it runs on headless machines.
func TestMain(m *testing.M) {
	projectRoot, err := FindProjectRoot()
	if err != nil {
		buildErr = err
		os.Exit(1)
	}

	tmpDir, err := os.MkdirTemp("", "abacus-test-*")
	if err != nil {
		buildErr = err
		os.Exit(1)
	}
	binPath := filepath.Join(tmpDir, "abacus")

	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/abacus")
	cmd.Dir = projectRoot
	cmd.Env = append(os.Environ(), "CGO_ENABLED=0")
	if output, err := cmd.CombinedOutput(); err != nil {
		buildErr = &BuildError{Err: err, Output: string(output)}
	} else {
		abacusBin = binPath
	}

	code := m.Run()
	os.RemoveAll(tmpDir)
	os.Exit(code)
}

// Snapshot mirrors the JSON form of the calculator display.
type Snapshot struct {
	Display string `json:"display"`
	Errored bool   `json:"errored"`
	Pending string `json:"pending"`
}

func TestHelp(t *testing.T) {
	env := NewTestEnv(t)
	result := env.MustRun("--help")
	for _, sub := range []string{"press", "eval", "repl", "keys", "gui", "mcp", "init", "version"} {
		assert.Contains(t, result.Stdout, sub)
	}
}

func TestVersion(t *testing.T) {
	env := NewTestEnv(t)
	result := env.MustRun("version")
	assert.True(t, strings.HasPrefix(result.Stdout, "abacus v"))
}

func TestPress(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"sum", []string{"12+3="}, "15"},
		{"chained operators collapse left to right", []string{"2+3*4="}, "20"},
		{"division by zero shows the error token", []string{"5/0="}, "Error"},
		{"input after error starts fresh", []string{"5/0=", "8"}, "8"},
		{"repeated decimal point is ignored", []string{"1..5"}, "1.5"},
		{"leading zeros are dropped", []string{"007"}, "7"},
		{"long entry is truncated for display", []string{"1234567890123456789"}, "123456789012345"},
		{"float noise is rounded", []string{"0.1+0.2="}, "0.3"},
		{"negative result", []string{"3-5="}, "-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := NewTestEnv(t)
			result := env.MustRun(append([]string{"press"}, tt.args...)...)
			assert.Equal(t, tt.want+"\n", result.Stdout)
		})
	}
}

func TestPress_JSON(t *testing.T) {
	env := NewTestEnv(t)
	result := env.MustRun("--json", "press", "9/0=")

	snap := ParseJSON[Snapshot](t, result.Stdout)
	assert.Equal(t, Snapshot{Display: "Error", Errored: true}, snap)
}

func TestPress_UnknownKeyExitsOne(t *testing.T) {
	env := NewTestEnv(t)
	result := env.Run("", "press", "1%")
	assert.Equal(t, 1, result.ExitCode)
	assert.Contains(t, result.Stderr, "unknown key")
}

func TestEval(t *testing.T) {
	env := NewTestEnv(t)
	assert.Equal(t, "20\n", env.MustRun("eval", "2+3*4").Stdout)

	result := env.Run("", "eval", "1/0")
	assert.Equal(t, 1, result.ExitCode)
	assert.Contains(t, result.Stderr, "division by zero")
}

func TestInitAndConfig(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRun("init")

	data, err := os.ReadFile(filepath.Join(env.ConfigDir, "config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "log_level: info")

	env.WriteConfig("grouping: true\n")
	assert.Equal(t, "1,000,000\n", env.MustRun("press", "1000000").Stdout)
}

func TestInvalidConfigExitsOne(t *testing.T) {
	env := NewTestEnv(t)
	env.WriteConfig("log_level: chatty\n")

	result := env.Run("", "press", "1")
	assert.Equal(t, 1, result.ExitCode)
	assert.Contains(t, result.Stderr, "unknown log level")
}

func TestRepl(t *testing.T) {
	env := NewTestEnv(t)
	result := env.Run("1+1\n=\n", "repl", "--no-grid")
	require.Equal(t, 0, result.ExitCode, result.Stderr)

	lines := strings.Split(strings.TrimSpace(result.Stdout), "\n")
	require.Len(t, lines, 9, "three boxed displays")
	assert.True(t, strings.HasSuffix(lines[7], " 2|"))
}

func TestGUIWithoutCgo(t *testing.T) {
	env := NewTestEnv(t)
	result := env.Run("", "gui")
	assert.Equal(t, 2, result.ExitCode)
	assert.Contains(t, result.Stderr, "cgo")
}
