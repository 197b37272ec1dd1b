package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(context.Background(), append([]string{"xpi"}, args...), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun_Compute(t *testing.T) {
	code, stdout, stderr := runCLI(t, "--log-level", "warn", "compute", "--terms", "1000", "--workers", "2")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, fmt.Sprintf("Pi = %.12f\n", sequentialPi(1000)), stdout)
}

func TestRun_ComputeConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xpi.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"pool:\n  workers: 1\n  name: from-file\npi:\n  terms: 10\nlog:\n  level: error\n"), 0o600))

	code, stdout, stderr := runCLI(t, "--config", path, "compute")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, fmt.Sprintf("Pi = %.12f\n", sequentialPi(10)), stdout)

	// 命令行参数覆盖配置文件
	code, stdout, stderr = runCLI(t, "-c", path, "compute", "-n", "20", "--lock-os-thread")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, fmt.Sprintf("Pi = %.12f\n", sequentialPi(20)), stdout)
}

func TestRun_ComputeMetrics(t *testing.T) {
	code, stdout, stderr := runCLI(t, "--log-level", "error", "compute", "--terms", "100", "--metrics")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "Pi = ")
	assert.Contains(t, stdout, "tasks: 100\n")
	assert.Contains(t, stdout, "  ok: 100\n")
	assert.Contains(t, stdout, "mean task time:")
}

func TestRun_ComputeLogFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "xpi.log")

	code, _, stderr := runCLI(t, "--log-file", logFile, "--log-format", "json", "compute", "--terms", "50")
	require.Equal(t, 0, code, stderr)

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"pi computed"`)
}

func TestRun_Info(t *testing.T) {
	code, stdout, stderr := runCLI(t, "info")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "hardware concurrency: ")
	assert.Contains(t, stdout, "file limit: ")
}

func TestRun_UsageErrors(t *testing.T) {
	badConfig := filepath.Join(t.TempDir(), "xpi.yaml")
	require.NoError(t, os.WriteFile(badConfig, []byte("pool:\n  workers: -3\n"), 0o600))

	tests := []struct {
		name string
		args []string
		code int
	}{
		{"negative terms", []string{"compute", "--terms=-1"}, 2},
		{"negative workers from file", []string{"-c", badConfig, "compute"}, 2},
		{"bad log level", []string{"--log-level", "loud", "compute"}, 2},
		{"bad log format", []string{"--log-format", "xml", "compute"}, 2},
		{"unknown flag", []string{"compute", "--bogus"}, 2},
		{"unknown command", []string{"bake"}, 2},
		{"missing config", []string{"-c", filepath.Join(t.TempDir(), "none.yaml"), "compute"}, 1},
		{"unsupported config", []string{"-c", "xpi.toml", "compute"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, _ := runCLI(t, tt.args...)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestRun_Help(t *testing.T) {
	code, stdout, _ := runCLI(t)
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "compute")
}
