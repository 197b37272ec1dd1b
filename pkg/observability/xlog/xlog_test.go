package xlog_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/xtpool/pkg/observability/xlog"
)

// testCleanup 测试辅助函数，在测试结束时执行 cleanup
func testCleanup(t *testing.T, cleanup func() error) {
	t.Helper()
	t.Cleanup(func() {
		if err := cleanup(); err != nil {
			t.Errorf("cleanup error: %v", err)
		}
	})
}

func TestLogger_BasicLogging(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := xlog.New().
		SetOutput(&buf).
		SetLevel(xlog.LevelDebug).
		Build()
	require.NoError(t, err)
	testCleanup(t, cleanup)

	ctx := context.Background()
	logger.Debug(ctx, "debug message")
	logger.Info(ctx, "info message")
	logger.Warn(ctx, "warn message")
	logger.Error(ctx, "error message")

	output := buf.String()
	for _, want := range []string{"debug message", "info message", "warn message", "error message"} {
		assert.Contains(t, output, want)
	}
}

func TestLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := xlog.New().
		SetOutput(&buf).
		SetLevel(xlog.LevelWarn).
		Build()
	require.NoError(t, err)
	testCleanup(t, cleanup)

	ctx := context.Background()
	logger.Info(ctx, "hidden")
	logger.Warn(ctx, "shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.False(t, logger.Enabled(ctx, xlog.LevelInfo))
}

func TestLogger_DynamicLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := xlog.New().SetOutput(&buf).Build()
	require.NoError(t, err)
	testCleanup(t, cleanup)

	child := logger.With(slog.String("pool", "p1"))

	ctx := context.Background()
	child.Debug(ctx, "before")
	logger.SetLevel(xlog.LevelDebug)
	child.Debug(ctx, "after")

	assert.Equal(t, xlog.LevelDebug, logger.GetLevel())
	assert.NotContains(t, buf.String(), "before")
	assert.Contains(t, buf.String(), "after")
	assert.Contains(t, buf.String(), "pool=p1")
}

func TestLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := xlog.New().
		SetOutput(&buf).
		SetFormat(" JSON ").
		Build()
	require.NoError(t, err)
	testCleanup(t, cleanup)

	logger.Error(context.Background(), "task failed",
		xlog.Err(errors.New("boom")),
		xlog.Count(3),
		xlog.Component("xpool"),
		xlog.Duration(1500*time.Millisecond),
	)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "task failed", rec["msg"])
	assert.Equal(t, "boom", rec[xlog.KeyError])
	assert.EqualValues(t, 3, rec[xlog.KeyCount])
	assert.Equal(t, "xpool", rec[xlog.KeyComponent])
	assert.Equal(t, "1.5s", rec[xlog.KeyDuration])
}

func TestLogger_NilContext(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := xlog.New().SetOutput(&buf).Build()
	require.NoError(t, err)
	testCleanup(t, cleanup)

	//nolint:staticcheck // 验证 nil ctx 不会 panic
	logger.Info(nil, "nil ctx")
	assert.Contains(t, buf.String(), "nil ctx")
}

func TestErr_Nil(t *testing.T) {
	assert.Equal(t, slog.Attr{}, xlog.Err(nil))
}

func TestBuilder_Errors(t *testing.T) {
	tests := []struct {
		name  string
		build func() *xlog.Builder
	}{
		{"bad_level", func() *xlog.Builder { return xlog.New().SetLevelString("verbose") }},
		{"bad_format", func() *xlog.Builder { return xlog.New().SetFormat("xml") }},
		{"empty_rotation", func() *xlog.Builder { return xlog.New().SetRotation("  ") }},
		{"first_error_wins", func() *xlog.Builder {
			return xlog.New().SetFormat("xml").SetLevelString("debug")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, cleanup, err := tt.build().Build()
			assert.Error(t, err)
			assert.Nil(t, logger)
			assert.Nil(t, cleanup)
		})
	}
}

func TestBuilder_Rotation(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "xpi.log")
	logger, cleanup, err := xlog.New().SetRotation(filename).Build()
	require.NoError(t, err)

	logger.Info(context.Background(), "rotated line")
	require.NoError(t, cleanup())
	require.NoError(t, cleanup())

	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "rotated line"))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    xlog.Level
		wantErr bool
	}{
		{"debug", xlog.LevelDebug, false},
		{" INFO ", xlog.LevelInfo, false},
		{"", xlog.LevelInfo, false},
		{"warning", xlog.LevelWarn, false},
		{"Error", xlog.LevelError, false},
		{"trace", xlog.LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := xlog.ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLevel_UnmarshalText(t *testing.T) {
	var l xlog.Level
	require.NoError(t, l.UnmarshalText([]byte("warn")))
	assert.Equal(t, xlog.LevelWarn, l)
	assert.Equal(t, "WARN", l.String())
	assert.Error(t, l.UnmarshalText([]byte("loud")))
}

// 不可 t.Parallel()：修改全局 Logger。
func TestDefault_SetAndReset(t *testing.T) {
	t.Cleanup(xlog.ResetDefault)

	first := xlog.Default()
	assert.Same(t, first, xlog.Default())

	var buf bytes.Buffer
	custom, cleanup, err := xlog.New().SetOutput(&buf).Build()
	require.NoError(t, err)
	testCleanup(t, cleanup)

	xlog.SetDefault(custom)
	xlog.SetDefault(nil)
	xlog.Default().Info(context.Background(), "via default")
	assert.Contains(t, buf.String(), "via default")

	xlog.ResetDefault()
	assert.NotSame(t, custom, xlog.Default())
}
