package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var textLine = regexp.MustCompile(`^\d{2}/\d{2}/\d{4} - \d{1,2}:\d{2}:\d{2} `)

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"SingleDigitHour", time.Date(2026, time.March, 7, 8, 5, 9, 0, time.UTC), "07/03/2026 - 8:05:09"},
		{"Afternoon", time.Date(2026, time.October, 19, 23, 59, 0, 0, time.UTC), "19/10/2026 - 23:59:00"},
		{"Midnight", time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), "01/01/2025 - 0:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatTime(tt.in))
		})
	}
}

func TestNew_TextFiles(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{Level: "info", Format: FormatText, Dir: dir, Layout: LayoutFlat}

	l, closeLogs, err := New(cfg, false)
	require.NoError(t, err)

	Log(l, zapcore.InfoLevel, map[string]any{"a": 1})
	Log(l, zapcore.ErrorLevel, errors.New("boom"))
	l.Debug("below baseline")
	closeLogs()

	info := readFile(t, filepath.Join(dir, "info.log"))
	assert.Regexp(t, textLine, info)
	assert.Contains(t, info, " info: {\n  \"a\": 1\n}\n")
	assert.Contains(t, info, " error: boom\n")
	assert.NotContains(t, info, "below baseline")

	errLog := readFile(t, filepath.Join(dir, "error.log"))
	lines := strings.Split(strings.TrimSpace(errLog), "\n")
	require.Len(t, lines, 1)
	assert.Regexp(t, textLine, lines[0])
	assert.True(t, strings.HasSuffix(lines[0], " error: boom"))
}

func TestNew_JSONFiles(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{Level: "debug", Format: FormatJSON, Dir: dir, Layout: LayoutFlat}

	l, closeLogs, err := New(cfg, false)
	require.NoError(t, err)

	Log(l, zapcore.InfoLevel, map[string]any{"a": 1})
	l.Info("plain", zap.Int("port", 4000))
	closeLogs()

	lines := strings.Split(strings.TrimSpace(readFile(t, filepath.Join(dir, "info.log"))), "\n")
	require.Len(t, lines, 2)

	var structured map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &structured))
	assert.Equal(t, "info", structured["level"])
	assert.Equal(t, map[string]any{"a": float64(1)}, structured["message"])
	assert.NotEmpty(t, structured["time"])
	assert.Len(t, structured, 3)

	var plain map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &plain))
	assert.Equal(t, "plain", plain["message"])
	assert.Equal(t, float64(4000), plain["port"])

	assert.Empty(t, readFile(t, filepath.Join(dir, "error.log")))
}

func TestNew_NestedLayout(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{Level: "info", Format: FormatText, Dir: dir, Layout: LayoutNested}

	l, closeLogs, err := New(cfg, false)
	require.NoError(t, err)
	l.Error("nested")
	closeLogs()

	assert.Contains(t, readFile(t, filepath.Join(dir, "errors", "error.log")), "error: nested")
	assert.Contains(t, readFile(t, filepath.Join(dir, "info", "info.log")), "error: nested")
}

func TestNew_Console(t *testing.T) {
	t.Run("Development", func(t *testing.T) {
		var buf bytes.Buffer
		l, closeLogs, err := newLogger(&Config{Level: "info"}, true, zapcore.AddSync(&buf))
		require.NoError(t, err)
		l.Info("hello")
		closeLogs()

		out := buf.String()
		assert.Regexp(t, textLine, out)
		assert.Contains(t, out, "\x1b[32minfo\x1b[0m: hello")
	})

	t.Run("Production", func(t *testing.T) {
		var buf bytes.Buffer
		l, closeLogs, err := newLogger(&Config{Level: "info"}, false, zapcore.AddSync(&buf))
		require.NoError(t, err)
		l.Info("hello")
		l.Error("boom")
		closeLogs()

		assert.Empty(t, buf.String())
	})
}

func TestNew_InvalidConfig(t *testing.T) {
	_, _, err := New(&Config{Level: "loud"}, false)
	assert.Error(t, err)

	_, _, err = New(&Config{Level: "info", Format: "xml", Dir: t.TempDir()}, false)
	assert.Error(t, err)
}

func TestResolveDir(t *testing.T) {
	assert.Equal(t, "", ResolveDir(""))

	abs := t.TempDir()
	assert.Equal(t, abs, ResolveDir(abs))

	exe, err := os.Executable()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(filepath.Dir(exe), "logs"), ResolveDir("logs"))
}

func TestWithRayID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := zap.New(core)

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		c.Locals("ray_id", "abc")
		WithRayID(l, c).Info("tagged")
		return c.SendStatus(fiber.StatusNoContent)
	})

	_, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "abc", logs.All()[0].ContextMap()["ray_id"])
}
