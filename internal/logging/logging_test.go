package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/rgehrsitz/ctcgo/internal/calculation"
	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ calculation.Logger = EngineLogger{}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{"warning", slog.LevelWarn},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), tt.in)
	}
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelWarn)

	logger.Info("hidden")
	logger.Warn("shown", "ctc", 1500000)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "shown", lines[0]["msg"])
	assert.Equal(t, "WARN", lines[0]["level"])
	assert.EqualValues(t, 1500000, lines[0]["ctc"])
	assert.Contains(t, lines[0], "source")
}

func TestNew_ErrorCarriesStack(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo).With("component", "api")

	logger.Error("boom")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "api", lines[0]["component"])
	assert.Contains(t, lines[0]["stacktrace"], "goroutine")
}

func TestEngineLogger(t *testing.T) {
	var buf bytes.Buffer
	el := NewEngineLogger(New(&buf, slog.LevelDebug))

	el.Debugf("forward ctc=%d", 1200000)
	el.Warnf("unknown variant %q", "fy1999")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "forward ctc=1200000", lines[0]["msg"])
	assert.Equal(t, "DEBUG", lines[0]["level"])
	assert.Equal(t, `unknown variant "fy1999"`, lines[1]["msg"])
}

func TestEngineLogger_WiredIntoEngine(t *testing.T) {
	var buf bytes.Buffer
	engine := calculation.NewDefaultEngine()
	engine.SetLogger(NewEngineLogger(New(&buf, slog.LevelDebug)))

	in := domain.DefaultSalaryInput(decimal.NewFromInt(1200000), domain.RegimeNew)
	engine.Forward(in)

	lines := decodeLines(t, &buf)
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[len(lines)-1]["msg"], "forward ctc=1200000")
}
