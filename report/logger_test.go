package report

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasreport/model"
)

func TestNopLogger(t *testing.T) {
	var l Logger = NopLogger{}
	l.Debug("msg", "k", "v")
	l.Info("msg")
	l.Warn("msg")
	l.Error("msg")
	assert.Equal(t, NopLogger{}, l.With("k", "v"))
}

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	adapter := NewSlogAdapter(slog.New(handler))

	adapter.Debug("debug msg", "key", "value")
	assert.Contains(t, buf.String(), "debug msg")
	assert.Contains(t, buf.String(), "key=value")

	buf.Reset()
	adapter.With("component", "report").Info("info msg")
	assert.Contains(t, buf.String(), "component=report")
	assert.Contains(t, buf.String(), "info msg")
}

func TestSlogAdapterNilDefaults(t *testing.T) {
	adapter := NewSlogAdapter(nil)
	require.NotNil(t, adapter)
	adapter.Debug("goes to the default logger")
}

func TestCycleBreakLogsDebug(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	b := newBuilder(NewSlogAdapter(slog.New(handler)))

	cs := &model.ChangedSchema{TypeChanged: true}
	cs.Items = cs
	b.schemaNode(cs, newSchemaVisited())

	assert.Contains(t, buf.String(), "schema cycle broken during render")
}
