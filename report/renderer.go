package report

import (
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasreport/model"
	"github.com/erraggy/oasreport/reporterrors"
)

// Supported render formats
const (
	// FormatJSON renders the report as a single JSON document
	FormatJSON = "json"
	// FormatYAML renders the report as a single YAML document
	FormatYAML = "yaml"
)

// Renderer writes a diff result to an output sink.
//
// Render owns the sink: implementations close it on every exit path,
// including failures (best-effort when already failing).
type Renderer interface {
	Render(diff *model.DiffResult, sink io.WriteCloser) error
}

// JSONRenderer renders a diff result as a compact JSON document
type JSONRenderer struct {
	// Indent enables two-space indented output. Default is compact.
	Indent bool
	// Logger receives debug diagnostics during rendering. Silent when nil.
	Logger Logger
}

// NewJSONRenderer creates a JSONRenderer with default settings
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render builds the report tree for diff and writes it to sink as JSON.
func (r *JSONRenderer) Render(diff *model.DiffResult, sink io.WriteCloser) error {
	root := newBuilder(r.Logger).buildRoot(diff)

	var (
		data []byte
		err  error
	)
	if r.Indent {
		data, err = json.MarshalIndent(root, "", "  ")
	} else {
		data, err = json.Marshal(root)
	}
	if err != nil {
		closeQuietly(sink)
		return &reporterrors.EncodeError{
			Format:  FormatJSON,
			Message: "could not serialize diff report",
			Cause:   err,
		}
	}

	return writeAndClose(sink, data)
}

// YAMLRenderer renders a diff result as a YAML document.
// It emits the same tree as JSONRenderer, YAML-encoded.
type YAMLRenderer struct {
	// Logger receives debug diagnostics during rendering. Silent when nil.
	Logger Logger
}

// NewYAMLRenderer creates a YAMLRenderer with default settings
func NewYAMLRenderer() *YAMLRenderer {
	return &YAMLRenderer{}
}

// Render builds the report tree for diff and writes it to sink as YAML.
func (r *YAMLRenderer) Render(diff *model.DiffResult, sink io.WriteCloser) error {
	root := newBuilder(r.Logger).buildRoot(diff)

	data, err := yaml.Marshal(root)
	if err != nil {
		closeQuietly(sink)
		return &reporterrors.EncodeError{
			Format:  FormatYAML,
			Message: "could not serialize diff report",
			Cause:   err,
		}
	}

	return writeAndClose(sink, data)
}

// RenderJSON renders diff to sink as compact JSON with default settings
func RenderJSON(diff *model.DiffResult, sink io.WriteCloser) error {
	return NewJSONRenderer().Render(diff, sink)
}

// RenderYAML renders diff to sink as YAML with default settings
func RenderYAML(diff *model.DiffResult, sink io.WriteCloser) error {
	return NewYAMLRenderer().Render(diff, sink)
}

// Option is a function that configures a render operation
type Option func(*renderConfig) error

// renderConfig holds configuration for a render operation
type renderConfig struct {
	format string
	indent bool
	logger Logger
}

// RenderWithOptions renders a diff result using functional options.
//
// Example:
//
//	err := report.RenderWithOptions(diff, sink,
//	    report.WithFormat(report.FormatYAML),
//	)
func RenderWithOptions(diff *model.DiffResult, sink io.WriteCloser, opts ...Option) error {
	cfg := &renderConfig{format: FormatJSON}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			closeQuietly(sink)
			return fmt.Errorf("report: invalid options: %w", err)
		}
	}

	var r Renderer
	switch cfg.format {
	case FormatJSON:
		r = &JSONRenderer{Indent: cfg.indent, Logger: cfg.logger}
	case FormatYAML:
		r = &YAMLRenderer{Logger: cfg.logger}
	}
	return r.Render(diff, sink)
}

// WithFormat sets the render format: FormatJSON or FormatYAML.
// Default: FormatJSON
func WithFormat(format string) Option {
	return func(cfg *renderConfig) error {
		if format != FormatJSON && format != FormatYAML {
			return fmt.Errorf("unsupported format %q (must be %q or %q)", format, FormatJSON, FormatYAML)
		}
		cfg.format = format
		return nil
	}
}

// WithIndent enables indented output. JSON only; YAML is always indented.
// Default: false
func WithIndent(enabled bool) Option {
	return func(cfg *renderConfig) error {
		cfg.indent = enabled
		return nil
	}
}

// WithLogger sets the logger used for debug diagnostics during rendering.
// Default: no logging
func WithLogger(logger Logger) Option {
	return func(cfg *renderConfig) error {
		cfg.logger = logger
		return nil
	}
}

// writeAndClose writes data to sink and closes it, surfacing the first
// failure as a SinkError. The sink is closed best-effort when the write
// fails so callers never leak a held resource.
func writeAndClose(sink io.WriteCloser, data []byte) error {
	if _, err := sink.Write(data); err != nil {
		closeQuietly(sink)
		return &reporterrors.SinkError{Op: "write", Cause: err}
	}
	if err := sink.Close(); err != nil {
		return &reporterrors.SinkError{Op: "close", Cause: err}
	}
	return nil
}

// closeQuietly closes the sink on a failure path, where the original error
// already describes what went wrong.
func closeQuietly(sink io.WriteCloser) {
	_ = sink.Close()
}

// Ensure both renderers implement Renderer at compile time.
var (
	_ Renderer = (*JSONRenderer)(nil)
	_ Renderer = (*YAMLRenderer)(nil)
)
