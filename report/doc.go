/*
Package report renders a diff-result graph as a compact JSON or YAML document.

# Overview

The report package consumes a [model.DiffResult] produced by a comparison
engine and writes a purpose-built document containing only the meaningful
differences. It does not serialize the raw model objects; it assembles a
value tree with the information consumers (CI pipelines, dashboards, code
generators) actually need, then hands the fully built tree to the output
sink in one shot.

# Rendering Rules

Three rules shape every document:

  - Omit-empty propagation: each sub-renderer returns nil when its subtree
    carries no actual change, and parents skip the corresponding key. Only
    the root envelope keys are always present.

  - Uniform change pairs: every scalar change renders as {from, to}, with an
    explicit JSON null for a side that was absent. This distinguishes "field
    present but cleared" from "field never reported".

  - Cycle-safe schema traversal: the schema-change renderer tracks the node
    identities currently open on the recursive call path. A node reached
    again on the same path is omitted (cycle break); the same node reached
    on an unrelated branch renders in full.

# Usage

The package provides two API styles:

 1. Package-level convenience functions for simple, one-off renders
 2. Renderer values for reusable instances with custom configuration

Convenience:

	err := report.RenderJSON(diff, sink)

Configured:

	r := report.NewJSONRenderer()
	r.Indent = true
	r.Logger = report.NewSlogAdapter(slog.Default())
	err := r.Render(diff, sink)

Functional options:

	err := report.RenderWithOptions(diff, sink,
		report.WithFormat(report.FormatYAML),
		report.WithLogger(logger),
	)

# Sink Lifecycle

Render owns the sink once called: the sink is closed on every exit path,
including serialization and write failures (best-effort on the failure
paths). Failures surface as [reporterrors.EncodeError] or
[reporterrors.SinkError], never silently.
*/
package report
