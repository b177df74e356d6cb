// Package oasreport renders OpenAPI diff results as compact, consumer-facing
// JSON or YAML documents.
//
// oasreport does not compare specifications itself. A comparison engine (such
// as the oastools differ, or any tool producing the same shapes) supplies a
// read-only diff-result graph describing endpoints that were added, removed,
// or deprecated, plus per-operation and per-schema changes. oasreport walks
// that graph once, depth-first, and re-expresses only the meaningful
// differences: subtrees with no actual change are omitted entirely, every
// scalar change becomes a uniform {from, to} pair, and self-referential
// schemas are rendered cycle-safely.
//
// # Overview
//
// The library consists of four primary packages:
//
//   - model: the diff-result graph supplied by a comparison engine
//   - spec: the underlying API description objects the graph points into
//   - report: the renderers that turn a diff result into a document
//   - reporterrors: structured error types for programmatic handling
//
// # Quick Start
//
// Render a diff result as JSON:
//
//	import (
//		"os"
//
//		"github.com/erraggy/oasreport/model"
//		"github.com/erraggy/oasreport/report"
//	)
//
//	func writeReport(diff *model.DiffResult) error {
//		f, err := os.Create("diff.json")
//		if err != nil {
//			return err
//		}
//		// Render closes f on every path, including failures.
//		return report.RenderJSON(diff, f)
//	}
//
// Or configure a renderer explicitly:
//
//	r := report.NewJSONRenderer()
//	r.Indent = true
//	err := r.Render(diff, f)
//
// # Output Shape
//
// The rendered document always carries the aggregate compatibility verdict
// and the five top-level collections, even when empty:
//
//	{
//	  "compatible": true,
//	  "newEndpoints": [ {"method": "GET", "path": "/pets"} ],
//	  "removedEndpoints": [],
//	  "deprecatedEndpoints": [],
//	  "changedOperations": [],
//	  "changedSchemas": []
//	}
//
// Everything below the top level follows omit-empty propagation: a
// sub-renderer that finds nothing to say contributes no key at all.
//
// # Error Handling
//
// Rendering has exactly two fatal failure modes, both surfaced to the caller
// with the underlying cause attached:
//
//   - reporterrors.EncodeError: the assembled document could not be serialized
//   - reporterrors.SinkError: the output sink could not be written or closed
//
// The sink is closed best-effort before either error propagates; there is no
// partial-success mode.
//
// # Additional Resources
//
//   - GitHub Repository: https://github.com/erraggy/oasreport
//   - OpenAPI Specification: https://spec.openapis.org
//   - Go Package Documentation: https://pkg.go.dev/github.com/erraggy/oasreport
//
// # License
//
// This library is released under the MIT License. See the LICENSE file in the
// repository for full details.
package oasreport
