package report

import (
	"maps"

	"github.com/erraggy/oasreport/model"
)

// builder assembles the report value tree for one render. It holds no state
// beyond the logger; each nested schema walk carries its own cycle guard.
type builder struct {
	logger Logger
}

func newBuilder(logger Logger) *builder {
	return &builder{logger: loggerOrNop(logger)}
}

// buildRoot produces the report envelope. The compatible flag and the five
// collections are always present; a nil input collection renders the same as
// an empty one.
func (b *builder) buildRoot(diff *model.DiffResult) map[string]any {
	root := map[string]any{
		"compatible":          diff.Compatible,
		"newEndpoints":        b.endpointNodes(diff.NewEndpoints),
		"removedEndpoints":    b.endpointNodes(diff.RemovedEndpoints),
		"deprecatedEndpoints": b.endpointNodes(diff.DeprecatedEndpoints),
	}

	ops := make([]any, 0, len(diff.ChangedOperations))
	for _, op := range diff.ChangedOperations {
		ops = append(ops, b.operationNode(op))
	}
	root["changedOperations"] = ops

	schemas := make([]any, 0, len(diff.ChangedSchemas))
	for _, cs := range diff.ChangedSchemas {
		schemas = append(schemas, b.topLevelSchemaNode(cs))
	}
	root["changedSchemas"] = schemas

	return root
}

func (b *builder) endpointNodes(endpoints []*model.Endpoint) []any {
	nodes := make([]any, 0, len(endpoints))
	for _, ep := range endpoints {
		nodes = append(nodes, b.endpointNode(ep))
	}
	return nodes
}

func (b *builder) endpointNode(ep *model.Endpoint) map[string]any {
	node := map[string]any{
		"method": ep.Method,
		"path":   ep.Path,
	}
	if ep.Summary != "" {
		node["summary"] = ep.Summary
	}
	return node
}

// topLevelSchemaNode produces one changedSchemas entry: the envelope fields
// (name, compatible, context, raw old/new payloads) merged with whatever the
// schema-change renderer found. Unlike nested schema rendering, the entry is
// emitted even when no field-level change was found; top-level schemas are
// enumerated by the engine only when something triggered their inclusion.
func (b *builder) topLevelSchemaNode(cs *model.ChangedSchema) map[string]any {
	entry := map[string]any{
		"compatible": cs.Compatible,
	}
	if name := cs.ResolvedName(); name != "" {
		entry["name"] = name
	}
	if cs.Context != nil {
		entry["context"] = cs.Context
	}
	// The raw payloads are embedded verbatim, not recursively diffed.
	if cs.OldSchema != nil {
		entry["oldSchema"] = cs.OldSchema
	}
	if cs.NewSchema != nil {
		entry["newSchema"] = cs.NewSchema
	}

	maps.Copy(entry, b.schemaNode(cs, newSchemaVisited()))
	return entry
}
