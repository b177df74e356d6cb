package report

import (
	"github.com/erraggy/oasreport/internal/maputil"
	"github.com/erraggy/oasreport/model"
	"github.com/erraggy/oasreport/spec"
)

// schemaVisited tracks the ChangedSchema nodes open on the current recursive
// render path. It uses pointer identity, not structural equality, so two
// structurally equal but distinct nodes are tracked independently.
//
// Nodes are added on entry and removed on exit: only a node reached again
// while still open counts as a cycle. The same instance reached from an
// unrelated branch after its first render completed is rendered again in
// full. An accumulated (never-removed) set would wrongly suppress that case.
type schemaVisited struct {
	open map[*model.ChangedSchema]struct{}
}

// newSchemaVisited creates an empty cycle guard for one schema walk.
func newSchemaVisited() *schemaVisited {
	return &schemaVisited{
		open: make(map[*model.ChangedSchema]struct{}),
	}
}

// enter marks a node as open on the current path.
// Returns true if the node is already open (a cycle).
func (v *schemaVisited) enter(cs *model.ChangedSchema) bool {
	if _, exists := v.open[cs]; exists {
		return true
	}
	v.open[cs] = struct{}{}
	return false
}

// leave removes a node from the open set so later, non-overlapping branches
// may render it again.
func (v *schemaVisited) leave(cs *model.ChangedSchema) {
	delete(v.open, cs)
}

// schemaNode builds the change object for one ChangedSchema. Returns nil
// when the node carries no reportable change, or when the node is already
// being rendered higher on the same path (cycle break), so callers can omit
// the key entirely. The visited set is threaded through property and items
// recursion unchanged.
func (b *builder) schemaNode(cs *model.ChangedSchema, visited *schemaVisited) map[string]any {
	if cs == nil {
		return nil
	}
	if visited.enter(cs) {
		b.logger.Debug("schema cycle broken during render", "schema", cs.ResolvedName())
		return nil
	}
	defer visited.leave(cs)

	node := map[string]any{}

	if cs.TypeChanged {
		node["type"] = changeNode(schemaTypeSide(cs.OldSchema), schemaTypeSide(cs.NewSchema))
	}
	if cs.FormatChanged {
		node["format"] = changeNode(schemaFormatSide(cs.OldSchema), schemaFormatSide(cs.NewSchema))
	}

	if cs.ReadOnly != nil {
		node["readOnly"] = changeNode(cs.ReadOnly.Old, cs.ReadOnly.New)
	}
	if cs.WriteOnly != nil {
		node["writeOnly"] = changeNode(cs.WriteOnly.Old, cs.WriteOnly.New)
	}
	if cs.Nullable != nil {
		node["nullable"] = changeNode(cs.Nullable.Old, cs.Nullable.New)
	}
	if cs.MaxLength != nil {
		node["maxLength"] = changeNode(cs.MaxLength.Old, cs.MaxLength.New)
	}
	if cs.MinLength != nil {
		node["minLength"] = changeNode(cs.MinLength.Old, cs.MinLength.New)
	}
	if cs.Pattern != nil {
		node["pattern"] = changeNode(cs.Pattern.Old, cs.Pattern.New)
	}

	if !cs.Enumeration.IsEmpty() {
		enumNode := map[string]any{}
		if len(cs.Enumeration.Increased) > 0 {
			enumNode["added"] = cs.Enumeration.Increased
		}
		if len(cs.Enumeration.Missing) > 0 {
			enumNode["removed"] = cs.Enumeration.Missing
		}
		node["enum"] = enumNode
	}

	if !cs.Required.IsEmpty() {
		reqNode := map[string]any{}
		if len(cs.Required.Increased) > 0 {
			reqNode["added"] = cs.Required.Increased
		}
		if len(cs.Required.Missing) > 0 {
			reqNode["removed"] = cs.Required.Missing
		}
		node["required"] = reqNode
	}

	if len(cs.IncreasedProperties) > 0 {
		node["addedProperties"] = maputil.SortedKeys(cs.IncreasedProperties)
	}
	if len(cs.MissingProperties) > 0 {
		node["removedProperties"] = maputil.SortedKeys(cs.MissingProperties)
	}

	if len(cs.ChangedProperties) > 0 {
		changedProps := map[string]any{}
		for _, name := range maputil.SortedKeys(cs.ChangedProperties) {
			if propNode := b.schemaNode(cs.ChangedProperties[name], visited); propNode != nil {
				changedProps[name] = propNode
			}
		}
		if len(changedProps) > 0 {
			node["changedProperties"] = changedProps
		}
	}

	if cs.Items != nil {
		if itemsNode := b.schemaNode(cs.Items, visited); itemsNode != nil {
			node["items"] = itemsNode
		}
	}

	if len(node) == 0 {
		return nil
	}
	return node
}

func schemaTypeSide(s *spec.Schema) *string {
	if s == nil {
		return nil
	}
	return stringOrNil(s.Type)
}

func schemaFormatSide(s *spec.Schema) *string {
	if s == nil {
		return nil
	}
	return stringOrNil(s.Format)
}
