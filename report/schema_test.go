package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasreport/model"
	"github.com/erraggy/oasreport/spec"
)

func TestSchemaNodeNil(t *testing.T) {
	b := newBuilder(nil)
	assert.Nil(t, b.schemaNode(nil, newSchemaVisited()))
}

func TestSchemaNodeEmptyChange(t *testing.T) {
	b := newBuilder(nil)
	cs := &model.ChangedSchema{
		OldSchema: &spec.Schema{Type: "object"},
		NewSchema: &spec.Schema{Type: "object"},
	}
	assert.Nil(t, b.schemaNode(cs, newSchemaVisited()),
		"a node with no reportable change renders as absent")
}

func TestSchemaNodeTypeAndFormat(t *testing.T) {
	b := newBuilder(nil)
	cs := &model.ChangedSchema{
		TypeChanged:   true,
		FormatChanged: true,
		OldSchema:     &spec.Schema{Type: "integer", Format: "int32"},
		NewSchema:     &spec.Schema{Type: "string"},
	}

	node := b.schemaNode(cs, newSchemaVisited())
	require.NotNil(t, node)

	typeNode, ok := node["type"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "integer", typeNode["from"])
	assert.Equal(t, "string", typeNode["to"])

	formatNode, ok := node["format"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "int32", formatNode["from"])
	assert.Nil(t, formatNode["to"], "empty format on the new side renders as null")
}

func TestSchemaNodeTypeSidesAbsentSchema(t *testing.T) {
	b := newBuilder(nil)
	cs := &model.ChangedSchema{
		TypeChanged: true,
		NewSchema:   &spec.Schema{Type: "array"},
	}

	node := b.schemaNode(cs, newSchemaVisited())
	require.NotNil(t, node)

	typeNode := node["type"].(map[string]any)
	require.Contains(t, typeNode, "from", "absent side must be an explicit null, not a missing key")
	assert.Nil(t, typeNode["from"])
	assert.Equal(t, "array", typeNode["to"])
}

func TestSchemaNodeScalarConstraints(t *testing.T) {
	b := newBuilder(nil)
	cs := &model.ChangedSchema{
		ReadOnly:  &model.BoolChange{Old: model.Ptr(false), New: model.Ptr(true)},
		MaxLength: &model.IntChange{Old: model.Ptr(64), New: model.Ptr(32)},
		Pattern:   &model.StringChange{New: model.Ptr(`^[a-z]+$`)},
	}

	node := b.schemaNode(cs, newSchemaVisited())
	require.NotNil(t, node)

	readOnly := node["readOnly"].(map[string]any)
	assert.Equal(t, false, readOnly["from"])
	assert.Equal(t, true, readOnly["to"])

	maxLength := node["maxLength"].(map[string]any)
	assert.Equal(t, 64, maxLength["from"])
	assert.Equal(t, 32, maxLength["to"])

	pattern := node["pattern"].(map[string]any)
	assert.Nil(t, pattern["from"])
	assert.Equal(t, `^[a-z]+$`, pattern["to"])

	assert.NotContains(t, node, "minLength")
	assert.NotContains(t, node, "nullable")
	assert.NotContains(t, node, "writeOnly")
}

func TestSchemaNodeEnumAndRequired(t *testing.T) {
	b := newBuilder(nil)
	cs := &model.ChangedSchema{
		Enumeration: &model.ValuesChange{
			Increased: []any{"pending"},
		},
		Required: &model.FieldsChange{
			Increased: []string{"id"},
			Missing:   []string{"legacyId"},
		},
	}

	node := b.schemaNode(cs, newSchemaVisited())
	require.NotNil(t, node)

	enum := node["enum"].(map[string]any)
	assert.Equal(t, []any{"pending"}, enum["added"])
	assert.NotContains(t, enum, "removed", "empty direction is omitted inside the enum node")

	required := node["required"].(map[string]any)
	assert.Equal(t, []string{"id"}, required["added"])
	assert.Equal(t, []string{"legacyId"}, required["removed"])
}

func TestSchemaNodeProperties(t *testing.T) {
	b := newBuilder(nil)
	cs := &model.ChangedSchema{
		IncreasedProperties: map[string]*spec.Schema{
			"zeta":  {Type: "string"},
			"alpha": {Type: "string"},
		},
		MissingProperties: map[string]*spec.Schema{
			"old": {Type: "integer"},
		},
		ChangedProperties: map[string]*model.ChangedSchema{
			"status": {
				TypeChanged: true,
				OldSchema:   &spec.Schema{Type: "integer"},
				NewSchema:   &spec.Schema{Type: "string"},
			},
			// No reportable change inside; its key must not appear.
			"noise": {},
		},
	}

	node := b.schemaNode(cs, newSchemaVisited())
	require.NotNil(t, node)

	assert.Equal(t, []string{"alpha", "zeta"}, node["addedProperties"],
		"added property names are sorted")
	assert.Equal(t, []string{"old"}, node["removedProperties"])

	changed := node["changedProperties"].(map[string]any)
	require.Contains(t, changed, "status")
	assert.NotContains(t, changed, "noise")

	status := changed["status"].(map[string]any)
	typeNode := status["type"].(map[string]any)
	assert.Equal(t, "integer", typeNode["from"])
	assert.Equal(t, "string", typeNode["to"])
}

func TestSchemaNodeChangedPropertiesAllEmpty(t *testing.T) {
	b := newBuilder(nil)
	cs := &model.ChangedSchema{
		ChangedProperties: map[string]*model.ChangedSchema{
			"a": {},
			"b": {},
		},
	}
	assert.Nil(t, b.schemaNode(cs, newSchemaVisited()),
		"emptiness propagates upward when every nested change is empty")
}

func TestSchemaNodeSelfReferentialItems(t *testing.T) {
	b := newBuilder(nil)

	// A node whose items point back to itself must terminate.
	cs := &model.ChangedSchema{
		TypeChanged: true,
		OldSchema:   &spec.Schema{Type: "object"},
		NewSchema:   &spec.Schema{Type: "array"},
	}
	cs.Items = cs

	node := b.schemaNode(cs, newSchemaVisited())
	require.NotNil(t, node)
	assert.Contains(t, node, "type")
	assert.NotContains(t, node, "items", "the cycle edge renders as absent")
}

func TestSchemaNodeMutualCycle(t *testing.T) {
	b := newBuilder(nil)

	a := &model.ChangedSchema{
		Required: &model.FieldsChange{Increased: []string{"b"}},
	}
	c := &model.ChangedSchema{
		Required: &model.FieldsChange{Increased: []string{"a"}},
	}
	a.ChangedProperties = map[string]*model.ChangedSchema{"child": c}
	c.ChangedProperties = map[string]*model.ChangedSchema{"parent": a}

	node := b.schemaNode(a, newSchemaVisited())
	require.NotNil(t, node)

	child := node["changedProperties"].(map[string]any)["child"].(map[string]any)
	assert.Contains(t, child, "required")
	assert.NotContains(t, child, "changedProperties",
		"recursion back to the open ancestor is suppressed")
}

func TestSchemaNodeSharedInstanceRendersTwice(t *testing.T) {
	b := newBuilder(nil)

	shared := &model.ChangedSchema{
		TypeChanged: true,
		OldSchema:   &spec.Schema{Type: "integer"},
		NewSchema:   &spec.Schema{Type: "string"},
	}
	cs := &model.ChangedSchema{
		ChangedProperties: map[string]*model.ChangedSchema{
			"first":  shared,
			"second": shared,
		},
	}

	node := b.schemaNode(cs, newSchemaVisited())
	require.NotNil(t, node)

	changed := node["changedProperties"].(map[string]any)
	require.Contains(t, changed, "first")
	require.Contains(t, changed, "second",
		"a shared instance on non-overlapping branches renders on both")
	assert.Equal(t, changed["first"], changed["second"])
}

func TestSchemaVisitedEnterLeave(t *testing.T) {
	v := newSchemaVisited()
	cs := &model.ChangedSchema{}

	assert.False(t, v.enter(cs))
	assert.True(t, v.enter(cs), "re-entering an open node reports a cycle")
	v.leave(cs)
	assert.False(t, v.enter(cs), "a closed node may be entered again")
}

func TestSchemaVisitedPointerIdentity(t *testing.T) {
	v := newSchemaVisited()
	a := &model.ChangedSchema{TypeChanged: true}
	b := &model.ChangedSchema{TypeChanged: true}

	assert.False(t, v.enter(a))
	assert.False(t, v.enter(b),
		"structurally equal but distinct nodes are tracked independently")
}
