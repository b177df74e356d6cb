package model

import "github.com/erraggy/oasreport/spec"

// DiffContext identifies where in the API surface a schema comparison took
// place. The engine supplies it for top-level schema entries; the renderer
// embeds it verbatim.
type DiffContext struct {
	Method HTTPMethod `yaml:"method,omitempty" json:"method,omitempty"`
	Path   string     `yaml:"path,omitempty" json:"path,omitempty"`
	// Location narrows the context below the operation, e.g.
	// "response.200.content.application/json".
	Location string `yaml:"location,omitempty" json:"location,omitempty"`
}

// ChangedSchema is the recursive unit of the diff-result graph.
//
// The ChangedProperties and Items edges may form cycles: a schema that
// references itself (directly or through intermediate properties) produces a
// change node whose descendants include the node itself. Consumers must
// track node identity when traversing; the same instance may also appear in
// several unrelated branches when a schema is shared, which is not a cycle.
type ChangedSchema struct {
	// Context is a caller-supplied locator for top-level entries, nil otherwise
	Context *DiffContext

	// OldSchema and NewSchema are the two sides of the comparison.
	// Either may be nil.
	OldSchema *spec.Schema
	NewSchema *spec.Schema

	// Compatible is the engine's verdict for this schema subtree
	Compatible bool

	// TypeChanged and FormatChanged flag scalar attribute changes whose
	// values the renderer reads off OldSchema/NewSchema.
	TypeChanged   bool
	FormatChanged bool

	// Attribute change pairs, set only when the attribute actually differs
	ReadOnly  *BoolChange
	WriteOnly *BoolChange
	Nullable  *BoolChange
	MaxLength *IntChange
	MinLength *IntChange
	Pattern   *StringChange

	// Enumeration records added and removed enum values
	Enumeration *ValuesChange
	// Required records added and removed required-field names
	Required *FieldsChange

	// Property partitions, keyed by property name
	IncreasedProperties map[string]*spec.Schema
	MissingProperties   map[string]*spec.Schema
	ChangedProperties   map[string]*ChangedSchema

	// Items is the nested change for array item schemas, nil when unchanged
	Items *ChangedSchema
}

// ResolvedName returns the schema's display name, preferring the new side
// and falling back to the old. Returns "" when neither side is named.
func (cs *ChangedSchema) ResolvedName() string {
	if cs.NewSchema != nil && cs.NewSchema.Name != "" {
		return cs.NewSchema.Name
	}
	if cs.OldSchema != nil {
		return cs.OldSchema.Name
	}
	return ""
}
