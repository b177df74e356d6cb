package spec

// Schema represents a JSON Schema as used by OAS 2.0 through OAS 3.1.
//
// Only the subset of JSON Schema relevant to diff reporting is modeled here.
// Unknown and extension fields supplied by the comparison engine are carried
// in Extra and survive verbatim embedding.
type Schema struct {
	// Name is the key this schema was registered under in the document's
	// component registry (definitions / components.schemas). It is not part
	// of the schema object and never serializes.
	Name string `yaml:"-" json:"-"`

	Ref string `yaml:"$ref,omitempty" json:"$ref,omitempty"`

	// Metadata
	Title       string `yaml:"title,omitempty" json:"title,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Default     any    `yaml:"default,omitempty" json:"default,omitempty"`

	// Type validation
	Type   string `yaml:"type,omitempty" json:"type,omitempty"`
	Format string `yaml:"format,omitempty" json:"format,omitempty"`
	Enum   []any  `yaml:"enum,omitempty" json:"enum,omitempty"`

	// Numeric validation
	Maximum    *float64 `yaml:"maximum,omitempty" json:"maximum,omitempty"`
	Minimum    *float64 `yaml:"minimum,omitempty" json:"minimum,omitempty"`
	MultipleOf *float64 `yaml:"multipleOf,omitempty" json:"multipleOf,omitempty"`

	// String validation
	MaxLength *int   `yaml:"maxLength,omitempty" json:"maxLength,omitempty"`
	MinLength *int   `yaml:"minLength,omitempty" json:"minLength,omitempty"`
	Pattern   string `yaml:"pattern,omitempty" json:"pattern,omitempty"`

	// Array validation
	Items    *Schema `yaml:"items,omitempty" json:"items,omitempty"`
	MaxItems *int    `yaml:"maxItems,omitempty" json:"maxItems,omitempty"`
	MinItems *int    `yaml:"minItems,omitempty" json:"minItems,omitempty"`

	// Object validation
	Properties    map[string]*Schema `yaml:"properties,omitempty" json:"properties,omitempty"`
	Required      []string           `yaml:"required,omitempty" json:"required,omitempty"`
	MaxProperties *int               `yaml:"maxProperties,omitempty" json:"maxProperties,omitempty"`
	MinProperties *int               `yaml:"minProperties,omitempty" json:"minProperties,omitempty"`

	// OAS specific fields
	Nullable   bool   `yaml:"nullable,omitempty" json:"nullable,omitempty"`     // OAS 3.0 only
	ReadOnly   bool   `yaml:"readOnly,omitempty" json:"readOnly,omitempty"`     // OAS 2.0+
	WriteOnly  bool   `yaml:"writeOnly,omitempty" json:"writeOnly,omitempty"`   // OAS 3.0+
	Deprecated bool   `yaml:"deprecated,omitempty" json:"deprecated,omitempty"` // OAS 3.0+
	Example    any    `yaml:"example,omitempty" json:"example,omitempty"`

	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}
