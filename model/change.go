package model

// StringChange records a before/after pair for a string field.
// A nil side means the value was absent on that side of the comparison.
type StringChange struct {
	Old *string
	New *string
}

// BoolChange records a before/after pair for a boolean field.
type BoolChange struct {
	Old *bool
	New *bool
}

// IntChange records a before/after pair for an integer field.
type IntChange struct {
	Old *int
	New *int
}

// ValuesChange records additions and removals within an enumeration's value set
type ValuesChange struct {
	Increased []any
	Missing   []any
}

// IsEmpty reports whether the change carries no values on either side
func (c *ValuesChange) IsEmpty() bool {
	return c == nil || (len(c.Increased) == 0 && len(c.Missing) == 0)
}

// FieldsChange records additions and removals within a required-field name set
type FieldsChange struct {
	Increased []string
	Missing   []string
}

// IsEmpty reports whether the change carries no names on either side
func (c *FieldsChange) IsEmpty() bool {
	return c == nil || (len(c.Increased) == 0 && len(c.Missing) == 0)
}

// Ptr returns a pointer to v. It is a convenience for building change pairs
// and required flags from literals.
func Ptr[T any](v T) *T {
	return &v
}
