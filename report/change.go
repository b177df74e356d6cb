package report

// changeNode builds the uniform {from, to} representation of a scalar
// change. A nil side is emitted as an explicit JSON null, never as a missing
// key, so consumers can tell "cleared" apart from "never reported". The same
// constructor serves strings, booleans, and integers.
func changeNode[T any](from, to *T) map[string]any {
	node := map[string]any{
		"from": nil,
		"to":   nil,
	}
	if from != nil {
		node["from"] = *from
	}
	if to != nil {
		node["to"] = *to
	}
	return node
}

// stringOrNil maps the zero string to nil so empty scalar fields on a
// present object render as null, matching an absent object.
func stringOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
