// Package spec holds the OpenAPI description objects that a diff-result graph
// points into.
//
// These types are inputs: a comparison engine attaches them to the
// [github.com/erraggy/oasreport/model] graph as the "old" and "new" sides of
// a change, and the report renderers either read individual fields from them
// (parameter name and location, response description) or embed them verbatim
// as opaque payloads (the oldSchema/newSchema entries of a changed schema).
// Nothing in this module mutates them.
//
// Field tags follow the OpenAPI wire names so that verbatim embedding
// round-trips cleanly in both JSON and YAML. [Schema.Name] is the one
// exception: it is the component-registry key, not part of the schema object
// itself, and is excluded from serialization.
package spec
