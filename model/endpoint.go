package model

import "github.com/erraggy/oasreport/spec"

// HTTPMethod is an enumerated HTTP verb as used in OpenAPI path items
type HTTPMethod string

const (
	MethodGet     HTTPMethod = "GET"
	MethodPut     HTTPMethod = "PUT"
	MethodPost    HTTPMethod = "POST"
	MethodDelete  HTTPMethod = "DELETE"
	MethodOptions HTTPMethod = "OPTIONS"
	MethodHead    HTTPMethod = "HEAD"
	MethodPatch   HTTPMethod = "PATCH"
	MethodTrace   HTTPMethod = "TRACE"
	MethodQuery   HTTPMethod = "QUERY" // OAS 3.2+
)

// Endpoint identifies one operation by method and path.
// The comparison engine emits endpoints for operations that exist on only
// one side of the comparison (added or removed) or were newly deprecated.
type Endpoint struct {
	Method HTTPMethod
	Path   string
	// Summary is the operation summary, when the underlying operation has one
	Summary string
	// Operation is the underlying operation object, when the engine supplies it
	Operation *spec.Operation
}

// DiffResult is the root of the diff-result graph for one comparison.
type DiffResult struct {
	// Compatible is the engine's aggregate verdict for the whole comparison.
	// It is supplied, not derived: the renderer reports it as-is regardless
	// of what the change subtrees contain.
	Compatible bool

	NewEndpoints        []*Endpoint
	RemovedEndpoints    []*Endpoint
	DeprecatedEndpoints []*Endpoint

	ChangedOperations []*ChangedOperation

	// ChangedSchemas lists the top-level, named schemas the engine flagged.
	// Nested schema changes hang off operations and properties instead.
	ChangedSchemas []*ChangedSchema
}
