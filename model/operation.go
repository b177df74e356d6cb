package model

import "github.com/erraggy/oasreport/spec"

// ChangedOperation describes all changes to one operation, identified by
// its method and path.
type ChangedOperation struct {
	Method HTTPMethod
	Path   string

	// OldOperation and NewOperation are the two sides of the comparison.
	// NewOperation is nil when the operation was removed.
	OldOperation *spec.Operation
	NewOperation *spec.Operation

	// Compatible is the engine's verdict for this operation alone,
	// independent of its children.
	Compatible bool

	// Summary and OperationID are set only when the respective scalar
	// actually differs between the two sides.
	Summary     *StringChange
	OperationID *StringChange

	Parameters  *ChangedParameters
	RequestBody *ChangedRequestBody
	Responses   *ChangedResponses
}

// ResolvedOperationID returns the operation's display identifier, preferring
// the new operation and falling back to the old one. The fallback covers
// removed endpoints, which have no new side. Returns "" when neither side
// carries an identifier.
func (op *ChangedOperation) ResolvedOperationID() string {
	if op.NewOperation != nil && op.NewOperation.OperationID != "" {
		return op.NewOperation.OperationID
	}
	if op.OldOperation != nil {
		return op.OldOperation.OperationID
	}
	return ""
}

// ChangedParameters partitions an operation's parameters into three disjoint
// groups keyed by (name, in): newly present, no longer present, and present
// on both sides but altered.
type ChangedParameters struct {
	Increased []*spec.Parameter
	Missing   []*spec.Parameter
	Changed   []*ChangedParameter
}

// ChangedParameter describes changes to one parameter present on both sides
type ChangedParameter struct {
	Name string
	In   string

	OldParameter *spec.Parameter
	NewParameter *spec.Parameter

	// RequiredChanged is set when the required flag differs between sides
	RequiredChanged bool

	// Schema is the nested schema change, when the parameter schema changed
	Schema *ChangedSchema
}

// ChangedRequestBody describes changes to an operation's request body
type ChangedRequestBody struct {
	OldRequestBody *spec.RequestBody
	NewRequestBody *spec.RequestBody

	// RequiredChanged is set when the required flag differs between sides
	RequiredChanged bool

	Content *ChangedContent
}

// ChangedContent partitions a content map into three disjoint groups keyed
// by media-type string.
type ChangedContent struct {
	Increased map[string]*spec.MediaType
	Missing   map[string]*spec.MediaType
	Changed   map[string]*ChangedMediaType
}

// ChangedMediaType describes changes to one media type present on both sides
type ChangedMediaType struct {
	OldMediaType *spec.MediaType
	NewMediaType *spec.MediaType

	Schema *ChangedSchema
}

// ChangedResponses partitions an operation's responses into three disjoint
// groups keyed by status-code string.
type ChangedResponses struct {
	// Increased carries the new response objects so consumers can surface
	// their descriptions.
	Increased map[string]*spec.Response
	Missing   map[string]*spec.Response
	Changed   map[string]*ChangedResponse
}

// ChangedResponse describes changes to one response present on both sides
type ChangedResponse struct {
	OldResponse *spec.Response
	NewResponse *spec.Response

	// Description is set only when the response description actually differs
	Description *StringChange

	Content *ChangedContent
}
