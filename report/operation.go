package report

import (
	"github.com/erraggy/oasreport/internal/maputil"
	"github.com/erraggy/oasreport/model"
)

func (b *builder) operationNode(op *model.ChangedOperation) map[string]any {
	node := map[string]any{
		"method":     op.Method,
		"path":       op.Path,
		"compatible": op.Compatible,
	}
	if id := op.ResolvedOperationID(); id != "" {
		node["operationId"] = id
	}

	if op.Summary != nil {
		node["summary"] = changeNode(op.Summary.Old, op.Summary.New)
	}
	// A changed operationId replaces the scalar display value with its
	// change pair under the same key.
	if op.OperationID != nil {
		node["operationId"] = changeNode(op.OperationID.Old, op.OperationID.New)
	}

	if op.Parameters != nil {
		if params := b.parametersNode(op.Parameters); params != nil {
			node["parameters"] = params
		}
	}
	if op.RequestBody != nil {
		if body := b.requestBodyNode(op.RequestBody); body != nil {
			node["requestBody"] = body
		}
	}
	if op.Responses != nil {
		if responses := b.responsesNode(op.Responses); responses != nil {
			node["responses"] = responses
		}
	}

	return node
}

// parametersNode renders the three-way parameter partition. Returns nil when
// all three groups are empty so the caller omits the key entirely.
func (b *builder) parametersNode(params *model.ChangedParameters) map[string]any {
	node := map[string]any{}

	if len(params.Increased) > 0 {
		added := make([]any, 0, len(params.Increased))
		for _, p := range params.Increased {
			pNode := map[string]any{
				"name": p.Name,
				"in":   p.In,
			}
			if p.Required != nil {
				pNode["required"] = *p.Required
			}
			added = append(added, pNode)
		}
		node["added"] = added
	}

	if len(params.Missing) > 0 {
		// Identity only; a deleted parameter's internals are not described.
		removed := make([]any, 0, len(params.Missing))
		for _, p := range params.Missing {
			removed = append(removed, map[string]any{
				"name": p.Name,
				"in":   p.In,
			})
		}
		node["removed"] = removed
	}

	if len(params.Changed) > 0 {
		changed := make([]any, 0, len(params.Changed))
		for _, cp := range params.Changed {
			changed = append(changed, b.parameterNode(cp))
		}
		node["changed"] = changed
	}

	if len(node) == 0 {
		return nil
	}
	return node
}

func (b *builder) parameterNode(cp *model.ChangedParameter) map[string]any {
	node := map[string]any{
		"name": cp.Name,
		"in":   cp.In,
	}

	if cp.RequiredChanged {
		var oldReq, newReq *bool
		if cp.OldParameter != nil {
			oldReq = cp.OldParameter.Required
		}
		if cp.NewParameter != nil {
			newReq = cp.NewParameter.Required
		}
		node["required"] = changeNode(oldReq, newReq)
	}

	if cp.Schema != nil {
		if schema := b.schemaNode(cp.Schema, newSchemaVisited()); schema != nil {
			node["schema"] = schema
		}
	}

	return node
}

func (b *builder) requestBodyNode(body *model.ChangedRequestBody) map[string]any {
	node := map[string]any{}

	if body.RequiredChanged {
		var oldReq, newReq *bool
		if body.OldRequestBody != nil {
			oldReq = body.OldRequestBody.Required
		}
		if body.NewRequestBody != nil {
			newReq = body.NewRequestBody.Required
		}
		node["required"] = changeNode(oldReq, newReq)
	}

	if body.Content != nil {
		if content := b.contentNode(body.Content); content != nil {
			node["content"] = content
		}
	}

	if len(node) == 0 {
		return nil
	}
	return node
}

// contentNode renders the three-way media-type partition. Added and removed
// media types are listed by name only; changed ones recurse into their
// schema change.
func (b *builder) contentNode(content *model.ChangedContent) map[string]any {
	node := map[string]any{}

	if len(content.Increased) > 0 {
		added := make([]any, 0, len(content.Increased))
		for _, mediaType := range maputil.SortedKeys(content.Increased) {
			added = append(added, mediaType)
		}
		node["added"] = added
	}

	if len(content.Missing) > 0 {
		removed := make([]any, 0, len(content.Missing))
		for _, mediaType := range maputil.SortedKeys(content.Missing) {
			removed = append(removed, mediaType)
		}
		node["removed"] = removed
	}

	if len(content.Changed) > 0 {
		changed := map[string]any{}
		for _, mediaType := range maputil.SortedKeys(content.Changed) {
			cmt := content.Changed[mediaType]
			if cmt.Schema == nil {
				continue
			}
			mNode := map[string]any{}
			if schema := b.schemaNode(cmt.Schema, newSchemaVisited()); schema != nil {
				mNode["schema"] = schema
			}
			changed[mediaType] = mNode
		}
		if len(changed) > 0 {
			node["changed"] = changed
		}
	}

	if len(node) == 0 {
		return nil
	}
	return node
}

// responsesNode renders the three-way response partition keyed by status code.
func (b *builder) responsesNode(responses *model.ChangedResponses) map[string]any {
	node := map[string]any{}

	if len(responses.Increased) > 0 {
		added := make([]any, 0, len(responses.Increased))
		for _, statusCode := range maputil.SortedKeys(responses.Increased) {
			rNode := map[string]any{
				"statusCode": statusCode,
			}
			if resp := responses.Increased[statusCode]; resp != nil && resp.Description != "" {
				rNode["description"] = resp.Description
			}
			added = append(added, rNode)
		}
		node["added"] = added
	}

	if len(responses.Missing) > 0 {
		removed := make([]any, 0, len(responses.Missing))
		for _, statusCode := range maputil.SortedKeys(responses.Missing) {
			removed = append(removed, statusCode)
		}
		node["removed"] = removed
	}

	if len(responses.Changed) > 0 {
		changed := map[string]any{}
		for _, statusCode := range maputil.SortedKeys(responses.Changed) {
			if rNode := b.responseNode(responses.Changed[statusCode]); rNode != nil {
				changed[statusCode] = rNode
			}
		}
		if len(changed) > 0 {
			node["changed"] = changed
		}
	}

	if len(node) == 0 {
		return nil
	}
	return node
}

func (b *builder) responseNode(resp *model.ChangedResponse) map[string]any {
	node := map[string]any{}

	if resp.Description != nil {
		node["description"] = changeNode(resp.Description.Old, resp.Description.New)
	}

	if resp.Content != nil {
		if content := b.contentNode(resp.Content); content != nil {
			node["content"] = content
		}
	}

	if len(node) == 0 {
		return nil
	}
	return node
}
