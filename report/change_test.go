package report

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasreport/model"
)

func TestChangeNode(t *testing.T) {
	t.Run("both sides present", func(t *testing.T) {
		node := changeNode(model.Ptr("a"), model.Ptr("b"))
		assert.Equal(t, map[string]any{"from": "a", "to": "b"}, node)
	})

	t.Run("nil sides are explicit keys", func(t *testing.T) {
		node := changeNode[string](nil, model.Ptr("b"))
		require.Contains(t, node, "from")
		assert.Nil(t, node["from"])
		assert.Equal(t, "b", node["to"])

		node = changeNode(model.Ptr(true), nil)
		require.Contains(t, node, "to")
		assert.Nil(t, node["to"])
		assert.Equal(t, true, node["from"])
	})

	t.Run("both sides nil", func(t *testing.T) {
		node := changeNode[int](nil, nil)
		assert.Equal(t, map[string]any{"from": nil, "to": nil}, node)
	})

	t.Run("nil side serializes as JSON null", func(t *testing.T) {
		data, err := json.Marshal(changeNode[string](nil, model.Ptr("x")))
		require.NoError(t, err)
		assert.JSONEq(t, `{"from":null,"to":"x"}`, string(data))
	})
}

func TestStringOrNil(t *testing.T) {
	assert.Nil(t, stringOrNil(""))

	got := stringOrNil("value")
	require.NotNil(t, got)
	assert.Equal(t, "value", *got)
}
