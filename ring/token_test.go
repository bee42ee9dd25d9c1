package ring

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRingToken_Ordering(t *testing.T) {
	// Ordering looks at positions only, never at nodes.
	tokens := []RingToken[string]{
		{Position: 30, Node: "a"},
		{Position: 10, Node: "z"},
		{Position: 20, Node: "m"},
	}

	slices.SortFunc(tokens, RingToken[string].Compare)

	assert.Equal(t, []string{"z", "m", "a"}, []string{tokens[0].Node, tokens[1].Node, tokens[2].Node})
	assert.True(t, tokens[0].Less(tokens[1]))
	assert.False(t, tokens[1].Less(tokens[0]))
	assert.Equal(t, 0, tokens[0].Compare(RingToken[string]{Position: 10, Node: "other"}))
}

func TestDirection_String(t *testing.T) {
	assert.Equal(t, "clockwise", Clockwise.String())
	assert.Equal(t, "counter-clockwise", CounterClockwise.String())
}
