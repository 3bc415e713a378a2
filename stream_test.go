package storm

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestStreamRefEquality(t *testing.T) {
	set := map[StreamRef]bool{}
	set[ref("A", "s1")] = true
	set[StreamRef{Component: "A", Stream: "s1"}] = true
	set[ref("A", "s2")] = true

	assert.Equal(t, 2, len(set))
	assert.True(t, set[ref("A", "s1")])
}

func TestStreamRefString(t *testing.T) {
	assert.Equal(t, "(counter, totals)", ref("counter", "totals").String())
}

func TestSortedRefs(t *testing.T) {
	set := map[StreamRef]bool{
		ref("b", "y"): true,
		ref("b", "x"): true,
		ref("a", "z"): true,
	}
	assert.Equal(t, []StreamRef{ref("a", "z"), ref("b", "x"), ref("b", "y")}, sortedRefs(set))
}
