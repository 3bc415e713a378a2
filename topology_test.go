package storm

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestComponentIDs(t *testing.T) {
	tp := NewTopology()
	tp.Processors["zeta"] = declaredComponent(nil)
	tp.Sources["alpha"] = declaredComponent([]string{"s1"})
	tp.StatefulSources["mid"] = declaredComponent([]string{"snap"})

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, tp.ComponentIDs())
}

func TestComponentIDsEmpty(t *testing.T) {
	assert.Equal(t, []string{}, NewTopology().ComponentIDs())
}

func TestComponentLookup(t *testing.T) {
	tp := NewTopology()
	proc := declaredComponent(nil)
	src := declaredComponent([]string{"s1"})
	state := declaredComponent([]string{"snap"})
	tp.Processors["p"] = proc
	tp.Sources["s"] = src
	tp.StatefulSources["ss"] = state

	got, err := tp.Component("p")
	assert.NoError(t, err)
	assert.Equal(t, proc, got)

	got, err = tp.Component("s")
	assert.NoError(t, err)
	assert.Equal(t, src, got)

	got, err = tp.Component("ss")
	assert.NoError(t, err)
	assert.Equal(t, state, got)
}

func TestComponentNotFound(t *testing.T) {
	tp := NewTopology()
	tp.Sources["s"] = declaredComponent([]string{"s1"})

	_, err := tp.Component("missing")
	assert.Error(t, err)
	assert.IsError(t, err, ErrComponentNotFound)
	assert.Contains(t, err.Error(), "missing")
}
