package graph

import (
	"testing"

	"github.com/signadot/graphmap/parse"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	k, err := Lookup("Photo")
	require.NoError(t, err)
	assert.Equal(t, "Photo", k.Name())

	node, err := parse.Parse([]byte(`{"id":"20","width":100}`))
	require.NoError(t, err)
	v, err := k.DecodeAny(node)
	require.NoError(t, err)
	photo, ok := v.(*Photo)
	require.True(t, ok)
	assert.Equal(t, 100, photo.Width())

	_, err = Lookup("Album")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestKinds(t *testing.T) {
	assert.Equal(t, []string{
		"CategorizedIdentity",
		"Comment",
		"Identity",
		"Image",
		"Location",
		"NamedIdentity",
		"Note",
		"Photo",
		"PhotoTag",
		"Place",
	}, Kinds())
}

func TestRegisterDuplicate(t *testing.T) {
	assert.Error(t, Register(NoteTable))
	assert.Error(t, Register(nil))
}

func TestPhotoBindings(t *testing.T) {
	wires := map[string]string{}
	for _, b := range PhotoTable.Bindings() {
		wires[b.Attr] = b.Wire
	}
	assert.Equal(t, "created_time", wires["createdTime"])
	assert.Equal(t, "backdated_time_granularity", wires["backdatedTimeGranularity"])
	assert.Equal(t, "id", wires["id"])
	assert.Equal(t, "name", wires["name"])
}
