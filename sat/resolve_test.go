package sat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEntities_Version400(t *testing.T) {
	h := Header{Version: 400}
	entities, err := buildEntities([]Record{
		{Num: 0, Tokens: []string{"body", "$-1", "$1", "0.5"}},
	}, &h)
	require.NoError(t, err)

	e := entities[0]
	require.NotNil(t, e)
	assert.Equal(t, "body", e.Name)
	assert.Equal(t, -1, e.ID, "no id column below version 700")
	assert.Equal(t, "$-1", e.attrPtr)
	require.Len(t, e.Data, 2)
	assert.Equal(t, "$1", e.Data[0].Literal())
	assert.Equal(t, "0.5", e.Data[1].Literal())
}

func TestBuildEntities_IDColumn(t *testing.T) {
	h := Header{Version: 20800}
	entities, err := buildEntities([]Record{
		{Num: 0, Tokens: []string{"body", "$-1", "7", "$1"}},
	}, &h)
	require.NoError(t, err)

	e := entities[0]
	assert.Equal(t, 7, e.ID)
	require.Len(t, e.Data, 1)
	assert.Equal(t, "$1", e.Data[0].Literal())
}

func TestBuildEntities_BadID(t *testing.T) {
	h := Header{Version: 20800}
	_, err := buildEntities([]Record{
		{Num: 0, Tokens: []string{"body", "$-1", "seven", "$1"}},
	}, &h)
	assert.Error(t, err)
}

func TestResolvePointers_ForwardReference(t *testing.T) {
	h := Header{Version: 400}
	unresolved, err := buildEntities([]Record{
		{Num: 0, Tokens: []string{"body", "$-1", "$1"}},
		{Num: 1, Tokens: []string{"lump", "$-1", "$-1"}},
	}, &h)
	require.NoError(t, err)

	entities, err := resolvePointers(unresolved)
	require.NoError(t, err)
	require.Len(t, entities, 2)

	body, lump := entities[0], entities[1]
	assert.Same(t, NullPtr, body.Attributes)
	require.True(t, body.Data[0].IsRef())
	assert.Same(t, lump, body.Data[0].Entity())
	assert.Same(t, NullPtr, lump.Data[0].Entity(), "$-1 in data resolves to the null pointer")
}

func TestResolvePointers_Cycle(t *testing.T) {
	// entities may reference each other through attributes; resolution
	// must not walk the graph
	h := Header{Version: 400}
	unresolved, err := buildEntities([]Record{
		{Num: 0, Tokens: []string{"wire", "$1"}},
		{Num: 1, Tokens: []string{"wire", "$0"}},
	}, &h)
	require.NoError(t, err)

	entities, err := resolvePointers(unresolved)
	require.NoError(t, err)
	assert.Same(t, entities[1], entities[0].Attributes)
	assert.Same(t, entities[0], entities[1].Attributes)
}

func TestResolvePointers_SortsByRecordNumber(t *testing.T) {
	h := Header{Version: 400}
	unresolved, err := buildEntities([]Record{
		{Num: 5, Tokens: []string{"lump", "$-1"}},
		{Num: 2, Tokens: []string{"body", "$-1", "$5"}},
	}, &h)
	require.NoError(t, err)

	entities, err := resolvePointers(unresolved)
	require.NoError(t, err)
	require.Len(t, entities, 2)
	assert.Equal(t, "body", entities[0].Name)
	assert.Equal(t, "lump", entities[1].Name)
	assert.Same(t, entities[1], entities[0].Data[0].Entity())
}

func TestResolvePointers_UnresolvedReference(t *testing.T) {
	h := Header{Version: 400}
	unresolved, err := buildEntities([]Record{
		{Num: 0, Tokens: []string{"body", "$-1", "$9"}},
	}, &h)
	require.NoError(t, err)

	_, err = resolvePointers(unresolved)
	require.ErrorIs(t, err, ErrUnresolvedRef)
}

func TestResolvePointers_MalformedAttributePointer(t *testing.T) {
	h := Header{Version: 400}
	unresolved, err := buildEntities([]Record{
		{Num: 0, Tokens: []string{"body", "12"}},
	}, &h)
	require.NoError(t, err)

	_, err = resolvePointers(unresolved)
	require.ErrorIs(t, err, ErrMalformedPointer)
}

func TestResolvePointers_MalformedDataPointer(t *testing.T) {
	h := Header{Version: 400}
	unresolved, err := buildEntities([]Record{
		{Num: 0, Tokens: []string{"body", "$-1", "$abc"}},
	}, &h)
	require.NoError(t, err)

	_, err = resolvePointers(unresolved)
	require.ErrorIs(t, err, ErrMalformedPointer)
}

func TestResolvePointers_LiteralsStayLiteral(t *testing.T) {
	h := Header{Version: 400}
	unresolved, err := buildEntities([]Record{
		{Num: 0, Tokens: []string{"point", "$-1", "1.5", "-2", "0"}},
	}, &h)
	require.NoError(t, err)

	entities, err := resolvePointers(unresolved)
	require.NoError(t, err)
	for _, d := range entities[0].Data {
		assert.False(t, d.IsRef())
	}
}
