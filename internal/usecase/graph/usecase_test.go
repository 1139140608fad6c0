package graph

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"secondbrain/internal/entity"
)

type fakeLister struct {
	notes    []entity.Note
	links    []entity.Link
	notesErr error
	linksErr error
}

func (f *fakeLister) ListNotes(context.Context, string) ([]entity.Note, error) {
	return f.notes, f.notesErr
}

func (f *fakeLister) ListLinks(context.Context) ([]entity.Link, error) {
	return f.links, f.linksErr
}

func TestGraph_ProjectsEverything(t *testing.T) {
	store := &fakeLister{
		notes: []entity.Note{
			{ID: 1, Title: "Apple", Type: "text", Content: "ignored by the projection"},
			{ID: 2, Title: "Fruit Basket", Type: "voice"},
		},
		links: []entity.Link{
			{ID: 10, SourceID: 2, TargetID: 1, Type: entity.LinkTypeAIGenerated},
		},
	}

	uc, err := New(NewOptions(store, store))
	require.NoError(t, err)

	g, err := uc.Graph(context.Background())
	require.NoError(t, err)

	require.Len(t, g.Nodes, len(store.notes))
	require.Len(t, g.Edges, len(store.links))

	assert.Equal(t, entity.GraphNode{ID: 1, Label: "Apple", Type: "text"}, g.Nodes[0])
	assert.Equal(t, entity.GraphNode{ID: 2, Label: "Fruit Basket", Type: "voice"}, g.Nodes[1])
	assert.Equal(t, entity.GraphEdge{Source: 2, Target: 1, Type: entity.LinkTypeAIGenerated}, g.Edges[0])
}

func TestGraph_Empty(t *testing.T) {
	uc, err := New(NewOptions(&fakeLister{}, &fakeLister{}))
	require.NoError(t, err)

	g, err := uc.Graph(context.Background())
	require.NoError(t, err)

	assert.Empty(t, g.Nodes)
	assert.Empty(t, g.Edges)
}

func TestGraph_StoreFailure(t *testing.T) {
	uc, err := New(NewOptions(&fakeLister{notesErr: errors.New("down")}, &fakeLister{}))
	require.NoError(t, err)

	_, err = uc.Graph(context.Background())
	assert.Error(t, err)
}
