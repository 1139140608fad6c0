package chat

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"secondbrain/internal/entity"
)

type fakeSearcher struct {
	lastTerm string
	notes    []entity.Note
	err      error
}

func (f *fakeSearcher) ListNotes(_ context.Context, search string) ([]entity.Note, error) {
	f.lastTerm = search
	if f.err != nil {
		return nil, f.err
	}
	return f.notes, nil
}

func TestSelect_FirstLongTokenWins(t *testing.T) {
	searcher := &fakeSearcher{}
	sel := NewKeywordSelector(searcher)

	_, err := sel.Select(context.Background(), "who is the new manager")
	require.NoError(t, err)

	assert.Equal(t, "manager", searcher.lastTerm)
}

func TestSelect_FourCharTokenSurvives(t *testing.T) {
	searcher := &fakeSearcher{}
	sel := NewKeywordSelector(searcher)

	_, err := sel.Select(context.Background(), "the wiki page")
	require.NoError(t, err)

	// Exactly three characters is filtered, four survives.
	assert.Equal(t, "wiki", searcher.lastTerm)
}

func TestSelect_NoSurvivingTokenFallsBack(t *testing.T) {
	searcher := &fakeSearcher{notes: []entity.Note{{ID: 1}, {ID: 2}}}
	sel := NewKeywordSelector(searcher)

	notes, err := sel.Select(context.Background(), "a an the is")
	require.NoError(t, err)

	assert.Equal(t, "", searcher.lastTerm)
	assert.Len(t, notes, 2)
}

func TestSelect_BoundedToFive(t *testing.T) {
	searcher := &fakeSearcher{}
	for i := range 8 {
		searcher.notes = append(searcher.notes, entity.Note{ID: int64(i + 1)})
	}
	sel := NewKeywordSelector(searcher)

	notes, err := sel.Select(context.Background(), "everything about projects")
	require.NoError(t, err)

	require.Len(t, notes, 5)
	// The store's recency ordering is preserved, only truncated.
	for i, n := range notes {
		assert.Equal(t, int64(i+1), n.ID)
	}
}

func TestSelect_SearcherError(t *testing.T) {
	searcher := &fakeSearcher{err: fmt.Errorf("store gone")}
	sel := NewKeywordSelector(searcher)

	_, err := sel.Select(context.Background(), "anything relevant")
	assert.Error(t, err)
}

func TestContextBlock(t *testing.T) {
	notes := []entity.Note{
		{ID: 1, Title: "Apple", Content: "I like fruit"},
		{ID: 2, Title: "Fruit Basket", Content: "Apple is my favorite"},
	}

	block := ContextBlock(notes)

	parts := strings.Split(block, "\n\n")
	require.Len(t, parts, 2)
	assert.Equal(t, "[Note 1: Apple] I like fruit", parts[0])
	assert.Equal(t, "[Note 2: Fruit Basket] Apple is my favorite", parts[1])
}

func TestContextBlock_Empty(t *testing.T) {
	assert.Equal(t, "", ContextBlock(nil))
}
