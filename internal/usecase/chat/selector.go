package chat

import (
	"context"
	"fmt"
	"strings"

	"secondbrain/internal/entity"
)

// contextLimit bounds how many notes ground one answer.
const contextLimit = 5

// minTokenLen is the keyword heuristic's stopword cut: tokens this short are
// ignored when picking a search term.
const minTokenLen = 3

type notesSearcher interface {
	ListNotes(ctx context.Context, search string) ([]entity.Note, error)
}

// Selector picks the notes that ground an answer to a free-text question.
// KeywordSelector is the substring heuristic; an embedding-based strategy can
// implement the same interface.
type Selector interface {
	Select(ctx context.Context, query string) ([]entity.Note, error)
}

type KeywordSelector struct {
	notes notesSearcher
}

func NewKeywordSelector(notes notesSearcher) *KeywordSelector {
	return &KeywordSelector{notes: notes}
}

// Select searches the store with the first query token longer than
// minTokenLen and keeps the top results by recency. Without a surviving
// token the unfiltered list is used.
func (s *KeywordSelector) Select(ctx context.Context, query string) ([]entity.Note, error) {
	var term string
	for _, token := range strings.Fields(query) {
		if len(token) > minTokenLen {
			term = token
			break
		}
	}

	notes, err := s.notes.ListNotes(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("select notes: %w", err)
	}

	if len(notes) > contextLimit {
		notes = notes[:contextLimit]
	}

	return notes, nil
}

// ContextBlock formats the selected notes for the generation prompt.
func ContextBlock(notes []entity.Note) string {
	parts := make([]string, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, fmt.Sprintf("[Note %d: %s] %s", n.ID, n.Title, n.Content))
	}

	return strings.Join(parts, "\n\n")
}
