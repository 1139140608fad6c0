package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"secondbrain/internal/entity"
)

type fakeSelector struct {
	notes []entity.Note
	err   error
}

func (f *fakeSelector) Select(context.Context, string) ([]entity.Note, error) {
	return f.notes, f.err
}

type fakeGenerator struct {
	system string
	prompt string
	answer string
	err    error
}

func (f *fakeGenerator) Generate(_ context.Context, system, prompt string) (string, error) {
	f.system = system
	f.prompt = prompt
	return f.answer, f.err
}

func TestChat_AnswersWithCitedNotes(t *testing.T) {
	notes := []entity.Note{{ID: 7, Title: "Apple", Content: "I like fruit"}}
	gen := &fakeGenerator{answer: "You like fruit (Note 7)."}

	uc, err := New(NewOptions(&fakeSelector{notes: notes}, gen))
	require.NoError(t, err)

	result, err := uc.Chat(context.Background(), "what do I like?")
	require.NoError(t, err)

	assert.Equal(t, "You like fruit (Note 7).", result.Answer)
	assert.Equal(t, notes, result.CitedNotes)

	assert.Contains(t, gen.system, "Second Brain")
	assert.Contains(t, gen.prompt, "Context:\n[Note 7: Apple] I like fruit")
	assert.Contains(t, gen.prompt, "Question: what do I like?")
}

func TestChat_GenerationFailure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("model timeout")}

	uc, err := New(NewOptions(&fakeSelector{}, gen))
	require.NoError(t, err)

	_, err = uc.Chat(context.Background(), "anything")
	assert.ErrorIs(t, err, entity.ErrGeneration)
}

func TestChat_EmptyAnswerFallsBack(t *testing.T) {
	uc, err := New(NewOptions(&fakeSelector{}, &fakeGenerator{}))
	require.NoError(t, err)

	result, err := uc.Chat(context.Background(), "anything")
	require.NoError(t, err)

	assert.Equal(t, fallbackAnswer, result.Answer)
}

func TestChat_SelectorFailure(t *testing.T) {
	uc, err := New(NewOptions(&fakeSelector{err: errors.New("store gone")}, &fakeGenerator{answer: "x"}))
	require.NoError(t, err)

	_, err = uc.Chat(context.Background(), "anything")
	require.Error(t, err)
	assert.NotErrorIs(t, err, entity.ErrGeneration)
}
