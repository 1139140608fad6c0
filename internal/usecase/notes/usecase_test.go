package notes

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"secondbrain/internal/entity"
	"secondbrain/internal/linker"
)

type fakeStore struct {
	nextNoteID int64
	nextLinkID int64
	notes      map[int64]entity.Note
	links      []entity.Link

	listErr       error
	createLinkErr error

	ops []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{notes: map[int64]entity.Note{}}
}

func (s *fakeStore) CreateNote(_ context.Context, fields entity.NoteFields) (entity.Note, error) {
	s.nextNoteID++
	now := time.Now().Add(time.Duration(s.nextNoteID) * time.Millisecond)
	note := entity.Note{
		ID:         s.nextNoteID,
		Title:      fields.Title,
		Content:    fields.Content,
		Type:       fields.Type,
		Tags:       fields.Tags,
		IsFavorite: fields.IsFavorite,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.notes[note.ID] = note
	return note, nil
}

func (s *fakeStore) GetNote(_ context.Context, id int64) (entity.Note, error) {
	note, ok := s.notes[id]
	if !ok {
		return entity.Note{}, entity.ErrNoteNotFound
	}
	return note, nil
}

func (s *fakeStore) ListNotes(_ context.Context, _ string) ([]entity.Note, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}

	notes := make([]entity.Note, 0, len(s.notes))
	for _, n := range s.notes {
		notes = append(notes, n)
	}
	sort.Slice(notes, func(i, j int) bool {
		return notes[i].UpdatedAt.After(notes[j].UpdatedAt)
	})
	return notes, nil
}

func (s *fakeStore) UpdateNote(_ context.Context, id int64, fields entity.NoteFields) (entity.Note, error) {
	note, ok := s.notes[id]
	if !ok {
		return entity.Note{}, entity.ErrNoteNotFound
	}
	note.Title = fields.Title
	note.Content = fields.Content
	note.Type = fields.Type
	note.Tags = fields.Tags
	note.IsFavorite = fields.IsFavorite
	note.UpdatedAt = note.UpdatedAt.Add(time.Second)
	s.notes[id] = note
	return note, nil
}

func (s *fakeStore) DeleteNote(_ context.Context, id int64) error {
	s.ops = append(s.ops, "delete_note")
	delete(s.notes, id)
	return nil
}

func (s *fakeStore) CreateLink(_ context.Context, sourceID, targetID int64, linkType entity.LinkType) (entity.Link, error) {
	if s.createLinkErr != nil {
		return entity.Link{}, s.createLinkErr
	}

	s.nextLinkID++
	link := entity.Link{
		ID:        s.nextLinkID,
		SourceID:  sourceID,
		TargetID:  targetID,
		Type:      linkType,
		CreatedAt: time.Now(),
	}
	s.links = append(s.links, link)
	return link, nil
}

func (s *fakeStore) DeleteLinksByNote(_ context.Context, noteID int64) error {
	s.ops = append(s.ops, "delete_links")

	kept := s.links[:0]
	for _, l := range s.links {
		if l.SourceID != noteID && l.TargetID != noteID {
			kept = append(kept, l)
		}
	}
	s.links = kept
	return nil
}

func (s *fakeStore) RunInTx(ctx context.Context, f func(context.Context) error) error {
	s.ops = append(s.ops, "tx_begin")
	if err := f(ctx); err != nil {
		return err
	}
	s.ops = append(s.ops, "tx_commit")
	return nil
}

func newUsecase(t *testing.T, store *fakeStore) *Usecase {
	t.Helper()

	uc, err := New(NewOptions(store, store, store, linker.New()))
	require.NoError(t, err)
	return uc
}

func TestCreateNote_AppliesDefaults(t *testing.T) {
	store := newFakeStore()
	uc := newUsecase(t, store)

	note, err := uc.CreateNote(context.Background(), entity.NoteFields{Content: "no title given"})
	require.NoError(t, err)

	assert.Equal(t, entity.DefaultNoteTitle, note.Title)
	assert.Equal(t, entity.DefaultNoteType, note.Type)
	assert.NotNil(t, note.Tags)
	assert.False(t, note.IsFavorite)
}

func TestCreateNote_DerivesLinksOneWay(t *testing.T) {
	store := newFakeStore()
	uc := newUsecase(t, store)

	ctx := context.Background()

	apple, err := uc.CreateNote(ctx, entity.NoteFields{Title: "Apple", Content: "I like fruit"})
	require.NoError(t, err)
	require.Empty(t, store.links)

	basket, err := uc.CreateNote(ctx, entity.NoteFields{Title: "Fruit Basket", Content: "Apple is my favorite"})
	require.NoError(t, err)

	require.Len(t, store.links, 1)
	assert.Equal(t, basket.ID, store.links[0].SourceID)
	assert.Equal(t, apple.ID, store.links[0].TargetID)
	assert.Equal(t, entity.LinkTypeAIGenerated, store.links[0].Type)
}

func TestCreateNote_DerivationFailureIsNonFatal(t *testing.T) {
	store := newFakeStore()
	uc := newUsecase(t, store)

	ctx := context.Background()

	_, err := uc.CreateNote(ctx, entity.NoteFields{Title: "Apple", Content: "I like fruit"})
	require.NoError(t, err)

	store.createLinkErr = errors.New("links store down")

	note, err := uc.CreateNote(ctx, entity.NoteFields{Title: "Fruit Basket", Content: "Apple is my favorite"})
	require.NoError(t, err)

	assert.NotZero(t, note.ID)
	assert.Empty(t, store.links)
}

func TestUpdateNote_MergesPatch(t *testing.T) {
	store := newFakeStore()
	uc := newUsecase(t, store)

	ctx := context.Background()

	created, err := uc.CreateNote(ctx, entity.NoteFields{
		Title:   "Groceries",
		Content: "milk, eggs",
		Tags:    []string{"home"},
	})
	require.NoError(t, err)

	fav := true
	updated, err := uc.UpdateNote(ctx, created.ID, entity.NotePatch{IsFavorite: &fav})
	require.NoError(t, err)

	assert.True(t, updated.IsFavorite)
	assert.Equal(t, created.Title, updated.Title)
	assert.Equal(t, created.Content, updated.Content)
	assert.Equal(t, created.Type, updated.Type)
	assert.Equal(t, created.Tags, updated.Tags)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestUpdateNote_NotFound(t *testing.T) {
	store := newFakeStore()
	uc := newUsecase(t, store)

	_, err := uc.UpdateNote(context.Background(), 404, entity.NotePatch{})
	assert.ErrorIs(t, err, entity.ErrNoteNotFound)
}

func TestDeleteNote_CascadesLinksFirst(t *testing.T) {
	store := newFakeStore()
	uc := newUsecase(t, store)

	ctx := context.Background()

	apple, err := uc.CreateNote(ctx, entity.NoteFields{Title: "Apple", Content: "I like fruit"})
	require.NoError(t, err)

	_, err = uc.CreateNote(ctx, entity.NoteFields{Title: "Fruit Basket", Content: "Apple is my favorite"})
	require.NoError(t, err)
	require.Len(t, store.links, 1)

	store.ops = nil

	require.NoError(t, uc.DeleteNote(ctx, apple.ID))

	assert.Empty(t, store.links)
	assert.Equal(t, []string{"tx_begin", "delete_links", "delete_note", "tx_commit"}, store.ops)
}

func TestDeleteNote_Idempotent(t *testing.T) {
	store := newFakeStore()
	uc := newUsecase(t, store)

	assert.NoError(t, uc.DeleteNote(context.Background(), 12345))
}

func TestCreateManualLink_RequiresBothEndpoints(t *testing.T) {
	store := newFakeStore()
	uc := newUsecase(t, store)

	ctx := context.Background()

	note, err := uc.CreateNote(ctx, entity.NoteFields{Title: "Solo", Content: "only note"})
	require.NoError(t, err)

	_, err = uc.CreateManualLink(ctx, note.ID, 999)
	assert.ErrorIs(t, err, entity.ErrNoteNotFound)

	other, err := uc.CreateNote(ctx, entity.NoteFields{Title: "Other", Content: "second note"})
	require.NoError(t, err)

	link, err := uc.CreateManualLink(ctx, note.ID, other.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.LinkTypeManual, link.Type)
}

func TestSubscribeToCreated(t *testing.T) {
	store := newFakeStore()
	uc := newUsecase(t, store)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := uc.SubscribeToCreated(ctx)

	note, err := uc.CreateNote(ctx, entity.NoteFields{Title: "Ping", Content: "event payload"})
	require.NoError(t, err)

	select {
	case ev := <-events:
		assert.Equal(t, note.ID, ev.CreatedNote.ID)
	case <-time.After(time.Second):
		t.Fatal("no event received")
	}
}
