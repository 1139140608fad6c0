package notes

import (
	"context"
	"fmt"

	"github.com/imkira/go-observer"

	"secondbrain/internal/entity"
	"secondbrain/pkg/logger/slogx"
)

type notesRepository interface {
	CreateNote(ctx context.Context, fields entity.NoteFields) (entity.Note, error)
	GetNote(ctx context.Context, id int64) (entity.Note, error)
	ListNotes(ctx context.Context, search string) ([]entity.Note, error)
	UpdateNote(ctx context.Context, id int64, fields entity.NoteFields) (entity.Note, error)
	DeleteNote(ctx context.Context, id int64) error
}

type linksRepository interface {
	CreateLink(ctx context.Context, sourceID, targetID int64, linkType entity.LinkType) (entity.Link, error)
	DeleteLinksByNote(ctx context.Context, noteID int64) error
}

type transactor interface {
	RunInTx(ctx context.Context, f func(context.Context) error) error
}

type relationDeriver interface {
	Related(note entity.Note, corpus []entity.Note) []entity.Note
}

//go:generate go run github.com/kazhuravlev/options-gen/cmd/options-gen@v0.55.2 -out-filename=usecase_options.gen.go -from-struct=Options
type Options struct {
	notesRepo notesRepository `option:"mandatory" validate:"required"`
	linksRepo linksRepository `option:"mandatory" validate:"required"`
	tx        transactor      `option:"mandatory" validate:"required"`
	deriver   relationDeriver `option:"mandatory" validate:"required"`
}

type Usecase struct {
	Options
	observer observer.Property
}

func New(opts Options) (*Usecase, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate notes usecase options: %v", err)
	}

	prop := observer.NewProperty(entity.Note{})

	return &Usecase{Options: opts, observer: prop}, nil
}

func (u *Usecase) CreateNote(ctx context.Context, fields entity.NoteFields) (entity.Note, error) {
	if fields.Title == "" {
		fields.Title = entity.DefaultNoteTitle
	}
	if fields.Type == "" {
		fields.Type = entity.DefaultNoteType
	}
	if fields.Tags == nil {
		fields.Tags = []string{}
	}

	note, err := u.notesRepo.CreateNote(ctx, fields)
	if err != nil {
		return entity.Note{}, fmt.Errorf("usecase create note: %w", err)
	}

	// Derivation runs after the insert committed, so the scan observes the
	// new note. Its failure never unwinds the creation.
	u.deriveLinks(ctx, note)

	u.observer.Update(note)

	slogx.Info(ctx, "success to create note", slogx.NoteID(note.ID))
	return note, nil
}

func (u *Usecase) deriveLinks(ctx context.Context, note entity.Note) {
	corpus, err := u.notesRepo.ListNotes(ctx, "")
	if err != nil {
		slogx.Error(ctx, "derive links: list corpus", slogx.NoteID(note.ID), slogx.Err(err))
		return
	}

	for _, rel := range u.deriver.Related(note, corpus) {
		if _, err := u.linksRepo.CreateLink(ctx, note.ID, rel.ID, entity.LinkTypeAIGenerated); err != nil {
			slogx.Error(ctx, "derive links: create link",
				slogx.NoteID(note.ID),
				slogx.Err(err),
			)
		}
	}
}

func (u *Usecase) GetNote(ctx context.Context, id int64) (entity.Note, error) {
	note, err := u.notesRepo.GetNote(ctx, id)
	if err != nil {
		return entity.Note{}, fmt.Errorf("usecase get note: %w", err)
	}

	return note, nil
}

func (u *Usecase) ListNotes(ctx context.Context, search string) ([]entity.Note, error) {
	notes, err := u.notesRepo.ListNotes(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("usecase list notes: %w", err)
	}

	return notes, nil
}

// UpdateNote merges the patch over the stored note. Last writer wins.
func (u *Usecase) UpdateNote(ctx context.Context, id int64, patch entity.NotePatch) (entity.Note, error) {
	stored, err := u.notesRepo.GetNote(ctx, id)
	if err != nil {
		return entity.Note{}, fmt.Errorf("usecase update note: %w", err)
	}

	note, err := u.notesRepo.UpdateNote(ctx, id, patch.Apply(stored))
	if err != nil {
		return entity.Note{}, fmt.Errorf("usecase update note: %w", err)
	}

	return note, nil
}

// DeleteNote removes the note and every link touching it in one transaction,
// links first, so no dangling link is ever durably visible.
func (u *Usecase) DeleteNote(ctx context.Context, id int64) error {
	err := u.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := u.linksRepo.DeleteLinksByNote(ctx, id); err != nil {
			return err
		}

		return u.notesRepo.DeleteNote(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("usecase delete note: %w", err)
	}

	slogx.Info(ctx, "success to delete note", slogx.NoteID(id))
	return nil
}

// CreateManualLink records a user-made relation. Both endpoints must exist.
func (u *Usecase) CreateManualLink(ctx context.Context, sourceID, targetID int64) (entity.Link, error) {
	for _, id := range []int64{sourceID, targetID} {
		if _, err := u.notesRepo.GetNote(ctx, id); err != nil {
			return entity.Link{}, fmt.Errorf("usecase create manual link: %w", err)
		}
	}

	link, err := u.linksRepo.CreateLink(ctx, sourceID, targetID, entity.LinkTypeManual)
	if err != nil {
		return entity.Link{}, fmt.Errorf("usecase create manual link: %w", err)
	}

	return link, nil
}

// SubscribeToCreated streams every note created after the call until the
// context is done.
func (u *Usecase) SubscribeToCreated(ctx context.Context) <-chan entity.NoteCreatedEvent {
	stream := u.observer.Observe()

	result := make(chan entity.NoteCreatedEvent)
	go func() {
		defer close(result)
		for {
			select {
			case <-ctx.Done():
				return

			case <-stream.Changes():
				note := stream.Next().(entity.Note)

				select {
				case <-ctx.Done():
					return
				case result <- entity.NoteCreatedEvent{CreatedNote: note}:
				}
			}
		}
	}()

	return result
}
