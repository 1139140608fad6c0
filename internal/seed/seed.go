// Package seed fills an empty store with a small demo corpus so a fresh
// install has something to browse.
package seed

import (
	"context"
	"fmt"

	"secondbrain/internal/entity"
	"secondbrain/pkg/logger/slogx"
)

type notesRepository interface {
	CreateNote(ctx context.Context, fields entity.NoteFields) (entity.Note, error)
	ListNotes(ctx context.Context, search string) ([]entity.Note, error)
}

type linksRepository interface {
	CreateLink(ctx context.Context, sourceID, targetID int64, linkType entity.LinkType) (entity.Link, error)
}

// Run seeds demo notes and links when the store holds no notes yet. Seeding
// writes through the repositories directly, so no links are derived.
func Run(ctx context.Context, notes notesRepository, links linksRepository) error {
	existing, err := notes.ListNotes(ctx, "")
	if err != nil {
		return fmt.Errorf("seed: list notes: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	slogx.Info(ctx, "seeding empty store")

	phoenix, err := notes.CreateNote(ctx, entity.NoteFields{
		Title:   "Project Phoenix Ideas",
		Content: "Main goal: Build a personal intelligence system. Needs to be fast and frictionless.",
		Type:    "text",
		Tags:    []string{"project", "dev"},
	})
	if err != nil {
		return fmt.Errorf("seed: create note: %w", err)
	}

	meeting, err := notes.CreateNote(ctx, entity.NoteFields{
		Title:   "Meeting with Sarah",
		Content: "Discussed the marketing strategy for Phoenix. She suggested focusing on 'builders' as the niche.",
		Type:    "text",
		Tags:    []string{"meeting", "marketing"},
	})
	if err != nil {
		return fmt.Errorf("seed: create note: %w", err)
	}

	stack, err := notes.CreateNote(ctx, entity.NoteFields{
		Title:   "Tech Stack Thoughts",
		Content: "Using Go for the server. Postgres for storage. OpenAI for intelligence.",
		Type:    "text",
		Tags:    []string{"tech", "dev"},
	})
	if err != nil {
		return fmt.Errorf("seed: create note: %w", err)
	}

	if _, err := links.CreateLink(ctx, phoenix.ID, meeting.ID, entity.LinkTypeManual); err != nil {
		return fmt.Errorf("seed: create link: %w", err)
	}
	if _, err := links.CreateLink(ctx, phoenix.ID, stack.ID, entity.LinkTypeAIGenerated); err != nil {
		return fmt.Errorf("seed: create link: %w", err)
	}

	return nil
}
