package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"secondbrain/internal/entity"
	"secondbrain/pkg/logger/slogx"
)

const noteColumns = "id, title, content, type, tags, is_favorite, created_at, updated_at"

func (r *Repo) CreateNote(ctx context.Context, fields entity.NoteFields) (entity.Note, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO notes (title, content, type, tags, is_favorite)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+noteColumns,
		fields.Title, fields.Content, fields.Type, fields.Tags, fields.IsFavorite,
	)

	note, err := scanNote(row)
	if err != nil {
		return entity.Note{}, fmt.Errorf("create note: %w", err)
	}

	slogx.Debug(ctx, "success to create note", slogx.NoteID(note.ID))

	return note, nil
}

func (r *Repo) GetNote(ctx context.Context, id int64) (entity.Note, error) {
	row := r.db.QueryRow(ctx,
		"SELECT "+noteColumns+" FROM notes WHERE id = $1",
		id,
	)

	note, err := scanNote(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Note{}, entity.ErrNoteNotFound
		}
		return entity.Note{}, fmt.Errorf("get note: %w", err)
	}

	return note, nil
}

// ListNotes returns every note ordered by last touch. A non-empty search term
// narrows the result to case-insensitive substring matches on title or
// content.
func (r *Repo) ListNotes(ctx context.Context, search string) ([]entity.Note, error) {
	query := "SELECT " + noteColumns + " FROM notes"
	args := []any{}

	if search != "" {
		query += " WHERE title ILIKE '%' || $1 || '%' OR content ILIKE '%' || $1 || '%'"
		args = append(args, search)
	}

	query += " ORDER BY updated_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	var notes []entity.Note
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("list notes: scan: %w", err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list notes: rows: %w", err)
	}

	return notes, nil
}

func (r *Repo) UpdateNote(ctx context.Context, id int64, fields entity.NoteFields) (entity.Note, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE notes
		SET title = $2, content = $3, type = $4, tags = $5, is_favorite = $6, updated_at = now()
		WHERE id = $1
		RETURNING `+noteColumns,
		id, fields.Title, fields.Content, fields.Type, fields.Tags, fields.IsFavorite,
	)

	note, err := scanNote(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Note{}, entity.ErrNoteNotFound
		}
		return entity.Note{}, fmt.Errorf("update note: %w", err)
	}

	return note, nil
}

func (r *Repo) DeleteNote(ctx context.Context, id int64) error {
	if _, err := r.db.Exec(ctx, "DELETE FROM notes WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}

	return nil
}

func scanNote(row pgx.Row) (entity.Note, error) {
	var n entity.Note
	if err := row.Scan(
		&n.ID, &n.Title, &n.Content, &n.Type, &n.Tags, &n.IsFavorite,
		&n.CreatedAt, &n.UpdatedAt,
	); err != nil {
		return entity.Note{}, err
	}

	return n, nil
}
