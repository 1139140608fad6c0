package entity

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNoteNotFound = errors.New("note not found")
	ErrGeneration   = errors.New("generation failed")
)

// DefaultNoteType is applied when the caller does not tag the capture source.
const DefaultNoteType = "text"

// DefaultNoteTitle is applied when a note is captured without a title so the
// non-empty-title invariant holds regardless of the client.
const DefaultNoteTitle = "Untitled Note"

type Note struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Type       string    `json:"type"`
	Tags       []string  `json:"tags"`
	IsFavorite bool      `json:"isFavorite"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// NoteFields is the caller-settable part of a note. The store assigns the id
// and both timestamps.
type NoteFields struct {
	Title      string
	Content    string
	Type       string
	Tags       []string
	IsFavorite bool
}

// NotePatch carries a partial update; nil fields keep the stored value.
type NotePatch struct {
	Title      *string
	Content    *string
	Type       *string
	Tags       []string
	IsFavorite *bool
}

// Apply merges the patch over the stored fields.
func (p NotePatch) Apply(n Note) NoteFields {
	fields := NoteFields{
		Title:      n.Title,
		Content:    n.Content,
		Type:       n.Type,
		Tags:       n.Tags,
		IsFavorite: n.IsFavorite,
	}

	if p.Title != nil {
		fields.Title = *p.Title
	}
	if p.Content != nil {
		fields.Content = *p.Content
	}
	if p.Type != nil {
		fields.Type = *p.Type
	}
	if p.Tags != nil {
		fields.Tags = p.Tags
	}
	if p.IsFavorite != nil {
		fields.IsFavorite = *p.IsFavorite
	}

	return fields
}

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
