// Package linker decides which existing notes a freshly captured note relates
// to. The heuristic is substring co-occurrence between titles and bodies; a
// real semantic engine can replace it behind the same surface.
package linker

import (
	"strings"

	"secondbrain/internal/entity"
)

type Deriver struct{}

func New() Deriver {
	return Deriver{}
}

// Related returns the notes from the corpus that the given note should link
// to. A candidate qualifies when its content contains the note's title, or
// the note's content contains the candidate's title. The comparison is
// case-sensitive and the note itself is skipped. Links run one way only, from
// the new note to the existing ones.
func (Deriver) Related(note entity.Note, corpus []entity.Note) []entity.Note {
	var related []entity.Note
	for _, other := range corpus {
		if other.ID == note.ID {
			continue
		}

		if strings.Contains(other.Content, note.Title) || strings.Contains(note.Content, other.Title) {
			related = append(related, other)
		}
	}

	return related
}
