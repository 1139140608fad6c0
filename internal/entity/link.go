package entity

import "time"

type LinkType string

const (
	LinkTypeManual      LinkType = "manual"
	LinkTypeAIGenerated LinkType = "ai_generated"
)

func (t LinkType) Valid() bool {
	return t == LinkTypeManual || t == LinkTypeAIGenerated
}

// Link is a directed relation between two notes. Links are never mutated,
// only created or removed together with one of their endpoints.
type Link struct {
	ID        int64     `json:"id"`
	SourceID  int64     `json:"sourceId"`
	TargetID  int64     `json:"targetId"`
	Type      LinkType  `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
}
