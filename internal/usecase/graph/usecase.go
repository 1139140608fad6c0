package graph

import (
	"context"
	"fmt"

	"secondbrain/internal/entity"
)

type notesLister interface {
	ListNotes(ctx context.Context, search string) ([]entity.Note, error)
}

type linksLister interface {
	ListLinks(ctx context.Context) ([]entity.Link, error)
}

//go:generate go run github.com/kazhuravlev/options-gen/cmd/options-gen@v0.55.2 -out-filename=usecase_options.gen.go -from-struct=Options
type Options struct {
	notes notesLister `option:"mandatory" validate:"required"`
	links linksLister `option:"mandatory" validate:"required"`
}

type Usecase struct {
	Options
}

func New(opts Options) (*Usecase, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate graph usecase options: %v", err)
	}

	return &Usecase{Options: opts}, nil
}

// Graph projects every note into a node and every link into an edge. The
// projection is computed fresh per call; at a personal corpus size caching
// buys nothing.
func (u *Usecase) Graph(ctx context.Context) (entity.Graph, error) {
	notes, err := u.notes.ListNotes(ctx, "")
	if err != nil {
		return entity.Graph{}, fmt.Errorf("graph: list notes: %w", err)
	}

	links, err := u.links.ListLinks(ctx)
	if err != nil {
		return entity.Graph{}, fmt.Errorf("graph: list links: %w", err)
	}

	g := entity.Graph{
		Nodes: make([]entity.GraphNode, 0, len(notes)),
		Edges: make([]entity.GraphEdge, 0, len(links)),
	}

	for _, n := range notes {
		g.Nodes = append(g.Nodes, entity.GraphNode{ID: n.ID, Label: n.Title, Type: n.Type})
	}
	for _, l := range links {
		g.Edges = append(g.Edges, entity.GraphEdge{Source: l.SourceID, Target: l.TargetID, Type: l.Type})
	}

	return g, nil
}
