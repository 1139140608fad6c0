package entity

type GraphNode struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
	Type  string `json:"type"`
}

type GraphEdge struct {
	Source int64    `json:"source"`
	Target int64    `json:"target"`
	Type   LinkType `json:"type"`
}

// Graph is the presentation-ready projection of all notes and links.
type Graph struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}
