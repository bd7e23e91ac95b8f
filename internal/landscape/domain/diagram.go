package domain

// Node is one vertex of a rendered diagram. The ID is either a bare system
// code (the diagram's primary system) or a role-qualified id such as
// "SYS-002-C" for every other participant.
type Node struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        NodeType `json:"type"`
	Criticality string   `json:"criticality,omitempty"`
	URL         string   `json:"url,omitempty"`
}

// Link is one directed edge of a rendered diagram. Count is only populated
// by the landscape diagram, where one link aggregates every flow between an
// unordered system pair.
type Link struct {
	Source     string `json:"source"`
	Target     string `json:"target"`
	Pattern    string `json:"pattern,omitempty"`
	Frequency  string `json:"frequency,omitempty"`
	Role       string `json:"role,omitempty"`
	Middleware string `json:"middleware,omitempty"`
	Count      int    `json:"count,omitempty"`
}

// Metadata annotates a diagram with its review reference, generation date
// and the middleware node ids that were materialized.
type Metadata struct {
	Review        string   `json:"review,omitempty"`
	GeneratedDate string   `json:"generated_date"`
	Middlewares   []string `json:"middlewares"`
}

// Diagram is the node/link structure consumed by graph-visualization
// front ends.
type Diagram struct {
	Nodes    []Node   `json:"nodes"`
	Links    []Link   `json:"links"`
	Metadata Metadata `json:"metadata"`
}

// CapabilityNode is one entry of the flat capability tree node list. IDs are
// path-qualified: the slug of the node's name chained onto every ancestor
// slug, so equal names under different parents never collide.
type CapabilityNode struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Level       Level   `json:"level"`
	ParentID    *string `json:"parent_id"`
	SystemCount *int    `json:"system_count"`
}

// Tree is the flat node list of a capability hierarchy.
type Tree struct {
	Nodes []CapabilityNode `json:"nodes"`
}
