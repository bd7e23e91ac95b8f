package diagram

import (
	"fmt"
	"time"

	"github.com/archlens/landscape-backend/internal/landscape/domain"
)

// builder accumulates nodes and links with identity-based deduplication.
// Node identity is the node id; link identity is the full content signature,
// so two flows identical at the transport boundary collapse to one link
// while flows differing in any field stay distinct.
type builder struct {
	nodes    []domain.Node
	nodeIdx  map[string]struct{}
	links    []domain.Link
	linkIdx  map[string]struct{}
	records  map[string]*domain.SystemRecord
	mwIDs    []string
	mwIdx    map[string]struct{}
}

func newBuilder(records []domain.SystemRecord) *builder {
	byCode := make(map[string]*domain.SystemRecord, len(records))
	for i := range records {
		byCode[domain.Canonical(records[i].SystemCode)] = &records[i]
	}
	return &builder{
		nodes:   []domain.Node{},
		nodeIdx: map[string]struct{}{},
		links:   []domain.Link{},
		linkIdx: map[string]struct{}{},
		records: byCode,
		mwIDs:   []string{},
		mwIdx:   map[string]struct{}{},
	}
}

// addNode records a node unless one with the same id already exists.
func (b *builder) addNode(n domain.Node) {
	if _, ok := b.nodeIdx[n.ID]; ok {
		return
	}
	b.nodeIdx[n.ID] = struct{}{}
	b.nodes = append(b.nodes, n)
}

func (b *builder) hasNode(id string) bool {
	_, ok := b.nodeIdx[id]
	return ok
}

// addLink records a link unless an identical one was already emitted.
func (b *builder) addLink(l domain.Link) {
	sig := fmt.Sprintf("%s|%s|%s|%s|%s|%s", l.Source, l.Target, l.Pattern, l.Frequency, l.Role, l.Middleware)
	if _, ok := b.linkIdx[sig]; ok {
		return
	}
	b.linkIdx[sig] = struct{}{}
	b.links = append(b.links, l)
}

// lookup resolves a role-qualified or bare identifier to its system record,
// if the record set contains one.
func (b *builder) lookup(id string) *domain.SystemRecord {
	return b.records[domain.Canonical(id)]
}

// recordMiddleware remembers a middleware node id for the diagram metadata.
func (b *builder) recordMiddleware(id string) {
	if _, ok := b.mwIdx[id]; ok {
		return
	}
	b.mwIdx[id] = struct{}{}
	b.mwIDs = append(b.mwIDs, id)
}

func generatedDate() string {
	return time.Now().UTC().Format("2006-01-02")
}
