package diagram

import (
	"github.com/archlens/landscape-backend/internal/landscape/domain"
)

// Landscape produces the coarse whole-landscape view: one node per distinct
// system code seen as a record or counterpart, and one count-weighted link
// per unordered system pair regardless of flow direction.
//
// Classification follows record processing order: a code is Core System only
// when its own record is the first place it appears; a code first seen as a
// counterpart stays External even if a record for it shows up later.
func Landscape(records []domain.SystemRecord) *domain.Diagram {
	b := newBuilder(records)

	links := []domain.Link{}
	pairIdx := map[string]int{}

	for ri := range records {
		rec := &records[ri]

		ownNode := domain.Node{ID: rec.SystemCode, Name: rec.SystemCode, Type: domain.NodeCoreSystem}
		if rec.Solution != nil {
			ownNode.Name = rec.Solution.SolutionName
			if rec.Solution.Details != nil {
				ownNode.Criticality = rec.Solution.Details.Criticality
			}
		}
		b.addNode(ownNode)

		for fi := range rec.Flows {
			flow := &rec.Flows[fi]
			// Empty counterpart codes are deliberately not filtered; they
			// surface as a node and link with an empty identifier.
			b.addNode(domain.Node{
				ID:   flow.CounterpartCode,
				Name: flow.CounterpartCode,
				Type: domain.NodeExternal,
			})

			key := pairKey(rec.SystemCode, flow.CounterpartCode)
			if i, ok := pairIdx[key]; ok {
				links[i].Count++
				continue
			}
			pairIdx[key] = len(links)
			links = append(links, domain.Link{
				Source: rec.SystemCode,
				Target: flow.CounterpartCode,
				Count:  1,
			})
		}
	}

	return &domain.Diagram{
		Nodes: b.nodes,
		Links: links,
		Metadata: domain.Metadata{
			GeneratedDate: generatedDate(),
			Middlewares:   []string{},
		},
	}
}

// pairKey builds an order-independent key for a system pair so that flows
// declared from either side aggregate onto one link.
func pairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "|" + b
}
