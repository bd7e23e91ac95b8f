package diagram

import (
	"fmt"

	"github.com/archlens/landscape-backend/internal/landscape/domain"
	"github.com/archlens/landscape-backend/internal/landscape/graph"
)

// FromPaths renders a set of discovered paths as a node/link diagram. Unlike
// the single-system view, middleware is attached as link metadata and never
// materialized as a node: every link runs source→target directly.
func FromPaths(paths []graph.Path, records []domain.SystemRecord) *domain.Diagram {
	b := newBuilder(records)

	var endpoints []string
	endpointIdx := map[string]struct{}{}
	addEndpoint := func(id string) {
		if _, ok := endpointIdx[id]; ok {
			return
		}
		endpointIdx[id] = struct{}{}
		endpoints = append(endpoints, id)
	}

	for _, p := range paths {
		for _, seg := range p {
			addEndpoint(seg.Source)
			addEndpoint(seg.Target)

			link := domain.Link{
				Source:     seg.Source,
				Target:     seg.Target,
				Role:       segmentRole(seg),
				Middleware: seg.Middleware,
			}
			if seg.Flow != nil {
				link.Pattern = seg.Flow.Pattern
				link.Frequency = seg.Flow.Frequency
			}
			b.addLink(link)
			if seg.Middleware != "" {
				b.recordMiddleware(seg.Middleware)
			}
		}
	}

	for _, id := range endpoints {
		node := domain.Node{ID: id, Name: id, Type: domain.NodeExternal}
		if rec := b.lookup(id); rec != nil {
			node.Type = domain.NodeIncomeSystem
			if rec.Solution != nil {
				node.Name = rec.Solution.SolutionName
				if rec.Solution.Details != nil {
					node.Criticality = rec.Solution.Details.Criticality
					node.URL = rec.Solution.Details.URL
				}
			}
		}
		b.addNode(node)
	}

	return &domain.Diagram{
		Nodes: b.nodes,
		Links: b.links,
		Metadata: domain.Metadata{
			Review:        pathCountText(len(paths)),
			GeneratedDate: generatedDate(),
			Middlewares:   b.mwIDs,
		},
	}
}

// segmentRole reads the link role off the originating flow: when the
// segment's source is the flow's normalized counterpart, the counterpart was
// the producing side.
func segmentRole(seg graph.PathSegment) string {
	if seg.Flow != nil && domain.Canonical(seg.Flow.CounterpartCode) == seg.Source {
		return domain.RoleProducer
	}
	return domain.RoleConsumer
}

func pathCountText(n int) string {
	switch n {
	case 0:
		return "No paths found"
	case 1:
		return "1 path found"
	default:
		return fmt.Sprintf("%d paths found", n)
	}
}
