package graph

import (
	"fmt"
	"log"

	"github.com/archlens/landscape-backend/internal/landscape/domain"
)

// Edge is one directed producer→consumer hop annotated with the normalized
// middleware (empty = direct) and the flow it was derived from.
type Edge struct {
	Target     string
	Middleware string
	Flow       *domain.IntegrationFlow
}

// Graph is the canonical adjacency structure built from a record set. Known
// holds every canonical code seen anywhere (record codes and counterparts)
// and backs path-search input validation.
type Graph struct {
	Adjacency map[string][]Edge
	Known     map[string]struct{}

	seen map[string]map[string]struct{}
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		Adjacency: map[string][]Edge{},
		Known:     map[string]struct{}{},
		seen:      map[string]map[string]struct{}{},
	}
}

// AddEdge appends an edge unless an identical one (same target, middleware
// and flow content) was already recorded for the source.
func (g *Graph) AddEdge(source string, e Edge) {
	sig := edgeSignature(e)
	if _, ok := g.seen[source]; !ok {
		g.seen[source] = map[string]struct{}{}
	}
	if _, dup := g.seen[source][sig]; dup {
		return
	}
	g.seen[source][sig] = struct{}{}
	g.Adjacency[source] = append(g.Adjacency[source], e)
}

// Contains reports whether a canonical code appeared anywhere in the record
// set the graph was built from.
func (g *Graph) Contains(code string) bool {
	_, ok := g.Known[code]
	return ok
}

func edgeSignature(e Edge) string {
	pattern, frequency := "", ""
	if e.Flow != nil {
		pattern, frequency = e.Flow.Pattern, e.Flow.Frequency
	}
	return fmt.Sprintf("%s|%s|%s|%s", e.Target, e.Middleware, pattern, frequency)
}

// Build converts the flat record set into the canonical adjacency map. Each
// flow yields one producer→consumer edge oriented by the counterpart role;
// flows with an unrecognized role are skipped, not errored.
func Build(records []domain.SystemRecord) *Graph {
	g := NewGraph()

	for _, rec := range records {
		own := domain.Canonical(rec.SystemCode)
		g.Known[own] = struct{}{}

		for i := range rec.Flows {
			flow := &rec.Flows[i]
			counterpart := domain.Canonical(flow.CounterpartCode)
			g.Known[counterpart] = struct{}{}

			var producer, consumer string
			switch flow.CounterpartRole {
			case domain.RoleProducer:
				producer, consumer = counterpart, own
			case domain.RoleConsumer:
				producer, consumer = own, counterpart
			default:
				log.Printf("[warn] operation=build_graph message=skipping flow of %s with unrecognized role %q", rec.SystemCode, flow.CounterpartRole)
				continue
			}

			g.AddEdge(producer, Edge{
				Target:     consumer,
				Middleware: domain.NormalizeMiddleware(flow.Middleware),
				Flow:       flow,
			})
		}
	}

	return g
}
