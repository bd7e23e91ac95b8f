package graph

import "github.com/archlens/landscape-backend/internal/landscape/domain"

// PathSegment is one hop of a discovered path.
type PathSegment struct {
	Source     string
	Target     string
	Middleware string
	Flow       *domain.IntegrationFlow
}

// Path is one simple walk from a start to an end system.
type Path []PathSegment

// FindPaths enumerates every simple path from start to end. The visited set
// is owned by the search and unmarked on backtracking, so a node excluded on
// one branch can still appear on another; a node already on the current path
// is never re-entered, which guarantees termination on cyclic graphs.
//
// No depth or result cap is imposed: output can grow exponentially at
// bifurcation points, which is acceptable at landscape scale.
func FindPaths(g *Graph, start, end string) []Path {
	var (
		results []Path
		current Path
		visited = map[string]bool{}
	)

	var dfs func(node string)
	dfs = func(node string) {
		visited[node] = true
		for _, e := range g.Adjacency[node] {
			if visited[e.Target] {
				continue
			}
			current = append(current, PathSegment{
				Source:     node,
				Target:     e.Target,
				Middleware: e.Middleware,
				Flow:       e.Flow,
			})
			if e.Target == end {
				snapshot := make(Path, len(current))
				copy(snapshot, current)
				results = append(results, snapshot)
			} else {
				dfs(e.Target)
			}
			current = current[:len(current)-1]
		}
		visited[node] = false
	}

	dfs(start)
	return results
}
