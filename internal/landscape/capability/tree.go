package capability

import (
	"github.com/archlens/landscape-backend/internal/landscape/domain"
)

// treeBuilder accumulates capability nodes in insertion order, keyed by
// path-qualified id.
type treeBuilder struct {
	nodes []domain.CapabilityNode
	idx   map[string]struct{}
}

func newTreeBuilder() *treeBuilder {
	return &treeBuilder{nodes: []domain.CapabilityNode{}, idx: map[string]struct{}{}}
}

// ensure creates a node for (parent, name) at the given level if absent and
// returns its id.
func (t *treeBuilder) ensure(parentID, name string, level domain.Level) string {
	id := chain(parentID, name)
	if _, ok := t.idx[id]; ok {
		return id
	}
	t.idx[id] = struct{}{}

	var parent *string
	if parentID != "" {
		p := parentID
		parent = &p
	}
	t.nodes = append(t.nodes, domain.CapabilityNode{
		ID:       id,
		Name:     name,
		Level:    level,
		ParentID: parent,
	})
	return id
}

// finish fills in system counts and returns the tree. The count at a
// capability-level node is the number of distinct immediate children, not a
// recursive leaf count; System leaves keep a nil count.
func (t *treeBuilder) finish() *domain.Tree {
	children := map[string]int{}
	for _, n := range t.nodes {
		if n.ParentID != nil {
			children[*n.ParentID]++
		}
	}
	for i := range t.nodes {
		if t.nodes[i].Level == domain.LevelSystem {
			continue
		}
		count := children[t.nodes[i].ID]
		t.nodes[i].SystemCount = &count
	}
	return &domain.Tree{Nodes: t.nodes}
}

// ensureTuple builds the L1→L2→L3 chain under an optional root and returns
// the id of the deepest level present.
func (t *treeBuilder) ensureTuple(rootID, l1, l2, l3 string) string {
	deepest := rootID
	if l1 == "" {
		return deepest
	}
	deepest = t.ensure(deepest, l1, domain.LevelL1)
	if l2 == "" {
		return deepest
	}
	deepest = t.ensure(deepest, l2, domain.LevelL2)
	if l3 == "" {
		return deepest
	}
	return t.ensure(deepest, l3, domain.LevelL3)
}

// BuildTree aggregates the dropdown catalog and the per-system capability
// assignments into the global tree. Catalog tuples referenced by zero
// systems are still emitted so the full taxonomy stays browsable; each
// assignment adds its own System leaf, one per capability flow.
func BuildTree(catalog []domain.CapabilityTuple, assignments []domain.CapabilityAssignment) *domain.Tree {
	t := newTreeBuilder()

	for _, tup := range catalog {
		t.ensureTuple("", tup.L1, tup.L2, tup.L3)
	}

	for _, a := range assignments {
		parent := t.ensureTuple("", a.L1, a.L2, a.L3)
		if parent == "" {
			continue
		}
		t.ensure(parent, a.SystemCode, domain.LevelSystem)
	}

	tree := t.finish()
	// System leaves display the system's name, not its code.
	named := systemNames(assignments)
	for i := range tree.Nodes {
		if tree.Nodes[i].Level != domain.LevelSystem {
			continue
		}
		if name, ok := named[tree.Nodes[i].Name]; ok && name != "" {
			tree.Nodes[i].Name = name
		}
	}
	return tree
}

// BuildTreeForSystem inverts the chain for one system: Root(system) → L1 →
// L2 → L3, scoped to that system's capability flows. An unrecognized system
// code yields an empty tree, not an error.
func BuildTreeForSystem(systemCode string, assignments []domain.CapabilityAssignment) *domain.Tree {
	var scoped []domain.CapabilityAssignment
	for _, a := range assignments {
		if a.SystemCode == systemCode {
			scoped = append(scoped, a)
		}
	}
	if len(scoped) == 0 {
		return &domain.Tree{Nodes: []domain.CapabilityNode{}}
	}

	t := newTreeBuilder()
	rootName := scoped[0].SystemName
	if rootName == "" {
		rootName = systemCode
	}
	rootID := t.ensure("", systemCode, domain.LevelRoot)
	for _, a := range scoped {
		t.ensureTuple(rootID, a.L1, a.L2, a.L3)
	}

	tree := t.finish()
	tree.Nodes[0].Name = rootName
	return tree
}

func systemNames(assignments []domain.CapabilityAssignment) map[string]string {
	names := map[string]string{}
	for _, a := range assignments {
		if a.SystemName != "" {
			names[a.SystemCode] = a.SystemName
		}
	}
	return names
}
