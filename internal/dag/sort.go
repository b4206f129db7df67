package dag

import "sort"

// TopoSort returns a linear ordering of every node ID in which each node
// appears strictly after all of its dependencies (Kahn's algorithm). Ties
// between simultaneously ready nodes are broken lexicographically, so the
// ordering is fully deterministic for a given graph.
//
// If the graph contains a cycle, or an edge references a node that was
// never added, no full ordering exists. The partial result is discarded
// and the complete node set is returned in lexicographic order instead,
// with cyclic set to true.
func (g *Graph) TopoSort() (order []string, cyclic bool) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	// In-degree of a node is the number of dependencies it declares,
	// including dependencies on nodes absent from the graph.
	inDegree := make(map[string]int, len(g.nodes))
	var frontier []string
	for id, n := range g.nodes {
		inDegree[id] = len(n.deps)
		if len(n.deps) == 0 {
			frontier = append(frontier, id)
		}
	}

	order = make([]string, 0, len(g.nodes))
	for len(frontier) > 0 {
		sort.Strings(frontier)
		next := frontier[0]
		frontier = frontier[1:]
		order = append(order, next)

		for id, n := range g.nodes {
			if _, ok := n.deps[next]; !ok {
				continue
			}
			inDegree[id]--
			if inDegree[id] == 0 {
				frontier = append(frontier, id)
			}
		}
	}

	if len(order) != len(g.nodes) {
		return g.sortedIDs(), true
	}
	return order, false
}
