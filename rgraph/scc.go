// Package rgraph: strongly connected component decomposition.
//
// Tarjan's single-pass DFS with lowlink values. Components come out in
// reverse topological order of the condensation; members of each
// component are sorted for reproducible output.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) for index/lowlink maps and the stack.
package rgraph

import "sort"

// sccState holds the mutable state of one Tarjan run.
type sccState struct {
	g       *ReactionGraph
	index   int
	indices map[string]int
	lowlink map[string]int
	onStack map[string]bool
	stack   []string
	comps   [][]string
}

// StronglyConnectedComponents returns every strongly connected
// component of the graph. Each component is a sorted slice of node IDs;
// isolated nodes form singleton components.
func (g *ReactionGraph) StronglyConnectedComponents() [][]string {
	st := &sccState{
		g:       g,
		indices: make(map[string]int, len(g.nodes)),
		lowlink: make(map[string]int, len(g.nodes)),
		onStack: make(map[string]bool, len(g.nodes)),
	}
	for _, id := range g.Nodes() {
		if _, seen := st.indices[id]; !seen {
			st.strongConnect(id)
		}
	}

	return st.comps
}

// strongConnect is the recursive DFS of Tarjan's algorithm.
func (st *sccState) strongConnect(v string) {
	st.indices[v] = st.index
	st.lowlink[v] = st.index
	st.index++
	st.stack = append(st.stack, v)
	st.onStack[v] = true

	for w := range st.g.succ[v] {
		if _, seen := st.indices[w]; !seen {
			st.strongConnect(w)
			if st.lowlink[w] < st.lowlink[v] {
				st.lowlink[v] = st.lowlink[w]
			}
		} else if st.onStack[w] && st.indices[w] < st.lowlink[v] {
			st.lowlink[v] = st.indices[w]
		}
	}

	// v roots a component: pop the stack down to v.
	if st.lowlink[v] == st.indices[v] {
		var comp []string
		for {
			w := st.stack[len(st.stack)-1]
			st.stack = st.stack[:len(st.stack)-1]
			st.onStack[w] = false
			comp = append(comp, w)
			if w == v {
				break
			}
		}
		sort.Strings(comp)
		st.comps = append(st.comps, comp)
	}
}
