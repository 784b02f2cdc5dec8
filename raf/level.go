package raf

import "github.com/katalvlaran/chemnet/rgraph"

// MaxCycleLength estimates the network's cycle depth ("RAF level").
//
// For every node n, a BFS from n yields shortest-path distances; every
// predecessor p of n reachable from n closes a cycle n→…→p→n, and the
// shortest such closing path picks n's minimal cycle. Let L be the
// global maximum, measured in nodes on the n→…→p path, over all nodes
// with a cycle. The reported level is (L+1)/2: cycles in the bipartite
// graph alternate reaction and expression nodes, so halving counts
// reaction rounds. Returns 0 when no node lies on a cycle.
//
// Complexity: O(V·(V+E)).
func MaxCycleLength(g *rgraph.ReactionGraph, opts ...Option) int {
	if g == nil {
		return 0
	}
	o := buildOptions(opts)

	maxLen := 0
	var witness []string
	for _, n := range g.Nodes() {
		dist, parent := shortestFrom(g, n)
		preds, err := g.Predecessors(n)
		if err != nil {
			continue
		}
		best := -1
		bestPred := ""
		for _, p := range preds {
			d, reachable := dist[p]
			if !reachable {
				continue // predecessor not on a cycle through n
			}
			if best < 0 || d+1 < best {
				best = d + 1 // path node count: n..p inclusive
				bestPred = p
			}
		}
		if best > maxLen {
			maxLen = best
			witness = pathTo(parent, n, bestPred)
		}
	}
	if maxLen == 0 {
		return 0
	}
	o.Logger.Info("RAF level witness cycle", "path", witness, "length", maxLen)

	return (maxLen + 1) / 2
}

// shortestFrom runs an unweighted BFS from start, returning edge-count
// distances and parent links for every reachable node.
func shortestFrom(g *rgraph.ReactionGraph, start string) (map[string]int, map[string]string) {
	dist := map[string]int{start: 0}
	parent := make(map[string]string)
	queue := []string{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		succs, err := g.Successors(cur)
		if err != nil {
			continue
		}
		for _, nbr := range succs {
			if _, seen := dist[nbr]; seen {
				continue
			}
			dist[nbr] = dist[cur] + 1
			parent[nbr] = cur
			queue = append(queue, nbr)
		}
	}

	return dist, parent
}

// pathTo reconstructs the BFS path start→…→dest from parent links.
func pathTo(parent map[string]string, start, dest string) []string {
	path := []string{dest}
	for cur := dest; cur != start; {
		prev, ok := parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
