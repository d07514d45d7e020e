// Package decompose - the three traversal strategies turning a gain
// ranking plus the interaction graph into a concrete variable subset.
package decompose

import (
	"container/heap"
	"sort"

	"github.com/hhtong/dwave-hybrid/bqm"
)

// searchGraph is a mutable copy of a model's interaction graph, reduced
// between multi-start rounds so already-selected variables are never
// revisited and traversal makes forward progress on a shrinking graph.
type searchGraph struct {
	adj map[string]map[string]struct{}
}

// newSearchGraph copies b's interaction graph, omitting every node in
// exclude and every edge touching one.
// Complexity: O(V + E).
func newSearchGraph(b *bqm.BQM, exclude map[string]struct{}) *searchGraph {
	g := &searchGraph{adj: make(map[string]map[string]struct{}, b.NumVariables())}
	for _, v := range b.Variables() {
		if _, out := exclude[v]; out {
			continue
		}
		neighbors, err := b.Neighbors(v)
		if err != nil {
			continue // v came from Variables; unreachable
		}
		edges := make(map[string]struct{}, len(neighbors))
		for _, u := range neighbors {
			if _, out := exclude[u]; out {
				continue
			}
			edges[u] = struct{}{}
		}
		g.adj[v] = edges
	}
	return g
}

// len returns the number of remaining nodes.
func (g *searchGraph) len() int { return len(g.adj) }

// has reports whether v remains in the graph.
func (g *searchGraph) has(v string) bool {
	_, ok := g.adj[v]
	return ok
}

// neighbors returns v's remaining neighbors in sorted order.
func (g *searchGraph) neighbors(v string) []string {
	edges := g.adj[v]
	out := make([]string, 0, len(edges))
	for u := range edges {
		out = append(out, u)
	}
	sort.Strings(out)
	return out
}

// remove deletes the given nodes and their incident edges.
func (g *searchGraph) remove(nodes []string) {
	for _, v := range nodes {
		for u := range g.adj[v] {
			delete(g.adj[u], v)
		}
		delete(g.adj, v)
	}
}

// energyPick takes the first size unvisited variables from the ranking,
// in rank order, ignoring graph adjacency.
// Complexity: O(V).
func energyPick(ranking []Gain, visited map[string]struct{}, size int) []string {
	picked := make([]string, 0, size)
	for _, g := range ranking {
		if len(picked) == size {
			break
		}
		if _, seen := visited[g.Variable]; seen {
			continue
		}
		picked = append(picked, g.Variable)
	}
	return picked
}

// expandFunc grows one seeded subgraph of at most size nodes.
type expandFunc func(g *searchGraph, source string, size int) []string

// iterativeSearch runs multi-start graph search: expand from the next
// unvisited ranked variable, remove the consumed nodes, and reseed
// until size variables are collected, the ranking is exhausted, or the
// graph is empty.
func iterativeSearch(g *searchGraph, ranking []Gain, visited map[string]struct{}, size int, expand expandFunc) []string {
	selected := make([]string, 0, size)
	taken := make(map[string]struct{}, size)

	for _, r := range ranking {
		if len(selected) >= size || g.len() == 0 {
			break
		}
		source := r.Variable
		if _, seen := visited[source]; seen {
			continue
		}
		if _, seen := taken[source]; seen {
			continue
		}
		if !g.has(source) {
			continue
		}

		nodes := expand(g, source, size-len(selected))
		for _, v := range nodes {
			taken[v] = struct{}{}
		}
		selected = append(selected, nodes...)

		// the next seed expands a reduced graph
		g.remove(nodes)
	}
	return selected
}

// bfsNodes traverses g breadth-first from source, returning up to size
// nodes including the source. Neighbor order is sorted, so the visit
// order is deterministic.
// Complexity: O(V + E) within the reached region.
func bfsNodes(g *searchGraph, source string, size int) []string {
	if size < 1 {
		return nil
	}
	order := make([]string, 0, size)
	seen := map[string]struct{}{source: {}}
	queue := []string{source}
	for len(queue) > 0 && len(order) < size {
		v := queue[0]
		queue = queue[1:]
		order = append(order, v)
		for _, u := range g.neighbors(v) {
			if _, ok := seen[u]; ok {
				continue
			}
			seen[u] = struct{}{}
			queue = append(queue, u)
		}
	}
	return order
}

// pfsNodes traverses g priority-first from source, returning up to size
// nodes including the source. The frontier is a max-priority queue over
// priority[v]; equal priorities break by insertion order, so re-runs on
// equal inputs agree.
// Complexity: O((V + E) log V) within the reached region.
func pfsNodes(g *searchGraph, source string, size int, priority map[string]float64) []string {
	if size < 1 {
		return nil
	}
	pq := make(frontierPQ, 0, size)
	heap.Init(&pq)
	seq := 0
	push := func(v string) {
		heap.Push(&pq, &frontierItem{id: v, priority: priority[v], seq: seq})
		seq++
	}

	order := make([]string, 0, size)
	visited := make(map[string]struct{}, size)
	enqueued := map[string]struct{}{source: {}}
	push(source)

	for pq.Len() > 0 && len(order) < size {
		item := heap.Pop(&pq).(*frontierItem)
		if _, ok := visited[item.id]; ok {
			continue
		}
		visited[item.id] = struct{}{}
		order = append(order, item.id)

		for _, u := range g.neighbors(item.id) {
			if _, ok := enqueued[u]; ok {
				continue
			}
			enqueued[u] = struct{}{}
			push(u)
		}
	}
	return order
}

// frontierItem is one frontier entry: a node, its gain priority, and
// the insertion sequence number used as a stable tie-break.
type frontierItem struct {
	id       string
	priority float64
	seq      int
}

// frontierPQ is a max-priority queue of *frontierItem, ordered by
// descending priority, then ascending insertion sequence.
type frontierPQ []*frontierItem

// Len returns the number of items in the heap.
func (pq frontierPQ) Len() int { return len(pq) }

// Less prefers higher priority; ties go to the earlier insertion.
func (pq frontierPQ) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority > pq[j].priority
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq frontierPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be of type *frontierItem.
func (pq *frontierPQ) Push(x interface{}) { *pq = append(*pq, x.(*frontierItem)) }

// Pop removes and returns the highest-priority element.
func (pq *frontierPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
