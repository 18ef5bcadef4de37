// SPDX-License-Identifier: MIT
// Package: netsim/network
//
// components.go — breadth-first traversal over a View.
//
// Neighbours are visited in ascending index order, so results are
// deterministic. Edge multiplicity is ignored: any positive entry connects.
//
// Complexity: O(N²) per traversal (dense adjacency).

package network

import (
	"fmt"
	"sort"
)

// Unreachable is the Distances value of nodes not connected to the start.
const Unreachable = -1

// Distances returns the hop count from start to every node, Unreachable
// for nodes in other components.
func Distances(v View, start int) ([]int, error) {
	n := v.Size()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("network: Distances(%d) with %d nodes: %w", start, n, ErrNodeOutOfRange)
	}
	dist := make([]int, n)
	for i := range dist {
		dist[i] = Unreachable
	}
	bfs(v, start, func(node, depth int) { dist[node] = depth })

	return dist, nil
}

// Components returns the connected components, each sorted ascending and
// ordered by their smallest node.
func Components(v View) [][]int {
	n := v.Size()
	seen := make([]bool, n)
	var out [][]int
	for root := 0; root < n; root++ {
		if seen[root] {
			continue
		}
		var comp []int
		bfs(v, root, func(node, _ int) {
			seen[node] = true
			comp = append(comp, node)
		})
		sort.Ints(comp)
		out = append(out, comp)
	}

	return out
}

// bfs visits every node reachable from start once, with its depth.
func bfs(v View, start int, visit func(node, depth int)) {
	n := v.Size()
	visited := make([]bool, n)
	queue := make([]int, 0, n)
	depth := make([]int, n)

	visited[start] = true
	queue = append(queue, start)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		visit(cur, depth[cur])
		for nbr := 0; nbr < n; nbr++ {
			if nbr == cur || visited[nbr] || !v.Connected(cur, nbr) {
				continue
			}
			visited[nbr] = true
			depth[nbr] = depth[cur] + 1
			queue = append(queue, nbr)
		}
	}
}
