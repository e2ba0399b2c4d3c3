// Package testgraph checks connectivity and extracts the giant component of
// a graph.Graph. It exists for package builder: RandomSparse and
// RandomRegular sample edges independently and can produce a disconnected
// graph, but the property tests in §8 need connected random fixtures (a
// disconnected graph's query answers are mostly the trivial (0,0)
// unreachable case, which the relevant properties don't exercise).
//
// Grounded on the teacher's dfs/dfs.go iterative/recursive traversal shape,
// adapted from string vertex IDs to graph.Graph's int vertices and from a
// general hook-driven walker to the one thing callers here need: component
// membership.
package testgraph

import "github.com/graphlab-go/spc2h/graph"

// Connected reports whether every vertex of g is reachable from vertex 0.
func Connected(g *graph.Graph) bool {
	n := g.N()
	if n == 0 {
		return true
	}
	visited := make([]bool, n)
	visited[0] = true
	stack := []int32{0}
	count := 1
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, w := range g.Neighbors(int(v)) {
			if !visited[w] {
				visited[w] = true
				count++
				stack = append(stack, w)
			}
		}
	}
	return count == n
}

// GiantComponent returns the vertex set of the largest connected component
// of g, as a sorted slice of original vertex ids.
func GiantComponent(g *graph.Graph) []int {
	n := g.N()
	visited := make([]bool, n)
	var best []int

	for root := 0; root < n; root++ {
		if visited[root] {
			continue
		}
		comp := []int{root}
		visited[root] = true
		stack := []int32{int32(root)}
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, w := range g.Neighbors(int(v)) {
				if !visited[w] {
					visited[w] = true
					comp = append(comp, int(w))
					stack = append(stack, w)
				}
			}
		}
		if len(comp) > len(best) {
			best = comp
		}
	}
	return best
}

// Induced builds a fresh graph.Graph on the vertices in ids (renumbered
// 0..len(ids)-1 in the order given), containing exactly the edges of g
// between them. Applied to a GiantComponent result, it yields a standalone
// connected graph.
func Induced(g *graph.Graph, ids []int) (*graph.Graph, error) {
	n := len(ids)
	newID := make(map[int]int, n)
	for i, v := range ids {
		newID[v] = i
	}
	out, err := graph.New(max2(n))
	if err != nil {
		return nil, err
	}
	for i, v := range ids {
		for _, w := range g.Neighbors(v) {
			j, ok := newID[int(w)]
			if !ok || j <= i {
				continue
			}
			if err := out.AddEdge(i, j); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

func max2(n int) int {
	if n < 2 {
		return 2
	}
	return n
}
