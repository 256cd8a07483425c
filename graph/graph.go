// Package graph builds the undirected weighted co-occurrence graph from
// ranked word pairs.
package graph

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/rfelix/cograph/ngram"
)

// Node is a graph node labeled with its token.
type Node struct {
	id   int64
	Word string
}

// ID implements gonum's graph.Node.
func (n Node) ID() int64 { return n.id }

// Graph is a weighted undirected co-occurrence graph whose nodes are tokens.
// It embeds a gonum simple graph so it can be handed directly to layout and
// traversal code.
type Graph struct {
	*simple.WeightedUndirectedGraph

	index map[string]int64 // token -> node id
	next  int64
}

// New returns an empty co-occurrence graph.
func New() *Graph {
	return &Graph{
		WeightedUndirectedGraph: simple.NewWeightedUndirectedGraph(0, 0),
		index:                   make(map[string]int64),
	}
}

// node interns a token, adding a node for it on first sight.
func (g *Graph) node(word string) Node {
	if id, ok := g.index[word]; ok {
		return Node{id: id, Word: word}
	}
	n := Node{id: g.next, Word: word}
	g.next++
	g.index[word] = n.id
	g.AddNode(n)
	return n
}

// NodeFor returns the node for a token, if the token is in the graph.
func (g *Graph) NodeFor(word string) (Node, bool) {
	id, ok := g.index[word]
	if !ok {
		return Node{}, false
	}
	return Node{id: id, Word: word}, true
}

// EdgeWeight returns the weight of the edge between two tokens, if present.
func (g *Graph) EdgeWeight(a, b string) (float64, bool) {
	ida, ok := g.index[a]
	if !ok {
		return 0, false
	}
	idb, ok := g.index[b]
	if !ok {
		return 0, false
	}
	if !g.HasEdgeBetween(ida, idb) {
		return 0, false
	}
	w, ok := g.Weight(ida, idb)
	return w, ok
}

// Words returns all node tokens in sorted order.
func (g *Graph) Words() []string {
	words := make([]string, 0, len(g.index))
	for w := range g.index {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	n := 0
	edges := g.Edges()
	for edges.Next() {
		n++
	}
	return n
}

// Build constructs the graph from ranked pair entries. Each entry becomes an
// undirected edge weighted count*multiplier between its two tokens. When the
// same unordered pair appears twice in entries (both orientations ranked),
// the later insertion overwrites the earlier weight. Pairs of a token with
// itself cannot form a simple undirected edge and are skipped.
func Build(entries []ngram.Entry, multiplier int) *Graph {
	g := New()
	for _, e := range entries {
		if e.Pair.A == e.Pair.B {
			slog.Warn("graph: skipping self pair", "token", e.Pair.A, "count", e.Count)
			continue
		}
		u := g.node(e.Pair.A)
		v := g.node(e.Pair.B)
		g.SetWeightedEdge(g.NewWeightedEdge(u, v, float64(e.Count*multiplier)))
	}
	return g
}
