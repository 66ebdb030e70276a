// This file contains thin wrappers around the graph module for the
// bracket tree and the venue conflict structure.
package core

import "github.com/dominikbraun/graph"

func matchHash(m *Match) string {
	return m.ID
}

// A BracketGraph is the directed in-tree of the bracket: every
// non-final match has exactly one outgoing edge to its successor.
// It is built over the working copy of a match list and navigated
// during bye, winner and cancellation propagation.
type BracketGraph struct {
	graph.Graph[string, *Match]
	predecessorMap map[string]map[string]graph.Edge[string]
}

func NewBracketGraph(matches []*Match) *BracketGraph {
	g := &BracketGraph{Graph: graph.New(matchHash, graph.Directed())}
	for _, m := range matches {
		g.AddVertex(m)
	}
	for _, m := range matches {
		if m.NextMatchID != "" {
			g.AddEdge(m.ID, m.NextMatchID)
		}
	}
	return g
}

// Successor returns the match fed by the given match, nil for the
// final.
func (g *BracketGraph) Successor(m *Match) *Match {
	if m.NextMatchID == "" {
		return nil
	}
	next, err := g.Vertex(m.NextMatchID)
	if err != nil {
		return nil
	}
	return next
}

// Sibling returns the other match feeding the same successor.
func (g *BracketGraph) Sibling(m *Match) *Match {
	if m.NextMatchID == "" {
		return nil
	}

	if g.predecessorMap == nil {
		// The tree does not change after construction so the
		// predecessor map is stored on the first call.
		g.predecessorMap, _ = g.PredecessorMap()
	}

	for id := range g.predecessorMap[m.NextMatchID] {
		if id == m.ID {
			continue
		}
		if sibling, err := g.Vertex(id); err == nil {
			return sibling
		}
	}
	return nil
}

// A ConflictGraph connects matches that share a team id and
// therefore cannot reuse each other's venue color.
type ConflictGraph struct {
	graph.Graph[string, *Match]
	adjacencyMap map[string]map[string]graph.Edge[string]
}

func NewConflictGraph(matches []*Match) *ConflictGraph {
	g := &ConflictGraph{Graph: graph.New(matchHash)}
	for _, m := range matches {
		g.AddVertex(m)
	}
	for i := 0; i < len(matches); i++ {
		for j := i + 1; j < len(matches); j++ {
			if matchesConflict(matches[i], matches[j]) {
				g.AddEdge(matches[i].ID, matches[j].ID)
			}
		}
	}
	return g
}

// Empty slots never conflict.
func matchesConflict(a, b *Match) bool {
	return a.ContainsTeam(b.Team1ID) || a.ContainsTeam(b.Team2ID)
}

// Neighbors returns the ids of the matches in conflict with the
// given one.
func (g *ConflictGraph) Neighbors(id string) []string {
	if g.adjacencyMap == nil {
		g.adjacencyMap, _ = g.AdjacencyMap()
	}

	edges := g.adjacencyMap[id]
	neighbors := make([]string, 0, len(edges))
	for n := range edges {
		neighbors = append(neighbors, n)
	}
	return neighbors
}
