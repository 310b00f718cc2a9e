// ErrorSentinel
// Copyright (C) 2013-2024+ James Shubin and the project contributors
// Written by James Shubin <james@shubin.ca> and the project contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package pgraph represents the internal "pointer graph" that we use for
// dependency ordering.
package pgraph

import (
	"fmt"
	"sort"
	"strings"
)

// Vertex is the primary vertex interface in this library. It must be a unique
// pointer, and its String() must be unique within a graph since it is used to
// keep every traversal deterministic.
type Vertex interface {
	fmt.Stringer // String() string
}

// Edge is the primary edge interface in this library.
type Edge interface {
	fmt.Stringer // String() string
}

// Graph is the graph structure in this library. The graph abstract data type
// (ADT) is defined as follows:
// * the directed graph arrows point from left to right ( -> )
// * the arrows point away from their dependencies (eg: arrows mean "before")
// * IOW, you might see base class -> derived class (where base comes first)
type Graph struct {
	Name string

	adjacency map[Vertex]map[Vertex]Edge // Vertex -> Vertex (edge)
}

// NewGraph builds a new graph.
func NewGraph(name string) (*Graph, error) {
	g := &Graph{
		Name: name,
	}
	g.init()
	return g, nil
}

// init makes sure the graph is usable even when it was built as a literal.
func (g *Graph) init() {
	if g.adjacency == nil {
		g.adjacency = make(map[Vertex]map[Vertex]Edge)
	}
}

// Adjacency returns the adjacency map representing this graph. This API should
// be considered read-only.
func (g *Graph) Adjacency() map[Vertex]map[Vertex]Edge {
	g.init()
	return g.adjacency
}

// GetName returns the name of the graph.
func (g *Graph) GetName() string {
	return g.Name
}

// AddVertex uses variadic input to add all listed vertices to the graph.
func (g *Graph) AddVertex(xv ...Vertex) {
	g.init()
	for _, v := range xv {
		if _, exists := g.adjacency[v]; !exists {
			g.adjacency[v] = make(map[Vertex]Edge)
		}
	}
}

// AddEdge adds a directed edge to the graph from v1 to v2.
func (g *Graph) AddEdge(v1, v2 Vertex, e Edge) {
	// NOTE: this doesn't allow more than one edge between two vertexes...
	g.AddVertex(v1, v2) // supports adding N vertices now
	g.adjacency[v1][v2] = e
}

// HasVertex returns if the input vertex exists in the graph.
func (g *Graph) HasVertex(v Vertex) bool {
	g.init()
	_, exists := g.adjacency[v]
	return exists
}

// NumVertices returns the number of vertices in the graph.
func (g *Graph) NumVertices() int {
	return len(g.adjacency)
}

// NumEdges returns the number of edges in the graph.
func (g *Graph) NumEdges() int {
	count := 0
	for k := range g.adjacency {
		count += len(g.adjacency[k])
	}
	return count
}

// VertexSlice is a linear list of vertices. It can be sorted.
type VertexSlice []Vertex

func (vs VertexSlice) Len() int           { return len(vs) }
func (vs VertexSlice) Swap(i, j int)      { vs[i], vs[j] = vs[j], vs[i] }
func (vs VertexSlice) Less(i, j int) bool { return vs[i].String() < vs[j].String() }

// VerticesSorted returns a sorted slice of all vertices in the graph. The order
// is sorted by String() to avoid the non-determinism in the map type.
func (g *Graph) VerticesSorted() []Vertex {
	var vertices []Vertex
	for k := range g.adjacency {
		vertices = append(vertices, k)
	}
	sort.Sort(VertexSlice(vertices)) // add determinism
	return vertices
}

// String makes the graph pretty print.
func (g *Graph) String() string {
	return fmt.Sprintf("Vertices(%d), Edges(%d)", g.NumVertices(), g.NumEdges())
}

// OutgoingGraphVertices returns a sorted slice of all vertices that vertex v
// points to (v -> ???).
func (g *Graph) OutgoingGraphVertices(v Vertex) []Vertex {
	var s []Vertex
	for k := range g.adjacency[v] { // forward paths
		s = append(s, k)
	}
	sort.Sort(VertexSlice(s))
	return s
}

// Times records when a depth first search discovered and finished a vertex.
// The clock is shared, so every number in one search is unique.
type Times struct {
	Discovered int
	Finished   int
}

// CycleError is returned by the depth first search when it finds a back edge.
type CycleError struct {
	// Cycle is the path around the cycle. The first vertex is repeated at
	// the end.
	Cycle []Vertex
}

// Error returns a friendly representation of the cycle.
func (obj *CycleError) Error() string {
	names := []string{}
	for _, v := range obj.Cycle {
		names = append(names, v.String())
	}
	return fmt.Sprintf("graph has a cycle: %s", strings.Join(names, " -> "))
}

// DFSTimes runs a depth first search which covers the whole graph. New search
// trees are started from the roots in the order given, and then from any
// remaining vertex in sorted order. It returns the discovery and finish times
// of every vertex, or a CycleError if a back edge is found.
func (g *Graph) DFSTimes(roots []Vertex) (map[Vertex]*Times, error) {
	clock := 0
	times := make(map[Vertex]*Times)
	onStack := make(map[Vertex]bool)
	var stack []Vertex

	var visit func(Vertex) error
	visit = func(v Vertex) error {
		clock++
		times[v] = &Times{Discovered: clock}
		onStack[v] = true
		stack = append(stack, v) // push

		for _, w := range g.OutgoingGraphVertices(v) {
			if _, discovered := times[w]; !discovered {
				if err := visit(w); err != nil {
					return err
				}
				continue
			}
			if !onStack[w] { // cross or forward edge
				continue
			}
			// back edge: w is an ancestor of v
			cycle := []Vertex{}
			for i := len(stack) - 1; i >= 0; i-- {
				if stack[i] == w {
					cycle = append(cycle, stack[i:]...)
					break
				}
			}
			cycle = append(cycle, w)
			return &CycleError{Cycle: cycle}
		}

		stack = stack[:len(stack)-1] // pop
		onStack[v] = false
		clock++
		times[v].Finished = clock
		return nil
	}

	order := []Vertex{}
	for _, v := range roots {
		if g.HasVertex(v) {
			order = append(order, v)
		}
	}
	order = append(order, g.VerticesSorted()...)
	for _, v := range order {
		if _, discovered := times[v]; discovered {
			continue
		}
		if err := visit(v); err != nil {
			return nil, err
		}
	}
	return times, nil
}

// FinishOrder returns every vertex sorted by descending finish time of a depth
// first search. For a DAG this is a topological order, so each vertex comes
// after everything that points to it. A cycle errors with CycleError.
func (g *Graph) FinishOrder(roots []Vertex) ([]Vertex, error) {
	times, err := g.DFSTimes(roots)
	if err != nil {
		return nil, err
	}
	out := []Vertex{}
	for v := range times {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		return times[out[i]].Finished > times[out[j]].Finished
	})
	return out, nil
}

