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

package pgraph

import (
	"fmt"
	"testing"
)

// vertex is a test struct to test the library.
type vertex struct {
	name string
}

// String is a required method of the Vertex interface that we must fulfill.
func (v *vertex) String() string {
	return v.name
}

// NV is a helper function to make testing easier. It creates a new noop vertex.
func NV(s string) Vertex {
	return &vertex{s}
}

// edge is a test struct to test the library.
type edge struct {
	name string
}

// String is a required method of the Edge interface that we must fulfill.
func (e *edge) String() string {
	return e.name
}

// NE is a helper function to make testing easier. It creates a new noop edge.
func NE(s string) Edge {
	return &edge{s}
}

// checkOrder errors if any edge of the graph points backwards in the order.
func checkOrder(t *testing.T, g *Graph, order []Vertex) {
	index := make(map[Vertex]int)
	for i, v := range order {
		index[v] = i
	}
	if len(index) != g.NumVertices() {
		t.Errorf("order has %d vertices, graph has %d", len(index), g.NumVertices())
	}
	for v1, m := range g.Adjacency() {
		for v2 := range m {
			if index[v1] >= index[v2] {
				t.Errorf("vertex %s is not before %s in: %s", v1, v2, fullPrint(order))
			}
		}
	}
}

func fullPrint(vs []Vertex) (str string) {
	for i, v := range vs {
		if i > 0 {
			str += ", "
		}
		str += fmt.Sprintf("%s", v)
	}
	return
}
