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
	"strconv"

	"github.com/kyledewey/ErrorSentinel-sub001/util/errwrap"

	"github.com/spf13/afero"
)

// Graphviz outputs the graph in graphviz format. Vertices and edges are
// emitted in sorted order so the output is stable between runs.
// https://en.wikipedia.org/wiki/DOT_%28graph_description_language%29
func (g *Graph) Graphviz() (out string) {
	//digraph g {
	//	label="hello world";
	//	node [shape=box];
	//	"A" [label="A"];
	//	"B" [label="B"];
	//	"A" -> "B" [label="f"];
	//}
	out += fmt.Sprintf("digraph %s {\n", strconv.Quote(g.GetName()))
	out += fmt.Sprintf("\tlabel=%s;\n", strconv.Quote(g.GetName()))
	out += "\tnode [shape=box];\n"
	str := ""
	for _, i := range g.VerticesSorted() {
		v1 := strconv.Quote(i.String())
		out += fmt.Sprintf("\t%s [label=%s];\n", v1, v1)
		for _, j := range g.OutgoingGraphVertices(i) {
			k := g.Adjacency()[i][j]
			v2 := strconv.Quote(j.String())
			e := strconv.Quote(k.String())
			// use str for clearer output ordering
			str += fmt.Sprintf("\t%s -> %s [label=%s];\n", v1, v2, e)
		}
	}
	out += str
	out += "}\n"
	return
}

// WriteGraphviz writes the graphviz representation of the graph to filename
// on the given filesystem.
func (g *Graph) WriteGraphviz(fs afero.Fs, filename string) error {
	if filename == "" {
		return fmt.Errorf("no filename given")
	}
	if err := afero.WriteFile(fs, filename, []byte(g.Graphviz()), 0644); err != nil {
		return errwrap.Wrapf(err, "error writing to filename")
	}
	return nil
}
