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
	"testing"

	"github.com/spf13/afero"
)

func TestGraphviz1(t *testing.T) {
	G := &Graph{Name: "g2"}
	v1 := NV("v1")
	v2 := NV("v2")
	v3 := NV("v3")
	G.AddEdge(v2, v3, NE("e2"))
	G.AddEdge(v1, v2, NE("e1"))
	G.AddEdge(v1, v3, NE("e3"))

	exp := `digraph "g2" {
	label="g2";
	node [shape=box];
	"v1" [label="v1"];
	"v2" [label="v2"];
	"v3" [label="v3"];
	"v1" -> "v2" [label="e1"];
	"v1" -> "v3" [label="e3"];
	"v2" -> "v3" [label="e2"];
}
`
	if out := G.Graphviz(); out != exp {
		t.Errorf("conversion to graphviz format done incorrectly:\n%s", out)
	}
}

func TestWriteGraphviz1(t *testing.T) {
	G := &Graph{Name: "g1"}
	G.AddEdge(NV("a"), NV("b"), NE("e"))

	fs := afero.NewMemMapFs()
	if err := G.WriteGraphviz(fs, "/tmp/out.dot"); err != nil {
		t.Errorf("write failed: %+v", err)
		return
	}
	b, err := afero.ReadFile(fs, "/tmp/out.dot")
	if err != nil {
		t.Errorf("read failed: %+v", err)
		return
	}
	if string(b) != G.Graphviz() {
		t.Errorf("file contents differ from graphviz output")
	}

	if err := G.WriteGraphviz(fs, ""); err == nil {
		t.Errorf("expected an error on an empty filename")
	}
}
