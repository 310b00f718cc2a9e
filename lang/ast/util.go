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

package ast

import (
	"sort"

	"github.com/kyledewey/ErrorSentinel-sub001/lang/resolver"
)

// Walk calls fn on every node of the tree, parents before children. It stops
// at the first error.
func Walk(node Node, fn func(Node) error) error {
	if err := fn(node); err != nil {
		return err
	}
	if x, ok := node.(*InternalNode); ok {
		for _, child := range x.Children {
			if err := Walk(child, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// Classes returns the sorted set of classes the trees instantiate.
func Classes(nodes ...Node) []resolver.ClassID {
	seen := make(map[resolver.ClassID]struct{})
	fn := func(n Node) error {
		if x, ok := n.(*InternalNode); ok && x.Factory != nil {
			seen[resolver.ClassID{Name: x.Factory.Name, Kind: x.Factory.Kind}] = struct{}{}
		}
		return nil
	}
	for _, node := range nodes {
		Walk(node, fn)
	}
	out := []resolver.ClassID{}
	for id := range seen {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind < out[j].Kind
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Variables returns the sorted set of variable targets the trees read.
func Variables(nodes ...Node) []string {
	seen := make(map[string]struct{})
	fn := func(n Node) error {
		if x, ok := n.(*VariableNode); ok {
			seen[x.Target] = struct{}{}
		}
		return nil
	}
	for _, node := range nodes {
		Walk(node, fn)
	}
	out := []string{}
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
