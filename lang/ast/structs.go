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

// Package ast contains the parse tree of matcher and replacer expressions and
// the evaluator which turns a tree into a parameter.
package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kyledewey/ErrorSentinel-sub001/lang/funcs"
	"github.com/kyledewey/ErrorSentinel-sub001/lang/types"
)

// Node is a node of a parse tree. The set of nodes is closed: it is one of
// *TerminalNode, *VariableNode or *InternalNode.
type Node interface {
	fmt.Stringer

	// Name returns the label given to the values this node evaluates to.
	Name() string

	// node seals the interface.
	node()
}

// TerminalNode is a constant leaf.
type TerminalNode struct {
	Label string
	Value types.Param
}

// Name returns the label of this node.
func (obj *TerminalNode) Name() string { return obj.Label }

func (obj *TerminalNode) node() {}

// String returns the constant, quoted if it's textual.
func (obj *TerminalNode) String() string {
	if obj.Value == nil {
		return "nil"
	}
	switch obj.Value.Type() {
	case types.TypeString, types.TypeCharacter:
		return strconv.Quote(obj.Value.String())
	}
	return obj.Value.String()
}

// VariableNode is a leaf that looks up its target in the environment.
type VariableNode struct {
	Label  string
	Target string
}

// Name returns the label of this node.
func (obj *VariableNode) Name() string { return obj.Label }

func (obj *VariableNode) node() {}

// String returns the target prefixed with a dollar sign.
func (obj *VariableNode) String() string { return "$" + obj.Target }

// InternalNode instantiates a class with the values of its children.
type InternalNode struct {
	Label    string
	Factory  *funcs.Factory
	Children []Node
}

// Name returns the label of this node.
func (obj *InternalNode) Name() string { return obj.Label }

func (obj *InternalNode) node() {}

// String returns a representation such as `Not(matcher=Regex(...))`.
func (obj *InternalNode) String() string {
	args := []string{}
	for _, x := range obj.Children {
		args = append(args, fmt.Sprintf("%s=%s", x.Name(), x))
	}
	name := "nil"
	if obj.Factory != nil {
		name = obj.Factory.Name
	}
	return fmt.Sprintf("%s(%s)", name, strings.Join(args, ", "))
}
