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

package yamlclass

import (
	"fmt"

	"github.com/kyledewey/ErrorSentinel-sub001/lang/ast"
	"github.com/kyledewey/ErrorSentinel-sub001/lang/funcs"
	"github.com/kyledewey/ErrorSentinel-sub001/lang/interfaces"

	"gopkg.in/yaml.v2"
)

// FromRegistry returns the definitions of every registered class, matchers
// first, each kind sorted by name.
func FromRegistry(reg *funcs.Registry) (*ClassFile, error) {
	out := &ClassFile{
		Classes: []*ClassConfig{},
	}
	for _, kind := range interfaces.Kinds() {
		for _, f := range reg.Factories(kind) {
			class, err := FromFactory(f)
			if err != nil {
				return nil, err
			}
			out.Classes = append(out.Classes, class)
		}
	}
	return out, nil
}

// FromFactory returns the definition of a registered class.
func FromFactory(f *funcs.Factory) (*ClassConfig, error) {
	class := &ClassConfig{
		Name:    f.Name,
		Desc:    f.Desc,
		Type:    f.Kind,
		BuiltIn: f.BuiltIn,
		Impl:    f.Impl,
		Params:  f.Params,
	}
	if f.Structure == nil {
		return class, nil
	}
	root, ok := f.Structure.(*ast.InternalNode)
	if !ok {
		return nil, fmt.Errorf("class `%s` has a structure of type %T", f.Name, f.Structure)
	}
	node, err := FromNode(root)
	if err != nil {
		return nil, err
	}
	class.Structure = node
	return class, nil
}

// FromNode returns the config of a parse tree.
func FromNode(node *ast.InternalNode) (*NodeConfig, error) {
	if node.Factory == nil {
		return nil, fmt.Errorf("node `%s` has no class", node.Label)
	}
	out := &NodeConfig{
		Class: node.Factory.Name,
		Type:  node.Factory.Kind,
	}
	for _, child := range node.Children {
		arg := &ArgConfig{Name: child.Name()}
		switch x := child.(type) {
		case *ast.VariableNode:
			arg.Given = x.Target

		case *ast.TerminalNode:
			arg.Literal = &LiteralConfig{
				Type:  x.Value.Type(),
				Value: x.Value.String(),
			}

		case *ast.InternalNode:
			value, err := FromNode(x)
			if err != nil {
				return nil, err
			}
			arg.Value = value
		}
		out.Params = append(out.Params, arg)
	}
	return out, nil
}

// Serialize returns the yaml definitions of every registered class.
func Serialize(reg *funcs.Registry) ([]byte, error) {
	c, err := FromRegistry(reg)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(c)
}
