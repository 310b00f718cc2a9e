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

// Package yamlclass provides the facilities for loading class definitions from
// a yaml file and for writing the registered classes back out.
package yamlclass

import (
	"fmt"
	"strings"

	"github.com/kyledewey/ErrorSentinel-sub001/lang/interfaces"
	"github.com/kyledewey/ErrorSentinel-sub001/lang/resolver"
	"github.com/kyledewey/ErrorSentinel-sub001/lang/types"
	"github.com/kyledewey/ErrorSentinel-sub001/util/errwrap"

	"gopkg.in/yaml.v2"
)

// LiteralConfig is a constant leaf of a structure.
type LiteralConfig struct {
	Type  types.ParamType `yaml:"type"`
	Value string          `yaml:"value"`
}

// ArgConfig is one actual parameter of a node. Exactly one of Given, Literal
// and Value must be set.
type ArgConfig struct {
	Name string `yaml:"name"`

	// Given names a formal parameter of the enclosing class, or a variable
	// of a project.
	Given   string         `yaml:"given,omitempty"`
	Literal *LiteralConfig `yaml:"literal,omitempty"`
	Value   *NodeConfig    `yaml:"value,omitempty"`
}

// NodeConfig is an invocation of a class with some actual parameters.
type NodeConfig struct {
	Class  string          `yaml:"class"`
	Type   interfaces.Kind `yaml:"type"`
	Params []*ArgConfig    `yaml:"params,omitempty"`
}

// ClassConfig is the definition of a single class. A builtin class names an
// implementation and a composite class has a structure instead.
type ClassConfig struct {
	Name      string             `yaml:"name"`
	Desc      string             `yaml:"description,omitempty"`
	Type      interfaces.Kind    `yaml:"type"`
	BuiltIn   bool               `yaml:"builtin,omitempty"`
	Impl      string             `yaml:"implementation,omitempty"`
	Params    []*types.ParamInfo `yaml:"params,omitempty"`
	Structure *NodeConfig        `yaml:"structure,omitempty"`

	// path is the file this was read from, for error messages.
	path string
}

// ClassFile is the data structure of a definition file.
type ClassFile struct {
	Classes []*ClassConfig `yaml:"classes"`
	Comment string         `yaml:"comment,omitempty"`
}

// ClassParseError is returned for a malformed class definition.
type ClassParseError struct {
	Path  string // empty if unknown
	Class string // empty if the whole file is bad
	Err   error
}

// Error returns a friendly representation of the error.
func (obj *ClassParseError) Error() string {
	where := []string{}
	if obj.Path != "" {
		where = append(where, fmt.Sprintf("file `%s`", obj.Path))
	}
	if obj.Class != "" {
		where = append(where, fmt.Sprintf("class `%s`", obj.Class))
	}
	if len(where) == 0 {
		return fmt.Sprintf("class parse error: %v", obj.Err)
	}
	return fmt.Sprintf("class parse error in %s: %v", strings.Join(where, ", "), obj.Err)
}

// Unwrap returns the cause.
func (obj *ClassParseError) Unwrap() error { return obj.Err }

// Parse parses a data stream into the class file structure. Unknown fields are
// an error. Every class is validated, but references to other classes are only
// checked at registration time.
func Parse(data []byte) (*ClassFile, error) {
	return ParseFile("", data)
}

// ParseFile is like Parse, but it remembers the path for error messages.
func ParseFile(path string, data []byte) (*ClassFile, error) {
	c := &ClassFile{}
	if err := yaml.UnmarshalStrict(data, c); err != nil {
		return nil, &ClassParseError{Path: path, Err: err}
	}
	for i, class := range c.Classes {
		if class == nil {
			return nil, &ClassParseError{Path: path, Err: fmt.Errorf("empty class at index %d", i)}
		}
		class.path = path
		if err := class.Validate(); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// ID returns the identifier of the class.
func (obj *ClassConfig) ID() resolver.ClassID {
	return resolver.ClassID{Name: obj.Name, Kind: obj.Type}
}

func (obj *ClassConfig) parseError(err error) error {
	return &ClassParseError{Path: obj.path, Class: obj.Name, Err: err}
}

// Validate checks the class on its own. All the problems are reported.
func (obj *ClassConfig) Validate() error {
	var reterr error
	if strings.TrimSpace(obj.Name) == "" {
		reterr = errwrap.Append(reterr, fmt.Errorf("empty class name"))
	}
	if !obj.Type.Valid() {
		reterr = errwrap.Append(reterr, fmt.Errorf("missing type"))
	}

	formals := make(map[string]struct{})
	for _, info := range obj.Params {
		if info == nil {
			reterr = errwrap.Append(reterr, fmt.Errorf("empty parameter"))
			continue
		}
		if err := info.Validate(); err != nil {
			reterr = errwrap.Append(reterr, err)
		}
		if _, exists := formals[info.Name]; exists {
			reterr = errwrap.Append(reterr, fmt.Errorf("duplicate parameter `%s`", info.Name))
		}
		formals[info.Name] = struct{}{}
	}

	switch {
	case obj.Impl != "" && obj.Structure != nil:
		reterr = errwrap.Append(reterr, fmt.Errorf("a class can't have both an implementation and a structure"))
	case obj.Impl != "":
		if !obj.BuiltIn {
			reterr = errwrap.Append(reterr, fmt.Errorf("only builtin classes have an implementation"))
		}
	case obj.Structure != nil:
		if obj.BuiltIn {
			reterr = errwrap.Append(reterr, fmt.Errorf("a builtin class needs an implementation"))
		}
		if obj.Structure.Type != obj.Type {
			reterr = errwrap.Append(reterr, fmt.Errorf("structure is a %s, but the class is a %s", obj.Structure.Type, obj.Type))
		}
		reterr = errwrap.Append(reterr, obj.Structure.validate(func(name string) error {
			if _, exists := formals[name]; !exists {
				return fmt.Errorf("given parameter `%s` is not a formal parameter", name)
			}
			return nil
		}))
	default:
		reterr = errwrap.Append(reterr, fmt.Errorf("a class needs an implementation or a structure"))
	}

	if reterr != nil {
		return obj.parseError(reterr)
	}
	return nil
}

// Deps returns the classes the structure instantiates. A builtin class has
// none.
func (obj *ClassConfig) Deps() []resolver.ClassID {
	if obj.Structure == nil {
		return nil
	}
	out := []resolver.ClassID{}
	seen := make(map[resolver.ClassID]struct{})
	obj.Structure.walk(func(n *NodeConfig) {
		id := resolver.ClassID{Name: n.Class, Kind: n.Type}
		if _, exists := seen[id]; !exists {
			out = append(out, id)
		}
		seen[id] = struct{}{}
	})
	return out
}

// validate checks a node and its children. The given func checks the names
// which the node reads from its environment.
func (obj *NodeConfig) validate(given func(string) error) error {
	var reterr error
	if obj.Class == "" {
		reterr = errwrap.Append(reterr, fmt.Errorf("node without a class"))
	}
	if !obj.Type.Valid() {
		reterr = errwrap.Append(reterr, fmt.Errorf("node `%s` has no type", obj.Class))
	}
	for _, arg := range obj.Params {
		if arg == nil || arg.Name == "" {
			reterr = errwrap.Append(reterr, fmt.Errorf("node `%s` has an unnamed parameter", obj.Class))
			continue
		}
		count := 0
		if arg.Given != "" {
			count++
			if given != nil {
				reterr = errwrap.Append(reterr, given(arg.Given))
			}
		}
		if arg.Literal != nil {
			count++
			if !arg.Literal.Type.IsConstantType() {
				reterr = errwrap.Append(reterr, fmt.Errorf("literal `%s` has non constant type %s", arg.Name, arg.Literal.Type))
			} else if _, err := types.NewConstant(arg.Literal.Type, arg.Literal.Value); err != nil {
				reterr = errwrap.Append(reterr, errwrap.Wrapf(err, "literal `%s`", arg.Name))
			}
		}
		if arg.Value != nil {
			count++
			reterr = errwrap.Append(reterr, arg.Value.validate(given))
		}
		if count != 1 {
			reterr = errwrap.Append(reterr, fmt.Errorf("parameter `%s` of `%s` needs exactly one of given, literal or value", arg.Name, obj.Class))
		}
	}
	return reterr
}

// Validate checks a node on its own. Names read from the environment are not
// checked.
func (obj *NodeConfig) Validate() error {
	return obj.validate(nil)
}

func (obj *NodeConfig) walk(fn func(*NodeConfig)) {
	fn(obj)
	for _, arg := range obj.Params {
		if arg != nil && arg.Value != nil {
			arg.Value.walk(fn)
		}
	}
}

// ValidateWith is like Validate, but every name read from the environment is
// checked with the given func.
func (obj *NodeConfig) ValidateWith(given func(string) error) error {
	return obj.validate(given)
}
