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

package funcs

import (
	"fmt"
	"strings"

	"github.com/kyledewey/ErrorSentinel-sub001/lang/interfaces"
	"github.com/kyledewey/ErrorSentinel-sub001/lang/types"
	"github.com/kyledewey/ErrorSentinel-sub001/util/errwrap"
)

// Constructor builds an instance out of a set of bound parameters.
type Constructor func(*Bound) (interfaces.Instance, error)

// Factory is a named constructor for instances which checks the parameter
// contract of its class before constructing anything.
type Factory struct {
	Name    string
	Desc    string
	Kind    interfaces.Kind
	BuiltIn bool

	// Impl is the implementation identifier of a builtin class. It is
	// empty for composite classes.
	Impl string

	// Params is the list of formal parameters, in declaration order.
	Params []*types.ParamInfo

	// Fn builds the instance after the parameters were bound.
	Fn Constructor

	// Structure is the expression tree of a composite class, and is nil
	// for classes built from an implementation.
	Structure fmt.Stringer
}

// Validate checks that the factory is well formed. It reports every problem
// it finds, not just the first.
func (obj *Factory) Validate() error {
	var reterr error
	if strings.TrimSpace(obj.Name) == "" {
		reterr = errwrap.Append(reterr, fmt.Errorf("empty class name"))
	}
	if !obj.Kind.Valid() {
		reterr = errwrap.Append(reterr, &UnknownFactoryKindError{Kind: obj.Kind.String()})
	}
	if obj.Fn == nil {
		reterr = errwrap.Append(reterr, fmt.Errorf("class `%s` has no constructor", obj.Name))
	}
	seen := make(map[string]struct{})
	for _, info := range obj.Params {
		if info == nil {
			reterr = errwrap.Append(reterr, fmt.Errorf("class `%s` has a nil parameter", obj.Name))
			continue
		}
		if err := info.Validate(); err != nil {
			reterr = errwrap.Append(reterr, errwrap.Wrapf(err, "class `%s`", obj.Name))
		}
		if _, exists := seen[info.Name]; exists {
			reterr = errwrap.Append(reterr, fmt.Errorf("class `%s` has duplicate parameter `%s`", obj.Name, info.Name))
		}
		seen[info.Name] = struct{}{}
	}
	return reterr
}

// ParamInfo returns the formal parameter with that name.
func (obj *Factory) ParamInfo(name string) (*types.ParamInfo, bool) {
	for _, info := range obj.Params {
		if info.Name == name {
			return info, true
		}
	}
	return nil, false
}

// New binds the actual parameters and builds a new instance. Any failure is
// wrapped in a ParameterizedInstantiationError.
func (obj *Factory) New(actuals []*types.NamedParam) (interfaces.Instance, error) {
	wrap := func(err error) error {
		return &ParameterizedInstantiationError{
			Class: obj.Name,
			Kind:  obj.Kind,
			Err:   err,
		}
	}
	bound, err := Bind(obj.Name, obj.Params, actuals)
	if err != nil {
		return nil, wrap(err)
	}
	inst, err := obj.Fn(bound)
	if err != nil {
		return nil, wrap(err)
	}
	if inst == nil {
		return nil, wrap(fmt.Errorf("constructor returned nothing"))
	}
	if k := inst.Kind(); k != obj.Kind {
		return nil, wrap(fmt.Errorf("constructor built a %s", k))
	}
	switch obj.Kind { // check the capability matches what we claim
	case interfaces.KindMatcher:
		if _, ok := inst.(interfaces.Matcher); !ok {
			return nil, wrap(fmt.Errorf("instance of type %T can't match", inst))
		}
	case interfaces.KindReplacer:
		if _, ok := inst.(interfaces.Replacer); !ok {
			return nil, wrap(fmt.Errorf("instance of type %T can't replace", inst))
		}
	}
	return inst, nil
}

// String returns the signature of the class, such as
// `matcher Int=(integers []integer)`.
func (obj *Factory) String() string {
	params := []string{}
	for _, info := range obj.Params {
		params = append(params, info.String())
	}
	return fmt.Sprintf("%s %s(%s)", obj.Kind, obj.Name, strings.Join(params, ", "))
}

// Wrap returns the param that carries an instance built by this package.
func Wrap(inst interfaces.Instance) (types.Param, error) {
	switch x := inst.(type) {
	case interfaces.Matcher:
		return &types.MatcherParam{M: x}, nil
	case interfaces.Replacer:
		return &types.ReplacerParam{R: x}, nil
	}
	return nil, fmt.Errorf("instance of type %T is neither a matcher nor a replacer", inst)
}
