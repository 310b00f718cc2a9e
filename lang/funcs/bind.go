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

	"github.com/kyledewey/ErrorSentinel-sub001/lang/interfaces"
	"github.com/kyledewey/ErrorSentinel-sub001/lang/types"
)

// Bound holds the actual parameters of an instance after they were checked
// against the formal parameters of its class.
type Bound struct {
	// Class is the name of the class being instantiated.
	Class string

	params  map[string][]*types.NamedParam
	actuals []*types.NamedParam
}

// Bind checks the actual parameters against the formal ones and groups them by
// name. It fails on the first problem and never returns a partial result. The
// checks happen in this order: unknown names, missing required parameters,
// array mismatches, and then type compatibility.
func Bind(class string, infos []*types.ParamInfo, actuals []*types.NamedParam) (*Bound, error) {
	lookup := make(map[string]*types.ParamInfo)
	for _, info := range infos {
		lookup[info.Name] = info
	}

	params := make(map[string][]*types.NamedParam)
	for _, x := range actuals {
		if x == nil || x.Param == nil {
			return nil, fmt.Errorf("class `%s` received a nil parameter", class)
		}
		if _, exists := lookup[x.Name]; !exists {
			return nil, &ParameterNameError{Class: class, Name: x.Name}
		}
		params[x.Name] = append(params[x.Name], x)
	}

	for _, info := range infos {
		if info.Required && len(params[info.Name]) == 0 {
			return nil, &ParameterRequirementError{Class: class, Name: info.Name}
		}
	}

	for _, info := range infos {
		if n := len(params[info.Name]); !info.Array && n > 1 {
			return nil, &ParameterArrayError{Class: class, Name: info.Name, Count: n}
		}
	}

	for _, x := range actuals {
		info := lookup[x.Name]
		if typ := x.Param.Type(); !types.CanConvert(typ, info.Type) {
			return nil, &ParameterTypeError{
				Class: class,
				Name:  x.Name,
				Want:  info.Type,
				Got:   typ,
			}
		}
	}

	return &Bound{
		Class:   class,
		params:  params,
		actuals: append([]*types.NamedParam{}, actuals...),
	}, nil
}

// Has returns true if at least one value was bound to name.
func (obj *Bound) Has(name string) bool {
	return len(obj.params[name]) > 0
}

// Get returns the first value bound to name, or nil if there is none.
func (obj *Bound) Get(name string) types.Param {
	if l := obj.params[name]; len(l) > 0 {
		return l[0].Param
	}
	return nil
}

// GetAll returns every value bound to name, in order.
func (obj *Bound) GetAll(name string) []types.Param {
	out := []types.Param{}
	for _, x := range obj.params[name] {
		out = append(out, x.Param)
	}
	return out
}

// Named returns the bound params keyed by formal name. The map is a copy.
func (obj *Bound) Named() map[string][]*types.NamedParam {
	m := make(map[string][]*types.NamedParam, len(obj.params))
	for k, v := range obj.params {
		m[k] = append([]*types.NamedParam{}, v...)
	}
	return m
}

// Actuals returns the actual params in the order they were given.
func (obj *Bound) Actuals() []*types.NamedParam {
	return append([]*types.NamedParam{}, obj.actuals...)
}

// missing is the error returned by the typed getters for an absent param.
func (obj *Bound) missing(name string) error {
	return &ParameterRequirementError{Class: obj.Class, Name: name}
}

// Str returns the named param as a string.
func (obj *Bound) Str(name string) (string, error) {
	p := obj.Get(name)
	if p == nil {
		return "", obj.missing(name)
	}
	return p.Str()
}

// Int returns the named param as an integer.
func (obj *Bound) Int(name string) (int64, error) {
	p := obj.Get(name)
	if p == nil {
		return 0, obj.missing(name)
	}
	return p.Int()
}

// Real returns the named param as a real.
func (obj *Bound) Real(name string) (float64, error) {
	p := obj.Get(name)
	if p == nil {
		return 0, obj.missing(name)
	}
	return p.Real()
}

// Matcher returns the named param as a matcher.
func (obj *Bound) Matcher(name string) (types.Matcher, error) {
	p := obj.Get(name)
	if p == nil {
		return nil, obj.missing(name)
	}
	return p.Matcher()
}

// Replacer returns the named param as a replacer.
func (obj *Bound) Replacer(name string) (types.Replacer, error) {
	p := obj.Get(name)
	if p == nil {
		return nil, obj.missing(name)
	}
	return p.Replacer()
}

// Strs returns every value of an array param as strings.
func (obj *Bound) Strs(name string) ([]string, error) {
	out := []string{}
	for _, p := range obj.GetAll(name) {
		s, err := p.Str()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// Ints returns every value of an array param as integers.
func (obj *Bound) Ints(name string) ([]int64, error) {
	out := []int64{}
	for _, p := range obj.GetAll(name) {
		i, err := p.Int()
		if err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return out, nil
}

// Reals returns every value of an array param as reals.
func (obj *Bound) Reals(name string) ([]float64, error) {
	out := []float64{}
	for _, p := range obj.GetAll(name) {
		f, err := p.Real()
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

// Matchers returns every value of an array param as matchers.
func (obj *Bound) Matchers(name string) ([]types.Matcher, error) {
	out := []types.Matcher{}
	for _, p := range obj.GetAll(name) {
		m, err := p.Matcher()
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

// Base implements the boiler-plate of the Instance interface. Builtin
// instances embed it and add a Match or Replace method.
type Base struct {
	Bound *Bound
	K     interfaces.Kind
	Pure  bool
}

// NewBase returns the common part of an instance.
func NewBase(bound *Bound, kind interfaces.Kind, pure bool) *Base {
	return &Base{
		Bound: bound,
		K:     kind,
		Pure:  pure,
	}
}

// Name returns the class name.
func (obj *Base) Name() string { return obj.Bound.Class }

// Kind returns the instance kind.
func (obj *Base) Kind() interfaces.Kind { return obj.K }

// Info returns the static info.
func (obj *Base) Info() *interfaces.Info {
	return &interfaces.Info{
		Pure: obj.Pure,
	}
}

// Params returns the bound params.
func (obj *Base) Params() map[string][]*types.NamedParam {
	return obj.Bound.Named()
}

// String returns a visual representation such as `Int=(integers=3, ...)`.
func (obj *Base) String() string {
	s := obj.Bound.Class + "("
	for i, x := range obj.Bound.actuals {
		if i > 0 {
			s += ", "
		}
		s += x.String()
	}
	return s + ")"
}
