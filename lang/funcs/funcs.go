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

// Package funcs provides the class registry, the binding of actual parameters
// to formal ones, and the table of builtin implementations.
package funcs

import (
	"fmt"
	"sort"

	"github.com/kyledewey/ErrorSentinel-sub001/lang/interfaces"
	"github.com/kyledewey/ErrorSentinel-sub001/lang/types"
	"github.com/kyledewey/ErrorSentinel-sub001/util/errwrap"
)

// ModuleSep is the separator between a module name and an implementation name
// in an implementation identifier, such as `math.inteq`.
const ModuleSep = "."

// Impl is a builtin implementation. Its name, description and parameters are
// the defaults used when it gets registered without a definition file.
type Impl struct {
	Name   string
	Desc   string
	Kind   interfaces.Kind
	Params []*types.ParamInfo
	Fn     Constructor
}

// registeredImpls is a global map of all the builtin implementations, keyed by
// implementation identifier. It is only written from init() and never touched
// directly. Use RegisterImpl and LookupImpl instead.
var registeredImpls = make(map[string]*Impl) // must initialize

// RegisterImpl makes an implementation available under an identifier. It is
// called from the init() of the builtin packages. There is no matching
// Unregister function.
func RegisterImpl(id string, impl *Impl) {
	if _, exists := registeredImpls[id]; exists {
		panic(fmt.Sprintf("an implementation named %s is already registered", id))
	}
	registeredImpls[id] = impl
}

// ModuleRegisterImpl is exactly like RegisterImpl, except that it registers
// within a named module.
func ModuleRegisterImpl(module, name string, impl *Impl) {
	RegisterImpl(module+ModuleSep+name, impl)
}

// LookupImpl returns the implementation with that identifier.
func LookupImpl(id string) (*Impl, error) {
	impl, exists := registeredImpls[id]
	if !exists {
		return nil, fmt.Errorf("implementation `%s` not found", id)
	}
	return impl, nil
}

// ImplIDs returns the sorted list of implementation identifiers.
func ImplIDs() []string {
	ids := []string{}
	for id := range registeredImpls {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Factory returns a factory for this implementation with its default metadata.
func (obj *Impl) Factory(id string) *Factory {
	return &Factory{
		Name:    obj.Name,
		Desc:    obj.Desc,
		Kind:    obj.Kind,
		BuiltIn: true,
		Impl:    id,
		Params:  obj.Params,
		Fn:      obj.Fn,
	}
}

// Compatible checks that a set of formal parameters can be served by this
// implementation. Every parameter the implementation reads must be declared
// with the same type and array flag. Extra optional parameters are allowed.
func (obj *Impl) Compatible(params []*types.ParamInfo) error {
	var reterr error
	lookup := make(map[string]*types.ParamInfo)
	for _, info := range params {
		lookup[info.Name] = info
	}
	for _, want := range obj.Params {
		got, exists := lookup[want.Name]
		if !exists {
			reterr = errwrap.Append(reterr, fmt.Errorf("missing parameter `%s`", want.Name))
			continue
		}
		if got.Type != want.Type || got.Array != want.Array {
			reterr = errwrap.Append(reterr, fmt.Errorf("parameter `%s` must be %s", want.Name, want))
		}
		delete(lookup, want.Name)
	}
	for _, info := range params {
		if _, extra := lookup[info.Name]; extra && info.Required {
			reterr = errwrap.Append(reterr, fmt.Errorf("unused parameter `%s` can't be required", info.Name))
		}
	}
	return reterr
}

// RegisterBuiltins registers every builtin implementation with its default
// metadata into the registry, in identifier order.
func RegisterBuiltins(reg *Registry, overwrite bool) error {
	for _, id := range ImplIDs() {
		impl := registeredImpls[id]
		if _, err := reg.Register(impl.Factory(id), overwrite); err != nil {
			return errwrap.Wrapf(err, "could not register builtin `%s`", id)
		}
	}
	return nil
}
