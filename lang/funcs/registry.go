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
	"sort"
	"sync"

	"github.com/kyledewey/ErrorSentinel-sub001/lang/interfaces"
	"github.com/kyledewey/ErrorSentinel-sub001/lang/types"
	"github.com/kyledewey/ErrorSentinel-sub001/util/errwrap"
)

// Registry holds the registered classes. Matchers and replacers live in two
// independent name spaces. It is safe for concurrent use, but there is no
// global instance: whoever loads a project owns its registry.
type Registry struct {
	mutex     *sync.RWMutex
	factories map[interfaces.Kind]map[string]*Factory
}

// NewRegistry builds a new empty registry.
func NewRegistry() *Registry {
	factories := make(map[interfaces.Kind]map[string]*Factory)
	for _, kind := range interfaces.Kinds() {
		factories[kind] = make(map[string]*Factory)
	}
	return &Registry{
		mutex:     &sync.RWMutex{},
		factories: factories,
	}
}

// Register adds a factory under its own name and kind. If the name is taken
// and overwrite is false, this errors with ClassAlreadyRegisteredError. It
// returns true if an existing factory was replaced.
func (obj *Registry) Register(factory *Factory, overwrite bool) (bool, error) {
	if factory == nil {
		return false, fmt.Errorf("can't register a nil factory")
	}
	if !factory.Kind.Valid() {
		return false, &UnknownFactoryKindError{Kind: factory.Kind.String()}
	}
	if err := factory.Validate(); err != nil {
		return false, errwrap.Wrapf(err, "invalid class `%s`", factory.Name)
	}

	obj.mutex.Lock()
	defer obj.mutex.Unlock()
	m := obj.factories[factory.Kind]
	_, exists := m[factory.Name]
	if exists && !overwrite {
		return false, &ClassAlreadyRegisteredError{Kind: factory.Kind, Name: factory.Name}
	}
	m[factory.Name] = factory
	return exists, nil
}

// Lookup returns the factory registered under that kind and name.
func (obj *Registry) Lookup(kind interfaces.Kind, name string) (*Factory, bool) {
	obj.mutex.RLock()
	defer obj.mutex.RUnlock()
	f, exists := obj.factories[kind][name]
	return f, exists
}

// Has returns true if the class is registered.
func (obj *Registry) Has(kind interfaces.Kind, name string) bool {
	_, exists := obj.Lookup(kind, name)
	return exists
}

// Instantiate builds a new instance of a registered class.
func (obj *Registry) Instantiate(kind interfaces.Kind, name string, actuals []*types.NamedParam) (interfaces.Instance, error) {
	if !kind.Valid() {
		return nil, &UnknownFactoryKindError{Kind: kind.String()}
	}
	f, exists := obj.Lookup(kind, name)
	if !exists {
		return nil, errwrap.Wrapf(ErrClassNotFound, "%s `%s`", kind, name)
	}
	return f.New(actuals)
}

// Names returns the sorted class names of that kind.
func (obj *Registry) Names(kind interfaces.Kind) []string {
	obj.mutex.RLock()
	defer obj.mutex.RUnlock()
	names := []string{}
	for name := range obj.factories[kind] {
		names = append(names, name)
	}
	sort.Strings(names) // add determinism
	return names
}

// Factories returns the factories of that kind, sorted by name.
func (obj *Registry) Factories(kind interfaces.Kind) []*Factory {
	out := []*Factory{}
	for _, name := range obj.Names(kind) {
		if f, exists := obj.Lookup(kind, name); exists {
			out = append(out, f)
		}
	}
	return out
}

// Len returns the total number of registered classes.
func (obj *Registry) Len() int {
	obj.mutex.RLock()
	defer obj.mutex.RUnlock()
	count := 0
	for _, m := range obj.factories {
		count += len(m)
	}
	return count
}
