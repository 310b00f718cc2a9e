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

// Package resolver orders a batch of class definitions so that every class is
// registered after the classes it is built from.
package resolver

import (
	"fmt"

	"github.com/kyledewey/ErrorSentinel-sub001/lang/funcs"
	"github.com/kyledewey/ErrorSentinel-sub001/lang/interfaces"
	"github.com/kyledewey/ErrorSentinel-sub001/pgraph"
	"github.com/kyledewey/ErrorSentinel-sub001/util/errwrap"
)

// ClassID identifies a class. Matchers and replacers have separate name
// spaces, so the kind is part of the identity.
type ClassID struct {
	Name string
	Kind interfaces.Kind
}

// String returns a representation such as `matcher Int=`.
func (obj ClassID) String() string {
	return fmt.Sprintf("%s %s", obj.Kind, obj.Name)
}

// ClassParser is the source of a class definition which is not registered yet.
type ClassParser interface {
	// ParseAndRegisterClass finishes parsing the definition and registers
	// the resulting factory. Every dependency is registered beforehand.
	ParseAndRegisterClass(reg *funcs.Registry, id ClassID) error
}

// PreClass is a class definition which is waiting to be registered. It only
// exists for the duration of a registration pass.
type PreClass struct {
	ID     ClassID
	Parser ClassParser

	// Deps are the classes this definition is built from.
	Deps []ClassID
}

// String returns the class identifier.
func (obj *PreClass) String() string { return obj.ID.String() }

// MissingDependencyError is returned when a class depends on something which
// is neither registered nor part of the batch.
type MissingDependencyError struct {
	Class ClassID
	Dep   ClassID
}

// Error returns a friendly representation of the error.
func (obj *MissingDependencyError) Error() string {
	return fmt.Sprintf("class `%s` depends on unknown class `%s`", obj.Class, obj.Dep)
}

// CycleError is returned when the classes of a batch depend on each other.
type CycleError struct {
	// Classes is the path around the cycle. The first class is repeated
	// at the end.
	Classes []ClassID
}

// Error returns a friendly representation of the error.
func (obj *CycleError) Error() string {
	s := ""
	for i, id := range obj.Classes {
		if i > 0 {
			s += " -> "
		}
		s += id.String()
	}
	return fmt.Sprintf("class definitions have a cycle: %s", s)
}

// vertex is the graph node of a pre-class. The index is the position in the
// input, which is the order the search starts from.
type vertex struct {
	pc    *PreClass
	index int
}

func (obj *vertex) String() string { return obj.pc.ID.String() }

// Resolver orders and registers batches of class definitions.
type Resolver struct {
	// Registry is where the classes get registered. Dependencies which are
	// already in it are treated as satisfied.
	Registry *funcs.Registry

	Debug bool
	Logf  func(format string, v ...interface{})
}

func (obj *Resolver) registered(id ClassID) bool {
	return obj.Registry != nil && obj.Registry.Has(id.Kind, id.Name)
}

// Order returns the batch sorted by descending depth first search finish time
// over the graph of dependency to dependent edges. For a batch without cycles
// this never places a class before one of its unregistered dependencies.
func (obj *Resolver) Order(pcs []*PreClass) ([]*PreClass, error) {
	g, roots, err := obj.graph(pcs)
	if err != nil {
		return nil, err
	}
	if obj.Debug {
		obj.Logf("graph: %s", g)
	}

	order, err := g.FinishOrder(roots)
	if e, ok := err.(*pgraph.CycleError); ok {
		cycle := []ClassID{}
		for _, v := range e.Cycle {
			cycle = append(cycle, v.(*vertex).pc.ID)
		}
		return nil, &CycleError{Classes: cycle}
	} else if err != nil {
		return nil, err
	}

	out := []*PreClass{}
	for _, v := range order {
		out = append(out, v.(*vertex).pc)
	}
	return out, nil
}

// Graph returns the graph of the batch, with an edge from every unregistered
// dependency to its dependent. It may have cycles.
func (obj *Resolver) Graph(pcs []*PreClass) (*pgraph.Graph, error) {
	g, _, err := obj.graph(pcs)
	return g, err
}

// graph builds the graph of the batch and returns the vertices in input order.
func (obj *Resolver) graph(pcs []*PreClass) (*pgraph.Graph, []pgraph.Vertex, error) {
	g, err := pgraph.NewGraph("classes")
	if err != nil {
		return nil, nil, err
	}
	vertices := make(map[ClassID]*vertex)
	roots := []pgraph.Vertex{}
	for i, pc := range pcs {
		if pc == nil {
			return nil, nil, fmt.Errorf("nil class definition at index %d", i)
		}
		if _, exists := vertices[pc.ID]; exists {
			return nil, nil, &funcs.ClassAlreadyRegisteredError{Kind: pc.ID.Kind, Name: pc.ID.Name}
		}
		v := &vertex{pc: pc, index: i}
		vertices[pc.ID] = v
		g.AddVertex(v)
		roots = append(roots, v) // search in input order
	}

	for _, pc := range pcs {
		for _, dep := range pc.Deps {
			if obj.registered(dep) {
				continue // already satisfied
			}
			v, exists := vertices[dep]
			if !exists {
				return nil, nil, &MissingDependencyError{Class: pc.ID, Dep: dep}
			}
			g.AddEdge(v, vertices[pc.ID], &edge{})
		}
	}
	return g, roots, nil
}

// ParseAndRegister registers the batch in dependency order. It stops at the
// first class that fails, and classes registered before it stay registered.
func (obj *Resolver) ParseAndRegister(pcs []*PreClass) error {
	if obj.Registry == nil {
		return fmt.Errorf("no registry given")
	}
	order, err := obj.Order(pcs)
	if err != nil {
		return errwrap.Wrapf(err, "could not order class definitions")
	}
	for _, pc := range order {
		if obj.Debug {
			obj.Logf("registering: %s", pc.ID)
		}
		if pc.Parser == nil {
			return fmt.Errorf("class `%s` has no parser", pc.ID)
		}
		if err := pc.Parser.ParseAndRegisterClass(obj.Registry, pc.ID); err != nil {
			return errwrap.Wrapf(err, "could not register class `%s`", pc.ID)
		}
	}
	return nil
}

// ResolveOrder is a helper which orders a batch against a registry.
func ResolveOrder(pcs []*PreClass, reg *funcs.Registry) ([]*PreClass, error) {
	return (&Resolver{Registry: reg}).Order(pcs)
}

// edge is the only kind of edge in the class graph.
type edge struct{}

func (obj *edge) String() string { return "before" }
