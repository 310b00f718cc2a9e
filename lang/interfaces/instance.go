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

// Package interfaces contains the common interfaces used by the matcher and
// replacer engine.
package interfaces

import (
	"github.com/kyledewey/ErrorSentinel-sub001/lang/types"
)

// Info is the static information that an instance reports about itself.
type Info struct {
	// Pure is true if the output of the instance depends only on its
	// parameters, and running it has no observable side effects. Pure
	// instances whose parameters are all constant get folded into a
	// constant. Never set this for something random or stateful.
	Pure bool
}

// Instance is an executable operation created by a factory from a set of bound
// parameters. It owns those parameters for its entire lifetime.
type Instance interface {
	// Name returns the name of the class this is an instance of.
	Name() string

	// Kind returns whether this is a matcher or a replacer.
	Kind() Kind

	// Info returns some static info about the instance.
	Info() *Info

	// Params returns the bound parameters, keyed by formal name.
	Params() map[string][]*types.NamedParam
}

// Matcher is an instance which evaluates to a boolean.
type Matcher interface {
	Instance
	types.Matcher
}

// Replacer is an instance which evaluates to a replacement value.
type Replacer interface {
	Instance
	types.Replacer
}
