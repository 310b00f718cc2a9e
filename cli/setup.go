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

package cli

import (
	"github.com/kyledewey/ErrorSentinel-sub001/lang/core"
	"github.com/kyledewey/ErrorSentinel-sub001/lang/funcs"
	"github.com/kyledewey/ErrorSentinel-sub001/lang/resolver"
	"github.com/kyledewey/ErrorSentinel-sub001/util/errwrap"
	"github.com/kyledewey/ErrorSentinel-sub001/yamlclass"

	"github.com/spf13/afero"
)

// loader builds the class registry that the subcommands share.
type loader struct {
	Fs     afero.Fs
	Defs   []string
	NoCore bool

	// Graphviz is an optional file to write the dependency graph of the
	// definition files to.
	Graphviz string

	Debug bool
	Logf  func(format string, v ...interface{})
}

// Load registers the core classes, unless NoCore is set, and then the classes
// of the definition files in dependency order.
func (obj *loader) Load() (*funcs.Registry, error) {
	reg := funcs.NewRegistry()
	res := &resolver.Resolver{
		Registry: reg,
		Debug:    obj.Debug,
		Logf: func(format string, v ...interface{}) {
			obj.Logf("resolver: "+format, v...)
		},
	}
	if !obj.NoCore {
		if err := core.Register(res); err != nil {
			return nil, errwrap.Wrapf(err, "could not register the core classes")
		}
		obj.Logf("registered %d core classes", reg.Len())
	}

	files, err := yamlclass.LoadFiles(obj.Fs, obj.Defs...)
	if err != nil {
		return nil, err
	}
	pcs := yamlclass.PreClasses(files...)

	if obj.Graphviz != "" {
		g, err := res.Graph(pcs)
		if err != nil {
			return nil, err
		}
		if err := g.WriteGraphviz(obj.Fs, obj.Graphviz); err != nil {
			return nil, err
		}
		obj.Logf("wrote the dependency graph to `%s`", obj.Graphviz)
	}

	if err := res.ParseAndRegister(pcs); err != nil {
		return nil, err
	}
	if obj.Debug {
		obj.Logf("registered %d classes from %d files", len(pcs), len(files))
	}
	return reg, nil
}
