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

// Package core contains the builtin classes. The implementations register
// themselves when their package is imported, and the classes derived from
// them are defined in the embedded yaml files.
package core

import (
	"embed"
	"io/fs"

	"github.com/kyledewey/ErrorSentinel-sub001/lang/funcs"
	"github.com/kyledewey/ErrorSentinel-sub001/lang/resolver"
	"github.com/kyledewey/ErrorSentinel-sub001/util/errwrap"
	"github.com/kyledewey/ErrorSentinel-sub001/yamlclass"

	// import so the implementations register
	_ "github.com/kyledewey/ErrorSentinel-sub001/lang/core/logic"
	_ "github.com/kyledewey/ErrorSentinel-sub001/lang/core/math"
	_ "github.com/kyledewey/ErrorSentinel-sub001/lang/core/random"
	_ "github.com/kyledewey/ErrorSentinel-sub001/lang/core/regexp"
	_ "github.com/kyledewey/ErrorSentinel-sub001/lang/core/strings"
)

//go:embed */*.yaml
var defs embed.FS

// AssetNames returns a flattened list of embedded .yaml file paths.
func AssetNames() ([]string, error) {
	fileSystem := defs
	paths := []string{}
	if err := fs.WalkDir(fileSystem, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() { // skip the dirs
			return nil
		}
		paths = append(paths, path)
		return nil
	}); err != nil {
		return nil, err
	}
	return paths, nil
}

// Asset returns the contents of an embedded .yaml file.
func Asset(name string) ([]byte, error) {
	return defs.ReadFile(name)
}

// Files returns the parsed embedded definition files.
func Files() ([]*yamlclass.ClassFile, error) {
	names, err := AssetNames()
	if err != nil {
		return nil, err
	}
	files := []*yamlclass.ClassFile{}
	for _, name := range names {
		data, err := Asset(name)
		if err != nil {
			return nil, err
		}
		f, err := yamlclass.ParseFile(name, data)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

// Register registers every builtin class under its default name, followed by
// the embedded derived classes.
func Register(res *resolver.Resolver) error {
	if err := funcs.RegisterBuiltins(res.Registry, false); err != nil {
		return err
	}
	files, err := Files()
	if err != nil {
		return errwrap.Wrapf(err, "bad embedded definitions")
	}
	return yamlclass.RegisterWith(res, files...)
}

// NewRegistry returns a registry with all the builtin classes.
func NewRegistry() (*funcs.Registry, error) {
	reg := funcs.NewRegistry()
	if err := Register(&resolver.Resolver{Registry: reg}); err != nil {
		return nil, err
	}
	return reg, nil
}
