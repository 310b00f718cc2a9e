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
	"context"
	"io"
	"os"

	cliUtil "github.com/kyledewey/ErrorSentinel-sub001/cli/util"
	"github.com/kyledewey/ErrorSentinel-sub001/util/errwrap"
	"github.com/kyledewey/ErrorSentinel-sub001/yamlclass"

	"github.com/spf13/afero"
)

// Classes is the `classes` subcommand. It loads the definition files and
// prints every registered class in the definition file format.
type Classes struct {
	*cliUtil.ClassesArgs

	Name string // of the subcommand

	// Fs is where the files are read and written. It defaults to the os.
	Fs afero.Fs

	// Stdout defaults to os.Stdout.
	Stdout io.Writer
}

// Run executes the subcommand.
func (obj *Classes) Run(ctx context.Context, data *cliUtil.Data) (bool, error) {
	if obj.Fs == nil {
		obj.Fs = afero.NewOsFs()
	}
	if obj.Stdout == nil {
		obj.Stdout = os.Stdout
	}
	Logf := func(format string, v ...interface{}) {
		data.Flags.Logf(obj.Name+": "+format, v...)
	}
	if data.Flags.Verbose {
		cliUtil.Hello(data.Program, data.Version, data.Flags) // say hello!
	}

	l := &loader{
		Fs:       obj.Fs,
		Defs:     obj.Defs,
		NoCore:   obj.NoCore,
		Graphviz: obj.Graphviz,
		Debug:    data.Flags.Debug,
		Logf:     Logf,
	}
	reg, err := l.Load()
	if err != nil {
		return false, err
	}

	out, err := yamlclass.Serialize(reg)
	if err != nil {
		return false, errwrap.Wrapf(err, "could not serialize the classes")
	}
	if obj.Output != "" {
		if err := afero.WriteFile(obj.Fs, obj.Output, out, 0644); err != nil {
			return false, errwrap.Wrapf(err, "could not write `%s`", obj.Output)
		}
		Logf("wrote %d classes to `%s`", reg.Len(), obj.Output)
		return true, nil
	}
	if _, err := obj.Stdout.Write(out); err != nil {
		return false, err
	}
	return true, nil
}
