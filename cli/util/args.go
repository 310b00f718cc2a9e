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

package util

import (
	"reflect"
	"strings"
)

// LookupSubcommand returns the name of the subcommand in the obj, of a struct.
// This is useful for determining the name of the subcommand that was activated.
// It returns an empty string if a specific name was not found.
func LookupSubcommand(obj interface{}, st interface{}) string {
	val := reflect.ValueOf(obj)
	if val.Kind() == reflect.Ptr { // max one de-referencing
		val = val.Elem()
	}

	v := reflect.ValueOf(st) // value of the struct
	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		f := val.Field(i) // value of the field
		if !f.CanInterface() || f.Interface() != v.Interface() {
			continue
		}

		field := typ.Field(i)
		alias, ok := field.Tag.Lookup("arg")
		if !ok {
			continue
		}

		// XXX: `arg` needs a split by comma first or fancier parsing
		prefix := "subcommand"
		split := strings.Split(alias, ":")
		if len(split) != 2 || split[0] != prefix {
			continue
		}

		return split[1] // found
	}
	return "" // not found
}

// ClassesArgs is the classes CLI parsing structure and type of the parsed
// result.
type ClassesArgs struct {
	// Defs are the class definition files to load on top of the core.
	Defs []string `arg:"positional" help:"class definition files"`

	NoCore bool `arg:"--no-core" help:"don't register the core classes"`

	Output string `arg:"--output" help:"write the definitions to this file instead of stdout"`

	Graphviz string `arg:"--graphviz" help:"write the dependency graph of the definition files to this file"`
}

// CheckArgs is the check CLI parsing structure and type of the parsed result.
type CheckArgs struct {
	// Project is the project file with the grid and the rules.
	Project string `arg:"positional,required" help:"project file"`

	Defs []string `arg:"--defs,separate" help:"class definition file, may be repeated"`

	NoCore bool `arg:"--no-core" help:"don't register the core classes"`

	Optimize bool `arg:"--optimize,env:ERRORSENTINEL_OPTIMIZE" help:"fold the constant parts of the rules"`

	Apply bool `arg:"--apply" help:"write the corrections into the grid and print it"`

	Failed bool `arg:"--failed" help:"only print the cells that failed"`

	Strict bool `arg:"--strict" help:"exit with an error if any cell failed"`

	Prometheus bool `arg:"--prometheus" help:"start a prometheus instance"`

	PrometheusListen string `arg:"--prometheus-listen,env:ERRORSENTINEL_PROMETHEUS_LISTEN" help:"specify prometheus instance binding"`
}
