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

package yamlclass_test

import (
	"errors"
	"testing"

	"github.com/kyledewey/ErrorSentinel-sub001/lang/core"
	"github.com/kyledewey/ErrorSentinel-sub001/lang/funcs"
	"github.com/kyledewey/ErrorSentinel-sub001/lang/interfaces"
	"github.com/kyledewey/ErrorSentinel-sub001/lang/resolver"
	"github.com/kyledewey/ErrorSentinel-sub001/lang/types"
	"github.com/kyledewey/ErrorSentinel-sub001/yamlclass"

	"github.com/davecgh/go-spew/spew"
	"github.com/kylelemons/godebug/pretty"
	"github.com/sanity-io/litter"
	"github.com/spf13/afero"
)

// the first class depends on the second one, which is defined later
const defs = `
comment: test definitions
classes:
  - name: NotSeven
    description: matches anything but seven
    type: matcher
    params:
      - {name: input, type: integer, required: true}
    structure:
      class: Not
      type: matcher
      params:
        - name: matcher
          value:
            class: Seven
            type: matcher
            params:
              - {name: input, given: input}
  - name: Seven
    description: matches seven
    type: matcher
    params:
      - {name: input, type: integer, required: true}
    structure:
      class: Int=
      type: matcher
      params:
        - {name: integers, given: input}
        - name: integers
          literal: {type: integer, value: "7"}
  - name: Same
    description: all the same integers
    type: matcher
    builtin: true
    implementation: math.inteq
    params:
      - {name: integers, type: integer, array: true, required: true}
`

func newRegistry(t *testing.T) *funcs.Registry {
	t.Helper()
	reg, err := core.NewRegistry()
	if err != nil {
		t.Fatalf("could not build the registry: %+v", err)
	}
	return reg
}

func match(t *testing.T, reg *funcs.Registry, name string, actuals ...*types.NamedParam) bool {
	t.Helper()
	inst, err := reg.Instantiate(interfaces.KindMatcher, name, actuals)
	if err != nil {
		t.Fatalf("could not instantiate `%s`: %+v", name, err)
	}
	b, err := inst.(interfaces.Matcher).Match()
	if err != nil {
		t.Fatalf("could not match `%s`: %+v", name, err)
	}
	return b
}

func TestRegisterOutOfOrder(t *testing.T) {
	f, err := yamlclass.Parse([]byte(defs))
	if err != nil {
		t.Errorf("parse error: %+v", err)
		return
	}
	if f.Comment != "test definitions" {
		t.Errorf("unexpected comment: %s", f.Comment)
	}
	reg := newRegistry(t)
	if err := yamlclass.Register(reg, f); err != nil {
		t.Errorf("register error: %+v", err)
		return
	}
	seven := &types.NamedParam{Name: "input", Param: types.NewInt(7)}
	eight := &types.NamedParam{Name: "input", Param: types.NewInt(8)}
	if !match(t, reg, "Seven", seven) || match(t, reg, "Seven", eight) {
		t.Errorf("Seven is wrong")
	}
	if match(t, reg, "NotSeven", seven) || !match(t, reg, "NotSeven", eight) {
		t.Errorf("NotSeven is wrong")
	}
	same := []*types.NamedParam{
		{Name: "integers", Param: types.NewInt(3)},
		{Name: "integers", Param: types.NewInt(3)},
	}
	if !match(t, reg, "Same", same...) {
		t.Errorf("Same is wrong")
	}
}

func TestRoundTrip(t *testing.T) {
	f, err := yamlclass.Parse([]byte(defs))
	if err != nil {
		t.Errorf("parse error: %+v", err)
		return
	}
	reg := newRegistry(t)
	if err := yamlclass.Register(reg, f); err != nil {
		t.Errorf("register error: %+v", err)
		return
	}
	data, err := yamlclass.Serialize(reg)
	if err != nil {
		t.Errorf("serialize error: %+v", err)
		return
	}
	again, err := yamlclass.Parse(data)
	if err != nil {
		t.Errorf("could not parse the serialized registry: %+v", err)
		t.Logf("data:\n%s", data)
		return
	}

	lookup := make(map[resolver.ClassID]*yamlclass.ClassConfig)
	for _, class := range again.Classes {
		lookup[class.ID()] = class
	}
	for _, exp := range f.Classes {
		got, exists := lookup[exp.ID()]
		if !exists {
			t.Errorf("class `%s` was not serialized", exp.ID())
			continue
		}
		if diff := pretty.Compare(exp, got); diff != "" {
			t.Errorf("class `%s` did not round trip: %s", exp.ID(), diff)
			t.Logf("expected: %s", litter.Sdump(exp))
			t.Logf("actual: %s", litter.Sdump(got))
		}
	}

	// the whole registry also registers again into an empty one
	fresh := funcs.NewRegistry()
	if err := yamlclass.Register(fresh, again); err != nil {
		t.Errorf("could not register the serialized registry: %+v", err)
		return
	}
	if fresh.Len() != reg.Len() {
		t.Errorf("expected %d classes, got %d", reg.Len(), fresh.Len())
	}
}

func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		"unknown field": `
classes:
  - name: X
    type: matcher
    colour: blue
    builtin: true
    implementation: logic.true
`,
		"no type": `
classes:
  - name: X
    builtin: true
    implementation: logic.true
`,
		"both": `
classes:
  - name: X
    type: matcher
    builtin: true
    implementation: logic.true
    structure: {class: True, type: matcher}
`,
		"neither": `
classes:
  - name: X
    type: matcher
`,
		"bad given": `
classes:
  - name: X
    type: matcher
    structure:
      class: Empty
      type: matcher
      params:
        - {name: input, given: nowhere}
`,
		"bad literal": `
classes:
  - name: X
    type: matcher
    structure:
      class: Int=
      type: matcher
      params:
        - name: integers
          literal: {type: integer, value: "seven"}
`,
		"structure kind": `
classes:
  - name: X
    type: matcher
    structure: {class: Constant, type: replacer}
`,
		"duplicate param": `
classes:
  - name: X
    type: matcher
    builtin: true
    implementation: logic.true
    params:
      - {name: a, type: string}
      - {name: a, type: string}
`,
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := yamlclass.Parse([]byte(data))
			if err == nil {
				t.Errorf("expected a parse error")
				return
			}
			var e *yamlclass.ClassParseError
			if !errors.As(err, &e) {
				t.Errorf("expected a ClassParseError, got: %s", spew.Sdump(err))
			}
		})
	}
}

func TestRegisterErrors(t *testing.T) {
	tests := map[string]struct {
		data  string
		check func(error) bool
	}{
		"missing dependency": {
			data: `
classes:
  - name: X
    type: matcher
    structure: {class: Nowhere, type: matcher}
`,
			check: func(err error) bool {
				var e *resolver.MissingDependencyError
				return errors.As(err, &e)
			},
		},
		"cycle": {
			data: `
classes:
  - name: A
    type: matcher
    structure: {class: B, type: matcher}
  - name: B
    type: matcher
    structure: {class: A, type: matcher}
`,
			check: func(err error) bool {
				var e *resolver.CycleError
				return errors.As(err, &e)
			},
		},
		"duplicate": {
			data: `
classes:
  - name: True
    type: matcher
    builtin: true
    implementation: logic.true
`,
			check: func(err error) bool {
				var e *funcs.ClassAlreadyRegisteredError
				return errors.As(err, &e)
			},
		},
		"bad implementation": {
			data: `
classes:
  - name: X
    type: matcher
    builtin: true
    implementation: math.nothing
`,
			check: func(err error) bool {
				var e *yamlclass.ClassParseError
				return errors.As(err, &e)
			},
		},
		"incompatible implementation": {
			data: `
classes:
  - name: X
    type: matcher
    builtin: true
    implementation: math.inteq
    params:
      - {name: integers, type: string, array: true}
`,
			check: func(err error) bool {
				var e *yamlclass.ClassParseError
				return errors.As(err, &e)
			},
		},
		"wrong param name": {
			data: `
classes:
  - name: X
    type: matcher
    structure:
      class: Empty
      type: matcher
      params:
        - name: bogus
          literal: {type: string, value: ""}
`,
			check: func(err error) bool {
				var e *funcs.ParameterNameError
				return errors.As(err, &e)
			},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			f, err := yamlclass.Parse([]byte(tc.data))
			if err != nil {
				t.Errorf("parse error: %+v", err)
				return
			}
			err = yamlclass.Register(newRegistry(t), f)
			if err == nil {
				t.Errorf("expected a register error")
				return
			}
			if !tc.check(err) {
				t.Errorf("unexpected error: %+v", err)
			}
		})
	}
}

func TestLoadFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/defs/a.yaml", []byte(defs), 0644); err != nil {
		t.Errorf("error: %+v", err)
		return
	}
	files, err := yamlclass.LoadFiles(fs, "/defs/a.yaml")
	if err != nil {
		t.Errorf("load error: %+v", err)
		return
	}
	if l := len(files); l != 1 || len(files[0].Classes) != 3 {
		t.Errorf("unexpected files: %s", spew.Sdump(files))
	}
	pcs := yamlclass.PreClasses(files...)
	if len(pcs) != 3 {
		t.Errorf("expected 3 pre classes, got %d", len(pcs))
		return
	}
	exp := []resolver.ClassID{
		{Name: "Not", Kind: interfaces.KindMatcher},
		{Name: "Seven", Kind: interfaces.KindMatcher},
	}
	if diff := pretty.Compare(exp, pcs[0].Deps); diff != "" {
		t.Errorf("unexpected deps of NotSeven: %s", diff)
	}

	if _, err := yamlclass.LoadFiles(fs, "/defs/missing.yaml"); err == nil {
		t.Errorf("expected an error for a missing file")
	}

	if err := afero.WriteFile(fs, "/defs/bad.yaml", []byte("classes: [{name: X}]"), 0644); err != nil {
		t.Errorf("error: %+v", err)
		return
	}
	_, err = yamlclass.LoadFiles(fs, "/defs/bad.yaml")
	var e *yamlclass.ClassParseError
	if !errors.As(err, &e) || e.Path != "/defs/bad.yaml" {
		t.Errorf("expected a ClassParseError with the path, got: %+v", err)
	}
}
