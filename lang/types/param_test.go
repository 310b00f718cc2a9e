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

package types

import (
	"errors"
	"testing"

	"gopkg.in/yaml.v2"
)

func TestCanConvert(t *testing.T) {
	tests := []struct {
		from ParamType
		to   ParamType
		ok   bool
	}{
		{TypeString, TypeInteger, true},
		{TypeString, TypeReal, true},
		{TypeString, TypeCharacter, true},
		{TypeString, TypeReplacer, true},
		{TypeString, TypeMatcher, false},
		{TypeInteger, TypeString, false},
		{TypeInteger, TypeReal, false},
		{TypeReal, TypeInteger, true},
		{TypeReal, TypeString, false},
		{TypeCharacter, TypeString, true},
		{TypeCharacter, TypeInteger, false},
		{TypeMatcher, TypeMatcher, true},
		{TypeMatcher, TypeReplacer, false},
		{TypeReplacer, TypeString, true},
		{TypeReplacer, TypeMatcher, false},
	}
	for index, tc := range tests {
		if got := CanConvert(tc.from, tc.to); got != tc.ok {
			t.Errorf("test #%d: %s to %s: expected %t, got %t", index, tc.from, tc.to, tc.ok, got)
		}
	}
	// every type converts to itself
	for _, typ := range AllTypes() {
		if !CanConvert(typ, typ) {
			t.Errorf("%s does not convert to itself", typ)
		}
	}
}

func TestChangeType(t *testing.T) {
	p, err := ChangeType(NewStr(" 42 "), TypeInteger)
	if err != nil {
		t.Errorf("error: %+v", err)
		return
	}
	if i, _ := p.Int(); i != 42 || p.Type() != TypeInteger {
		t.Errorf("unexpected value: %s", p)
	}

	_, err = ChangeType(NewStr("abc"), TypeInteger)
	var ve *ValueError
	if !errors.As(err, &ve) {
		t.Errorf("expected a ValueError, got: %+v", err)
	}

	_, err = ChangeType(NewInt(3), TypeString)
	var tce *ParameterTypeChangeError
	if !errors.As(err, &tce) || tce.From != TypeInteger || tce.To != TypeString {
		t.Errorf("expected a ParameterTypeChangeError, got: %+v", err)
	}

	// an integral real becomes an integer, but nothing else does
	if p, err := ChangeType(NewReal(3), TypeInteger); err != nil {
		t.Errorf("error: %+v", err)
	} else if i, _ := p.Int(); i != 3 {
		t.Errorf("expected 3, got %s", p)
	}
	if _, err := ChangeType(NewReal(3.5), TypeInteger); !errors.As(err, &ve) {
		t.Errorf("expected a ValueError, got: %+v", err)
	}

	// a character is exactly one valid rune
	if p, err := ChangeType(NewStr("é"), TypeCharacter); err != nil {
		t.Errorf("error: %+v", err)
	} else if c, _ := p.Char(); c != 'é' {
		t.Errorf("expected `é`, got %s", p)
	}
	for _, s := range []string{"", "ab", "\xff"} {
		if _, err := ChangeType(NewStr(s), TypeCharacter); !errors.As(err, &ve) {
			t.Errorf("expected a ValueError for %q, got: %+v", s, err)
		}
	}
	if _, err := NewStr("\xff").Char(); !errors.As(err, &ve) || ve.Type != TypeCharacter {
		t.Errorf("expected a character ValueError, got: %+v", err)
	}

	// a constant string is a constant replacer
	p, err = ChangeType(NewStr("x"), TypeReplacer)
	if err != nil {
		t.Errorf("error: %+v", err)
		return
	}
	if !p.IsConstant() {
		t.Errorf("expected a constant replacer")
	}
	if s, err := p.Str(); err != nil || s != "x" {
		t.Errorf("expected `x`, got `%s`: %v", s, err)
	}
}

func TestNewConstant(t *testing.T) {
	tests := []struct {
		typ  ParamType
		text string
		fail bool
	}{
		{TypeString, "anything", false},
		{TypeInteger, "-12", false},
		{TypeInteger, "1.5", true},
		{TypeReal, "1.5", false},
		{TypeReal, "NaNx", true},
		{TypeCharacter, "c", false},
		{TypeCharacter, "cc", true},
		{TypeCharacter, "é", false},
		{TypeMatcher, "true", true},
		{TypeReplacer, "x", true},
	}
	for index, tc := range tests {
		p, err := NewConstant(tc.typ, tc.text)
		if tc.fail {
			if err == nil {
				t.Errorf("test #%d: expected an error for %s `%s`", index, tc.typ, tc.text)
			}
			continue
		}
		if err != nil {
			t.Errorf("test #%d: error: %+v", index, err)
			continue
		}
		if p.Type() != tc.typ || !p.IsConstant() {
			t.Errorf("test #%d: unexpected param: %s", index, p)
		}
	}
}

func TestParamTypeYAML(t *testing.T) {
	for _, typ := range AllTypes() {
		b, err := yaml.Marshal(typ)
		if err != nil {
			t.Errorf("could not marshal %s: %+v", typ, err)
			continue
		}
		var out ParamType
		if err := yaml.Unmarshal(b, &out); err != nil {
			t.Errorf("could not unmarshal %s: %+v", typ, err)
			continue
		}
		if out != typ {
			t.Errorf("expected %s, got %s", typ, out)
		}
	}
	if _, err := ParseParamType("Integer"); err != nil {
		t.Errorf("the type name should be case insensitive: %+v", err)
	}
	if _, err := ParseParamType("list"); err == nil {
		t.Errorf("expected an error for an unknown type")
	}
	if _, err := yaml.Marshal(TypeNil); err == nil {
		t.Errorf("expected an error for the nil type")
	}
}

func TestMatcherParam(t *testing.T) {
	p := NewBoolMatcher(true)
	if !p.IsConstant() || p.String() != "true" {
		t.Errorf("unexpected param: %s", p)
	}
	m, err := p.Matcher()
	if err != nil {
		t.Errorf("error: %+v", err)
		return
	}
	if b, _ := m.Match(); !b {
		t.Errorf("expected true")
	}
	if _, err := p.Str(); err == nil {
		t.Errorf("a matcher is not a string")
	}
}

func TestParamInfo(t *testing.T) {
	info := &ParamInfo{Name: "integers", Type: TypeInteger, Array: true}
	if s := info.String(); s != "integers []integer?" {
		t.Errorf("unexpected signature: %s", s)
	}
	if err := info.Validate(); err != nil {
		t.Errorf("error: %+v", err)
	}
	if err := (&ParamInfo{Name: " ", Type: TypeString}).Validate(); err == nil {
		t.Errorf("expected an error for an empty name")
	}
	if err := (&ParamInfo{Name: "x"}).Validate(); err == nil {
		t.Errorf("expected an error for a missing type")
	}
}

func TestNamedParam(t *testing.T) {
	p := &NamedParam{Name: "a", Param: NewInt(1)}
	q := p.Relabel("b")
	if q.Name != "b" || q.Param != p.Param || p.Name != "a" {
		t.Errorf("unexpected relabel: %s", q)
	}
	if s := q.String(); s != "b=1" {
		t.Errorf("unexpected string: %s", s)
	}
}
