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
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Matcher is anything that can decide whether some data matches.
type Matcher interface {
	// Match returns the boolean outcome, or an error if no decision could
	// be made.
	Match() (bool, error)
}

// Replacer is anything that can produce a replacement value.
type Replacer interface {
	// Replace returns the replacement value, or an error if none could be
	// produced.
	Replace() (Param, error)
}

// Param represents a single parameter value. Each typed accessor returns the
// value presented as that type. If the conversion is not allowed for the type
// of this param, the accessor errors with ParameterTypeChangeError, and if it
// is allowed but the value can't be coerced, it errors with ValueError.
type Param interface {
	fmt.Stringer // String() string (for display purposes)

	// Type returns the type of this value.
	Type() ParamType

	// IsConstant is true for literal values and for folded instances. It
	// is false for variables and for live instances.
	IsConstant() bool

	Str() (string, error)
	Int() (int64, error)
	Real() (float64, error)
	Char() (rune, error)
	Matcher() (Matcher, error)
	Replacer() (Replacer, error)
}

// noChange returns the error for a conversion that isn't in the table.
func noChange(p Param, to ParamType) error {
	return &ParameterTypeChangeError{From: p.Type(), To: to}
}

// NewConstant builds a literal param of the given type from its textual form.
func NewConstant(typ ParamType, text string) (Param, error) {
	var p Param = &StrParam{V: text}
	switch typ {
	case TypeString:
		return p, nil
	case TypeInteger, TypeReal, TypeCharacter:
		return ChangeType(p, typ)
	}
	return nil, fmt.Errorf("type %s can't be a constant", typ)
}

// StrParam represents a string value.
type StrParam struct {
	V string
}

// NewStr creates a new string param.
func NewStr(s string) *StrParam { return &StrParam{V: s} }

// String returns the string itself.
func (obj *StrParam) String() string { return obj.V }

// Type returns the type of this value.
func (obj *StrParam) Type() ParamType { return TypeString }

// IsConstant returns true.
func (obj *StrParam) IsConstant() bool { return true }

// Str returns the string.
func (obj *StrParam) Str() (string, error) { return obj.V, nil }

// Int parses the string as a base ten integer. Surrounding whitespace is
// ignored.
func (obj *StrParam) Int() (int64, error) {
	i, err := strconv.ParseInt(strings.TrimSpace(obj.V), 10, 64)
	if err != nil {
		return 0, &ValueError{Type: TypeInteger, Value: obj.V, Err: err}
	}
	return i, nil
}

// Real parses the string as a floating point number. Surrounding whitespace is
// ignored.
func (obj *StrParam) Real() (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(obj.V), 64)
	if err != nil {
		return 0, &ValueError{Type: TypeReal, Value: obj.V, Err: err}
	}
	return f, nil
}

// Char returns the single character of the string. Any other length errors,
// and so does a string that isn't valid utf-8.
func (obj *StrParam) Char() (rune, error) {
	if utf8.RuneCountInString(obj.V) != 1 {
		return 0, &ValueError{Type: TypeCharacter, Value: obj.V}
	}
	r, size := utf8.DecodeRuneInString(obj.V)
	if r == utf8.RuneError && size <= 1 {
		return 0, &ValueError{Type: TypeCharacter, Value: obj.V, Err: fmt.Errorf("invalid utf-8")}
	}
	return r, nil
}

// Matcher errors, because strings can't be matchers.
func (obj *StrParam) Matcher() (Matcher, error) { return nil, noChange(obj, TypeMatcher) }

// Replacer returns a replacer which always produces this string.
func (obj *StrParam) Replacer() (Replacer, error) { return &ConstReplacer{P: obj}, nil }

// IntParam represents an integer value.
type IntParam struct {
	V int64
}

// NewInt creates a new integer param.
func NewInt(i int64) *IntParam { return &IntParam{V: i} }

// String returns a visual representation of this value.
func (obj *IntParam) String() string { return strconv.FormatInt(obj.V, 10) }

// Type returns the type of this value.
func (obj *IntParam) Type() ParamType { return TypeInteger }

// IsConstant returns true.
func (obj *IntParam) IsConstant() bool { return true }

// Str errors, integers can't be presented as anything else.
func (obj *IntParam) Str() (string, error) { return "", noChange(obj, TypeString) }

// Int returns the integer.
func (obj *IntParam) Int() (int64, error) { return obj.V, nil }

// Real errors.
func (obj *IntParam) Real() (float64, error) { return 0, noChange(obj, TypeReal) }

// Char errors.
func (obj *IntParam) Char() (rune, error) { return 0, noChange(obj, TypeCharacter) }

// Matcher errors.
func (obj *IntParam) Matcher() (Matcher, error) { return nil, noChange(obj, TypeMatcher) }

// Replacer errors.
func (obj *IntParam) Replacer() (Replacer, error) { return nil, noChange(obj, TypeReplacer) }

// RealParam represents a floating point value.
type RealParam struct {
	V float64
}

// NewReal creates a new real param.
func NewReal(f float64) *RealParam { return &RealParam{V: f} }

// String returns a visual representation of this value.
func (obj *RealParam) String() string { return strconv.FormatFloat(obj.V, 'g', -1, 64) }

// Type returns the type of this value.
func (obj *RealParam) Type() ParamType { return TypeReal }

// IsConstant returns true.
func (obj *RealParam) IsConstant() bool { return true }

// Str errors.
func (obj *RealParam) Str() (string, error) { return "", noChange(obj, TypeString) }

// Int returns the value as an integer. Only integral values convert.
func (obj *RealParam) Int() (int64, error) {
	if math.IsNaN(obj.V) || math.IsInf(obj.V, 0) || math.Trunc(obj.V) != obj.V {
		return 0, &ValueError{Type: TypeInteger, Value: obj.String()}
	}
	if obj.V > math.MaxInt64 || obj.V < math.MinInt64 {
		return 0, &ValueError{Type: TypeInteger, Value: obj.String()}
	}
	return int64(obj.V), nil
}

// Real returns the value.
func (obj *RealParam) Real() (float64, error) { return obj.V, nil }

// Char errors.
func (obj *RealParam) Char() (rune, error) { return 0, noChange(obj, TypeCharacter) }

// Matcher errors.
func (obj *RealParam) Matcher() (Matcher, error) { return nil, noChange(obj, TypeMatcher) }

// Replacer returns a replacer which always produces this value.
func (obj *RealParam) Replacer() (Replacer, error) { return &ConstReplacer{P: obj}, nil }

// CharParam represents a single character.
type CharParam struct {
	V rune
}

// NewChar creates a new character param.
func NewChar(c rune) *CharParam { return &CharParam{V: c} }

// String returns the character as a string.
func (obj *CharParam) String() string { return string(obj.V) }

// Type returns the type of this value.
func (obj *CharParam) Type() ParamType { return TypeCharacter }

// IsConstant returns true.
func (obj *CharParam) IsConstant() bool { return true }

// Str returns the character as a string of length one.
func (obj *CharParam) Str() (string, error) { return string(obj.V), nil }

// Int errors.
func (obj *CharParam) Int() (int64, error) { return 0, noChange(obj, TypeInteger) }

// Real errors.
func (obj *CharParam) Real() (float64, error) { return 0, noChange(obj, TypeReal) }

// Char returns the character.
func (obj *CharParam) Char() (rune, error) { return obj.V, nil }

// Matcher errors.
func (obj *CharParam) Matcher() (Matcher, error) { return nil, noChange(obj, TypeMatcher) }

// Replacer returns a replacer which always produces this character.
func (obj *CharParam) Replacer() (Replacer, error) { return &ConstReplacer{P: obj}, nil }

// MatcherParam holds a matcher. It is constant only when it holds the folded
// outcome of a pure matcher.
type MatcherParam struct {
	M     Matcher
	Const bool
}

// NewBoolMatcher returns a constant matcher param with a fixed outcome.
func NewBoolMatcher(b bool) *MatcherParam {
	return &MatcherParam{M: &ConstMatcher{V: b}, Const: true}
}

// String returns a visual representation of this value.
func (obj *MatcherParam) String() string {
	if s, ok := obj.M.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("matcher(%T)", obj.M)
}

// Type returns the type of this value.
func (obj *MatcherParam) Type() ParamType { return TypeMatcher }

// IsConstant returns true if this holds a folded outcome.
func (obj *MatcherParam) IsConstant() bool { return obj.Const }

// Str errors.
func (obj *MatcherParam) Str() (string, error) { return "", noChange(obj, TypeString) }

// Int errors.
func (obj *MatcherParam) Int() (int64, error) { return 0, noChange(obj, TypeInteger) }

// Real errors.
func (obj *MatcherParam) Real() (float64, error) { return 0, noChange(obj, TypeReal) }

// Char errors.
func (obj *MatcherParam) Char() (rune, error) { return 0, noChange(obj, TypeCharacter) }

// Matcher returns the matcher.
func (obj *MatcherParam) Matcher() (Matcher, error) { return obj.M, nil }

// Replacer errors.
func (obj *MatcherParam) Replacer() (Replacer, error) { return nil, noChange(obj, TypeReplacer) }

// ReplacerParam holds a replacer. It is constant only when the replacer always
// produces the same value.
type ReplacerParam struct {
	R     Replacer
	Const bool
}

// String returns a visual representation of this value.
func (obj *ReplacerParam) String() string {
	if s, ok := obj.R.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("replacer(%T)", obj.R)
}

// Type returns the type of this value.
func (obj *ReplacerParam) Type() ParamType { return TypeReplacer }

// IsConstant returns true if the replacer always produces the same value.
func (obj *ReplacerParam) IsConstant() bool { return obj.Const }

// Str runs the replacer and returns the string form of its result.
func (obj *ReplacerParam) Str() (string, error) {
	p, err := obj.R.Replace()
	if err != nil {
		return "", err
	}
	return p.String(), nil
}

// Int errors.
func (obj *ReplacerParam) Int() (int64, error) { return 0, noChange(obj, TypeInteger) }

// Real errors.
func (obj *ReplacerParam) Real() (float64, error) { return 0, noChange(obj, TypeReal) }

// Char errors.
func (obj *ReplacerParam) Char() (rune, error) { return 0, noChange(obj, TypeCharacter) }

// Matcher errors.
func (obj *ReplacerParam) Matcher() (Matcher, error) { return nil, noChange(obj, TypeMatcher) }

// Replacer returns the replacer.
func (obj *ReplacerParam) Replacer() (Replacer, error) { return obj.R, nil }

// ConstMatcher is a matcher with a fixed outcome.
type ConstMatcher struct {
	V bool
}

// Match returns the fixed outcome.
func (obj *ConstMatcher) Match() (bool, error) { return obj.V, nil }

// String returns true or false.
func (obj *ConstMatcher) String() string { return strconv.FormatBool(obj.V) }

// ConstReplacer is a replacer which always produces the same value.
type ConstReplacer struct {
	P Param
}

// Replace returns the fixed value.
func (obj *ConstReplacer) Replace() (Param, error) { return obj.P, nil }

// String returns the display form of the fixed value.
func (obj *ConstReplacer) String() string { return obj.P.String() }
