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

// conversions lists, for each type, the types that a value of that type may be
// presented as. It is a strength ordering: a weakly typed string can stand in
// for many things, but a strongly typed integer or matcher cannot be
// reinterpreted. It is not symmetric.
var conversions = map[ParamType][]ParamType{
	TypeString:    {TypeString, TypeCharacter, TypeReal, TypeInteger, TypeReplacer},
	TypeInteger:   {TypeInteger},
	TypeReal:      {TypeReal, TypeInteger, TypeReplacer},
	TypeCharacter: {TypeCharacter, TypeString, TypeReplacer},
	TypeMatcher:   {TypeMatcher},
	TypeReplacer:  {TypeReplacer, TypeString},
}

// CanConvert returns true if a value of type from may be presented as a value
// of type to.
func CanConvert(from, to ParamType) bool {
	for _, x := range conversions[from] {
		if x == to {
			return true
		}
	}
	return false
}

// ChangeType returns the param presented as a value of type to. The result is
// materialized, so presenting a replacer as a string runs the replacer. If the
// conversion is not in the table, this errors with ParameterTypeChangeError. If
// it is, but the value can't be parsed, this errors with ValueError.
func ChangeType(p Param, to ParamType) (Param, error) {
	from := p.Type()
	if !CanConvert(from, to) {
		return nil, &ParameterTypeChangeError{From: from, To: to}
	}
	if from == to {
		return p, nil
	}

	switch to {
	case TypeString:
		s, err := p.Str()
		if err != nil {
			return nil, err
		}
		return &StrParam{V: s}, nil

	case TypeInteger:
		i, err := p.Int()
		if err != nil {
			return nil, err
		}
		return &IntParam{V: i}, nil

	case TypeReal:
		f, err := p.Real()
		if err != nil {
			return nil, err
		}
		return &RealParam{V: f}, nil

	case TypeCharacter:
		c, err := p.Char()
		if err != nil {
			return nil, err
		}
		return &CharParam{V: c}, nil

	case TypeReplacer:
		r, err := p.Replacer()
		if err != nil {
			return nil, err
		}
		return &ReplacerParam{R: r, Const: p.IsConstant()}, nil
	}

	// matcher only converts to itself, which was handled above
	return nil, &ParameterTypeChangeError{From: from, To: to}
}
