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

package cell

import (
	"github.com/kyledewey/ErrorSentinel-sub001/lang/types"
)

// VariableParam is a param whose value is the text of a cell. The cell is
// looked up each time the value is requested, so the same param gives a
// different value whenever the cursor moves. It's never constant.
type VariableParam struct {
	Range  CellRange
	Cursor *Cursor
}

// NewVariable returns a variable param reading through the cursor.
func NewVariable(rng CellRange, cursor *Cursor) *VariableParam {
	return &VariableParam{
		Range:  rng,
		Cursor: cursor,
	}
}

// value returns the current cell text as a string param.
func (obj *VariableParam) value() (*types.StrParam, error) {
	s, err := obj.Cursor.Value(obj.Range)
	if err != nil {
		return nil, err
	}
	return types.NewStr(s), nil
}

// String returns the range this reads from.
func (obj *VariableParam) String() string { return "$" + obj.Range.String() }

// Type returns the string type. Cells hold text.
func (obj *VariableParam) Type() types.ParamType { return types.TypeString }

// IsConstant returns false.
func (obj *VariableParam) IsConstant() bool { return false }

// Str returns the current cell text.
func (obj *VariableParam) Str() (string, error) {
	p, err := obj.value()
	if err != nil {
		return "", err
	}
	return p.Str()
}

// Int returns the current cell text parsed as an integer.
func (obj *VariableParam) Int() (int64, error) {
	p, err := obj.value()
	if err != nil {
		return 0, err
	}
	return p.Int()
}

// Real returns the current cell text parsed as a real.
func (obj *VariableParam) Real() (float64, error) {
	p, err := obj.value()
	if err != nil {
		return 0, err
	}
	return p.Real()
}

// Char returns the current cell text as a single character.
func (obj *VariableParam) Char() (rune, error) {
	p, err := obj.value()
	if err != nil {
		return 0, err
	}
	return p.Char()
}

// Matcher errors, cell text can't be a matcher.
func (obj *VariableParam) Matcher() (types.Matcher, error) {
	return nil, &types.ParameterTypeChangeError{From: obj.Type(), To: types.TypeMatcher}
}

// Replacer returns a replacer which produces the current cell text.
func (obj *VariableParam) Replacer() (types.Replacer, error) {
	return &cellReplacer{param: obj}, nil
}

// cellReplacer produces the text of a cell at the time Replace runs.
type cellReplacer struct {
	param *VariableParam
}

// Replace returns the current cell text.
func (obj *cellReplacer) Replace() (types.Param, error) {
	p, err := obj.param.value()
	if err != nil {
		return nil, err
	}
	return p, nil
}

// String returns the range this reads from.
func (obj *cellReplacer) String() string { return obj.param.String() }
