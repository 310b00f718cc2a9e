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
	"errors"
	"testing"

	"github.com/kyledewey/ErrorSentinel-sub001/lang/types"
)

func testGrid(t *testing.T) *MemGrid {
	t.Helper()
	grid := NewMemGrid()
	if err := grid.AddSheet("a", [][]string{{"1", "2"}, {"3"}}); err != nil {
		t.Fatalf("error: %+v", err)
	}
	if err := grid.AddSheet("b", [][]string{{"x"}}); err != nil {
		t.Fatalf("error: %+v", err)
	}
	return grid
}

func TestMemGrid(t *testing.T) {
	grid := testGrid(t)
	if sheets := grid.Sheets(); len(sheets) != 2 || sheets[0] != "a" || sheets[1] != "b" {
		t.Errorf("unexpected sheets: %v", sheets)
	}
	rows, cols, err := grid.Dims("a")
	if err != nil || rows != 2 || cols != 2 {
		t.Errorf("unexpected dims: %d, %d, %v", rows, cols, err)
	}
	if s, err := grid.Get("a", 1, 1); err != nil || s != "" {
		t.Errorf("a missing cell should be blank: `%s`, %v", s, err)
	}
	if s, err := grid.Get("a", 9, 9); err != nil || s != "" {
		t.Errorf("a cell outside should be blank: `%s`, %v", s, err)
	}
	if _, err := grid.Get("c", 0, 0); !errors.Is(err, ErrNoSuchSheet) {
		t.Errorf("expected no such sheet, got: %+v", err)
	}
	if _, err := grid.Get("a", -1, 0); err == nil {
		t.Errorf("expected an error for a negative row")
	}
	if err := grid.AddSheet("a", nil); err == nil {
		t.Errorf("expected an error for a duplicate sheet")
	}

	if err := grid.Set("b", 2, 3, "y"); err != nil {
		t.Errorf("error: %+v", err)
	}
	if rows, cols, _ := grid.Dims("b"); rows != 3 || cols != 4 {
		t.Errorf("the sheet should grow: %d, %d", rows, cols)
	}
	if s, _ := grid.Get("b", 2, 3); s != "y" {
		t.Errorf("expected `y`, got `%s`", s)
	}
}

func TestMemGridCopy(t *testing.T) {
	rows := [][]string{{"1"}}
	grid := NewMemGrid()
	if err := grid.AddSheet("a", rows); err != nil {
		t.Errorf("error: %+v", err)
		return
	}
	rows[0][0] = "changed"
	if s, _ := grid.Get("a", 0, 0); s != "1" {
		t.Errorf("the grid should own its data, got `%s`", s)
	}
}

func TestCellRange(t *testing.T) {
	cursor := NewCursor(testGrid(t))
	if cursor.Sheet != "a" {
		t.Errorf("the cursor should start on the first sheet, got `%s`", cursor.Sheet)
	}
	cursor.Move("a", 1, 0)

	rng := CellRange{Sheet: AnySheet, Row: 0, Column: Any}
	sheet, row, col := rng.Resolve(cursor)
	if sheet != "a" || row != 0 || col != 0 {
		t.Errorf("unexpected resolve: %s %d %d", sheet, row, col)
	}
	if s := rng.String(); s != "*!R0C*" {
		t.Errorf("unexpected string: %s", s)
	}
	if !rng.Contains("b", 0, 5) || rng.Contains("b", 1, 5) {
		t.Errorf("unexpected contains")
	}
	if !AnyRange().Contains("z", 9, 9) {
		t.Errorf("any range contains everything")
	}
	if s := cursor.String(); s != "a!R1C0" {
		t.Errorf("unexpected cursor: %s", s)
	}
}

func TestVariable(t *testing.T) {
	cursor := NewCursor(testGrid(t))
	above := NewVariable(CellRange{Sheet: AnySheet, Row: 0, Column: Any}, cursor)
	here := NewVariable(AnyRange(), cursor)
	other := NewVariable(CellRange{Sheet: "b", Row: 0, Column: 0}, cursor)

	if here.IsConstant() || here.Type() != types.TypeString {
		t.Errorf("a variable is a non constant string")
	}

	cursor.Move("a", 1, 0)
	if i, err := here.Int(); err != nil || i != 3 {
		t.Errorf("expected 3, got %d: %v", i, err)
	}
	if i, err := above.Int(); err != nil || i != 1 {
		t.Errorf("expected 1, got %d: %v", i, err)
	}
	cursor.Move("a", 1, 1)
	if i, err := above.Int(); err != nil || i != 2 {
		t.Errorf("expected 2, got %d: %v", i, err)
	}
	if s, err := other.Str(); err != nil || s != "x" {
		t.Errorf("expected `x`, got `%s`: %v", s, err)
	}
	if _, err := other.Int(); err == nil {
		t.Errorf("`x` is not an integer")
	}
	if _, err := here.Matcher(); err == nil {
		t.Errorf("a variable is not a matcher")
	}

	r, err := here.Replacer()
	if err != nil {
		t.Errorf("error: %+v", err)
		return
	}
	cursor.Move("b", 0, 0)
	p, err := r.Replace()
	if err != nil || p.String() != "x" {
		t.Errorf("the replacer should read the current cell: %v, %v", p, err)
	}
}
