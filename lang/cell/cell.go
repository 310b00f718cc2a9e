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

// Package cell contains cell addressing: ranges with "current" wildcards, the
// explicit cursor that says which cell is current, and the params that read a
// cell value lazily through that cursor.
package cell

import (
	"fmt"
	"strconv"

	"github.com/kyledewey/ErrorSentinel-sub001/util"
)

const (
	// AnySheet is the sheet of a range which applies to the current sheet.
	AnySheet = ""

	// Any is the row or column of a range which applies to the current row
	// or column.
	Any = -1

	// ErrNoSuchSheet is returned when looking up a sheet which isn't there.
	ErrNoSuchSheet = util.Error("no such sheet")
)

// CellRange is an address pattern. Each unset part means "the current one", so
// the zero value of Sheet together with Row and Column set to Any is the
// current cell.
type CellRange struct {
	Sheet  string
	Row    int
	Column int
}

// AnyRange returns the range that always resolves to the current cell.
func AnyRange() CellRange {
	return CellRange{
		Sheet:  AnySheet,
		Row:    Any,
		Column: Any,
	}
}

// Resolve fills in every unset part of the range from the cursor.
func (obj CellRange) Resolve(cursor *Cursor) (string, int, int) {
	sheet, row, col := obj.Sheet, obj.Row, obj.Column
	if sheet == AnySheet {
		sheet = cursor.Sheet
	}
	if row == Any {
		row = cursor.Row
	}
	if col == Any {
		col = cursor.Column
	}
	return sheet, row, col
}

// Contains returns true if the cell at that address is covered by the range.
// Unset parts of the range cover everything.
func (obj CellRange) Contains(sheet string, row, col int) bool {
	if obj.Sheet != AnySheet && obj.Sheet != sheet {
		return false
	}
	if obj.Row != Any && obj.Row != row {
		return false
	}
	if obj.Column != Any && obj.Column != col {
		return false
	}
	return true
}

// String returns a representation such as `Sheet1!R3C*`, with `*` standing in
// for any unset part.
func (obj CellRange) String() string {
	part := func(i int) string {
		if i == Any {
			return "*"
		}
		return strconv.Itoa(i)
	}
	sheet := obj.Sheet
	if sheet == AnySheet {
		sheet = "*"
	}
	return fmt.Sprintf("%s!R%sC%s", sheet, part(obj.Row), part(obj.Column))
}

// Grid is the read side of the spreadsheet storage that the engine runs
// against. Storage itself lives outside of this engine.
type Grid interface {
	// Sheets returns the sheet names in display order.
	Sheets() []string

	// Dims returns the number of rows and columns of a sheet.
	Dims(sheet string) (int, int, error)

	// Get returns the text of a cell. Cells outside of the populated area
	// of an existing sheet are blank.
	Get(sheet string, row, col int) (string, error)
}

// Cursor is the current position that unset range parts resolve to. It is
// owned by whoever runs a project and moved from cell to cell. Nothing else
// should mutate it.
type Cursor struct {
	Grid   Grid
	Sheet  string
	Row    int
	Column int
}

// NewCursor returns a cursor at the first cell of the first sheet.
func NewCursor(grid Grid) *Cursor {
	cursor := &Cursor{Grid: grid}
	if sheets := grid.Sheets(); len(sheets) > 0 {
		cursor.Sheet = sheets[0]
	}
	return cursor
}

// Move sets the current position.
func (obj *Cursor) Move(sheet string, row, col int) {
	obj.Sheet = sheet
	obj.Row = row
	obj.Column = col
}

// Value returns the text of the cell the range resolves to.
func (obj *Cursor) Value(rng CellRange) (string, error) {
	if obj.Grid == nil {
		return "", fmt.Errorf("cursor has no grid")
	}
	sheet, row, col := rng.Resolve(obj)
	return obj.Grid.Get(sheet, row, col)
}

// String returns the current position.
func (obj *Cursor) String() string {
	return CellRange{Sheet: obj.Sheet, Row: obj.Row, Column: obj.Column}.String()
}
