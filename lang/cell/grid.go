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
	"fmt"

	"github.com/kyledewey/ErrorSentinel-sub001/util/errwrap"
)

// MemGrid is a simple in memory Grid. It's used by tests and by projects which
// carry their data inline.
type MemGrid struct {
	order  []string
	sheets map[string][][]string
}

// NewMemGrid returns an empty grid.
func NewMemGrid() *MemGrid {
	return &MemGrid{
		order:  []string{},
		sheets: make(map[string][][]string),
	}
}

// AddSheet adds a sheet with the given rows. Rows may be ragged. The data is
// copied.
func (obj *MemGrid) AddSheet(name string, rows [][]string) error {
	if _, exists := obj.sheets[name]; exists {
		return fmt.Errorf("sheet `%s` already exists", name)
	}
	data := [][]string{}
	for _, row := range rows {
		data = append(data, append([]string{}, row...))
	}
	obj.order = append(obj.order, name)
	obj.sheets[name] = data
	return nil
}

// Set stores a value, growing the sheet as needed.
func (obj *MemGrid) Set(sheet string, row, col int, value string) error {
	data, exists := obj.sheets[sheet]
	if !exists {
		return errwrap.Wrapf(ErrNoSuchSheet, "sheet `%s`", sheet)
	}
	if row < 0 || col < 0 {
		return fmt.Errorf("invalid cell R%dC%d", row, col)
	}
	for len(data) <= row {
		data = append(data, []string{})
	}
	for len(data[row]) <= col {
		data[row] = append(data[row], "")
	}
	data[row][col] = value
	obj.sheets[sheet] = data
	return nil
}

// Sheets returns the sheet names in the order they were added.
func (obj *MemGrid) Sheets() []string {
	return append([]string{}, obj.order...)
}

// Dims returns the number of rows and the widest row of a sheet.
func (obj *MemGrid) Dims(sheet string) (int, int, error) {
	data, exists := obj.sheets[sheet]
	if !exists {
		return 0, 0, errwrap.Wrapf(ErrNoSuchSheet, "sheet `%s`", sheet)
	}
	cols := 0
	for _, row := range data {
		if l := len(row); l > cols {
			cols = l
		}
	}
	return len(data), cols, nil
}

// Get returns the text of a cell.
func (obj *MemGrid) Get(sheet string, row, col int) (string, error) {
	data, exists := obj.sheets[sheet]
	if !exists {
		return "", errwrap.Wrapf(ErrNoSuchSheet, "sheet `%s`", sheet)
	}
	if row < 0 || col < 0 {
		return "", fmt.Errorf("invalid cell R%dC%d", row, col)
	}
	if row >= len(data) || col >= len(data[row]) {
		return "", nil // blank
	}
	return data[row][col], nil
}
