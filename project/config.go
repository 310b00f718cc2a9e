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

// Package project runs good data and error correction rules over every cell of
// a grid, and reports what happened to each cell.
package project

import (
	"fmt"
	"strings"

	"github.com/kyledewey/ErrorSentinel-sub001/lang/cell"
	"github.com/kyledewey/ErrorSentinel-sub001/lang/interfaces"
	"github.com/kyledewey/ErrorSentinel-sub001/util/errwrap"
	"github.com/kyledewey/ErrorSentinel-sub001/yamlclass"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v2"
)

// CellVariable is the name under which the value of the current cell is
// available to every rule.
const CellVariable = "cell"

// RangeConfig is a range of cells. A missing sheet, row or column means the
// current one.
type RangeConfig struct {
	Sheet  string `yaml:"sheet,omitempty"`
	Row    *int   `yaml:"row,omitempty"`
	Column *int   `yaml:"column,omitempty"`
}

// CellRange returns the cell range that this config describes.
func (obj *RangeConfig) CellRange() cell.CellRange {
	rng := cell.AnyRange()
	if obj == nil {
		return rng
	}
	rng.Sheet = obj.Sheet
	if obj.Row != nil {
		rng.Row = *obj.Row
	}
	if obj.Column != nil {
		rng.Column = *obj.Column
	}
	return rng
}

func (obj *RangeConfig) validate() error {
	if obj == nil {
		return nil
	}
	if obj.Row != nil && *obj.Row < 0 {
		return fmt.Errorf("negative row %d", *obj.Row)
	}
	if obj.Column != nil && *obj.Column < 0 {
		return fmt.Errorf("negative column %d", *obj.Column)
	}
	return nil
}

// SheetConfig is an inline sheet of the grid.
type SheetConfig struct {
	Name string     `yaml:"name"`
	Rows [][]string `yaml:"rows"`
}

// VariableConfig binds an environment name to the value of a cell relative
// to the current one.
type VariableConfig struct {
	Name  string       `yaml:"name"`
	Range *RangeConfig `yaml:"range"`
}

// GoodRule is a matcher that tells if a cell holds good data.
type GoodRule struct {
	Name    string                `yaml:"name,omitempty"`
	Matcher *yamlclass.NodeConfig `yaml:"matcher"`
	Range   *RangeConfig          `yaml:"range,omitempty"`
}

// CorrectRule is a matcher that detects a known error in a cell, and the
// replacer that produces the correction.
type CorrectRule struct {
	Name     string                `yaml:"name,omitempty"`
	Matcher  *yamlclass.NodeConfig `yaml:"matcher"`
	Replacer *yamlclass.NodeConfig `yaml:"replacer"`
	Range    *RangeConfig          `yaml:"range,omitempty"`
}

// Config is the data structure of a project file.
type Config struct {
	Name      string            `yaml:"name,omitempty"`
	Sheets    []*SheetConfig    `yaml:"sheets"`
	Variables []*VariableConfig `yaml:"variables,omitempty"`
	Good      []*GoodRule       `yaml:"good,omitempty"`
	Correct   []*CorrectRule    `yaml:"correct,omitempty"`
}

// Parse parses a project file. Unknown fields are an error. The classes which
// the rules use are only looked up when the project is initialized.
func Parse(data []byte) (*Config, error) {
	config := &Config{}
	if err := yaml.UnmarshalStrict(data, config); err != nil {
		return nil, errwrap.Wrapf(err, "can't parse project")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadFile reads and parses a project file.
func LoadFile(fs afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errwrap.Wrapf(err, "can't read project file `%s`", path)
	}
	config, err := Parse(data)
	if err != nil {
		return nil, errwrap.Wrapf(err, "project file `%s`", path)
	}
	return config, nil
}

// Validate checks the project on its own. All the problems are reported.
func (obj *Config) Validate() error {
	var reterr error

	sheets := make(map[string]struct{})
	for i, sheet := range obj.Sheets {
		if sheet == nil || strings.TrimSpace(sheet.Name) == "" {
			reterr = errwrap.Append(reterr, fmt.Errorf("sheet %d has no name", i))
			continue
		}
		if _, exists := sheets[sheet.Name]; exists {
			reterr = errwrap.Append(reterr, fmt.Errorf("duplicate sheet `%s`", sheet.Name))
		}
		sheets[sheet.Name] = struct{}{}
	}
	checkRange := func(what string, rng *RangeConfig) {
		if err := rng.validate(); err != nil {
			reterr = errwrap.Append(reterr, errwrap.Wrapf(err, "%s", what))
		}
		if rng != nil && rng.Sheet != "" {
			if _, exists := sheets[rng.Sheet]; !exists {
				reterr = errwrap.Append(reterr, fmt.Errorf("%s: unknown sheet `%s`", what, rng.Sheet))
			}
		}
	}

	names := map[string]struct{}{CellVariable: {}}
	for i, v := range obj.Variables {
		if v == nil || v.Name == "" {
			reterr = errwrap.Append(reterr, fmt.Errorf("variable %d has no name", i))
			continue
		}
		if _, exists := names[v.Name]; exists {
			reterr = errwrap.Append(reterr, fmt.Errorf("duplicate variable `%s`", v.Name))
		}
		names[v.Name] = struct{}{}
		checkRange(fmt.Sprintf("variable `%s`", v.Name), v.Range)
	}
	given := func(name string) error {
		if _, exists := names[name]; !exists {
			return fmt.Errorf("unknown variable `%s`", name)
		}
		return nil
	}
	checkNode := func(what string, node *yamlclass.NodeConfig, kind interfaces.Kind) {
		if node == nil {
			reterr = errwrap.Append(reterr, fmt.Errorf("%s is missing", what))
			return
		}
		if node.Type != kind {
			reterr = errwrap.Append(reterr, fmt.Errorf("%s is a %s, not a %s", what, node.Type, kind))
		}
		if err := node.ValidateWith(given); err != nil {
			reterr = errwrap.Append(reterr, errwrap.Wrapf(err, "%s", what))
		}
	}

	for i, rule := range obj.Good {
		if rule == nil {
			reterr = errwrap.Append(reterr, fmt.Errorf("good rule %d is empty", i))
			continue
		}
		what := fmt.Sprintf("good rule `%s`", rule.Label(i))
		checkNode(what+" matcher", rule.Matcher, interfaces.KindMatcher)
		checkRange(what, rule.Range)
	}
	for i, rule := range obj.Correct {
		if rule == nil {
			reterr = errwrap.Append(reterr, fmt.Errorf("correct rule %d is empty", i))
			continue
		}
		what := fmt.Sprintf("correct rule `%s`", rule.Label(i))
		checkNode(what+" matcher", rule.Matcher, interfaces.KindMatcher)
		checkNode(what+" replacer", rule.Replacer, interfaces.KindReplacer)
		checkRange(what, rule.Range)
	}

	return reterr
}

// Label returns the name of the rule, or a name made from its class and its
// position if it has none.
func (obj *GoodRule) Label(index int) string {
	if obj.Name != "" {
		return obj.Name
	}
	class := ""
	if obj.Matcher != nil {
		class = obj.Matcher.Class
	}
	return fmt.Sprintf("good%d:%s", index, class)
}

// Label returns the name of the rule, or a name made from its classes and its
// position if it has none.
func (obj *CorrectRule) Label(index int) string {
	if obj.Name != "" {
		return obj.Name
	}
	m, r := "", ""
	if obj.Matcher != nil {
		m = obj.Matcher.Class
	}
	if obj.Replacer != nil {
		r = obj.Replacer.Class
	}
	return fmt.Sprintf("correct%d:%s/%s", index, m, r)
}
