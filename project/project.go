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

package project

import (
	"context"
	"fmt"

	"github.com/kyledewey/ErrorSentinel-sub001/lang/ast"
	"github.com/kyledewey/ErrorSentinel-sub001/lang/cell"
	"github.com/kyledewey/ErrorSentinel-sub001/lang/funcs"
	"github.com/kyledewey/ErrorSentinel-sub001/lang/resolver"
	"github.com/kyledewey/ErrorSentinel-sub001/lang/result"
	"github.com/kyledewey/ErrorSentinel-sub001/lang/types"
	"github.com/kyledewey/ErrorSentinel-sub001/util/errwrap"
	"github.com/kyledewey/ErrorSentinel-sub001/yamlclass"
)

// Metrics receives the outcomes of a run. The prometheus instance implements
// it.
type Metrics interface {
	UpdateRuleOutcomeTotal(kind, status string) error
	UpdateCellsTotal() error
}

// Project runs the rules of a project config over its grid. Run Init() on it
// before Run().
type Project struct {
	Config   *Config
	Registry *funcs.Registry

	// Optimize folds the constant parts of every rule when it is built.
	Optimize bool

	// Apply writes every correction back into the grid, so that the rules
	// which run afterwards see the corrected value.
	Apply bool

	// Metrics is optional.
	Metrics Metrics

	Debug bool
	Logf  func(format string, v ...interface{})

	grid    *cell.MemGrid
	cursor  *cell.Cursor
	env     []*types.NamedParam
	good    []*goodRule
	correct []*correctRule
	unused  []string
}

type goodRule struct {
	name    string
	rng     cell.CellRange
	tree    ast.Node
	matcher types.Matcher
}

type correctRule struct {
	name     string
	rng      cell.CellRange
	mtree    ast.Node
	rtree    ast.Node
	matcher  types.Matcher
	replacer types.Replacer
}

// Init loads the grid and builds every rule. Any class that is missing or any
// parameter that doesn't bind is an error here, and not during the run.
func (obj *Project) Init() error {
	if obj.Config == nil {
		return fmt.Errorf("the Config is nil")
	}
	if obj.Registry == nil {
		return fmt.Errorf("the Registry is nil")
	}
	if obj.Logf == nil {
		obj.Logf = func(format string, v ...interface{}) {} // noop
	}
	if err := obj.Config.Validate(); err != nil {
		return err
	}

	obj.grid = cell.NewMemGrid()
	for _, sheet := range obj.Config.Sheets {
		if err := obj.grid.AddSheet(sheet.Name, sheet.Rows); err != nil {
			return err
		}
	}
	obj.cursor = cell.NewCursor(obj.grid)

	obj.env = []*types.NamedParam{
		{
			Name:  CellVariable,
			Param: cell.NewVariable(cell.AnyRange(), obj.cursor),
		},
	}
	for _, v := range obj.Config.Variables {
		obj.env = append(obj.env, &types.NamedParam{
			Name:  v.Name,
			Param: cell.NewVariable(v.Range.CellRange(), obj.cursor),
		})
	}

	obj.good = []*goodRule{}
	for i, rule := range obj.Config.Good {
		name := rule.Label(i)
		tree, p, err := obj.build(rule.Matcher, "matcher")
		if err != nil {
			return errwrap.Wrapf(err, "good rule `%s`", name)
		}
		m, err := p.Matcher()
		if err != nil {
			return errwrap.Wrapf(err, "good rule `%s`", name)
		}
		obj.good = append(obj.good, &goodRule{
			name:    name,
			rng:     rule.Range.CellRange(),
			tree:    tree,
			matcher: m,
		})
	}

	obj.correct = []*correctRule{}
	for i, rule := range obj.Config.Correct {
		name := rule.Label(i)
		mtree, mp, err := obj.build(rule.Matcher, "matcher")
		if err != nil {
			return errwrap.Wrapf(err, "correct rule `%s`", name)
		}
		m, err := mp.Matcher()
		if err != nil {
			return errwrap.Wrapf(err, "correct rule `%s`", name)
		}
		rtree, rp, err := obj.build(rule.Replacer, "replacer")
		if err != nil {
			return errwrap.Wrapf(err, "correct rule `%s`", name)
		}
		r, err := rp.Replacer()
		if err != nil {
			return errwrap.Wrapf(err, "correct rule `%s`", name)
		}
		obj.correct = append(obj.correct, &correctRule{
			name:     name,
			rng:      rule.Range.CellRange(),
			mtree:    mtree,
			rtree:    rtree,
			matcher:  m,
			replacer: r,
		})
	}

	read := make(map[string]struct{})
	for _, name := range ast.Variables(obj.trees()...) {
		read[name] = struct{}{}
	}
	obj.unused = []string{}
	for _, v := range obj.Config.Variables {
		if _, exists := read[v.Name]; !exists {
			obj.unused = append(obj.unused, v.Name)
			obj.Logf("variable `%s` is never read", v.Name)
		}
	}

	if obj.Debug {
		for _, x := range obj.good {
			obj.Logf("good rule %s on %s: %s", x.name, x.rng, x.tree)
		}
		for _, x := range obj.correct {
			obj.Logf("correct rule %s on %s: %s => %s", x.name, x.rng, x.mtree, x.rtree)
		}
	}
	return nil
}

func (obj *Project) trees() []ast.Node {
	out := []ast.Node{}
	for _, x := range obj.good {
		out = append(out, x.tree)
	}
	for _, x := range obj.correct {
		out = append(out, x.mtree, x.rtree)
	}
	return out
}

// Classes returns the sorted set of classes that the rules instantiate.
func (obj *Project) Classes() []resolver.ClassID {
	return ast.Classes(obj.trees()...)
}

// UnusedVariables returns the declared variables that no rule reads.
func (obj *Project) UnusedVariables() []string {
	return obj.unused
}

// build turns a node config into a tree, and evaluates it once against the
// project environment.
func (obj *Project) build(node *yamlclass.NodeConfig, label string) (ast.Node, types.Param, error) {
	tree, err := yamlclass.BuildNode(obj.Registry, node, label)
	if err != nil {
		return nil, nil, err
	}
	out, err := ast.Evaluate(tree, obj.env, obj.Optimize)
	if err != nil {
		return nil, nil, err
	}
	if len(out) != 1 {
		return nil, nil, fmt.Errorf("%s produced %d values", label, len(out))
	}
	return tree, out[0].Param, nil
}

// Grid returns the grid of the project. With Apply set, it holds the
// corrections after a run.
func (obj *Project) Grid() cell.Grid {
	return obj.grid
}

// Run visits every cell of every sheet in order and runs every rule whose
// range contains it. It returns one record per cell. A rule that fails on a
// cell is recorded as an error, and the run continues. Only a cancelled
// context stops it early, in which case the records so far are returned.
func (obj *Project) Run(ctx context.Context) ([]*Record, error) {
	records := []*Record{}
	for _, sheet := range obj.grid.Sheets() {
		rows, cols, err := obj.grid.Dims(sheet)
		if err != nil {
			return records, err
		}
		for row := 0; row < rows; row++ {
			for col := 0; col < cols; col++ {
				select {
				case <-ctx.Done():
					return records, ctx.Err()
				default:
				}
				records = append(records, obj.visit(sheet, row, col))
			}
		}
	}
	obj.Logf("checked %d cells", len(records))
	return records, nil
}

func (obj *Project) visit(sheet string, row, col int) *Record {
	obj.cursor.Move(sheet, row, col)
	value, err := obj.grid.Get(sheet, row, col)
	if err != nil { // can't happen with a cell inside the dims
		value = ""
	}
	record := &Record{
		Sheet:    sheet,
		Row:      row,
		Column:   col,
		Value:    value,
		Outcomes: []*Outcome{},
	}
	obj.count(func(m Metrics) error { return m.UpdateCellsTotal() })

	for _, rule := range obj.good {
		if !rule.rng.Contains(sheet, row, col) {
			continue
		}
		x := obj.runGood(rule)
		record.Outcomes = append(record.Outcomes, x)
		obj.report(obj.cursor, x)
	}
	for _, rule := range obj.correct {
		if !rule.rng.Contains(sheet, row, col) {
			continue
		}
		x := obj.runCorrect(rule)
		record.Outcomes = append(record.Outcomes, x)
		obj.report(obj.cursor, x)
		if obj.Apply && x.Status == StatusCorrected {
			if err := obj.grid.Set(sheet, row, col, x.Replacement); err != nil {
				obj.Logf("can't apply correction at %s: %+v", obj.cursor, err)
			}
		}
	}
	return record
}

func (obj *Project) runGood(rule *goodRule) *Outcome {
	out := &Outcome{
		Rule: rule.name,
		Kind: KindGood,
	}
	handlers := &result.Handlers{
		Success: func(*result.Success) error {
			out.Status = StatusGood
			return nil
		},
		Replacement: func(x *result.FailureReplacement) error {
			return fmt.Errorf("matcher produced a replacement: %s", x)
		},
		Exception: func(x *result.FailureException) error {
			out.Status = StatusError
			out.Err = x
			return nil
		},
		Total: func() error {
			out.Status = StatusBad
			return nil
		},
	}
	if err := result.Dispatch(result.ExecuteMatcher(rule.matcher), handlers); err != nil {
		out.Status = StatusError
		out.Err = err
	}
	return out
}

func (obj *Project) runCorrect(rule *correctRule) *Outcome {
	out := &Outcome{
		Rule: rule.name,
		Kind: KindCorrect,
	}
	handlers := &result.Handlers{
		Success: func(*result.Success) error {
			return fmt.Errorf("error correction pair produced a bare success")
		},
		Replacement: func(x *result.FailureReplacement) error {
			out.Status = StatusCorrected
			out.Replacement = x.Replacement
			return nil
		},
		Exception: func(x *result.FailureException) error {
			out.Status = StatusError
			out.Err = x
			return nil
		},
		Total: func() error {
			out.Status = StatusClean
			return nil
		},
	}
	res := result.ExecuteErrorCorrectionPair(rule.matcher, rule.replacer)
	if err := result.Dispatch(res, handlers); err != nil {
		out.Status = StatusError
		out.Err = err
	}
	return out
}

func (obj *Project) report(cursor *cell.Cursor, x *Outcome) {
	if obj.Debug {
		obj.Logf("%s: %s", cursor, x)
	}
	obj.count(func(m Metrics) error { return m.UpdateRuleOutcomeTotal(x.Kind, x.Status.String()) })
}

func (obj *Project) count(fn func(Metrics) error) {
	if obj.Metrics == nil {
		return
	}
	if err := fn(obj.Metrics); err != nil {
		obj.Logf("metrics error: %+v", err)
	}
}

// Sheets returns the current contents of the grid in the project file format.
func (obj *Project) Sheets() ([]*SheetConfig, error) {
	out := []*SheetConfig{}
	for _, sheet := range obj.grid.Sheets() {
		rows, cols, err := obj.grid.Dims(sheet)
		if err != nil {
			return nil, err
		}
		x := &SheetConfig{
			Name: sheet,
			Rows: [][]string{},
		}
		for row := 0; row < rows; row++ {
			data := []string{}
			for col := 0; col < cols; col++ {
				s, err := obj.grid.Get(sheet, row, col)
				if err != nil {
					return nil, err
				}
				data = append(data, s)
			}
			x.Rows = append(x.Rows, data)
		}
		out = append(out, x)
	}
	return out, nil
}
