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

package ast

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/kyledewey/ErrorSentinel-sub001/lang/cell"
	"github.com/kyledewey/ErrorSentinel-sub001/lang/funcs"
	"github.com/kyledewey/ErrorSentinel-sub001/lang/interfaces"
	"github.com/kyledewey/ErrorSentinel-sub001/lang/resolver"
	"github.com/kyledewey/ErrorSentinel-sub001/lang/result"
	"github.com/kyledewey/ErrorSentinel-sub001/lang/types"
)

type intEq struct {
	*funcs.Base
}

func (obj *intEq) Match() (bool, error) {
	ints, err := obj.Bound.Ints("integers")
	if err != nil {
		return false, &interfaces.MatchError{Class: obj.Name(), Err: err}
	}
	for _, i := range ints {
		if i != ints[0] {
			return false, nil
		}
	}
	return true, nil
}

type not struct {
	*funcs.Base
}

func (obj *not) Match() (bool, error) {
	m, err := obj.Bound.Matcher("matcher")
	if err != nil {
		return false, err
	}
	b, err := m.Match()
	return !b, err
}

type sum struct {
	*funcs.Base
}

func (obj *sum) Replace() (types.Param, error) {
	ints, err := obj.Bound.Ints("integers")
	if err != nil {
		return nil, &interfaces.ReplaceError{Class: obj.Name(), Err: err}
	}
	var total int64
	for _, i := range ints {
		total += i
	}
	return types.NewInt(total), nil
}

type counter struct {
	*funcs.Base
	count *int64
}

func (obj *counter) Replace() (types.Param, error) {
	*obj.count++
	return types.NewInt(*obj.count), nil
}

var (
	intEqFactory = &funcs.Factory{
		Name: "Int=",
		Kind: interfaces.KindMatcher,
		Params: []*types.ParamInfo{
			{Name: "integers", Type: types.TypeInteger, Array: true, Required: true},
		},
		Fn: func(b *funcs.Bound) (interfaces.Instance, error) {
			return &intEq{funcs.NewBase(b, interfaces.KindMatcher, true)}, nil
		},
	}
	notFactory = &funcs.Factory{
		Name: "Not",
		Kind: interfaces.KindMatcher,
		Params: []*types.ParamInfo{
			{Name: "matcher", Type: types.TypeMatcher, Required: true},
		},
		Fn: func(b *funcs.Bound) (interfaces.Instance, error) {
			return &not{funcs.NewBase(b, interfaces.KindMatcher, true)}, nil
		},
	}
	sumFactory = &funcs.Factory{
		Name: "Sum",
		Kind: interfaces.KindReplacer,
		Params: []*types.ParamInfo{
			{Name: "integers", Type: types.TypeInteger, Array: true},
		},
		Fn: func(b *funcs.Bound) (interfaces.Instance, error) {
			return &sum{funcs.NewBase(b, interfaces.KindReplacer, true)}, nil
		},
	}
)

func counterFactory(count *int64) *funcs.Factory {
	return &funcs.Factory{
		Name: "Counter",
		Kind: interfaces.KindReplacer,
		Fn: func(b *funcs.Bound) (interfaces.Instance, error) {
			return &counter{
				Base:  funcs.NewBase(b, interfaces.KindReplacer, false),
				count: count,
			}, nil
		},
	}
}

func ints(label string, values ...int64) []Node {
	out := []Node{}
	for _, i := range values {
		out = append(out, &TerminalNode{Label: label, Value: types.NewInt(i)})
	}
	return out
}

func evalOne(t *testing.T, node Node, env []*types.NamedParam, optimize bool) types.Param {
	out, err := Evaluate(node, env, optimize)
	if err != nil {
		t.Fatalf("evaluate failed: %+v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected one value, got %d", len(out))
	}
	return out[0].Param
}

func match(t *testing.T, p types.Param) bool {
	m, err := p.Matcher()
	if err != nil {
		t.Fatalf("not a matcher: %+v", err)
	}
	b, err := m.Match()
	if err != nil {
		t.Fatalf("match failed: %+v", err)
	}
	return b
}

func TestEvaluateTerminal(t *testing.T) {
	node := &TerminalNode{Label: "x", Value: types.NewStr("hello")}
	out, err := Evaluate(node, nil, false)
	if err != nil {
		t.Errorf("error: %+v", err)
		return
	}
	if len(out) != 1 || out[0].Name != "x" || out[0].Param.String() != "hello" {
		t.Errorf("unexpected output: %v", out)
	}
	if s := node.String(); s != `"hello"` {
		t.Errorf("unexpected display: %s", s)
	}
}

func TestEvaluateVariable(t *testing.T) {
	env := []*types.NamedParam{
		{Name: "a", Param: types.NewInt(1)},
		{Name: "b", Param: types.NewInt(2)},
		{Name: "a", Param: types.NewInt(3)},
	}
	out, err := Evaluate(&VariableNode{Label: "integers", Target: "a"}, env, false)
	if err != nil {
		t.Errorf("error: %+v", err)
		return
	}
	if len(out) != 2 {
		t.Errorf("expected two values, got %d", len(out))
		return
	}
	for i, exp := range []string{"1", "3"} {
		if out[i].Name != "integers" || out[i].Param.String() != exp {
			t.Errorf("unexpected value %d: %s", i, out[i])
		}
	}
	if env[0].Name != "a" {
		t.Errorf("the environment must not be relabelled")
	}

	out, err = Evaluate(&VariableNode{Label: "x", Target: "nope"}, env, false)
	if err != nil || len(out) != 0 {
		t.Errorf("an unset variable should produce nothing: %v, %+v", out, err)
	}
}

func TestIntEqScenario(t *testing.T) {
	for _, optimize := range []bool{false, true} {
		same := &InternalNode{Label: "m", Factory: intEqFactory, Children: ints("integers", 3, 3, 3)}
		if !match(t, evalOne(t, same, nil, optimize)) {
			t.Errorf("[3,3,3] should match (optimize=%t)", optimize)
		}
		diff := &InternalNode{Label: "m", Factory: intEqFactory, Children: ints("integers", 3, 4, 3)}
		if match(t, evalOne(t, diff, nil, optimize)) {
			t.Errorf("[3,4,3] should not match (optimize=%t)", optimize)
		}
	}
}

func TestOptimizeEquivalence(t *testing.T) {
	trees := []Node{
		&InternalNode{Label: "m", Factory: intEqFactory, Children: ints("integers", 1, 1)},
		&InternalNode{Label: "m", Factory: notFactory, Children: []Node{
			&InternalNode{Label: "matcher", Factory: intEqFactory, Children: ints("integers", 1, 2)},
		}},
		&InternalNode{Label: "r", Factory: sumFactory, Children: ints("integers", 1, 2, 3)},
		&InternalNode{Label: "r", Factory: sumFactory},
	}
	for i, tree := range trees {
		plain := evalOne(t, tree, nil, false)
		folded := evalOne(t, tree, nil, true)
		if plain.IsConstant() {
			t.Errorf("tree %d: unoptimized result should be live", i)
		}
		if !folded.IsConstant() {
			t.Errorf("tree %d: optimized result should be constant", i)
		}
		if plain.Type() != folded.Type() {
			t.Errorf("tree %d: types differ: %s vs %s", i, plain.Type(), folded.Type())
			continue
		}
		if plain.Type() == types.TypeMatcher {
			if match(t, plain) != match(t, folded) {
				t.Errorf("tree %d: outcomes differ", i)
			}
			continue
		}
		s1, err1 := plain.Str()
		s2, err2 := folded.Str()
		if err1 != nil || err2 != nil || s1 != s2 {
			t.Errorf("tree %d: outcomes differ: %s (%v) vs %s (%v)", i, s1, err1, s2, err2)
		}
	}
}

func TestImpureNotFolded(t *testing.T) {
	var count int64
	tree := &InternalNode{Label: "r", Factory: counterFactory(&count)}
	p := evalOne(t, tree, nil, true)
	if p.IsConstant() {
		t.Errorf("an impure replacer must not be folded")
	}
	if count != 0 {
		t.Errorf("an impure replacer must not run during evaluation")
	}
	s1, _ := p.Str()
	s2, _ := p.Str()
	if s1 == s2 {
		t.Errorf("expected a fresh value on every use, got %s twice", s1)
	}
}

func TestVariableNotFolded(t *testing.T) {
	grid := cell.NewMemGrid()
	if err := grid.AddSheet("s", [][]string{{"7", "7"}}); err != nil {
		t.Errorf("error: %+v", err)
		return
	}
	cursor := cell.NewCursor(grid)
	env := []*types.NamedParam{
		{Name: "here", Param: cell.NewVariable(cell.AnyRange(), cursor)},
	}
	tree := &InternalNode{Label: "m", Factory: intEqFactory, Children: append(
		ints("integers", 7),
		&VariableNode{Label: "integers", Target: "here"},
	)}
	p := evalOne(t, tree, env, true)
	if p.IsConstant() {
		t.Errorf("a tree reading a cell must not be folded")
	}
	if !match(t, p) {
		t.Errorf("7 should equal the value of the current cell")
	}
}

func TestFoldFailureStaysLive(t *testing.T) {
	tree := &InternalNode{Label: "m", Factory: intEqFactory, Children: []Node{
		&TerminalNode{Label: "integers", Value: types.NewStr("not a number")},
	}}
	p := evalOne(t, tree, nil, true)
	if p.IsConstant() {
		t.Errorf("a failing pure matcher should stay live")
	}
	m, _ := p.Matcher()
	_, err := m.Match()
	if !errors.Is(err, interfaces.ErrMatch) {
		t.Errorf("expected a match error on use, got: %+v", err)
	}
}

type panickyMatcher struct {
	*funcs.Base
}

func (obj *panickyMatcher) Match() (bool, error) { panic("boom") }

type panickyReplacer struct {
	*funcs.Base
}

func (obj *panickyReplacer) Replace() (types.Param, error) { panic("boom") }

func panickyFactory(kind interfaces.Kind) *funcs.Factory {
	return &funcs.Factory{
		Name: "Panicky",
		Kind: kind,
		Params: []*types.ParamInfo{
			{Name: "x", Type: types.TypeInteger, Required: true},
		},
		Fn: func(b *funcs.Bound) (interfaces.Instance, error) {
			if kind == interfaces.KindMatcher {
				return &panickyMatcher{funcs.NewBase(b, kind, true)}, nil
			}
			return &panickyReplacer{funcs.NewBase(b, kind, true)}, nil
		},
	}
}

func TestFoldPanicStaysLive(t *testing.T) {
	for _, optimize := range []bool{false, true} {
		mtree := &InternalNode{Label: "m", Factory: panickyFactory(interfaces.KindMatcher), Children: ints("x", 1)}
		p := evalOne(t, mtree, nil, optimize)
		if p.IsConstant() {
			t.Errorf("optimize=%t: a panicking matcher should stay live", optimize)
		}
		m, err := p.Matcher()
		if err != nil {
			t.Errorf("optimize=%t: error: %+v", optimize, err)
			continue
		}
		if _, ok := result.ExecuteMatcher(m).(*result.FailureException); !ok {
			t.Errorf("optimize=%t: expected an exception from the matcher", optimize)
		}

		rtree := &InternalNode{Label: "r", Factory: panickyFactory(interfaces.KindReplacer), Children: ints("x", 1)}
		p = evalOne(t, rtree, nil, optimize)
		if p.IsConstant() {
			t.Errorf("optimize=%t: a panicking replacer should stay live", optimize)
		}
		r, err := p.Replacer()
		if err != nil {
			t.Errorf("optimize=%t: error: %+v", optimize, err)
			continue
		}
		if _, ok := result.ExecuteReplacer(r).(*result.FailureException); !ok {
			t.Errorf("optimize=%t: expected an exception from the replacer", optimize)
		}
	}
}

func TestEvaluateBindingError(t *testing.T) {
	tree := &InternalNode{Label: "m", Factory: notFactory, Children: ints("integers", 1)}
	_, err := Evaluate(tree, nil, false)
	var pie *funcs.ParameterizedInstantiationError
	if !errors.As(err, &pie) {
		t.Errorf("expected an instantiation error, got: %+v", err)
	}
	var pne *funcs.ParameterNameError
	if !errors.As(err, &pne) || pne.Name != "integers" {
		t.Errorf("expected the cause to be a name error, got: %+v", err)
	}
}

func TestComposite1(t *testing.T) {
	// NotEq(integers []integer) = Not(matcher=Int=(integers=$integers))
	notEq := NewCompositeFactory("NotEq", "not all equal", interfaces.KindMatcher,
		[]*types.ParamInfo{
			{Name: "integers", Type: types.TypeInteger, Array: true, Required: true},
		},
		&InternalNode{Label: "", Factory: notFactory, Children: []Node{
			&InternalNode{Label: "matcher", Factory: intEqFactory, Children: []Node{
				&VariableNode{Label: "integers", Target: "integers"},
			}},
		}},
	)
	if err := notEq.Validate(); err != nil {
		t.Errorf("invalid factory: %+v", err)
		return
	}

	for _, optimize := range []bool{false, true} {
		tree := &InternalNode{Label: "m", Factory: notEq, Children: ints("integers", 1, 2)}
		p := evalOne(t, tree, nil, optimize)
		if !match(t, p) {
			t.Errorf("[1,2] are not all equal (optimize=%t)", optimize)
		}
		if p.IsConstant() != optimize {
			t.Errorf("composite of pure classes should fold only when optimizing")
		}
	}

	inst, err := notEq.New([]*types.NamedParam{{Name: "integers", Param: types.NewInt(4)}})
	if err != nil {
		t.Errorf("error: %+v", err)
		return
	}
	if inst.Name() != "NotEq" || inst.Kind() != interfaces.KindMatcher || !inst.Info().Pure {
		t.Errorf("unexpected instance: %s", inst)
	}
}

func TestComposite2(t *testing.T) {
	var count int64
	// a composite containing something impure is impure
	wrapped := NewCompositeFactory("Fresh", "", interfaces.KindReplacer, nil,
		&InternalNode{Factory: counterFactory(&count)},
	)
	tree := &InternalNode{Label: "r", Factory: wrapped}
	p := evalOne(t, tree, nil, true)
	if p.IsConstant() {
		t.Errorf("impure composite must not be folded")
	}

	// a structure which doesn't produce exactly one value is an error
	empty := NewCompositeFactory("Empty", "", interfaces.KindMatcher,
		[]*types.ParamInfo{{Name: "m", Type: types.TypeMatcher}},
		&VariableNode{Target: "m"},
	)
	if _, err := empty.New(nil); err == nil {
		t.Errorf("expected an error from an empty structure")
	}

	// a structure of the wrong kind is an error
	wrong := NewCompositeFactory("Wrong", "", interfaces.KindMatcher, nil,
		&InternalNode{Factory: sumFactory},
	)
	if _, err := wrong.New(nil); err == nil {
		t.Errorf("expected an error from a replacer structure in a matcher")
	}
}

func TestClassesAndVariables(t *testing.T) {
	var count int64
	tree := &InternalNode{Label: "m", Factory: notFactory, Children: []Node{
		&InternalNode{Label: "matcher", Factory: intEqFactory, Children: []Node{
			&VariableNode{Label: "integers", Target: "b"},
			&VariableNode{Label: "integers", Target: "a"},
			&InternalNode{Label: "integers", Factory: counterFactory(&count)},
			&VariableNode{Label: "integers", Target: "a"},
		}},
	}}
	exp := []resolver.ClassID{
		{Name: "Int=", Kind: interfaces.KindMatcher},
		{Name: "Not", Kind: interfaces.KindMatcher},
		{Name: "Counter", Kind: interfaces.KindReplacer},
	}
	if got := Classes(tree); !reflect.DeepEqual(got, exp) {
		t.Errorf("unexpected classes: %v", got)
	}
	if got := Variables(tree); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("unexpected variables: %v", got)
	}

	visited := 0
	stop := fmt.Errorf("stop")
	err := Walk(tree, func(Node) error {
		visited++
		if visited == 2 {
			return stop
		}
		return nil
	})
	if err != stop || visited != 2 {
		t.Errorf("walk should stop at the first error")
	}
}

func TestString(t *testing.T) {
	tree := &InternalNode{Label: "m", Factory: notFactory, Children: []Node{
		&InternalNode{Label: "matcher", Factory: intEqFactory, Children: []Node{
			&TerminalNode{Label: "integers", Value: types.NewInt(1)},
			&VariableNode{Label: "integers", Target: "x"},
		}},
	}}
	if s := tree.String(); s != "Not(matcher=Int=(integers=1, integers=$x))" {
		t.Errorf("unexpected display: %s", s)
	}
}
