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

package result

import (
	"errors"
	"fmt"
	"testing"

	"github.com/kyledewey/ErrorSentinel-sub001/lang/interfaces"
	"github.com/kyledewey/ErrorSentinel-sub001/lang/types"
)

type fakeMatcher struct {
	b     bool
	err   error
	panic bool
}

func (obj *fakeMatcher) Match() (bool, error) {
	if obj.panic {
		panic("oops")
	}
	return obj.b, obj.err
}

type fakeReplacer struct {
	p     types.Param
	err   error
	ran   int
	panic bool
}

func (obj *fakeReplacer) Replace() (types.Param, error) {
	obj.ran++
	if obj.panic {
		panic("oops")
	}
	return obj.p, obj.err
}

func TestExecuteMatcher(t *testing.T) {
	if _, ok := ExecuteMatcher(&fakeMatcher{b: true}).(*Success); !ok {
		t.Errorf("expected success")
	}
	if _, ok := ExecuteMatcher(&fakeMatcher{b: false}).(*MatcherFailure); !ok {
		t.Errorf("expected a matcher failure")
	}
	err := interfaces.NewMatchError("Int=", "bad input")
	res, ok := ExecuteMatcher(&fakeMatcher{err: err}).(*FailureException)
	if !ok {
		t.Errorf("expected an exception")
		return
	}
	if !errors.Is(res, interfaces.ErrMatch) {
		t.Errorf("the cause should be kept: %+v", res.Err)
	}
	if _, ok := ExecuteMatcher(&fakeMatcher{panic: true}).(*FailureException); !ok {
		t.Errorf("a panic should be an exception")
	}
	if _, ok := ExecuteMatcher(nil).(*FailureException); !ok {
		t.Errorf("a nil matcher should be an exception")
	}
}

func TestExecuteReplacer(t *testing.T) {
	res, ok := ExecuteReplacer(&fakeReplacer{p: types.NewInt(42)}).(*FailureReplacement)
	if !ok {
		t.Errorf("expected a replacement")
		return
	}
	if res.Replacement != "42" {
		t.Errorf("expected the string form 42, got: %s", res.Replacement)
	}
	if _, ok := ExecuteReplacer(&fakeReplacer{err: fmt.Errorf("nope")}).(*FailureException); !ok {
		t.Errorf("expected an exception")
	}
	if _, ok := ExecuteReplacer(&fakeReplacer{}).(*FailureException); !ok {
		t.Errorf("a replacer producing nothing should be an exception")
	}
	if _, ok := ExecuteReplacer(&fakeReplacer{panic: true}).(*FailureException); !ok {
		t.Errorf("a panic should be an exception")
	}
}

func TestExecuteErrorCorrectionPair(t *testing.T) {
	// the matcher raises
	r := &fakeReplacer{p: types.NewStr("fixed")}
	res := ExecuteErrorCorrectionPair(&fakeMatcher{err: fmt.Errorf("boom")}, r)
	if _, ok := res.(*FailureException); !ok {
		t.Errorf("expected an exception, got: %v", res)
	}
	if r.ran != 0 {
		t.Errorf("the replacer must not run")
	}

	// the matcher says the data is fine
	if res := ExecuteErrorCorrectionPair(&fakeMatcher{b: false}, r); res != nil {
		t.Errorf("expected a total failure, got: %v", res)
	}
	if res := ExecuteErrorCorrectionPair(&fakeMatcher{b: false}, nil); res != nil {
		t.Errorf("expected a total failure without a replacer, got: %v", res)
	}

	// the matcher found an error
	res = ExecuteErrorCorrectionPair(&fakeMatcher{b: true}, r)
	if x, ok := res.(*FailureReplacement); !ok || x.Replacement != "fixed" {
		t.Errorf("expected the replacement, got: %v", res)
	}
	if r.ran != 1 {
		t.Errorf("the replacer should run once, ran %d times", r.ran)
	}

	res = ExecuteErrorCorrectionPair(&fakeMatcher{b: true}, nil)
	if !errors.Is(res.(error), interfaces.ErrNoReplacer) {
		t.Errorf("expected a missing replacer exception, got: %v", res)
	}
}

func TestDispatch(t *testing.T) {
	called := ""
	handlers := &Handlers{
		Success:     func(*Success) error { called = "success"; return nil },
		Replacement: func(*FailureReplacement) error { called = "replacement"; return nil },
		Exception:   func(*FailureException) error { called = "exception"; return nil },
		Total:       func() error { called = "total"; return nil },
	}
	tests := []struct {
		res InstanceResult
		exp string
	}{
		{&Success{}, "success"},
		{&FailureReplacement{Replacement: "x"}, "replacement"},
		{&FailureException{Err: fmt.Errorf("x")}, "exception"},
		{&MatcherFailure{}, "total"},
		{nil, "total"},
	}
	for i, tc := range tests {
		called = ""
		if err := Dispatch(tc.res, handlers); err != nil {
			t.Errorf("test %d: error: %+v", i, err)
		}
		if called != tc.exp {
			t.Errorf("test %d: expected %s handler, got: %s", i, tc.exp, called)
		}
	}

	handlers.Total = nil
	called = ""
	if err := Dispatch(&Success{}, handlers); err == nil {
		t.Errorf("a missing handler should error")
	}
	if called != "" {
		t.Errorf("no handler should run when one is missing")
	}

	stop := fmt.Errorf("stop")
	handlers.Total = func() error { return stop }
	if err := Dispatch(nil, handlers); err != stop {
		t.Errorf("the handler error should be returned, got: %+v", err)
	}
}
