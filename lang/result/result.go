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

// Package result runs matchers and replacers against live data and turns
// their outcome into a structured result, so that a failing cell never aborts
// the processing of the others.
package result

import (
	"fmt"

	"github.com/kyledewey/ErrorSentinel-sub001/lang/interfaces"
	"github.com/kyledewey/ErrorSentinel-sub001/lang/types"
)

// InstanceResult is the outcome of running an instance. The set is closed: it
// is one of *Success, *MatcherFailure, *FailureReplacement or
// *FailureException. A nil result is a total failure.
type InstanceResult interface {
	fmt.Stringer

	result()
}

// Success is returned when a matcher matched.
type Success struct{}

func (obj *Success) result() {}

// String returns a short description.
func (obj *Success) String() string { return "success" }

// MatcherFailure is returned when a matcher ran but did not match.
type MatcherFailure struct{}

func (obj *MatcherFailure) result() {}

// String returns a short description.
func (obj *MatcherFailure) String() string { return "no match" }

// FailureReplacement carries the value produced by a replacer.
type FailureReplacement struct {
	// Replacement is the string form of Value.
	Replacement string
	Value       types.Param
}

func (obj *FailureReplacement) result() {}

// String returns a short description.
func (obj *FailureReplacement) String() string {
	return fmt.Sprintf("replacement: %q", obj.Replacement)
}

// FailureException is returned when a matcher or replacer could not run.
type FailureException struct {
	// Instance is the display form of what failed.
	Instance string
	Err      error
}

func (obj *FailureException) result() {}

// String returns a short description.
func (obj *FailureException) String() string {
	return fmt.Sprintf("exception in %s: %v", obj.Instance, obj.Err)
}

// Error lets the exception be used as an error.
func (obj *FailureException) Error() string { return obj.String() }

// Unwrap returns the cause.
func (obj *FailureException) Unwrap() error { return obj.Err }

// describe returns the display form of a matcher or replacer.
func describe(x interface{}) string {
	if inst, ok := x.(interfaces.Instance); ok {
		return inst.Name()
	}
	if s, ok := x.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", x)
}

func safeMatch(m types.Matcher) (b bool, reterr error) {
	defer func() {
		if r := recover(); r != nil { // magic panic catcher
			reterr = fmt.Errorf("panic during match with: %v", r) // set named return err
		}
	}()
	return m.Match()
}

func safeReplace(r types.Replacer) (p types.Param, reterr error) {
	defer func() {
		if r := recover(); r != nil {
			reterr = fmt.Errorf("panic during replace with: %v", r)
		}
	}()
	return r.Replace()
}

// ExecuteMatcher runs the matcher. It returns Success if it matched,
// MatcherFailure if it didn't, and FailureException if it couldn't decide.
func ExecuteMatcher(m types.Matcher) InstanceResult {
	if m == nil {
		return &FailureException{Instance: "nil", Err: fmt.Errorf("no matcher")}
	}
	b, err := safeMatch(m)
	if err != nil {
		return &FailureException{Instance: describe(m), Err: err}
	}
	if b {
		return &Success{}
	}
	return &MatcherFailure{}
}

// ExecuteReplacer runs the replacer. It returns a FailureReplacement with the
// value it produced, or FailureException if it couldn't produce one.
func ExecuteReplacer(r types.Replacer) InstanceResult {
	if r == nil {
		return &FailureException{Instance: "nil", Err: interfaces.ErrNoReplacer}
	}
	p, err := safeReplace(r)
	if err != nil {
		return &FailureException{Instance: describe(r), Err: err}
	}
	if p == nil {
		return &FailureException{Instance: describe(r), Err: fmt.Errorf("replacer produced nothing")}
	}
	return &FailureReplacement{
		Replacement: p.String(),
		Value:       p,
	}
}

// ExecuteErrorCorrectionPair runs the matcher, and only if it matched, which
// means the data is bad, the replacer. It returns the result of the replacer,
// the exception of the matcher, or nil if the matcher did not match.
func ExecuteErrorCorrectionPair(m types.Matcher, r types.Replacer) InstanceResult {
	switch res := ExecuteMatcher(m).(type) {
	case *Success:
		if r == nil {
			return &FailureException{Instance: describe(m), Err: interfaces.ErrNoReplacer}
		}
		return ExecuteReplacer(r)
	case *FailureException:
		return res
	}
	return nil // total failure
}

// Handlers are the callbacks of Dispatch. Every one of them must be set.
type Handlers struct {
	Success     func(*Success) error
	Replacement func(*FailureReplacement) error
	Exception   func(*FailureException) error
	// Total runs for a nil result and for a MatcherFailure.
	Total func() error
}

// Validate checks that every handler is set.
func (obj *Handlers) Validate() error {
	if obj == nil {
		return fmt.Errorf("no handlers")
	}
	if obj.Success == nil {
		return fmt.Errorf("the success handler is missing")
	}
	if obj.Replacement == nil {
		return fmt.Errorf("the replacement handler is missing")
	}
	if obj.Exception == nil {
		return fmt.Errorf("the exception handler is missing")
	}
	if obj.Total == nil {
		return fmt.Errorf("the total failure handler is missing")
	}
	return nil
}

// Dispatch runs exactly one handler for the result and returns its error.
func Dispatch(res InstanceResult, handlers *Handlers) error {
	if err := handlers.Validate(); err != nil {
		return err
	}
	switch x := res.(type) {
	case *Success:
		return handlers.Success(x)
	case *FailureReplacement:
		return handlers.Replacement(x)
	case *FailureException:
		return handlers.Exception(x)
	case *MatcherFailure, nil:
		return handlers.Total()
	}
	return fmt.Errorf("unknown result type: %T", res) // unreachable
}
