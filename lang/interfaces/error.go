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

package interfaces

import (
	"fmt"

	"github.com/kyledewey/ErrorSentinel-sub001/util"
)

const (
	// ErrMatch is the sentinel that every MatchError matches with
	// errors.Is. Matchers should return a MatchError instead of this.
	ErrMatch = util.Error("could not determine a match")

	// ErrReplace is the sentinel that every ReplaceError matches with
	// errors.Is.
	ErrReplace = util.Error("could not produce a replacement")

	// ErrNoReplacer is used when a correction pair matched, but there was
	// no replacer to run.
	ErrNoReplacer = util.Error("no replacer is associated")
)

// MatchError is the expected error of a matcher that couldn't decide. It is a
// domain error and not a defect, so it gets caught and recorded per cell.
type MatchError struct {
	Class string
	Err   error
}

// NewMatchError builds a MatchError with a formatted cause.
func NewMatchError(class string, format string, args ...interface{}) *MatchError {
	return &MatchError{
		Class: class,
		Err:   fmt.Errorf(format, args...),
	}
}

// Error returns a friendly representation of the error.
func (obj *MatchError) Error() string {
	return fmt.Sprintf("match error in `%s`: %v", obj.Class, obj.Err)
}

// Unwrap returns the cause.
func (obj *MatchError) Unwrap() error { return obj.Err }

// Is lets errors.Is(err, ErrMatch) succeed.
func (obj *MatchError) Is(target error) bool { return target == ErrMatch }

// ReplaceError is the expected error of a replacer that couldn't produce a
// replacement.
type ReplaceError struct {
	Class string
	Err   error
}

// NewReplaceError builds a ReplaceError with a formatted cause.
func NewReplaceError(class string, format string, args ...interface{}) *ReplaceError {
	return &ReplaceError{
		Class: class,
		Err:   fmt.Errorf(format, args...),
	}
}

// Error returns a friendly representation of the error.
func (obj *ReplaceError) Error() string {
	return fmt.Sprintf("replace error in `%s`: %v", obj.Class, obj.Err)
}

// Unwrap returns the cause.
func (obj *ReplaceError) Unwrap() error { return obj.Err }

// Is lets errors.Is(err, ErrReplace) succeed.
func (obj *ReplaceError) Is(target error) bool { return target == ErrReplace }
