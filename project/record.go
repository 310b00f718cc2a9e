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
	"fmt"
	"strings"
)

// Kinds of rules, as used in outcomes and metrics.
const (
	KindGood    = "good"
	KindCorrect = "correct"
)

// Status is what a rule decided about a cell.
type Status int

// The statuses of an outcome.
const (
	StatusNil Status = iota

	// StatusGood means the good data matcher matched.
	StatusGood

	// StatusBad means the good data matcher did not match.
	StatusBad

	// StatusClean means the error matcher did not find its error.
	StatusClean

	// StatusCorrected means the error matcher found its error, and the
	// replacer produced a correction.
	StatusCorrected

	// StatusError means the rule could not decide.
	StatusError
)

// String returns the name of the status.
func (obj Status) String() string {
	switch obj {
	case StatusGood:
		return "good"
	case StatusBad:
		return "bad"
	case StatusClean:
		return "clean"
	case StatusCorrected:
		return "corrected"
	case StatusError:
		return "error"
	}
	return "nil"
}

// Outcome is the result of one rule on one cell.
type Outcome struct {
	Rule   string
	Kind   string // KindGood or KindCorrect
	Status Status

	// Replacement is the correction, if the status is StatusCorrected.
	Replacement string

	// Err is the cause, if the status is StatusError.
	Err error
}

// String returns a short description.
func (obj *Outcome) String() string {
	switch obj.Status {
	case StatusCorrected:
		return fmt.Sprintf("%s: %s %q", obj.Rule, obj.Status, obj.Replacement)
	case StatusError:
		return fmt.Sprintf("%s: %s: %v", obj.Rule, obj.Status, obj.Err)
	}
	return fmt.Sprintf("%s: %s", obj.Rule, obj.Status)
}

// Record is everything that happened to one cell. A cell which no rule covers
// has no outcomes.
type Record struct {
	Sheet  string
	Row    int
	Column int

	// Value is the text of the cell before any correction.
	Value string

	Outcomes []*Outcome
}

// Failed returns true if some rule found bad data or could not decide.
func (obj *Record) Failed() bool {
	for _, x := range obj.Outcomes {
		if x.Status == StatusBad || x.Status == StatusError {
			return true
		}
	}
	return false
}

// String returns a one line description.
func (obj *Record) String() string {
	s := []string{}
	for _, x := range obj.Outcomes {
		s = append(s, x.String())
	}
	if len(s) == 0 {
		s = append(s, "no rules")
	}
	return fmt.Sprintf("%s!R%dC%d %q: %s", obj.Sheet, obj.Row, obj.Column, obj.Value, strings.Join(s, "; "))
}

// Count returns how many outcomes of each status the records hold.
func Count(records []*Record) map[Status]int {
	out := make(map[Status]int)
	for _, r := range records {
		for _, x := range r.Outcomes {
			out[x.Status]++
		}
	}
	return out
}
