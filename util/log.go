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

package util

import (
	"strings"
)

// LogWriter is an io.Writer which sends every write to a Logf function. It can
// be used as the output of a stdlib logger, such as the error log of a http
// server.
type LogWriter struct {
	Prefix string
	Logf   func(format string, v ...interface{})
}

// Write logs p as one message, without its trailing newline.
func (obj *LogWriter) Write(p []byte) (int, error) {
	obj.Logf("%s%s", obj.Prefix, strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
