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
	"strings"

	"github.com/kyledewey/ErrorSentinel-sub001/lang/types"
)

// Kind is the kind of an instance. Each kind has its own independent set of
// registered classes.
type Kind int

// The two kinds of instances.
const (
	KindNil Kind = iota
	KindMatcher
	KindReplacer
)

// Kinds returns both valid kinds, matchers first.
func Kinds() []Kind {
	return []Kind{KindMatcher, KindReplacer}
}

// String returns the name of the kind as used in definition files.
func (obj Kind) String() string {
	switch obj {
	case KindMatcher:
		return "matcher"
	case KindReplacer:
		return "replacer"
	}
	return fmt.Sprintf("Kind(%d)", int(obj))
}

// Valid returns true if this is one of the known kinds.
func (obj Kind) Valid() bool {
	return obj == KindMatcher || obj == KindReplacer
}

// ParamType returns the parameter type that an instance of this kind has.
func (obj Kind) ParamType() types.ParamType {
	switch obj {
	case KindMatcher:
		return types.TypeMatcher
	case KindReplacer:
		return types.TypeReplacer
	}
	return types.TypeNil
}

// ParseKind returns the kind named by s. The match is case insensitive.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "matcher":
		return KindMatcher, nil
	case "replacer":
		return KindReplacer, nil
	}
	return KindNil, fmt.Errorf("unknown kind: `%s`", s)
}

// MarshalYAML encodes the kind by name.
func (obj Kind) MarshalYAML() (interface{}, error) {
	if !obj.Valid() {
		return nil, fmt.Errorf("can't encode invalid kind %s", obj)
	}
	return obj.String(), nil
}

// UnmarshalYAML decodes a kind from its name.
func (obj *Kind) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	kind, err := ParseKind(s)
	if err != nil {
		return err
	}
	*obj = kind
	return nil
}
