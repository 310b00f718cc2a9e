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

// Package corerandom contains the replacers that produce a fresh value every
// time. None of them are pure, so they are never folded.
package corerandom

import (
	"crypto/rand"
	"math/big"

	"github.com/kyledewey/ErrorSentinel-sub001/lang/funcs"
	"github.com/kyledewey/ErrorSentinel-sub001/lang/interfaces"
	"github.com/kyledewey/ErrorSentinel-sub001/lang/types"

	"github.com/google/uuid"
)

const (
	// ModuleName is the prefix given to all the implementations in this
	// module.
	ModuleName = "random"
)

func init() {
	funcs.ModuleRegisterImpl(ModuleName, "int", &funcs.Impl{
		Name: "Random",
		Desc: "a random integer in [min, max]",
		Kind: interfaces.KindReplacer,
		Params: []*types.ParamInfo{
			{Name: "min", Type: types.TypeInteger, Required: true},
			{Name: "max", Type: types.TypeInteger, Required: true},
		},
		Fn: func(b *funcs.Bound) (interfaces.Instance, error) {
			return &Random{funcs.NewBase(b, interfaces.KindReplacer, false)}, nil
		},
	})
	funcs.ModuleRegisterImpl(ModuleName, "uuid", &funcs.Impl{
		Name: "UUID",
		Desc: "a random uuid",
		Kind: interfaces.KindReplacer,
		Fn: func(b *funcs.Bound) (interfaces.Instance, error) {
			return &UUID{funcs.NewBase(b, interfaces.KindReplacer, false)}, nil
		},
	})
}

// Random replaces with a random integer.
type Random struct {
	*funcs.Base
}

// Replace picks a new number.
func (obj *Random) Replace() (types.Param, error) {
	lo, err := obj.Bound.Int("min")
	if err != nil {
		return nil, &interfaces.ReplaceError{Class: obj.Name(), Err: err}
	}
	hi, err := obj.Bound.Int("max")
	if err != nil {
		return nil, &interfaces.ReplaceError{Class: obj.Name(), Err: err}
	}
	if hi < lo {
		return nil, interfaces.NewReplaceError(obj.Name(), "max %d is less than min %d", hi, lo)
	}
	n := new(big.Int).Sub(big.NewInt(hi), big.NewInt(lo))
	n.Add(n, big.NewInt(1)) // inclusive
	r, err := rand.Int(rand.Reader, n)
	if err != nil {
		return nil, &interfaces.ReplaceError{Class: obj.Name(), Err: err}
	}
	r.Add(r, big.NewInt(lo))
	return types.NewInt(r.Int64()), nil
}

// UUID replaces with a new uuid.
type UUID struct {
	*funcs.Base
}

// Replace generates a new uuid.
func (obj *UUID) Replace() (types.Param, error) {
	u, err := uuid.NewRandom()
	if err != nil {
		return nil, &interfaces.ReplaceError{Class: obj.Name(), Err: err}
	}
	return types.NewStr(u.String()), nil
}
