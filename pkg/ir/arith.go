// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package ir

import (
	"fmt"

	"github.com/thorin-ir/go-thorin/pkg/module"
)

// ArithOp is a binary arithmetic operation (add, sub, mul, ...) over two
// operands, each independently lifted if given as an integer literal
// (spec.md §4.2 — symmetric on both sides).
type ArithOp struct {
	Base

	Op       string
	Lhs, Rhs Def
}

// Add, Sub, Mul, Div, Rem construct the corresponding ArithOp.  lhs/rhs
// may each be a Def or an integer literal.
func Add(lhs, rhs any) *ArithOp { return newArithOp("add", lhs, rhs) }
func Sub(lhs, rhs any) *ArithOp { return newArithOp("sub", lhs, rhs) }
func Mul(lhs, rhs any) *ArithOp { return newArithOp("mul", lhs, rhs) }
func Div(lhs, rhs any) *ArithOp { return newArithOp("div", lhs, rhs) }
func Rem(lhs, rhs any) *ArithOp { return newArithOp("rem", lhs, rhs) }

// NewArithOp constructs an arbitrary-opcode ArithOp, for opcodes not
// covered by the named convenience constructors.
func NewArithOp(op string, lhs, rhs any) *ArithOp { return newArithOp(op, lhs, rhs) }

func newArithOp(op string, lhs, rhs any) *ArithOp {
	return &ArithOp{Op: op, Lhs: liftArith(lhs), Rhs: liftArith(rhs)}
}

// Name implements Def.
func (a *ArithOp) Name(ctx *module.Context) string {
	return once(&a.Base, ctx, func(ctx *module.Context) string {
		args := []string{a.Lhs.Name(ctx), a.Rhs.Name(ctx)}
		name := fmt.Sprintf("_arithop_%d", ctx.NextDefIndex())
		ctx.AppendDef(module.DefEntry{Kind: "arithop", Name: name, Op: a.Op, Args: args})

		return name
	})
}

// MathOp is a unary or binary transcendental/math operation (sqrt, min,
// max, ...).
type MathOp struct {
	Base

	Op   string
	Args []Def
}

// NewMathOp constructs a MathOp over the given operands, each
// independently lifted if given as an integer literal.
func NewMathOp(op string, args ...any) *MathOp {
	lifted := make([]Def, len(args))
	for i, a := range args {
		lifted[i] = liftArith(a)
	}

	return &MathOp{Op: op, Args: lifted}
}

// Sqrt, Min, Max construct the corresponding MathOp.
func Sqrt(x any) *MathOp       { return NewMathOp("sqrt", x) }
func Min(a, b any) *MathOp     { return NewMathOp("min", a, b) }
func Max(a, b any) *MathOp     { return NewMathOp("max", a, b) }

// Name implements Def.
func (m *MathOp) Name(ctx *module.Context) string {
	return once(&m.Base, ctx, func(ctx *module.Context) string {
		args := make([]string, len(m.Args))
		for i, a := range m.Args {
			args[i] = a.Name(ctx)
		}

		name := fmt.Sprintf("_mathop_%d", ctx.NextDefIndex())
		ctx.AppendDef(module.DefEntry{Kind: "mathop", Name: name, Op: m.Op, Args: args})

		return name
	})
}

// Cmp is a binary comparison, producing a bool-typed def.
type Cmp struct {
	Base

	Op       string
	Lhs, Rhs Def
}

// Eq, Ne, Lt, Le, Gt, Ge construct the corresponding Cmp.  lhs/rhs may
// each be a Def or an integer literal.
func Eq(lhs, rhs any) *Cmp { return newCmp("eq", lhs, rhs) }
func Ne(lhs, rhs any) *Cmp { return newCmp("ne", lhs, rhs) }
func Lt(lhs, rhs any) *Cmp { return newCmp("lt", lhs, rhs) }
func Le(lhs, rhs any) *Cmp { return newCmp("le", lhs, rhs) }
func Gt(lhs, rhs any) *Cmp { return newCmp("gt", lhs, rhs) }
func Ge(lhs, rhs any) *Cmp { return newCmp("ge", lhs, rhs) }

// NewCmp constructs an arbitrary-opcode Cmp.
func NewCmp(op string, lhs, rhs any) *Cmp { return newCmp(op, lhs, rhs) }

func newCmp(op string, lhs, rhs any) *Cmp {
	return &Cmp{Op: op, Lhs: liftArith(lhs), Rhs: liftArith(rhs)}
}

// Name implements Def.
func (c *Cmp) Name(ctx *module.Context) string {
	return once(&c.Base, ctx, func(ctx *module.Context) string {
		args := []string{c.Lhs.Name(ctx), c.Rhs.Name(ctx)}
		name := fmt.Sprintf("_cmp_%d", ctx.NextDefIndex())
		ctx.AppendDef(module.DefEntry{Kind: "cmp", Name: name, Op: c.Op, Args: args})

		return name
	})
}
