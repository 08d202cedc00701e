/*
 * Sint - Overflow-checked fixed-width signed integers
 *
 * Copyright Flow Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package sint

import "fmt"

// Num is the interface over the four value widths. The binary operations
// in this file accept operands of any two widths, promote both to the
// larger width, and dispatch to the primitive at that width. Operands are
// never mutated.
type Num interface {
	fmt.Stringer

	isNum()

	// BitSize returns the width in bits: 8, 16, 32, or 64.
	BitSize() int

	// Int64 returns the value widened to 64 bits. Always exact.
	Int64() int64

	// Bool reports whether the value is non-zero.
	Bool() bool

	Less(other Num) bool
	LessEqual(other Num) bool
	Greater(other Num) bool
	GreaterEqual(other Num) bool
	Equal(other Num) bool

	ToBigEndianBytes() []byte
	ToLittleEndianBytes() []byte
}

// Of wraps a native integer value in the value type of its width,
// validating the value fits (only relevant for unsigned sources).
// Plain int and uint map to the 64-bit width.
func Of[T Integer](v T) Num {
	switch nativeBits[T]() {
	case 8:
		return convertChecked[Int8](defaultRegistry, v)
	case 16:
		return convertChecked[Int16](defaultRegistry, v)
	case 32:
		return convertChecked[Int32](defaultRegistry, v)
	default:
		return convertChecked[Int64](defaultRegistry, v)
	}
}

// Cmp compares two values of any widths, returning -1, 0, or 1.
func Cmp(a, b Num) int {
	x := a.Int64()
	y := b.Int64()
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

// And is the non-short-circuiting logical AND over truthiness.
func And(a, b Num) bool {
	return a.Bool() && b.Bool()
}

// Or is the non-short-circuiting logical OR over truthiness.
func Or(a, b Num) bool {
	return a.Bool() || b.Bool()
}

type binaryOp uint8

const (
	opAddChecked binaryOp = iota
	opAddWrapped
	opAddSaturated
	opAddUnchecked

	opSubChecked
	opSubWrapped
	opSubSaturated
	opSubUnchecked

	opMulChecked
	opMulWrapped
	opMulSaturated
	opMulUnchecked

	opDivChecked
	opDivWrapped
	opDivSaturated
	opDivUnchecked

	opRemChecked
	opRemWrapped
	opRemSaturated
	opRemUnchecked

	opShlChecked
	opShlUnchecked
	opShrChecked
	opShrUnchecked

	opBitOr
	opBitAnd
	opBitXor
)

func applyBinary[T SignedInteger](r *Registry, op binaryOp, a, b T) T {
	switch op {
	case opAddChecked:
		return checkedAdd(r, a, b)
	case opAddWrapped:
		return wrappedAdd(a, b)
	case opAddSaturated:
		return satAdd(a, b)
	case opAddUnchecked:
		return uncheckedAdd(a, b)

	case opSubChecked:
		return checkedSub(r, a, b)
	case opSubWrapped:
		return wrappedSub(a, b)
	case opSubSaturated:
		return satSub(a, b)
	case opSubUnchecked:
		return uncheckedSub(a, b)

	case opMulChecked:
		return checkedMul(r, a, b)
	case opMulWrapped:
		return wrappedMul(a, b)
	case opMulSaturated:
		return satMul(a, b)
	case opMulUnchecked:
		return uncheckedMul(a, b)

	case opDivChecked:
		return checkedDiv(r, a, b)
	case opDivWrapped:
		return wrappedDiv(r, a, b)
	case opDivSaturated:
		return satDiv(r, a, b)
	case opDivUnchecked:
		return uncheckedDiv(a, b)

	case opRemChecked:
		return checkedRem(r, a, b)
	case opRemWrapped:
		return wrappedRem(r, a, b)
	case opRemSaturated:
		return satRem(r, a, b)
	case opRemUnchecked:
		return uncheckedRem(a, b)

	case opShlChecked:
		return checkedShl(r, a, b)
	case opShlUnchecked:
		return uncheckedShl(a, b)
	case opShrChecked:
		return checkedShr(r, a, b)
	case opShrUnchecked:
		return uncheckedShr(a, b)

	case opBitOr:
		return a | b
	case opBitAnd:
		return a & b
	case opBitXor:
		return a ^ b
	}

	panic(fmt.Sprintf("unknown binary operation: %d", op))
}

// dispatchBinary widens both operands to the larger of the two widths,
// then applies the operation at that width. Widening is always exact, so
// only the operation's own check can report.
func dispatchBinary(op binaryOp, lhs, rhs Num) Num {
	r := defaultRegistry

	width := lhs.BitSize()
	if w := rhs.BitSize(); w > width {
		width = w
	}

	switch width {
	case 8:
		return applyBinary(r, op, Int8(lhs.Int64()), Int8(rhs.Int64()))
	case 16:
		return applyBinary(r, op, Int16(lhs.Int64()), Int16(rhs.Int64()))
	case 32:
		return applyBinary(r, op, Int32(lhs.Int64()), Int32(rhs.Int64()))
	default:
		return applyBinary(r, op, Int64(lhs.Int64()), Int64(rhs.Int64()))
	}
}

// Checked binary operations over mixed widths.

func Add(lhs, rhs Num) Num { return dispatchBinary(opAddChecked, lhs, rhs) }
func Sub(lhs, rhs Num) Num { return dispatchBinary(opSubChecked, lhs, rhs) }
func Mul(lhs, rhs Num) Num { return dispatchBinary(opMulChecked, lhs, rhs) }
func Div(lhs, rhs Num) Num { return dispatchBinary(opDivChecked, lhs, rhs) }
func Rem(lhs, rhs Num) Num { return dispatchBinary(opRemChecked, lhs, rhs) }
func Shl(lhs, rhs Num) Num { return dispatchBinary(opShlChecked, lhs, rhs) }
func Shr(lhs, rhs Num) Num { return dispatchBinary(opShrChecked, lhs, rhs) }

// Wrapped binary operations over mixed widths.

func AddWrapped(lhs, rhs Num) Num { return dispatchBinary(opAddWrapped, lhs, rhs) }
func SubWrapped(lhs, rhs Num) Num { return dispatchBinary(opSubWrapped, lhs, rhs) }
func MulWrapped(lhs, rhs Num) Num { return dispatchBinary(opMulWrapped, lhs, rhs) }
func DivWrapped(lhs, rhs Num) Num { return dispatchBinary(opDivWrapped, lhs, rhs) }
func RemWrapped(lhs, rhs Num) Num { return dispatchBinary(opRemWrapped, lhs, rhs) }

// Saturated binary operations over mixed widths.

func AddSaturated(lhs, rhs Num) Num { return dispatchBinary(opAddSaturated, lhs, rhs) }
func SubSaturated(lhs, rhs Num) Num { return dispatchBinary(opSubSaturated, lhs, rhs) }
func MulSaturated(lhs, rhs Num) Num { return dispatchBinary(opMulSaturated, lhs, rhs) }
func DivSaturated(lhs, rhs Num) Num { return dispatchBinary(opDivSaturated, lhs, rhs) }
func RemSaturated(lhs, rhs Num) Num { return dispatchBinary(opRemSaturated, lhs, rhs) }

// Unchecked binary operations over mixed widths.

func AddUnchecked(lhs, rhs Num) Num { return dispatchBinary(opAddUnchecked, lhs, rhs) }
func SubUnchecked(lhs, rhs Num) Num { return dispatchBinary(opSubUnchecked, lhs, rhs) }
func MulUnchecked(lhs, rhs Num) Num { return dispatchBinary(opMulUnchecked, lhs, rhs) }
func DivUnchecked(lhs, rhs Num) Num { return dispatchBinary(opDivUnchecked, lhs, rhs) }
func RemUnchecked(lhs, rhs Num) Num { return dispatchBinary(opRemUnchecked, lhs, rhs) }
func ShlUnchecked(lhs, rhs Num) Num { return dispatchBinary(opShlUnchecked, lhs, rhs) }
func ShrUnchecked(lhs, rhs Num) Num { return dispatchBinary(opShrUnchecked, lhs, rhs) }

// Bitwise binary operations over mixed widths.

func BitOr(lhs, rhs Num) Num  { return dispatchBinary(opBitOr, lhs, rhs) }
func BitAnd(lhs, rhs Num) Num { return dispatchBinary(opBitAnd, lhs, rhs) }
func BitXor(lhs, rhs Num) Num { return dispatchBinary(opBitXor, lhs, rhs) }

// Unary operations.

func Neg(v Num) Num {
	switch v := v.(type) {
	case Int8:
		return v.Neg()
	case Int16:
		return v.Neg()
	case Int32:
		return v.Neg()
	case Int64:
		return v.Neg()
	}
	panic(fmt.Sprintf("unknown value type: %T", v))
}

func BitNot(v Num) Num {
	switch v := v.(type) {
	case Int8:
		return v.BitNot()
	case Int16:
		return v.BitNot()
	case Int32:
		return v.BitNot()
	case Int64:
		return v.BitNot()
	}
	panic(fmt.Sprintf("unknown value type: %T", v))
}
