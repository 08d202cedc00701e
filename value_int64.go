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

import (
	"encoding/binary"
	"strconv"
)

// Int64

type Int64 int64

var _ Num = Int64(0)

func NewInt64(v int64) Int64 {
	return Int64(v)
}

func (Int64) isNum() {}

func (Int64) BitSize() int {
	return 64
}

func (v Int64) Int64() int64 {
	return int64(v)
}

func (v Int64) Bool() bool {
	return v != 0
}

func (v Int64) String() string {
	return strconv.FormatInt(int64(v), 10)
}

// Addition

func (v Int64) AddChecked(other Int64) Int64 {
	return checkedAdd(defaultRegistry, v, other)
}

func (v Int64) AddWrapped(other Int64) Int64 {
	return wrappedAdd(v, other)
}

func (v Int64) AddSaturated(other Int64) Int64 {
	return satAdd(v, other)
}

func (v Int64) AddUnchecked(other Int64) Int64 {
	return uncheckedAdd(v, other)
}

// Subtraction

func (v Int64) SubChecked(other Int64) Int64 {
	return checkedSub(defaultRegistry, v, other)
}

func (v Int64) SubWrapped(other Int64) Int64 {
	return wrappedSub(v, other)
}

func (v Int64) SubSaturated(other Int64) Int64 {
	return satSub(v, other)
}

func (v Int64) SubUnchecked(other Int64) Int64 {
	return uncheckedSub(v, other)
}

// Multiplication

func (v Int64) MulChecked(other Int64) Int64 {
	return checkedMul(defaultRegistry, v, other)
}

func (v Int64) MulWrapped(other Int64) Int64 {
	return wrappedMul(v, other)
}

func (v Int64) MulSaturated(other Int64) Int64 {
	return satMul(v, other)
}

func (v Int64) MulUnchecked(other Int64) Int64 {
	return uncheckedMul(v, other)
}

// Division

func (v Int64) DivChecked(other Int64) Int64 {
	return checkedDiv(defaultRegistry, v, other)
}

func (v Int64) DivWrapped(other Int64) Int64 {
	return wrappedDiv(defaultRegistry, v, other)
}

func (v Int64) DivSaturated(other Int64) Int64 {
	return satDiv(defaultRegistry, v, other)
}

func (v Int64) DivUnchecked(other Int64) Int64 {
	return uncheckedDiv(v, other)
}

// Remainder

func (v Int64) RemChecked(other Int64) Int64 {
	return checkedRem(defaultRegistry, v, other)
}

func (v Int64) RemWrapped(other Int64) Int64 {
	return wrappedRem(defaultRegistry, v, other)
}

func (v Int64) RemSaturated(other Int64) Int64 {
	return satRem(defaultRegistry, v, other)
}

func (v Int64) RemUnchecked(other Int64) Int64 {
	return uncheckedRem(v, other)
}

// Negation

// Neg negates the value, validating that it is not MinInt64.
func (v Int64) Neg() Int64 {
	return debugCheckedNeg(defaultRegistry, v)
}

func (v Int64) NegChecked() Int64 {
	return checkedNeg(defaultRegistry, v)
}

func (v Int64) NegWrapped() Int64 {
	return wrappedNeg(v)
}

func (v Int64) NegSaturated() Int64 {
	return satNeg(v)
}

func (v Int64) NegUnchecked() Int64 {
	return uncheckedNeg(v)
}

// Shifts

func (v Int64) ShlChecked(other Int64) Int64 {
	return checkedShl(defaultRegistry, v, other)
}

func (v Int64) ShlOverflowing(n int) Int64 {
	return shlOverflowing(defaultRegistry, v, n)
}

func (v Int64) ShlUnchecked(other Int64) Int64 {
	return uncheckedShl(v, other)
}

func (v Int64) ShrChecked(other Int64) Int64 {
	return checkedShr(defaultRegistry, v, other)
}

func (v Int64) ShrOverflowing(n int) Int64 {
	return shrOverflowing(defaultRegistry, v, n)
}

func (v Int64) ShrUnchecked(other Int64) Int64 {
	return uncheckedShr(v, other)
}

// Bitwise operations

func (v Int64) BitOr(other Int64) Int64 {
	return v | other
}

func (v Int64) BitAnd(other Int64) Int64 {
	return v & other
}

func (v Int64) BitXor(other Int64) Int64 {
	return v ^ other
}

func (v Int64) BitNot() Int64 {
	return ^v
}

// Bit utilities

func (v Int64) RotateLeft(n int) Int64 {
	return rotateLeft(defaultRegistry, v, n)
}

func (v Int64) RotateRight(n int) Int64 {
	return rotateRight(defaultRegistry, v, n)
}

func (v Int64) ReverseBits() Int64 {
	return reverseBits(v)
}

func (v Int64) LeadingZeros() int {
	return leadingZeros(v)
}

func (v Int64) TrailingZeros() int {
	return trailingZeros(v)
}

// Mutating forms. These always validate, regardless of policy,
// since the result feeds back into the original storage.

func (v *Int64) AddAssign(other Int64) {
	*v = debugCheckedAdd(defaultRegistry, *v, other)
}

func (v *Int64) SubAssign(other Int64) {
	*v = debugCheckedSub(defaultRegistry, *v, other)
}

func (v *Int64) MulAssign(other Int64) {
	*v = debugCheckedMul(defaultRegistry, *v, other)
}

func (v *Int64) DivAssign(other Int64) {
	*v = debugCheckedDiv(defaultRegistry, *v, other)
}

func (v *Int64) RemAssign(other Int64) {
	*v = debugCheckedRem(defaultRegistry, *v, other)
}

func (v *Int64) ShlAssign(other Int64) {
	*v = debugCheckedShl(defaultRegistry, *v, other)
}

func (v *Int64) ShrAssign(other Int64) {
	*v = debugCheckedShr(defaultRegistry, *v, other)
}

func (v *Int64) Inc() {
	*v = debugCheckedAdd(defaultRegistry, *v, 1)
}

func (v *Int64) Dec() {
	*v = debugCheckedSub(defaultRegistry, *v, 1)
}

// Comparisons

func (v Int64) Less(other Num) bool {
	return v.Int64() < other.Int64()
}

func (v Int64) LessEqual(other Num) bool {
	return v.Int64() <= other.Int64()
}

func (v Int64) Greater(other Num) bool {
	return v.Int64() > other.Int64()
}

func (v Int64) GreaterEqual(other Num) bool {
	return v.Int64() >= other.Int64()
}

func (v Int64) Equal(other Num) bool {
	return v.Int64() == other.Int64()
}

// Conversions. Narrowing reports whether the value fit.

func (v Int64) ToInt8() (Int8, bool) {
	if !InRange[Int8](v) {
		return 0, false
	}
	return Int8(v), true
}

func (v Int64) ToInt16() (Int16, bool) {
	if !InRange[Int16](v) {
		return 0, false
	}
	return Int16(v), true
}

func (v Int64) ToInt32() (Int32, bool) {
	if !InRange[Int32](v) {
		return 0, false
	}
	return Int32(v), true
}

// Byte encoding

func (v Int64) ToBigEndianBytes() []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(v))
	return b
}

func (v Int64) ToLittleEndianBytes() []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, uint64(v))
	return b
}
