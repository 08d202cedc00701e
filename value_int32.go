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

// Int32

type Int32 int32

var _ Num = Int32(0)

func NewInt32(v int32) Int32 {
	return Int32(v)
}

func (Int32) isNum() {}

func (Int32) BitSize() int {
	return 32
}

func (v Int32) Int64() int64 {
	return int64(v)
}

func (v Int32) Bool() bool {
	return v != 0
}

func (v Int32) String() string {
	return strconv.FormatInt(int64(v), 10)
}

// Addition

func (v Int32) AddChecked(other Int32) Int32 {
	return checkedAdd(defaultRegistry, v, other)
}

func (v Int32) AddWrapped(other Int32) Int32 {
	return wrappedAdd(v, other)
}

func (v Int32) AddSaturated(other Int32) Int32 {
	return satAdd(v, other)
}

func (v Int32) AddUnchecked(other Int32) Int32 {
	return uncheckedAdd(v, other)
}

// Subtraction

func (v Int32) SubChecked(other Int32) Int32 {
	return checkedSub(defaultRegistry, v, other)
}

func (v Int32) SubWrapped(other Int32) Int32 {
	return wrappedSub(v, other)
}

func (v Int32) SubSaturated(other Int32) Int32 {
	return satSub(v, other)
}

func (v Int32) SubUnchecked(other Int32) Int32 {
	return uncheckedSub(v, other)
}

// Multiplication

func (v Int32) MulChecked(other Int32) Int32 {
	return checkedMul(defaultRegistry, v, other)
}

func (v Int32) MulWrapped(other Int32) Int32 {
	return wrappedMul(v, other)
}

func (v Int32) MulSaturated(other Int32) Int32 {
	return satMul(v, other)
}

func (v Int32) MulUnchecked(other Int32) Int32 {
	return uncheckedMul(v, other)
}

// Division

func (v Int32) DivChecked(other Int32) Int32 {
	return checkedDiv(defaultRegistry, v, other)
}

func (v Int32) DivWrapped(other Int32) Int32 {
	return wrappedDiv(defaultRegistry, v, other)
}

func (v Int32) DivSaturated(other Int32) Int32 {
	return satDiv(defaultRegistry, v, other)
}

func (v Int32) DivUnchecked(other Int32) Int32 {
	return uncheckedDiv(v, other)
}

// Remainder

func (v Int32) RemChecked(other Int32) Int32 {
	return checkedRem(defaultRegistry, v, other)
}

func (v Int32) RemWrapped(other Int32) Int32 {
	return wrappedRem(defaultRegistry, v, other)
}

func (v Int32) RemSaturated(other Int32) Int32 {
	return satRem(defaultRegistry, v, other)
}

func (v Int32) RemUnchecked(other Int32) Int32 {
	return uncheckedRem(v, other)
}

// Negation

// Neg negates the value, validating that it is not MinInt32.
func (v Int32) Neg() Int32 {
	return debugCheckedNeg(defaultRegistry, v)
}

func (v Int32) NegChecked() Int32 {
	return checkedNeg(defaultRegistry, v)
}

func (v Int32) NegWrapped() Int32 {
	return wrappedNeg(v)
}

func (v Int32) NegSaturated() Int32 {
	return satNeg(v)
}

func (v Int32) NegUnchecked() Int32 {
	return uncheckedNeg(v)
}

// Shifts

func (v Int32) ShlChecked(other Int32) Int32 {
	return checkedShl(defaultRegistry, v, other)
}

func (v Int32) ShlOverflowing(n int) Int32 {
	return shlOverflowing(defaultRegistry, v, n)
}

func (v Int32) ShlUnchecked(other Int32) Int32 {
	return uncheckedShl(v, other)
}

func (v Int32) ShrChecked(other Int32) Int32 {
	return checkedShr(defaultRegistry, v, other)
}

func (v Int32) ShrOverflowing(n int) Int32 {
	return shrOverflowing(defaultRegistry, v, n)
}

func (v Int32) ShrUnchecked(other Int32) Int32 {
	return uncheckedShr(v, other)
}

// Bitwise operations

func (v Int32) BitOr(other Int32) Int32 {
	return v | other
}

func (v Int32) BitAnd(other Int32) Int32 {
	return v & other
}

func (v Int32) BitXor(other Int32) Int32 {
	return v ^ other
}

func (v Int32) BitNot() Int32 {
	return ^v
}

// Bit utilities

func (v Int32) RotateLeft(n int) Int32 {
	return rotateLeft(defaultRegistry, v, n)
}

func (v Int32) RotateRight(n int) Int32 {
	return rotateRight(defaultRegistry, v, n)
}

func (v Int32) ReverseBits() Int32 {
	return reverseBits(v)
}

func (v Int32) LeadingZeros() int {
	return leadingZeros(v)
}

func (v Int32) TrailingZeros() int {
	return trailingZeros(v)
}

// Mutating forms. These always validate, regardless of policy,
// since the result feeds back into the original storage.

func (v *Int32) AddAssign(other Int32) {
	*v = debugCheckedAdd(defaultRegistry, *v, other)
}

func (v *Int32) SubAssign(other Int32) {
	*v = debugCheckedSub(defaultRegistry, *v, other)
}

func (v *Int32) MulAssign(other Int32) {
	*v = debugCheckedMul(defaultRegistry, *v, other)
}

func (v *Int32) DivAssign(other Int32) {
	*v = debugCheckedDiv(defaultRegistry, *v, other)
}

func (v *Int32) RemAssign(other Int32) {
	*v = debugCheckedRem(defaultRegistry, *v, other)
}

func (v *Int32) ShlAssign(other Int32) {
	*v = debugCheckedShl(defaultRegistry, *v, other)
}

func (v *Int32) ShrAssign(other Int32) {
	*v = debugCheckedShr(defaultRegistry, *v, other)
}

func (v *Int32) Inc() {
	*v = debugCheckedAdd(defaultRegistry, *v, 1)
}

func (v *Int32) Dec() {
	*v = debugCheckedSub(defaultRegistry, *v, 1)
}

// Comparisons

func (v Int32) Less(other Num) bool {
	return v.Int64() < other.Int64()
}

func (v Int32) LessEqual(other Num) bool {
	return v.Int64() <= other.Int64()
}

func (v Int32) Greater(other Num) bool {
	return v.Int64() > other.Int64()
}

func (v Int32) GreaterEqual(other Num) bool {
	return v.Int64() >= other.Int64()
}

func (v Int32) Equal(other Num) bool {
	return v.Int64() == other.Int64()
}

// Conversions. Widening is always exact; narrowing reports
// whether the value fit.

func (v Int32) ToInt8() (Int8, bool) {
	if !InRange[Int8](v) {
		return 0, false
	}
	return Int8(v), true
}

func (v Int32) ToInt16() (Int16, bool) {
	if !InRange[Int16](v) {
		return 0, false
	}
	return Int16(v), true
}

func (v Int32) ToInt64() Int64 {
	return Int64(v)
}

// Byte encoding

func (v Int32) ToBigEndianBytes() []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, uint32(v))
	return b
}

func (v Int32) ToLittleEndianBytes() []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, uint32(v))
	return b
}
