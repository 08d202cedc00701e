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

// Int16

type Int16 int16

var _ Num = Int16(0)

func NewInt16(v int16) Int16 {
	return Int16(v)
}

func (Int16) isNum() {}

func (Int16) BitSize() int {
	return 16
}

func (v Int16) Int64() int64 {
	return int64(v)
}

func (v Int16) Bool() bool {
	return v != 0
}

func (v Int16) String() string {
	return strconv.FormatInt(int64(v), 10)
}

// Addition

func (v Int16) AddChecked(other Int16) Int16 {
	return checkedAdd(defaultRegistry, v, other)
}

func (v Int16) AddWrapped(other Int16) Int16 {
	return wrappedAdd(v, other)
}

func (v Int16) AddSaturated(other Int16) Int16 {
	return satAdd(v, other)
}

func (v Int16) AddUnchecked(other Int16) Int16 {
	return uncheckedAdd(v, other)
}

// Subtraction

func (v Int16) SubChecked(other Int16) Int16 {
	return checkedSub(defaultRegistry, v, other)
}

func (v Int16) SubWrapped(other Int16) Int16 {
	return wrappedSub(v, other)
}

func (v Int16) SubSaturated(other Int16) Int16 {
	return satSub(v, other)
}

func (v Int16) SubUnchecked(other Int16) Int16 {
	return uncheckedSub(v, other)
}

// Multiplication

func (v Int16) MulChecked(other Int16) Int16 {
	return checkedMul(defaultRegistry, v, other)
}

func (v Int16) MulWrapped(other Int16) Int16 {
	return wrappedMul(v, other)
}

func (v Int16) MulSaturated(other Int16) Int16 {
	return satMul(v, other)
}

func (v Int16) MulUnchecked(other Int16) Int16 {
	return uncheckedMul(v, other)
}

// Division

func (v Int16) DivChecked(other Int16) Int16 {
	return checkedDiv(defaultRegistry, v, other)
}

func (v Int16) DivWrapped(other Int16) Int16 {
	return wrappedDiv(defaultRegistry, v, other)
}

func (v Int16) DivSaturated(other Int16) Int16 {
	return satDiv(defaultRegistry, v, other)
}

func (v Int16) DivUnchecked(other Int16) Int16 {
	return uncheckedDiv(v, other)
}

// Remainder

func (v Int16) RemChecked(other Int16) Int16 {
	return checkedRem(defaultRegistry, v, other)
}

func (v Int16) RemWrapped(other Int16) Int16 {
	return wrappedRem(defaultRegistry, v, other)
}

func (v Int16) RemSaturated(other Int16) Int16 {
	return satRem(defaultRegistry, v, other)
}

func (v Int16) RemUnchecked(other Int16) Int16 {
	return uncheckedRem(v, other)
}

// Negation

// Neg negates the value, validating that it is not MinInt16.
func (v Int16) Neg() Int16 {
	return debugCheckedNeg(defaultRegistry, v)
}

func (v Int16) NegChecked() Int16 {
	return checkedNeg(defaultRegistry, v)
}

func (v Int16) NegWrapped() Int16 {
	return wrappedNeg(v)
}

func (v Int16) NegSaturated() Int16 {
	return satNeg(v)
}

func (v Int16) NegUnchecked() Int16 {
	return uncheckedNeg(v)
}

// Shifts

func (v Int16) ShlChecked(other Int16) Int16 {
	return checkedShl(defaultRegistry, v, other)
}

func (v Int16) ShlOverflowing(n int) Int16 {
	return shlOverflowing(defaultRegistry, v, n)
}

func (v Int16) ShlUnchecked(other Int16) Int16 {
	return uncheckedShl(v, other)
}

func (v Int16) ShrChecked(other Int16) Int16 {
	return checkedShr(defaultRegistry, v, other)
}

func (v Int16) ShrOverflowing(n int) Int16 {
	return shrOverflowing(defaultRegistry, v, n)
}

func (v Int16) ShrUnchecked(other Int16) Int16 {
	return uncheckedShr(v, other)
}

// Bitwise operations

func (v Int16) BitOr(other Int16) Int16 {
	return v | other
}

func (v Int16) BitAnd(other Int16) Int16 {
	return v & other
}

func (v Int16) BitXor(other Int16) Int16 {
	return v ^ other
}

func (v Int16) BitNot() Int16 {
	return ^v
}

// Bit utilities

func (v Int16) RotateLeft(n int) Int16 {
	return rotateLeft(defaultRegistry, v, n)
}

func (v Int16) RotateRight(n int) Int16 {
	return rotateRight(defaultRegistry, v, n)
}

func (v Int16) ReverseBits() Int16 {
	return reverseBits(v)
}

func (v Int16) LeadingZeros() int {
	return leadingZeros(v)
}

func (v Int16) TrailingZeros() int {
	return trailingZeros(v)
}

// Mutating forms. These always validate, regardless of policy,
// since the result feeds back into the original storage.

func (v *Int16) AddAssign(other Int16) {
	*v = debugCheckedAdd(defaultRegistry, *v, other)
}

func (v *Int16) SubAssign(other Int16) {
	*v = debugCheckedSub(defaultRegistry, *v, other)
}

func (v *Int16) MulAssign(other Int16) {
	*v = debugCheckedMul(defaultRegistry, *v, other)
}

func (v *Int16) DivAssign(other Int16) {
	*v = debugCheckedDiv(defaultRegistry, *v, other)
}

func (v *Int16) RemAssign(other Int16) {
	*v = debugCheckedRem(defaultRegistry, *v, other)
}

func (v *Int16) ShlAssign(other Int16) {
	*v = debugCheckedShl(defaultRegistry, *v, other)
}

func (v *Int16) ShrAssign(other Int16) {
	*v = debugCheckedShr(defaultRegistry, *v, other)
}

func (v *Int16) Inc() {
	*v = debugCheckedAdd(defaultRegistry, *v, 1)
}

func (v *Int16) Dec() {
	*v = debugCheckedSub(defaultRegistry, *v, 1)
}

// Comparisons

func (v Int16) Less(other Num) bool {
	return v.Int64() < other.Int64()
}

func (v Int16) LessEqual(other Num) bool {
	return v.Int64() <= other.Int64()
}

func (v Int16) Greater(other Num) bool {
	return v.Int64() > other.Int64()
}

func (v Int16) GreaterEqual(other Num) bool {
	return v.Int64() >= other.Int64()
}

func (v Int16) Equal(other Num) bool {
	return v.Int64() == other.Int64()
}

// Conversions. Widening is always exact; narrowing reports
// whether the value fit.

func (v Int16) ToInt8() (Int8, bool) {
	if !InRange[Int8](v) {
		return 0, false
	}
	return Int8(v), true
}

func (v Int16) ToInt32() Int32 {
	return Int32(v)
}

func (v Int16) ToInt64() Int64 {
	return Int64(v)
}

// Byte encoding

func (v Int16) ToBigEndianBytes() []byte {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, uint16(v))
	return b
}

func (v Int16) ToLittleEndianBytes() []byte {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, uint16(v))
	return b
}
