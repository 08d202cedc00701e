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

import "strconv"

// Int8

type Int8 int8

var _ Num = Int8(0)

func NewInt8(v int8) Int8 {
	return Int8(v)
}

func (Int8) isNum() {}

func (Int8) BitSize() int {
	return 8
}

func (v Int8) Int64() int64 {
	return int64(v)
}

func (v Int8) Bool() bool {
	return v != 0
}

func (v Int8) String() string {
	return strconv.FormatInt(int64(v), 10)
}

// Addition

func (v Int8) AddChecked(other Int8) Int8 {
	return checkedAdd(defaultRegistry, v, other)
}

func (v Int8) AddWrapped(other Int8) Int8 {
	return wrappedAdd(v, other)
}

func (v Int8) AddSaturated(other Int8) Int8 {
	return satAdd(v, other)
}

func (v Int8) AddUnchecked(other Int8) Int8 {
	return uncheckedAdd(v, other)
}

// Subtraction

func (v Int8) SubChecked(other Int8) Int8 {
	return checkedSub(defaultRegistry, v, other)
}

func (v Int8) SubWrapped(other Int8) Int8 {
	return wrappedSub(v, other)
}

func (v Int8) SubSaturated(other Int8) Int8 {
	return satSub(v, other)
}

func (v Int8) SubUnchecked(other Int8) Int8 {
	return uncheckedSub(v, other)
}

// Multiplication

func (v Int8) MulChecked(other Int8) Int8 {
	return checkedMul(defaultRegistry, v, other)
}

func (v Int8) MulWrapped(other Int8) Int8 {
	return wrappedMul(v, other)
}

func (v Int8) MulSaturated(other Int8) Int8 {
	return satMul(v, other)
}

func (v Int8) MulUnchecked(other Int8) Int8 {
	return uncheckedMul(v, other)
}

// Division

func (v Int8) DivChecked(other Int8) Int8 {
	return checkedDiv(defaultRegistry, v, other)
}

func (v Int8) DivWrapped(other Int8) Int8 {
	return wrappedDiv(defaultRegistry, v, other)
}

func (v Int8) DivSaturated(other Int8) Int8 {
	return satDiv(defaultRegistry, v, other)
}

func (v Int8) DivUnchecked(other Int8) Int8 {
	return uncheckedDiv(v, other)
}

// Remainder

func (v Int8) RemChecked(other Int8) Int8 {
	return checkedRem(defaultRegistry, v, other)
}

func (v Int8) RemWrapped(other Int8) Int8 {
	return wrappedRem(defaultRegistry, v, other)
}

func (v Int8) RemSaturated(other Int8) Int8 {
	return satRem(defaultRegistry, v, other)
}

func (v Int8) RemUnchecked(other Int8) Int8 {
	return uncheckedRem(v, other)
}

// Negation

// Neg negates the value, validating that it is not MinInt8.
func (v Int8) Neg() Int8 {
	return debugCheckedNeg(defaultRegistry, v)
}

func (v Int8) NegChecked() Int8 {
	return checkedNeg(defaultRegistry, v)
}

func (v Int8) NegWrapped() Int8 {
	return wrappedNeg(v)
}

func (v Int8) NegSaturated() Int8 {
	return satNeg(v)
}

func (v Int8) NegUnchecked() Int8 {
	return uncheckedNeg(v)
}

// Shifts

func (v Int8) ShlChecked(other Int8) Int8 {
	return checkedShl(defaultRegistry, v, other)
}

func (v Int8) ShlOverflowing(n int) Int8 {
	return shlOverflowing(defaultRegistry, v, n)
}

func (v Int8) ShlUnchecked(other Int8) Int8 {
	return uncheckedShl(v, other)
}

func (v Int8) ShrChecked(other Int8) Int8 {
	return checkedShr(defaultRegistry, v, other)
}

func (v Int8) ShrOverflowing(n int) Int8 {
	return shrOverflowing(defaultRegistry, v, n)
}

func (v Int8) ShrUnchecked(other Int8) Int8 {
	return uncheckedShr(v, other)
}

// Bitwise operations

func (v Int8) BitOr(other Int8) Int8 {
	return v | other
}

func (v Int8) BitAnd(other Int8) Int8 {
	return v & other
}

func (v Int8) BitXor(other Int8) Int8 {
	return v ^ other
}

func (v Int8) BitNot() Int8 {
	return ^v
}

// Bit utilities

func (v Int8) RotateLeft(n int) Int8 {
	return rotateLeft(defaultRegistry, v, n)
}

func (v Int8) RotateRight(n int) Int8 {
	return rotateRight(defaultRegistry, v, n)
}

func (v Int8) ReverseBits() Int8 {
	return reverseBits(v)
}

func (v Int8) LeadingZeros() int {
	return leadingZeros(v)
}

func (v Int8) TrailingZeros() int {
	return trailingZeros(v)
}

// Mutating forms. These always validate, regardless of policy,
// since the result feeds back into the original storage.

func (v *Int8) AddAssign(other Int8) {
	*v = debugCheckedAdd(defaultRegistry, *v, other)
}

func (v *Int8) SubAssign(other Int8) {
	*v = debugCheckedSub(defaultRegistry, *v, other)
}

func (v *Int8) MulAssign(other Int8) {
	*v = debugCheckedMul(defaultRegistry, *v, other)
}

func (v *Int8) DivAssign(other Int8) {
	*v = debugCheckedDiv(defaultRegistry, *v, other)
}

func (v *Int8) RemAssign(other Int8) {
	*v = debugCheckedRem(defaultRegistry, *v, other)
}

func (v *Int8) ShlAssign(other Int8) {
	*v = debugCheckedShl(defaultRegistry, *v, other)
}

func (v *Int8) ShrAssign(other Int8) {
	*v = debugCheckedShr(defaultRegistry, *v, other)
}

func (v *Int8) Inc() {
	*v = debugCheckedAdd(defaultRegistry, *v, 1)
}

func (v *Int8) Dec() {
	*v = debugCheckedSub(defaultRegistry, *v, 1)
}

// Comparisons

func (v Int8) Less(other Num) bool {
	return v.Int64() < other.Int64()
}

func (v Int8) LessEqual(other Num) bool {
	return v.Int64() <= other.Int64()
}

func (v Int8) Greater(other Num) bool {
	return v.Int64() > other.Int64()
}

func (v Int8) GreaterEqual(other Num) bool {
	return v.Int64() >= other.Int64()
}

func (v Int8) Equal(other Num) bool {
	return v.Int64() == other.Int64()
}

// Widening conversions. Always exact, never report.

func (v Int8) ToInt16() Int16 {
	return Int16(v)
}

func (v Int8) ToInt32() Int32 {
	return Int32(v)
}

func (v Int8) ToInt64() Int64 {
	return Int64(v)
}

// Byte encoding

func (v Int8) ToBigEndianBytes() []byte {
	return []byte{byte(v)}
}

func (v Int8) ToLittleEndianBytes() []byte {
	return []byte{byte(v)}
}
