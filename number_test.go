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
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestWrappedArithmeticProperties(t *testing.T) {

	t.Parallel()

	properties := gopter.NewProperties(nil)

	properties.Property("addition is the truncated exact sum", prop.ForAll(
		func(a, b int8) bool {
			return wrappedAdd(Int8(a), Int8(b)) ==
				Int8(int64(a)+int64(b))
		},
		gen.Int8(),
		gen.Int8(),
	))

	properties.Property("subtraction is the truncated exact difference", prop.ForAll(
		func(a, b int16) bool {
			return wrappedSub(Int16(a), Int16(b)) ==
				Int16(int64(a)-int64(b))
		},
		gen.Int16(),
		gen.Int16(),
	))

	properties.Property("multiplication is the truncated exact product", prop.ForAll(
		func(a, b int32) bool {
			return wrappedMul(Int32(a), Int32(b)) ==
				Int32(int64(a)*int64(b))
		},
		gen.Int32(),
		gen.Int32(),
	))

	properties.TestingRun(t)
}

func TestCheckedFallbackMatchesWrapped(t *testing.T) {

	t.Parallel()

	// with a non-panicking handler installed, the checked family
	// produces the same bit pattern as the wrapped family

	properties := gopter.NewProperties(nil)

	properties.Property("add", prop.ForAll(
		func(a, b int8) bool {
			registry, _ := newRecordingRegistry()
			return checkedAdd(registry, Int8(a), Int8(b)) ==
				wrappedAdd(Int8(a), Int8(b))
		},
		gen.Int8(),
		gen.Int8(),
	))

	properties.Property("sub", prop.ForAll(
		func(a, b int8) bool {
			registry, _ := newRecordingRegistry()
			return checkedSub(registry, Int8(a), Int8(b)) ==
				wrappedSub(Int8(a), Int8(b))
		},
		gen.Int8(),
		gen.Int8(),
	))

	properties.Property("mul", prop.ForAll(
		func(a, b int8) bool {
			registry, _ := newRecordingRegistry()
			return checkedMul(registry, Int8(a), Int8(b)) ==
				wrappedMul(Int8(a), Int8(b))
		},
		gen.Int8(),
		gen.Int8(),
	))

	properties.TestingRun(t)
}

func TestSaturatedArithmeticProperties(t *testing.T) {

	t.Parallel()

	properties := gopter.NewProperties(nil)

	clamp := func(v int64) Int8 {
		if v > int64(MaxInt8) {
			return MaxInt8
		}
		if v < int64(MinInt8) {
			return MinInt8
		}
		return Int8(v)
	}

	properties.Property("addition clamps the exact sum", prop.ForAll(
		func(a, b int8) bool {
			return satAdd(Int8(a), Int8(b)) == clamp(int64(a)+int64(b))
		},
		gen.Int8(),
		gen.Int8(),
	))

	properties.Property("subtraction clamps the exact difference", prop.ForAll(
		func(a, b int8) bool {
			return satSub(Int8(a), Int8(b)) == clamp(int64(a)-int64(b))
		},
		gen.Int8(),
		gen.Int8(),
	))

	properties.Property("multiplication clamps the exact product", prop.ForAll(
		func(a, b int8) bool {
			return satMul(Int8(a), Int8(b)) == clamp(int64(a)*int64(b))
		},
		gen.Int8(),
		gen.Int8(),
	))

	properties.TestingRun(t)
}

func TestRotationProperties(t *testing.T) {

	t.Parallel()

	properties := gopter.NewProperties(nil)

	properties.Property("rotate left then right is the identity", prop.ForAll(
		func(v int16, n uint8) bool {
			registry, events := newRecordingRegistry()
			amount := int(n)
			rotated := rotateLeft(registry, Int16(v), amount)
			return rotateRight(registry, rotated, amount) == Int16(v) &&
				len(*events) == 0
		},
		gen.Int16(),
		gen.UInt8(),
	))

	properties.Property("rotation by the width is the identity", prop.ForAll(
		func(v int16) bool {
			registry, _ := newRecordingRegistry()
			return rotateLeft(registry, Int16(v), 16) == Int16(v)
		},
		gen.Int16(),
	))

	properties.Property("bit reversal is an involution", prop.ForAll(
		func(v int32) bool {
			return reverseBits(reverseBits(Int32(v))) == Int32(v)
		},
		gen.Int32(),
	))

	properties.TestingRun(t)
}

func TestComparisonProperties(t *testing.T) {

	t.Parallel()

	properties := gopter.NewProperties(nil)

	properties.Property("signed comparison matches widening", prop.ForAll(
		func(a int8, b int64) bool {
			return CmpLess(a, b) == (int64(a) < b)
		},
		gen.Int8(),
		gen.Int64(),
	))

	properties.Property("negative signed is below every unsigned", prop.ForAll(
		func(a int8, b uint64) bool {
			if a >= 0 {
				return true
			}
			return CmpLess(a, b) && !CmpGreaterEqual(a, b)
		},
		gen.Int8(),
		gen.UInt64(),
	))

	properties.Property("Cmp is consistent with the comparison methods", prop.ForAll(
		func(a int8, b int64) bool {
			x := NewInt8(a)
			y := NewInt64(b)
			switch Cmp(x, y) {
			case -1:
				return x.Less(y)
			case 1:
				return x.Greater(y)
			default:
				return x.Equal(y)
			}
		},
		gen.Int8(),
		gen.Int64(),
	))

	properties.TestingRun(t)
}

func TestParseFormatRoundTrip(t *testing.T) {

	t.Parallel()

	properties := gopter.NewProperties(nil)

	properties.Property("parse inverts format at each width", prop.ForAll(
		func(v int64) bool {
			for _, suffix := range []string{"i8", "i16", "i32", "i64"} {
				var value Num
				switch suffix {
				case "i8":
					value = NewInt8(int8(v))
				case "i16":
					value = NewInt16(int16(v))
				case "i32":
					value = NewInt32(int32(v))
				default:
					value = NewInt64(v)
				}

				parsed, err := Parse(value.String() + suffix)
				if err != nil || parsed != value {
					return false
				}
			}
			return true
		},
		gen.Int64(),
	))

	properties.TestingRun(t)
}

func TestByteRoundTripProperties(t *testing.T) {

	t.Parallel()

	properties := gopter.NewProperties(nil)

	properties.Property("big-endian bytes round-trip", prop.ForAll(
		func(v int64) bool {
			value := NewInt64(v)
			decoded, err := Int64FromBigEndianBytes(value.ToBigEndianBytes())
			return err == nil && decoded == value
		},
		gen.Int64(),
	))

	properties.Property("little-endian bytes round-trip", prop.ForAll(
		func(v int32) bool {
			value := NewInt32(v)
			decoded, err := Int32FromLittleEndianBytes(value.ToLittleEndianBytes())
			return err == nil && decoded == value
		},
		gen.Int32(),
	))

	properties.TestingRun(t)
}
