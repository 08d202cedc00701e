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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueBasics(t *testing.T) {

	t.Parallel()

	for _, tc := range []struct {
		value    Num
		bitSize  int
		str      string
		int64Val int64
	}{
		{NewInt8(-42), 8, "-42", -42},
		{NewInt16(-30000), 16, "-30000", -30000},
		{NewInt32(1 << 30), 32, "1073741824", 1 << 30},
		{MinInt64, 64, "-9223372036854775808", -9223372036854775808},
	} {
		assert.Equal(t, tc.bitSize, tc.value.BitSize())
		assert.Equal(t, tc.str, tc.value.String())
		assert.Equal(t, tc.int64Val, tc.value.Int64())
		assert.True(t, tc.value.Bool())
	}

	assert.False(t, NewInt8(0).Bool())
}

func TestValueNeg(t *testing.T) {

	t.Parallel()

	assert.Equal(t, Int8(-42), NewInt8(42).Neg())
	assert.Equal(t, Int8(42), NewInt8(-42).Neg())

	require.PanicsWithError(t, "overflow", func() {
		MinInt8.Neg()
	})

	assert.Equal(t, MinInt8, MinInt8.NegWrapped())
	assert.Equal(t, MaxInt8, MinInt8.NegSaturated())
	assert.Equal(t, MinInt8, MinInt8.NegUnchecked())
}

func TestValueBitwise(t *testing.T) {

	t.Parallel()

	assert.Equal(t, Int8(0b1110), NewInt8(0b1010).BitOr(0b0110))
	assert.Equal(t, Int8(0b0010), NewInt8(0b1010).BitAnd(0b0110))
	assert.Equal(t, Int8(0b1100), NewInt8(0b1010).BitXor(0b0110))
	assert.Equal(t, Int8(-1), NewInt8(0).BitNot())
	assert.Equal(t, MinInt8, MaxInt8.BitNot())
}

func TestValueMutatingForms(t *testing.T) {

	t.Parallel()

	t.Run("in range", func(t *testing.T) {
		t.Parallel()

		v := NewInt8(10)
		v.AddAssign(5)
		assert.Equal(t, Int8(15), v)
		v.SubAssign(20)
		assert.Equal(t, Int8(-5), v)
		v.MulAssign(-4)
		assert.Equal(t, Int8(20), v)
		v.DivAssign(3)
		assert.Equal(t, Int8(6), v)
		v.RemAssign(4)
		assert.Equal(t, Int8(2), v)
		v.ShlAssign(3)
		assert.Equal(t, Int8(16), v)
		v.ShrAssign(1)
		assert.Equal(t, Int8(8), v)
		v.Inc()
		assert.Equal(t, Int8(9), v)
		v.Dec()
		assert.Equal(t, Int8(8), v)
	})

	t.Run("always validate", func(t *testing.T) {
		t.Parallel()

		require.PanicsWithError(t, "overflow", func() {
			v := MaxInt8
			v.Inc()
		})

		require.PanicsWithError(t, "overflow", func() {
			v := MinInt8
			v.Dec()
		})

		require.PanicsWithError(t, "division by zero", func() {
			v := NewInt8(1)
			v.DivAssign(0)
		})
	})
}

func TestValueComparisons(t *testing.T) {

	t.Parallel()

	// comparisons promote through Int64, so mixed widths are exact
	assert.True(t, NewInt8(-1).Less(NewInt64(0)))
	assert.True(t, NewInt64(0).Greater(NewInt8(-1)))
	assert.True(t, NewInt8(-1).Equal(NewInt64(-1)))
	assert.True(t, NewInt16(100).LessEqual(NewInt16(100)))
	assert.True(t, NewInt16(100).GreaterEqual(NewInt8(100)))
	assert.False(t, MinInt64.GreaterEqual(MinInt8))
}

func TestValueWidening(t *testing.T) {

	t.Parallel()

	assert.Equal(t, Int16(-128), MinInt8.ToInt16())
	assert.Equal(t, Int32(-128), MinInt8.ToInt32())
	assert.Equal(t, Int64(-128), MinInt8.ToInt64())
	assert.Equal(t, Int64(-32768), MinInt16.ToInt64())
	assert.Equal(t, Int64(1<<31-1), MaxInt32.ToInt64())
}

func TestValueNarrowing(t *testing.T) {

	t.Parallel()

	t.Run("in range", func(t *testing.T) {
		t.Parallel()

		v, ok := NewInt16(127).ToInt8()
		require.True(t, ok)
		assert.Equal(t, Int8(127), v)

		w, ok := NewInt64(-32768).ToInt16()
		require.True(t, ok)
		assert.Equal(t, MinInt16, w)
	})

	t.Run("out of range", func(t *testing.T) {
		t.Parallel()

		_, ok := NewInt16(128).ToInt8()
		assert.False(t, ok)

		_, ok = NewInt64(1 << 31).ToInt32()
		assert.False(t, ok)

		_, ok = NewInt32(-129).ToInt8()
		assert.False(t, ok)
	})
}

func TestValueShifts(t *testing.T) {

	t.Parallel()

	assert.Equal(t, Int8(40), NewInt8(5).ShlUnchecked(3))
	assert.Equal(t, Int8(5), NewInt8(40).ShrUnchecked(3))

	// the overflowing forms mask the amount to the width
	assert.Equal(t, Int8(10), NewInt8(5).ShlOverflowing(9))
	assert.Equal(t, Int8(2), NewInt8(5).ShrOverflowing(9))

	require.PanicsWithError(t, "overflow", func() {
		NewInt8(5).ShlChecked(8)
	})
}
