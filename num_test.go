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

func TestMixedWidthPromotion(t *testing.T) {

	t.Parallel()

	t.Run("result has the wider width", func(t *testing.T) {
		t.Parallel()

		result := Add(NewInt8(1), NewInt16(2))
		assert.Equal(t, NewInt16(3), result)
		assert.Equal(t, 16, result.BitSize())

		result = Mul(NewInt64(3), NewInt8(4))
		assert.Equal(t, NewInt64(12), result)
		assert.Equal(t, 64, result.BitSize())
	})

	t.Run("same width stays", func(t *testing.T) {
		t.Parallel()

		result := Sub(NewInt32(1), NewInt32(2))
		assert.Equal(t, NewInt32(-1), result)
	})

	t.Run("widening avoids narrow overflow", func(t *testing.T) {
		t.Parallel()

		// the 8-bit operand is promoted before the addition,
		// so the 16-bit range applies
		result := Add(MaxInt8, NewInt16(1))
		assert.Equal(t, NewInt16(128), result)
	})

	t.Run("overflow at the promoted width panics", func(t *testing.T) {
		t.Parallel()

		require.PanicsWithError(t, "overflow", func() {
			Add(MaxInt16, NewInt8(1))
		})
	})
}

func TestNumFamilies(t *testing.T) {

	t.Parallel()

	t.Run("wrapped", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, MinInt8, AddWrapped(MaxInt8, NewInt8(1)))
		assert.Equal(t, MaxInt8, SubWrapped(MinInt8, NewInt8(1)))
		assert.Equal(t, NewInt8(-24), MulWrapped(NewInt8(100), NewInt8(10)))
		assert.Equal(t, MinInt16, DivWrapped(MinInt16, NewInt16(-1)))
		assert.Equal(t, NewInt16(1), RemWrapped(NewInt16(7), NewInt16(3)))
	})

	t.Run("saturated", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, MaxInt8, AddSaturated(MaxInt8, NewInt8(1)))
		assert.Equal(t, MinInt8, SubSaturated(MinInt8, NewInt8(1)))
		assert.Equal(t, MinInt8, MulSaturated(NewInt8(100), NewInt8(-10)))
		assert.Equal(t, MaxInt16, DivSaturated(MinInt16, NewInt16(-1)))
		assert.Equal(t, NewInt16(0), RemSaturated(MinInt16, NewInt16(-1)))
	})

	t.Run("unchecked", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, MinInt8, AddUnchecked(MaxInt8, NewInt8(1)))
		assert.Equal(t, NewInt8(40), ShlUnchecked(NewInt8(5), NewInt8(3)))
		assert.Equal(t, NewInt8(5), ShrUnchecked(NewInt8(40), NewInt8(3)))
	})

	t.Run("checked shifts", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, NewInt8(40), Shl(NewInt8(5), NewInt8(3)))
		assert.Equal(t, NewInt8(5), Shr(NewInt8(40), NewInt8(3)))

		require.PanicsWithError(t, "overflow", func() {
			Shl(NewInt8(5), NewInt8(-1))
		})
	})
}

func TestNumBitwise(t *testing.T) {

	t.Parallel()

	assert.Equal(t, NewInt8(0b1110), BitOr(NewInt8(0b1010), NewInt8(0b0110)))
	assert.Equal(t, NewInt8(0b0010), BitAnd(NewInt8(0b1010), NewInt8(0b0110)))
	assert.Equal(t, NewInt8(0b1100), BitXor(NewInt8(0b1010), NewInt8(0b0110)))
	assert.Equal(t, NewInt8(-1), BitNot(NewInt8(0)))
	assert.Equal(t, NewInt64(-1), BitNot(NewInt64(0)))

	// bitwise operations promote like arithmetic:
	// the negative 8-bit operand sign-extends into the wider width
	assert.Equal(t, NewInt16(-1), BitOr(NewInt8(-1), NewInt16(0)))
}

func TestNumNeg(t *testing.T) {

	t.Parallel()

	assert.Equal(t, NewInt8(-42), Neg(NewInt8(42)))
	assert.Equal(t, NewInt64(42), Neg(NewInt64(-42)))

	require.PanicsWithError(t, "overflow", func() {
		Neg(MinInt32)
	})
}

func TestNumLogical(t *testing.T) {

	t.Parallel()

	assert.True(t, And(NewInt8(1), NewInt64(-1)))
	assert.False(t, And(NewInt8(1), NewInt64(0)))
	assert.True(t, Or(NewInt8(0), NewInt64(1)))
	assert.False(t, Or(NewInt8(0), NewInt64(0)))
}

func TestNumCmp(t *testing.T) {

	t.Parallel()

	assert.Equal(t, -1, Cmp(NewInt8(-1), NewInt64(0)))
	assert.Equal(t, 1, Cmp(NewInt64(0), NewInt8(-1)))
	assert.Equal(t, 0, Cmp(NewInt8(-1), NewInt64(-1)))
	assert.Equal(t, -1, Cmp(MinInt64, MinInt8))
}
