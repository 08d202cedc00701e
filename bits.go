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

import "math/bits"

// widthMask returns a uint64 with the low W bits set.
func widthMask[T SignedInteger]() uint64 {
	return ^uint64(0) >> (64 - bitSize[T]())
}

// unsignedBits returns the two's-complement bit pattern of v
// in the low W bits of a uint64.
func unsignedBits[T SignedInteger](v T) uint64 {
	return uint64(v) & widthMask[T]()
}

// rotateLeft rotates the bit pattern left by n places. The rotation is
// composed of the two overflowing shifts, performed in the unsigned
// domain so that the right shift does not sign-extend.
func rotateLeft[T SignedInteger](r *Registry, v T, n int) T {
	if n < 0 {
		r.ReportOverflow()
		return v
	}
	w := bitSize[T]()
	n &= w - 1
	u := unsignedBits(v)
	return T((u<<n | u>>(w-n)) & widthMask[T]())
}

func rotateRight[T SignedInteger](r *Registry, v T, n int) T {
	if n < 0 {
		r.ReportOverflow()
		return v
	}
	w := bitSize[T]()
	n &= w - 1
	u := unsignedBits(v)
	return T((u>>n | u<<(w-n)) & widthMask[T]())
}

// reverseBits mirrors the bit pattern of v.
func reverseBits[T SignedInteger](v T) T {
	u := bits.Reverse64(unsignedBits(v)) >> (64 - bitSize[T]())
	return T(u)
}

// leadingZeros counts the zero bits above the most significant set bit.
func leadingZeros[T SignedInteger](v T) int {
	return bits.LeadingZeros64(unsignedBits(v)) - (64 - bitSize[T]())
}

// trailingZeros counts the zero bits below the least significant set bit.
// For a zero value the result is the bit width.
func trailingZeros[T SignedInteger](v T) int {
	u := unsignedBits(v)
	if u == 0 {
		return bitSize[T]()
	}
	return bits.TrailingZeros64(u)
}
