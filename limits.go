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
	"math"
	"unsafe"
)

// SignedInteger is the closed set of native storage types
// backing the value types.
type SignedInteger interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// Signed is any native signed integer type.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is any native unsigned integer type.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is any native integer type, signed or unsigned.
type Integer interface {
	Signed | Unsigned
}

// bitSize returns the width of T in bits.
func bitSize[T SignedInteger]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// nativeBits returns the width of any native integer type in bits.
func nativeBits[T Integer]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// maxOf returns the largest value representable in T.
func maxOf[T SignedInteger]() T {
	// computed in the uint64 domain, the result is always in range for T
	return T(uint64(1)<<(bitSize[T]()-1) - 1)
}

// minOf returns the smallest value representable in T.
func minOf[T SignedInteger]() T {
	return -maxOf[T]() - 1
}

// Representable bounds per width, as typed constants.
const (
	MinInt8 Int8 = math.MinInt8
	MaxInt8 Int8 = math.MaxInt8

	MinInt16 Int16 = math.MinInt16
	MaxInt16 Int16 = math.MaxInt16

	MinInt32 Int32 = math.MinInt32
	MaxInt32 Int32 = math.MaxInt32

	MinInt64 Int64 = math.MinInt64
	MaxInt64 Int64 = math.MaxInt64
)
