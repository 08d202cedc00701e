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
	"fmt"
)

// InvalidByteLengthError is returned when constructing a value from a
// byte slice longer than the value's width.
type InvalidByteLengthError struct {
	Length   int
	Expected int
}

func (e InvalidByteLengthError) Error() string {
	return fmt.Sprintf(
		"invalid byte length: got %d, expected max %d",
		e.Length,
		e.Expected,
	)
}

// padWithZeroes grows b to expectedLen by prepending zero bytes
// (big-endian padding).
func padWithZeroes(b []byte, expectedLen int) []byte {
	l := len(b)
	if l == expectedLen {
		return b
	}

	res := make([]byte, expectedLen)
	copy(res[expectedLen-l:], b)
	return res
}

// padWithZeroesLE grows b to expectedLen by appending zero bytes
// (little-endian padding).
func padWithZeroesLE(b []byte, expectedLen int) []byte {
	l := len(b)
	if l == expectedLen {
		return b
	}

	res := make([]byte, expectedLen)
	copy(res, b)
	return res
}

func Int8FromBigEndianBytes(b []byte) (Int8, error) {
	if len(b) > 1 {
		return 0, InvalidByteLengthError{Length: len(b), Expected: 1}
	}
	b = padWithZeroes(b, 1)
	return Int8(b[0]), nil
}

func Int8FromLittleEndianBytes(b []byte) (Int8, error) {
	if len(b) > 1 {
		return 0, InvalidByteLengthError{Length: len(b), Expected: 1}
	}
	b = padWithZeroesLE(b, 1)
	return Int8(b[0]), nil
}

func Int16FromBigEndianBytes(b []byte) (Int16, error) {
	if len(b) > 2 {
		return 0, InvalidByteLengthError{Length: len(b), Expected: 2}
	}
	b = padWithZeroes(b, 2)
	return Int16(binary.BigEndian.Uint16(b)), nil
}

func Int16FromLittleEndianBytes(b []byte) (Int16, error) {
	if len(b) > 2 {
		return 0, InvalidByteLengthError{Length: len(b), Expected: 2}
	}
	b = padWithZeroesLE(b, 2)
	return Int16(binary.LittleEndian.Uint16(b)), nil
}

func Int32FromBigEndianBytes(b []byte) (Int32, error) {
	if len(b) > 4 {
		return 0, InvalidByteLengthError{Length: len(b), Expected: 4}
	}
	b = padWithZeroes(b, 4)
	return Int32(binary.BigEndian.Uint32(b)), nil
}

func Int32FromLittleEndianBytes(b []byte) (Int32, error) {
	if len(b) > 4 {
		return 0, InvalidByteLengthError{Length: len(b), Expected: 4}
	}
	b = padWithZeroesLE(b, 4)
	return Int32(binary.LittleEndian.Uint32(b)), nil
}

func Int64FromBigEndianBytes(b []byte) (Int64, error) {
	if len(b) > 8 {
		return 0, InvalidByteLengthError{Length: len(b), Expected: 8}
	}
	b = padWithZeroes(b, 8)
	return Int64(binary.BigEndian.Uint64(b)), nil
}

func Int64FromLittleEndianBytes(b []byte) (Int64, error) {
	if len(b) > 8 {
		return 0, InvalidByteLengthError{Length: len(b), Expected: 8}
	}
	b = padWithZeroesLE(b, 8)
	return Int64(binary.LittleEndian.Uint64(b)), nil
}
