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
	"strconv"
	"strings"
)

// literal suffixes, longest first, so that "i16" is not
// mistaken for "i8" by prefix
var literalSuffixes = []struct {
	text    string
	bitSize int
}{
	{"i16", 16},
	{"i32", 32},
	{"i64", 64},
	{"i8", 8},
}

// Parse parses an integer literal with an optional width suffix
// (i8, i16, i32, i64), e.g. "127i8", "-0x80_i8", "0b1010i16", "42".
// An optional underscore may separate the digits from the suffix.
// Without a suffix the literal is parsed at the 64-bit width.
// Decimal, binary (0b), octal (0o), and hexadecimal (0x) literals are
// accepted, following Go literal syntax. An out-of-range literal is an
// InvalidLiteralError wrapping strconv.ErrRange.
func Parse(s string) (Num, error) {
	digits := s
	bitSize := 64

	for _, suffix := range literalSuffixes {
		if !strings.HasSuffix(digits, suffix.text) {
			continue
		}
		digits = strings.TrimSuffix(digits, suffix.text)
		digits = strings.TrimSuffix(digits, "_")
		bitSize = suffix.bitSize
		break
	}

	v, err := strconv.ParseInt(digits, 0, bitSize)
	if err != nil {
		return nil, InvalidLiteralError{
			Literal: s,
			Err:     err,
		}
	}

	switch bitSize {
	case 8:
		return NewInt8(int8(v)), nil
	case 16:
		return NewInt16(int16(v)), nil
	case 32:
		return NewInt32(int32(v)), nil
	default:
		return NewInt64(v), nil
	}
}
