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

import "fmt"

// OverflowError

// OverflowError is the error a checked operation panics with
// when the result is outside the representable range and
// no overflow handler is installed.
type OverflowError struct{}

func (e OverflowError) Error() string {
	return "overflow"
}

// DivisionByZeroError

// DivisionByZeroError is the error a checked division or remainder
// panics with for a zero divisor, and for MIN / -1 and MIN % -1
// (negating MIN overflows), when no divide-by-zero handler is installed.
type DivisionByZeroError struct{}

func (e DivisionByZeroError) Error() string {
	return "division by zero"
}

// InvalidLiteralError

// InvalidLiteralError is returned by Parse for a malformed
// or out-of-range integer literal.
type InvalidLiteralError struct {
	Literal string
	Err     error
}

func (e InvalidLiteralError) Error() string {
	return fmt.Sprintf("invalid integer literal %q: %s", e.Literal, e.Err)
}

func (e InvalidLiteralError) Unwrap() error {
	return e.Err
}

// UnsupportedTagDecodingError

// UnsupportedTagDecodingError is returned when decoding
// a CBOR tag that does not identify one of the value types.
type UnsupportedTagDecodingError struct {
	Tag uint64
}

func (e UnsupportedTagDecodingError) Error() string {
	return fmt.Sprintf(
		"unsupported decoded tag: %d",
		e.Tag,
	)
}
