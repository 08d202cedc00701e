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

// InRange reports whether v is representable in To.
func InRange[To SignedInteger, From Integer](v From) bool {
	return CmpGreaterEqual(v, minOf[To]()) &&
		CmpLessEqual(v, maxOf[To]())
}

func convertChecked[To SignedInteger, From Integer](r *Registry, v From) To {
	if !InRange[To](v) {
		r.ReportOverflow()
	}
	return To(v)
}

// Convert converts any native integer value to To, reporting overflow
// through the default registry when the value does not fit. The fallback
// result is the truncated bit pattern.
func Convert[To SignedInteger, From Integer](v From) To {
	return convertChecked[To](defaultRegistry, v)
}

// Truncate converts any native integer value to To with no validation,
// keeping the low bits. Caller-asserted safety.
func Truncate[To SignedInteger, From Integer](v From) To {
	return To(v)
}

// Checked construction from any native integer value.
// Reports overflow through the default registry if the value
// does not fit the width.

func NewInt8From[T Integer](v T) Int8 {
	return convertChecked[Int8](defaultRegistry, v)
}

func NewInt16From[T Integer](v T) Int16 {
	return convertChecked[Int16](defaultRegistry, v)
}

func NewInt32From[T Integer](v T) Int32 {
	return convertChecked[Int32](defaultRegistry, v)
}

func NewInt64From[T Integer](v T) Int64 {
	return convertChecked[Int64](defaultRegistry, v)
}

// Checked narrowing from any value to each width.
// Widening is always safe and never reports.

// ConvertInt8 converts a value of any width to Int8,
// reporting overflow if it does not fit.
func ConvertInt8(v Num) Int8 {
	return convertChecked[Int8](defaultRegistry, v.Int64())
}

// ConvertInt16 converts a value of any width to Int16,
// reporting overflow if it does not fit.
func ConvertInt16(v Num) Int16 {
	return convertChecked[Int16](defaultRegistry, v.Int64())
}

// ConvertInt32 converts a value of any width to Int32,
// reporting overflow if it does not fit.
func ConvertInt32(v Num) Int32 {
	return convertChecked[Int32](defaultRegistry, v.Int64())
}

// ConvertInt64 converts a value of any width to Int64. Always safe.
func ConvertInt64(v Num) Int64 {
	return Int64(v.Int64())
}

// TruncateInt8 reinterprets the low 8 bits of v with no validation.
func TruncateInt8(v Num) Int8 {
	return Int8(v.Int64())
}

// TruncateInt16 reinterprets the low 16 bits of v with no validation.
func TruncateInt16(v Num) Int16 {
	return Int16(v.Int64())
}

// TruncateInt32 reinterprets the low 32 bits of v with no validation.
func TruncateInt32(v Num) Int32 {
	return Int32(v.Int64())
}

// TruncateInt64 is the identity at the widest width.
func TruncateInt64(v Num) Int64 {
	return Int64(v.Int64())
}
