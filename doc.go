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

// Package sint provides fixed-width signed integer types (Int8, Int16,
// Int32, Int64) with explicit overflow semantics.
//
// Every arithmetic operator is available in four families:
//
//   - checked: detects overflow and reports it through the handler
//     registry. With no handler installed, the operation panics with a
//     typed error (OverflowError or DivisionByZeroError). With a handler
//     installed, the handler is invoked and execution continues with the
//     two's-complement wrapped result.
//   - wrapped: two's-complement wraparound modulo 2^W, always silent.
//   - saturated: clamps to the minimum or maximum representable value.
//   - unchecked: the raw native operation, no validation.
//
// Binary operations between values of different widths promote both
// operands to the larger width before dispatching to the checked
// primitive, so combining an Int8 with an Int32 never truncates.
//
// Comparisons between any mix of the four widths and native Go integer
// types are sign-correct: a negative signed value always compares below
// any unsigned value, regardless of storage width.
package sint
