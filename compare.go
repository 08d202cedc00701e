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

// Sign-correct comparison between any two integer types, following the
// semantics of C++20's std::cmp_* functions: a negative signed value
// compares below every unsigned value, it is never sign-extended into the
// unsigned domain. The value types satisfy Signed, so they can be compared
// directly against native Go integers of any width and signedness.

// CmpEqual reports whether a == b, with both values interpreted
// mathematically.
func CmpEqual[L, R Integer](a L, b R) bool {
	aNeg := a < 0
	bNeg := b < 0
	if aNeg != bNeg {
		return false
	}
	if aNeg {
		return int64(a) == int64(b)
	}
	return uint64(a) == uint64(b)
}

// CmpNotEqual reports whether a != b.
func CmpNotEqual[L, R Integer](a L, b R) bool {
	return !CmpEqual(a, b)
}

// CmpLess reports whether a < b, with both values interpreted
// mathematically.
func CmpLess[L, R Integer](a L, b R) bool {
	aNeg := a < 0
	bNeg := b < 0
	switch {
	case aNeg && !bNeg:
		return true
	case !aNeg && bNeg:
		return false
	case aNeg:
		return int64(a) < int64(b)
	default:
		return uint64(a) < uint64(b)
	}
}

// CmpLessEqual reports whether a <= b.
func CmpLessEqual[L, R Integer](a L, b R) bool {
	return !CmpLess(b, a)
}

// CmpGreater reports whether a > b.
func CmpGreater[L, R Integer](a L, b R) bool {
	return CmpLess(b, a)
}

// CmpGreaterEqual reports whether a >= b.
func CmpGreaterEqual[L, R Integer](a L, b R) bool {
	return !CmpLess(a, b)
}
