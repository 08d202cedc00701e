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

// The checked family detects out-of-range results before computing them,
// reports through the registry, and then returns the two's-complement
// wrapped result as a fallback, so that a non-panicking handler lets
// execution continue. Go defines signed integer overflow as wraparound,
// so the fallback (and the entire wrapped family) is the native operation.

func checkedAdd[T SignedInteger](r *Registry, a, b T) T {
	// INT32-C
	if (b > 0 && a > maxOf[T]()-b) ||
		(b < 0 && a < minOf[T]()-b) {
		r.ReportOverflow()
	}
	return a + b
}

func checkedSub[T SignedInteger](r *Registry, a, b T) T {
	// INT32-C
	if (b > 0 && a < minOf[T]()+b) ||
		(b < 0 && a > maxOf[T]()+b) {
		r.ReportOverflow()
	}
	return a - b
}

func checkedMul[T SignedInteger](r *Registry, a, b T) T {
	// INT32-C
	if a > 0 {
		if b > 0 {
			// positive * positive = positive. overflow?
			if a > maxOf[T]()/b {
				r.ReportOverflow()
			}
		} else {
			// positive * negative = negative. overflow?
			if b < minOf[T]()/a {
				r.ReportOverflow()
			}
		}
	} else {
		if b > 0 {
			// negative * positive = negative. overflow?
			if a < minOf[T]()/b {
				r.ReportOverflow()
			}
		} else {
			// negative * negative = positive. overflow?
			if a != 0 && b < maxOf[T]()/a {
				r.ReportOverflow()
			}
		}
	}
	return a * b
}

func checkedDiv[T SignedInteger](r *Registry, a, b T) T {
	// INT33-C
	if b == 0 {
		r.ReportDivideByZero()
		return 0
	}
	// negating MIN overflows, so MIN / -1 is reported
	// as a divide-by-zero event
	if a == minOf[T]() && b == -1 {
		r.ReportDivideByZero()
		return a
	}
	return a / b
}

func checkedRem[T SignedInteger](r *Registry, a, b T) T {
	// INT33-C
	if b == 0 {
		r.ReportDivideByZero()
		return 0
	}
	if a == minOf[T]() && b == -1 {
		r.ReportDivideByZero()
		return 0
	}
	return a % b
}

func checkedNeg[T SignedInteger](r *Registry, a T) T {
	// INT32-C
	if a == minOf[T]() {
		r.ReportOverflow()
	}
	return -a
}

// checkedShl treats a negative shift amount, or an amount of at least the
// bit width, as overflow. The fallback for an oversized amount is the
// native shift (all bits shifted out).
func checkedShl[T SignedInteger](r *Registry, a, b T) T {
	if b < 0 {
		r.ReportOverflow()
		return a
	}
	if int64(b) >= int64(bitSize[T]()) {
		r.ReportOverflow()
	}
	return a << b
}

func checkedShr[T SignedInteger](r *Registry, a, b T) T {
	if b < 0 {
		r.ReportOverflow()
		return a
	}
	if int64(b) >= int64(bitSize[T]()) {
		r.ReportOverflow()
	}
	return a >> b
}

// Wrapped family: results modulo 2^W, always silent.
// A zero divisor has no wraparound semantics and is still reported.

func wrappedAdd[T SignedInteger](a, b T) T {
	return a + b
}

func wrappedSub[T SignedInteger](a, b T) T {
	return a - b
}

func wrappedMul[T SignedInteger](a, b T) T {
	return a * b
}

func wrappedDiv[T SignedInteger](r *Registry, a, b T) T {
	if b == 0 {
		r.ReportDivideByZero()
		return 0
	}
	if a == minOf[T]() && b == -1 {
		return a
	}
	return a / b
}

func wrappedRem[T SignedInteger](r *Registry, a, b T) T {
	if b == 0 {
		r.ReportDivideByZero()
		return 0
	}
	return a % b
}

func wrappedNeg[T SignedInteger](a T) T {
	return wrappedMul(a, T(-1))
}

// Saturated family: clamps to the representable range in the
// mathematically correct direction, silently.

func satAdd[T SignedInteger](a, b T) T {
	// INT32-C
	if b > 0 && a > maxOf[T]()-b {
		return maxOf[T]()
	}
	if b < 0 && a < minOf[T]()-b {
		return minOf[T]()
	}
	return a + b
}

func satSub[T SignedInteger](a, b T) T {
	// INT32-C
	if b > 0 && a < minOf[T]()+b {
		return minOf[T]()
	}
	if b < 0 && a > maxOf[T]()+b {
		return maxOf[T]()
	}
	return a - b
}

func satMul[T SignedInteger](a, b T) T {
	// INT32-C
	if a > 0 {
		if b > 0 {
			if a > maxOf[T]()/b {
				return maxOf[T]()
			}
		} else {
			if b < minOf[T]()/a {
				return minOf[T]()
			}
		}
	} else {
		if b > 0 {
			if a < minOf[T]()/b {
				return minOf[T]()
			}
		} else {
			if a != 0 && b < maxOf[T]()/a {
				return maxOf[T]()
			}
		}
	}
	return a * b
}

func satDiv[T SignedInteger](r *Registry, a, b T) T {
	if b == 0 {
		r.ReportDivideByZero()
		return 0
	}
	if a == minOf[T]() && b == -1 {
		return maxOf[T]()
	}
	return a / b
}

// satRem returns 0 for MIN % -1, the mathematically correct remainder.
func satRem[T SignedInteger](r *Registry, a, b T) T {
	if b == 0 {
		r.ReportDivideByZero()
		return 0
	}
	return a % b
}

func satNeg[T SignedInteger](a T) T {
	return satMul(a, T(-1))
}

// Unchecked family: the native operation with no validation.
// Overflow wraps on this architecture; division by zero is a runtime panic.

func uncheckedAdd[T SignedInteger](a, b T) T {
	return a + b
}

func uncheckedSub[T SignedInteger](a, b T) T {
	return a - b
}

func uncheckedMul[T SignedInteger](a, b T) T {
	return a * b
}

func uncheckedDiv[T SignedInteger](a, b T) T {
	return a / b
}

func uncheckedRem[T SignedInteger](a, b T) T {
	return a % b
}

func uncheckedNeg[T SignedInteger](a T) T {
	return -a
}

func uncheckedShl[T SignedInteger](a, b T) T {
	return a << b
}

func uncheckedShr[T SignedInteger](a, b T) T {
	return a >> b
}

// shlOverflowing masks the shift amount into [0, W) before shifting.
// A negative amount is reported as overflow and leaves the value unchanged.
func shlOverflowing[T SignedInteger](r *Registry, a T, n int) T {
	if n < 0 {
		r.ReportOverflow()
		return a
	}
	if n == 0 {
		return a
	}
	n &= bitSize[T]() - 1
	return a << n
}

func shrOverflowing[T SignedInteger](r *Registry, a T, n int) T {
	if n < 0 {
		r.ReportOverflow()
		return a
	}
	if n == 0 {
		return a
	}
	n &= bitSize[T]() - 1
	return a >> n
}

// Debug-checked family: identical detection to the checked family.
// Named separately to mark the call sites that feed the result back into
// the original storage (the mutating and increment/decrement forms),
// which always validate.

func debugCheckedAdd[T SignedInteger](r *Registry, a, b T) T {
	return checkedAdd(r, a, b)
}

func debugCheckedSub[T SignedInteger](r *Registry, a, b T) T {
	return checkedSub(r, a, b)
}

func debugCheckedMul[T SignedInteger](r *Registry, a, b T) T {
	return checkedMul(r, a, b)
}

func debugCheckedDiv[T SignedInteger](r *Registry, a, b T) T {
	return checkedDiv(r, a, b)
}

func debugCheckedRem[T SignedInteger](r *Registry, a, b T) T {
	return checkedRem(r, a, b)
}

func debugCheckedShl[T SignedInteger](r *Registry, a, b T) T {
	return checkedShl(r, a, b)
}

func debugCheckedShr[T SignedInteger](r *Registry, a, b T) T {
	return checkedShr(r, a, b)
}

func debugCheckedNeg[T SignedInteger](r *Registry, a T) T {
	return checkedNeg(r, a)
}
