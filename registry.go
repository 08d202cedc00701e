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

import "sync/atomic"

// ErrorKind identifies the category of an arithmetic failure.
type ErrorKind uint8

const (
	ErrorKindOverflow ErrorKind = iota
	ErrorKindDivideByZero
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorKindOverflow:
		return "overflow"
	case ErrorKindDivideByZero:
		return "division by zero"
	}
	return "unknown"
}

// Handler is invoked by checked operations when they detect a failure.
// A handler may record the event and return normally, in which case the
// operation continues and produces its wrapped fallback value, or it may
// panic to abort.
type Handler func(ErrorKind)

// Registry holds at most one handler per error kind.
//
// Checked operations performed through the value types consult the
// process-wide default registry. Callers that need isolated disposition
// (e.g. test fixtures) can construct their own Registry and call the
// Report methods directly.
//
// Slots are read atomically, so arithmetic on multiple goroutines is safe
// against each other. Replacing a handler concurrently with arithmetic is
// a race on the slot: registration is expected to happen during
// single-threaded setup.
type Registry struct {
	overflow     atomic.Pointer[Handler]
	divideByZero atomic.Pointer[Handler]
}

func NewRegistry() *Registry {
	return &Registry{}
}

// RegisterOverflowHandler installs the handler for overflow events,
// replacing any previous one. A nil handler clears the slot,
// restoring the default panic behavior.
func (r *Registry) RegisterOverflowHandler(handler Handler) {
	if handler == nil {
		r.overflow.Store(nil)
		return
	}
	r.overflow.Store(&handler)
}

// RegisterDivideByZeroHandler installs the handler for divide-by-zero
// events, replacing any previous one. A nil handler clears the slot,
// restoring the default panic behavior.
func (r *Registry) RegisterDivideByZeroHandler(handler Handler) {
	if handler == nil {
		r.divideByZero.Store(nil)
		return
	}
	r.divideByZero.Store(&handler)
}

// ReportOverflow notifies the overflow handler, if one is installed.
// Otherwise it panics with an OverflowError.
func (r *Registry) ReportOverflow() {
	if handler := r.overflow.Load(); handler != nil {
		(*handler)(ErrorKindOverflow)
		return
	}
	panic(&OverflowError{})
}

// ReportDivideByZero notifies the divide-by-zero handler, if one is
// installed. Otherwise it panics with a DivisionByZeroError.
func (r *Registry) ReportDivideByZero() {
	if handler := r.divideByZero.Load(); handler != nil {
		(*handler)(ErrorKindDivideByZero)
		return
	}
	panic(&DivisionByZeroError{})
}

// Report notifies the handler for the given error kind.
func (r *Registry) Report(kind ErrorKind) {
	switch kind {
	case ErrorKindDivideByZero:
		r.ReportDivideByZero()
	default:
		r.ReportOverflow()
	}
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry used by all
// operations on the value types.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// RegisterOverflowHandler installs a handler for overflow events in the
// default registry. A nil handler restores the default panic behavior.
func RegisterOverflowHandler(handler Handler) {
	defaultRegistry.RegisterOverflowHandler(handler)
}

// RegisterDivideByZeroHandler installs a handler for divide-by-zero
// events in the default registry. A nil handler restores the default
// panic behavior.
func RegisterDivideByZeroHandler(handler Handler) {
	defaultRegistry.RegisterDivideByZeroHandler(handler)
}
