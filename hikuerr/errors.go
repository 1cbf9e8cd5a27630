/**
 * Copyright (c) 2019, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

// Package hikuerr collects the error kinds shared by every other package in this module. Every
// kind is carried by the single exported *Error type, tagged with a Kind: callers use KindOf or
// errors.As to recover the Kind and message, and errors.Is against an *Error of the same Kind (for
// example one built with New) for a coarse kind check.
package hikuerr

import (
	"errors"
	"fmt"
)

// Kind identifies one of the error categories this module raises.
type Kind string

// Enumeration of Kind. These mirror one-for-one the error kinds named in the specification: every
// engine, reader, or index failure surfaces as exactly one of these.
const (
	KindParseError             Kind = "ParseError"
	KindSchemaError            Kind = "SchemaError"
	KindMissingRequiredOption  Kind = "MissingRequiredOption"
	KindConflictingOptions     Kind = "ConflictingOptions"
	KindResultShapeMismatch    Kind = "ResultShapeMismatch"
	KindFieldNotRequested      Kind = "FieldNotRequested"
	KindMissingObject          Kind = "MissingObject"
	KindMissingField           Kind = "MissingField"
	KindIndexFinalized         Kind = "IndexFinalized"
	KindResolverError          Kind = "ResolverError"
)

// Error is the concrete error type raised across this module. It carries a Kind so callers can
// branch on category via errors.As and a free-form Message for humans.
type Error struct {
	Kind    Kind
	Message string

	// Wrapped is the underlying error when this Error wraps an error returned by a resolver
	// (Kind == KindResolverError). Nil otherwise.
	Wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap allows errors.Is/errors.As to reach the wrapped resolver error.
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is an *Error of the same Kind. This lets callers write
// errors.Is(err, hikuerr.New(hikuerr.KindMissingObject, "")) to test a category without caring
// about the message.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// New constructs an *Error of the given kind with a formatted message.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap constructs a KindResolverError *Error that wraps err verbatim, per the propagation policy:
// resolver exceptions are surfaced to the caller of execute without modification to their content.
func Wrap(err error) *Error {
	return &Error{Kind: KindResolverError, Message: "resolver error", Wrapped: err}
}

// KindOf reports the Kind of err if it is (or wraps) an *Error produced by this package.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}
