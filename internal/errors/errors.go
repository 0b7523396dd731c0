// Package errors lets callers join errors and attach stack traces through one import.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// New returns a plain error without a stack trace.
func New(text string) error {
	return stderrors.New(text)
}

// Is reports whether target appears anywhere in err's chain, including joined errors.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// Join collects the failures of independent steps; nil entries are dropped.
func Join(errs ...error) error {
	return stderrors.Join(errs...)
}

// Wrap annotates err with message and the caller's stack. A nil err stays nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}
