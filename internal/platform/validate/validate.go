// Copyright (c) 2026 Filmotek. All rights reserved.
// Author: k.petrov.dev@gmail.com

// Package validate provides a chainable Validator that reports the first
// field-level failure as a single [apperr.AppError].
//
// # Architecture
//
// This package is used exclusively in the service layer — never in handlers or
// storage. Checks run in declaration order and the first failing rule wins;
// later rules in the chain are not evaluated against an already failed state.
package validate

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/kpetrov/filmotek/internal/platform/apperr"
)

// ErrInvalidJSON is returned when a request body cannot be decoded.
var ErrInvalidJSON = apperr.ValidationError("body", "Invalid JSON payload")

// Validator runs field-level validation rules via a fluent, chainable API.
// Only the first failure is kept.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every request/operation.
type Validator struct {
	failure *apperr.AppError
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value, message string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.fail(field, message)
	}
	return v
}

// MaxLen fails if the Unicode character count exceeds max.
func (v *Validator) MaxLen(field, value string, max int, message string) *Validator {
	if utf8.RuneCountInString(value) > max {
		v.fail(field, message)
	}
	return v
}

// Contains fails if the value does not contain the given substring.
func (v *Validator) Contains(field, value, substring, message string) *Validator {
	if !strings.Contains(value, substring) {
		v.fail(field, message)
	}
	return v
}

// NoSpaces fails if the value contains a space character.
func (v *Validator) NoSpaces(field, value, message string) *Validator {
	if strings.Contains(value, " ") {
		v.fail(field, message)
	}
	return v
}

// NotBefore fails if the value precedes the given floor date.
func (v *Validator) NotBefore(field string, value, floor time.Time, message string) *Validator {
	if value.Before(floor) {
		v.fail(field, message)
	}
	return v
}

// NotAfter fails if the value follows the given ceiling date.
func (v *Validator) NotAfter(field string, value, ceiling time.Time, message string) *Validator {
	if value.After(ceiling) {
		v.fail(field, message)
	}
	return v
}

// Positive fails if the value is not strictly greater than zero.
func (v *Validator) Positive(field string, value int, message string) *Validator {
	if value <= 0 {
		v.fail(field, message)
	}
	return v
}

// Custom adds a failure with a custom message if the condition is true.
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.fail(field, message)
	}
	return v
}

// Err returns the first recorded failure as an [apperr.AppError]
// (VALIDATION_ERROR), or nil if every rule passed.
//
// This is the only output method — call it at the end of the chain.
func (v *Validator) Err() error {
	if v.failure == nil {
		return nil
	}
	return v.failure
}

// HasErrors reports whether any validation rule has failed so far.
func (v *Validator) HasErrors() bool {
	return v.failure != nil
}

// fail records the failure unless an earlier rule already failed.
func (v *Validator) fail(field, message string) {
	if v.failure == nil {
		v.failure = apperr.ValidationError(field, message)
	}
}
