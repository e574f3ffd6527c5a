// Copyright (c) 2026 Filmotek. All rights reserved.
// Author: k.petrov.dev@gmail.com

package validate_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpetrov/filmotek/internal/platform/apperr"
	"github.com/kpetrov/filmotek/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "name", "Filmotek", false},
		{"empty_string", "name", "", true},
		{"whitespace_only", "name", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value, "must not be blank")

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.field, ae.Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_Contains checks the substring rule.
*/
func TestValidator_Contains(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		isValid bool
	}{
		{"contains_at", "test@example.com", true},
		{"missing_at", "test.example.com", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Contains("email", tt.value, "@", "must contain @")

			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_NoSpaces checks the space-free rule.
*/
func TestValidator_NoSpaces(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		isValid bool
	}{
		{"plain_login", "kpetrov", true},
		{"inner_space", "k petrov", false},
		{"leading_space", " kpetrov", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.NoSpaces("login", tt.value, "must not contain spaces")

			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_DateBounds checks the floor and ceiling date rules.
*/
func TestValidator_DateBounds(t *testing.T) {
	floor := time.Date(1895, time.December, 28, 0, 0, 0, 0, time.UTC)

	// 1. The floor itself is valid
	v := &validate.Validator{}
	v.NotBefore("releaseDate", floor, floor, "too early")
	assert.False(t, v.HasErrors())

	// 2. One day earlier fails
	v = &validate.Validator{}
	v.NotBefore("releaseDate", floor.AddDate(0, 0, -1), floor, "too early")
	assert.True(t, v.HasErrors())

	// 3. Ceiling violations fail
	v = &validate.Validator{}
	v.NotAfter("birthday", time.Now().AddDate(1, 0, 0), time.Now(), "in the future")
	assert.True(t, v.HasErrors())
}

/*
TestValidator_Positive checks the strictly-positive integer rule.
*/
func TestValidator_Positive(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		isValid bool
	}{
		{"positive", 136, true},
		{"zero", 0, false},
		{"negative", -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Positive("duration", tt.value, "must be positive")

			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_Chain tests the fluent API (chaining multiple rules).
*/
func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}

	// Multi-rule validation
	err := v.
		Required("login", "kpetrov", "blank").
		NoSpaces("login", "kpetrov", "spaces").
		Contains("email", "k@filmotek.app", "@", "no at").
		Err()

	assert.NoError(t, err)
	assert.False(t, v.HasErrors())
}

/*
TestValidator_FirstFailureWins tests that only the first failing rule is
reported.
*/
func TestValidator_FirstFailureWins(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("email", "", "email is blank").          // Fails first
		Required("login", "", "login is blank").          // Also fails
		Positive("duration", 0, "duration not positive"). // Also fails
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)

	// Only the earliest failure is kept
	assert.Equal(t, "email", ae.Field)
	assert.Equal(t, "email is blank", ae.Message)
}
