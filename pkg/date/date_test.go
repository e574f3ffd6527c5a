// Copyright (c) 2026 Filmotek. All rights reserved.
// Author: k.petrov.dev@gmail.com

package date_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpetrov/filmotek/pkg/date"
)

/*
TestDate_JSON verifies the "2006-01-02" wire format on both directions.
*/
func TestDate_JSON(t *testing.T) {
	// 1. Encoding
	encoded, err := json.Marshal(date.New(1999, time.March, 31))
	require.NoError(t, err)
	assert.Equal(t, `"1999-03-31"`, string(encoded))

	// 2. Decoding
	var decoded date.Date
	require.NoError(t, json.Unmarshal([]byte(`"1895-12-28"`), &decoded))
	assert.Equal(t, date.New(1895, time.December, 28), decoded)

	// 3. Rejects non-date payloads
	assert.Error(t, json.Unmarshal([]byte(`"31-03-1999"`), &decoded))
	assert.Error(t, json.Unmarshal([]byte(`12345`), &decoded))
}

/*
TestDate_FromTime verifies truncation to the calendar day.
*/
func TestDate_FromTime(t *testing.T) {
	instant := time.Date(2001, time.July, 4, 23, 59, 58, 0, time.UTC)

	truncated := date.FromTime(instant)
	assert.Equal(t, date.New(2001, time.July, 4), truncated)
	assert.Equal(t, "2001-07-04", truncated.String())
}

/*
TestDate_Ordering verifies that the embedded time comparisons work on dates.
*/
func TestDate_Ordering(t *testing.T) {
	floor := date.New(1895, time.December, 28)

	assert.True(t, date.New(1895, time.December, 27).Before(floor.Time))
	assert.False(t, floor.Before(floor.Time))
	assert.True(t, date.New(1999, time.March, 31).After(floor.Time))
}
