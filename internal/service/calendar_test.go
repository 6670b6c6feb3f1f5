// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sofia Onell

package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthWindows_UTC(t *testing.T) {
	ref := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

	current, previous := MonthWindows(ref, 0)

	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), current.Start)
	assert.Equal(t, time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC), current.End)
	assert.Equal(t, time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC), previous.Start)
	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), previous.End)
}

func TestMonthWindows_HalfOpen(t *testing.T) {
	ref := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

	current, previous := MonthWindows(ref, 0)

	assert.Equal(t, current.Start, previous.End)
	assert.True(t, current.End.After(current.Start))
}

// A client at UTC+7 reports offset -420. Just after local midnight on
// the 1st it is still the previous month in UTC, but the client's
// calendar has already turned.
func TestMonthWindows_EastOfUTC_MonthTurnsEarly(t *testing.T) {
	// 2026-02-28 18:00 UTC == 2026-03-01 01:00 at UTC+7
	ref := time.Date(2026, time.February, 28, 18, 0, 0, 0, time.UTC)

	current, _ := MonthWindows(ref, -420)

	// the client's March starts at 2026-02-28 17:00 UTC
	assert.Equal(t, time.Date(2026, time.February, 28, 17, 0, 0, 0, time.UTC), current.Start)
	assert.Equal(t, time.Date(2026, time.March, 31, 17, 0, 0, 0, time.UTC), current.End)
}

// A client at UTC-5 reports offset 300. Just before local midnight on
// the 1st the UTC calendar has already turned, but the client's has not.
func TestMonthWindows_WestOfUTC_MonthTurnsLate(t *testing.T) {
	// 2026-03-01 03:00 UTC == 2026-02-28 22:00 at UTC-5
	ref := time.Date(2026, time.March, 1, 3, 0, 0, 0, time.UTC)

	current, previous := MonthWindows(ref, 300)

	// the client's February runs until 2026-03-01 05:00 UTC
	assert.Equal(t, time.Date(2026, time.February, 1, 5, 0, 0, 0, time.UTC), current.Start)
	assert.Equal(t, time.Date(2026, time.March, 1, 5, 0, 0, 0, time.UTC), current.End)
	assert.Equal(t, time.Date(2026, time.January, 1, 5, 0, 0, 0, time.UTC), previous.Start)
}

func TestMonthWindows_PreviousAcrossYearBoundary(t *testing.T) {
	ref := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)

	current, previous := MonthWindows(ref, 0)

	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), current.Start)
	assert.Equal(t, time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC), previous.Start)
}
