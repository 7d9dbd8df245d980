package controllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartOfDayUsesLocalZone(t *testing.T) {
	zone := time.FixedZone("UTC+7", 7*3600)

	// 01:30 local is still "yesterday" in UTC; the day boundary has to
	// come from the local zone, not the UTC one
	ts := time.Date(2026, time.August, 30, 1, 30, 0, 0, zone)
	got := startOfDay(ts)

	assert.Equal(t, time.Date(2026, time.August, 30, 0, 0, 0, 0, zone), got)
	assert.Equal(t, zone, got.Location())
	assert.NotEqual(t, ts.Truncate(24*time.Hour), got)
}

func TestStartOfDayLateEvening(t *testing.T) {
	zone := time.FixedZone("UTC-5", -5*3600)
	ts := time.Date(2026, time.August, 30, 23, 45, 0, 0, zone)

	got := startOfDay(ts)
	assert.Equal(t, 30, got.Day())
	assert.Zero(t, got.Hour())
}
