package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, min, sec, nsec int) time.Time {
	return time.Date(2025, time.June, 12, hour, min, sec, nsec, time.Local)
}

func TestTradingSession(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want int
	}{
		{name: "midnight", t: at(0, 0, 0, 0), want: 1},
		{name: "morning", t: at(9, 30, 0, 0), want: 1},
		{name: "just before 15:00", t: at(14, 59, 59, 999999999), want: 1},
		{name: "exactly 15:00", t: at(15, 0, 0, 0), want: 2},
		{name: "afternoon", t: at(16, 15, 0, 0), want: 2},
		{name: "16:59:59", t: at(16, 59, 59, 0), want: 2},
		{name: "exactly 17:00", t: at(17, 0, 0, 0), want: 3},
		{name: "late evening", t: at(23, 59, 59, 0), want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TradingSession(tt.t))
		})
	}
}

func TestTradingSessionIgnoresLocation(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*60*60)
	ts := time.Date(2025, time.June, 12, 15, 30, 0, 0, loc)

	assert.Equal(t, SessionAfternoon, TradingSession(ts))
	assert.Equal(t, SessionMorning, TradingSession(ts.UTC()))
}

func TestDateStamp(t *testing.T) {
	assert.Equal(t, "20250612", DateStamp(at(8, 0, 0, 0)))
}
