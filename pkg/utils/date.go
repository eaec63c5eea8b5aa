package utils

import "time"

// Trading session codes stored on stock posts.
const (
	SessionMorning   = 1
	SessionAfternoon = 2
	SessionOther     = 3
)

// TradingSession buckets the wall-clock time of t into a session code.
// Intervals are half-open: [00:00, 15:00) is 1, [15:00, 17:00) is 2, everything else is 3.
// t is not converted to any timezone.
func TradingSession(t time.Time) int {
	minutes := t.Hour()*60 + t.Minute()
	switch {
	case minutes < 15*60:
		return SessionMorning
	case minutes < 17*60:
		return SessionAfternoon
	default:
		return SessionOther
	}
}

// CurrentTradingSession returns the session for the local clock.
func CurrentTradingSession() int {
	return TradingSession(time.Now())
}

// DateStamp formats t as YYYYMMDD.
func DateStamp(t time.Time) string {
	return t.Format("20060102")
}
