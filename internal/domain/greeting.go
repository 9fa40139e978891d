package domain

import "time"

// Greeting returns a time-of-day greeting for the given moment.
func Greeting(now time.Time) string {
	switch {
	case now.Hour() < 11:
		return "おはよう"
	case now.Hour() < 19:
		return "こんにちは"
	default:
		return "こんばんは"
	}
}
