package service

import "time"

// TimestampLayout is fixed-width UTC with millisecond precision so timestamps sort as strings.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FormatTimestamp renders t in UTC using TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
