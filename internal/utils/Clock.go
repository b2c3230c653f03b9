package utils

import "time"

// Clock abstracts the current time so handlers that default to "today"
// (like the calendar month grid) can be tested against a fixed date.
type Clock interface {
	Now() time.Time
}

// SystemClock is the real clock used in production wiring.
type SystemClock struct{}

func (s SystemClock) Now() time.Time {
	return time.Now()
}

// MockClock returns a fixed time set by the test.
type MockClock struct {
	FixedNow time.Time
}

func (m *MockClock) Now() time.Time {
	return m.FixedNow
}

func (m *MockClock) SetNow(now time.Time) {
	m.FixedNow = now
}
