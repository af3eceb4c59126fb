package timeutil

import "time"

// Clock abstracts time.Now so search timing can be controlled in tests.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system time.
type RealClock struct{}

// NewRealClock creates a RealClock.
func NewRealClock() *RealClock {
	return &RealClock{}
}

// Now returns the current system time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// MockClock is a Clock whose time only moves when told to.
type MockClock struct {
	current time.Time
}

// NewMockClock creates a mock clock pinned to the given time.
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{current: t}
}

// NewMockClockFromString creates a mock clock from an RFC3339 time string.
// Panics on a bad string; intended for test fixtures only.
func NewMockClockFromString(value string) *MockClock {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic("invalid time string: " + err.Error())
	}
	return &MockClock{current: t}
}

// Now returns the pinned time.
func (m *MockClock) Now() time.Time {
	return m.current
}

// Set pins the clock to a specific time.
func (m *MockClock) Set(t time.Time) {
	m.current = t
}

// Advance moves the clock forward by d.
func (m *MockClock) Advance(d time.Duration) {
	m.current = m.current.Add(d)
}

var (
	_ Clock = (*RealClock)(nil)
	_ Clock = (*MockClock)(nil)
)
