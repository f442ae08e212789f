package booking

import (
	"strings"
	"time"
	"unicode/utf8"
)

const (
	MaxSpecialRequestsLength = 1000

	secondsPerDay = 24 * 60 * 60
)

// Stay holds the optional check-in and check-out calendar dates, normalized to midnight UTC.
type Stay struct {
	checkIn  *time.Time
	checkOut *time.Time
}

func NewStay(checkIn, checkOut *time.Time) Stay {
	return Stay{checkIn: truncateToDate(checkIn), checkOut: truncateToDate(checkOut)}
}

func (s Stay) CheckIn() *time.Time  { return s.checkIn }
func (s Stay) CheckOut() *time.Time { return s.checkOut }

func (s Stay) HasBothDates() bool {
	return s.checkIn != nil && s.checkOut != nil
}

func (s Stay) HasAnyDate() bool {
	return s.checkIn != nil || s.checkOut != nil
}

// Nights is the calendar-day difference between check-out and check-in.
// Both dates are midnight UTC, so whole Unix days count exactly at any distance.
// ok is false when either date is missing.
func (s Stay) Nights() (nights int, ok bool) {
	if !s.HasBothDates() {
		return 0, false
	}
	return int((s.checkOut.Unix() - s.checkIn.Unix()) / secondsPerDay), true
}

func truncateToDate(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &d
}

type SpecialRequests string

func NewSpecialRequests(s string) (SpecialRequests, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) > MaxSpecialRequestsLength {
		return "", invalidParams("special requests must be at most %d characters", MaxSpecialRequestsLength)
	}
	return SpecialRequests(s), nil
}

func (s SpecialRequests) String() string {
	return string(s)
}
