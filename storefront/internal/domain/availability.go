package domain

import (
	"strings"
	"time"
)

type OpenStatus string

const (
	OpenStatusOpen  OpenStatus = "OPEN"
	OpenStatusClose OpenStatus = "CLOSE"
	OpenStatusAuto  OpenStatus = "AUTO"
)

func (s OpenStatus) Valid() bool {
	switch s {
	case OpenStatusOpen, OpenStatusClose, OpenStatusAuto:
		return true
	}
	return false
}

func (s OpenStatus) Label() string {
	switch s {
	case OpenStatusOpen:
		return "Open now"
	case OpenStatusClose:
		return "Closed"
	default:
		return "Auto mode"
	}
}

var Weekdays = []string{"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY", "SUNDAY"}

func weekdayKey(d time.Weekday) string {
	return strings.ToUpper(d.String())
}

func minutesOf(hhmm string) (int, bool) {
	t, err := time.Parse("15:04", strings.TrimSpace(hhmm))
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

// OpenBySchedule reports whether the weekly hours cover now. A close time at
// or before the open time spans midnight into the next day.
func OpenBySchedule(hours map[string]OpeningHours, now time.Time) bool {
	minute := now.Hour()*60 + now.Minute()

	if h, ok := hours[weekdayKey(now.Weekday())]; ok {
		openAt, okOpen := minutesOf(h.Open)
		closeAt, okClose := minutesOf(h.Close)
		if okOpen && okClose {
			if closeAt > openAt && minute >= openAt && minute < closeAt {
				return true
			}
			if closeAt <= openAt && minute >= openAt {
				return true
			}
		}
	}

	yesterday := now.AddDate(0, 0, -1)
	if h, ok := hours[weekdayKey(yesterday.Weekday())]; ok {
		openAt, okOpen := minutesOf(h.Open)
		closeAt, okClose := minutesOf(h.Close)
		if okOpen && okClose && closeAt <= openAt && minute < closeAt {
			return true
		}
	}
	return false
}

// IsOpen resolves the live open flag. A server-computed flag wins, then the
// manual OPEN/CLOSE override, and AUTO falls back to the weekly hours.
func IsOpen(restaurant Restaurant, status OpenStatusDTO, now time.Time) bool {
	if status.Open != nil {
		return *status.Open
	}
	switch status.Mode {
	case OpenStatusOpen:
		return true
	case OpenStatusClose:
		return false
	default:
		return OpenBySchedule(restaurant.DayOpeningHours, now)
	}
}
