package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Frequency is how often a scheduled catalog update fires.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// Schedule describes when the auto-update job would run.
type Schedule struct {
	Enabled   bool      `json:"enabled"`
	Frequency Frequency `json:"frequency"`
	Time      string    `json:"time"`           // "HH:MM", 24h clock
	Day       string    `json:"day,omitempty"`  // weekly: weekday name, default monday
	Date      string    `json:"date,omitempty"` // monthly: day of month, default 1
}

// DefaultSchedule is daily at midnight, disabled.
func DefaultSchedule() Schedule {
	return Schedule{Frequency: FrequencyDaily, Time: "00:00"}
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseClock parses "HH:MM".
func ParseClock(s string) (hour, minute int, err error) {
	h, m, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, 0, fmt.Errorf("invalid time %q: want HH:MM", s)
	}
	hour, err = strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", s)
	}
	minute, err = strconv.Atoi(m)
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", s)
	}
	return hour, minute, nil
}

// NextRun returns the first occurrence of s strictly after now, in now's
// location. ok is false when the schedule is disabled or malformed.
func NextRun(s Schedule, now time.Time) (next time.Time, ok bool) {
	if !s.Enabled {
		return time.Time{}, false
	}
	hour, minute, err := ParseClock(s.Time)
	if err != nil {
		return time.Time{}, false
	}

	loc := now.Location()
	at := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, hour, minute, 0, 0, loc)
	}

	switch s.Frequency {
	case FrequencyDaily, "":
		next = at(now.Year(), now.Month(), now.Day())
		if !next.After(now) {
			next = next.AddDate(0, 0, 1)
		}
		return next, true

	case FrequencyWeekly:
		day := strings.ToLower(strings.TrimSpace(s.Day))
		if day == "" {
			day = "monday"
		}
		wd, known := weekdays[day]
		if !known {
			return time.Time{}, false
		}
		delta := (int(wd) - int(now.Weekday()) + 7) % 7
		next = at(now.Year(), now.Month(), now.Day()+delta)
		if !next.After(now) {
			next = next.AddDate(0, 0, 7)
		}
		return next, true

	case FrequencyMonthly:
		dom := 1
		if strings.TrimSpace(s.Date) != "" {
			dom, err = strconv.Atoi(strings.TrimSpace(s.Date))
			if err != nil || dom < 1 || dom > 31 {
				return time.Time{}, false
			}
		}
		y, m := now.Year(), now.Month()
		next = at(y, m, clampDay(y, m, dom))
		if !next.After(now) {
			y, m = addMonth(y, m)
			next = at(y, m, clampDay(y, m, dom))
		}
		return next, true
	}

	return time.Time{}, false
}

func addMonth(y int, m time.Month) (int, time.Month) {
	if m == time.December {
		return y + 1, time.January
	}
	return y, m + 1
}

// clampDay caps dom to the number of days in the month.
func clampDay(y int, m time.Month, dom int) int {
	last := time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
	return min(dom, last)
}

// Validate returns an error when s could never produce a run.
// The Enabled flag is ignored.
func (s Schedule) Validate() error {
	switch s.Frequency {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, "":
	default:
		return fmt.Errorf("unknown frequency %q", s.Frequency)
	}
	if _, _, err := ParseClock(s.Time); err != nil {
		return err
	}
	probe := s
	probe.Enabled = true
	if _, ok := NextRun(probe, time.Now()); !ok {
		return fmt.Errorf("invalid day %q or date %q for a %s schedule", s.Day, s.Date, s.Frequency)
	}
	return nil
}
