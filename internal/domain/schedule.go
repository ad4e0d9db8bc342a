package domain

import (
	"time"

	"github.com/servicebox-app/booking-service/pkg/types"
)

// ScheduleConfig is the shop-wide working window used by the slot generator.
// One window applies to every master; per-master schedules are out of scope.
type ScheduleConfig struct {
	WorkStart   types.TimeString
	WorkEnd     types.TimeString
	StepMinutes int
	Location    *time.Location
}

// WindowOnDate returns the absolute [start, end) working window for a date.
func (s ScheduleConfig) WindowOnDate(date time.Time) (time.Time, time.Time, error) {
	start, err := s.WorkStart.OnDate(date, s.Location)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := s.WorkEnd.OnDate(date, s.Location)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// Step returns the slot generation step as a duration.
func (s ScheduleConfig) Step() time.Duration {
	return time.Duration(s.StepMinutes) * time.Minute
}
