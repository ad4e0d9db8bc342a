package domain

import "time"

// Overlaps reports whether the half-open intervals [s1,e1) and [s2,e2)
// intersect. Touching endpoints do not overlap: a booking ending at 10:00
// does not conflict with one starting at 10:00.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}

// MasterAvailable reports whether the master is free during [start,end)
// given the set of bookings fetched from the calendar. Cancelled and no_show
// bookings release their interval and are skipped.
//
// This predicate is shared by the slot generator and the allocator, so a
// slot advertised as free is bookable against the same committed state.
func MasterAvailable(bookings []*Booking, masterID string, start, end time.Time) bool {
	for _, b := range bookings {
		if b.MasterID == nil || *b.MasterID != masterID {
			continue
		}
		if !b.IsActive() {
			continue
		}
		if Overlaps(b.StartTime, b.EndTime, start, end) {
			return false
		}
	}
	return true
}
