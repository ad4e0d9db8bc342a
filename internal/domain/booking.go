package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
	StatusNoShow    BookingStatus = "no_show"
)

// statusTransitions is the booking lifecycle table.
// A booking is created as pending and only moves along these edges;
// completed, cancelled and no_show are terminal.
var statusTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled, StatusNoShow},
	StatusConfirmed: {StatusCompleted, StatusCancelled, StatusNoShow},
	StatusCompleted: {},
	StatusCancelled: {},
	StatusNoShow:    {},
}

// ParseBookingStatus validates a raw status string.
func ParseBookingStatus(s string) (BookingStatus, bool) {
	status := BookingStatus(s)
	_, ok := statusTransitions[status]
	return status, ok
}

// Booking represents a committed reservation of a master for a service.
// EndTime is computed once at creation (start + service duration) and stored;
// later edits of the service duration never resize existing bookings.
type Booking struct {
	ID         string
	ShopID     string
	ServiceID  string
	CustomerID *string
	MasterID   *string
	StartTime  time.Time
	EndTime    time.Time
	Status     BookingStatus

	// Customer snapshot captured at creation time, independent of later
	// edits of the customer record
	CustomerName  string
	CustomerPhone string
	CustomerEmail *string

	Notes *string

	// Denormalized names resolved by list/get queries
	ServiceName string
	MasterName  *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies its interval on the calendar
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled && b.Status != StatusNoShow
}

// IsTerminal returns true if no further status transitions are allowed
func (b *Booking) IsTerminal() bool {
	return b.Status.IsTerminal()
}

// CanTransitionTo returns true if the lifecycle allows moving to target
func (b *Booking) CanTransitionTo(target BookingStatus) bool {
	for _, allowed := range statusTransitions[b.Status] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsTerminal returns true if the status allows no further transitions
func (s BookingStatus) IsTerminal() bool {
	return len(statusTransitions[s]) == 0
}

// BookingsFilter filters the shop's booking list
type BookingsFilter struct {
	ShopID   string
	Status   *BookingStatus // nil = any status
	MasterID *string        // nil = all masters
	Date     *time.Time     // nil = all dates; otherwise bookings starting on that date
}
