package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default working window of a shop. Real deployments override these in the
// [booking] config section; per-master schedules are not modeled.
const (
	DefaultWorkStart       = "09:00"
	DefaultWorkEnd         = "20:00"
	DefaultSlotStepMinutes = 30
)

// InactiveStatuses список статусов, не занимающих интервал в календаре
// Используется при проверке пересечений
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusNoShow,
}
