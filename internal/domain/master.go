package domain

import "time"

// Master is a staff resource that performs bookable services.
// Its lifecycle is independent of bookings: a deactivated master keeps
// existing bookings but stops appearing in availability scans.
type Master struct {
	ID        string
	ShopID    string
	Name      string
	IsActive  bool
	SortOrder int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MasterRef is the short master representation used in slot payloads
type MasterRef struct {
	ID   string
	Name string
}
