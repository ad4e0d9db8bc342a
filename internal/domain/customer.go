package domain

import "time"

// Customer is identified by phone number within a shop.
// UpsertByPhone overwrites name/email with the latest provided values.
type Customer struct {
	ID        string
	ShopID    string
	Name      string
	Phone     string
	Email     *string
	CreatedAt time.Time
}
