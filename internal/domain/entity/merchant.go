package entity

import "time"

// Merchant is a business that can host events.
type Merchant struct {
	ID          int64
	Name        string
	Description *string
	CreatedAt   time.Time
}
