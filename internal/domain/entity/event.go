package entity

import "time"

// Event is a dated happening, optionally tied to a Merchant.
type Event struct {
	ID         int64
	MerchantID *int64
	Title      string
	StartsAt   *time.Time
	EndsAt     *time.Time
	CreatedAt  time.Time
}

// HasValidWindow reports whether the start does not come after the end.
// An open-ended window is always valid.
func (e *Event) HasValidWindow() bool {
	if e.StartsAt == nil || e.EndsAt == nil {
		return true
	}

	return !e.StartsAt.After(*e.EndsAt)
}
