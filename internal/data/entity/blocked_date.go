package entity

import "time"

// BlockedDate marks a calendar day closed for new stays.
type BlockedDate struct {
	BaseSimple
	Date   time.Time `db:"blocked_date"`
	Reason *string   `db:"reason"`
}
