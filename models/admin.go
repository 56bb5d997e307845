package models

import "time"

type Admin struct {
	ID       uint   `gorm:"primaryKey"`
	Email    string `gorm:"unique"`
	Name     string
	Picture  string
	Approved bool
}

// AdminSession backs an issued admin JWT. The dashboard heartbeat and the
// background sweeper both consult it, so signing out (or session expiry)
// takes effect on the next poll rather than at token expiry.
type AdminSession struct {
	ID        uint   `gorm:"primaryKey"`
	TokenID   string `gorm:"uniqueIndex;not null"` // jti claim
	Email     string `gorm:"index"`
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}

func (s AdminSession) Active(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}
