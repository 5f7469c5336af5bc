package models

import "time"

// BlacklistedToken holds the jti of a revoked refresh token until it would
// have expired anyway.
type BlacklistedToken struct {
	ID        uint      `gorm:"primaryKey"`
	JTI       string    `gorm:"uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}
