package model

import "time"

// User represents an account that owns expense records.
type User struct {
	ID           int64
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}
