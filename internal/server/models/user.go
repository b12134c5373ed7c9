// Package models defines the persisted row types shared by repositories and
// services.
package models

import "time"

// User is an account row. PasswordHash is an opaque bcrypt hash; the plain
// password never leaves the service layer.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
