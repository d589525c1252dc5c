// Package models defines the records persisted and served by the API.
package models

import "time"

// User is a stored directory record. Email and PANNumber are always held in
// their normalized case (lowercase and uppercase respectively); ID and the
// timestamps are assigned by the store.
type User struct {
	ID          int64     `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	PANNumber   string    `json:"pan_number"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
