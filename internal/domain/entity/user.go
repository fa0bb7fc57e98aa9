package entity

import "time"

// User is an authenticated account in the remote deployment. The user id is
// also the inventory scope key. Company and Phone are optional profile fields.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Company      string    `json:"company,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}
