package types

import "github.com/google/uuid"

// Profile is the signed-in user's display record. The engine trusts
// the caller for authentication, so this is caller-supplied data.
type Profile struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
}

// Address is a saved shipping destination in the session's address book.
type Address struct {
	ID       uuid.UUID `json:"id"`
	Label    string    `json:"label,omitempty"`
	FullName string    `json:"fullName"`
	Line1    string    `json:"line1"`
	City     string    `json:"city"`
	ZipCode  string    `json:"zipCode"`
	Phone    string    `json:"phone"`
}
