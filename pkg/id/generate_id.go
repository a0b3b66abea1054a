package id

import "github.com/google/uuid"

// NewUUID returns a random UUID string, the public identifier format for
// loans and payments.
func NewUUID() string {
	return uuid.NewString()
}
