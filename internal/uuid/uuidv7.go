// Package uuid generates identifiers for persisted records and requests.
package uuid

import (
	googleuuid "github.com/google/uuid"
)

// New generates a new UUIDv7 based on the current timestamp.
// UUIDv7 is time-ordered, so investment rows sort by creation when ordered
// by primary key. Falls back to a random v4 if the clock read fails.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		return googleuuid.New().String()
	}
	return id.String()
}

// NewRequestID returns a random identifier for correlating log lines of a
// single HTTP request.
func NewRequestID() string {
	return googleuuid.New().String()
}
