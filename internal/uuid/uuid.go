// Package uuid generates and checks the string identifiers used as primary
// keys.
package uuid

import (
	googleuuid "github.com/google/uuid"
)

// New returns a time-ordered UUIDv7 string. It falls back to a random v4 if
// the v7 generator fails.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		return googleuuid.NewString()
	}
	return id.String()
}

// Parse validates s and returns it in canonical lower-case form.
func Parse(s string) (string, error) {
	parsed, err := googleuuid.Parse(s)
	if err != nil {
		return "", err
	}
	return parsed.String(), nil
}

// IsValid checks if a string is a valid UUID
func IsValid(s string) bool {
	return googleuuid.Validate(s) == nil
}
