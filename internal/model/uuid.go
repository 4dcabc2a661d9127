package model

import "github.com/google/uuid"

// GenerateID creates a new UUID string for a loaded bookmark.
func GenerateID() string {
	return uuid.New().String()
}
