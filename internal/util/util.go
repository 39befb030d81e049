package util

import (
	"github.com/google/uuid"
)

// NewID returns a random UUID string suitable for identifying sessions
func NewID() string {
	return uuid.New().String()
}
