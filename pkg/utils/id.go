package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewID returns a 32-char hex identifier suitable for primary keys.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
