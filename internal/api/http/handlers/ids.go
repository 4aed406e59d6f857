package handlers

import (
	"strings"

	"github.com/google/uuid"
)

// newEntityID synthesizes a prefixed random id for caller-assigned entities
// (courses, faculty). Uniqueness rides on the randomness; collections do not
// validate it.
func newEntityID(prefix string) string {
	return prefix + "-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:5]
}
