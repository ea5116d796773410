package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewReferenceCode returns a short human-quotable booking reference like
// "BK-9F2C41AB". Uniqueness is not guaranteed; the booking primary key is the
// identity, the reference is for emails and support calls.
func NewReferenceCode() string {
	id := uuid.New().String()
	return "BK-" + strings.ToUpper(id[:8])
}
