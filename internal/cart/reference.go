package cart

import (
	"strings"

	"github.com/google/uuid"
)

const (
	DefaultReferencePrefix = "GOA"
	referenceLength        = 6
	referenceAlphabet      = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// NewReference returns a PNR-style booking reference such as GOA7K9X3Q:
// the prefix followed by six upper-case alphanumerics.
func NewReference(prefix string) string {
	prefix = strings.ToUpper(strings.TrimSpace(prefix))
	if prefix == "" {
		prefix = DefaultReferencePrefix
	}
	id := uuid.New()
	var b strings.Builder
	b.Grow(len(prefix) + referenceLength)
	b.WriteString(prefix)
	for i := 0; i < referenceLength; i++ {
		b.WriteByte(referenceAlphabet[int(id[i])%len(referenceAlphabet)])
	}
	return b.String()
}
