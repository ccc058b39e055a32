package firestore

import (
	"fmt"

	"github.com/segmentio/fasthash/jody"
)

// NameID converts an escaped QW name into a Firestore document ID.
// Escaped names can still contain characters that are illegal in document IDs
// (most notably '/'), so documents keyed by name use a stable hash of the name
// instead and carry the display name as a field.
func NameID(name string) string {
	return fmt.Sprintf("%016x", jody.HashString64(name))
}
