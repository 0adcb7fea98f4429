package timeline

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidMutation marks a mutation the Store rejected without applying.
// Unknown-id rejections carry it too; Remove and Duplicate stay no-ops on
// unknown ids instead of erroring.
var ErrInvalidMutation = errors.New("invalid mutation")

// wrapMutation builds an error tagged with marker and carrying operation
// context, mirroring how rejected mutations read in logs: the operation, the
// clip id when known, and the reason.
func wrapMutation(marker error, operation, clipID, message string) error {
	parts := make([]string, 0, 3)
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if clipID = strings.TrimSpace(clipID); clipID != "" {
		parts = append(parts, clipID)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return marker
	}
	return fmt.Errorf("%w: %s", marker, strings.Join(parts, ": "))
}
