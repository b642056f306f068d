package storage

import (
	"fmt"
	"strings"

	"github.com/ruteri/embedded-signing-demo/interfaces"
)

// checkName rejects names that are empty or could address something outside
// their area. Callers are expected to sanitize user input first.
func checkName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, 0) {
		return fmt.Errorf("%w: %q", interfaces.ErrInvalidName, name)
	}
	return nil
}
