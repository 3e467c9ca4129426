package assets

import (
	"fmt"
	"strings"
)

// ValidateStyleName checks that name is safe to use as a file name.
// Path separators and dots are rejected so neither traversal nor extension
// tricks can escape the styles directory.
func ValidateStyleName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidStyleName)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidStyleName, name)
	}
	return nil
}
