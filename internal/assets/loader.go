package assets

// StyleLoader loads a stylesheet by name.
type StyleLoader interface {
	// LoadStyle returns the CSS for name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	// Returns ErrInvalidStyleName if the name contains invalid characters.
	LoadStyle(name string) (string, error)

	// StyleNames lists the available styles in lexical order.
	StyleNames() []string
}
