package assets

// defaultLoader serves the package-level helpers.
var defaultLoader StyleLoader = NewEmbeddedLoader()

// LoadStyle loads a built-in style by name.
// Returns ErrStyleNotFound if the style does not exist.
// Returns ErrInvalidStyleName if the name contains path separators or dots.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}

// StyleNames lists the built-in styles.
func StyleNames() []string {
	return defaultLoader.StyleNames()
}
