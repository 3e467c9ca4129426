package pipeline

// Build tokenizes and parses a document.
func Build(document string) (*Root, error) {
	tokens, err := Tokenize(document)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

// Compile converts a document to an HTML fragment.
func Compile(document string) (string, error) {
	root, err := Build(document)
	if err != nil {
		return "", err
	}
	return Render(root)
}
