package scpdoc

import "errors"

// Sentinel errors for library operations.
var (
	ErrMarkdownRender = errors.New("markdown body rendering failed")
	ErrStyleLoad      = errors.New("failed to load style")
)
