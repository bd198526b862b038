package minride

import "errors"

// Sentinel errors for common error conditions
var (
	// Generation errors
	ErrUnknownGenerator = errors.New("unknown generator")
	ErrInvalidCount     = errors.New("invalid record count")

	// Catalog errors
	ErrRunNotFound = errors.New("run not found")
)
