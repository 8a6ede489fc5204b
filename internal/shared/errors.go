package shared

import "fmt"

var (
	// Configuration errors
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Source errors
	ErrMissingSource = fmt.Errorf("source file not found")

	// Output errors
	ErrOutputWrite = fmt.Errorf("output write failed")
)
