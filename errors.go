package passgen

import "errors"

var (
	// ErrCorpus is returned when the configured word list cannot be read.
	ErrCorpus = errors.New("passgen: corpus unavailable")

	// ErrConfig is returned when configuration cannot be loaded or is invalid.
	ErrConfig = errors.New("passgen: invalid configuration")
)
