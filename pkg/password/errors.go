package password

import "errors"

var (
	// ErrInvalidCount is returned by Batch for negative counts.
	ErrInvalidCount = errors.New("password: invalid count")

	// ErrNilGenerator is returned by Batch when no generator is supplied.
	ErrNilGenerator = errors.New("password: nil generator")

	// ErrNilSource is returned by Batch when the source factory yields nil.
	ErrNilSource = errors.New("password: nil randomness source")
)
