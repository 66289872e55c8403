package corpus

import "errors"

// ErrRead wraps I/O failures while reading a word list.
var ErrRead = errors.New("corpus: read failed")
