package randsrc

import "errors"

// ErrEmptySeed is returned when a seeded source is requested without seed material.
var ErrEmptySeed = errors.New("randsrc: empty seed")
