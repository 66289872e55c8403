package markov

import "errors"

var (
	// ErrInvalidLength is returned when the requested length is below 1.
	ErrInvalidLength = errors.New("markov: length must be at least 1")

	// ErrNilModel is returned when New receives no model.
	ErrNilModel = errors.New("markov: nil model")

	// ErrNilRegisterer is returned when NewMetrics receives no registerer.
	ErrNilRegisterer = errors.New("markov: nil prometheus registerer")
)
