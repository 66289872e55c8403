package markov

import (
	"log/slog"
	"math/rand/v2"

	"github.com/dmitrymomot/passgen/core/logger"
	"github.com/dmitrymomot/passgen/pkg/entropy"
	"github.com/dmitrymomot/passgen/pkg/password"
)

const (
	// maxAttempts bounds the primary generate/validate loop.
	maxAttempts = 100

	// LabelMarkov labels estimates of values accepted from the chain.
	LabelMarkov = "Markov pronounceable"

	// LabelFallback labels estimates of values built from the syllable table.
	LabelFallback = "Syllable fallback"

	description = "Pronounceable (Markov chain)"
)

// Request configures the values a Generator produces.
type Request struct {
	Length     int  // characters, at least 1
	Digits     bool // insert one digit
	Symbols    bool // insert one readable symbol
	Capitalize bool // upper-case the first character
}

// Generator produces pronounceable passwords from a Model. It holds no per-call
// state and is safe for concurrent use with distinct sources.
type Generator struct {
	model   *Model
	req     Request
	logger  *slog.Logger
	metrics *Metrics
}

var _ password.Generator = (*Generator)(nil)

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used for fallback diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithMetrics records every generated value in m.
func WithMetrics(m *Metrics) Option {
	return func(g *Generator) {
		g.metrics = m
	}
}

// New returns a Generator for req backed by model. The model is shared, not copied.
func New(model *Model, req Request, opts ...Option) (*Generator, error) {
	if model == nil {
		return nil, ErrNilModel
	}
	if req.Length < 1 {
		return nil, ErrInvalidLength
	}

	g := &Generator{
		model:  model,
		req:    req,
		logger: logger.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// Request returns the generator configuration.
func (g *Generator) Request() Request {
	return g.req
}

// Description implements password.Generator.
func (g *Generator) Description() string {
	return description
}

type state uint8

const (
	statePrimary state = iota
	stateFallback
)

// Generate implements password.Generator. It tries up to 100 chain candidates
// and returns the first pronounceable one; otherwise it switches to the
// syllable table, which always succeeds. Every draw comes from src.
func (g *Generator) Generate(src rand.Source) password.Password {
	r := rand.New(src)
	length := g.req.Length
	attempts := 0

	for st := statePrimary; ; {
		switch st {
		case statePrimary:
			if attempts == maxAttempts {
				st = stateFallback
				continue
			}

			buf, ok := g.model.candidate(r, length)
			if !ok {
				st = stateFallback
				continue
			}
			attempts++

			buf = postProcess(r, buf, g.req)
			if pronounceable(buf) {
				g.metrics.observe(pathPrimary, attempts)
				bits := entropy.PerSymbol(length, g.model.AvgBranchingFactor())
				return password.FromRunes(buf, entropy.New(bits, LabelMarkov))
			}
			clear(buf)

		case stateFallback:
			est := entropy.New(entropy.PerSymbol(length, float64(len(syllables)))/2, LabelFallback)
			g.logger.Debug("markov candidates exhausted, using syllable fallback",
				logger.Component("markov"),
				logger.RetryCount(attempts),
				logger.Length(length),
				logger.Label(est.Label),
				logger.Bits(est.Bits),
				logger.Result(pathFallback),
			)

			buf := postProcess(r, syllableString(r, length), g.req)
			g.metrics.observe(pathFallback, attempts)
			return password.FromRunes(buf, est)
		}
	}
}
