package passgen

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/passgen/core/config"
	"github.com/dmitrymomot/passgen/core/logger"
	"github.com/dmitrymomot/passgen/pkg/corpus"
	"github.com/dmitrymomot/passgen/pkg/markov"
)

// Config describes a generator. Zero values are not defaults; use NewFromEnv
// or DefaultConfig to get the documented defaults.
type Config struct {
	Length     int    `env:"PASSGEN_LENGTH" envDefault:"12"`
	Digits     bool   `env:"PASSGEN_DIGITS" envDefault:"true"`
	Symbols    bool   `env:"PASSGEN_SYMBOLS" envDefault:"false"`
	Capitalize bool   `env:"PASSGEN_CAPITALIZE" envDefault:"true"`
	CorpusPath string `env:"PASSGEN_CORPUS_PATH"`
}

// DefaultConfig returns the configuration used when no variables are set.
func DefaultConfig() Config {
	return Config{
		Length:     12,
		Digits:     true,
		Capitalize: true,
	}
}

// Request converts the configuration into a generator request.
func (c Config) Request() markov.Request {
	return markov.Request{
		Length:     c.Length,
		Digits:     c.Digits,
		Symbols:    c.Symbols,
		Capitalize: c.Capitalize,
	}
}

type options struct {
	logger     *slog.Logger
	registerer prometheus.Registerer
}

// Option configures New.
type Option func(*options)

// WithLogger sets the logger for model statistics and fallback diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithRegisterer registers generator metrics with reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) {
		o.registerer = reg
	}
}

// New loads the word list named by cfg, builds the model and returns a
// generator for cfg.
func New(cfg Config, opts ...Option) (*markov.Generator, error) {
	o := &options{logger: logger.NewNop()}
	for _, opt := range opts {
		opt(o)
	}

	if cfg.Length < 1 {
		return nil, fmt.Errorf("%w: %w", ErrConfig, markov.ErrInvalidLength)
	}

	start := time.Now()
	words, err := loadWords(cfg.CorpusPath)
	if err != nil {
		return nil, err
	}
	model := markov.Build(words)

	log := o.logger.With(logger.Component("passgen"))
	log.Info("markov model built",
		logger.Count("words", len(words)),
		logger.Count("contexts", model.Contexts()),
		logger.Count("starts", len(model.Starts())),
		slog.Float64("avg_branching", model.AvgBranchingFactor()),
		logger.Elapsed(start),
	)
	if model.Empty() {
		log.Warn("corpus produced no start contexts, every value will use the syllable fallback",
			logger.Key("corpus_path", cfg.CorpusPath),
		)
	}

	genOpts := []markov.Option{markov.WithLogger(log)}
	if o.registerer != nil {
		metrics, err := markov.NewMetrics(o.registerer)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConfig, err)
		}
		genOpts = append(genOpts, markov.WithMetrics(metrics))
	}

	gen, err := markov.New(model, cfg.Request(), genOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return gen, nil
}

// NewFromEnv is New with Config read from the environment.
func NewFromEnv(opts ...Option) (*markov.Generator, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return New(cfg, opts...)
}

func loadWords(path string) ([]string, error) {
	if path == "" {
		return corpus.Default(), nil
	}
	words, err := corpus.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorpus, err)
	}
	return words, nil
}
