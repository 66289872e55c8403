// Package logger provides structured logging utilities built on Go's standard slog package.
// It offers a small factory with environment presets and a set of attribute helpers
// for the events the password generators emit.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/passgen/core/logger"
//
//	// Development: text format, debug level
//	log := logger.New(logger.WithDevelopment("passgen"))
//
//	// Production: JSON format, info level
//	log := logger.New(
//		logger.WithProduction("passgen"),
//		logger.WithOutput(os.Stdout),
//	)
//
//	log.Info("model built",
//		logger.Component("markov"),
//		logger.Count("contexts", 412),
//	)
//
// Level names from configuration are mapped with ParseLevel:
//
//	log := logger.New(logger.WithLevel(logger.ParseLevel(cfg.LogLevel)))
//
// # Attribute Helpers
//
// Helpers return an empty slog.Attr for nil or empty input, so they can be passed
// unconditionally:
//
//	log.Debug("primary attempts exhausted",
//		logger.Component("markov"),
//		logger.RetryCount(100),
//		logger.Length(12),
//		logger.Result("fallback"),
//		logger.Error(err), // dropped when err == nil
//	)
//
// Generated secrets must never be passed as attributes. The password package
// implements slog.LogValuer and renders as a redacted placeholder if one slips through.
//
// # Testing with Custom Output
//
//	var buf bytes.Buffer
//	log := logger.New(
//		logger.WithJSONFormatter(),
//		logger.WithOutput(&buf),
//	)
//
//	log.Info("Test message", logger.Component("test"))
//	assert.Contains(t, buf.String(), `"component":"test"`)
//
// Use NewNop where a logger is required but output is irrelevant.
package logger
