// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package loads a .env file from the working directory on first use (a
// missing file is not an error) and uses the caarlos0/env library for parsing
// environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/passgen/core/config"
//
//	type GeneratorConfig struct {
//		Length     int  `env:"PASSGEN_LENGTH" envDefault:"12"`
//		Digits     bool `env:"PASSGEN_DIGITS" envDefault:"true"`
//		Capitalize bool `env:"PASSGEN_CAPITALIZE" envDefault:"true"`
//	}
//
//	func main() {
//		var cfg GeneratorConfig
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var cfg1 GeneratorConfig
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 GeneratorConfig
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Different types are cached independently. Use Reset in tests to drop the
// cache between cases that set different environment values.
package config
