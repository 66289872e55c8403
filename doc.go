// Package passgen builds pronounceable password generators from configuration.
//
// It wires the pieces under pkg/ together: a word list from pkg/corpus, a
// transition model from pkg/markov and the generator that walks it. The model
// is built once per New call and shared by every value the generator produces.
//
// # Configuration
//
// Config is read from the environment by NewFromEnv:
//
//	PASSGEN_LENGTH       characters per value (default 12)
//	PASSGEN_DIGITS       insert one digit (default true)
//	PASSGEN_SYMBOLS      insert one readable symbol (default false)
//	PASSGEN_CAPITALIZE   upper-case the first character (default true)
//	PASSGEN_CORPUS_PATH  word list file, "<rank>\t<word>" per line (default: built-in list)
//
// A .env file in the working directory is loaded first when present.
//
// # Usage
//
//	gen, err := passgen.NewFromEnv(
//		passgen.WithLogger(log),
//		passgen.WithRegisterer(prometheus.DefaultRegisterer),
//	)
//	if err != nil {
//		return err
//	}
//
//	pw := gen.Generate(randsrc.Crypto())
//	defer pw.Wipe()
//
// For many values at once, see password.Batch.
package passgen
