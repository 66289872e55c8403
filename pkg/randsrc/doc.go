// Package randsrc provides randomness sources for the generators.
//
// Generators consume a math/rand/v2 Source so that the same code path serves
// production and reproducible tests:
//
//	// Production: every draw comes from crypto/rand.
//	pw := gen.Generate(randsrc.Crypto())
//
//	// Tests and fixtures: a ChaCha20 keystream keyed from a seed via HKDF-SHA256.
//	src, err := randsrc.NewSeeded([]byte("fixture-1"))
//	if err != nil {
//		return err
//	}
//	pw := gen.Generate(src)
//
// Seeded sources are deterministic: equal seeds yield equal sequences. They are
// not safe for concurrent use; create one per goroutine. The crypto source is
// stateless and may be shared.
package randsrc
