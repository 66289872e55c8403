// Package password defines the capability shared by every generation strategy
// and the sensitive value they return.
//
// A strategy implements Generator:
//
//	type Generator interface {
//		Generate(src rand.Source) Password
//		Description() string
//	}
//
// The randomness source is supplied by the caller on every call. Strategies keep
// no per-call state, so one Generator may serve many goroutines as long as each
// goroutine brings its own source.
//
// # Handling Secrets
//
// Password keeps its value in a byte slice so the memory can be zeroed:
//
//	pw := gen.Generate(randsrc.Crypto())
//	defer pw.Wipe()
//
//	fmt.Fprintln(w, pw.String()) // String copies; prefer Bytes or WriteTo
//
// Password implements slog.LogValuer and renders as "[REDACTED]" in structured logs.
//
// # Batches
//
// Batch fans generation out over a bounded worker group:
//
//	pws, err := password.Batch(ctx, gen, 10, func(int) rand.Source {
//		return randsrc.Crypto()
//	})
//
// On cancellation every value generated so far is wiped and the context error
// is returned.
package password
