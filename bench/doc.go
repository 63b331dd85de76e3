// Package bench measures memvec against the standard library equivalents.
//
// For every operation and size the suite allocates aligned buffers, fills
// them with seeded random bytes, times a loop of the baseline (builtin copy
// for Copy and Move, bytes.IndexByte for StrLen) and a loop of the memvec
// primitive, verifies that both produced the same output, and reports the
// relative gain.
//
//	suite, err := bench.New(
//	    bench.WithOps(bench.OpCopy, bench.OpStrLen),
//	    bench.WithSizes(64, 4096, 1<<20),
//	    bench.WithLogger(bench.NewTextLogger(slog.LevelInfo)),
//	)
//	results, err := suite.Run(ctx)
//	bench.WriteTable(os.Stdout, results)
package bench
