package bench

import (
	"bytes"
	"context"
	"fmt"
	"time"
	"unsafe"

	"github.com/hupe1980/memvec"
	"github.com/hupe1980/memvec/testutil"
)

// Result is one measurement: the same operation on the same input, looped
// Iterations times through the baseline and through memvec.
type Result struct {
	Op         Op
	Size       int
	Iterations int
	Baseline   time.Duration
	Vector     time.Duration
}

// Gain returns the time saved by memvec relative to the baseline, in
// percent. Negative values mean memvec was slower.
func (r Result) Gain() float64 {
	return gain(r.Baseline, r.Vector)
}

// BytesPerSecond returns memvec's throughput over the measurement.
func (r Result) BytesPerSecond() float64 {
	if r.Vector <= 0 {
		return 0
	}
	return float64(r.Size) * float64(r.Iterations) / r.Vector.Seconds()
}

func gain(baseline, vector time.Duration) float64 {
	if baseline <= 0 {
		return 0
	}
	return float64(baseline-vector) / float64(baseline) * 100
}

// primitives is the implementation under test; tests swap it out.
type primitives struct {
	copy   func(dst, src unsafe.Pointer, n uintptr) unsafe.Pointer
	move   func(dst, src unsafe.Pointer, n uintptr) unsafe.Pointer
	strlen func(s unsafe.Pointer) uintptr
}

var memvecPrimitives = primitives{
	copy:   memvec.Copy,
	move:   memvec.Move,
	strlen: memvec.StrLen,
}

// sink keeps StrLen loops from being optimized away.
var sink int

// Suite runs comparative measurements.
type Suite struct {
	opts options
	impl primitives
	rng  *testutil.RNG
}

// New creates a Suite. It fails if a size is not positive or the
// iteration count is negative.
func New(optFns ...Option) (*Suite, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	for _, size := range opts.sizes {
		if size <= 0 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
		}
	}
	if opts.iterations < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidIterations, opts.iterations)
	}
	for _, op := range opts.ops {
		if op > OpStrLen {
			return nil, fmt.Errorf("%w: %d", ErrUnknownOp, op)
		}
	}

	return &Suite{
		opts: opts,
		impl: memvecPrimitives,
		rng:  testutil.NewRNG(opts.seed),
	}, nil
}

// Sizes returns the buffer sizes measured for op.
func (s *Suite) Sizes(op Op) []int {
	if len(s.opts.sizes) > 0 {
		return s.opts.sizes
	}
	if op == OpStrLen {
		return DefaultStrLenSizes
	}
	return DefaultCopySizes
}

// Iterations returns the loop count used for op at the given size.
func (s *Suite) Iterations(op Op, size int) int {
	n := s.opts.iterations
	if n == 0 {
		n = defaultIterations[op]
	}
	if s.opts.maxBytes > 0 && int64(n)*int64(size) > s.opts.maxBytes {
		n = int(max(1, s.opts.maxBytes/int64(size)))
	}
	return n
}

// Run measures every configured op and size. It stops at the first
// mismatch or when ctx is cancelled, returning the results so far.
func (s *Suite) Run(ctx context.Context) ([]Result, error) {
	total := 0
	for _, op := range s.opts.ops {
		total += len(s.Sizes(op))
	}
	s.opts.logger.LogSuite(ctx, memvec.ActiveISA(), s.opts.ops, total)

	results := make([]Result, 0, total)
	for _, op := range s.opts.ops {
		log := s.opts.logger.WithOp(op)
		for _, size := range s.Sizes(op) {
			if err := ctx.Err(); err != nil {
				return results, err
			}

			r, err := s.measure(op, size)
			if err != nil {
				log.LogMismatch(ctx, size, err)
				s.opts.metrics.RecordMismatch(op, size)
				return results, err
			}

			log.LogResult(ctx, r)
			s.opts.metrics.RecordResult(r)
			results = append(results, r)
		}
	}
	return results, nil
}

func (s *Suite) measure(op Op, size int) (Result, error) {
	switch op {
	case OpCopy:
		return s.measureCopy(op, size, s.impl.copy)
	case OpMove:
		return s.measureCopy(op, size, s.impl.move)
	case OpStrLen:
		return s.measureStrLen(size)
	default:
		return Result{}, fmt.Errorf("%w: %d", ErrUnknownOp, op)
	}
}

func (s *Suite) measureCopy(op Op, size int, fn func(dst, src unsafe.Pointer, n uintptr) unsafe.Pointer) (Result, error) {
	src := memvec.MakeAligned(size)
	dstStd := memvec.MakeAligned(size)
	dstVec := memvec.MakeAligned(size)
	s.rng.FillBytes(src)

	r := Result{Op: op, Size: size, Iterations: s.Iterations(op, size)}

	start := time.Now()
	for i := 0; i < r.Iterations; i++ {
		copy(dstStd, src)
	}
	r.Baseline = time.Since(start)

	d, sp := unsafe.Pointer(&dstVec[0]), unsafe.Pointer(&src[0])
	start = time.Now()
	for i := 0; i < r.Iterations; i++ {
		fn(d, sp, uintptr(size))
	}
	r.Vector = time.Since(start)

	if !bytes.Equal(dstStd, dstVec) {
		return r, &ErrMismatch{Op: op, Size: size, cause: firstDiff(dstStd, dstVec)}
	}
	return r, nil
}

func (s *Suite) measureStrLen(size int) (Result, error) {
	str := memvec.MakeAligned(size + 1)
	s.rng.FillLetters(str[:size])

	r := Result{Op: OpStrLen, Size: size, Iterations: s.Iterations(OpStrLen, size)}

	var lenStd, lenVec int
	start := time.Now()
	for i := 0; i < r.Iterations; i++ {
		lenStd = bytes.IndexByte(str, 0)
		sink += lenStd
	}
	r.Baseline = time.Since(start)

	p := unsafe.Pointer(&str[0])
	start = time.Now()
	for i := 0; i < r.Iterations; i++ {
		lenVec = int(s.impl.strlen(p))
		sink += lenVec
	}
	r.Vector = time.Since(start)

	if lenStd != lenVec {
		return r, &ErrMismatch{Op: OpStrLen, Size: size, cause: fmt.Errorf("baseline length %d, memvec length %d", lenStd, lenVec)}
	}
	return r, nil
}

func firstDiff(want, got []byte) error {
	for i := range want {
		if want[i] != got[i] {
			return fmt.Errorf("first difference at byte %d: want %#02x, got %#02x", i, want[i], got[i])
		}
	}
	return nil
}
