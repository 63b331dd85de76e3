package bench

type options struct {
	ops        []Op
	sizes      []int
	iterations int
	maxBytes   int64
	seed       int64
	logger     *Logger
	metrics    MetricsCollector
}

// Option configures a Suite.
type Option func(*options)

// Default suite parameters.
const (
	// DefaultSeed seeds buffer contents when WithSeed is not given.
	DefaultSeed = 4711

	// DefaultMaxBytes caps the bytes processed per measurement loop.
	DefaultMaxBytes = 1 << 30
)

// DefaultCopySizes are the buffer sizes measured for copy and move.
var DefaultCopySizes = []int{64, 256, 1024, 4096, 16384, 65536, 262144, 1 << 20, 4 << 20, 16 << 20}

// DefaultStrLenSizes are the string lengths measured for strlen.
var DefaultStrLenSizes = []int{64, 256, 1024, 4096, 16384, 65536, 262144, 1 << 20}

// defaultIterations is the loop count per op before the byte cap applies.
var defaultIterations = map[Op]int{
	OpCopy:   100000,
	OpMove:   10000,
	OpStrLen: 200000,
}

func defaultOptions() options {
	return options{
		ops:      AllOps,
		maxBytes: DefaultMaxBytes,
		seed:     DefaultSeed,
		logger:   NoopLogger(),
		metrics:  NoopMetricsCollector{},
	}
}

// WithOps selects the operations to measure, in order.
func WithOps(ops ...Op) Option {
	return func(o *options) {
		o.ops = ops
	}
}

// WithSizes overrides the buffer sizes for every op.
// Without it, DefaultCopySizes and DefaultStrLenSizes are used.
func WithSizes(sizes ...int) Option {
	return func(o *options) {
		o.sizes = sizes
	}
}

// WithIterations fixes the loop count for every op. The byte cap from
// WithMaxBytes still applies. Zero restores the per-op defaults.
func WithIterations(n int) Option {
	return func(o *options) {
		o.iterations = n
	}
}

// WithMaxBytes caps size*iterations per measurement loop so large buffers
// do not run for minutes. A non-positive value disables the cap.
func WithMaxBytes(n int64) Option {
	return func(o *options) {
		o.maxBytes = n
	}
}

// WithSeed sets the seed for buffer contents.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetrics sets the metrics collector. If nil is passed, metrics are
// discarded.
func WithMetrics(m MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metrics = m
	}
}
