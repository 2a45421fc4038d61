package growarray

import "log/slog"

const (
	// DefaultCapacity is the initial backing-store size used by New and the
	// minimum used by FromSlice.
	DefaultCapacity = 16

	// DefaultLoadFactorPercent is the fill percentage above which the backing store doubles.
	DefaultLoadFactorPercent = 75

	defaultName = "default"
)

// Option configures an Array. Options follow the functional options pattern.
type Option func(*options)

type options struct {
	name   string       // metric label and log attribute
	logger *slog.Logger // receives growth events at debug level
}

// WithName sets the name an Array reports in its metrics and log lines.
// Empty names are ignored.
//
// Example:
//
//	arr := growarray.New[int](growarray.WithName("pending-jobs"))
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// WithLogger sets the logger growth events are written to. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		name:   defaultName,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}
