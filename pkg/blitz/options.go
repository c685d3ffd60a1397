package blitz

import (
	"log/slog"

	"github.com/ciss-tools/scenediagram/internal/logging"
)

// DefaultLayer is the layer name used when a caller passes an empty one.
const DefaultLayer = "Default"

type options struct {
	logger       *slog.Logger
	defaultLayer string
	maxFileSize  int64
}

// Option configures a Reader.
type Option func(*options)

// WithLogger sets the logger. Reads log at debug level only.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithDefaultLayer changes the layer used for an empty layer name.
func WithDefaultLayer(name string) Option {
	return func(o *options) {
		if name != "" {
			o.defaultLayer = name
		}
	}
}

// WithMaxFileSize rejects documents larger than n bytes. n <= 0 disables
// the cap.
func WithMaxFileSize(n int64) Option {
	return func(o *options) {
		o.maxFileSize = n
	}
}

func newOptions(opts []Option) options {
	o := options{
		logger:       logging.Discard(),
		defaultLayer: DefaultLayer,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
