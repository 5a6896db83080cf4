// SPDX-License-Identifier: MIT

package tissue

import (
	"io"
	"log/slog"
)

// Option configures Build.
type Option func(*options)

type options struct {
	logger *slog.Logger
	frame  int
	time   float64
}

func defaultOptions() options {
	return options{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		frame:  -1,
	}
}

// WithLogger routes build diagnostics to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithFrame stamps the graph with the frame number and time point of the
// image it was built from.
func WithFrame(frame int, time float64) Option {
	return func(o *options) {
		o.frame = frame
		o.time = time
	}
}
