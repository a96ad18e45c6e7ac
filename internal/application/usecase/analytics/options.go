// Package analytics contains the aggregation use cases: monthly summary, trends and dashboard.
package analytics

import "time"

type options struct {
	now func() time.Time
}

// Option configures an analytics use case.
type Option func(*options)

// WithClock overrides the time source used to resolve the current month.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func applyOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
