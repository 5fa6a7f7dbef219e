package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Clock supplies the current time to the services.
type Clock func() time.Time

func systemClock() time.Time {
	return time.Now().UTC()
}

type options struct {
	clock    Clock
	observer UseCaseObserver
}

// Option configures a service constructor.
type Option func(*options)

// WithClock overrides the time source.
func WithClock(c Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithObserver reports every use case to obs.
func WithObserver(obs UseCaseObserver) Option {
	return func(o *options) {
		if obs != nil {
			o.observer = obs
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{clock: systemClock, observer: NoopUseCaseObserver{}}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// newID returns a random identifier carrying an entity prefix.
func newID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// observe starts a use-case timer. The returned func is deferred with a
// pointer to the named error result.
func (o options) observe(ctx context.Context, name string, fields map[string]any) func(*error) {
	startedAt := o.clock()
	wall := time.Now()
	return func(errp *error) {
		var err error
		if errp != nil {
			err = *errp
		}
		o.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      name,
			StartedAt: startedAt,
			Duration:  time.Since(wall),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}
}
