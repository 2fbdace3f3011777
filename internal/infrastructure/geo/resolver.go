package geo

import (
	"context"
	"errors"
	"time"

	"fieldtrack/internal/domain/aggregate"
	"fieldtrack/pkg/logger"

	"github.com/cenkalti/backoff/v4"
)

// Reference point used for fallback positions
const (
	ReferenceLatitude  = 28.6139
	ReferenceLongitude = 77.2090

	fallbackJitter   = 0.1
	fallbackAccuracy = 10.0

	DefaultTimeout = 10 * time.Second
	defaultRetry   = 500 * time.Millisecond
)

var (
	ErrPermissionDenied    = errors.New("geolocation permission denied")
	ErrPositionUnavailable = errors.New("geolocation position unavailable")
)

// PositionSource yields the device position
type PositionSource interface {
	CurrentPosition(ctx context.Context) (aggregate.GeoLocation, error)
}

// Resolver obtains a position and substitutes a jittered fallback when the
// source is missing, denied, or too slow. Resolve never fails.
type Resolver struct {
	source  PositionSource
	timeout time.Duration
	retry   time.Duration
	rnd     Random
	now     func() time.Time
}

// Option configures a Resolver
type Option func(*Resolver)

func WithTimeout(d time.Duration) Option {
	return func(r *Resolver) {
		if d > 0 {
			r.timeout = d
		}
	}
}

func WithRetryInterval(d time.Duration) Option {
	return func(r *Resolver) {
		if d > 0 {
			r.retry = d
		}
	}
}

func WithRandom(rnd Random) Option {
	return func(r *Resolver) {
		if rnd != nil {
			r.rnd = rnd
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(r *Resolver) {
		if now != nil {
			r.now = now
		}
	}
}

// NewResolver creates a resolver. source may be nil.
func NewResolver(source PositionSource, opts ...Option) *Resolver {
	r := &Resolver{
		source:  source,
		timeout: DefaultTimeout,
		retry:   defaultRetry,
		rnd:     NewRandom(0),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the current position or the fallback
func (r *Resolver) Resolve(ctx context.Context) aggregate.GeoLocation {
	if r.source == nil {
		return r.Fallback()
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var loc aggregate.GeoLocation
	err := backoff.Retry(
		func() error {
			pos, err := r.source.CurrentPosition(ctx)
			if err != nil {
				if errors.Is(err, ErrPermissionDenied) {
					return backoff.Permanent(err)
				}
				return err
			}
			loc = pos
			return nil
		},
		backoff.WithContext(backoff.NewConstantBackOff(r.retry), ctx),
	)
	if err != nil {
		logger.Warnf(ctx, "geolocation unavailable, using fallback: %v", err)
		return r.Fallback()
	}

	if loc.Timestamp.IsZero() {
		loc.Timestamp = r.now()
	}
	return loc
}

// Fallback returns the reference point jittered by up to ±0.05 degrees
func (r *Resolver) Fallback() aggregate.GeoLocation {
	acc := fallbackAccuracy
	return aggregate.GeoLocation{
		Latitude:  ReferenceLatitude + (r.rnd.Float64()-0.5)*fallbackJitter,
		Longitude: ReferenceLongitude + (r.rnd.Float64()-0.5)*fallbackJitter,
		Accuracy:  &acc,
		Timestamp: r.now(),
	}
}

// StaticSource always reports the same position
type StaticSource struct {
	Latitude  float64
	Longitude float64
	Accuracy  float64
}

func (s StaticSource) CurrentPosition(ctx context.Context) (aggregate.GeoLocation, error) {
	if err := ctx.Err(); err != nil {
		return aggregate.GeoLocation{}, err
	}
	acc := s.Accuracy
	return aggregate.GeoLocation{
		Latitude:  s.Latitude,
		Longitude: s.Longitude,
		Accuracy:  &acc,
	}, nil
}
