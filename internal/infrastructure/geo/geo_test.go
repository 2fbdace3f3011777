package geo

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"fieldtrack/internal/domain/aggregate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateDistance(t *testing.T) {
	a := aggregate.GeoLocation{Latitude: 28.6139, Longitude: 77.2090}

	assert.Zero(t, CalculateDistance(a, a))

	b := aggregate.GeoLocation{Latitude: 29.6139, Longitude: 77.2090}
	d := CalculateDistance(a, b)
	assert.InDelta(t, 111.19, d, 111.19*0.01)
	assert.InDelta(t, d, CalculateDistance(b, a), 1e-9)
}

type funcSource func(ctx context.Context) (aggregate.GeoLocation, error)

func (f funcSource) CurrentPosition(ctx context.Context) (aggregate.GeoLocation, error) {
	return f(ctx)
}

var frozen = time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)

func clock() time.Time { return frozen }

func expectedFallback(seed uint64) (float64, float64) {
	r := NewRandom(seed)
	return ReferenceLatitude + (r.Float64()-0.5)*0.1, ReferenceLongitude + (r.Float64()-0.5)*0.1
}

func TestResolveWithoutSourceUsesSeededFallback(t *testing.T) {
	r := NewResolver(nil, WithRandom(NewRandom(42)), WithClock(clock))

	loc := r.Resolve(context.Background())

	lat, lng := expectedFallback(42)
	assert.Equal(t, lat, loc.Latitude)
	assert.Equal(t, lng, loc.Longitude)
	require.NotNil(t, loc.Accuracy)
	assert.Equal(t, 10.0, *loc.Accuracy)
	assert.Equal(t, frozen, loc.Timestamp)
	assert.InDelta(t, ReferenceLatitude, loc.Latitude, 0.05)
	assert.InDelta(t, ReferenceLongitude, loc.Longitude, 0.05)
}

func TestResolveDeniedFallsBackWithoutRetrying(t *testing.T) {
	var calls atomic.Int32
	src := funcSource(func(ctx context.Context) (aggregate.GeoLocation, error) {
		calls.Add(1)
		return aggregate.GeoLocation{}, ErrPermissionDenied
	})
	r := NewResolver(src, WithRandom(NewRandom(7)), WithClock(clock), WithRetryInterval(time.Millisecond))

	loc := r.Resolve(context.Background())

	lat, _ := expectedFallback(7)
	assert.Equal(t, lat, loc.Latitude)
	assert.Equal(t, int32(1), calls.Load())
}

func TestResolveRetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	src := funcSource(func(ctx context.Context) (aggregate.GeoLocation, error) {
		if calls.Add(1) < 3 {
			return aggregate.GeoLocation{}, ErrPositionUnavailable
		}
		return aggregate.GeoLocation{Latitude: 29.0, Longitude: 78.0}, nil
	})
	r := NewResolver(src, WithClock(clock), WithRetryInterval(time.Millisecond))

	loc := r.Resolve(context.Background())

	assert.Equal(t, 29.0, loc.Latitude)
	assert.Equal(t, 78.0, loc.Longitude)
	assert.Equal(t, frozen, loc.Timestamp)
	assert.Equal(t, int32(3), calls.Load())
}

func TestResolveTimesOutToFallback(t *testing.T) {
	src := funcSource(func(ctx context.Context) (aggregate.GeoLocation, error) {
		<-ctx.Done()
		return aggregate.GeoLocation{}, ctx.Err()
	})
	r := NewResolver(src, WithRandom(NewRandom(3)), WithClock(clock), WithTimeout(20*time.Millisecond), WithRetryInterval(time.Millisecond))

	start := time.Now()
	loc := r.Resolve(context.Background())

	assert.Less(t, time.Since(start), 2*time.Second)
	lat, lng := expectedFallback(3)
	assert.Equal(t, lat, loc.Latitude)
	assert.Equal(t, lng, loc.Longitude)
}

func TestStaticSource(t *testing.T) {
	r := NewResolver(StaticSource{Latitude: 26.9, Longitude: 80.9, Accuracy: 5}, WithClock(clock))

	loc := r.Resolve(context.Background())

	assert.Equal(t, 26.9, loc.Latitude)
	require.NotNil(t, loc.Accuracy)
	assert.Equal(t, 5.0, *loc.Accuracy)
}

func TestNewRandomIsDeterministic(t *testing.T) {
	a, b := NewRandom(99), NewRandom(99)
	for i := 0; i < 5; i++ {
		assert.Equal(t, a.IntN(50), b.IntN(50))
	}
}
