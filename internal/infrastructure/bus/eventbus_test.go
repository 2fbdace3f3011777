package bus

import (
	"context"
	"errors"
	"testing"
	"time"

	"fieldtrack/internal/domain/aggregate"
	"fieldtrack/internal/domain/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func meetingEvent(id string) *event.MeetingRecorded {
	return &event.MeetingRecorded{Meeting: aggregate.Meeting{ID: id}, Timestamp: time.Now()}
}

func TestPublishRunsHandlersInOrder(t *testing.T) {
	b := NewInMemoryEventBus()
	var seen []string

	require.NoError(t, b.Subscribe(event.TypeMeetingRecorded, EventHandlerFunc(func(ctx context.Context, e event.DomainEvent) error {
		seen = append(seen, "first:"+e.AggregateID())
		return nil
	})))
	require.NoError(t, b.Subscribe(event.TypeMeetingRecorded, EventHandlerFunc(func(ctx context.Context, e event.DomainEvent) error {
		seen = append(seen, "second:"+e.AggregateID())
		return nil
	})))

	require.NoError(t, b.Publish(context.Background(), meetingEvent("m1")))
	assert.Equal(t, []string{"first:m1", "second:m1"}, seen)
}

func TestPublishJoinsHandlerErrors(t *testing.T) {
	b := NewInMemoryEventBus()
	boom := errors.New("boom")
	ran := false

	_ = b.Subscribe(event.TypeMeetingRecorded, EventHandlerFunc(func(ctx context.Context, e event.DomainEvent) error {
		return boom
	}))
	_ = b.Subscribe(event.TypeMeetingRecorded, EventHandlerFunc(func(ctx context.Context, e event.DomainEvent) error {
		ran = true
		return nil
	}))

	err := b.Publish(context.Background(), meetingEvent("m1"))
	assert.ErrorIs(t, err, boom)
	assert.True(t, ran)
}

func TestStoppedBusDropsEvents(t *testing.T) {
	b := NewInMemoryEventBus()
	called := false
	_ = b.Subscribe(event.TypeMeetingRecorded, EventHandlerFunc(func(ctx context.Context, e event.DomainEvent) error {
		called = true
		return nil
	}))

	require.NoError(t, b.Stop())
	assert.Error(t, b.Publish(context.Background(), meetingEvent("m1")))
	assert.False(t, called)

	require.NoError(t, b.Start(context.Background()))
	assert.NoError(t, b.PublishBatch(context.Background(), []event.DomainEvent{meetingEvent("m2")}))
	assert.True(t, called)
}

func TestSubscribeRejectsNilHandler(t *testing.T) {
	assert.Error(t, NewInMemoryEventBus().Subscribe(event.TypeMeetingRecorded, nil))
}
