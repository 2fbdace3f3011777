package projection

import (
	"context"
	"testing"
	"time"

	"fieldtrack/internal/domain/aggregate"
	"fieldtrack/internal/domain/event"
	"fieldtrack/internal/infrastructure/bus"
	"fieldtrack/internal/infrastructure/memory"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var frozen = time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)

func TestFormatAmount(t *testing.T) {
	cases := map[string]string{
		"0":         "0",
		"999":       "999",
		"1000":      "1,000",
		"1250":      "1,250",
		"1234567.5": "1,234,567.5",
		"12.34567":  "12.346",
		"-4500":     "-4,500",
		"100000.25": "100,000.25",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatAmount(decimal.RequireFromString(in)), in)
	}
}

func TestDetailsPhrases(t *testing.T) {
	assert.Equal(t, "One-on-one meeting with Ramesh",
		MeetingDetails(aggregate.Meeting{Type: aggregate.MeetingOneOnOne, ContactName: "Ramesh"}))
	assert.Equal(t, "Group meeting with Sardhana farmers",
		MeetingDetails(aggregate.Meeting{Type: aggregate.MeetingGroup, ContactName: "Sardhana farmers"}))
	assert.Equal(t, "B2C sale to Suresh - Rs. 2,400",
		SaleDetails(aggregate.Sale{Type: aggregate.SaleB2C, CustomerName: "Suresh", TotalValue: decimal.NewFromInt(2400)}))
	assert.Equal(t, "B2B sale to Agro Mart - Rs. 15,000",
		SaleDetails(aggregate.Sale{Type: aggregate.SaleB2B, CustomerName: "Agro Mart", TotalValue: decimal.NewFromInt(15000)}))
	assert.Equal(t, "Sample distribution to Mohan - 2 kg",
		SampleDetails(aggregate.SampleDistribution{RecipientName: "Mohan", Quantity: 2, Unit: "kg"}))
	assert.Equal(t, "Work started", WorkLogDetails(aggregate.WorkLog{Type: aggregate.WorkStart}))
	assert.Equal(t, "Work ended", WorkLogDetails(aggregate.WorkLog{Type: aggregate.WorkEnd}))
}

func TestActivityProjectionAppendsEntry(t *testing.T) {
	session := memory.NewSession(memory.DemoUsers(frozen)...)
	b := bus.NewInMemoryEventBus()
	p := NewActivityProjection(session.Activities, session.Users, func() time.Time { return frozen })
	require.NoError(t, p.Register(b))

	err := b.Publish(context.Background(), &event.MeetingRecorded{
		Meeting: aggregate.Meeting{ID: "m1", UserID: "u2", Type: aggregate.MeetingOneOnOne, ContactName: "Ramesh"},
	})
	require.NoError(t, err)

	logs := session.Activities.All()
	require.Len(t, logs, 1)
	entry := logs[0]
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "u2", entry.UserID)
	assert.Equal(t, "Rajesh Kumar", entry.UserName)
	assert.Equal(t, "created", entry.Action)
	assert.Equal(t, aggregate.EntityMeeting, entry.EntityType)
	assert.Equal(t, "m1", entry.EntityID)
	assert.Equal(t, frozen, entry.Timestamp)
	assert.Equal(t, "One-on-one meeting with Ramesh", entry.Details)
}

func TestActivityProjectionUnknownUser(t *testing.T) {
	session := memory.NewSession()
	p := NewActivityProjection(session.Activities, session.Users, nil)

	require.NoError(t, p.Handle(context.Background(), &event.WorkLogRecorded{
		WorkLog: aggregate.WorkLog{ID: "w1", UserID: "ghost", Type: aggregate.WorkEnd},
	}))

	logs := session.Activities.All()
	require.Len(t, logs, 1)
	assert.Equal(t, "Unknown", logs[0].UserName)
	assert.Equal(t, aggregate.EntityWorkLog, logs[0].EntityType)
}

func TestActivityProjectionRejectsOtherEvents(t *testing.T) {
	session := memory.NewSession()
	p := NewActivityProjection(session.Activities, session.Users, nil)

	assert.Error(t, p.Handle(context.Background(), &event.VendorDeleted{VendorID: "v1"}))
	assert.Zero(t, session.Activities.Len())
}

type credit struct {
	vendorID string
	kind     aggregate.MetricKind
	value    *decimal.Decimal
}

type recordingUpdater struct {
	known   map[string]bool
	credits []credit
}

func (r *recordingUpdater) UpdateMetrics(ctx context.Context, vendorID string, kind aggregate.MetricKind, value *decimal.Decimal) bool {
	r.credits = append(r.credits, credit{vendorID, kind, value})
	return r.known[vendorID]
}

func TestVendorProjectionCreditsLinkedVendor(t *testing.T) {
	updater := &recordingUpdater{known: map[string]bool{"v1": true}}
	b := bus.NewInMemoryEventBus()
	require.NoError(t, NewVendorProjection(updater).Register(b))
	ctx := context.Background()

	require.NoError(t, b.Publish(ctx, &event.MeetingRecorded{Meeting: aggregate.Meeting{ID: "m1", VendorID: "v1"}}))
	require.NoError(t, b.Publish(ctx, &event.SaleRecorded{Sale: aggregate.Sale{ID: "s1", VendorID: "v1", TotalValue: decimal.NewFromInt(900)}}))
	require.NoError(t, b.Publish(ctx, &event.SampleDistributed{Sample: aggregate.SampleDistribution{ID: "d1", VendorID: "v1"}}))
	require.NoError(t, b.Publish(ctx, &event.WorkLogRecorded{WorkLog: aggregate.WorkLog{ID: "w1"}}))

	require.Len(t, updater.credits, 3)
	assert.Equal(t, aggregate.MetricMeeting, updater.credits[0].kind)
	assert.Nil(t, updater.credits[0].value)
	assert.Equal(t, aggregate.MetricSale, updater.credits[1].kind)
	require.NotNil(t, updater.credits[1].value)
	assert.True(t, updater.credits[1].value.Equal(decimal.NewFromInt(900)))
	assert.Equal(t, aggregate.MetricSample, updater.credits[2].kind)
}

func TestVendorProjectionSkipsUnlinkedAndUnknown(t *testing.T) {
	updater := &recordingUpdater{known: map[string]bool{}}
	p := NewVendorProjection(updater)
	ctx := context.Background()

	require.NoError(t, p.HandleMeetingRecorded(ctx, &event.MeetingRecorded{Meeting: aggregate.Meeting{ID: "m1"}}))
	assert.Empty(t, updater.credits)

	require.NoError(t, p.HandleSampleDistributed(ctx, &event.SampleDistributed{Sample: aggregate.SampleDistribution{ID: "d1", VendorID: "gone"}}))
	assert.Len(t, updater.credits, 1)
}
