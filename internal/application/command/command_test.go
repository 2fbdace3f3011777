package command

import (
	"context"
	"testing"
	"time"

	"fieldtrack/internal/domain/aggregate"
	"fieldtrack/internal/domain/event"
	"fieldtrack/internal/infrastructure/bus"
	"fieldtrack/internal/infrastructure/memory"
	apperrors "fieldtrack/pkg/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var frozen = time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)

func clock() time.Time { return frozen }

type fixedLocation struct {
	loc   aggregate.GeoLocation
	calls int
}

func (f *fixedLocation) Resolve(ctx context.Context) aggregate.GeoLocation {
	f.calls++
	return f.loc
}

type capturingBus struct {
	*bus.InMemoryEventBus
	events []event.DomainEvent
}

func newCapturingBus() *capturingBus {
	return &capturingBus{InMemoryEventBus: bus.NewInMemoryEventBus()}
}

func (b *capturingBus) Publish(ctx context.Context, evt event.DomainEvent) error {
	b.events = append(b.events, evt)
	return b.InMemoryEventBus.Publish(ctx, evt)
}

func requireValidationError(t *testing.T, err error) *apperrors.ApplicationError {
	t.Helper()
	appErr, ok := apperrors.As(err)
	require.True(t, ok, "expected ApplicationError, got %v", err)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	return appErr
}

func TestCreateVendorValidation(t *testing.T) {
	session := memory.NewSession()
	h := NewCreateVendorHandler(session.Vendors, newCapturingBus(), clock)

	_, err := h.Handle(context.Background(), &CreateVendor{Name: "Ramesh", Type: "trader"})
	appErr := requireValidationError(t, err)

	details, ok := appErr.Details.([]FieldError)
	require.True(t, ok)
	fields := map[string]string{}
	for _, d := range details {
		fields[d.Field] = d.Rule
	}
	assert.Equal(t, "stakeholder", fields["type"])
	assert.Equal(t, "required", fields["village"])
	assert.Zero(t, session.Vendors.Len())

	_, err = h.Handle(context.Background(), nil)
	requireValidationError(t, err)
}

func TestCreateVendorStoresZeroedCounters(t *testing.T) {
	session := memory.NewSession()
	b := newCapturingBus()
	h := NewCreateVendorHandler(session.Vendors, b, clock)

	v, err := h.Handle(context.Background(), &CreateVendor{
		Name:    "Ramesh Patel",
		Type:    aggregate.StakeholderFarmer,
		Village: "Sardhana",
		State:   "Uttar Pradesh",
		Tags:    []string{"dairy"},
	})
	require.NoError(t, err)
	require.NotNil(t, v)

	assert.NotEmpty(t, v.ID)
	assert.True(t, v.IsActive)
	assert.Equal(t, frozen, v.CreatedAt)
	assert.Zero(t, v.TotalMeetings)
	assert.True(t, v.TotalRevenue.IsZero())

	stored, ok := session.Vendors.Get(v.ID)
	require.True(t, ok)
	assert.Equal(t, []string{"dairy"}, stored.Tags)

	require.Len(t, b.events, 1)
	assert.Equal(t, event.TypeVendorCreated, b.events[0].EventType())
}

func createVendor(t *testing.T, h *CreateVendorHandler) *aggregate.Vendor {
	t.Helper()
	v, err := h.Handle(context.Background(), &CreateVendor{Name: "Ramesh", Type: aggregate.StakeholderSeller, Village: "Sardhana"})
	require.NoError(t, err)
	return v
}

func TestUpdateVendorPatchAndCorrection(t *testing.T) {
	session := memory.NewSession()
	b := newCapturingBus()
	v := createVendor(t, NewCreateVendorHandler(session.Vendors, b, clock))
	h := NewUpdateVendorHandler(session.Vendors, b, clock)

	name := "Ramesh Kumar"
	updated, err := h.Handle(context.Background(), &UpdateVendor{VendorID: v.ID, Name: &name})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Ramesh Kumar", updated.Name)
	assert.Equal(t, "Sardhana", updated.Village)

	last := b.events[len(b.events)-1].(*event.VendorUpdated)
	assert.False(t, last.Correction)

	meetings := 7
	updated, err = h.Handle(context.Background(), &UpdateVendor{VendorID: v.ID, TotalMeetings: &meetings})
	require.NoError(t, err)
	assert.Equal(t, 7, updated.TotalMeetings)
	last = b.events[len(b.events)-1].(*event.VendorUpdated)
	assert.True(t, last.Correction)
}

func TestUpdateVendorUnknownReturnsNil(t *testing.T) {
	session := memory.NewSession()
	h := NewUpdateVendorHandler(session.Vendors, newCapturingBus(), clock)

	name := "x"
	v, err := h.Handle(context.Background(), &UpdateVendor{VendorID: "missing", Name: &name})
	assert.NoError(t, err)
	assert.Nil(t, v)
}

func TestDeleteVendor(t *testing.T) {
	session := memory.NewSession()
	b := newCapturingBus()
	v := createVendor(t, NewCreateVendorHandler(session.Vendors, b, clock))
	h := NewDeleteVendorHandler(session.Vendors, b, clock)

	ok, err := h.Handle(context.Background(), &DeleteVendor{VendorID: v.ID})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Handle(context.Background(), &DeleteVendor{VendorID: v.ID})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUpdateVendorMetrics(t *testing.T) {
	session := memory.NewSession()
	b := newCapturingBus()
	v := createVendor(t, NewCreateVendorHandler(session.Vendors, b, clock))
	h := NewUpdateVendorMetricsHandler(session.Vendors, b, clock)
	ctx := context.Background()

	amount := decimal.NewFromInt(1500)
	assert.True(t, h.UpdateMetrics(ctx, v.ID, aggregate.MetricSale, &amount))
	assert.True(t, h.UpdateMetrics(ctx, v.ID, aggregate.MetricMeeting, nil))
	assert.False(t, h.UpdateMetrics(ctx, "missing", aggregate.MetricMeeting, nil))

	stored, _ := session.Vendors.Get(v.ID)
	assert.Equal(t, 1, stored.TotalPurchases)
	assert.Equal(t, 1, stored.TotalMeetings)
	assert.True(t, stored.TotalRevenue.Equal(amount))
	require.NotNil(t, stored.LastContactDate)
	assert.Equal(t, frozen, *stored.LastContactDate)

	_, err := h.Handle(ctx, &UpdateVendorMetrics{VendorID: v.ID, Kind: "call"})
	requireValidationError(t, err)

	updated, err := h.Handle(ctx, &UpdateVendorMetrics{VendorID: "missing", Kind: aggregate.MetricSample})
	assert.NoError(t, err)
	assert.Nil(t, updated)
}

func validSale() *CreateSale {
	return &CreateSale{
		UserID:       "u2",
		Type:         aggregate.SaleB2C,
		CustomerName: "Suresh",
		ProductSKU:   "CAL-1",
		ProductName:  "Calcium Plus",
		PackSize:     "1kg",
		Quantity:     3,
		UnitPrice:    decimal.RequireFromString("450.50"),
		PaymentMode:  aggregate.PaymentCash,
		Village:      "Sardhana",
	}
}

func TestCreateSaleComputesTotalAndResolvesLocation(t *testing.T) {
	session := memory.NewSession()
	loc := &fixedLocation{loc: aggregate.GeoLocation{Latitude: 28.9, Longitude: 77.6}}
	b := newCapturingBus()
	h := NewCreateSaleHandler(session.Sales, b, loc, clock)

	sale, err := h.Handle(context.Background(), validSale())
	require.NoError(t, err)

	assert.True(t, sale.TotalValue.Equal(decimal.RequireFromString("1351.5")))
	assert.Equal(t, 28.9, sale.Location.Latitude)
	assert.Equal(t, 1, loc.calls)
	assert.Equal(t, 1, session.Sales.Len())
	require.Len(t, b.events, 1)
	assert.Equal(t, event.TypeSaleRecorded, b.events[0].EventType())
}

func TestCreateSaleKeepsGivenLocation(t *testing.T) {
	session := memory.NewSession()
	loc := &fixedLocation{}
	h := NewCreateSaleHandler(session.Sales, newCapturingBus(), loc, clock)

	cmd := validSale()
	cmd.Location = &aggregate.GeoLocation{Latitude: 29.1, Longitude: 77.7}
	sale, err := h.Handle(context.Background(), cmd)
	require.NoError(t, err)

	assert.Equal(t, 29.1, sale.Location.Latitude)
	assert.Zero(t, loc.calls)
}

func TestCreateSaleRejectsBadInput(t *testing.T) {
	session := memory.NewSession()
	h := NewCreateSaleHandler(session.Sales, newCapturingBus(), &fixedLocation{}, clock)

	cmd := validSale()
	cmd.Quantity = 0
	_, err := h.Handle(context.Background(), cmd)
	requireValidationError(t, err)

	cmd = validSale()
	cmd.UnitPrice = decimal.NewFromInt(-1)
	_, err = h.Handle(context.Background(), cmd)
	requireValidationError(t, err)

	cmd = validSale()
	cmd.Location = &aggregate.GeoLocation{Latitude: 91}
	_, err = h.Handle(context.Background(), cmd)
	requireValidationError(t, err)

	assert.Zero(t, session.Sales.Len())
}

func TestUpdateSaleRecomputesTotal(t *testing.T) {
	session := memory.NewSession()
	created, err := NewCreateSaleHandler(session.Sales, newCapturingBus(), &fixedLocation{}, clock).Handle(context.Background(), validSale())
	require.NoError(t, err)
	h := NewUpdateSaleHandler(session.Sales)

	qty := 10
	updated, err := h.Handle(context.Background(), &UpdateSale{SaleID: created.ID, Quantity: &qty})
	require.NoError(t, err)
	assert.True(t, updated.TotalValue.Equal(decimal.NewFromInt(4505)))

	missing, err := h.Handle(context.Background(), &UpdateSale{SaleID: "missing", Quantity: &qty})
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCreateMeetingDefaultsPhotos(t *testing.T) {
	session := memory.NewSession()
	h := NewCreateMeetingHandler(session.Meetings, newCapturingBus(), &fixedLocation{}, clock)

	m, err := h.Handle(context.Background(), &CreateMeeting{
		UserID:          "u2",
		Type:            aggregate.MeetingGroup,
		Category:        aggregate.CategoryFarmerTraining,
		StakeholderType: aggregate.StakeholderFarmer,
		ContactName:     "Sardhana farmers",
		Village:         "Sardhana",
	})
	require.NoError(t, err)
	assert.NotNil(t, m.Photos)
	assert.Equal(t, frozen, m.CreatedAt)

	_, err = h.Handle(context.Background(), &CreateMeeting{UserID: "u2", Type: "webinar"})
	requireValidationError(t, err)
}

func TestCreateWorkLogDefaultsTimestamp(t *testing.T) {
	session := memory.NewSession()
	h := NewCreateWorkLogHandler(session.WorkLogs, newCapturingBus(), &fixedLocation{}, clock)

	w, err := h.Handle(context.Background(), &CreateWorkLog{UserID: "u2", Type: aggregate.WorkStart})
	require.NoError(t, err)
	assert.Equal(t, frozen, w.Timestamp)

	explicit := frozen.Add(-2 * time.Hour)
	w, err = h.Handle(context.Background(), &CreateWorkLog{UserID: "u2", Type: aggregate.WorkEnd, Timestamp: explicit})
	require.NoError(t, err)
	assert.Equal(t, explicit, w.Timestamp)

	odo := -5.0
	_, err = h.Handle(context.Background(), &CreateWorkLog{UserID: "u2", Type: aggregate.WorkEnd, OdometerReading: &odo})
	requireValidationError(t, err)
}

func TestDeleteRecordHandler(t *testing.T) {
	session := memory.NewSession()
	s, err := NewCreateSampleHandler(session.Samples, newCapturingBus(), &fixedLocation{}, clock).Handle(context.Background(), &CreateSample{
		UserID:          "u2",
		RecipientName:   "Mohan",
		StakeholderType: aggregate.StakeholderFarmer,
		ProductSKU:      "MIN-1",
		ProductName:     "Mineral Mix",
		Quantity:        2,
		Unit:            "kg",
		Purpose:         aggregate.PurposeTrial,
		Village:         "Sardhana",
	})
	require.NoError(t, err)

	h := NewDeleteRecordHandler(session.Samples)
	ok, err := h.Handle(context.Background(), &DeleteRecord{ID: s.ID})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Handle(context.Background(), &DeleteRecord{ID: s.ID})
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = h.Handle(context.Background(), &DeleteRecord{})
	requireValidationError(t, err)
}
