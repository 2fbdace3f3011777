package projection

import (
	"context"
	"fmt"

	"fieldtrack/internal/domain/aggregate"
	"fieldtrack/internal/domain/event"
	"fieldtrack/internal/infrastructure/bus"
	"fieldtrack/pkg/logger"

	"github.com/shopspring/decimal"
)

// MetricsUpdater credits engagement to a vendor. It reports false for an
// unknown vendor instead of failing.
type MetricsUpdater interface {
	UpdateMetrics(ctx context.Context, vendorID string, kind aggregate.MetricKind, value *decimal.Decimal) bool
}

// VendorProjection keeps vendor counters in step with recorded field events.
// It runs after the originating record is stored, so a failure here leaves
// the counters stale rather than undoing the record.
type VendorProjection struct {
	updater MetricsUpdater
}

// NewVendorProjection creates a new vendor projection
func NewVendorProjection(updater MetricsUpdater) *VendorProjection {
	return &VendorProjection{updater: updater}
}

// Register subscribes the projection to the field events it consumes
func (p *VendorProjection) Register(b bus.EventBus) error {
	subs := map[string]bus.EventHandlerFunc{
		event.TypeMeetingRecorded: func(ctx context.Context, e event.DomainEvent) error {
			return p.HandleMeetingRecorded(ctx, e.(*event.MeetingRecorded))
		},
		event.TypeSaleRecorded: func(ctx context.Context, e event.DomainEvent) error {
			return p.HandleSaleRecorded(ctx, e.(*event.SaleRecorded))
		},
		event.TypeSampleDistributed: func(ctx context.Context, e event.DomainEvent) error {
			return p.HandleSampleDistributed(ctx, e.(*event.SampleDistributed))
		},
	}
	for _, eventType := range []string{event.TypeMeetingRecorded, event.TypeSaleRecorded, event.TypeSampleDistributed} {
		if err := b.Subscribe(eventType, subs[eventType]); err != nil {
			return fmt.Errorf("subscribe %s: %w", eventType, err)
		}
	}
	return nil
}

// HandleMeetingRecorded credits a meeting
func (p *VendorProjection) HandleMeetingRecorded(ctx context.Context, evt *event.MeetingRecorded) error {
	p.credit(ctx, evt.Meeting.VendorID, aggregate.MetricMeeting, nil)
	return nil
}

// HandleSaleRecorded credits a purchase worth the sale total
func (p *VendorProjection) HandleSaleRecorded(ctx context.Context, evt *event.SaleRecorded) error {
	total := evt.Sale.TotalValue
	p.credit(ctx, evt.Sale.VendorID, aggregate.MetricSale, &total)
	return nil
}

// HandleSampleDistributed credits a sample
func (p *VendorProjection) HandleSampleDistributed(ctx context.Context, evt *event.SampleDistributed) error {
	p.credit(ctx, evt.Sample.VendorID, aggregate.MetricSample, nil)
	return nil
}

func (p *VendorProjection) credit(ctx context.Context, vendorID string, kind aggregate.MetricKind, value *decimal.Decimal) {
	if vendorID == "" {
		return
	}
	if !p.updater.UpdateMetrics(ctx, vendorID, kind, value) {
		logger.Warnf(ctx, "vendor %s not found, %s not credited", vendorID, kind)
	}
}
