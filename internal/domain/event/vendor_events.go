package event

import (
	"time"

	"fieldtrack/internal/domain/aggregate"

	"github.com/shopspring/decimal"
)

// VendorCreated event
type VendorCreated struct {
	Vendor    aggregate.Vendor `json:"vendor"`
	Timestamp time.Time        `json:"timestamp"`
}

func (e *VendorCreated) EventType() string     { return TypeVendorCreated }
func (e *VendorCreated) AggregateID() string   { return e.Vendor.ID }
func (e *VendorCreated) OccurredAt() time.Time { return e.Timestamp }
func (e *VendorCreated) Version() int          { return 1 }

// VendorUpdated event
type VendorUpdated struct {
	VendorID     string    `json:"vendor_id"`
	Correction   bool      `json:"correction"`
	EventVersion int       `json:"version"`
	Timestamp    time.Time `json:"timestamp"`
}

func (e *VendorUpdated) EventType() string     { return TypeVendorUpdated }
func (e *VendorUpdated) AggregateID() string   { return e.VendorID }
func (e *VendorUpdated) OccurredAt() time.Time { return e.Timestamp }
func (e *VendorUpdated) Version() int          { return e.EventVersion }

// VendorDeleted event
type VendorDeleted struct {
	VendorID  string    `json:"vendor_id"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *VendorDeleted) EventType() string     { return TypeVendorDeleted }
func (e *VendorDeleted) AggregateID() string   { return e.VendorID }
func (e *VendorDeleted) OccurredAt() time.Time { return e.Timestamp }
func (e *VendorDeleted) Version() int          { return 0 }

// VendorMetricsUpdated event
type VendorMetricsUpdated struct {
	VendorID  string               `json:"vendor_id"`
	Kind      aggregate.MetricKind `json:"kind"`
	Value     *decimal.Decimal     `json:"value,omitempty"`
	Timestamp time.Time            `json:"timestamp"`
}

func (e *VendorMetricsUpdated) EventType() string     { return TypeVendorMetricsUpdated }
func (e *VendorMetricsUpdated) AggregateID() string   { return e.VendorID }
func (e *VendorMetricsUpdated) OccurredAt() time.Time { return e.Timestamp }
func (e *VendorMetricsUpdated) Version() int          { return 0 }
