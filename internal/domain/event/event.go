package event

import "time"

// DomainEvent represents a domain event
type DomainEvent interface {
	EventType() string
	AggregateID() string
	OccurredAt() time.Time
	Version() int
}

// Event type names used for bus subscriptions
const (
	TypeVendorCreated        = "VendorCreated"
	TypeVendorUpdated        = "VendorUpdated"
	TypeVendorDeleted        = "VendorDeleted"
	TypeVendorMetricsUpdated = "VendorMetricsUpdated"
	TypeMeetingRecorded      = "MeetingRecorded"
	TypeSaleRecorded         = "SaleRecorded"
	TypeSampleDistributed    = "SampleDistributed"
	TypeWorkLogRecorded      = "WorkLogRecorded"
)
