package event

import (
	"time"

	"fieldtrack/internal/domain/aggregate"
)

// MeetingRecorded event
type MeetingRecorded struct {
	Meeting   aggregate.Meeting `json:"meeting"`
	Timestamp time.Time         `json:"timestamp"`
}

func (e *MeetingRecorded) EventType() string     { return TypeMeetingRecorded }
func (e *MeetingRecorded) AggregateID() string   { return e.Meeting.ID }
func (e *MeetingRecorded) OccurredAt() time.Time { return e.Timestamp }
func (e *MeetingRecorded) Version() int          { return 1 }

// SaleRecorded event
type SaleRecorded struct {
	Sale      aggregate.Sale `json:"sale"`
	Timestamp time.Time      `json:"timestamp"`
}

func (e *SaleRecorded) EventType() string     { return TypeSaleRecorded }
func (e *SaleRecorded) AggregateID() string   { return e.Sale.ID }
func (e *SaleRecorded) OccurredAt() time.Time { return e.Timestamp }
func (e *SaleRecorded) Version() int          { return 1 }

// SampleDistributed event
type SampleDistributed struct {
	Sample    aggregate.SampleDistribution `json:"sample"`
	Timestamp time.Time                    `json:"timestamp"`
}

func (e *SampleDistributed) EventType() string     { return TypeSampleDistributed }
func (e *SampleDistributed) AggregateID() string   { return e.Sample.ID }
func (e *SampleDistributed) OccurredAt() time.Time { return e.Timestamp }
func (e *SampleDistributed) Version() int          { return 1 }

// WorkLogRecorded event
type WorkLogRecorded struct {
	WorkLog   aggregate.WorkLog `json:"work_log"`
	Timestamp time.Time         `json:"timestamp"`
}

func (e *WorkLogRecorded) EventType() string     { return TypeWorkLogRecorded }
func (e *WorkLogRecorded) AggregateID() string   { return e.WorkLog.ID }
func (e *WorkLogRecorded) OccurredAt() time.Time { return e.Timestamp }
func (e *WorkLogRecorded) Version() int          { return 1 }
