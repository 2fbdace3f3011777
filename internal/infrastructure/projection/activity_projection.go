package projection

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fieldtrack/internal/domain/aggregate"
	"fieldtrack/internal/domain/event"
	"fieldtrack/internal/domain/repository"
	"fieldtrack/internal/infrastructure/bus"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const unknownUser = "Unknown"

// ActivityProjection appends one activity entry per recorded field event
type ActivityProjection struct {
	activities repository.ActivityLogRepository
	users      repository.UserDirectory
	now        func() time.Time
}

// NewActivityProjection creates a new activity projection
func NewActivityProjection(activities repository.ActivityLogRepository, users repository.UserDirectory, now func() time.Time) *ActivityProjection {
	if now == nil {
		now = time.Now
	}
	return &ActivityProjection{activities: activities, users: users, now: now}
}

// Register subscribes the projection to every record-creating event
func (p *ActivityProjection) Register(b bus.EventBus) error {
	handler := bus.EventHandlerFunc(p.Handle)
	for _, eventType := range []string{
		event.TypeMeetingRecorded,
		event.TypeSaleRecorded,
		event.TypeSampleDistributed,
		event.TypeWorkLogRecorded,
	} {
		if err := b.Subscribe(eventType, handler); err != nil {
			return fmt.Errorf("subscribe %s: %w", eventType, err)
		}
	}
	return nil
}

// Handle turns a recorded event into an activity entry
func (p *ActivityProjection) Handle(ctx context.Context, e event.DomainEvent) error {
	var (
		userID     string
		entityType aggregate.ActivityEntityType
		details    string
	)

	switch evt := e.(type) {
	case *event.MeetingRecorded:
		userID, entityType = evt.Meeting.UserID, aggregate.EntityMeeting
		details = MeetingDetails(evt.Meeting)
	case *event.SaleRecorded:
		userID, entityType = evt.Sale.UserID, aggregate.EntitySale
		details = SaleDetails(evt.Sale)
	case *event.SampleDistributed:
		userID, entityType = evt.Sample.UserID, aggregate.EntitySample
		details = SampleDetails(evt.Sample)
	case *event.WorkLogRecorded:
		userID, entityType = evt.WorkLog.UserID, aggregate.EntityWorkLog
		details = WorkLogDetails(evt.WorkLog)
	default:
		return fmt.Errorf("unexpected event type: %T", e)
	}

	userName := unknownUser
	if u, ok := p.users.Get(userID); ok {
		userName = u.Name
	}

	p.activities.Insert(aggregate.ActivityLog{
		ID:         uuid.New().String(),
		UserID:     userID,
		UserName:   userName,
		Action:     "created",
		EntityType: entityType,
		EntityID:   e.AggregateID(),
		Timestamp:  p.now(),
		Details:    details,
	})
	return nil
}

func MeetingDetails(m aggregate.Meeting) string {
	kind := "Group"
	if m.Type == aggregate.MeetingOneOnOne {
		kind = "One-on-one"
	}
	return fmt.Sprintf("%s meeting with %s", kind, m.ContactName)
}

func SaleDetails(s aggregate.Sale) string {
	channel := "B2B"
	if s.Type == aggregate.SaleB2C {
		channel = "B2C"
	}
	return fmt.Sprintf("%s sale to %s - Rs. %s", channel, s.CustomerName, FormatAmount(s.TotalValue))
}

func SampleDetails(s aggregate.SampleDistribution) string {
	return fmt.Sprintf("Sample distribution to %s - %d %s", s.RecipientName, s.Quantity, s.Unit)
}

func WorkLogDetails(w aggregate.WorkLog) string {
	if w.Type == aggregate.WorkStart {
		return "Work started"
	}
	return "Work ended"
}

// FormatAmount renders an amount with comma thousands separators and at most
// three fraction digits, e.g. 1234567.5 -> "1,234,567.5".
func FormatAmount(d decimal.Decimal) string {
	s := d.Round(3).String()

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	intPart, frac, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	if hasFrac {
		return sign + b.String() + "." + frac
	}
	return sign + b.String()
}
