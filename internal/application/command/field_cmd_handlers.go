package command

import (
	"context"
	"slices"
	"time"

	"fieldtrack/internal/domain/aggregate"
	"fieldtrack/internal/domain/event"
	"fieldtrack/internal/domain/repository"
	"fieldtrack/internal/infrastructure/bus"
	"fieldtrack/pkg/errors"
	"fieldtrack/pkg/logger"

	"github.com/google/uuid"
)

// LocationResolver supplies the device position for records captured
// without one. It always returns a location.
type LocationResolver interface {
	Resolve(ctx context.Context) aggregate.GeoLocation
}

func resolveLocation(ctx context.Context, given *aggregate.GeoLocation, resolver LocationResolver) aggregate.GeoLocation {
	if given != nil {
		return given.Clone()
	}
	return resolver.Resolve(ctx)
}

// CreateMeetingHandler records meetings
type CreateMeetingHandler struct {
	meetings repository.MeetingRepository
	eventBus bus.EventBus
	location LocationResolver
	now      func() time.Time
}

// NewCreateMeetingHandler creates a new create meeting handler
func NewCreateMeetingHandler(meetings repository.MeetingRepository, eventBus bus.EventBus, location LocationResolver, now func() time.Time) *CreateMeetingHandler {
	return &CreateMeetingHandler{meetings: meetings, eventBus: eventBus, location: location, now: clockOrNow(now)}
}

// Handle stores the meeting and announces it
func (h *CreateMeetingHandler) Handle(ctx context.Context, cmd *CreateMeeting) (*aggregate.Meeting, error) {
	if cmd == nil {
		return nil, errors.NewValidationError("command cannot be nil")
	}
	if err := validateCommand(cmd); err != nil {
		return nil, err
	}

	meeting := aggregate.Meeting{
		ID:                uuid.New().String(),
		UserID:            cmd.UserID,
		VendorID:          cmd.VendorID,
		Type:              cmd.Type,
		Category:          cmd.Category,
		StakeholderType:   cmd.StakeholderType,
		ContactName:       cmd.ContactName,
		ContactPhone:      cmd.ContactPhone,
		Village:           cmd.Village,
		Location:          resolveLocation(ctx, cmd.Location, h.location),
		AttendanceCount:   cmd.AttendanceCount,
		BusinessPotential: cmd.BusinessPotential,
		Notes:             cmd.Notes,
		Photos:            slices.Clone(cmd.Photos),
		CreatedAt:         h.now(),
	}
	if meeting.Photos == nil {
		meeting.Photos = []string{}
	}
	meeting = meeting.Clone()

	h.meetings.Insert(meeting)
	publish(ctx, h.eventBus, &event.MeetingRecorded{Meeting: meeting.Clone(), Timestamp: meeting.CreatedAt})

	return &meeting, nil
}

// UpdateMeetingHandler applies partial meeting updates
type UpdateMeetingHandler struct {
	meetings repository.MeetingRepository
}

// NewUpdateMeetingHandler creates a new update meeting handler
func NewUpdateMeetingHandler(meetings repository.MeetingRepository) *UpdateMeetingHandler {
	return &UpdateMeetingHandler{meetings: meetings}
}

// Handle applies the patch. An unknown meeting yields (nil, nil).
func (h *UpdateMeetingHandler) Handle(ctx context.Context, cmd *UpdateMeeting) (*aggregate.Meeting, error) {
	if cmd == nil {
		return nil, errors.NewValidationError("command cannot be nil")
	}
	if err := validateCommand(cmd); err != nil {
		return nil, err
	}

	updated, ok := h.meetings.Update(cmd.MeetingID, func(m *aggregate.Meeting) {
		if cmd.Type != nil {
			m.Type = *cmd.Type
		}
		if cmd.Category != nil {
			m.Category = *cmd.Category
		}
		setString(&m.ContactName, cmd.ContactName)
		setString(&m.ContactPhone, cmd.ContactPhone)
		setString(&m.Village, cmd.Village)
		setString(&m.BusinessPotential, cmd.BusinessPotential)
		setString(&m.Notes, cmd.Notes)
		if cmd.AttendanceCount != nil {
			n := *cmd.AttendanceCount
			m.AttendanceCount = &n
		}
		if cmd.Photos != nil {
			m.Photos = slices.Clone(cmd.Photos)
		}
	})
	if !ok {
		return nil, nil
	}
	return &updated, nil
}

// CreateSaleHandler records sales
type CreateSaleHandler struct {
	sales    repository.SaleRepository
	eventBus bus.EventBus
	location LocationResolver
	now      func() time.Time
}

// NewCreateSaleHandler creates a new create sale handler
func NewCreateSaleHandler(sales repository.SaleRepository, eventBus bus.EventBus, location LocationResolver, now func() time.Time) *CreateSaleHandler {
	return &CreateSaleHandler{sales: sales, eventBus: eventBus, location: location, now: clockOrNow(now)}
}

// Handle stores the sale with its computed total and announces it
func (h *CreateSaleHandler) Handle(ctx context.Context, cmd *CreateSale) (*aggregate.Sale, error) {
	if cmd == nil {
		return nil, errors.NewValidationError("command cannot be nil")
	}
	if err := validateCommand(cmd); err != nil {
		return nil, err
	}
	if cmd.UnitPrice.IsNegative() {
		return nil, errors.NewValidationError("unit_price cannot be negative")
	}

	sale := aggregate.Sale{
		ID:               uuid.New().String(),
		UserID:           cmd.UserID,
		VendorID:         cmd.VendorID,
		Type:             cmd.Type,
		CustomerName:     cmd.CustomerName,
		CustomerContact:  cmd.CustomerContact,
		CustomerType:     cmd.CustomerType,
		BusinessName:     cmd.BusinessName,
		ProductSKU:       cmd.ProductSKU,
		ProductName:      cmd.ProductName,
		PackSize:         cmd.PackSize,
		Quantity:         cmd.Quantity,
		UnitPrice:        cmd.UnitPrice,
		TotalValue:       aggregate.ComputeTotal(cmd.Quantity, cmd.UnitPrice),
		PaymentMode:      cmd.PaymentMode,
		Location:         resolveLocation(ctx, cmd.Location, h.location),
		Village:          cmd.Village,
		IsRepeatOrder:    cmd.IsRepeatOrder,
		DeliveryTimeline: cmd.DeliveryTimeline,
		Notes:            cmd.Notes,
		CreatedAt:        h.now(),
	}
	sale = sale.Clone()

	h.sales.Insert(sale)
	publish(ctx, h.eventBus, &event.SaleRecorded{Sale: sale.Clone(), Timestamp: sale.CreatedAt})

	return &sale, nil
}

// UpdateSaleHandler applies partial sale updates
type UpdateSaleHandler struct {
	sales repository.SaleRepository
}

// NewUpdateSaleHandler creates a new update sale handler
func NewUpdateSaleHandler(sales repository.SaleRepository) *UpdateSaleHandler {
	return &UpdateSaleHandler{sales: sales}
}

// Handle applies the patch and recomputes the total. An unknown sale yields (nil, nil).
func (h *UpdateSaleHandler) Handle(ctx context.Context, cmd *UpdateSale) (*aggregate.Sale, error) {
	if cmd == nil {
		return nil, errors.NewValidationError("command cannot be nil")
	}
	if err := validateCommand(cmd); err != nil {
		return nil, err
	}
	if cmd.UnitPrice != nil && cmd.UnitPrice.IsNegative() {
		return nil, errors.NewValidationError("unit_price cannot be negative")
	}

	updated, ok := h.sales.Update(cmd.SaleID, func(s *aggregate.Sale) {
		setString(&s.CustomerName, cmd.CustomerName)
		setString(&s.CustomerContact, cmd.CustomerContact)
		setString(&s.BusinessName, cmd.BusinessName)
		setString(&s.Village, cmd.Village)
		setString(&s.DeliveryTimeline, cmd.DeliveryTimeline)
		setString(&s.Notes, cmd.Notes)
		if cmd.Quantity != nil {
			s.Quantity = *cmd.Quantity
		}
		if cmd.UnitPrice != nil {
			s.UnitPrice = *cmd.UnitPrice
		}
		if cmd.PaymentMode != nil {
			s.PaymentMode = *cmd.PaymentMode
		}
		if cmd.IsRepeatOrder != nil {
			s.IsRepeatOrder = *cmd.IsRepeatOrder
		}
		s.TotalValue = aggregate.ComputeTotal(s.Quantity, s.UnitPrice)
	})
	if !ok {
		return nil, nil
	}
	return &updated, nil
}

// CreateSampleHandler records sample distributions
type CreateSampleHandler struct {
	samples  repository.SampleRepository
	eventBus bus.EventBus
	location LocationResolver
	now      func() time.Time
}

// NewCreateSampleHandler creates a new create sample handler
func NewCreateSampleHandler(samples repository.SampleRepository, eventBus bus.EventBus, location LocationResolver, now func() time.Time) *CreateSampleHandler {
	return &CreateSampleHandler{samples: samples, eventBus: eventBus, location: location, now: clockOrNow(now)}
}

// Handle stores the distribution and announces it
func (h *CreateSampleHandler) Handle(ctx context.Context, cmd *CreateSample) (*aggregate.SampleDistribution, error) {
	if cmd == nil {
		return nil, errors.NewValidationError("command cannot be nil")
	}
	if err := validateCommand(cmd); err != nil {
		return nil, err
	}

	sample := aggregate.SampleDistribution{
		ID:               uuid.New().String(),
		UserID:           cmd.UserID,
		VendorID:         cmd.VendorID,
		RecipientName:    cmd.RecipientName,
		RecipientContact: cmd.RecipientContact,
		StakeholderType:  cmd.StakeholderType,
		ProductSKU:       cmd.ProductSKU,
		ProductName:      cmd.ProductName,
		Quantity:         cmd.Quantity,
		Unit:             cmd.Unit,
		BatchNumber:      cmd.BatchNumber,
		Purpose:          cmd.Purpose,
		Location:         resolveLocation(ctx, cmd.Location, h.location),
		Village:          cmd.Village,
		Notes:            cmd.Notes,
		CreatedAt:        h.now(),
	}

	h.samples.Insert(sample)
	publish(ctx, h.eventBus, &event.SampleDistributed{Sample: sample.Clone(), Timestamp: sample.CreatedAt})

	return &sample, nil
}

// UpdateSampleHandler applies partial sample updates
type UpdateSampleHandler struct {
	samples repository.SampleRepository
}

// NewUpdateSampleHandler creates a new update sample handler
func NewUpdateSampleHandler(samples repository.SampleRepository) *UpdateSampleHandler {
	return &UpdateSampleHandler{samples: samples}
}

// Handle applies the patch. An unknown sample yields (nil, nil).
func (h *UpdateSampleHandler) Handle(ctx context.Context, cmd *UpdateSample) (*aggregate.SampleDistribution, error) {
	if cmd == nil {
		return nil, errors.NewValidationError("command cannot be nil")
	}
	if err := validateCommand(cmd); err != nil {
		return nil, err
	}

	updated, ok := h.samples.Update(cmd.SampleID, func(s *aggregate.SampleDistribution) {
		setString(&s.RecipientName, cmd.RecipientName)
		setString(&s.RecipientContact, cmd.RecipientContact)
		setString(&s.Unit, cmd.Unit)
		setString(&s.BatchNumber, cmd.BatchNumber)
		setString(&s.Village, cmd.Village)
		setString(&s.Notes, cmd.Notes)
		if cmd.Quantity != nil {
			s.Quantity = *cmd.Quantity
		}
		if cmd.Purpose != nil {
			s.Purpose = *cmd.Purpose
		}
	})
	if !ok {
		return nil, nil
	}
	return &updated, nil
}

// CreateWorkLogHandler records work starts and ends
type CreateWorkLogHandler struct {
	workLogs repository.WorkLogRepository
	eventBus bus.EventBus
	location LocationResolver
	now      func() time.Time
}

// NewCreateWorkLogHandler creates a new create work log handler
func NewCreateWorkLogHandler(workLogs repository.WorkLogRepository, eventBus bus.EventBus, location LocationResolver, now func() time.Time) *CreateWorkLogHandler {
	return &CreateWorkLogHandler{workLogs: workLogs, eventBus: eventBus, location: location, now: clockOrNow(now)}
}

// Handle stores the work log and announces it
func (h *CreateWorkLogHandler) Handle(ctx context.Context, cmd *CreateWorkLog) (*aggregate.WorkLog, error) {
	if cmd == nil {
		return nil, errors.NewValidationError("command cannot be nil")
	}
	if err := validateCommand(cmd); err != nil {
		return nil, err
	}

	ts := cmd.Timestamp
	if ts.IsZero() {
		ts = h.now()
	}

	workLog := aggregate.WorkLog{
		ID:              uuid.New().String(),
		UserID:          cmd.UserID,
		Type:            cmd.Type,
		Timestamp:       ts,
		Location:        resolveLocation(ctx, cmd.Location, h.location),
		OdometerReading: cmd.OdometerReading,
		Notes:           cmd.Notes,
	}
	workLog = workLog.Clone()

	h.workLogs.Insert(workLog)
	publish(ctx, h.eventBus, &event.WorkLogRecorded{WorkLog: workLog.Clone(), Timestamp: h.now()})

	return &workLog, nil
}

// UpdateWorkLogHandler applies partial work log updates
type UpdateWorkLogHandler struct {
	workLogs repository.WorkLogRepository
}

// NewUpdateWorkLogHandler creates a new update work log handler
func NewUpdateWorkLogHandler(workLogs repository.WorkLogRepository) *UpdateWorkLogHandler {
	return &UpdateWorkLogHandler{workLogs: workLogs}
}

// Handle applies the patch. An unknown work log yields (nil, nil).
func (h *UpdateWorkLogHandler) Handle(ctx context.Context, cmd *UpdateWorkLog) (*aggregate.WorkLog, error) {
	if cmd == nil {
		return nil, errors.NewValidationError("command cannot be nil")
	}
	if err := validateCommand(cmd); err != nil {
		return nil, err
	}

	updated, ok := h.workLogs.Update(cmd.WorkLogID, func(w *aggregate.WorkLog) {
		if cmd.OdometerReading != nil {
			r := *cmd.OdometerReading
			w.OdometerReading = &r
		}
		setString(&w.Notes, cmd.Notes)
	})
	if !ok {
		return nil, nil
	}
	return &updated, nil
}

// DeleteRecordHandler removes a record from any collection. Deleting never
// touches vendor counters or the activity log.
type DeleteRecordHandler[T repository.Record[T]] struct {
	records repository.Collection[T]
}

// NewDeleteRecordHandler creates a delete handler over one collection
func NewDeleteRecordHandler[T repository.Record[T]](records repository.Collection[T]) *DeleteRecordHandler[T] {
	return &DeleteRecordHandler[T]{records: records}
}

// Handle reports whether the record existed
func (h *DeleteRecordHandler[T]) Handle(ctx context.Context, cmd *DeleteRecord) (bool, error) {
	if cmd == nil {
		return false, errors.NewValidationError("command cannot be nil")
	}
	if err := validateCommand(cmd); err != nil {
		return false, err
	}
	return h.records.Delete(cmd.ID), nil
}

func publish(ctx context.Context, eventBus bus.EventBus, evt event.DomainEvent) {
	if err := eventBus.Publish(ctx, evt); err != nil {
		logger.Warnf(ctx, "failed to publish %s event: %v", evt.EventType(), err)
	}
}
