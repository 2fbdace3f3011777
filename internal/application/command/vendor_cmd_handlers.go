package command

import (
	"context"
	"fmt"
	"slices"
	"time"

	"fieldtrack/internal/domain/aggregate"
	"fieldtrack/internal/domain/event"
	"fieldtrack/internal/domain/repository"
	"fieldtrack/internal/infrastructure/bus"
	"fieldtrack/pkg/errors"
	"fieldtrack/pkg/logger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func clockOrNow(now func() time.Time) func() time.Time {
	if now == nil {
		return time.Now
	}
	return now
}

// CreateVendorHandler handles create vendor commands
type CreateVendorHandler struct {
	vendors  repository.VendorRepository
	eventBus bus.EventBus
	now      func() time.Time
}

// NewCreateVendorHandler creates a new create vendor handler
func NewCreateVendorHandler(vendors repository.VendorRepository, eventBus bus.EventBus, now func() time.Time) *CreateVendorHandler {
	return &CreateVendorHandler{vendors: vendors, eventBus: eventBus, now: clockOrNow(now)}
}

// Handle processes the create vendor command
func (h *CreateVendorHandler) Handle(ctx context.Context, cmd *CreateVendor) (*aggregate.Vendor, error) {
	if cmd == nil {
		return nil, errors.NewValidationError("command cannot be nil")
	}
	if err := validateCommand(cmd); err != nil {
		return nil, err
	}

	vendor, err := aggregate.NewVendor(uuid.New().String(), cmd.Name, cmd.Type, cmd.Village, h.now())
	if err != nil {
		return nil, errors.NewValidationError(fmt.Sprintf("failed to create vendor: %v", err))
	}

	vendor.Phone = cmd.Phone
	vendor.Email = cmd.Email
	vendor.BusinessName = cmd.BusinessName
	vendor.District = cmd.District
	vendor.State = cmd.State
	vendor.Address = cmd.Address
	vendor.Notes = cmd.Notes
	if cmd.IsActive != nil {
		vendor.IsActive = *cmd.IsActive
	}
	if cmd.Tags != nil {
		vendor.Tags = slices.Clone(cmd.Tags)
	}
	if cmd.Location != nil {
		loc := cmd.Location.Clone()
		vendor.Location = &loc
	}

	h.vendors.Insert(*vendor)

	if err := h.eventBus.Publish(ctx, &event.VendorCreated{Vendor: vendor.Clone(), Timestamp: vendor.CreatedAt}); err != nil {
		logger.Warnf(ctx, "failed to publish vendor events: %v", err)
	}

	return vendor, nil
}

// UpdateVendorHandler handles partial vendor updates
type UpdateVendorHandler struct {
	vendors  repository.VendorRepository
	eventBus bus.EventBus
	now      func() time.Time
}

// NewUpdateVendorHandler creates a new update vendor handler
func NewUpdateVendorHandler(vendors repository.VendorRepository, eventBus bus.EventBus, now func() time.Time) *UpdateVendorHandler {
	return &UpdateVendorHandler{vendors: vendors, eventBus: eventBus, now: clockOrNow(now)}
}

// Handle applies the patch. An unknown vendor yields (nil, nil).
func (h *UpdateVendorHandler) Handle(ctx context.Context, cmd *UpdateVendor) (*aggregate.Vendor, error) {
	if cmd == nil {
		return nil, errors.NewValidationError("command cannot be nil")
	}
	if err := validateCommand(cmd); err != nil {
		return nil, err
	}

	correction := cmd.TotalPurchases != nil || cmd.TotalRevenue != nil ||
		cmd.TotalMeetings != nil || cmd.TotalSamples != nil || cmd.LastContactDate != nil

	updated, ok := h.vendors.Update(cmd.VendorID, func(v *aggregate.Vendor) {
		applyVendorPatch(v, cmd)
	})
	if !ok {
		return nil, nil
	}

	evt := &event.VendorUpdated{
		VendorID:     updated.ID,
		Correction:   correction,
		EventVersion: 1,
		Timestamp:    h.now(),
	}
	if err := h.eventBus.Publish(ctx, evt); err != nil {
		logger.Warnf(ctx, "failed to publish vendor events: %v", err)
	}

	return &updated, nil
}

func applyVendorPatch(v *aggregate.Vendor, cmd *UpdateVendor) {
	setString(&v.Name, cmd.Name)
	setString(&v.Phone, cmd.Phone)
	setString(&v.Email, cmd.Email)
	setString(&v.BusinessName, cmd.BusinessName)
	setString(&v.Village, cmd.Village)
	setString(&v.District, cmd.District)
	setString(&v.State, cmd.State)
	setString(&v.Address, cmd.Address)
	setString(&v.Notes, cmd.Notes)
	if cmd.Type != nil {
		v.Type = *cmd.Type
	}
	if cmd.IsActive != nil {
		v.IsActive = *cmd.IsActive
	}
	if cmd.Tags != nil {
		v.Tags = slices.Clone(cmd.Tags)
	}
	if cmd.Location != nil {
		loc := cmd.Location.Clone()
		v.Location = &loc
	}
	if cmd.LastContactDate != nil {
		t := *cmd.LastContactDate
		v.LastContactDate = &t
	}
	if cmd.TotalPurchases != nil {
		v.TotalPurchases = *cmd.TotalPurchases
	}
	if cmd.TotalRevenue != nil {
		v.TotalRevenue = *cmd.TotalRevenue
	}
	if cmd.TotalMeetings != nil {
		v.TotalMeetings = *cmd.TotalMeetings
	}
	if cmd.TotalSamples != nil {
		v.TotalSamples = *cmd.TotalSamples
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// DeleteVendorHandler handles delete vendor commands
type DeleteVendorHandler struct {
	vendors  repository.VendorRepository
	eventBus bus.EventBus
	now      func() time.Time
}

// NewDeleteVendorHandler creates a new delete vendor handler
func NewDeleteVendorHandler(vendors repository.VendorRepository, eventBus bus.EventBus, now func() time.Time) *DeleteVendorHandler {
	return &DeleteVendorHandler{vendors: vendors, eventBus: eventBus, now: clockOrNow(now)}
}

// Handle reports whether the vendor existed
func (h *DeleteVendorHandler) Handle(ctx context.Context, cmd *DeleteVendor) (bool, error) {
	if cmd == nil {
		return false, errors.NewValidationError("command cannot be nil")
	}
	if err := validateCommand(cmd); err != nil {
		return false, err
	}

	if !h.vendors.Delete(cmd.VendorID) {
		return false, nil
	}

	if err := h.eventBus.Publish(ctx, &event.VendorDeleted{VendorID: cmd.VendorID, Timestamp: h.now()}); err != nil {
		logger.Warnf(ctx, "failed to publish vendor events: %v", err)
	}
	return true, nil
}

// UpdateVendorMetricsHandler credits meetings, sales and samples to vendors
type UpdateVendorMetricsHandler struct {
	vendors  repository.VendorRepository
	eventBus bus.EventBus
	now      func() time.Time
}

// NewUpdateVendorMetricsHandler creates a new metrics handler
func NewUpdateVendorMetricsHandler(vendors repository.VendorRepository, eventBus bus.EventBus, now func() time.Time) *UpdateVendorMetricsHandler {
	return &UpdateVendorMetricsHandler{vendors: vendors, eventBus: eventBus, now: clockOrNow(now)}
}

// Handle processes an explicit metrics command. An unknown vendor yields (nil, nil).
func (h *UpdateVendorMetricsHandler) Handle(ctx context.Context, cmd *UpdateVendorMetrics) (*aggregate.Vendor, error) {
	if cmd == nil {
		return nil, errors.NewValidationError("command cannot be nil")
	}
	if err := validateCommand(cmd); err != nil {
		return nil, err
	}

	updated, ok := h.apply(ctx, cmd.VendorID, cmd.Kind, cmd.Value)
	if !ok {
		return nil, nil
	}
	return &updated, nil
}

// UpdateMetrics credits one engagement. Unknown vendors are left alone and
// reported with false.
func (h *UpdateVendorMetricsHandler) UpdateMetrics(ctx context.Context, vendorID string, kind aggregate.MetricKind, value *decimal.Decimal) bool {
	_, ok := h.apply(ctx, vendorID, kind, value)
	return ok
}

func (h *UpdateVendorMetricsHandler) apply(ctx context.Context, vendorID string, kind aggregate.MetricKind, value *decimal.Decimal) (aggregate.Vendor, bool) {
	at := h.now()
	updated, ok := h.vendors.Update(vendorID, func(v *aggregate.Vendor) {
		v.ApplyMetric(kind, value, at)
	})
	if !ok {
		return updated, false
	}

	evt := &event.VendorMetricsUpdated{VendorID: vendorID, Kind: kind, Value: value, Timestamp: at}
	if err := h.eventBus.Publish(ctx, evt); err != nil {
		logger.Warnf(ctx, "failed to publish vendor events: %v", err)
	}
	return updated, true
}
