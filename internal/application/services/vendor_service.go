package services

import (
	"context"

	"fieldtrack/internal/application/command"
	"fieldtrack/internal/application/query"
	"fieldtrack/internal/domain/aggregate"
)

// VendorService handles vendor operations
type VendorService struct {
	createVendorHandler  *command.CreateVendorHandler
	updateVendorHandler  *command.UpdateVendorHandler
	deleteVendorHandler  *command.DeleteVendorHandler
	updateMetricsHandler *command.UpdateVendorMetricsHandler
	vendors              *query.VendorQueryEngine
	vendorMap            *query.VendorMapQuery
	location             command.LocationResolver
}

// NewVendorService creates a new vendor service
func NewVendorService(
	createVendorHandler *command.CreateVendorHandler,
	updateVendorHandler *command.UpdateVendorHandler,
	deleteVendorHandler *command.DeleteVendorHandler,
	updateMetricsHandler *command.UpdateVendorMetricsHandler,
	vendors *query.VendorQueryEngine,
	vendorMap *query.VendorMapQuery,
	location command.LocationResolver,
) *VendorService {
	return &VendorService{
		createVendorHandler:  createVendorHandler,
		updateVendorHandler:  updateVendorHandler,
		deleteVendorHandler:  deleteVendorHandler,
		updateMetricsHandler: updateMetricsHandler,
		vendors:              vendors,
		vendorMap:            vendorMap,
		location:             location,
	}
}

// CreateVendor registers a new vendor
func (s *VendorService) CreateVendor(ctx context.Context, cmd *command.CreateVendor) (*aggregate.Vendor, error) {
	return s.createVendorHandler.Handle(ctx, cmd)
}

// UpdateVendor patches a vendor. A nil vendor means it does not exist.
func (s *VendorService) UpdateVendor(ctx context.Context, cmd *command.UpdateVendor) (*aggregate.Vendor, error) {
	return s.updateVendorHandler.Handle(ctx, cmd)
}

// DeleteVendor deletes a vendor and reports whether it existed
func (s *VendorService) DeleteVendor(ctx context.Context, cmd *command.DeleteVendor) (bool, error) {
	return s.deleteVendorHandler.Handle(ctx, cmd)
}

// UpdateMetrics credits an engagement to a vendor
func (s *VendorService) UpdateMetrics(ctx context.Context, cmd *command.UpdateVendorMetrics) (*aggregate.Vendor, error) {
	return s.updateMetricsHandler.Handle(ctx, cmd)
}

// GetVendor retrieves a vendor by ID, or nil
func (s *VendorService) GetVendor(vendorID string) *aggregate.Vendor {
	return s.vendors.GetByID(vendorID)
}

// SearchVendors runs a filtered vendor search
func (s *VendorService) SearchVendors(filters aggregate.VendorSearchFilters) []aggregate.Vendor {
	return s.vendors.Search(filters)
}

func (s *VendorService) GetStats() query.VendorStats {
	return s.vendors.GetVendorStats()
}

func (s *VendorService) GetTopVendors(limit int) []aggregate.Vendor {
	return s.vendors.GetTopVendors(limit)
}

func (s *VendorService) GetRecentVendors(limit int) []aggregate.Vendor {
	return s.vendors.GetRecentVendors(limit)
}

func (s *VendorService) GetVillages() []string {
	return s.vendors.GetUniqueVillages()
}

func (s *VendorService) GetStates() []string {
	return s.vendors.GetUniqueStates()
}

// GetMap draws the vendor map. A nil filter shows every active vendor. With
// locate set, the device position is resolved and used as the center.
func (s *VendorService) GetMap(ctx context.Context, filters *aggregate.VendorSearchFilters, locate bool) query.MapView {
	var vendors []aggregate.Vendor
	if filters != nil {
		vendors = s.vendors.Search(*filters)
	}

	var current *aggregate.GeoLocation
	if locate {
		loc := s.location.Resolve(ctx)
		current = &loc
	}
	return s.vendorMap.Build(vendors, current)
}
