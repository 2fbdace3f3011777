package services

import (
	"fmt"
	"time"

	"fieldtrack/internal/application/command"
	"fieldtrack/internal/application/query"
	"fieldtrack/internal/domain/repository"
	"fieldtrack/internal/infrastructure/bus"
	"fieldtrack/internal/infrastructure/projection"
	jwtutil "fieldtrack/pkg/jwt"
)

// Dependencies are the collaborators shared by every service
type Dependencies struct {
	Session  *repository.Session
	EventBus bus.EventBus
	Location command.LocationResolver
	Random   query.IntSource
	JWT      *jwtutil.JWTManager
	Now      func() time.Time
}

// Services is the application layer of one session
type Services struct {
	Auth      *AuthService
	Vendors   *VendorService
	Meetings  *MeetingService
	Sales     *SaleService
	Samples   *SampleService
	WorkLogs  *WorkLogService
	Dashboard *DashboardService
}

// New wires handlers, queries and projections over the session
func New(deps Dependencies) (*Services, error) {
	s := deps.Session
	now := deps.Now
	if now == nil {
		now = time.Now
	}

	metricsHandler := command.NewUpdateVendorMetricsHandler(s.Vendors, deps.EventBus, now)

	if err := projection.NewVendorProjection(metricsHandler).Register(deps.EventBus); err != nil {
		return nil, fmt.Errorf("register vendor projection: %w", err)
	}
	if err := projection.NewActivityProjection(s.Activities, s.Users, now).Register(deps.EventBus); err != nil {
		return nil, fmt.Errorf("register activity projection: %w", err)
	}

	vendorQueries := query.NewVendorQueryEngine(s.Vendors)
	workLogQueries := query.NewWorkLogQueries(s.WorkLogs, deps.Random, now)

	return &Services{
		Auth: NewAuthService(s.Users, deps.JWT),
		Vendors: NewVendorService(
			command.NewCreateVendorHandler(s.Vendors, deps.EventBus, now),
			command.NewUpdateVendorHandler(s.Vendors, deps.EventBus, now),
			command.NewDeleteVendorHandler(s.Vendors, deps.EventBus, now),
			metricsHandler,
			vendorQueries,
			query.NewVendorMapQuery(vendorQueries),
			deps.Location,
		),
		Meetings: NewMeetingService(
			command.NewCreateMeetingHandler(s.Meetings, deps.EventBus, deps.Location, now),
			command.NewUpdateMeetingHandler(s.Meetings),
			command.NewDeleteRecordHandler(s.Meetings),
			query.NewMeetingQueries(s.Meetings),
		),
		Sales: NewSaleService(
			command.NewCreateSaleHandler(s.Sales, deps.EventBus, deps.Location, now),
			command.NewUpdateSaleHandler(s.Sales),
			command.NewDeleteRecordHandler(s.Sales),
			query.NewSaleQueries(s.Sales),
		),
		Samples: NewSampleService(
			command.NewCreateSampleHandler(s.Samples, deps.EventBus, deps.Location, now),
			command.NewUpdateSampleHandler(s.Samples),
			command.NewDeleteRecordHandler(s.Samples),
			query.NewSampleQueries(s.Samples),
		),
		WorkLogs: NewWorkLogService(
			command.NewCreateWorkLogHandler(s.WorkLogs, deps.EventBus, deps.Location, now),
			command.NewUpdateWorkLogHandler(s.WorkLogs),
			command.NewDeleteRecordHandler(s.WorkLogs),
			workLogQueries,
		),
		Dashboard: NewDashboardService(
			query.NewDashboardQuery(s, deps.Random, now),
			query.NewActivityQuery(s.Activities),
			query.NewUserQuery(s.Users),
		),
	}, nil
}
