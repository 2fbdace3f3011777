package services

import (
	"context"
	"time"

	"fieldtrack/internal/application/command"
	"fieldtrack/internal/application/query"
	"fieldtrack/internal/domain/aggregate"
)

// SampleService handles sample distribution operations
type SampleService struct {
	createHandler *command.CreateSampleHandler
	updateHandler *command.UpdateSampleHandler
	deleteHandler *command.DeleteRecordHandler[aggregate.SampleDistribution]
	samples       *query.SampleQueries
}

// NewSampleService creates a new sample service
func NewSampleService(
	createHandler *command.CreateSampleHandler,
	updateHandler *command.UpdateSampleHandler,
	deleteHandler *command.DeleteRecordHandler[aggregate.SampleDistribution],
	samples *query.SampleQueries,
) *SampleService {
	return &SampleService{
		createHandler: createHandler,
		updateHandler: updateHandler,
		deleteHandler: deleteHandler,
		samples:       samples,
	}
}

func (s *SampleService) CreateSample(ctx context.Context, cmd *command.CreateSample) (*aggregate.SampleDistribution, error) {
	return s.createHandler.Handle(ctx, cmd)
}

func (s *SampleService) UpdateSample(ctx context.Context, cmd *command.UpdateSample) (*aggregate.SampleDistribution, error) {
	return s.updateHandler.Handle(ctx, cmd)
}

func (s *SampleService) DeleteSample(ctx context.Context, id string) (bool, error) {
	return s.deleteHandler.Handle(ctx, &command.DeleteRecord{ID: id})
}

func (s *SampleService) GetSample(id string) *aggregate.SampleDistribution {
	return s.samples.GetByID(id)
}

// ListSamples returns every distribution, or one user's when userID is set
func (s *SampleService) ListSamples(userID string) []aggregate.SampleDistribution {
	if userID != "" {
		return s.samples.GetByUserID(userID)
	}
	return s.samples.GetAll()
}

func (s *SampleService) GetByDateRange(from, to time.Time) []aggregate.SampleDistribution {
	return s.samples.GetByDateRange(from, to)
}

func (s *SampleService) GetTotalDistributed() int {
	return s.samples.GetTotalDistributed()
}
