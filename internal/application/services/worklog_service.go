package services

import (
	"context"
	"time"

	"fieldtrack/internal/application/command"
	"fieldtrack/internal/application/query"
	"fieldtrack/internal/domain/aggregate"
)

// WorkLogService handles work log operations
type WorkLogService struct {
	createHandler *command.CreateWorkLogHandler
	updateHandler *command.UpdateWorkLogHandler
	deleteHandler *command.DeleteRecordHandler[aggregate.WorkLog]
	workLogs      *query.WorkLogQueries
}

// NewWorkLogService creates a new work log service
func NewWorkLogService(
	createHandler *command.CreateWorkLogHandler,
	updateHandler *command.UpdateWorkLogHandler,
	deleteHandler *command.DeleteRecordHandler[aggregate.WorkLog],
	workLogs *query.WorkLogQueries,
) *WorkLogService {
	return &WorkLogService{
		createHandler: createHandler,
		updateHandler: updateHandler,
		deleteHandler: deleteHandler,
		workLogs:      workLogs,
	}
}

func (s *WorkLogService) CreateWorkLog(ctx context.Context, cmd *command.CreateWorkLog) (*aggregate.WorkLog, error) {
	return s.createHandler.Handle(ctx, cmd)
}

func (s *WorkLogService) UpdateWorkLog(ctx context.Context, cmd *command.UpdateWorkLog) (*aggregate.WorkLog, error) {
	return s.updateHandler.Handle(ctx, cmd)
}

func (s *WorkLogService) DeleteWorkLog(ctx context.Context, id string) (bool, error) {
	return s.deleteHandler.Handle(ctx, &command.DeleteRecord{ID: id})
}

func (s *WorkLogService) GetWorkLog(id string) *aggregate.WorkLog {
	return s.workLogs.GetByID(id)
}

// ListWorkLogs returns every work log, or one user's when userID is set
func (s *WorkLogService) ListWorkLogs(userID string) []aggregate.WorkLog {
	if userID != "" {
		return s.workLogs.GetByUserID(userID)
	}
	return s.workLogs.GetAll()
}

func (s *WorkLogService) GetTodayLog(userID string) aggregate.TodayLog {
	return s.workLogs.GetTodayLog(userID)
}

func (s *WorkLogService) GetDistanceTraveled(userID string, date time.Time) float64 {
	return s.workLogs.GetDistanceTraveled(userID, date)
}
