package services

import (
	"context"
	"time"

	"fieldtrack/internal/application/command"
	"fieldtrack/internal/application/query"
	"fieldtrack/internal/domain/aggregate"
)

// MeetingService handles meeting operations
type MeetingService struct {
	createHandler *command.CreateMeetingHandler
	updateHandler *command.UpdateMeetingHandler
	deleteHandler *command.DeleteRecordHandler[aggregate.Meeting]
	meetings      *query.MeetingQueries
}

// NewMeetingService creates a new meeting service
func NewMeetingService(
	createHandler *command.CreateMeetingHandler,
	updateHandler *command.UpdateMeetingHandler,
	deleteHandler *command.DeleteRecordHandler[aggregate.Meeting],
	meetings *query.MeetingQueries,
) *MeetingService {
	return &MeetingService{
		createHandler: createHandler,
		updateHandler: updateHandler,
		deleteHandler: deleteHandler,
		meetings:      meetings,
	}
}

func (s *MeetingService) CreateMeeting(ctx context.Context, cmd *command.CreateMeeting) (*aggregate.Meeting, error) {
	return s.createHandler.Handle(ctx, cmd)
}

func (s *MeetingService) UpdateMeeting(ctx context.Context, cmd *command.UpdateMeeting) (*aggregate.Meeting, error) {
	return s.updateHandler.Handle(ctx, cmd)
}

func (s *MeetingService) DeleteMeeting(ctx context.Context, id string) (bool, error) {
	return s.deleteHandler.Handle(ctx, &command.DeleteRecord{ID: id})
}

func (s *MeetingService) GetMeeting(id string) *aggregate.Meeting {
	return s.meetings.GetByID(id)
}

// ListMeetings returns every meeting, or one user's when userID is set
func (s *MeetingService) ListMeetings(userID string) []aggregate.Meeting {
	if userID != "" {
		return s.meetings.GetByUserID(userID)
	}
	return s.meetings.GetAll()
}

func (s *MeetingService) GetByDateRange(from, to time.Time) []aggregate.Meeting {
	return s.meetings.GetByDateRange(from, to)
}

func (s *MeetingService) GetByTerritory(village string) []aggregate.Meeting {
	return s.meetings.GetByTerritory(village)
}
