package query

import (
	"slices"

	"fieldtrack/internal/domain/aggregate"
	"fieldtrack/internal/domain/repository"
)

const (
	DefaultActivityLimit = 50
	RecentActivityLimit  = 10
)

// ActivityQuery reads the activity log
type ActivityQuery struct {
	activities repository.ActivityLogRepository
}

// NewActivityQuery creates a new activity query
func NewActivityQuery(activities repository.ActivityLogRepository) *ActivityQuery {
	return &ActivityQuery{activities: activities}
}

// GetActivityLogs returns up to limit entries, newest first. Entries sharing
// a timestamp come out latest-appended first. limit <= 0 means the default.
func (q *ActivityQuery) GetActivityLogs(limit int) []aggregate.ActivityLog {
	if limit <= 0 {
		limit = DefaultActivityLimit
	}

	logs := q.activities.All()
	slices.Reverse(logs)
	slices.SortStableFunc(logs, func(a, b aggregate.ActivityLog) int {
		return b.Timestamp.Compare(a.Timestamp)
	})

	if len(logs) > limit {
		logs = logs[:limit]
	}
	return logs
}

// GetRecentActivity returns the latest entries for dashboards
func (q *ActivityQuery) GetRecentActivity() []aggregate.ActivityLog {
	return q.GetActivityLogs(RecentActivityLimit)
}

// GetByUserID returns the user's entries, newest first
func (q *ActivityQuery) GetByUserID(userID string) []aggregate.ActivityLog {
	logs := q.activities.Find(func(a aggregate.ActivityLog) bool { return a.UserID == userID })
	slices.Reverse(logs)
	slices.SortStableFunc(logs, func(a, b aggregate.ActivityLog) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	return logs
}
