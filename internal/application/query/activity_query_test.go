package query

import (
	"fmt"
	"testing"
	"time"

	"fieldtrack/internal/domain/aggregate"
	"fieldtrack/internal/infrastructure/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activityIDs(logs []aggregate.ActivityLog) []string {
	out := make([]string, 0, len(logs))
	for _, l := range logs {
		out = append(out, l.ID)
	}
	return out
}

func TestActivityLogsNewestFirstWithTiesLatestAppended(t *testing.T) {
	q := NewActivityQuery(memory.NewCollection(
		aggregate.ActivityLog{ID: "a1", UserID: "u2", Timestamp: frozen.Add(-time.Hour)},
		aggregate.ActivityLog{ID: "a2", UserID: "u3", Timestamp: frozen},
		aggregate.ActivityLog{ID: "a3", UserID: "u2", Timestamp: frozen},
		aggregate.ActivityLog{ID: "a4", UserID: "u2", Timestamp: frozen.Add(-2 * time.Hour)},
	))

	assert.Equal(t, []string{"a3", "a2", "a1", "a4"}, activityIDs(q.GetActivityLogs(0)))
	assert.Equal(t, []string{"a3", "a2"}, activityIDs(q.GetActivityLogs(2)))
	assert.Equal(t, []string{"a3", "a1", "a4"}, activityIDs(q.GetByUserID("u2")))
}

func TestRecentActivityLimit(t *testing.T) {
	var logs []aggregate.ActivityLog
	for i := 0; i < 60; i++ {
		logs = append(logs, aggregate.ActivityLog{ID: fmt.Sprintf("a%d", i), Timestamp: frozen.Add(time.Duration(i) * time.Minute)})
	}
	q := NewActivityQuery(memory.NewCollection(logs...))

	recent := q.GetRecentActivity()
	require.Len(t, recent, RecentActivityLimit)
	assert.Equal(t, "a59", recent[0].ID)
	assert.Len(t, q.GetActivityLogs(-3), DefaultActivityLimit)
}

func TestUserQuery(t *testing.T) {
	users := append(memory.DemoUsers(frozen),
		aggregate.User{ID: "u4", Name: "Inactive Officer", Role: aggregate.RoleFieldOfficer, IsActive: false})
	q := NewUserQuery(memory.NewUserDirectory(users...))

	assert.Len(t, q.GetAll(), 4)
	assert.Len(t, q.GetActiveUsers(), 3)
	require.Len(t, q.GetFieldOfficers(), 1)
	assert.Equal(t, "u2", q.GetFieldOfficers()[0].ID)
	assert.Len(t, q.GetDistributors(), 1)
}
