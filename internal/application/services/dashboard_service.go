package services

import (
	"fieldtrack/internal/application/query"
	"fieldtrack/internal/domain/aggregate"
)

// DashboardService serves role dashboards and the activity feed
type DashboardService struct {
	dashboards *query.DashboardQuery
	activity   *query.ActivityQuery
	users      *query.UserQuery
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(dashboards *query.DashboardQuery, activity *query.ActivityQuery, users *query.UserQuery) *DashboardService {
	return &DashboardService{dashboards: dashboards, activity: activity, users: users}
}

func (s *DashboardService) Admin() query.AdminDashboardResult {
	return s.dashboards.Admin()
}

func (s *DashboardService) FieldOfficer(userID string) query.FieldOfficerDashboardResult {
	return s.dashboards.FieldOfficer(userID)
}

func (s *DashboardService) Distributor(userID string) query.DistributorDashboardResult {
	return s.dashboards.Distributor(userID)
}

func (s *DashboardService) Summary() query.SummaryStats {
	return s.dashboards.Summary()
}

// ActivityLogs returns the activity feed, newest first
func (s *DashboardService) ActivityLogs(limit int) []aggregate.ActivityLog {
	return s.activity.GetActivityLogs(limit)
}

func (s *DashboardService) RecentActivity() []aggregate.ActivityLog {
	return s.activity.GetRecentActivity()
}

func (s *DashboardService) FieldOfficers() []aggregate.User {
	return s.users.GetFieldOfficers()
}

func (s *DashboardService) Distributors() []aggregate.User {
	return s.users.GetDistributors()
}

func (s *DashboardService) ActiveUsers() []aggregate.User {
	return s.users.GetActiveUsers()
}
