package query

import (
	"fieldtrack/internal/domain/aggregate"
	"fieldtrack/internal/domain/repository"
)

// UserQuery reads the user directory
type UserQuery struct {
	users repository.UserDirectory
}

// NewUserQuery creates a new user query
func NewUserQuery(users repository.UserDirectory) *UserQuery {
	return &UserQuery{users: users}
}

func (q *UserQuery) GetAll() []aggregate.User {
	return q.users.All()
}

func (q *UserQuery) GetFieldOfficers() []aggregate.User {
	return q.activeWithRole(aggregate.RoleFieldOfficer)
}

// GetDistributors returns active distributors
func (q *UserQuery) GetDistributors() []aggregate.User {
	return q.activeWithRole(aggregate.RoleDistributor)
}

// GetActiveUsers returns every active user
func (q *UserQuery) GetActiveUsers() []aggregate.User {
	var result []aggregate.User
	for _, u := range q.users.All() {
		if u.IsActive {
			result = append(result, u)
		}
	}
	return result
}

func (q *UserQuery) activeWithRole(role aggregate.UserRole) []aggregate.User {
	var result []aggregate.User
	for _, u := range q.users.All() {
		if u.IsActive && u.Role == role {
			result = append(result, u)
		}
	}
	return result
}
