package memory

import (
	"fieldtrack/internal/domain/aggregate"
	"fieldtrack/internal/domain/repository"
)

// NewSession builds an empty session backed by in-memory collections
func NewSession(users ...aggregate.User) *repository.Session {
	return &repository.Session{
		Meetings:   NewCollection[aggregate.Meeting](),
		Sales:      NewCollection[aggregate.Sale](),
		Samples:    NewCollection[aggregate.SampleDistribution](),
		WorkLogs:   NewCollection[aggregate.WorkLog](),
		Vendors:    NewCollection[aggregate.Vendor](),
		Activities: NewCollection[aggregate.ActivityLog](),
		Users:      NewUserDirectory(users...),
	}
}
