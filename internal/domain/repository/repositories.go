package repository

import "fieldtrack/internal/domain/aggregate"

type (
	MeetingRepository     = Collection[aggregate.Meeting]
	SaleRepository        = Collection[aggregate.Sale]
	SampleRepository      = Collection[aggregate.SampleDistribution]
	WorkLogRepository     = Collection[aggregate.WorkLog]
	VendorRepository      = Collection[aggregate.Vendor]
	ActivityLogRepository = Collection[aggregate.ActivityLog]
)

// UserDirectory resolves the users of the organization
type UserDirectory interface {
	All() []aggregate.User
	Get(id string) (aggregate.User, bool)
	FindByEmail(email string) (aggregate.User, bool)
}

// Session groups every collection of one working session. It is built at
// start-up and dropped at shutdown; nothing outlives it.
type Session struct {
	Meetings   MeetingRepository
	Sales      SaleRepository
	Samples    SampleRepository
	WorkLogs   WorkLogRepository
	Vendors    VendorRepository
	Activities ActivityLogRepository
	Users      UserDirectory
}
