package aggregate

import (
	"slices"
	"time"
)

// MeetingType distinguishes one-on-one meetings from group sessions
type MeetingType string

const (
	MeetingOneOnOne MeetingType = "one_on_one"
	MeetingGroup    MeetingType = "group"
)

// MeetingCategory is the purpose of a meeting
type MeetingCategory string

const (
	CategoryProductDemo     MeetingCategory = "product_demo"
	CategoryFarmerTraining  MeetingCategory = "farmer_training"
	CategoryFeedbackSession MeetingCategory = "feedback_session"
	CategorySalesEvent      MeetingCategory = "sales_event"
	CategoryOther           MeetingCategory = "other"
)

// Meeting is a field meeting logged by a user
type Meeting struct {
	ID                string          `json:"id"`
	UserID            string          `json:"user_id"`
	VendorID          string          `json:"vendor_id,omitempty"`
	Type              MeetingType     `json:"type"`
	Category          MeetingCategory `json:"category"`
	StakeholderType   StakeholderType `json:"stakeholder_type"`
	ContactName       string          `json:"contact_name"`
	ContactPhone      string          `json:"contact_phone,omitempty"`
	Village           string          `json:"village"`
	Location          GeoLocation     `json:"location"`
	AttendanceCount   *int            `json:"attendance_count,omitempty"`
	BusinessPotential string          `json:"business_potential,omitempty"`
	Notes             string          `json:"notes,omitempty"`
	Photos            []string        `json:"photos"`
	CreatedAt         time.Time       `json:"created_at"`
}

// Clone returns a deep copy
func (m Meeting) Clone() Meeting {
	cp := m
	cp.Location = m.Location.Clone()
	cp.Photos = slices.Clone(m.Photos)
	if m.AttendanceCount != nil {
		n := *m.AttendanceCount
		cp.AttendanceCount = &n
	}
	return cp
}

func (m Meeting) GetID() string { return m.ID }
