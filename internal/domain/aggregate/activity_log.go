package aggregate

import "time"

// ActivityEntityType names the kind of record an activity entry refers to
type ActivityEntityType string

const (
	EntityMeeting ActivityEntityType = "meeting"
	EntitySale    ActivityEntityType = "sale"
	EntitySample  ActivityEntityType = "sample"
	EntityWorkLog ActivityEntityType = "work_log"
)

// ActivityLog is an immutable audit entry for display
type ActivityLog struct {
	ID         string             `json:"id"`
	UserID     string             `json:"user_id"`
	UserName   string             `json:"user_name"`
	Action     string             `json:"action"`
	EntityType ActivityEntityType `json:"entity_type"`
	EntityID   string             `json:"entity_id"`
	Timestamp  time.Time          `json:"timestamp"`
	Details    string             `json:"details"`
}

func (a ActivityLog) GetID() string      { return a.ID }
func (a ActivityLog) Clone() ActivityLog { return a }
