package aggregate

import "time"

// WorkLogType marks the start or end of a work session
type WorkLogType string

const (
	WorkStart WorkLogType = "start"
	WorkEnd   WorkLogType = "end"
)

// WorkLog is one boundary of a user's work session
type WorkLog struct {
	ID              string      `json:"id"`
	UserID          string      `json:"user_id"`
	Type            WorkLogType `json:"type"`
	Timestamp       time.Time   `json:"timestamp"`
	Location        GeoLocation `json:"location"`
	OdometerReading *float64    `json:"odometer_reading,omitempty"`
	Notes           string      `json:"notes,omitempty"`
}

// TodayLog holds the first start and end entries of a user for one day
type TodayLog struct {
	Start *WorkLog `json:"start,omitempty"`
	End   *WorkLog `json:"end,omitempty"`
}

// Clone returns a deep copy
func (w WorkLog) Clone() WorkLog {
	cp := w
	cp.Location = w.Location.Clone()
	if w.OdometerReading != nil {
		r := *w.OdometerReading
		cp.OdometerReading = &r
	}
	return cp
}

func (w WorkLog) GetID() string { return w.ID }
