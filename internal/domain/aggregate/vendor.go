package aggregate

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// StakeholderType classifies a vendor or contact
type StakeholderType string

const (
	StakeholderFarmer       StakeholderType = "farmer"
	StakeholderSeller       StakeholderType = "seller"
	StakeholderInfluencer   StakeholderType = "influencer"
	StakeholderVeterinarian StakeholderType = "veterinarian"
	StakeholderOther        StakeholderType = "other"
)

// AllStakeholderTypes returns the fixed enumeration in display order.
func AllStakeholderTypes() []StakeholderType {
	return []StakeholderType{
		StakeholderFarmer,
		StakeholderSeller,
		StakeholderInfluencer,
		StakeholderVeterinarian,
		StakeholderOther,
	}
}

// IsValid checks if the stakeholder type is one of the known values
func (t StakeholderType) IsValid() bool {
	return slices.Contains(AllStakeholderTypes(), t)
}

// MetricKind is the kind of engagement credited to a vendor
type MetricKind string

const (
	MetricMeeting MetricKind = "meeting"
	MetricSale    MetricKind = "sale"
	MetricSample  MetricKind = "sample"
)

// IsValid checks if the metric kind is valid
func (k MetricKind) IsValid() bool {
	return k == MetricMeeting || k == MetricSale || k == MetricSample
}

// Vendor is a tracked external contact with cumulative engagement counters
type Vendor struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Phone           string          `json:"phone,omitempty"`
	Email           string          `json:"email,omitempty"`
	Type            StakeholderType `json:"type"`
	BusinessName    string          `json:"business_name,omitempty"`
	Village         string          `json:"village"`
	District        string          `json:"district,omitempty"`
	State           string          `json:"state,omitempty"`
	Address         string          `json:"address,omitempty"`
	IsActive        bool            `json:"is_active"`
	Notes           string          `json:"notes,omitempty"`
	Tags            []string        `json:"tags"`
	CreatedAt       time.Time       `json:"created_at"`
	LastContactDate *time.Time      `json:"last_contact_date,omitempty"`
	TotalPurchases  int             `json:"total_purchases"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	TotalMeetings   int             `json:"total_meetings"`
	TotalSamples    int             `json:"total_samples"`
	Location        *GeoLocation    `json:"location,omitempty"`
}

// NewVendor builds a vendor with zeroed counters
func NewVendor(id, name string, vendorType StakeholderType, village string, createdAt time.Time) (*Vendor, error) {
	if id == "" {
		return nil, fmt.Errorf("id cannot be empty")
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("name cannot be empty")
	}
	if !vendorType.IsValid() {
		return nil, fmt.Errorf("invalid stakeholder type: %s", vendorType)
	}
	if strings.TrimSpace(village) == "" {
		return nil, fmt.Errorf("village cannot be empty")
	}

	return &Vendor{
		ID:           id,
		Name:         name,
		Type:         vendorType,
		Village:      village,
		IsActive:     true,
		Tags:         []string{},
		CreatedAt:    createdAt,
		TotalRevenue: decimal.Zero,
	}, nil
}

// ApplyMetric credits one engagement event. A sale without a positive value
// only refreshes the contact date.
func (v *Vendor) ApplyMetric(kind MetricKind, value *decimal.Decimal, at time.Time) {
	switch kind {
	case MetricMeeting:
		v.TotalMeetings++
	case MetricSale:
		if value != nil && value.IsPositive() {
			v.TotalPurchases++
			v.TotalRevenue = v.TotalRevenue.Add(*value)
		}
	case MetricSample:
		v.TotalSamples++
	}
	v.LastContactDate = &at
}

// HasPurchases reports whether at least one sale was credited
func (v Vendor) HasPurchases() bool {
	return v.TotalPurchases > 0
}

// Clone returns a deep copy so callers never alias store state
func (v Vendor) Clone() Vendor {
	cp := v
	cp.Tags = slices.Clone(v.Tags)
	if v.LastContactDate != nil {
		t := *v.LastContactDate
		cp.LastContactDate = &t
	}
	if v.Location != nil {
		loc := v.Location.Clone()
		cp.Location = &loc
	}
	return cp
}

func (v Vendor) GetID() string { return v.ID }
