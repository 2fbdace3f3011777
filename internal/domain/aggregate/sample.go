package aggregate

import "time"

// DistributionPurpose is why a sample was handed out
type DistributionPurpose string

const (
	PurposeTrial       DistributionPurpose = "trial"
	PurposeDemo        DistributionPurpose = "demo"
	PurposeFollowUp    DistributionPurpose = "follow_up"
	PurposePromotional DistributionPurpose = "promotional"
)

// SampleDistribution is a product sample handed to a stakeholder
type SampleDistribution struct {
	ID               string              `json:"id"`
	UserID           string              `json:"user_id"`
	VendorID         string              `json:"vendor_id,omitempty"`
	RecipientName    string              `json:"recipient_name"`
	RecipientContact string              `json:"recipient_contact,omitempty"`
	StakeholderType  StakeholderType     `json:"stakeholder_type"`
	ProductSKU       string              `json:"product_sku"`
	ProductName      string              `json:"product_name"`
	Quantity         int                 `json:"quantity"`
	Unit             string              `json:"unit"`
	BatchNumber      string              `json:"batch_number,omitempty"`
	Purpose          DistributionPurpose `json:"purpose"`
	Location         GeoLocation         `json:"location"`
	Village          string              `json:"village"`
	Notes            string              `json:"notes,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
}

// Clone returns a deep copy
func (s SampleDistribution) Clone() SampleDistribution {
	cp := s
	cp.Location = s.Location.Clone()
	return cp
}

func (s SampleDistribution) GetID() string { return s.ID }
