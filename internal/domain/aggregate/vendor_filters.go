package aggregate

import "time"

// VendorSearchFilters is a vendor query. Dimensions are ANDed, values within
// a dimension are ORed, and empty dimensions match everything.
type VendorSearchFilters struct {
	SearchTerm   string            `json:"search_term"`
	Types        []StakeholderType `json:"types"`
	Villages     []string          `json:"villages"`
	States       []string          `json:"states"`
	HasPurchases *bool             `json:"has_purchases"`
	DateFrom     *time.Time        `json:"date_from"`
	DateTo       *time.Time        `json:"date_to"`
}
