package query

import (
	"cmp"
	"slices"
	"strings"

	"fieldtrack/internal/domain/aggregate"
	"fieldtrack/internal/domain/repository"

	"github.com/shopspring/decimal"
)

// DefaultVendorLimit applies when a top or recent listing asks for no limit
const DefaultVendorLimit = 10

// VendorStats summarizes the vendor collection
type VendorStats struct {
	Total         int                               `json:"total"`
	Active        int                               `json:"active"`
	Inactive      int                               `json:"inactive"`
	ByType        map[aggregate.StakeholderType]int `json:"by_type"`
	WithPurchases int                               `json:"with_purchases"`
	TotalRevenue  decimal.Decimal                   `json:"total_revenue"`
}

// VendorQueryEngine answers searches and aggregate questions over vendors
type VendorQueryEngine struct {
	vendors repository.VendorRepository
}

// NewVendorQueryEngine creates a new vendor query engine
func NewVendorQueryEngine(vendors repository.VendorRepository) *VendorQueryEngine {
	return &VendorQueryEngine{vendors: vendors}
}

// Search returns the vendors passing every filter dimension, in storage order
func (q *VendorQueryEngine) Search(filters aggregate.VendorSearchFilters) []aggregate.Vendor {
	term := strings.ToLower(filters.SearchTerm)
	return q.vendors.Find(func(v aggregate.Vendor) bool {
		return matchesTerm(v, term) &&
			matchesTypes(v, filters.Types) &&
			matchesVillages(v, filters.Villages) &&
			matchesStates(v, filters.States) &&
			matchesPurchases(v, filters.HasPurchases) &&
			matchesCreated(v, filters)
	})
}

func matchesTerm(v aggregate.Vendor, term string) bool {
	if term == "" {
		return true
	}
	for _, field := range []string{v.Name, v.Phone, v.BusinessName, v.Village} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

func matchesTypes(v aggregate.Vendor, types []aggregate.StakeholderType) bool {
	return len(types) == 0 || slices.Contains(types, v.Type)
}

func matchesVillages(v aggregate.Vendor, villages []string) bool {
	return len(villages) == 0 || slices.Contains(villages, v.Village)
}

func matchesStates(v aggregate.Vendor, states []string) bool {
	return len(states) == 0 || slices.Contains(states, v.State)
}

func matchesPurchases(v aggregate.Vendor, hasPurchases *bool) bool {
	if hasPurchases == nil {
		return true
	}
	return v.HasPurchases() == *hasPurchases
}

func matchesCreated(v aggregate.Vendor, filters aggregate.VendorSearchFilters) bool {
	if filters.DateFrom != nil && v.CreatedAt.Before(*filters.DateFrom) {
		return false
	}
	if filters.DateTo != nil && v.CreatedAt.After(*filters.DateTo) {
		return false
	}
	return true
}

// GetVendorStats computes totals over every vendor
func (q *VendorQueryEngine) GetVendorStats() VendorStats {
	stats := VendorStats{
		ByType:       make(map[aggregate.StakeholderType]int, len(aggregate.AllStakeholderTypes())),
		TotalRevenue: decimal.Zero,
	}
	for _, t := range aggregate.AllStakeholderTypes() {
		stats.ByType[t] = 0
	}

	for _, v := range q.vendors.All() {
		stats.Total++
		if v.IsActive {
			stats.Active++
		} else {
			stats.Inactive++
		}
		stats.ByType[v.Type]++
		if v.HasPurchases() {
			stats.WithPurchases++
		}
		stats.TotalRevenue = stats.TotalRevenue.Add(v.TotalRevenue)
	}
	return stats
}

// GetTopVendors returns vendors by revenue, highest first. Ties keep storage order.
func (q *VendorQueryEngine) GetTopVendors(limit int) []aggregate.Vendor {
	vendors := q.vendors.All()
	slices.SortStableFunc(vendors, func(a, b aggregate.Vendor) int {
		return b.TotalRevenue.Cmp(a.TotalRevenue)
	})
	return head(vendors, limit)
}

// GetRecentVendors returns vendors by creation time, newest first. Ties keep storage order.
func (q *VendorQueryEngine) GetRecentVendors(limit int) []aggregate.Vendor {
	vendors := q.vendors.All()
	slices.SortStableFunc(vendors, func(a, b aggregate.Vendor) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return head(vendors, limit)
}

func head(vendors []aggregate.Vendor, limit int) []aggregate.Vendor {
	if limit <= 0 {
		limit = DefaultVendorLimit
	}
	if len(vendors) > limit {
		vendors = vendors[:limit]
	}
	return vendors
}

// GetUniqueVillages lists every distinct village, sorted
func (q *VendorQueryEngine) GetUniqueVillages() []string {
	return q.unique(false, func(v aggregate.Vendor) string { return v.Village })
}

// GetUniqueStates lists every distinct non-blank state, sorted
func (q *VendorQueryEngine) GetUniqueStates() []string {
	return q.unique(true, func(v aggregate.Vendor) string { return v.State })
}

func (q *VendorQueryEngine) unique(skipBlank bool, field func(aggregate.Vendor) string) []string {
	seen := make(map[string]struct{})
	values := []string{}
	for _, v := range q.vendors.All() {
		value := field(v)
		if skipBlank && strings.TrimSpace(value) == "" {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		values = append(values, value)
	}
	slices.SortFunc(values, cmp.Compare[string])
	return values
}

// GetAll returns every vendor in storage order
func (q *VendorQueryEngine) GetAll() []aggregate.Vendor {
	return q.vendors.All()
}

// GetByID returns the vendor or nil
func (q *VendorQueryEngine) GetByID(id string) *aggregate.Vendor {
	v, ok := q.vendors.Get(id)
	if !ok {
		return nil
	}
	return &v
}

// GetByType returns the vendors of one stakeholder type
func (q *VendorQueryEngine) GetByType(t aggregate.StakeholderType) []aggregate.Vendor {
	return q.vendors.Find(func(v aggregate.Vendor) bool { return v.Type == t })
}

// GetActive returns the active vendors
func (q *VendorQueryEngine) GetActive() []aggregate.Vendor {
	return q.vendors.Find(func(v aggregate.Vendor) bool { return v.IsActive })
}
