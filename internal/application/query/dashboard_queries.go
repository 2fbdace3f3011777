package query

import (
	"fieldtrack/internal/domain/aggregate"

	"github.com/shopspring/decimal"
)

// SummaryStats contains organization-wide totals
type SummaryStats struct {
	TotalMeetings  int             `json:"total_meetings"`
	TotalSales     int             `json:"total_sales"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	TotalSamples   int             `json:"total_samples"`
	B2CSales       int             `json:"b2c_sales"`
	B2BSales       int             `json:"b2b_sales"`
	B2CRevenue     decimal.Decimal `json:"b2c_revenue"`
	B2BRevenue     decimal.Decimal `json:"b2b_revenue"`
	ConversionRate int             `json:"conversion_rate"`
}

// FieldOfficerDashboardResult contains a field officer's own figures
type FieldOfficerDashboardResult struct {
	UserID        string                         `json:"user_id"`
	TodayMeetings int                            `json:"today_meetings"`
	TodaySales    int                            `json:"today_sales"`
	TodayRevenue  decimal.Decimal                `json:"today_revenue"`
	TotalSamples  int                            `json:"total_samples"`
	TodayLog      aggregate.TodayLog             `json:"today_log"`
	Meetings      []aggregate.Meeting            `json:"meetings"`
	Sales         []aggregate.Sale               `json:"sales"`
	Samples       []aggregate.SampleDistribution `json:"samples"`
}

// DistributorDashboardResult contains a distributor's own figures
type DistributorDashboardResult struct {
	UserID        string             `json:"user_id"`
	TodaySales    int                `json:"today_sales"`
	TodayRevenue  decimal.Decimal    `json:"today_revenue"`
	TotalSales    int                `json:"total_sales"`
	TotalRevenue  decimal.Decimal    `json:"total_revenue"`
	B2BSales      int                `json:"b2b_sales"`
	AvgOrderValue decimal.Decimal    `json:"avg_order_value"`
	TodayLog      aggregate.TodayLog `json:"today_log"`
	Sales         []aggregate.Sale   `json:"sales"`
}

// DailyMetrics contains one calendar day of activity
type DailyMetrics struct {
	Date               string          `json:"date"`
	Meetings           int             `json:"meetings"`
	OneOnOneMeetings   int             `json:"one_on_one_meetings"`
	GroupMeetings      int             `json:"group_meetings"`
	SamplesDistributed int             `json:"samples_distributed"`
	Sales              int             `json:"sales"`
	B2CSales           int             `json:"b2c_sales"`
	B2BSales           int             `json:"b2b_sales"`
	Revenue            decimal.Decimal `json:"revenue"`
	DistanceTraveled   float64         `json:"distance_traveled"`
	VillagesVisited    []string        `json:"villages_visited"`
}

// UserMetrics contains one field user's totals
type UserMetrics struct {
	UserID         string             `json:"user_id"`
	UserName       string             `json:"user_name"`
	Role           aggregate.UserRole `json:"role"`
	TotalMeetings  int                `json:"total_meetings"`
	TotalSales     int                `json:"total_sales"`
	TotalRevenue   decimal.Decimal    `json:"total_revenue"`
	TotalDistance  float64            `json:"total_distance"`
	ConversionRate int                `json:"conversion_rate"`
	Territory      string             `json:"territory"`
}

// TerritoryMetrics contains one village's totals
type TerritoryMetrics struct {
	State           string          `json:"state"`
	District        string          `json:"district"`
	Village         string          `json:"village"`
	Meetings        int             `json:"meetings"`
	Sales           int             `json:"sales"`
	Revenue         decimal.Decimal `json:"revenue"`
	PenetrationRate int             `json:"penetration_rate"`
}

// AdminDashboardResult contains the organization-wide view
type AdminDashboardResult struct {
	Summary             SummaryStats            `json:"summary"`
	VendorStats         VendorStats             `json:"vendor_stats"`
	DailyMetrics        []DailyMetrics          `json:"daily_metrics"`
	UserMetrics         []UserMetrics           `json:"user_metrics"`
	TerritoryMetrics    []TerritoryMetrics      `json:"territory_metrics"`
	RecentActivity      []aggregate.ActivityLog `json:"recent_activity"`
	ActiveFieldOfficers int                     `json:"active_field_officers"`
	ActiveDistributors  int                     `json:"active_distributors"`
}
