package query

import (
	"cmp"
	"math"
	"slices"
	"time"

	"fieldtrack/internal/domain/aggregate"
	"fieldtrack/internal/domain/repository"

	"github.com/shopspring/decimal"
)

const dayKeyLayout = "2006-01-02"

func dayKey(t time.Time) string {
	return t.Local().Format(dayKeyLayout)
}

// percent returns round(num/den*100), or 0 when den is 0
func percent(num, den int) int {
	if den == 0 {
		return 0
	}
	return int(math.Floor(float64(num)/float64(den)*100 + 0.5))
}

// DashboardQuery projects the session into role dashboards
type DashboardQuery struct {
	meetings *MeetingQueries
	sales    *SaleQueries
	samples  *SampleQueries
	workLogs *WorkLogQueries
	vendors  *VendorQueryEngine
	activity *ActivityQuery
	users    *UserQuery
	now      func() time.Time
}

// NewDashboardQuery creates dashboard queries over a session
func NewDashboardQuery(session *repository.Session, rnd IntSource, now func() time.Time) *DashboardQuery {
	if now == nil {
		now = time.Now
	}
	return &DashboardQuery{
		meetings: NewMeetingQueries(session.Meetings),
		sales:    NewSaleQueries(session.Sales),
		samples:  NewSampleQueries(session.Samples),
		workLogs: NewWorkLogQueries(session.WorkLogs, rnd, now),
		vendors:  NewVendorQueryEngine(session.Vendors),
		activity: NewActivityQuery(session.Activities),
		users:    NewUserQuery(session.Users),
		now:      now,
	}
}

// Summary computes organization-wide totals
func (q *DashboardQuery) Summary() SummaryStats {
	meetings := q.meetings.GetAll()
	sales := q.sales.GetAll()
	byType := q.sales.GetRevenueByType()

	stats := SummaryStats{
		TotalMeetings: len(meetings),
		TotalSales:    len(sales),
		TotalRevenue:  sumRevenue(sales),
		TotalSamples:  q.samples.GetTotalDistributed(),
		B2CRevenue:    byType.B2C,
		B2BRevenue:    byType.B2B,
	}
	for _, s := range sales {
		switch s.Type {
		case aggregate.SaleB2C:
			stats.B2CSales++
		case aggregate.SaleB2B:
			stats.B2BSales++
		}
	}
	stats.ConversionRate = percent(stats.TotalSales, stats.TotalMeetings)
	return stats
}

// FieldOfficer computes a field officer's dashboard
func (q *DashboardQuery) FieldOfficer(userID string) FieldOfficerDashboardResult {
	now := q.now()
	meetings := q.meetings.GetByUserID(userID)
	sales := q.sales.GetByUserID(userID)
	samples := q.samples.GetByUserID(userID)

	result := FieldOfficerDashboardResult{
		UserID:       userID,
		TodayRevenue: decimal.Zero,
		TotalSamples: sumQuantities(samples),
		TodayLog:     q.workLogs.GetTodayLog(userID),
		Meetings:     meetings,
		Sales:        sales,
		Samples:      samples,
	}
	for _, m := range meetings {
		if aggregate.SameDay(m.CreatedAt, now) {
			result.TodayMeetings++
		}
	}
	for _, s := range sales {
		if aggregate.SameDay(s.CreatedAt, now) {
			result.TodaySales++
			result.TodayRevenue = result.TodayRevenue.Add(s.TotalValue)
		}
	}
	return result
}

// Distributor computes a distributor's dashboard
func (q *DashboardQuery) Distributor(userID string) DistributorDashboardResult {
	now := q.now()
	sales := q.sales.GetByUserID(userID)

	result := DistributorDashboardResult{
		UserID:        userID,
		TodayRevenue:  decimal.Zero,
		TotalSales:    len(sales),
		TotalRevenue:  sumRevenue(sales),
		AvgOrderValue: decimal.Zero,
		TodayLog:      q.workLogs.GetTodayLog(userID),
		Sales:         sales,
	}
	for _, s := range sales {
		if aggregate.SameDay(s.CreatedAt, now) {
			result.TodaySales++
			result.TodayRevenue = result.TodayRevenue.Add(s.TotalValue)
		}
		if s.Type == aggregate.SaleB2B {
			result.B2BSales++
		}
	}
	if result.TotalSales > 0 {
		result.AvgOrderValue = result.TotalRevenue.Div(decimal.NewFromInt(int64(result.TotalSales))).Round(0)
	}
	return result
}

// Admin computes the organization-wide dashboard
func (q *DashboardQuery) Admin() AdminDashboardResult {
	return AdminDashboardResult{
		Summary:             q.Summary(),
		VendorStats:         q.vendors.GetVendorStats(),
		DailyMetrics:        q.DailyMetrics(),
		UserMetrics:         q.UserMetrics(),
		TerritoryMetrics:    q.TerritoryMetrics(),
		RecentActivity:      q.activity.GetRecentActivity(),
		ActiveFieldOfficers: len(q.users.GetFieldOfficers()),
		ActiveDistributors:  len(q.users.GetDistributors()),
	}
}

// DailyMetrics groups activity by local calendar day, oldest first
func (q *DashboardQuery) DailyMetrics() []DailyMetrics {
	days := make(map[string]*DailyMetrics)
	villages := make(map[string]map[string]struct{})

	day := func(t time.Time, village string) *DailyMetrics {
		key := dayKey(t)
		d, ok := days[key]
		if !ok {
			d = &DailyMetrics{Date: key, Revenue: decimal.Zero}
			days[key] = d
			villages[key] = make(map[string]struct{})
		}
		if village != "" {
			villages[key][village] = struct{}{}
		}
		return d
	}

	for _, m := range q.meetings.GetAll() {
		d := day(m.CreatedAt, m.Village)
		d.Meetings++
		if m.Type == aggregate.MeetingOneOnOne {
			d.OneOnOneMeetings++
		} else {
			d.GroupMeetings++
		}
	}
	for _, s := range q.sales.GetAll() {
		d := day(s.CreatedAt, s.Village)
		d.Sales++
		d.Revenue = d.Revenue.Add(s.TotalValue)
		switch s.Type {
		case aggregate.SaleB2C:
			d.B2CSales++
		case aggregate.SaleB2B:
			d.B2BSales++
		}
	}
	for _, s := range q.samples.GetAll() {
		d := day(s.CreatedAt, s.Village)
		d.SamplesDistributed += s.Quantity
	}

	type userDay struct{ user, day string }
	counted := make(map[userDay]struct{})
	for _, w := range q.workLogs.GetAll() {
		k := userDay{w.UserID, dayKey(w.Timestamp)}
		if _, ok := counted[k]; ok {
			continue
		}
		counted[k] = struct{}{}
		if dist, ok := q.workLogs.OdometerDistance(w.UserID, w.Timestamp); ok {
			day(w.Timestamp, "").DistanceTraveled += dist
		}
	}

	result := make([]DailyMetrics, 0, len(days))
	for key, d := range days {
		d.VillagesVisited = sortedKeys(villages[key])
		result = append(result, *d)
	}
	slices.SortFunc(result, func(a, b DailyMetrics) int { return cmp.Compare(a.Date, b.Date) })
	return result
}

// UserMetrics computes totals for every active field officer and distributor
func (q *DashboardQuery) UserMetrics() []UserMetrics {
	fieldUsers := append(q.users.GetFieldOfficers(), q.users.GetDistributors()...)

	result := make([]UserMetrics, 0, len(fieldUsers))
	for _, u := range fieldUsers {
		meetings := q.meetings.GetByUserID(u.ID)
		sales := q.sales.GetByUserID(u.ID)

		m := UserMetrics{
			UserID:         u.ID,
			UserName:       u.Name,
			Role:           u.Role,
			TotalMeetings:  len(meetings),
			TotalSales:     len(sales),
			TotalRevenue:   sumRevenue(sales),
			ConversionRate: percent(len(sales), len(meetings)),
			Territory:      u.Territory,
		}

		seen := make(map[string]struct{})
		for _, w := range q.workLogs.GetByUserID(u.ID) {
			key := dayKey(w.Timestamp)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			if dist, ok := q.workLogs.OdometerDistance(u.ID, w.Timestamp); ok {
				m.TotalDistance += dist
			}
		}

		result = append(result, m)
	}
	return result
}

// TerritoryMetrics computes totals per village, sorted by village
func (q *DashboardQuery) TerritoryMetrics() []TerritoryMetrics {
	territories := make(map[string]*TerritoryMetrics)
	vendorCount := make(map[string]int)
	buyerCount := make(map[string]int)

	territory := func(village string) *TerritoryMetrics {
		t, ok := territories[village]
		if !ok {
			t = &TerritoryMetrics{Village: village, Revenue: decimal.Zero}
			territories[village] = t
		}
		return t
	}

	for _, v := range q.vendors.GetAll() {
		t := territory(v.Village)
		if t.State == "" {
			t.State = v.State
		}
		if t.District == "" {
			t.District = v.District
		}
		vendorCount[v.Village]++
		if v.HasPurchases() {
			buyerCount[v.Village]++
		}
	}
	for _, m := range q.meetings.GetAll() {
		territory(m.Village).Meetings++
	}
	for _, s := range q.sales.GetAll() {
		t := territory(s.Village)
		t.Sales++
		t.Revenue = t.Revenue.Add(s.TotalValue)
	}

	result := make([]TerritoryMetrics, 0, len(territories))
	for village, t := range territories {
		t.PenetrationRate = percent(buyerCount[village], vendorCount[village])
		result = append(result, *t)
	}
	slices.SortFunc(result, func(a, b TerritoryMetrics) int { return cmp.Compare(a.Village, b.Village) })
	return result
}

// GetRecentActivity returns the latest activity entries
func (q *DashboardQuery) GetRecentActivity() []aggregate.ActivityLog {
	return q.activity.GetRecentActivity()
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
