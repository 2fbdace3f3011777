package query

import (
	"strings"
	"time"

	"fieldtrack/internal/domain/aggregate"
	"fieldtrack/internal/domain/repository"

	"github.com/shopspring/decimal"
)

func inRange(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}

// MeetingQueries reads the meeting collection
type MeetingQueries struct {
	meetings repository.MeetingRepository
}

// NewMeetingQueries creates meeting queries
func NewMeetingQueries(meetings repository.MeetingRepository) *MeetingQueries {
	return &MeetingQueries{meetings: meetings}
}

func (q *MeetingQueries) GetAll() []aggregate.Meeting {
	return q.meetings.All()
}

func (q *MeetingQueries) GetByUserID(userID string) []aggregate.Meeting {
	return q.meetings.Find(func(m aggregate.Meeting) bool { return m.UserID == userID })
}

// GetByID returns the meeting or nil
func (q *MeetingQueries) GetByID(id string) *aggregate.Meeting {
	m, ok := q.meetings.Get(id)
	if !ok {
		return nil
	}
	return &m
}

// GetByDateRange returns meetings created within [from, to]
func (q *MeetingQueries) GetByDateRange(from, to time.Time) []aggregate.Meeting {
	return q.meetings.Find(func(m aggregate.Meeting) bool { return inRange(m.CreatedAt, from, to) })
}

// GetByTerritory matches villages by case-insensitive substring
func (q *MeetingQueries) GetByTerritory(village string) []aggregate.Meeting {
	needle := strings.ToLower(village)
	return q.meetings.Find(func(m aggregate.Meeting) bool {
		return strings.Contains(strings.ToLower(m.Village), needle)
	})
}

// RevenueByType splits revenue by sale channel
type RevenueByType struct {
	B2C decimal.Decimal `json:"b2c"`
	B2B decimal.Decimal `json:"b2b"`
}

// SaleQueries reads the sale collection
type SaleQueries struct {
	sales repository.SaleRepository
}

// NewSaleQueries creates sale queries
func NewSaleQueries(sales repository.SaleRepository) *SaleQueries {
	return &SaleQueries{sales: sales}
}

func (q *SaleQueries) GetAll() []aggregate.Sale {
	return q.sales.All()
}

func (q *SaleQueries) GetByUserID(userID string) []aggregate.Sale {
	return q.sales.Find(func(s aggregate.Sale) bool { return s.UserID == userID })
}

// GetByID returns the sale or nil
func (q *SaleQueries) GetByID(id string) *aggregate.Sale {
	s, ok := q.sales.Get(id)
	if !ok {
		return nil
	}
	return &s
}

// GetByDateRange returns sales created within [from, to]
func (q *SaleQueries) GetByDateRange(from, to time.Time) []aggregate.Sale {
	return q.sales.Find(func(s aggregate.Sale) bool { return inRange(s.CreatedAt, from, to) })
}

// GetTotalRevenue sums every sale total
func (q *SaleQueries) GetTotalRevenue() decimal.Decimal {
	return sumRevenue(q.sales.All())
}

// GetRevenueByType sums sale totals per channel
func (q *SaleQueries) GetRevenueByType() RevenueByType {
	result := RevenueByType{B2C: decimal.Zero, B2B: decimal.Zero}
	for _, s := range q.sales.All() {
		switch s.Type {
		case aggregate.SaleB2C:
			result.B2C = result.B2C.Add(s.TotalValue)
		case aggregate.SaleB2B:
			result.B2B = result.B2B.Add(s.TotalValue)
		}
	}
	return result
}

func sumRevenue(sales []aggregate.Sale) decimal.Decimal {
	total := decimal.Zero
	for _, s := range sales {
		total = total.Add(s.TotalValue)
	}
	return total
}

// SampleQueries reads the sample distribution collection
type SampleQueries struct {
	samples repository.SampleRepository
}

// NewSampleQueries creates sample queries
func NewSampleQueries(samples repository.SampleRepository) *SampleQueries {
	return &SampleQueries{samples: samples}
}

func (q *SampleQueries) GetAll() []aggregate.SampleDistribution {
	return q.samples.All()
}

func (q *SampleQueries) GetByUserID(userID string) []aggregate.SampleDistribution {
	return q.samples.Find(func(s aggregate.SampleDistribution) bool { return s.UserID == userID })
}

// GetByID returns the distribution or nil
func (q *SampleQueries) GetByID(id string) *aggregate.SampleDistribution {
	s, ok := q.samples.Get(id)
	if !ok {
		return nil
	}
	return &s
}

// GetByDateRange returns distributions created within [from, to]
func (q *SampleQueries) GetByDateRange(from, to time.Time) []aggregate.SampleDistribution {
	return q.samples.Find(func(s aggregate.SampleDistribution) bool { return inRange(s.CreatedAt, from, to) })
}

// GetTotalDistributed sums quantities across every distribution
func (q *SampleQueries) GetTotalDistributed() int {
	return sumQuantities(q.samples.All())
}

func sumQuantities(samples []aggregate.SampleDistribution) int {
	total := 0
	for _, s := range samples {
		total += s.Quantity
	}
	return total
}

// IntSource draws bounded pseudo-random integers
type IntSource interface {
	IntN(n int) int
}

// Mock distance bounds, in km, used when odometer readings are missing
const (
	mockDistanceBase   = 20
	mockDistanceSpread = 50
)

// WorkLogQueries reads the work log collection
type WorkLogQueries struct {
	workLogs repository.WorkLogRepository
	rnd      IntSource
	now      func() time.Time
}

// NewWorkLogQueries creates work log queries
func NewWorkLogQueries(workLogs repository.WorkLogRepository, rnd IntSource, now func() time.Time) *WorkLogQueries {
	if now == nil {
		now = time.Now
	}
	return &WorkLogQueries{workLogs: workLogs, rnd: rnd, now: now}
}

func (q *WorkLogQueries) GetAll() []aggregate.WorkLog {
	return q.workLogs.All()
}

func (q *WorkLogQueries) GetByUserID(userID string) []aggregate.WorkLog {
	return q.workLogs.Find(func(w aggregate.WorkLog) bool { return w.UserID == userID })
}

// GetByID returns the work log or nil
func (q *WorkLogQueries) GetByID(id string) *aggregate.WorkLog {
	w, ok := q.workLogs.Get(id)
	if !ok {
		return nil
	}
	return &w
}

// GetTodayLog returns the user's first start and first end of the current
// local day. Later duplicates are ignored.
func (q *WorkLogQueries) GetTodayLog(userID string) aggregate.TodayLog {
	return q.dayLog(userID, q.now())
}

func (q *WorkLogQueries) dayLog(userID string, day time.Time) aggregate.TodayLog {
	var result aggregate.TodayLog
	for _, w := range q.GetByUserID(userID) {
		if !aggregate.SameDay(w.Timestamp, day) {
			continue
		}
		switch {
		case w.Type == aggregate.WorkStart && result.Start == nil:
			result.Start = &w
		case w.Type == aggregate.WorkEnd && result.End == nil:
			result.End = &w
		}
	}
	return result
}

// GetDistanceTraveled returns the odometer difference for the user's day, or
// a mock distance when either reading is missing or zero
func (q *WorkLogQueries) GetDistanceTraveled(userID string, date time.Time) float64 {
	if d, ok := q.OdometerDistance(userID, date); ok {
		return d
	}
	return float64(mockDistanceBase + q.rnd.IntN(mockDistanceSpread))
}

// OdometerDistance returns the recorded distance for the user's day. It
// reports false unless both the start and end readings are present and non-zero.
func (q *WorkLogQueries) OdometerDistance(userID string, date time.Time) (float64, bool) {
	day := q.dayLog(userID, date)
	if day.Start == nil || day.End == nil {
		return 0, false
	}
	start, end := day.Start.OdometerReading, day.End.OdometerReading
	if start == nil || *start == 0 || end == nil || *end == 0 {
		return 0, false
	}
	return *end - *start, true
}
