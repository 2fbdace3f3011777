package command

import (
	"time"

	"fieldtrack/internal/domain/aggregate"

	"github.com/shopspring/decimal"
)

// ============================================
// Vendor Commands
// ============================================

// CreateVendor represents a command to register a new vendor
type CreateVendor struct {
	Name         string                    `json:"name" validate:"required"`
	Phone        string                    `json:"phone"`
	Email        string                    `json:"email" validate:"omitempty,email"`
	Type         aggregate.StakeholderType `json:"type" validate:"required,stakeholder"`
	BusinessName string                    `json:"business_name"`
	Village      string                    `json:"village" validate:"required"`
	District     string                    `json:"district"`
	State        string                    `json:"state"`
	Address      string                    `json:"address"`
	IsActive     *bool                     `json:"is_active"`
	Notes        string                    `json:"notes"`
	Tags         []string                  `json:"tags"`
	Location     *aggregate.GeoLocation    `json:"location" validate:"omitempty"`
}

// UpdateVendor is a partial update. Nil fields are left untouched. Setting
// any counter is an explicit correction of the accumulated metrics.
type UpdateVendor struct {
	VendorID        string                     `json:"-" validate:"required"`
	Name            *string                    `json:"name" validate:"omitempty,min=1"`
	Phone           *string                    `json:"phone"`
	Email           *string                    `json:"email" validate:"omitempty,email"`
	Type            *aggregate.StakeholderType `json:"type" validate:"omitempty,stakeholder"`
	BusinessName    *string                    `json:"business_name"`
	Village         *string                    `json:"village" validate:"omitempty,min=1"`
	District        *string                    `json:"district"`
	State           *string                    `json:"state"`
	Address         *string                    `json:"address"`
	IsActive        *bool                      `json:"is_active"`
	Notes           *string                    `json:"notes"`
	Tags            []string                   `json:"tags"`
	Location        *aggregate.GeoLocation     `json:"location" validate:"omitempty"`
	LastContactDate *time.Time                 `json:"last_contact_date"`
	TotalPurchases  *int                       `json:"total_purchases" validate:"omitempty,gte=0"`
	TotalRevenue    *decimal.Decimal           `json:"total_revenue"`
	TotalMeetings   *int                       `json:"total_meetings" validate:"omitempty,gte=0"`
	TotalSamples    *int                       `json:"total_samples" validate:"omitempty,gte=0"`
}

// DeleteVendor represents a command to delete a vendor
type DeleteVendor struct {
	VendorID string `json:"vendor_id" validate:"required"`
}

// UpdateVendorMetrics credits one engagement to a vendor
type UpdateVendorMetrics struct {
	VendorID string               `json:"-" validate:"required"`
	Kind     aggregate.MetricKind `json:"type" validate:"required,metric"`
	Value    *decimal.Decimal     `json:"value"`
}

// ============================================
// Meeting Commands
// ============================================

// CreateMeeting records a meeting. A nil location is resolved from the device.
type CreateMeeting struct {
	UserID            string                    `json:"user_id" validate:"required"`
	VendorID          string                    `json:"vendor_id"`
	Type              aggregate.MeetingType     `json:"type" validate:"required,oneof=one_on_one group"`
	Category          aggregate.MeetingCategory `json:"category" validate:"required,oneof=product_demo farmer_training feedback_session sales_event other"`
	StakeholderType   aggregate.StakeholderType `json:"stakeholder_type" validate:"required,stakeholder"`
	ContactName       string                    `json:"contact_name" validate:"required"`
	ContactPhone      string                    `json:"contact_phone"`
	Village           string                    `json:"village" validate:"required"`
	Location          *aggregate.GeoLocation    `json:"location" validate:"omitempty"`
	AttendanceCount   *int                      `json:"attendance_count" validate:"omitempty,gte=1"`
	BusinessPotential string                    `json:"business_potential"`
	Notes             string                    `json:"notes"`
	Photos            []string                  `json:"photos"`
}

// UpdateMeeting is a partial update of a meeting
type UpdateMeeting struct {
	MeetingID         string                     `json:"-" validate:"required"`
	Type              *aggregate.MeetingType     `json:"type" validate:"omitempty,oneof=one_on_one group"`
	Category          *aggregate.MeetingCategory `json:"category" validate:"omitempty,oneof=product_demo farmer_training feedback_session sales_event other"`
	ContactName       *string                    `json:"contact_name" validate:"omitempty,min=1"`
	ContactPhone      *string                    `json:"contact_phone"`
	Village           *string                    `json:"village" validate:"omitempty,min=1"`
	AttendanceCount   *int                       `json:"attendance_count" validate:"omitempty,gte=1"`
	BusinessPotential *string                    `json:"business_potential"`
	Notes             *string                    `json:"notes"`
	Photos            []string                   `json:"photos"`
}

// ============================================
// Sale Commands
// ============================================

// CreateSale records a sale. The total is always quantity times unit price.
type CreateSale struct {
	UserID           string                     `json:"user_id" validate:"required"`
	VendorID         string                     `json:"vendor_id"`
	Type             aggregate.SaleType         `json:"type" validate:"required,oneof=b2c b2b"`
	CustomerName     string                     `json:"customer_name" validate:"required"`
	CustomerContact  string                     `json:"customer_contact"`
	CustomerType     *aggregate.StakeholderType `json:"customer_type" validate:"omitempty,stakeholder"`
	BusinessName     string                     `json:"business_name"`
	ProductSKU       string                     `json:"product_sku" validate:"required"`
	ProductName      string                     `json:"product_name" validate:"required"`
	PackSize         string                     `json:"pack_size"`
	Quantity         int                        `json:"quantity" validate:"gte=1"`
	UnitPrice        decimal.Decimal            `json:"unit_price"`
	PaymentMode      aggregate.PaymentMode      `json:"payment_mode" validate:"required,oneof=cash digital credit"`
	Location         *aggregate.GeoLocation     `json:"location" validate:"omitempty"`
	Village          string                     `json:"village" validate:"required"`
	IsRepeatOrder    bool                       `json:"is_repeat_order"`
	DeliveryTimeline string                     `json:"delivery_timeline"`
	Notes            string                     `json:"notes"`
}

// UpdateSale is a partial update of a sale
type UpdateSale struct {
	SaleID           string                 `json:"-" validate:"required"`
	CustomerName     *string                `json:"customer_name" validate:"omitempty,min=1"`
	CustomerContact  *string                `json:"customer_contact"`
	BusinessName     *string                `json:"business_name"`
	Quantity         *int                   `json:"quantity" validate:"omitempty,gte=1"`
	UnitPrice        *decimal.Decimal       `json:"unit_price"`
	PaymentMode      *aggregate.PaymentMode `json:"payment_mode" validate:"omitempty,oneof=cash digital credit"`
	Village          *string                `json:"village" validate:"omitempty,min=1"`
	IsRepeatOrder    *bool                  `json:"is_repeat_order"`
	DeliveryTimeline *string                `json:"delivery_timeline"`
	Notes            *string                `json:"notes"`
}

// ============================================
// Sample Commands
// ============================================

// CreateSample records a sample distribution
type CreateSample struct {
	UserID           string                        `json:"user_id" validate:"required"`
	VendorID         string                        `json:"vendor_id"`
	RecipientName    string                        `json:"recipient_name" validate:"required"`
	RecipientContact string                        `json:"recipient_contact"`
	StakeholderType  aggregate.StakeholderType     `json:"stakeholder_type" validate:"required,stakeholder"`
	ProductSKU       string                        `json:"product_sku" validate:"required"`
	ProductName      string                        `json:"product_name" validate:"required"`
	Quantity         int                           `json:"quantity" validate:"gte=1"`
	Unit             string                        `json:"unit" validate:"required"`
	BatchNumber      string                        `json:"batch_number"`
	Purpose          aggregate.DistributionPurpose `json:"purpose" validate:"required,oneof=trial demo follow_up promotional"`
	Location         *aggregate.GeoLocation        `json:"location" validate:"omitempty"`
	Village          string                        `json:"village" validate:"required"`
	Notes            string                        `json:"notes"`
}

// UpdateSample is a partial update of a sample distribution
type UpdateSample struct {
	SampleID         string                         `json:"-" validate:"required"`
	RecipientName    *string                        `json:"recipient_name" validate:"omitempty,min=1"`
	RecipientContact *string                        `json:"recipient_contact"`
	Quantity         *int                           `json:"quantity" validate:"omitempty,gte=1"`
	Unit             *string                        `json:"unit" validate:"omitempty,min=1"`
	BatchNumber      *string                        `json:"batch_number"`
	Purpose          *aggregate.DistributionPurpose `json:"purpose" validate:"omitempty,oneof=trial demo follow_up promotional"`
	Village          *string                        `json:"village" validate:"omitempty,min=1"`
	Notes            *string                        `json:"notes"`
}

// ============================================
// Work Log Commands
// ============================================

// CreateWorkLog records the start or end of a working day. A zero timestamp
// means now.
type CreateWorkLog struct {
	UserID          string                 `json:"user_id" validate:"required"`
	Type            aggregate.WorkLogType  `json:"type" validate:"required,oneof=start end"`
	Timestamp       time.Time              `json:"timestamp"`
	Location        *aggregate.GeoLocation `json:"location" validate:"omitempty"`
	OdometerReading *float64               `json:"odometer_reading" validate:"omitempty,gte=0"`
	Notes           string                 `json:"notes"`
}

// UpdateWorkLog is a partial update of a work log
type UpdateWorkLog struct {
	WorkLogID       string   `json:"-" validate:"required"`
	OdometerReading *float64 `json:"odometer_reading" validate:"omitempty,gte=0"`
	Notes           *string  `json:"notes"`
}

// DeleteRecord deletes a meeting, sale, sample or work log by id
type DeleteRecord struct {
	ID string `json:"id" validate:"required"`
}
