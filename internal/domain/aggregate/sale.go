package aggregate

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleType is the sales channel
type SaleType string

const (
	SaleB2C SaleType = "b2c"
	SaleB2B SaleType = "b2b"
)

// PaymentMode is how the customer paid
type PaymentMode string

const (
	PaymentCash    PaymentMode = "cash"
	PaymentDigital PaymentMode = "digital"
	PaymentCredit  PaymentMode = "credit"
)

// Sale is a recorded product sale
type Sale struct {
	ID               string           `json:"id"`
	UserID           string           `json:"user_id"`
	VendorID         string           `json:"vendor_id,omitempty"`
	Type             SaleType         `json:"type"`
	CustomerName     string           `json:"customer_name"`
	CustomerContact  string           `json:"customer_contact,omitempty"`
	CustomerType     *StakeholderType `json:"customer_type,omitempty"`
	BusinessName     string           `json:"business_name,omitempty"`
	ProductSKU       string           `json:"product_sku"`
	ProductName      string           `json:"product_name"`
	PackSize         string           `json:"pack_size"`
	Quantity         int              `json:"quantity"`
	UnitPrice        decimal.Decimal  `json:"unit_price"`
	TotalValue       decimal.Decimal  `json:"total_value"`
	PaymentMode      PaymentMode      `json:"payment_mode"`
	Location         GeoLocation      `json:"location"`
	Village          string           `json:"village"`
	IsRepeatOrder    bool             `json:"is_repeat_order"`
	DeliveryTimeline string           `json:"delivery_timeline,omitempty"`
	Notes            string           `json:"notes,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
}

// ComputeTotal returns quantity × unit price
func ComputeTotal(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// Clone returns a deep copy
func (s Sale) Clone() Sale {
	cp := s
	cp.Location = s.Location.Clone()
	if s.CustomerType != nil {
		ct := *s.CustomerType
		cp.CustomerType = &ct
	}
	return cp
}

func (s Sale) GetID() string { return s.ID }
