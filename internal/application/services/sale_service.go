package services

import (
	"context"
	"time"

	"fieldtrack/internal/application/command"
	"fieldtrack/internal/application/query"
	"fieldtrack/internal/domain/aggregate"

	"github.com/shopspring/decimal"
)

// SaleService handles sale operations
type SaleService struct {
	createHandler *command.CreateSaleHandler
	updateHandler *command.UpdateSaleHandler
	deleteHandler *command.DeleteRecordHandler[aggregate.Sale]
	sales         *query.SaleQueries
}

// NewSaleService creates a new sale service
func NewSaleService(
	createHandler *command.CreateSaleHandler,
	updateHandler *command.UpdateSaleHandler,
	deleteHandler *command.DeleteRecordHandler[aggregate.Sale],
	sales *query.SaleQueries,
) *SaleService {
	return &SaleService{
		createHandler: createHandler,
		updateHandler: updateHandler,
		deleteHandler: deleteHandler,
		sales:         sales,
	}
}

func (s *SaleService) CreateSale(ctx context.Context, cmd *command.CreateSale) (*aggregate.Sale, error) {
	return s.createHandler.Handle(ctx, cmd)
}

func (s *SaleService) UpdateSale(ctx context.Context, cmd *command.UpdateSale) (*aggregate.Sale, error) {
	return s.updateHandler.Handle(ctx, cmd)
}

func (s *SaleService) DeleteSale(ctx context.Context, id string) (bool, error) {
	return s.deleteHandler.Handle(ctx, &command.DeleteRecord{ID: id})
}

func (s *SaleService) GetSale(id string) *aggregate.Sale {
	return s.sales.GetByID(id)
}

// ListSales returns every sale, or one user's when userID is set
func (s *SaleService) ListSales(userID string) []aggregate.Sale {
	if userID != "" {
		return s.sales.GetByUserID(userID)
	}
	return s.sales.GetAll()
}

func (s *SaleService) GetByDateRange(from, to time.Time) []aggregate.Sale {
	return s.sales.GetByDateRange(from, to)
}

func (s *SaleService) GetTotalRevenue() decimal.Decimal {
	return s.sales.GetTotalRevenue()
}

func (s *SaleService) GetRevenueByType() query.RevenueByType {
	return s.sales.GetRevenueByType()
}
