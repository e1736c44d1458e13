package trade

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	appinventory "github.com/NgariMwangi/abz-sales-portal/internal/application/inventory"
	"github.com/NgariMwangi/abz-sales-portal/internal/domain/shared"
	"github.com/NgariMwangi/abz-sales-portal/internal/domain/trade"
)

const quotationMintAttempts = 2

// QuotationService manages quotations, the stock-inert siblings of orders
type QuotationService struct {
	scope  appinventory.TransactionScope
	logger *zap.Logger
}

// NewQuotationService creates a new QuotationService
func NewQuotationService(scope appinventory.TransactionScope, logger *zap.Logger) *QuotationService {
	return &QuotationService{
		scope:  scope,
		logger: logger,
	}
}

// CreateQuotation prices the lines, mints a quotation number, and persists
// everything in one transaction. No stock is touched.
func (s *QuotationService) CreateQuotation(ctx context.Context, req CreateQuotationRequest) (*QuotationResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", err.Error())
	}

	// A freshly minted number can still collide with a concurrent insert;
	// the collision aborts the transaction, so re-mint and run it again.
	var (
		quotation *trade.Quotation
		err       error
	)
	for attempt := 0; attempt < quotationMintAttempts; attempt++ {
		err = s.scope.Execute(ctx, func(repos appinventory.TransactionalRepositories) error {
			items, err := s.buildItems(ctx, repos, req.Items)
			if err != nil {
				return err
			}
			quotation, err = trade.NewQuotation(req.UserID, req.BranchID, req.CustomerName, req.CustomerEmail, req.CustomerPhone, items)
			if err != nil {
				return err
			}
			number, err := repos.Quotations().GenerateNumber(ctx)
			if err != nil {
				return err
			}
			quotation.QuotationNumber = number
			quotation.ValidUntil = req.ValidUntil
			quotation.Notes = req.Notes
			return repos.Quotations().Save(ctx, quotation)
		})
		if err == nil || shared.CodeOf(err) != "DUPLICATE_NUMBER" {
			break
		}
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info("quotation created",
		zap.String("quotation_id", quotation.ID.String()),
		zap.String("quotation_number", quotation.QuotationNumber))

	resp := ToQuotationResponse(quotation)
	return &resp, nil
}

// GetQuotation retrieves a quotation by id
func (s *QuotationService) GetQuotation(ctx context.Context, quotationID uuid.UUID) (*QuotationResponse, error) {
	var resp *QuotationResponse
	err := s.scope.Execute(ctx, func(repos appinventory.TransactionalRepositories) error {
		q, err := repos.Quotations().FindByID(ctx, quotationID)
		if err != nil {
			return err
		}
		r := ToQuotationResponse(q)
		resp = &r
		return nil
	})
	return resp, err
}

// EditQuotation wholesale-replaces the quotation's items while pending
func (s *QuotationService) EditQuotation(ctx context.Context, req EditQuotationRequest) (*QuotationResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", err.Error())
	}

	var quotation *trade.Quotation
	err := s.scope.Execute(ctx, func(repos appinventory.TransactionalRepositories) error {
		var err error
		quotation, err = repos.Quotations().FindByID(ctx, req.QuotationID)
		if err != nil {
			return err
		}
		items, err := s.buildItems(ctx, repos, req.Items)
		if err != nil {
			return err
		}
		if err := quotation.ReplaceItems(items); err != nil {
			return err
		}
		return repos.Quotations().Save(ctx, quotation)
	})
	if err != nil {
		return nil, err
	}

	resp := ToQuotationResponse(quotation)
	return &resp, nil
}

// UpdateStatus transitions the quotation lifecycle
func (s *QuotationService) UpdateStatus(ctx context.Context, req UpdateQuotationStatusRequest) (*QuotationResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", err.Error())
	}

	var quotation *trade.Quotation
	err := s.scope.Execute(ctx, func(repos appinventory.TransactionalRepositories) error {
		var err error
		quotation, err = repos.Quotations().FindByID(ctx, req.QuotationID)
		if err != nil {
			return err
		}
		if err := quotation.UpdateStatus(trade.QuotationStatus(req.Status)); err != nil {
			return err
		}
		return repos.Quotations().Save(ctx, quotation)
	})
	if err != nil {
		return nil, err
	}

	resp := ToQuotationResponse(quotation)
	return &resp, nil
}

// DeleteQuotation removes a quotation and its items
func (s *QuotationService) DeleteQuotation(ctx context.Context, quotationID uuid.UUID) error {
	return s.scope.Execute(ctx, func(repos appinventory.TransactionalRepositories) error {
		if _, err := repos.Quotations().FindByID(ctx, quotationID); err != nil {
			return err
		}
		return repos.Quotations().Delete(ctx, quotationID)
	})
}

// buildItems turns request lines into quotation items. Catalog-backed lines
// default to the product's selling price when no unit price is supplied.
func (s *QuotationService) buildItems(ctx context.Context, repos appinventory.TransactionalRepositories, inputs []QuotationItemInput) ([]trade.QuotationItem, error) {
	items := make([]trade.QuotationItem, 0, len(inputs))
	for _, in := range inputs {
		var (
			name      string
			unitPrice decimal.Decimal
		)
		if in.ProductID != nil {
			product, err := repos.Products().FindByID(ctx, *in.ProductID)
			if err != nil {
				return nil, err
			}
			name = product.Name
			if in.UnitPrice != nil {
				unitPrice = *in.UnitPrice
			} else {
				unitPrice = product.SellingPriceOrZero()
			}
		} else {
			name = in.ProductName
			if in.UnitPrice == nil {
				return nil, shared.NewDomainError("INVALID_PRICE", "manual quotation items require a unit price")
			}
			unitPrice = *in.UnitPrice
		}
		item, err := trade.NewQuotationItem(uuid.Nil, in.ProductID, name, in.Quantity, unitPrice, in.Notes)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, nil
}
