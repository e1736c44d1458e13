package inventory

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/NgariMwangi/abz-sales-portal/internal/domain/inventory"
	"github.com/NgariMwangi/abz-sales-portal/internal/domain/shared"
)

var validate = validator.New()

// StockService handles manual stock management. Unlike order approval,
// manual removal is strict: it refuses to take stock below zero.
type StockService struct {
	scope  TransactionScope
	logger *zap.Logger
}

// NewStockService creates a new StockService
func NewStockService(scope TransactionScope, logger *zap.Logger) *StockService {
	return &StockService{
		scope:  scope,
		logger: logger,
	}
}

// AddStock increases a product's stock and records the movement
func (s *StockService) AddStock(ctx context.Context, req AdjustStockRequest) (*StockMovementResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", err.Error())
	}

	var resp *StockMovementResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		previous, current, err := repos.Stock().AdjustStock(ctx, req.ProductID, req.Quantity)
		if err != nil {
			return err
		}
		audit, err := inventory.NewStockTransaction(req.ProductID, req.UserID,
			inventory.TransactionTypeAdd, req.Quantity, previous, current, req.Notes)
		if err != nil {
			return err
		}
		if err := repos.StockTransactions().Save(ctx, audit); err != nil {
			return err
		}
		resp = &StockMovementResponse{
			ProductID:     req.ProductID,
			Type:          inventory.TransactionTypeAdd.String(),
			Quantity:      req.Quantity,
			PreviousStock: previous,
			NewStock:      current,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("stock added",
		zap.String("product_id", req.ProductID.String()),
		zap.Int64("quantity", req.Quantity),
		zap.Int64("new_stock", resp.NewStock))
	return resp, nil
}

// RemoveStock decreases a product's stock and records the movement.
// Fails with INSUFFICIENT_STOCK when the request exceeds what is on hand;
// the adjustment rolls back with the transaction.
func (s *StockService) RemoveStock(ctx context.Context, req AdjustStockRequest) (*StockMovementResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", err.Error())
	}

	var resp *StockMovementResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		previous, current, err := repos.Stock().AdjustStock(ctx, req.ProductID, -req.Quantity)
		if err != nil {
			return err
		}
		if previous < req.Quantity {
			return shared.ErrInsufficientStock
		}
		audit, err := inventory.NewStockTransaction(req.ProductID, req.UserID,
			inventory.TransactionTypeRemove, req.Quantity, previous, current, req.Notes)
		if err != nil {
			return err
		}
		if err := repos.StockTransactions().Save(ctx, audit); err != nil {
			return err
		}
		resp = &StockMovementResponse{
			ProductID:     req.ProductID,
			Type:          inventory.TransactionTypeRemove.String(),
			Quantity:      req.Quantity,
			PreviousStock: previous,
			NewStock:      current,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("stock removed",
		zap.String("product_id", req.ProductID.String()),
		zap.Int64("quantity", req.Quantity),
		zap.Int64("new_stock", resp.NewStock))
	return resp, nil
}
