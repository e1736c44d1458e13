package trade

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	appinventory "github.com/NgariMwangi/abz-sales-portal/internal/application/inventory"
	"github.com/NgariMwangi/abz-sales-portal/internal/domain/finance"
	"github.com/NgariMwangi/abz-sales-portal/internal/domain/inventory"
	"github.com/NgariMwangi/abz-sales-portal/internal/domain/shared"
	"github.com/NgariMwangi/abz-sales-portal/internal/domain/shared/valueobject"
	"github.com/NgariMwangi/abz-sales-portal/internal/domain/trade"
	"github.com/NgariMwangi/abz-sales-portal/internal/infrastructure/notification"
)

var validate = validator.New()

// invoiceMintAttempts bounds retries when two callers race on the same
// prefix+day counter and collide on the unique number constraint.
const invoiceMintAttempts = 3

// OrderService drives the order lifecycle: creation with pricing, item
// replacement, price negotiation, and approval with its stock effects.
type OrderService struct {
	scope    appinventory.TransactionScope
	notifier notification.Queue
	logger   *zap.Logger
}

// NewOrderService creates a new OrderService
func NewOrderService(scope appinventory.TransactionScope, notifier notification.Queue, logger *zap.Logger) *OrderService {
	return &OrderService{
		scope:    scope,
		notifier: notifier,
		logger:   logger,
	}
}

// CreateOrder validates and prices every line, persists the order and its
// items in one transaction, then creates an invoice best-effort: an invoice
// failure is logged and never fails the order.
func (s *OrderService) CreateOrder(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", err.Error())
	}
	kind, err := trade.ResolveOrderKind(req.OrderType)
	if err != nil {
		return nil, err
	}

	var order *trade.Order
	err = s.scope.Execute(ctx, func(repos appinventory.TransactionalRepositories) error {
		items, err := s.buildItems(ctx, repos, kind, req.Items)
		if err != nil {
			return err
		}
		order, err = trade.NewOrder(req.UserID, req.BranchID, kind, items)
		if err != nil {
			return err
		}
		return repos.Orders().Save(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("order created",
		zap.String("order_id", order.ID.String()),
		zap.String("order_type", kind.String()),
		zap.String("total", order.Total().String()))

	if invoice, err := s.ensureInvoice(ctx, order); err != nil {
		s.logger.Warn("invoice creation failed for new order",
			zap.String("order_id", order.ID.String()),
			zap.Error(err))
	} else {
		s.notifyInvoice(order, invoice)
	}

	resp := ToOrderResponse(order)
	return &resp, nil
}

// GetOrder retrieves an order by id
func (s *OrderService) GetOrder(ctx context.Context, orderID uuid.UUID) (*OrderResponse, error) {
	var resp *OrderResponse
	err := s.scope.Execute(ctx, func(repos appinventory.TransactionalRepositories) error {
		order, err := repos.Orders().FindByID(ctx, orderID)
		if err != nil {
			return err
		}
		r := ToOrderResponse(order)
		resp = &r
		return nil
	})
	return resp, err
}

// EditOrder wholesale-replaces the order's items, allowed only for the
// owner and only while pending. The replacement is atomic.
func (s *OrderService) EditOrder(ctx context.Context, req EditOrderRequest) (*OrderResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", err.Error())
	}

	var order *trade.Order
	err := s.scope.Execute(ctx, func(repos appinventory.TransactionalRepositories) error {
		var err error
		order, err = repos.Orders().FindByID(ctx, req.OrderID)
		if err != nil {
			return err
		}
		if order.UserID != req.UserID {
			return shared.NewDomainError("INVALID_STATE", "only the order owner can edit it")
		}
		items, err := s.buildItems(ctx, repos, order.Kind, req.Items)
		if err != nil {
			return err
		}
		if err := order.ReplaceItems(items); err != nil {
			return err
		}
		return repos.Orders().Save(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	resp := ToOrderResponse(order)
	return &resp, nil
}

// DeleteOrder removes a pending order, its items, and any provisional invoice
func (s *OrderService) DeleteOrder(ctx context.Context, orderID uuid.UUID) error {
	return s.removePendingOrder(ctx, orderID, "deleted")
}

// RejectOrder declines a pending order; the effect matches deletion
func (s *OrderService) RejectOrder(ctx context.Context, orderID uuid.UUID) error {
	return s.removePendingOrder(ctx, orderID, "rejected")
}

func (s *OrderService) removePendingOrder(ctx context.Context, orderID uuid.UUID, action string) error {
	err := s.scope.Execute(ctx, func(repos appinventory.TransactionalRepositories) error {
		order, err := repos.Orders().FindByID(ctx, orderID)
		if err != nil {
			return err
		}
		if !order.IsPending() {
			return shared.NewDomainError("INVALID_STATE", "cannot remove an approved order")
		}
		invoice, err := repos.Invoices().FindByOrder(ctx, orderID)
		switch {
		case err == nil:
			if err := repos.Invoices().Delete(ctx, invoice.ID); err != nil {
				return err
			}
		case shared.CodeOf(err) != "NOT_FOUND":
			return err
		}
		return repos.Orders().Delete(ctx, orderID)
	})
	if err != nil {
		return err
	}
	s.logger.Info("order "+action, zap.String("order_id", orderID.String()))
	return nil
}

// NegotiatePrice applies a staff price override to one line. Re-submitting
// the current price and notes is reported as "no changes made" without a
// write.
func (s *OrderService) NegotiatePrice(ctx context.Context, req NegotiatePriceRequest) (*NegotiationResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", err.Error())
	}

	var resp *NegotiationResponse
	err := s.scope.Execute(ctx, func(repos appinventory.TransactionalRepositories) error {
		order, err := repos.Orders().FindByID(ctx, req.OrderID)
		if err != nil {
			return err
		}
		changed, err := order.NegotiateItemPrice(req.OrderItemID, req.NewPrice, req.Notes)
		if err != nil {
			return err
		}
		if !changed {
			resp = &NegotiationResponse{Changed: false, Message: "no changes made", TotalAmount: order.Total()}
			return nil
		}
		if err := repos.Orders().Save(ctx, order); err != nil {
			return err
		}
		resp = &NegotiationResponse{Changed: true, Message: "price updated", TotalAmount: order.Total()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// ApproveOrder commits the order's stock effects. Approving an already
// approved order succeeds without re-running any effect. Online orders need
// a branch selection per catalog-backed item; manual lines are exempt.
// Stock removal is permissive: levels may go negative, annotated as a
// backorder, because a sale is never blocked at approval time.
func (s *OrderService) ApproveOrder(ctx context.Context, req ApproveOrderRequest) (*ApprovalResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", err.Error())
	}

	var order *trade.Order
	alreadyApproved := false
	err := s.scope.Execute(ctx, func(repos appinventory.TransactionalRepositories) error {
		var err error
		order, err = repos.Orders().FindByID(ctx, req.OrderID)
		if err != nil {
			return err
		}
		if !order.Approve(time.Now()) {
			alreadyApproved = true
			return nil
		}

		if order.Kind.IsOnline() {
			for i := range order.Items {
				item := &order.Items[i]
				if item.IsManual() {
					continue
				}
				if _, ok := req.BranchSelections[item.ID]; !ok {
					return shared.NewDomainError("VALIDATION_ERROR",
						fmt.Sprintf("no branch selected for item %s", item.ID))
				}
			}
		}

		for i := range order.Items {
			item := &order.Items[i]
			if item.IsManual() {
				continue
			}
			targetID, err := s.resolveFulfilmentProduct(ctx, repos, order, item, req.BranchSelections)
			if err != nil {
				return err
			}
			if err := s.removeStockPermissive(ctx, repos, targetID, req.UserID, item.Quantity); err != nil {
				return err
			}
		}

		return repos.Orders().Save(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	resp := &ApprovalResponse{AlreadyApproved: alreadyApproved, TotalAmount: order.Total()}
	if alreadyApproved {
		return resp, nil
	}

	s.logger.Info("order approved",
		zap.String("order_id", order.ID.String()),
		zap.String("total", order.Total().String()))

	if invoice, err := s.ensureInvoice(ctx, order); err != nil {
		s.logger.Warn("invoice creation failed after approval",
			zap.String("order_id", order.ID.String()),
			zap.Error(err))
	} else {
		resp.InvoiceNumber = invoice.InvoiceNumber
		s.notifyInvoice(order, invoice)
	}
	return resp, nil
}

// resolveFulfilmentProduct picks the product row whose stock the approval
// decrements. Online orders fulfil from the branch-local copy sharing the
// item's product code, which may differ from the order's nominal branch.
func (s *OrderService) resolveFulfilmentProduct(ctx context.Context, repos appinventory.TransactionalRepositories, order *trade.Order, item *trade.OrderItem, selections map[uuid.UUID]uuid.UUID) (uuid.UUID, error) {
	if !order.Kind.IsOnline() {
		return *item.ProductID, nil
	}
	branchID := selections[item.ID]
	origin, err := repos.Products().FindByID(ctx, *item.ProductID)
	if err != nil {
		return uuid.Nil, err
	}
	target, err := repos.Products().FindByCodeAndBranch(ctx, origin.ProductCode, branchID)
	if err != nil {
		return uuid.Nil, err
	}
	return target.ID, nil
}

func (s *OrderService) removeStockPermissive(ctx context.Context, repos appinventory.TransactionalRepositories, productID, userID uuid.UUID, quantity int64) error {
	previous, current, err := repos.Stock().AdjustStock(ctx, productID, -quantity)
	if err != nil {
		return err
	}
	notes := "order approval"
	if previous < quantity {
		notes += " (backorder)"
	}
	audit, err := inventory.NewStockTransaction(productID, userID,
		inventory.TransactionTypeRemove, quantity, previous, current, notes)
	if err != nil {
		return err
	}
	return repos.StockTransactions().Save(ctx, audit)
}

// ensureInvoice returns the order's invoice, minting one if none exists.
// A number collision from concurrent minting retries the whole step.
func (s *OrderService) ensureInvoice(ctx context.Context, order *trade.Order) (*finance.Invoice, error) {
	var lastErr error
	for attempt := 0; attempt < invoiceMintAttempts; attempt++ {
		var invoice *finance.Invoice
		err := s.scope.Execute(ctx, func(repos appinventory.TransactionalRepositories) error {
			existing, err := repos.Invoices().FindByOrder(ctx, order.ID)
			if err == nil {
				invoice = existing
				return nil
			}
			if shared.CodeOf(err) != "NOT_FOUND" {
				return err
			}
			now := time.Now()
			seq, err := repos.Numbers().NextNumber(ctx, finance.PrefixInvoice, now)
			if err != nil {
				return err
			}
			number := finance.FormatDocumentNumber(finance.PrefixInvoice, now, seq)
			created, err := finance.NewInvoice(order.ID, number, order.Total(), "", now)
			if err != nil {
				return err
			}
			if err := repos.Invoices().Save(ctx, created); err != nil {
				return err
			}
			invoice = created
			return nil
		})
		if err == nil {
			return invoice, nil
		}
		if shared.CodeOf(err) != "DUPLICATE_NUMBER" {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

func (s *OrderService) notifyInvoice(order *trade.Order, invoice *finance.Invoice) {
	if s.notifier == nil {
		return
	}
	s.notifier.Enqueue(notification.Message{
		Kind:       notification.KindInvoice,
		Recipient:  order.UserID.String(),
		Subject:    "Invoice " + invoice.InvoiceNumber,
		Body:       fmt.Sprintf("Invoice %s for %s", invoice.InvoiceNumber, valueobject.NewMoneyKES(invoice.TotalAmount)),
		Attachment: invoice.ID.String(),
	})
}

// buildItems turns request lines into priced order items. Catalog-backed
// lines snapshot the product's prices; manual lines carry their own.
func (s *OrderService) buildItems(ctx context.Context, repos appinventory.TransactionalRepositories, kind trade.OrderKind, inputs []OrderItemInput) ([]trade.OrderItem, error) {
	items := make([]trade.OrderItem, 0, len(inputs))
	for _, in := range inputs {
		var (
			item *trade.OrderItem
			err  error
		)
		if in.ProductID != nil {
			product, ferr := repos.Products().FindByID(ctx, *in.ProductID)
			if ferr != nil {
				return nil, ferr
			}
			pricing, perr := trade.ResolveLinePricing(trade.PricingInput{
				Kind:            kind,
				SellingPrice:    product.SellingPrice,
				BuyingPrice:     product.BuyingPrice,
				NegotiatedPrice: in.NegotiatedPrice,
			})
			if perr != nil {
				return nil, perr
			}
			item, err = trade.NewOrderItem(uuid.Nil, in.ProductID, product.Name, in.Quantity, pricing)
		} else {
			pricing, perr := trade.ResolveLinePricing(trade.PricingInput{
				Kind:            kind,
				Manual:          true,
				ManualPrice:     in.Price,
				NegotiatedPrice: in.NegotiatedPrice,
			})
			if perr != nil {
				return nil, perr
			}
			item, err = trade.NewOrderItem(uuid.Nil, nil, in.ProductName, in.Quantity, pricing)
		}
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, nil
}
