package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	appinventory "github.com/NgariMwangi/abz-sales-portal/internal/application/inventory"
	"github.com/NgariMwangi/abz-sales-portal/internal/domain/finance"
	"github.com/NgariMwangi/abz-sales-portal/internal/domain/shared"
	"github.com/NgariMwangi/abz-sales-portal/internal/domain/shared/valueobject"
	"github.com/NgariMwangi/abz-sales-portal/internal/domain/trade"
	"github.com/NgariMwangi/abz-sales-portal/internal/infrastructure/notification"
)

var validate = validator.New()

const receiptMintAttempts = 3

// PaymentService applies payments to orders and reconciles balances.
// The payment write is transactional; the receipt that snapshots the
// balance around it is best-effort, because the payment row is the
// financial source of truth and the receipt a derived artifact.
type PaymentService struct {
	scope    appinventory.TransactionScope
	notifier notification.Queue
	logger   *zap.Logger
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(scope appinventory.TransactionScope, notifier notification.Queue, logger *zap.Logger) *PaymentService {
	return &PaymentService{
		scope:    scope,
		notifier: notifier,
		logger:   logger,
	}
}

// ProcessPayment records a completed payment and flips the order to paid in
// one transaction, then mints a receipt and queues a notification. Receipt
// or notification failure never rolls back the payment.
func (s *PaymentService) ProcessPayment(ctx context.Context, req ProcessPaymentRequest) (*PaymentResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", err.Error())
	}
	if !req.Amount.IsPositive() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "payment amount must be positive")
	}

	var (
		payment *finance.Payment
		order   *trade.Order
	)
	err := s.scope.Execute(ctx, func(repos appinventory.TransactionalRepositories) error {
		var err error
		order, err = repos.Orders().FindByID(ctx, req.OrderID)
		if err != nil {
			return err
		}
		payment, err = finance.NewCompletedPayment(order.ID, req.UserID, req.Amount,
			req.Method, req.TransactionID, req.Notes, time.Now())
		if err != nil {
			return err
		}
		if err := repos.Payments().Save(ctx, payment); err != nil {
			return err
		}
		if err := order.MarkPaid(); err != nil {
			return err
		}
		return repos.Orders().Save(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("payment processed",
		zap.String("order_id", order.ID.String()),
		zap.String("payment_id", payment.ID.String()),
		zap.String("amount", payment.Amount.StringFixed(2)))

	resp := ToPaymentResponse(payment)
	receipt, err := s.createReceipt(ctx, order, payment)
	if err != nil {
		s.logger.Warn("receipt creation failed",
			zap.String("payment_id", payment.ID.String()),
			zap.Error(err))
		return &resp, nil
	}
	resp.Receipt = &ReceiptResponse{
		ReceiptNumber:    receipt.ReceiptNumber,
		PaymentAmount:    receipt.PaymentAmount,
		PreviousBalance:  receipt.PreviousBalance,
		RemainingBalance: receipt.RemainingBalance,
	}
	s.notifyReceipt(order, receipt)
	return &resp, nil
}

// RefundPayment flips a completed payment and its order to refunded.
// No stock or balance reversal happens; a refund is a status flag only.
func (s *PaymentService) RefundPayment(ctx context.Context, paymentID uuid.UUID) (*PaymentResponse, error) {
	var payment *finance.Payment
	err := s.scope.Execute(ctx, func(repos appinventory.TransactionalRepositories) error {
		var err error
		payment, err = repos.Payments().FindByID(ctx, paymentID)
		if err != nil {
			return err
		}
		if err := payment.Refund(); err != nil {
			return err
		}
		if err := repos.Payments().Save(ctx, payment); err != nil {
			return err
		}
		order, err := repos.Orders().FindByID(ctx, payment.OrderID)
		if err != nil {
			return err
		}
		if err := order.MarkRefunded(); err != nil {
			return err
		}
		return repos.Orders().Save(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("payment refunded", zap.String("payment_id", paymentID.String()))
	resp := ToPaymentResponse(payment)
	return &resp, nil
}

// createReceipt computes the balance snapshot and mints a sequenced receipt.
// previous_balance counts every other completed payment on the order;
// the payment just taken is excluded so the identity
// remaining = previous - amount holds.
func (s *PaymentService) createReceipt(ctx context.Context, order *trade.Order, payment *finance.Payment) (*finance.Receipt, error) {
	var lastErr error
	for attempt := 0; attempt < receiptMintAttempts; attempt++ {
		var receipt *finance.Receipt
		err := s.scope.Execute(ctx, func(repos appinventory.TransactionalRepositories) error {
			payments, err := repos.Payments().FindByOrder(ctx, order.ID)
			if err != nil {
				return err
			}
			previousSum := decimal.Zero
			for i := range payments {
				p := &payments[i]
				if p.ID == payment.ID || !p.IsCompleted() {
					continue
				}
				previousSum = previousSum.Add(p.Amount)
			}
			previousBalance := order.Total().Sub(previousSum)
			remainingBalance := previousBalance.Sub(payment.Amount)

			now := time.Now()
			seq, err := repos.Numbers().NextNumber(ctx, finance.PrefixReceipt, now)
			if err != nil {
				return err
			}
			number := finance.FormatDocumentNumber(finance.PrefixReceipt, now, seq)
			receipt, err = finance.NewReceipt(payment.ID, order.ID, number,
				payment.Amount, previousBalance, remainingBalance,
				payment.Method, payment.ReferenceNumber, payment.TransactionID, payment.Notes)
			if err != nil {
				return err
			}
			return repos.Receipts().Save(ctx, receipt)
		})
		if err == nil {
			return receipt, nil
		}
		if shared.CodeOf(err) != "DUPLICATE_NUMBER" {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

func (s *PaymentService) notifyReceipt(order *trade.Order, receipt *finance.Receipt) {
	if s.notifier == nil {
		return
	}
	s.notifier.Enqueue(notification.Message{
		Kind:       notification.KindReceipt,
		Recipient:  order.UserID.String(),
		Subject:    "Receipt " + receipt.ReceiptNumber,
		Body:       fmt.Sprintf("Payment of %s received, balance %s", valueobject.NewMoneyKES(receipt.PaymentAmount), valueobject.NewMoneyKES(receipt.RemainingBalance)),
		Attachment: receipt.ID.String(),
	})
}
