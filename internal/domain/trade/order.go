package trade

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/NgariMwangi/abz-sales-portal/internal/domain/shared"
)

// PaymentStatus tracks payment progress on an order, independent of approval
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// IsValid checks if the payment status is valid
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

// CanTransitionTo checks if transition to target status is allowed.
// Transitions are forward-only; there is no re-payment after a refund.
func (s PaymentStatus) CanTransitionTo(target PaymentStatus) bool {
	switch s {
	case PaymentStatusPending:
		return target == PaymentStatusPaid || target == PaymentStatusFailed
	case PaymentStatusPaid:
		return target == PaymentStatusRefunded
	default:
		return false
	}
}

// String returns the string representation
func (s PaymentStatus) String() string {
	return string(s)
}

// OrderItem is one line of an order. ProductID is nil for manual lines,
// which carry only a free-text product name and a caller-supplied price.
type OrderItem struct {
	shared.BaseEntity
	OrderID          uuid.UUID
	ProductID        *uuid.UUID
	ProductName      string
	Quantity         int64
	BuyingPrice      *decimal.Decimal
	OriginalPrice    decimal.Decimal
	NegotiatedPrice  *decimal.Decimal
	FinalPrice       decimal.Decimal
	NegotiationNotes string
}

// NewOrderItem creates an order line from a resolved pricing set
func NewOrderItem(orderID uuid.UUID, productID *uuid.UUID, productName string, quantity int64, pricing LinePricing) (*OrderItem, error) {
	productName = strings.TrimSpace(productName)
	if productName == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "product name is required")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "quantity must be positive")
	}
	return &OrderItem{
		BaseEntity:      shared.NewBaseEntity(),
		OrderID:         orderID,
		ProductID:       productID,
		ProductName:     productName,
		Quantity:        quantity,
		BuyingPrice:     pricing.BuyingPrice,
		OriginalPrice:   pricing.OriginalPrice,
		NegotiatedPrice: pricing.NegotiatedPrice,
		FinalPrice:      pricing.FinalPrice,
	}, nil
}

// IsManual reports whether the line has no catalog product behind it
func (i *OrderItem) IsManual() bool {
	return i.ProductID == nil
}

// UnitPrice returns the effective unit price via the standard fallback chain
func (i *OrderItem) UnitPrice() decimal.Decimal {
	return ResolveUnitPrice(&i.FinalPrice, &i.OriginalPrice, nil)
}

// LineTotal returns quantity times the effective unit price
func (i *OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice().Mul(decimal.NewFromInt(i.Quantity))
}

// Order is the fulfilment aggregate: a header, its line items, and two
// orthogonal state axes (approval, payment).
type Order struct {
	shared.BaseAggregateRoot
	UserID         uuid.UUID
	BranchID       uuid.UUID
	Kind           OrderKind
	ApprovalStatus bool
	ApprovedAt     *time.Time
	PaymentStatus  PaymentStatus
	Items          []OrderItem
}

// NewOrder creates a pending order with its items
func NewOrder(userID, branchID uuid.UUID, kind OrderKind, items []OrderItem) (*Order, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "user is required")
	}
	if branchID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "branch is required")
	}
	if !kind.IsValid() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "invalid order kind")
	}
	if len(items) == 0 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "order must have at least one item")
	}
	o := &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		BranchID:          branchID,
		Kind:              kind,
		PaymentStatus:     PaymentStatusPending,
	}
	for _, item := range items {
		item.OrderID = o.ID
		o.Items = append(o.Items, item)
	}
	return o, nil
}

// IsPending reports whether the order has not been approved yet
func (o *Order) IsPending() bool {
	return !o.ApprovalStatus
}

// ReplaceItems swaps the whole item collection, allowed only while pending
func (o *Order) ReplaceItems(items []OrderItem) error {
	if o.ApprovalStatus {
		return shared.NewDomainError("INVALID_STATE", "cannot edit an approved order")
	}
	if len(items) == 0 {
		return shared.NewDomainError("VALIDATION_ERROR", "order must have at least one item")
	}
	o.Items = o.Items[:0]
	for _, item := range items {
		item.OrderID = o.ID
		o.Items = append(o.Items, item)
	}
	o.UpdatedAt = time.Now()
	return nil
}

// Approve flips the one-way approval flag. It returns false when the order
// was already approved so callers can report success without re-running
// stock effects.
func (o *Order) Approve(at time.Time) bool {
	if o.ApprovalStatus {
		return false
	}
	o.ApprovalStatus = true
	o.ApprovedAt = &at
	o.UpdatedAt = at
	return true
}

// NegotiateItemPrice applies a staff price override to one line. It returns
// false with a nil error when neither the price (within tolerance) nor the
// notes change, so no write happens for a repeat of the current terms.
func (o *Order) NegotiateItemPrice(itemID uuid.UUID, newPrice decimal.Decimal, notes string) (bool, error) {
	if o.ApprovalStatus {
		return false, shared.NewDomainError("INVALID_STATE", "cannot negotiate prices on an approved order")
	}
	if !newPrice.IsPositive() {
		return false, shared.NewDomainError("INVALID_PRICE", "negotiated price must be positive")
	}

	item := o.findItem(itemID)
	if item == nil {
		return false, shared.NewDomainError("NOT_FOUND", "order item not found")
	}

	notes = strings.TrimSpace(notes)
	if WithinNegotiationTolerance(newPrice, item.FinalPrice) && notes == strings.TrimSpace(item.NegotiationNotes) {
		return false, nil
	}

	item.FinalPrice = newPrice
	if newPrice.Equal(item.OriginalPrice) {
		item.NegotiatedPrice = nil
	} else {
		p := newPrice
		item.NegotiatedPrice = &p
	}
	item.NegotiationNotes = notes
	item.UpdatedAt = time.Now()
	o.UpdatedAt = item.UpdatedAt
	return true, nil
}

// MarkPaid transitions the payment axis to paid. An already paid order is
// left as is, so settling payments on a partially paid order keep recording.
func (o *Order) MarkPaid() error {
	if o.PaymentStatus == PaymentStatusPaid {
		return nil
	}
	return o.transitionPayment(PaymentStatusPaid)
}

// MarkFailed transitions the payment axis to failed
func (o *Order) MarkFailed() error {
	return o.transitionPayment(PaymentStatusFailed)
}

// MarkRefunded transitions the payment axis to refunded
func (o *Order) MarkRefunded() error {
	return o.transitionPayment(PaymentStatusRefunded)
}

func (o *Order) transitionPayment(target PaymentStatus) error {
	if !o.PaymentStatus.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATE",
			"cannot transition payment status from "+o.PaymentStatus.String()+" to "+target.String())
	}
	o.PaymentStatus = target
	o.UpdatedAt = time.Now()
	return nil
}

// Total is the order's derived amount, recomputed from the live items on
// every call rather than cached.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for i := range o.Items {
		total = total.Add(o.Items[i].LineTotal())
	}
	return total
}

// FindItem returns the item with the given id, or nil
func (o *Order) FindItem(itemID uuid.UUID) *OrderItem {
	return o.findItem(itemID)
}

func (o *Order) findItem(itemID uuid.UUID) *OrderItem {
	for i := range o.Items {
		if o.Items[i].ID == itemID {
			return &o.Items[i]
		}
	}
	return nil
}
