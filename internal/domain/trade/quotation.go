package trade

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/NgariMwangi/abz-sales-portal/internal/domain/shared"
)

// QuotationStatus tracks a quotation's lifecycle
type QuotationStatus string

const (
	QuotationStatusPending  QuotationStatus = "pending"
	QuotationStatusAccepted QuotationStatus = "accepted"
	QuotationStatusRejected QuotationStatus = "rejected"
	QuotationStatusExpired  QuotationStatus = "expired"
)

// IsValid checks if the quotation status is valid
func (s QuotationStatus) IsValid() bool {
	switch s {
	case QuotationStatusPending, QuotationStatusAccepted, QuotationStatusRejected, QuotationStatusExpired:
		return true
	}
	return false
}

// CanTransitionTo checks if transition to target status is allowed
func (s QuotationStatus) CanTransitionTo(target QuotationStatus) bool {
	return s == QuotationStatusPending && target != QuotationStatusPending && target.IsValid()
}

// String returns the string representation
func (s QuotationStatus) String() string {
	return string(s)
}

// QuotationItem is one line of a quotation, mirroring OrderItem but priced
// with a single unit price and never touching stock.
type QuotationItem struct {
	shared.BaseEntity
	QuotationID uuid.UUID
	ProductID   *uuid.UUID
	ProductName string
	Quantity    int64
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal
	Notes       string
}

// NewQuotationItem creates a quotation line
func NewQuotationItem(quotationID uuid.UUID, productID *uuid.UUID, productName string, quantity int64, unitPrice decimal.Decimal, notes string) (*QuotationItem, error) {
	productName = strings.TrimSpace(productName)
	if productName == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "product name is required")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "quantity must be positive")
	}
	if !unitPrice.IsPositive() {
		return nil, shared.NewDomainError("INVALID_PRICE", "unit price must be positive")
	}
	return &QuotationItem{
		BaseEntity:  shared.NewBaseEntity(),
		QuotationID: quotationID,
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		TotalPrice:  unitPrice.Mul(decimal.NewFromInt(quantity)),
		Notes:       notes,
	}, nil
}

// Quotation is the stock-inert sibling of Order: same item shape and
// numbering discipline, no approval, stock, or payment coupling.
type Quotation struct {
	shared.BaseAggregateRoot
	QuotationNumber string
	CreatedBy       uuid.UUID
	BranchID        uuid.UUID
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	Status          QuotationStatus
	ValidUntil      *time.Time
	Notes           string
	Subtotal        decimal.Decimal
	TotalAmount     decimal.Decimal
	Items           []QuotationItem
}

// NewQuotation creates a pending quotation with its items
func NewQuotation(createdBy, branchID uuid.UUID, customerName, customerEmail, customerPhone string, items []QuotationItem) (*Quotation, error) {
	if createdBy == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "creating user is required")
	}
	if branchID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "branch is required")
	}
	if strings.TrimSpace(customerName) == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "customer name is required")
	}
	if len(items) == 0 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "quotation must have at least one item")
	}
	q := &Quotation{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CreatedBy:         createdBy,
		BranchID:          branchID,
		CustomerName:      strings.TrimSpace(customerName),
		CustomerEmail:     strings.TrimSpace(customerEmail),
		CustomerPhone:     strings.TrimSpace(customerPhone),
		Status:            QuotationStatusPending,
	}
	for _, item := range items {
		item.QuotationID = q.ID
		q.Items = append(q.Items, item)
	}
	q.recalculateTotals()
	return q, nil
}

// ReplaceItems swaps the whole item collection, allowed only while pending
func (q *Quotation) ReplaceItems(items []QuotationItem) error {
	if q.Status != QuotationStatusPending {
		return shared.NewDomainError("INVALID_STATE", "cannot edit a "+q.Status.String()+" quotation")
	}
	if len(items) == 0 {
		return shared.NewDomainError("VALIDATION_ERROR", "quotation must have at least one item")
	}
	q.Items = q.Items[:0]
	for _, item := range items {
		item.QuotationID = q.ID
		q.Items = append(q.Items, item)
	}
	q.recalculateTotals()
	q.UpdatedAt = time.Now()
	return nil
}

// UpdateStatus transitions the quotation lifecycle
func (q *Quotation) UpdateStatus(target QuotationStatus) error {
	if !target.IsValid() {
		return shared.NewDomainError("VALIDATION_ERROR", "invalid quotation status: "+target.String())
	}
	if !q.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATE",
			"cannot transition quotation from "+q.Status.String()+" to "+target.String())
	}
	q.Status = target
	q.UpdatedAt = time.Now()
	return nil
}

// IsPending reports whether the quotation is still open
func (q *Quotation) IsPending() bool {
	return q.Status == QuotationStatusPending
}

func (q *Quotation) recalculateTotals() {
	subtotal := decimal.Zero
	for i := range q.Items {
		subtotal = subtotal.Add(q.Items[i].TotalPrice)
	}
	q.Subtotal = subtotal
	q.TotalAmount = subtotal
}
