package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/NgariMwangi/abz-sales-portal/internal/domain/trade"
)

// ==================== Order DTOs ====================

// OrderItemInput represents one line in a create or edit request.
// ProductID nil marks a manual line, which must carry its own name and price.
type OrderItemInput struct {
	ProductID       *uuid.UUID       `json:"product_id"`
	ProductName     string           `json:"product_name" validate:"max=200"`
	Quantity        int64            `json:"quantity" validate:"required,gt=0"`
	Price           *decimal.Decimal `json:"price"`
	NegotiatedPrice *decimal.Decimal `json:"negotiated_price"`
}

// CreateOrderRequest represents a request to create an order
type CreateOrderRequest struct {
	UserID    uuid.UUID        `json:"user_id" validate:"required"`
	BranchID  uuid.UUID        `json:"branch_id" validate:"required"`
	OrderType string           `json:"order_type" validate:"required"`
	Items     []OrderItemInput `json:"items" validate:"required,min=1,dive"`
}

// EditOrderRequest replaces an order's items wholesale
type EditOrderRequest struct {
	OrderID uuid.UUID        `json:"order_id" validate:"required"`
	UserID  uuid.UUID        `json:"user_id" validate:"required"`
	Items   []OrderItemInput `json:"items" validate:"required,min=1,dive"`
}

// NegotiatePriceRequest applies a staff price override to one line
type NegotiatePriceRequest struct {
	OrderID     uuid.UUID       `json:"order_id" validate:"required"`
	OrderItemID uuid.UUID       `json:"order_item_id" validate:"required"`
	NewPrice    decimal.Decimal `json:"new_price" validate:"required"`
	Notes       string          `json:"notes" validate:"max=500"`
}

// ApproveOrderRequest commits an order's stock effects. BranchSelections
// maps order item id to fulfilment branch id and is required per
// catalog-backed item on online orders.
type ApproveOrderRequest struct {
	OrderID          uuid.UUID               `json:"order_id" validate:"required"`
	UserID           uuid.UUID               `json:"user_id" validate:"required"`
	BranchSelections map[uuid.UUID]uuid.UUID `json:"branch_selections"`
}

// OrderItemResponse represents one order line in responses
type OrderItemResponse struct {
	ID               uuid.UUID        `json:"id"`
	ProductID        *uuid.UUID       `json:"product_id,omitempty"`
	ProductName      string           `json:"product_name"`
	Quantity         int64            `json:"quantity"`
	OriginalPrice    decimal.Decimal  `json:"original_price"`
	NegotiatedPrice  *decimal.Decimal `json:"negotiated_price,omitempty"`
	FinalPrice       decimal.Decimal  `json:"final_price"`
	NegotiationNotes string           `json:"negotiation_notes,omitempty"`
	LineTotal        decimal.Decimal  `json:"line_total"`
}

// OrderResponse represents an order in responses
type OrderResponse struct {
	ID             uuid.UUID           `json:"id"`
	UserID         uuid.UUID           `json:"user_id"`
	BranchID       uuid.UUID           `json:"branch_id"`
	OrderType      string              `json:"order_type"`
	ApprovalStatus bool                `json:"approval_status"`
	ApprovedAt     *time.Time          `json:"approved_at,omitempty"`
	PaymentStatus  string              `json:"payment_status"`
	TotalAmount    decimal.Decimal     `json:"total_amount"`
	Items          []OrderItemResponse `json:"items"`
	CreatedAt      time.Time           `json:"created_at"`
}

// NegotiationResponse reports the outcome of a price negotiation
type NegotiationResponse struct {
	Changed     bool            `json:"changed"`
	Message     string          `json:"message"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// ApprovalResponse reports the outcome of an approval
type ApprovalResponse struct {
	AlreadyApproved bool            `json:"already_approved"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	InvoiceNumber   string          `json:"invoice_number,omitempty"`
}

// ToOrderResponse maps an order aggregate to its response shape
func ToOrderResponse(order *trade.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for i := range order.Items {
		item := &order.Items[i]
		items = append(items, OrderItemResponse{
			ID:               item.ID,
			ProductID:        item.ProductID,
			ProductName:      item.ProductName,
			Quantity:         item.Quantity,
			OriginalPrice:    item.OriginalPrice,
			NegotiatedPrice:  item.NegotiatedPrice,
			FinalPrice:       item.FinalPrice,
			NegotiationNotes: item.NegotiationNotes,
			LineTotal:        item.LineTotal(),
		})
	}
	return OrderResponse{
		ID:             order.ID,
		UserID:         order.UserID,
		BranchID:       order.BranchID,
		OrderType:      order.Kind.String(),
		ApprovalStatus: order.ApprovalStatus,
		ApprovedAt:     order.ApprovedAt,
		PaymentStatus:  order.PaymentStatus.String(),
		TotalAmount:    order.Total(),
		Items:          items,
		CreatedAt:      order.CreatedAt,
	}
}

// ==================== Quotation DTOs ====================

// QuotationItemInput represents one line in a quotation request.
// UnitPrice is required for manual lines and defaults to the product's
// selling price for catalog-backed lines.
type QuotationItemInput struct {
	ProductID   *uuid.UUID       `json:"product_id"`
	ProductName string           `json:"product_name" validate:"max=200"`
	Quantity    int64            `json:"quantity" validate:"required,gt=0"`
	UnitPrice   *decimal.Decimal `json:"unit_price"`
	Notes       string           `json:"notes" validate:"max=500"`
}

// CreateQuotationRequest represents a request to create a quotation
type CreateQuotationRequest struct {
	UserID        uuid.UUID            `json:"user_id" validate:"required"`
	BranchID      uuid.UUID            `json:"branch_id" validate:"required"`
	CustomerName  string               `json:"customer_name" validate:"required,max=200"`
	CustomerEmail string               `json:"customer_email" validate:"omitempty,email"`
	CustomerPhone string               `json:"customer_phone" validate:"max=30"`
	ValidUntil    *time.Time           `json:"valid_until"`
	Notes         string               `json:"notes" validate:"max=1000"`
	Items         []QuotationItemInput `json:"items" validate:"required,min=1,dive"`
}

// EditQuotationRequest replaces a quotation's items wholesale
type EditQuotationRequest struct {
	QuotationID uuid.UUID            `json:"quotation_id" validate:"required"`
	Items       []QuotationItemInput `json:"items" validate:"required,min=1,dive"`
}

// UpdateQuotationStatusRequest transitions a quotation's lifecycle
type UpdateQuotationStatusRequest struct {
	QuotationID uuid.UUID `json:"quotation_id" validate:"required"`
	Status      string    `json:"status" validate:"required"`
}

// QuotationItemResponse represents one quotation line in responses
type QuotationItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   *uuid.UUID      `json:"product_id,omitempty"`
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	Notes       string          `json:"notes,omitempty"`
}

// QuotationResponse represents a quotation in responses
type QuotationResponse struct {
	ID              uuid.UUID               `json:"id"`
	QuotationNumber string                  `json:"quotation_number"`
	CustomerName    string                  `json:"customer_name"`
	CustomerEmail   string                  `json:"customer_email,omitempty"`
	CustomerPhone   string                  `json:"customer_phone,omitempty"`
	Status          string                  `json:"status"`
	ValidUntil      *time.Time              `json:"valid_until,omitempty"`
	Subtotal        decimal.Decimal         `json:"subtotal"`
	TotalAmount     decimal.Decimal         `json:"total_amount"`
	Notes           string                  `json:"notes,omitempty"`
	Items           []QuotationItemResponse `json:"items"`
	CreatedAt       time.Time               `json:"created_at"`
}

// ToQuotationResponse maps a quotation aggregate to its response shape
func ToQuotationResponse(q *trade.Quotation) QuotationResponse {
	items := make([]QuotationItemResponse, 0, len(q.Items))
	for i := range q.Items {
		item := &q.Items[i]
		items = append(items, QuotationItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
			Notes:       item.Notes,
		})
	}
	return QuotationResponse{
		ID:              q.ID,
		QuotationNumber: q.QuotationNumber,
		CustomerName:    q.CustomerName,
		CustomerEmail:   q.CustomerEmail,
		CustomerPhone:   q.CustomerPhone,
		Status:          q.Status.String(),
		ValidUntil:      q.ValidUntil,
		Subtotal:        q.Subtotal,
		TotalAmount:     q.TotalAmount,
		Notes:           q.Notes,
		Items:           items,
		CreatedAt:       q.CreatedAt,
	}
}
