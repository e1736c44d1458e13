package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/NgariMwangi/abz-sales-portal/internal/domain/trade"
)

// OrderModel is the persistence model for the Order aggregate root.
type OrderModel struct {
	AggregateModel
	UserID         uuid.UUID        `gorm:"type:uuid;not null;index"`
	BranchID       uuid.UUID        `gorm:"type:uuid;not null;index"`
	OrderType      string           `gorm:"type:varchar(20);not null"`
	ApprovalStatus bool             `gorm:"not null;default:false"`
	ApprovedAt     *time.Time       `gorm:""`
	PaymentStatus  string           `gorm:"type:varchar(20);not null"`
	Items          []OrderItemModel `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts the persistence model to a domain Order entity.
func (m *OrderModel) ToDomain() *trade.Order {
	order := &trade.Order{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		UserID:            m.UserID,
		BranchID:          m.BranchID,
		Kind:              trade.OrderKind(m.OrderType),
		ApprovalStatus:    m.ApprovalStatus,
		ApprovedAt:        m.ApprovedAt,
		PaymentStatus:     trade.PaymentStatus(m.PaymentStatus),
		Items:             make([]trade.OrderItem, len(m.Items)),
	}
	for i := range m.Items {
		order.Items[i] = *m.Items[i].ToDomain()
	}
	return order
}

// FromDomain populates the persistence model from a domain Order entity.
func (m *OrderModel) FromDomain(o *trade.Order) {
	m.FromDomainAggregateRoot(o.BaseAggregateRoot)
	m.UserID = o.UserID
	m.BranchID = o.BranchID
	m.OrderType = o.Kind.String()
	m.ApprovalStatus = o.ApprovalStatus
	m.ApprovedAt = o.ApprovedAt
	m.PaymentStatus = o.PaymentStatus.String()
	m.Items = make([]OrderItemModel, len(o.Items))
	for i := range o.Items {
		m.Items[i].FromDomain(&o.Items[i])
	}
}

// OrderModelFromDomain creates a new persistence model from a domain Order entity.
func OrderModelFromDomain(o *trade.Order) *OrderModel {
	m := &OrderModel{}
	m.FromDomain(o)
	return m
}

// OrderItemModel is the persistence model for an order line.
type OrderItemModel struct {
	BaseModel
	OrderID          uuid.UUID        `gorm:"type:uuid;not null;index"`
	ProductID        *uuid.UUID       `gorm:"type:uuid;index"`
	ProductName      string           `gorm:"type:varchar(255);not null"`
	Quantity         int64            `gorm:"not null"`
	BuyingPrice      *decimal.Decimal `gorm:"type:decimal(18,2)"`
	OriginalPrice    decimal.Decimal  `gorm:"type:decimal(18,2);not null"`
	NegotiatedPrice  *decimal.Decimal `gorm:"type:decimal(18,2)"`
	FinalPrice       decimal.Decimal  `gorm:"type:decimal(18,2);not null"`
	NegotiationNotes string           `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (OrderItemModel) TableName() string {
	return "order_items"
}

// ToDomain converts the persistence model to a domain OrderItem entity.
func (m *OrderItemModel) ToDomain() *trade.OrderItem {
	return &trade.OrderItem{
		BaseEntity:       m.BaseModel.ToDomain(),
		OrderID:          m.OrderID,
		ProductID:        m.ProductID,
		ProductName:      m.ProductName,
		Quantity:         m.Quantity,
		BuyingPrice:      m.BuyingPrice,
		OriginalPrice:    m.OriginalPrice,
		NegotiatedPrice:  m.NegotiatedPrice,
		FinalPrice:       m.FinalPrice,
		NegotiationNotes: m.NegotiationNotes,
	}
}

// FromDomain populates the persistence model from a domain OrderItem entity.
func (m *OrderItemModel) FromDomain(i *trade.OrderItem) {
	m.FromDomainBaseEntity(i.BaseEntity)
	m.OrderID = i.OrderID
	m.ProductID = i.ProductID
	m.ProductName = i.ProductName
	m.Quantity = i.Quantity
	m.BuyingPrice = i.BuyingPrice
	m.OriginalPrice = i.OriginalPrice
	m.NegotiatedPrice = i.NegotiatedPrice
	m.FinalPrice = i.FinalPrice
	m.NegotiationNotes = i.NegotiationNotes
}

// QuotationModel is the persistence model for the Quotation aggregate root.
type QuotationModel struct {
	AggregateModel
	QuotationNumber string               `gorm:"type:varchar(20);not null;uniqueIndex"`
	CreatedBy       uuid.UUID            `gorm:"type:uuid;not null;index"`
	BranchID        uuid.UUID            `gorm:"type:uuid;not null;index"`
	CustomerName    string               `gorm:"type:varchar(255);not null"`
	CustomerEmail   string               `gorm:"type:varchar(255)"`
	CustomerPhone   string               `gorm:"type:varchar(50)"`
	Status          string               `gorm:"type:varchar(20);not null"`
	ValidUntil      *time.Time           `gorm:""`
	Notes           string               `gorm:"type:varchar(1000)"`
	Subtotal        decimal.Decimal      `gorm:"type:decimal(18,2);not null"`
	TotalAmount     decimal.Decimal      `gorm:"type:decimal(18,2);not null"`
	Items           []QuotationItemModel `gorm:"foreignKey:QuotationID;references:ID"`
}

// TableName returns the table name for GORM
func (QuotationModel) TableName() string {
	return "quotations"
}

// ToDomain converts the persistence model to a domain Quotation entity.
func (m *QuotationModel) ToDomain() *trade.Quotation {
	q := &trade.Quotation{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		QuotationNumber:   m.QuotationNumber,
		CreatedBy:         m.CreatedBy,
		BranchID:          m.BranchID,
		CustomerName:      m.CustomerName,
		CustomerEmail:     m.CustomerEmail,
		CustomerPhone:     m.CustomerPhone,
		Status:            trade.QuotationStatus(m.Status),
		ValidUntil:        m.ValidUntil,
		Notes:             m.Notes,
		Subtotal:          m.Subtotal,
		TotalAmount:       m.TotalAmount,
		Items:             make([]trade.QuotationItem, len(m.Items)),
	}
	for i := range m.Items {
		q.Items[i] = *m.Items[i].ToDomain()
	}
	return q
}

// FromDomain populates the persistence model from a domain Quotation entity.
func (m *QuotationModel) FromDomain(q *trade.Quotation) {
	m.FromDomainAggregateRoot(q.BaseAggregateRoot)
	m.QuotationNumber = q.QuotationNumber
	m.CreatedBy = q.CreatedBy
	m.BranchID = q.BranchID
	m.CustomerName = q.CustomerName
	m.CustomerEmail = q.CustomerEmail
	m.CustomerPhone = q.CustomerPhone
	m.Status = q.Status.String()
	m.ValidUntil = q.ValidUntil
	m.Notes = q.Notes
	m.Subtotal = q.Subtotal
	m.TotalAmount = q.TotalAmount
	m.Items = make([]QuotationItemModel, len(q.Items))
	for i := range q.Items {
		m.Items[i].FromDomain(&q.Items[i])
	}
}

// QuotationModelFromDomain creates a new persistence model from a domain Quotation entity.
func QuotationModelFromDomain(q *trade.Quotation) *QuotationModel {
	m := &QuotationModel{}
	m.FromDomain(q)
	return m
}

// QuotationItemModel is the persistence model for a quotation line.
type QuotationItemModel struct {
	BaseModel
	QuotationID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   *uuid.UUID      `gorm:"type:uuid;index"`
	ProductName string          `gorm:"type:varchar(255);not null"`
	Quantity    int64           `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	TotalPrice  decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Notes       string          `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (QuotationItemModel) TableName() string {
	return "quotation_items"
}

// ToDomain converts the persistence model to a domain QuotationItem entity.
func (m *QuotationItemModel) ToDomain() *trade.QuotationItem {
	return &trade.QuotationItem{
		BaseEntity:  m.BaseModel.ToDomain(),
		QuotationID: m.QuotationID,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		TotalPrice:  m.TotalPrice,
		Notes:       m.Notes,
	}
}

// FromDomain populates the persistence model from a domain QuotationItem entity.
func (m *QuotationItemModel) FromDomain(i *trade.QuotationItem) {
	m.FromDomainBaseEntity(i.BaseEntity)
	m.QuotationID = i.QuotationID
	m.ProductID = i.ProductID
	m.ProductName = i.ProductName
	m.Quantity = i.Quantity
	m.UnitPrice = i.UnitPrice
	m.TotalPrice = i.TotalPrice
	m.Notes = i.Notes
}
