package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/NgariMwangi/abz-sales-portal/internal/domain/finance"
)

// PaymentModel is the persistence model for the Payment entity.
type PaymentModel struct {
	BaseModel
	OrderID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount          decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Method          string          `gorm:"type:varchar(50);not null"`
	Status          string          `gorm:"type:varchar(20);not null"`
	ReferenceNumber string          `gorm:"type:varchar(100);not null;index"`
	TransactionID   string          `gorm:"type:varchar(100)"`
	Notes           string          `gorm:"type:varchar(500)"`
	PaymentDate     time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (PaymentModel) TableName() string {
	return "payments"
}

// ToDomain converts the persistence model to a domain Payment entity.
func (m *PaymentModel) ToDomain() *finance.Payment {
	return &finance.Payment{
		BaseEntity:      m.BaseModel.ToDomain(),
		OrderID:         m.OrderID,
		UserID:          m.UserID,
		Amount:          m.Amount,
		Method:          m.Method,
		Status:          finance.PaymentState(m.Status),
		ReferenceNumber: m.ReferenceNumber,
		TransactionID:   m.TransactionID,
		Notes:           m.Notes,
		PaymentDate:     m.PaymentDate,
	}
}

// FromDomain populates the persistence model from a domain Payment entity.
func (m *PaymentModel) FromDomain(p *finance.Payment) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.OrderID = p.OrderID
	m.UserID = p.UserID
	m.Amount = p.Amount
	m.Method = p.Method
	m.Status = p.Status.String()
	m.ReferenceNumber = p.ReferenceNumber
	m.TransactionID = p.TransactionID
	m.Notes = p.Notes
	m.PaymentDate = p.PaymentDate
}

// PaymentModelFromDomain creates a new persistence model from a domain Payment entity.
func PaymentModelFromDomain(p *finance.Payment) *PaymentModel {
	m := &PaymentModel{}
	m.FromDomain(p)
	return m
}

// ReceiptModel is the persistence model for the Receipt snapshot.
type ReceiptModel struct {
	BaseModel
	PaymentID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	OrderID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	ReceiptNumber    string          `gorm:"type:varchar(30);not null;uniqueIndex"`
	PaymentAmount    decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	PreviousBalance  decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	RemainingBalance decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Method           string          `gorm:"type:varchar(50)"`
	ReferenceNumber  string          `gorm:"type:varchar(100)"`
	TransactionID    string          `gorm:"type:varchar(100)"`
	Notes            string          `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (ReceiptModel) TableName() string {
	return "receipts"
}

// ToDomain converts the persistence model to a domain Receipt entity.
func (m *ReceiptModel) ToDomain() *finance.Receipt {
	return &finance.Receipt{
		BaseEntity:       m.BaseModel.ToDomain(),
		PaymentID:        m.PaymentID,
		OrderID:          m.OrderID,
		ReceiptNumber:    m.ReceiptNumber,
		PaymentAmount:    m.PaymentAmount,
		PreviousBalance:  m.PreviousBalance,
		RemainingBalance: m.RemainingBalance,
		Method:           m.Method,
		ReferenceNumber:  m.ReferenceNumber,
		TransactionID:    m.TransactionID,
		Notes:            m.Notes,
	}
}

// FromDomain populates the persistence model from a domain Receipt entity.
func (m *ReceiptModel) FromDomain(r *finance.Receipt) {
	m.FromDomainBaseEntity(r.BaseEntity)
	m.PaymentID = r.PaymentID
	m.OrderID = r.OrderID
	m.ReceiptNumber = r.ReceiptNumber
	m.PaymentAmount = r.PaymentAmount
	m.PreviousBalance = r.PreviousBalance
	m.RemainingBalance = r.RemainingBalance
	m.Method = r.Method
	m.ReferenceNumber = r.ReferenceNumber
	m.TransactionID = r.TransactionID
	m.Notes = r.Notes
}

// ReceiptModelFromDomain creates a new persistence model from a domain Receipt entity.
func ReceiptModelFromDomain(r *finance.Receipt) *ReceiptModel {
	m := &ReceiptModel{}
	m.FromDomain(r)
	return m
}

// InvoiceModel is the persistence model for the Invoice entity. The unique
// index on order_id enforces at most one invoice per order.
type InvoiceModel struct {
	BaseModel
	OrderID        uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	InvoiceNumber  string          `gorm:"type:varchar(30);not null;uniqueIndex"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	TaxAmount      decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Status         string          `gorm:"type:varchar(20);not null"`
	DueDate        time.Time       `gorm:"not null"`
	Notes          string          `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToDomain converts the persistence model to a domain Invoice entity.
func (m *InvoiceModel) ToDomain() *finance.Invoice {
	return &finance.Invoice{
		BaseEntity:     m.BaseModel.ToDomain(),
		OrderID:        m.OrderID,
		InvoiceNumber:  m.InvoiceNumber,
		Subtotal:       m.Subtotal,
		TaxAmount:      m.TaxAmount,
		DiscountAmount: m.DiscountAmount,
		TotalAmount:    m.TotalAmount,
		Status:         finance.InvoiceStatus(m.Status),
		DueDate:        m.DueDate,
		Notes:          m.Notes,
	}
}

// FromDomain populates the persistence model from a domain Invoice entity.
func (m *InvoiceModel) FromDomain(i *finance.Invoice) {
	m.FromDomainBaseEntity(i.BaseEntity)
	m.OrderID = i.OrderID
	m.InvoiceNumber = i.InvoiceNumber
	m.Subtotal = i.Subtotal
	m.TaxAmount = i.TaxAmount
	m.DiscountAmount = i.DiscountAmount
	m.TotalAmount = i.TotalAmount
	m.Status = i.Status.String()
	m.DueDate = i.DueDate
	m.Notes = i.Notes
}

// InvoiceModelFromDomain creates a new persistence model from a domain Invoice entity.
func InvoiceModelFromDomain(i *finance.Invoice) *InvoiceModel {
	m := &InvoiceModel{}
	m.FromDomain(i)
	return m
}

// DocumentNumberModel is the per-prefix, per-day sequence counter behind
// invoice and receipt numbering.
type DocumentNumberModel struct {
	Prefix  string `gorm:"type:varchar(8);primaryKey"`
	Day     string `gorm:"type:varchar(8);primaryKey"`
	LastSeq int64  `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (DocumentNumberModel) TableName() string {
	return "document_numbers"
}
