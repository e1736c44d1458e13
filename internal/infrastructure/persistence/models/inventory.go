package models

import (
	"github.com/google/uuid"

	"github.com/NgariMwangi/abz-sales-portal/internal/domain/inventory"
)

// StockTransactionModel is the persistence model for the immutable stock
// movement audit row.
type StockTransactionModel struct {
	BaseModel
	ProductID       uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index"`
	TransactionType string    `gorm:"type:varchar(10);not null"`
	Quantity        int64     `gorm:"not null"`
	PreviousStock   int64     `gorm:"not null"`
	NewStock        int64     `gorm:"not null"`
	Notes           string    `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (StockTransactionModel) TableName() string {
	return "stock_transactions"
}

// ToDomain converts the persistence model to a domain StockTransaction entity.
func (m *StockTransactionModel) ToDomain() *inventory.StockTransaction {
	return &inventory.StockTransaction{
		BaseEntity:    m.BaseModel.ToDomain(),
		ProductID:     m.ProductID,
		UserID:        m.UserID,
		Type:          inventory.TransactionType(m.TransactionType),
		Quantity:      m.Quantity,
		PreviousStock: m.PreviousStock,
		NewStock:      m.NewStock,
		Notes:         m.Notes,
	}
}

// FromDomain populates the persistence model from a domain StockTransaction entity.
func (m *StockTransactionModel) FromDomain(t *inventory.StockTransaction) {
	m.FromDomainBaseEntity(t.BaseEntity)
	m.ProductID = t.ProductID
	m.UserID = t.UserID
	m.TransactionType = t.Type.String()
	m.Quantity = t.Quantity
	m.PreviousStock = t.PreviousStock
	m.NewStock = t.NewStock
	m.Notes = t.Notes
}

// StockTransactionModelFromDomain creates a new persistence model from a domain StockTransaction entity.
func StockTransactionModelFromDomain(t *inventory.StockTransaction) *StockTransactionModel {
	m := &StockTransactionModel{}
	m.FromDomain(t)
	return m
}
