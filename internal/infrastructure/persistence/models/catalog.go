package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/NgariMwangi/abz-sales-portal/internal/domain/catalog"
)

// BranchModel is the persistence model for the Branch entity.
type BranchModel struct {
	BaseModel
	Name     string `gorm:"type:varchar(100);not null"`
	Location string `gorm:"type:varchar(255)"`
}

// TableName returns the table name for GORM
func (BranchModel) TableName() string {
	return "branches"
}

// ToDomain converts the persistence model to a domain Branch entity.
func (m *BranchModel) ToDomain() *catalog.Branch {
	return &catalog.Branch{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		Location:   m.Location,
	}
}

// FromDomain populates the persistence model from a domain Branch entity.
func (m *BranchModel) FromDomain(b *catalog.Branch) {
	m.FromDomainBaseEntity(b.BaseEntity)
	m.Name = b.Name
	m.Location = b.Location
}

// CategoryModel is the persistence model for the Category entity.
type CategoryModel struct {
	BaseModel
	Name        string `gorm:"type:varchar(100);not null"`
	Description string `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (CategoryModel) TableName() string {
	return "categories"
}

// ToDomain converts the persistence model to a domain Category entity.
func (m *CategoryModel) ToDomain() *catalog.Category {
	return &catalog.Category{
		BaseEntity:  m.BaseModel.ToDomain(),
		Name:        m.Name,
		Description: m.Description,
	}
}

// FromDomain populates the persistence model from a domain Category entity.
func (m *CategoryModel) FromDomain(c *catalog.Category) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.Name = c.Name
	m.Description = c.Description
}

// ProductModel is the persistence model for the Product aggregate root.
// The same product code may appear once per branch, so uniqueness is
// enforced on the (product_code, branch_id) pair.
type ProductModel struct {
	AggregateModel
	CategoryID   uuid.UUID        `gorm:"type:uuid;not null;index"`
	BranchID     uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_products_code_branch,priority:2"`
	Name         string           `gorm:"type:varchar(255);not null"`
	ImageURL     string           `gorm:"type:varchar(500)"`
	BuyingPrice  *decimal.Decimal `gorm:"type:decimal(18,2)"`
	SellingPrice *decimal.Decimal `gorm:"type:decimal(18,2)"`
	Stock        int64            `gorm:"not null;default:0"`
	ProductCode  string           `gorm:"type:varchar(100);not null;uniqueIndex:idx_products_code_branch,priority:1"`
	Display      bool             `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product entity.
func (m *ProductModel) ToDomain() *catalog.Product {
	return &catalog.Product{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		CategoryID:        m.CategoryID,
		BranchID:          m.BranchID,
		Name:              m.Name,
		ImageURL:          m.ImageURL,
		BuyingPrice:       m.BuyingPrice,
		SellingPrice:      m.SellingPrice,
		Stock:             m.Stock,
		ProductCode:       m.ProductCode,
		Display:           m.Display,
	}
}

// FromDomain populates the persistence model from a domain Product entity.
func (m *ProductModel) FromDomain(p *catalog.Product) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.CategoryID = p.CategoryID
	m.BranchID = p.BranchID
	m.Name = p.Name
	m.ImageURL = p.ImageURL
	m.BuyingPrice = p.BuyingPrice
	m.SellingPrice = p.SellingPrice
	m.Stock = p.Stock
	m.ProductCode = p.ProductCode
	m.Display = p.Display
}

// ProductModelFromDomain creates a new persistence model from a domain Product entity.
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	m := &ProductModel{}
	m.FromDomain(p)
	return m
}
