package catalog

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/NgariMwangi/abz-sales-portal/internal/domain/shared"
)

// Product is a branch-scoped catalog entry. The same physical article carried
// by several branches appears as one row per branch, correlated by ProductCode.
type Product struct {
	shared.BaseAggregateRoot
	CategoryID   uuid.UUID
	BranchID     uuid.UUID
	Name         string
	ImageURL     string
	BuyingPrice  *decimal.Decimal
	SellingPrice *decimal.Decimal
	Stock        int64
	ProductCode  string
	Display      bool
}

// NewProduct creates a catalog product
func NewProduct(categoryID, branchID uuid.UUID, name, productCode string) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "product name is required")
	}
	if categoryID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "category is required")
	}
	if branchID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "branch is required")
	}
	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CategoryID:        categoryID,
		BranchID:          branchID,
		Name:              name,
		ProductCode:       strings.TrimSpace(productCode),
		Display:           true,
	}, nil
}

// HasSellingPrice reports whether a positive selling price is set
func (p *Product) HasSellingPrice() bool {
	return p.SellingPrice != nil && p.SellingPrice.IsPositive()
}

// HasBuyingPrice reports whether a positive buying price is set
func (p *Product) HasBuyingPrice() bool {
	return p.BuyingPrice != nil && p.BuyingPrice.IsPositive()
}

// SellingPriceOrZero returns the selling price, or zero when unset
func (p *Product) SellingPriceOrZero() decimal.Decimal {
	if p.SellingPrice == nil {
		return decimal.Zero
	}
	return *p.SellingPrice
}

// InStock reports whether the branch currently holds any units.
// Stock may legitimately be negative after a backordered approval.
func (p *Product) InStock() bool {
	return p.Stock > 0
}
