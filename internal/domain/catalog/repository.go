package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/NgariMwangi/abz-sales-portal/internal/domain/shared"
)

// ProductRepository provides access to the product catalog.
// Stock mutation goes through inventory.StockRepository, never through Save.
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	// FindByCodeAndBranch resolves the branch-local copy of a product code,
	// used during online order approval to fulfil from the selected branch.
	FindByCodeAndBranch(ctx context.Context, productCode string, branchID uuid.UUID) (*Product, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, error)
	Save(ctx context.Context, product *Product) error
}

// BranchRepository provides access to sales branches
type BranchRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Branch, error)
	FindAll(ctx context.Context) ([]Branch, error)
	Save(ctx context.Context, branch *Branch) error
}

// CategoryRepository provides access to product categories
type CategoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	FindAll(ctx context.Context) ([]Category, error)
	Save(ctx context.Context, category *Category) error
}
