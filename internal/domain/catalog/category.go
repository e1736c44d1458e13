package catalog

import (
	"strings"

	"github.com/NgariMwangi/abz-sales-portal/internal/domain/shared"
)

// Category groups products for browsing and reporting
type Category struct {
	shared.BaseEntity
	Name        string
	Description string
}

// NewCategory creates a category
func NewCategory(name, description string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "category name is required")
	}
	return &Category{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Description: strings.TrimSpace(description),
	}, nil
}
