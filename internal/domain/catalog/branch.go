package catalog

import (
	"strings"

	"github.com/NgariMwangi/abz-sales-portal/internal/domain/shared"
)

// Branch is a physical sales location holding its own stock
type Branch struct {
	shared.BaseEntity
	Name     string
	Location string
}

// NewBranch creates a branch
func NewBranch(name, location string) (*Branch, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "branch name is required")
	}
	return &Branch{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Location:   strings.TrimSpace(location),
	}, nil
}
