package trade

import (
	"strings"

	"github.com/NgariMwangi/abz-sales-portal/internal/domain/shared"
)

// OrderKind classifies an order as walk-in or online
type OrderKind string

const (
	OrderKindWalkIn OrderKind = "walkin"
	OrderKindOnline OrderKind = "online"
)

// IsValid checks if the order kind is valid
func (k OrderKind) IsValid() bool {
	return k == OrderKindWalkIn || k == OrderKindOnline
}

// IsOnline reports whether the order requires branch fulfilment selection
// at approval time
func (k OrderKind) IsOnline() bool {
	return k == OrderKindOnline
}

// String returns the string representation
func (k OrderKind) String() string {
	return string(k)
}

// ResolveOrderKind maps a free-text order type name to a kind. Legacy data
// carries names like "Walk In" or "Online Sales", so matching is a
// case-insensitive contains check, done once here and never re-parsed.
func ResolveOrderKind(name string) (OrderKind, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	switch {
	case strings.Contains(lower, "online"):
		return OrderKindOnline, nil
	case strings.Contains(lower, "walk"):
		return OrderKindWalkIn, nil
	default:
		return "", shared.NewDomainError("VALIDATION_ERROR", "unknown order type: "+name)
	}
}
