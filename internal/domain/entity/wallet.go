// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Wallet represents a cash account owned by a single user.
//
// Balance is a cached, derived quantity: the sum of the signed amounts of all
// paid entries on this wallet plus the net of transfers touching it. It is
// mutated exclusively through relative balance adjustments inside an atomic
// unit of work, never overwritten with a client-supplied value after creation.
type Wallet struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Balance   decimal.Decimal
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewWallet creates a new Wallet entity with an optional opening balance.
func NewWallet(userID uuid.UUID, name string, openingBalance decimal.Decimal) *Wallet {
	now := time.Now().UTC()

	return &Wallet{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Balance:   openingBalance,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
