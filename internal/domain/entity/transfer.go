// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transfer represents a movement of funds between two wallets of the same
// user. A transfer is not an entry: it has no category and no paid state, and
// its balance effect is applied unconditionally on creation and reversed on
// deletion.
type Transfer struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	FromWalletID uuid.UUID
	ToWalletID   uuid.UUID
	Amount       decimal.Decimal
	Date         time.Time
	Description  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewTransfer creates a new Transfer entity.
func NewTransfer(
	userID uuid.UUID,
	fromWalletID uuid.UUID,
	toWalletID uuid.UUID,
	amount decimal.Decimal,
	date time.Time,
	description string,
) *Transfer {
	now := time.Now().UTC()

	return &Transfer{
		ID:           uuid.New(),
		UserID:       userID,
		FromWalletID: fromWalletID,
		ToWalletID:   toWalletID,
		Amount:       amount,
		Date:         date,
		Description:  description,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
