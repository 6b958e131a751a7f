// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/walletbook/backend/internal/domain/entity"
)

// TransferModel represents the transfers table in the database.
type TransferModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	FromWalletID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ToWalletID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date         time.Time       `gorm:"type:date;not null;index"`
	Description  string          `gorm:"type:varchar(255)"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	FromWallet *WalletModel `gorm:"foreignKey:FromWalletID;references:ID"`
	ToWallet   *WalletModel `gorm:"foreignKey:ToWalletID;references:ID"`
	User       *UserModel   `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the TransferModel.
func (TransferModel) TableName() string {
	return "transfers"
}

// ToEntity converts a TransferModel to a domain Transfer entity.
func (m *TransferModel) ToEntity() *entity.Transfer {
	return &entity.Transfer{
		ID:           m.ID,
		UserID:       m.UserID,
		FromWalletID: m.FromWalletID,
		ToWalletID:   m.ToWalletID,
		Amount:       m.Amount,
		Date:         m.Date,
		Description:  m.Description,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// TransferFromEntity creates a TransferModel from a domain Transfer entity.
func TransferFromEntity(transfer *entity.Transfer) *TransferModel {
	return &TransferModel{
		ID:           transfer.ID,
		UserID:       transfer.UserID,
		FromWalletID: transfer.FromWalletID,
		ToWalletID:   transfer.ToWalletID,
		Amount:       transfer.Amount,
		Date:         transfer.Date,
		Description:  transfer.Description,
		CreatedAt:    transfer.CreatedAt,
		UpdatedAt:    transfer.UpdatedAt,
	}
}
