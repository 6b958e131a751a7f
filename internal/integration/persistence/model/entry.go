// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/walletbook/backend/internal/domain/entity"
)

// EntryModel represents the entries table in the database.
//
// Series membership is stored as two mutually exclusive column groups:
// recurring members carry recurrence_group_id plus recurrence, installment
// members carry installment_group_id plus installment_number and
// installment_total. A singleton entry has all five columns NULL.
type EntryModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	WalletID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Description string          `gorm:"type:varchar(255);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Type        string          `gorm:"type:varchar(10);not null;index"`
	DueDate     time.Time       `gorm:"type:date;not null;index"`
	PaymentDate *time.Time      `gorm:"type:date"`
	IsPaid      bool            `gorm:"default:false;index"`
	Notes       string          `gorm:"type:text"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
	DeletedAt   gorm.DeletedAt  `gorm:"index"` // Soft-delete support

	// Series membership columns
	RecurrenceGroupID  *uuid.UUID `gorm:"type:uuid;index"`
	Recurrence         *string    `gorm:"type:varchar(10)"`
	InstallmentGroupID *uuid.UUID `gorm:"type:uuid;index"`
	InstallmentNumber  *int       `gorm:"type:integer"`
	InstallmentTotal   *int       `gorm:"type:integer"`

	// Relationships (not loaded by default, use Preload)
	Wallet   *WalletModel   `gorm:"foreignKey:WalletID;references:ID"`
	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
	User     *UserModel     `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the EntryModel.
func (EntryModel) TableName() string {
	return "entries"
}

// ToEntity converts an EntryModel to a domain Entry entity.
func (m *EntryModel) ToEntity() *entity.Entry {
	group := entity.NoGroup()
	switch {
	case m.RecurrenceGroupID != nil && m.Recurrence != nil:
		group = entity.NewRecurringGroup(*m.RecurrenceGroupID, entity.Recurrence(*m.Recurrence))
	case m.InstallmentGroupID != nil && m.InstallmentNumber != nil && m.InstallmentTotal != nil:
		group = entity.NewInstallmentGroup(*m.InstallmentGroupID, *m.InstallmentNumber, *m.InstallmentTotal)
	}

	return &entity.Entry{
		ID:          m.ID,
		UserID:      m.UserID,
		WalletID:    m.WalletID,
		CategoryID:  m.CategoryID,
		Description: m.Description,
		Amount:      m.Amount,
		Type:        entity.EntryType(m.Type),
		DueDate:     m.DueDate,
		PaymentDate: m.PaymentDate,
		IsPaid:      m.IsPaid,
		Notes:       m.Notes,
		Group:       group,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// EntryFromEntity creates an EntryModel from a domain Entry entity.
func EntryFromEntity(entry *entity.Entry) *EntryModel {
	m := &EntryModel{
		ID:          entry.ID,
		UserID:      entry.UserID,
		WalletID:    entry.WalletID,
		CategoryID:  entry.CategoryID,
		Description: entry.Description,
		Amount:      entry.Amount,
		Type:        string(entry.Type),
		DueDate:     entry.DueDate,
		PaymentDate: entry.PaymentDate,
		IsPaid:      entry.IsPaid,
		Notes:       entry.Notes,
		CreatedAt:   entry.CreatedAt,
		UpdatedAt:   entry.UpdatedAt,
	}

	switch entry.Group.Kind() {
	case entity.GroupRecurring:
		groupID, _ := entry.Group.GroupID()
		recurrence := string(entry.Group.Recurrence())
		m.RecurrenceGroupID = &groupID
		m.Recurrence = &recurrence
	case entity.GroupInstallment:
		groupID, _ := entry.Group.GroupID()
		number, total := entry.Group.Installment()
		m.InstallmentGroupID = &groupID
		m.InstallmentNumber = &number
		m.InstallmentTotal = &total
	}

	return m
}
