// Package entry contains entry-related use cases.
package entry

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/walletbook/backend/internal/domain/entity"
)

// EntryOutput represents an entry returned by the entry use cases.
type EntryOutput struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	WalletID          uuid.UUID
	CategoryID        uuid.UUID
	Description       string
	Amount            decimal.Decimal
	Type              entity.EntryType
	DueDate           time.Time
	PaymentDate       *time.Time
	IsPaid            bool
	Notes             string
	GroupID           *uuid.UUID
	Recurrence        *entity.Recurrence
	InstallmentNumber *int
	InstallmentTotal  *int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// toEntryOutput converts a domain entry to its use-case output shape.
func toEntryOutput(e *entity.Entry) *EntryOutput {
	output := &EntryOutput{
		ID:          e.ID,
		UserID:      e.UserID,
		WalletID:    e.WalletID,
		CategoryID:  e.CategoryID,
		Description: e.Description,
		Amount:      e.Amount,
		Type:        e.Type,
		DueDate:     e.DueDate,
		PaymentDate: e.PaymentDate,
		IsPaid:      e.IsPaid,
		Notes:       e.Notes,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}

	switch e.Group.Kind() {
	case entity.GroupRecurring:
		groupID, _ := e.Group.GroupID()
		recurrence := e.Group.Recurrence()
		output.GroupID = &groupID
		output.Recurrence = &recurrence
	case entity.GroupInstallment:
		groupID, _ := e.Group.GroupID()
		number, total := e.Group.Installment()
		output.GroupID = &groupID
		output.InstallmentNumber = &number
		output.InstallmentTotal = &total
	}

	return output
}

// toEntryOutputs converts a slice of domain entries.
func toEntryOutputs(entries []*entity.Entry) []*EntryOutput {
	outputs := make([]*EntryOutput, len(entries))
	for i, e := range entries {
		outputs[i] = toEntryOutput(e)
	}
	return outputs
}
