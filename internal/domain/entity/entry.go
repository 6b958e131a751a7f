// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryType represents the direction of an entry (expense or income).
type EntryType string

const (
	EntryTypeExpense EntryType = "expense"
	EntryTypeIncome  EntryType = "income"
)

// Recurrence represents the step of a recurring entry series.
type Recurrence string

const (
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
	RecurrenceYearly  Recurrence = "yearly"
	// RecurrenceOpenEnded advances monthly like RecurrenceMonthly; the series
	// is still capped at a fixed number of occurrences.
	RecurrenceOpenEnded Recurrence = "open_ended"
)

// IsValidRecurrence reports whether r is a known recurrence kind.
func IsValidRecurrence(r Recurrence) bool {
	switch r {
	case RecurrenceWeekly, RecurrenceMonthly, RecurrenceYearly, RecurrenceOpenEnded:
		return true
	}
	return false
}

// GroupKind discriminates the group membership of an entry.
type GroupKind int

const (
	GroupNone GroupKind = iota
	GroupRecurring
	GroupInstallment
)

// EntryGroup is the tagged group-membership state of an entry. An entry is
// either a singleton, a member of a recurring series, or a member of an
// installment series; the representation makes recurring and installment
// membership structurally exclusive.
type EntryGroup struct {
	kind       GroupKind
	id         uuid.UUID
	recurrence Recurrence
	number     int
	total      int
}

// NoGroup returns the group state of a singleton entry.
func NoGroup() EntryGroup {
	return EntryGroup{kind: GroupNone}
}

// NewRecurringGroup returns the group state of a recurring series member.
func NewRecurringGroup(groupID uuid.UUID, recurrence Recurrence) EntryGroup {
	return EntryGroup{kind: GroupRecurring, id: groupID, recurrence: recurrence}
}

// NewInstallmentGroup returns the group state of an installment series member.
// number is 1-based; total is the series length.
func NewInstallmentGroup(groupID uuid.UUID, number, total int) EntryGroup {
	return EntryGroup{kind: GroupInstallment, id: groupID, number: number, total: total}
}

// Kind returns the group kind.
func (g EntryGroup) Kind() GroupKind {
	return g.kind
}

// GroupID returns the shared series identifier and whether the entry belongs
// to any group.
func (g EntryGroup) GroupID() (uuid.UUID, bool) {
	if g.kind == GroupNone {
		return uuid.Nil, false
	}
	return g.id, true
}

// Recurrence returns the recurrence kind of a recurring member. It is the
// zero value for non-recurring entries.
func (g EntryGroup) Recurrence() Recurrence {
	return g.recurrence
}

// Installment returns the 1-based position and series length of an
// installment member. Both are zero for non-installment entries.
func (g EntryGroup) Installment() (number, total int) {
	return g.number, g.total
}

// Entry represents a single dated income or expense line item.
//
// Amount is always stored positive; the direction comes from Type. The signed
// contribution of an entry to its wallet balance applies only while IsPaid is
// true.
type Entry struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	WalletID    uuid.UUID
	CategoryID  uuid.UUID
	Description string
	Amount      decimal.Decimal
	Type        EntryType
	DueDate     time.Time
	PaymentDate *time.Time
	IsPaid      bool
	Notes       string
	Group       EntryGroup
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewEntry creates a new singleton Entry entity.
func NewEntry(
	userID uuid.UUID,
	walletID uuid.UUID,
	categoryID uuid.UUID,
	description string,
	amount decimal.Decimal,
	entryType EntryType,
	dueDate time.Time,
	notes string,
) *Entry {
	now := time.Now().UTC()

	return &Entry{
		ID:          uuid.New(),
		UserID:      userID,
		WalletID:    walletID,
		CategoryID:  categoryID,
		Description: description,
		Amount:      amount,
		Type:        entryType,
		DueDate:     dueDate,
		Notes:       notes,
		Group:       NoGroup(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// SignedAmount returns the entry's contribution sign applied to its amount:
// positive for income, negative for expense.
func (e *Entry) SignedAmount() decimal.Decimal {
	if e.Type == EntryTypeIncome {
		return e.Amount
	}
	return e.Amount.Neg()
}
