// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/walletbook/backend/internal/application/usecase/entry"
)

// dateLayout is the wire format for entry dates.
const dateLayout = "2006-01-02"

// CreateEntryRequest represents the request body for entry creation.
// Amount is a decimal string so no precision is lost in transit.
type CreateEntryRequest struct {
	WalletID    string `json:"wallet_id" binding:"required,uuid"`
	CategoryID  string `json:"category_id" binding:"required,uuid"`
	Description string `json:"description" binding:"required,min=1,max=255"`
	Amount      string `json:"amount" binding:"required"`
	Type        string `json:"type" binding:"required,oneof=expense income"`
	DueDate     string `json:"due_date" binding:"required"`
	Notes       string `json:"notes"`

	IsPaid      bool    `json:"is_paid"`
	PaymentDate *string `json:"payment_date"`

	IsRecurring bool    `json:"is_recurring"`
	Recurrence  *string `json:"recurrence"`

	IsInstallment    bool `json:"is_installment"`
	InstallmentCount *int `json:"installment_count"`
}

// UpdateEntryRequest represents the request body for entry updates. All
// fields are optional; absent fields keep their current value.
type UpdateEntryRequest struct {
	WalletID    *string `json:"wallet_id"`
	CategoryID  *string `json:"category_id"`
	Description *string `json:"description"`
	Amount      *string `json:"amount"`
	DueDate     *string `json:"due_date"`
	PaymentDate *string `json:"payment_date"`
	IsPaid      *bool   `json:"is_paid"`
	Notes       *string `json:"notes"`

	// ApplyToGroup extends the update to every member of the entry's series.
	ApplyToGroup bool `json:"apply_to_group"`
}

// PayEntryRequest represents the request body for marking an entry paid.
type PayEntryRequest struct {
	PaymentDate *string `json:"payment_date"`
}

// EntryResponse represents an entry in API responses.
type EntryResponse struct {
	ID          string  `json:"id"`
	WalletID    string  `json:"wallet_id"`
	CategoryID  string  `json:"category_id"`
	Description string  `json:"description"`
	Amount      string  `json:"amount"`
	Type        string  `json:"type"`
	DueDate     string  `json:"due_date"`
	PaymentDate *string `json:"payment_date,omitempty"`
	IsPaid      bool    `json:"is_paid"`
	Notes       string  `json:"notes,omitempty"`

	GroupID           *string `json:"group_id,omitempty"`
	Recurrence        *string `json:"recurrence,omitempty"`
	InstallmentNumber *int    `json:"installment_number,omitempty"`
	InstallmentTotal  *int    `json:"installment_total,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EntryListResponse represents the response for entry listing.
type EntryListResponse struct {
	Entries    []EntryResponse `json:"entries"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
}

// EntrySeriesResponse represents the response when a series of entries is
// created in one request.
type EntrySeriesResponse struct {
	Entries []EntryResponse `json:"entries"`
}

// DeleteEntryResponse represents the response for entry deletion.
type DeleteEntryResponse struct {
	DeletedCount int `json:"deleted_count"`
}

// ToEntryResponse converts an entry use-case output to an EntryResponse DTO.
func ToEntryResponse(e *entry.EntryOutput) EntryResponse {
	response := EntryResponse{
		ID:          e.ID.String(),
		WalletID:    e.WalletID.String(),
		CategoryID:  e.CategoryID.String(),
		Description: e.Description,
		Amount:      e.Amount.String(),
		Type:        string(e.Type),
		DueDate:     e.DueDate.Format(dateLayout),
		IsPaid:      e.IsPaid,
		Notes:       e.Notes,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}

	if e.PaymentDate != nil {
		paymentDate := e.PaymentDate.Format(dateLayout)
		response.PaymentDate = &paymentDate
	}
	if e.GroupID != nil {
		groupID := e.GroupID.String()
		response.GroupID = &groupID
	}
	if e.Recurrence != nil {
		recurrence := string(*e.Recurrence)
		response.Recurrence = &recurrence
	}
	response.InstallmentNumber = e.InstallmentNumber
	response.InstallmentTotal = e.InstallmentTotal

	return response
}

// ToEntryResponses converts a slice of entry outputs.
func ToEntryResponses(entries []*entry.EntryOutput) []EntryResponse {
	responses := make([]EntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = ToEntryResponse(e)
	}
	return responses
}
