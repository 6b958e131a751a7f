// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/walletbook/backend/internal/application/usecase/transfer"
)

// CreateTransferRequest represents the request body for transfer creation.
// Amount is a decimal string so no precision is lost in transit.
type CreateTransferRequest struct {
	FromWalletID string `json:"from_wallet_id" binding:"required,uuid"`
	ToWalletID   string `json:"to_wallet_id" binding:"required,uuid"`
	Amount       string `json:"amount" binding:"required"`
	Date         string `json:"date" binding:"required"`
	Description  string `json:"description" binding:"max=255"`
}

// TransferResponse represents a transfer in API responses.
type TransferResponse struct {
	ID           string    `json:"id"`
	FromWalletID string    `json:"from_wallet_id"`
	ToWalletID   string    `json:"to_wallet_id"`
	Amount       string    `json:"amount"`
	Date         string    `json:"date"`
	Description  string    `json:"description,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// TransferListResponse represents the response for transfer listing.
type TransferListResponse struct {
	Transfers []TransferResponse `json:"transfers"`
}

// ToTransferResponse converts a transfer use-case output to a TransferResponse DTO.
func ToTransferResponse(t *transfer.TransferOutput) TransferResponse {
	return TransferResponse{
		ID:           t.ID.String(),
		FromWalletID: t.FromWalletID.String(),
		ToWalletID:   t.ToWalletID.String(),
		Amount:       t.Amount.String(),
		Date:         t.Date.Format(dateLayout),
		Description:  t.Description,
		CreatedAt:    t.CreatedAt,
	}
}

// ToTransferListResponse converts a list of transfer outputs to a TransferListResponse.
func ToTransferListResponse(transfers []*transfer.TransferOutput) TransferListResponse {
	responses := make([]TransferResponse, len(transfers))
	for i, t := range transfers {
		responses[i] = ToTransferResponse(t)
	}
	return TransferListResponse{Transfers: responses}
}
