// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/walletbook/backend/internal/application/usecase/wallet"
)

// CreateWalletRequest represents the request body for wallet creation.
// OpeningBalance is a decimal string so no precision is lost in transit.
type CreateWalletRequest struct {
	Name           string `json:"name" binding:"required,min=1,max=100"`
	OpeningBalance string `json:"opening_balance"`
}

// UpdateWalletRequest represents the request body for wallet updates.
type UpdateWalletRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// WalletResponse represents a wallet in API responses.
type WalletResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Balance   string    `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WalletListResponse represents the response for wallet listing.
type WalletListResponse struct {
	Wallets []WalletResponse `json:"wallets"`
}

// ToWalletResponse converts a wallet use-case output to a WalletResponse DTO.
func ToWalletResponse(w *wallet.WalletOutput) WalletResponse {
	return WalletResponse{
		ID:        w.ID.String(),
		Name:      w.Name,
		Balance:   w.Balance.String(),
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

// ToWalletListResponse converts a list of wallet outputs to a WalletListResponse.
func ToWalletListResponse(wallets []*wallet.WalletOutput) WalletListResponse {
	responses := make([]WalletResponse, len(wallets))
	for i, w := range wallets {
		responses[i] = ToWalletResponse(w)
	}
	return WalletListResponse{Wallets: responses}
}
