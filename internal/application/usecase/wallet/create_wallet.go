// Package wallet contains wallet-related use cases.
package wallet

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/walletbook/backend/internal/application/adapter"
	"github.com/walletbook/backend/internal/domain/entity"
	domainerror "github.com/walletbook/backend/internal/domain/error"
)

// MaxWalletNameLength is the maximum allowed length for wallet names.
const MaxWalletNameLength = 100

// CreateWalletInput represents the input for wallet creation.
type CreateWalletInput struct {
	UserID         uuid.UUID
	Name           string
	OpeningBalance decimal.Decimal
}

// CreateWalletOutput represents the output of wallet creation.
type CreateWalletOutput struct {
	Wallet *WalletOutput
}

// CreateWalletUseCase handles wallet creation logic.
type CreateWalletUseCase struct {
	walletRepo adapter.WalletRepository
}

// NewCreateWalletUseCase creates a new CreateWalletUseCase instance.
func NewCreateWalletUseCase(walletRepo adapter.WalletRepository) *CreateWalletUseCase {
	return &CreateWalletUseCase{
		walletRepo: walletRepo,
	}
}

// Execute performs the wallet creation. The opening balance is the only
// client-supplied balance a wallet ever accepts; afterwards the balance only
// moves through reconciliation and transfers.
func (uc *CreateWalletUseCase) Execute(ctx context.Context, input CreateWalletInput) (*CreateWalletOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewWalletError(
			domainerror.ErrCodeWalletNameRequired,
			"wallet name is required",
			domainerror.ErrWalletNameRequired,
		)
	}
	if len(name) > MaxWalletNameLength {
		return nil, domainerror.NewWalletError(
			domainerror.ErrCodeWalletNameRequired,
			fmt.Sprintf("wallet name must not exceed %d characters", MaxWalletNameLength),
			nil,
		)
	}

	wallet := entity.NewWallet(input.UserID, name, input.OpeningBalance)

	if err := uc.walletRepo.Create(ctx, wallet); err != nil {
		return nil, fmt.Errorf("failed to create wallet: %w", err)
	}

	return &CreateWalletOutput{Wallet: toWalletOutput(wallet)}, nil
}
