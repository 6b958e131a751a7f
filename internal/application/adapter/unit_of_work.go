// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// Stores bundles the repositories bound to one transactional scope. Every
// operation performed through a Stores instance inside UnitOfWork.Execute
// commits or rolls back together.
type Stores struct {
	Entries    EntryRepository
	Wallets    WalletRepository
	Categories CategoryRepository
	Transfers  TransferRepository
}

// UnitOfWork runs a function within a single atomic transaction boundary.
// If fn returns an error the whole unit rolls back and no partial record
// mutation or balance adjustment remains visible.
type UnitOfWork interface {
	Execute(ctx context.Context, fn func(ctx context.Context, stores Stores) error) error
}
