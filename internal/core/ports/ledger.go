package ports

import (
	"context"
	"errors"
)

var (
	// ErrAssetAlreadyRegistered is returned by CreateAsset for an asset that
	// is already registered on the ledger.
	ErrAssetAlreadyRegistered = errors.New("asset already registered")
	// ErrInsufficientBalance is returned when an account cannot cover a
	// debit.
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// Ledger is the external collaborator custodying the actual asset balances.
// The core never moves funds itself, it only instructs the ledger and
// commits pool state afterwards. Implementations are expected to apply each
// call atomically and to report failures synchronously.
type Ledger interface {
	// Transfer moves an amount of an asset between two accounts, failing if
	// the sender cannot cover it.
	Transfer(ctx context.Context, asset, from, to string, amount uint64) error
	// MintInto creates new units of an asset on the given account.
	MintInto(ctx context.Context, asset, to string, amount uint64) error
	// BurnFrom destroys units of an asset held by the given account. With
	// bestEffort, an account that cannot cover the full amount gets burned
	// for what it holds instead of failing.
	BurnFrom(
		ctx context.Context, asset, from string, amount uint64, bestEffort bool,
	) error
	// CreateAsset registers a brand-new asset owned by the given account.
	CreateAsset(
		ctx context.Context,
		asset, owner string, isSufficient bool, minBalance uint64,
	) error
	// Balance returns the amount of an asset held by the given account.
	Balance(ctx context.Context, asset, account string) (uint64, error)
}
