package badgerledger

import (
	"context"
	"fmt"

	"github.com/dgraph-io/badger/v3"
	"github.com/timshannon/badgerhold/v4"
	"github.com/vulpemventures/dexd/internal/core/ports"
	dbbadger "github.com/vulpemventures/dexd/internal/infrastructure/storage/db/badger"
	"github.com/vulpemventures/dexd/pkg/mathutil"
)

// AssetEntry is the stored registration record of an asset.
type AssetEntry struct {
	Asset        string
	Owner        string
	IsSufficient bool
	MinBalance   uint64
}

// BalanceEntry is the stored balance of one account for one asset.
type BalanceEntry struct {
	Asset   string
	Account string
	Amount  uint64
}

type ledgerImpl struct {
	db *dbbadger.DbManager
}

// NewLedgerImpl initialize a badger implementation of the ports.Ledger,
// persisting balances and asset registrations on the ledger store.
func NewLedgerImpl(db *dbbadger.DbManager) ports.Ledger {
	return ledgerImpl{
		db: db,
	}
}

func (l ledgerImpl) Transfer(
	_ context.Context, asset, from, to string, amount uint64,
) error {
	return l.db.LedgerStore.Badger().Update(func(tx *badger.Txn) error {
		if err := l.debit(tx, asset, from, amount); err != nil {
			return err
		}
		return l.credit(tx, asset, to, amount)
	})
}

func (l ledgerImpl) MintInto(
	_ context.Context, asset, to string, amount uint64,
) error {
	return l.db.LedgerStore.Badger().Update(func(tx *badger.Txn) error {
		return l.credit(tx, asset, to, amount)
	})
}

func (l ledgerImpl) BurnFrom(
	_ context.Context, asset, from string, amount uint64, bestEffort bool,
) error {
	return l.db.LedgerStore.Badger().Update(func(tx *badger.Txn) error {
		if bestEffort {
			held, err := l.balance(tx, asset, from)
			if err != nil {
				return err
			}
			if amount > held {
				amount = held
			}
		}
		return l.debit(tx, asset, from, amount)
	})
}

func (l ledgerImpl) CreateAsset(
	_ context.Context, asset, owner string, isSufficient bool, minBalance uint64,
) error {
	entry := AssetEntry{
		Asset:        asset,
		Owner:        owner,
		IsSufficient: isSufficient,
		MinBalance:   minBalance,
	}
	if err := l.db.LedgerStore.Insert(assetKey(asset), &entry); err != nil {
		if err == badgerhold.ErrKeyExists {
			return ports.ErrAssetAlreadyRegistered
		}
		return err
	}
	return nil
}

func (l ledgerImpl) Balance(
	_ context.Context, asset, account string,
) (amount uint64, err error) {
	err = l.db.LedgerStore.Badger().View(func(tx *badger.Txn) error {
		amount, err = l.balance(tx, asset, account)
		return err
	})
	return
}

func (l ledgerImpl) credit(
	tx *badger.Txn, asset, account string, amount uint64,
) error {
	held, err := l.balance(tx, asset, account)
	if err != nil {
		return err
	}
	sum, err := mathutil.Add(held, amount)
	if err != nil {
		sum = ^uint64(0)
	}
	return l.setBalance(tx, asset, account, sum)
}

func (l ledgerImpl) debit(
	tx *badger.Txn, asset, account string, amount uint64,
) error {
	held, err := l.balance(tx, asset, account)
	if err != nil {
		return err
	}
	if amount > held {
		return ports.ErrInsufficientBalance
	}
	return l.setBalance(tx, asset, account, held-amount)
}

func (l ledgerImpl) balance(
	tx *badger.Txn, asset, account string,
) (uint64, error) {
	var entry BalanceEntry
	if err := l.db.LedgerStore.TxGet(
		tx, balanceKey(asset, account), &entry,
	); err != nil {
		if err == badgerhold.ErrNotFound {
			return 0, nil
		}
		return 0, err
	}
	return entry.Amount, nil
}

func (l ledgerImpl) setBalance(
	tx *badger.Txn, asset, account string, amount uint64,
) error {
	entry := BalanceEntry{Asset: asset, Account: account, Amount: amount}
	return l.db.LedgerStore.TxUpsert(tx, balanceKey(asset, account), &entry)
}

func assetKey(asset string) string {
	return fmt.Sprintf("asset:%s", asset)
}

func balanceKey(asset, account string) string {
	return fmt.Sprintf("balance:%s:%s", asset, account)
}
