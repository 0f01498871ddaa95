package inmemoryledger

import (
	"context"
	"sync"

	"github.com/vulpemventures/dexd/internal/core/ports"
	"github.com/vulpemventures/dexd/pkg/mathutil"
)

type assetInfo struct {
	owner        string
	isSufficient bool
	minBalance   uint64
}

// LedgerImpl represents an in memory multi-asset ledger. Assets appear
// implicitly on first credit unless registered upfront with CreateAsset.
type LedgerImpl struct {
	balances map[string]map[string]uint64
	assets   map[string]assetInfo

	lock *sync.RWMutex
}

// NewLedgerImpl returns a new empty LedgerImpl
func NewLedgerImpl() *LedgerImpl {
	return &LedgerImpl{
		balances: map[string]map[string]uint64{},
		assets:   map[string]assetInfo{},
		lock:     &sync.RWMutex{},
	}
}

// Fund credits an account out of thin air. Meant for seeding test and
// development scenarios.
func (l *LedgerImpl) Fund(asset, account string, amount uint64) {
	l.lock.Lock()
	defer l.lock.Unlock()

	l.credit(asset, account, amount)
}

func (l *LedgerImpl) Transfer(
	_ context.Context, asset, from, to string, amount uint64,
) error {
	l.lock.Lock()
	defer l.lock.Unlock()

	if err := l.debit(asset, from, amount); err != nil {
		return err
	}
	l.credit(asset, to, amount)
	return nil
}

func (l *LedgerImpl) MintInto(
	_ context.Context, asset, to string, amount uint64,
) error {
	l.lock.Lock()
	defer l.lock.Unlock()

	l.credit(asset, to, amount)
	return nil
}

func (l *LedgerImpl) BurnFrom(
	_ context.Context, asset, from string, amount uint64, bestEffort bool,
) error {
	l.lock.Lock()
	defer l.lock.Unlock()

	if bestEffort {
		held := l.balances[asset][from]
		if amount > held {
			amount = held
		}
	}
	return l.debit(asset, from, amount)
}

func (l *LedgerImpl) CreateAsset(
	_ context.Context, asset, owner string, isSufficient bool, minBalance uint64,
) error {
	l.lock.Lock()
	defer l.lock.Unlock()

	if _, ok := l.assets[asset]; ok {
		return ports.ErrAssetAlreadyRegistered
	}
	l.assets[asset] = assetInfo{
		owner:        owner,
		isSufficient: isSufficient,
		minBalance:   minBalance,
	}
	return nil
}

func (l *LedgerImpl) Balance(
	_ context.Context, asset, account string,
) (uint64, error) {
	l.lock.RLock()
	defer l.lock.RUnlock()

	return l.balances[asset][account], nil
}

func (l *LedgerImpl) credit(asset, account string, amount uint64) {
	if _, ok := l.balances[asset]; !ok {
		l.balances[asset] = map[string]uint64{}
	}
	// Balances saturate instead of wrapping on overflow.
	sum, err := mathutil.Add(l.balances[asset][account], amount)
	if err != nil {
		sum = ^uint64(0)
	}
	l.balances[asset][account] = sum
}

func (l *LedgerImpl) debit(asset, account string, amount uint64) error {
	held := l.balances[asset][account]
	if amount > held {
		return ports.ErrInsufficientBalance
	}
	l.balances[asset][account] = held - amount
	return nil
}

var _ ports.Ledger = (*LedgerImpl)(nil)
