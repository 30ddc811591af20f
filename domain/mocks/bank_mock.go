package mocks

import (
	"context"
	"sync"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/dudesahn/wBLTRouter/domain"
)

var (
	_ domain.Bank      = &MockBank{}
	_ domain.TxManager = &MockBank{}
)

// MockBank is an in-memory token ledger. All mock pools, the mock vault and
// the mock wrappers keep their mutable state in bank balances, so snapshotting
// the bank snapshots the whole world. It implements domain.TxManager with a
// snapshot stack: Begin pushes a deep copy, Rollback restores it.
type MockBank struct {
	mu sync.Mutex

	balances map[string]map[string]osmomath.Int
	supplies map[string]osmomath.Int

	snapshots []bankSnapshot
}

type bankSnapshot struct {
	balances map[string]map[string]osmomath.Int
	supplies map[string]osmomath.Int
}

// NewMockBank creates an empty ledger.
func NewMockBank() *MockBank {
	return &MockBank{
		balances: make(map[string]map[string]osmomath.Int),
		supplies: make(map[string]osmomath.Int),
	}
}

// Send implements domain.Bank.
func (b *MockBank) Send(_ context.Context, from, to string, coin sdk.Coin) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if coin.Amount.IsZero() {
		return nil
	}

	balance := b.balanceNoLock(from, coin.Denom)
	if balance.LT(coin.Amount) {
		return domain.TransferError{Denom: coin.Denom, From: from, To: to}
	}

	b.setBalanceNoLock(from, coin.Denom, balance.Sub(coin.Amount))
	b.setBalanceNoLock(to, coin.Denom, b.balanceNoLock(to, coin.Denom).Add(coin.Amount))

	return nil
}

// BalanceOf implements domain.Bank.
func (b *MockBank) BalanceOf(_ context.Context, account, denom string) osmomath.Int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.balanceNoLock(account, denom)
}

// MintCoin credits the coin to the account and grows the denom supply.
func (b *MockBank) MintCoin(account string, coin sdk.Coin) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.setBalanceNoLock(account, coin.Denom, b.balanceNoLock(account, coin.Denom).Add(coin.Amount))
	b.supplies[coin.Denom] = b.supplyNoLock(coin.Denom).Add(coin.Amount)
}

// BurnCoin debits the coin from the account and shrinks the denom supply.
// Panics if the account balance is insufficient; mocks treat that as a
// test-setup bug.
func (b *MockBank) BurnCoin(account string, coin sdk.Coin) {
	b.mu.Lock()
	defer b.mu.Unlock()

	balance := b.balanceNoLock(account, coin.Denom)
	if balance.LT(coin.Amount) {
		panic("burning more than the account balance")
	}

	b.setBalanceNoLock(account, coin.Denom, balance.Sub(coin.Amount))
	b.supplies[coin.Denom] = b.supplyNoLock(coin.Denom).Sub(coin.Amount)
}

// Supply returns the total minted supply of the denom.
func (b *MockBank) Supply(denom string) osmomath.Int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.supplyNoLock(denom)
}

// Begin implements domain.TxManager.
func (b *MockBank) Begin(_ context.Context) (domain.Tx, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.snapshots = append(b.snapshots, bankSnapshot{
		balances: copyBalances(b.balances),
		supplies: copySupplies(b.supplies),
	})

	return &mockTx{bank: b}, nil
}

type mockTx struct {
	bank *MockBank
	done bool
}

// Commit implements domain.Tx.
func (tx *mockTx) Commit() error {
	tx.bank.mu.Lock()
	defer tx.bank.mu.Unlock()

	if tx.done {
		return nil
	}
	tx.done = true

	tx.bank.snapshots = tx.bank.snapshots[:len(tx.bank.snapshots)-1]
	return nil
}

// Rollback implements domain.Tx.
func (tx *mockTx) Rollback() error {
	tx.bank.mu.Lock()
	defer tx.bank.mu.Unlock()

	if tx.done {
		return nil
	}
	tx.done = true

	snapshot := tx.bank.snapshots[len(tx.bank.snapshots)-1]
	tx.bank.snapshots = tx.bank.snapshots[:len(tx.bank.snapshots)-1]
	tx.bank.balances = snapshot.balances
	tx.bank.supplies = snapshot.supplies
	return nil
}

func (b *MockBank) balanceNoLock(account, denom string) osmomath.Int {
	accountBalances, ok := b.balances[account]
	if !ok {
		return osmomath.ZeroInt()
	}

	balance, ok := accountBalances[denom]
	if !ok {
		return osmomath.ZeroInt()
	}

	return balance
}

func (b *MockBank) setBalanceNoLock(account, denom string, amount osmomath.Int) {
	accountBalances, ok := b.balances[account]
	if !ok {
		accountBalances = make(map[string]osmomath.Int)
		b.balances[account] = accountBalances
	}

	accountBalances[denom] = amount
}

func (b *MockBank) supplyNoLock(denom string) osmomath.Int {
	supply, ok := b.supplies[denom]
	if !ok {
		return osmomath.ZeroInt()
	}
	return supply
}

func copyBalances(src map[string]map[string]osmomath.Int) map[string]map[string]osmomath.Int {
	dst := make(map[string]map[string]osmomath.Int, len(src))
	for account, accountBalances := range src {
		dstAccount := make(map[string]osmomath.Int, len(accountBalances))
		for denom, amount := range accountBalances {
			dstAccount[denom] = amount
		}
		dst[account] = dstAccount
	}
	return dst
}

func copySupplies(src map[string]osmomath.Int) map[string]osmomath.Int {
	dst := make(map[string]osmomath.Int, len(src))
	for denom, amount := range src {
		dst[denom] = amount
	}
	return dst
}
