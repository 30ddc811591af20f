package domain

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/osmosis-labs/osmosis/osmomath"
)

// Bank is the token ledger the router moves funds through. Pools, the
// wrapper vault and the router itself are all accounts on it.
type Bank interface {
	// Send moves the coin from one account to another.
	// Returns TransferError if the sender balance is insufficient.
	Send(ctx context.Context, from, to string, coin sdk.Coin) error

	// BalanceOf returns the balance of the denom held by the account.
	BalanceOf(ctx context.Context, account, denom string) osmomath.Int
}

// TxManager scopes a unit of work over the bank and the pool/vault state it
// reaches. Everything done inside a transaction commits atomically or is
// discarded; there is no partial-hop commit.
type TxManager interface {
	Begin(ctx context.Context) (Tx, error)
}

// Tx is an open unit of work.
type Tx interface {
	Commit() error
	Rollback() error
}
