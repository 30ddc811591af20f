package domain

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/osmosis-labs/osmosis/osmomath"
)

// PoolKey is the identity of a pool: its unordered denom pair and curve family.
type PoolKey struct {
	DenomA string `json:"denom_a"`
	DenomB string `json:"denom_b"`
	Stable bool   `json:"stable"`
}

// NewPoolKey returns the key with denoms ordered lexicographically so that
// (a, b, s) and (b, a, s) resolve to the same pool.
func NewPoolKey(denomA, denomB string, stable bool) PoolKey {
	if denomB < denomA {
		denomA, denomB = denomB, denomA
	}
	return PoolKey{
		DenomA: denomA,
		DenomB: denomB,
		Stable: stable,
	}
}

// ContainsDenom returns true if the denom is one of the pair.
func (k PoolKey) ContainsDenom(denom string) bool {
	return k.DenomA == denom || k.DenomB == denom
}

// OtherDenom returns the counterparty denom of the pair.
// Returns empty string if denom is not in the pair.
func (k PoolKey) OtherDenom(denom string) string {
	switch denom {
	case k.DenomA:
		return k.DenomB
	case k.DenomB:
		return k.DenomA
	default:
		return ""
	}
}

func (k PoolKey) String() string {
	return fmt.Sprintf("(%s, %s, stable=%t)", k.DenomA, k.DenomB, k.Stable)
}

// RoutablePool is a pool that can be routed over. The router treats the pool
// strictly as an oracle: all curve math lives behind this interface and the
// router never re-derives it. Quote results are valid only until the next
// mutating operation on the same pool.
type RoutablePool interface {
	GetKey() PoolKey

	// GetAddress returns the account that holds the pool reserves.
	GetAddress() string

	// GetLPDenom returns the denom of the pool's liquidity token.
	GetLPDenom() string

	GetReserves(ctx context.Context) (sdk.Coin, sdk.Coin, error)

	GetTotalSupply(ctx context.Context) (osmomath.Int, error)

	// CalculateTokenOutByTokenIn quotes an exact-in swap. The token out denom
	// is the counterparty denom of the pair.
	CalculateTokenOutByTokenIn(ctx context.Context, tokenIn sdk.Coin) (sdk.Coin, error)

	// CalculateTokenInByTokenOut quotes an exact-out swap.
	CalculateTokenInByTokenOut(ctx context.Context, tokenOut sdk.Coin) (sdk.Coin, error)

	// QuoteLiquidity returns the counterparty amount matching the pool's
	// current reserve ratio for the given deposit amount. This is the same
	// ratio function the pool applies on join, so router-side quotes stay in
	// exact parity with pool execution.
	QuoteLiquidity(ctx context.Context, tokenIn sdk.Coin) (sdk.Coin, error)

	// SwapExactIn executes a swap, pulling tokenIn from the from account and
	// sending the output to the to account.
	SwapExactIn(ctx context.Context, tokenIn sdk.Coin, from, to string) (sdk.Coin, error)

	// Join deposits the pair amounts from the from account and mints LP to the
	// to account.
	Join(ctx context.Context, coinA, coinB sdk.Coin, from, to string) (osmomath.Int, error)

	// Exit burns liquidity from the from account and sends the proportional
	// reserves to the to account.
	Exit(ctx context.Context, liquidity osmomath.Int, from, to string) (sdk.Coin, sdk.Coin, error)

	String() string
}
