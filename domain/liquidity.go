package domain

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/osmosis-labs/osmosis/osmomath"
)

// AddLiquidityQuote is a pure projection of a proportional deposit. AmountA is
// expressed in the caller-presented (underlying) denom, AmountB in the pool's
// counterparty denom.
type AddLiquidityQuote struct {
	// AmountA is the binding amount of the caller-presented token.
	AmountA sdk.Coin `json:"amount_a"`
	// AmountAWrapped is AmountA converted into the denom actually held by the
	// pool. Equal to AmountA when no wrapping applies.
	AmountAWrapped sdk.Coin `json:"amount_a_wrapped"`
	// AmountB is the matching amount of the counterparty token.
	AmountB sdk.Coin `json:"amount_b"`
	// Liquidity is the projected LP amount minted.
	Liquidity osmomath.Int `json:"liquidity"`
}

// RemoveLiquidityQuote is a pure projection of a proportional withdrawal,
// with the wrapped side already converted back to the underlying denom.
type RemoveLiquidityQuote struct {
	AmountA sdk.Coin `json:"amount_a"`
	AmountB sdk.Coin `json:"amount_b"`
}

// AddLiquidityResult reports the realized deposit.
type AddLiquidityResult struct {
	AmountA   sdk.Coin     `json:"amount_a"`
	AmountB   sdk.Coin     `json:"amount_b"`
	Liquidity osmomath.Int `json:"liquidity"`
}

// ExerciseLpResult reports a settled option exercise.
type ExerciseLpResult struct {
	// PaymentUsed is the wrapped-asset payment consumed by the settlement.
	PaymentUsed sdk.Coin `json:"payment_used"`
	// Refunded is the surplus wrapped asset returned to the caller.
	Refunded sdk.Coin `json:"refunded"`
}
