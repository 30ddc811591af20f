package mvc

import (
	"context"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/dudesahn/wBLTRouter/domain"
)

// LiquidityUsecase represent the liquidity manager's usecases. All mutating
// operations follow quote-then-execute discipline: the realized amounts are
// the quoted amounts or the call fails.
type LiquidityUsecase interface {
	// QuoteAddLiquidityUnderlying projects a proportional deposit into the
	// (denomA, denomB) pool. DenomA may be presented as a vault underlying;
	// it is converted to the wrapped denom actually held by the pool before
	// matching the reserve ratio. Pure.
	QuoteAddLiquidityUnderlying(ctx context.Context, denomA, denomB string, amountADesired, amountBDesired osmomath.Int) (domain.AddLiquidityQuote, error)

	// QuoteRemoveLiquidityUnderlying projects the proportional reserves for
	// burning the liquidity amount, converting the wrapped side back to the
	// underlying denomA. Pure.
	QuoteRemoveLiquidityUnderlying(ctx context.Context, denomA, denomB string, liquidity osmomath.Int) (domain.RemoveLiquidityQuote, error)

	// AddLiquidity deposits at the pool ratio using the lesser of the desired
	// and quoted amount per side, minting LP to recipient. Fails with
	// SlippageExceededError if a realized side is below its minimum.
	AddLiquidity(ctx context.Context, denomA string, amountADesired osmomath.Int, denomB string, amountBDesired, amountAMin, amountBMin osmomath.Int, sender, recipient string, deadline int64) (domain.AddLiquidityResult, error)

	// AddLiquidityETH is the native variant: the denomA side is native value
	// wrapped before delegating to the token path.
	AddLiquidityETH(ctx context.Context, amountADesired osmomath.Int, denomB string, amountBDesired, amountAMin, amountBMin osmomath.Int, sender, recipient string, deadline int64) (domain.AddLiquidityResult, error)

	// RemoveLiquidity burns the LP amount and sends the proportional reserves,
	// the wrapped side redeemed to underlying denomA.
	RemoveLiquidity(ctx context.Context, denomA, denomB string, liquidity, amountAMin, amountBMin osmomath.Int, sender, recipient string, deadline int64) (domain.RemoveLiquidityQuote, error)

	// RemoveLiquidityETH is the native variant: the underlying side is
	// unwrapped to native value for the recipient.
	RemoveLiquidityETH(ctx context.Context, denomB string, liquidity, amountAMin, amountBMin osmomath.Int, sender, recipient string, deadline int64) (domain.RemoveLiquidityQuote, error)
}
