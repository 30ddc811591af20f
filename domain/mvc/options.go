package mvc

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/dudesahn/wBLTRouter/domain"
)

// OptionsUsecase represent the option exercise quoter's usecases.
type OptionsUsecase interface {
	// QuoteTokenNeededToExerciseLp returns the payment-token cost of
	// exercising the given option amount into a staked liquidity position.
	// net is the exact requirement at current rates; gross pads it with the
	// configured safety margin for rate movement between quote and execution.
	QuoteTokenNeededToExerciseLp(ctx context.Context, paymentDenom string, exerciseAmount osmomath.Int, discount int64) (gross sdk.Coin, net sdk.Coin, err error)

	// ExerciseLpWithUnderlying pulls the payment, converts it to the wrapped
	// asset, settles the discounted exercise and refunds any wrapped-asset
	// surplus to the sender. Fails with InsufficientPaymentError if the
	// payment converts below the requirement.
	ExerciseLpWithUnderlying(ctx context.Context, payment sdk.Coin, exerciseAmount osmomath.Int, discount int64, sender string, deadline int64) (domain.ExerciseLpResult, error)

	// ExerciseLpWithUnderlyingETH is the native variant: the payment is native
	// value wrapped before delegating to the token path.
	ExerciseLpWithUnderlyingETH(ctx context.Context, amountIn osmomath.Int, exerciseAmount osmomath.Int, discount int64, sender string, deadline int64) (domain.ExerciseLpResult, error)
}
