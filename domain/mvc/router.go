package mvc

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/dudesahn/wBLTRouter/domain"
)

// RouterUsecase represent the router's usecases
type RouterUsecase interface {
	// GetAmountsOut simulates the route for the given exact input. Returns one
	// amount per hop boundary; the first element is the input amount.
	GetAmountsOut(ctx context.Context, tokenIn sdk.Coin, route domain.Route) ([]osmomath.Int, error)
	// GetAmountsIn simulates the route in reverse for the given exact output.
	// Returns one amount per hop boundary; the last element is the output amount.
	GetAmountsIn(ctx context.Context, tokenOut sdk.Coin, route domain.Route) ([]osmomath.Int, error)
	// GetMintAmountWrappedBLT returns the wrapped asset minted for depositing
	// the given base assets at the wrapper's current rate.
	GetMintAmountWrappedBLT(ctx context.Context, assets sdk.Coin) (sdk.Coin, error)
	// QuoteMintAmountBLT returns the base assets needed to mint the target
	// wrapped amount at the wrapper's current rate.
	QuoteMintAmountBLT(ctx context.Context, assetDenom string, wrappedTarget osmomath.Int) (sdk.Coin, error)
	// SwapExactTokensForTokens executes the route for an exact input, sending
	// the output to recipient. Deadline is an absolute unix timestamp checked
	// once at entry. The min-out bound is checked after the full route executes.
	SwapExactTokensForTokens(ctx context.Context, tokenIn sdk.Coin, amountOutMin osmomath.Int, route domain.Route, sender, recipient string, deadline int64) (sdk.Coin, error)
	// SwapExactETHForTokens is the native-entry variant: amountIn of native
	// value is wrapped before the first hop.
	SwapExactETHForTokens(ctx context.Context, amountIn, amountOutMin osmomath.Int, route domain.Route, sender, recipient string, deadline int64) (sdk.Coin, error)
	// SwapExactTokensForETH is the native-exit variant: the route's wrapped
	// native output is unwrapped to the recipient.
	SwapExactTokensForETH(ctx context.Context, tokenIn sdk.Coin, amountOutMin osmomath.Int, route domain.Route, sender, recipient string, deadline int64) (sdk.Coin, error)
	// GetConfig returns the router config.
	GetConfig() domain.RouterConfig
}
