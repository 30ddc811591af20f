package mvc

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/dudesahn/wBLTRouter/domain"
)

// WrapperUsecase resolves wrap boundaries: it compiles routes into executable
// steps, injecting vault deposit/redeem legs where a hop crosses between the
// wrapped asset and a vault underlying, and native wrap/unwrap legs at route
// edges.
type WrapperUsecase interface {
	// WrappedDenom returns the wrapped yield-bearing asset denom.
	WrappedDenom() string
	// NativeDenom returns the native value denom.
	NativeDenom() string
	// WrappedNativeDenom returns the wrapped native token denom.
	WrappedNativeDenom() string

	// CompileRoute validates the route and compiles it into executable steps.
	// Rejects hops that resolve to neither a registered pool nor a wrap leg.
	CompileRoute(ctx context.Context, route domain.Route) ([]domain.RoutableStep, error)

	// WithNativeEntry prepends a native wrap step. The first step must take
	// the wrapped native token as input.
	WithNativeEntry(steps []domain.RoutableStep) ([]domain.RoutableStep, error)

	// WithNativeExit appends a native unwrap step. The last step must produce
	// the wrapped native token.
	WithNativeExit(steps []domain.RoutableStep) ([]domain.RoutableStep, error)

	// GetMintAmountWrappedBLT previews a vault deposit at the current rate.
	GetMintAmountWrappedBLT(ctx context.Context, assets sdk.Coin) (sdk.Coin, error)

	// QuoteMintAmountBLT previews the base assets needed to mint the target
	// wrapped amount at the current rate.
	QuoteMintAmountBLT(ctx context.Context, assetDenom string, wrappedTarget osmomath.Int) (sdk.Coin, error)
}
