package pools

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/dudesahn/wBLTRouter/domain"
)

var _ domain.RoutableStep = &routableSwapStep{}

// routableSwapStep adapts a pool oracle into a directed route step.
type routableSwapStep struct {
	pool          domain.RoutablePool
	tokenInDenom  string
	tokenOutDenom string
}

// NewRoutableSwapStep returns a swap step over the given pool in the
// tokenIn -> tokenOut direction.
func NewRoutableSwapStep(pool domain.RoutablePool, tokenInDenom, tokenOutDenom string) domain.RoutableStep {
	return &routableSwapStep{
		pool:          pool,
		tokenInDenom:  tokenInDenom,
		tokenOutDenom: tokenOutDenom,
	}
}

// GetKind implements domain.RoutableStep.
func (s *routableSwapStep) GetKind() domain.StepKind {
	return domain.StepSwap
}

// GetTokenInDenom implements domain.RoutableStep.
func (s *routableSwapStep) GetTokenInDenom() string {
	return s.tokenInDenom
}

// GetTokenOutDenom implements domain.RoutableStep.
func (s *routableSwapStep) GetTokenOutDenom() string {
	return s.tokenOutDenom
}

// CalculateTokenOutByTokenIn implements domain.RoutableStep.
func (s *routableSwapStep) CalculateTokenOutByTokenIn(ctx context.Context, tokenIn sdk.Coin) (sdk.Coin, error) {
	if tokenIn.Denom != s.tokenInDenom {
		return sdk.Coin{}, domain.InvalidRouteError{
			Reason: fmt.Sprintf("step expects token in (%s), got (%s)", s.tokenInDenom, tokenIn.Denom),
		}
	}

	return s.pool.CalculateTokenOutByTokenIn(ctx, tokenIn)
}

// CalculateTokenInByTokenOut implements domain.RoutableStep.
func (s *routableSwapStep) CalculateTokenInByTokenOut(ctx context.Context, tokenOut sdk.Coin) (sdk.Coin, error) {
	if tokenOut.Denom != s.tokenOutDenom {
		return sdk.Coin{}, domain.InvalidRouteError{
			Reason: fmt.Sprintf("step expects token out (%s), got (%s)", s.tokenOutDenom, tokenOut.Denom),
		}
	}

	return s.pool.CalculateTokenInByTokenOut(ctx, tokenOut)
}

// Execute implements domain.RoutableStep.
func (s *routableSwapStep) Execute(ctx context.Context, tokenIn sdk.Coin, from, to string) (sdk.Coin, error) {
	if tokenIn.Denom != s.tokenInDenom {
		return sdk.Coin{}, domain.InvalidRouteError{
			Reason: fmt.Sprintf("step expects token in (%s), got (%s)", s.tokenInDenom, tokenIn.Denom),
		}
	}

	return s.pool.SwapExactIn(ctx, tokenIn, from, to)
}

// String implements domain.RoutableStep.
func (s *routableSwapStep) String() string {
	return fmt.Sprintf("swap %s -> %s over %s", s.tokenInDenom, s.tokenOutDenom, s.pool.GetKey())
}
