package route

import (
	"context"
	"fmt"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/dudesahn/wBLTRouter/domain"
)

// RouteImpl is a compiled route: the ordered executable steps of a hop
// sequence, wrap legs included.
type RouteImpl struct {
	Steps []domain.RoutableStep
}

// New wraps compiled steps into a route.
func New(steps []domain.RoutableStep) RouteImpl {
	return RouteImpl{Steps: steps}
}

// CalculateTokenOutByTokenIn projects the route output for the given input.
// Composition is strictly sequential: each step's output becomes the next
// step's input, with no rounding correction beyond what each step's own quote
// returns. Returns one amount per step boundary; the first element is the
// input amount.
func (r RouteImpl) CalculateTokenOutByTokenIn(ctx context.Context, tokenIn sdk.Coin) (amounts []sdk.Coin, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			amounts = nil
			err = fmt.Errorf("error when calculating out by in in route: %v", rec)
		}
	}()

	amounts = make([]sdk.Coin, 0, len(r.Steps)+1)
	amounts = append(amounts, tokenIn)

	for _, step := range r.Steps {
		tokenOut, err := step.CalculateTokenOutByTokenIn(ctx, tokenIn)
		if err != nil {
			return nil, err
		}

		amounts = append(amounts, tokenOut)
		tokenIn = tokenOut
	}

	return amounts, nil
}

// CalculateTokenInByTokenOut projects the inputs required for the given exact
// output, walking the steps in reverse. Returns one amount per step boundary;
// the last element is the output amount.
func (r RouteImpl) CalculateTokenInByTokenOut(ctx context.Context, tokenOut sdk.Coin) (amounts []sdk.Coin, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			amounts = nil
			err = fmt.Errorf("error when calculating in by out in route: %v", rec)
		}
	}()

	amounts = make([]sdk.Coin, len(r.Steps)+1)
	amounts[len(r.Steps)] = tokenOut

	for i := len(r.Steps) - 1; i >= 0; i-- {
		tokenIn, err := r.Steps[i].CalculateTokenInByTokenOut(ctx, tokenOut)
		if err != nil {
			return nil, err
		}

		amounts[i] = tokenIn
		tokenOut = tokenIn
	}

	return amounts, nil
}

// TokenInDenom returns the entry denom of the compiled route.
// Returns empty string if the route has no steps.
func (r RouteImpl) TokenInDenom() string {
	if len(r.Steps) == 0 {
		return ""
	}
	return r.Steps[0].GetTokenInDenom()
}

// TokenOutDenom returns the exit denom of the compiled route.
// Returns empty string if the route has no steps.
func (r RouteImpl) TokenOutDenom() string {
	if len(r.Steps) == 0 {
		return ""
	}
	return r.Steps[len(r.Steps)-1].GetTokenOutDenom()
}

// Denoms returns every denom the route touches, in step order, deduplicated.
// Used for checking the router's zero-residual invariant after execution.
func (r RouteImpl) Denoms() []string {
	seen := make(map[string]struct{}, len(r.Steps)+1)
	denoms := make([]string, 0, len(r.Steps)+1)

	add := func(denom string) {
		if _, ok := seen[denom]; !ok {
			seen[denom] = struct{}{}
			denoms = append(denoms, denom)
		}
	}

	for _, step := range r.Steps {
		add(step.GetTokenInDenom())
		add(step.GetTokenOutDenom())
	}

	return denoms
}

// String implements fmt.Stringer.
func (r RouteImpl) String() string {
	var strBuilder strings.Builder
	for _, step := range r.Steps {
		strBuilder.WriteString(fmt.Sprintf("{{%s}}", step.String()))
	}

	return strBuilder.String()
}
