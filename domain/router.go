package domain

import (
	"context"
	"fmt"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Hop is a single directed exchange through a specific pool.
// TokenOutDenom of hop i must equal TokenInDenom of hop i+1.
type Hop struct {
	TokenInDenom  string `json:"from"`
	TokenOutDenom string `json:"to"`
	Stable        bool   `json:"stable"`
}

// Route is an ordered sequence of hops from an input token to an output token.
// It is constructed per call and never persisted.
type Route []Hop

// Validate performs the structural checks that do not require pool resolution:
// non-empty route and hop continuity. Pool existence is checked when the route
// is compiled into steps.
func (r Route) Validate() error {
	if len(r) == 0 {
		return InvalidRouteError{Reason: "route is empty"}
	}

	for i, hop := range r {
		if hop.TokenInDenom == "" || hop.TokenOutDenom == "" {
			return InvalidRouteError{Reason: fmt.Sprintf("hop (%d) has an empty denom", i)}
		}

		if hop.TokenInDenom == hop.TokenOutDenom {
			return InvalidRouteError{Reason: fmt.Sprintf("hop (%d) swaps a denom (%s) for itself", i, hop.TokenInDenom)}
		}

		if i > 0 && r[i-1].TokenOutDenom != hop.TokenInDenom {
			return InvalidRouteError{
				Reason: fmt.Sprintf("hop (%d) token in (%s) does not continue previous token out (%s)", i, hop.TokenInDenom, r[i-1].TokenOutDenom),
			}
		}
	}

	return nil
}

// TokenInDenom returns the entry denom of the route.
// Returns empty string for an empty route.
func (r Route) TokenInDenom() string {
	if len(r) == 0 {
		return ""
	}
	return r[0].TokenInDenom
}

// TokenOutDenom returns the exit denom of the route.
// Returns empty string for an empty route.
func (r Route) TokenOutDenom() string {
	if len(r) == 0 {
		return ""
	}
	return r[len(r)-1].TokenOutDenom
}

// Reverse returns the inverse route: hops in reverse order with each hop's
// direction flipped. Used for exact-output simulation.
func (r Route) Reverse() Route {
	reversed := make(Route, 0, len(r))
	for i := len(r) - 1; i >= 0; i-- {
		reversed = append(reversed, Hop{
			TokenInDenom:  r[i].TokenOutDenom,
			TokenOutDenom: r[i].TokenInDenom,
			Stable:        r[i].Stable,
		})
	}
	return reversed
}

func (r Route) String() string {
	var strBuilder strings.Builder
	for _, hop := range r {
		strBuilder.WriteString(fmt.Sprintf("{{%s -> %s stable=%t}}", hop.TokenInDenom, hop.TokenOutDenom, hop.Stable))
	}
	return strBuilder.String()
}

// WrapDecision is the auto-wrap decision at a route boundary for the
// native asset. It is computed once per call and threaded as plain data.
type WrapDecision int

const (
	// NoWrap means the caller deals in the route's boundary tokens directly.
	NoWrap WrapDecision = iota
	// WrapIn means native value presented by the caller is wrapped before the first hop.
	WrapIn
	// UnwrapOut means the route's output is unwrapped to native value for the caller.
	UnwrapOut
)

// StepKind discriminates the concrete operation a route step performs.
type StepKind int

const (
	// StepSwap is a pool swap.
	StepSwap StepKind = iota
	// StepVaultDeposit converts a vault underlying into the wrapped asset.
	StepVaultDeposit
	// StepVaultRedeem converts the wrapped asset back into a vault underlying.
	StepVaultRedeem
	// StepNativeWrap converts native value into the wrapped native token.
	StepNativeWrap
	// StepNativeUnwrap converts the wrapped native token back into native value.
	StepNativeUnwrap
)

// String returns the string representation of the step kind.
func (k StepKind) String() string {
	switch k {
	case StepSwap:
		return "swap"
	case StepVaultDeposit:
		return "vault_deposit"
	case StepVaultRedeem:
		return "vault_redeem"
	case StepNativeWrap:
		return "native_wrap"
	case StepNativeUnwrap:
		return "native_unwrap"
	default:
		return "unknown"
	}
}

// RoutableStep is one executable leg of a compiled route. A step is either a
// pool swap or a wrap boundary conversion. Quote methods are read-only and
// must mirror Execute bit-for-bit on unchanged state.
type RoutableStep interface {
	GetKind() StepKind

	GetTokenInDenom() string
	GetTokenOutDenom() string

	// CalculateTokenOutByTokenIn projects the step output for the given input
	// without moving funds.
	CalculateTokenOutByTokenIn(ctx context.Context, tokenIn sdk.Coin) (sdk.Coin, error)

	// CalculateTokenInByTokenOut projects the input required for the given
	// output without moving funds.
	CalculateTokenInByTokenOut(ctx context.Context, tokenOut sdk.Coin) (sdk.Coin, error)

	// Execute performs the step, pulling tokenIn from the from account and
	// crediting the output to the to account.
	Execute(ctx context.Context, tokenIn sdk.Coin, from, to string) (sdk.Coin, error)

	String() string
}
