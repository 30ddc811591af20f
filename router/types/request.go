package types

import (
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/labstack/echo/v4"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/dudesahn/wBLTRouter/domain"
)

const (
	curveVolatile = "volatile"
	curveStable   = "stable"
)

// ParseRoute parses the route query parameter: comma-separated hops, each
// hop in the form denomIn:denomOut:curve with curve one of volatile or
// stable.
func ParseRoute(routeStr string) (domain.Route, error) {
	if routeStr == "" {
		return nil, ErrRouteNotSpecified
	}

	hopStrs := strings.Split(routeStr, ",")
	route := make(domain.Route, 0, len(hopStrs))
	for _, hopStr := range hopStrs {
		parts := strings.Split(hopStr, ":")
		if len(parts) != 3 {
			return nil, ErrRouteNotValid
		}

		var stable bool
		switch parts[2] {
		case curveVolatile:
			stable = false
		case curveStable:
			stable = true
		default:
			return nil, ErrRouteNotValid
		}

		route = append(route, domain.Hop{
			TokenInDenom:  parts[0],
			TokenOutDenom: parts[1],
			Stable:        stable,
		})
	}

	return route, nil
}

// ParseAmount parses a positive integer amount query parameter.
func ParseAmount(amountStr string) (osmomath.Int, error) {
	amount, ok := osmomath.NewIntFromString(amountStr)
	if !ok || !amount.IsPositive() {
		return osmomath.Int{}, ErrAmountNotValid
	}
	return amount, nil
}

// GetAmountsOutRequest represents a forward route simulation request for the
// /router/amounts-out endpoint.
type GetAmountsOutRequest struct {
	TokenIn *sdk.Coin
	Route   domain.Route
}

// UnmarshalHTTPRequest unmarshals the HTTP request to GetAmountsOutRequest.
func (r *GetAmountsOutRequest) UnmarshalHTTPRequest(c echo.Context) error {
	if tokenIn := c.QueryParam("tokenIn"); tokenIn != "" {
		tokenInCoin, err := sdk.ParseCoinNormalized(tokenIn)
		if err != nil {
			return ErrTokenInNotValid
		}
		r.TokenIn = &tokenInCoin
	}

	route, err := ParseRoute(c.QueryParam("route"))
	if err != nil {
		return err
	}
	r.Route = route

	return nil
}

// Validate validates the GetAmountsOutRequest.
func (r *GetAmountsOutRequest) Validate() error {
	if r.TokenIn == nil {
		return ErrTokenInNotSpecified
	}
	return r.Route.Validate()
}

// GetAmountsInRequest represents a reverse route simulation request for the
// /router/amounts-in endpoint.
type GetAmountsInRequest struct {
	TokenOut *sdk.Coin
	Route    domain.Route
}

// UnmarshalHTTPRequest unmarshals the HTTP request to GetAmountsInRequest.
func (r *GetAmountsInRequest) UnmarshalHTTPRequest(c echo.Context) error {
	if tokenOut := c.QueryParam("tokenOut"); tokenOut != "" {
		tokenOutCoin, err := sdk.ParseCoinNormalized(tokenOut)
		if err != nil {
			return ErrTokenOutNotValid
		}
		r.TokenOut = &tokenOutCoin
	}

	route, err := ParseRoute(c.QueryParam("route"))
	if err != nil {
		return err
	}
	r.Route = route

	return nil
}

// Validate validates the GetAmountsInRequest.
func (r *GetAmountsInRequest) Validate() error {
	if r.TokenOut == nil {
		return ErrTokenOutNotSpecified
	}
	return r.Route.Validate()
}
