package http

import (
	"net/http"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/labstack/echo/v4"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/dudesahn/wBLTRouter/domain"
	"github.com/dudesahn/wBLTRouter/domain/mvc"
	"github.com/dudesahn/wBLTRouter/log"
	"github.com/dudesahn/wBLTRouter/router/types"
)

// RouterHandler represent the httphandler for the router
type RouterHandler struct {
	RUsecase mvc.RouterUsecase
	logger   log.Logger
}

const routerResource = "/router"

func formatRouterResource(resource string) string {
	return routerResource + resource
}

// NewRouterHandler will initialize the router/ resources endpoint
func NewRouterHandler(e *echo.Echo, us mvc.RouterUsecase, logger log.Logger) {
	handler := &RouterHandler{
		RUsecase: us,
		logger:   logger,
	}
	e.GET(formatRouterResource("/amounts-out"), handler.GetAmountsOut)
	e.GET(formatRouterResource("/amounts-in"), handler.GetAmountsIn)
	e.GET(formatRouterResource("/mint-amount"), handler.GetMintAmountWrappedBLT)
	e.GET(formatRouterResource("/quote-mint"), handler.QuoteMintAmountBLT)
}

// GetAmountsResponse carries the per-boundary amounts of a route simulation.
type GetAmountsResponse struct {
	Amounts []osmomath.Int `json:"amounts"`
}

// @Summary Forward Route Simulation
// @Description simulates the route for the given exact input, returning one amount per hop boundary. The first element is the input amount.
// @ID get-amounts-out
// @Produce  json
// @Param  tokenIn  query  string  true  "String representation of the sdk.Coin for the token in."
// @Param  route  query  string  true  "Comma-separated hops, each denomIn:denomOut:curve with curve volatile or stable."
// @Success 200  {object}  GetAmountsResponse  "The simulated amounts"
// @Router /router/amounts-out [get]
func (a *RouterHandler) GetAmountsOut(c echo.Context) error {
	ctx := c.Request().Context()

	var req types.GetAmountsOutRequest
	if err := req.UnmarshalHTTPRequest(c); err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	if err := req.Validate(); err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	amounts, err := a.RUsecase.GetAmountsOut(ctx, *req.TokenIn, req.Route)
	if err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, GetAmountsResponse{Amounts: amounts})
}

// @Summary Reverse Route Simulation
// @Description simulates the route in reverse for the given exact output, returning one amount per hop boundary. The last element is the output amount.
// @ID get-amounts-in
// @Produce  json
// @Param  tokenOut  query  string  true  "String representation of the sdk.Coin for the token out."
// @Param  route  query  string  true  "Comma-separated hops, each denomIn:denomOut:curve with curve volatile or stable."
// @Success 200  {object}  GetAmountsResponse  "The simulated amounts"
// @Router /router/amounts-in [get]
func (a *RouterHandler) GetAmountsIn(c echo.Context) error {
	ctx := c.Request().Context()

	var req types.GetAmountsInRequest
	if err := req.UnmarshalHTTPRequest(c); err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	if err := req.Validate(); err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	amounts, err := a.RUsecase.GetAmountsIn(ctx, *req.TokenOut, req.Route)
	if err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, GetAmountsResponse{Amounts: amounts})
}

// GetMintAmountWrappedBLT previews the wrapped asset minted for depositing
// the given assets at the current vault rate.
func (a *RouterHandler) GetMintAmountWrappedBLT(c echo.Context) error {
	ctx := c.Request().Context()

	assetsStr := c.QueryParam("assets")
	if assetsStr == "" {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: types.ErrTokenInNotSpecified.Error()})
	}

	assets, err := sdk.ParseCoinNormalized(assetsStr)
	if err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: types.ErrTokenInNotValid.Error()})
	}

	minted, err := a.RUsecase.GetMintAmountWrappedBLT(ctx, assets)
	if err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, minted)
}

// QuoteMintAmountBLT previews the assets of the given denom needed to mint
// the target wrapped amount at the current vault rate.
func (a *RouterHandler) QuoteMintAmountBLT(c echo.Context) error {
	ctx := c.Request().Context()

	assetDenom := c.QueryParam("denom")
	if assetDenom == "" {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: types.ErrDenomNotSpecified.Error()})
	}

	target, err := types.ParseAmount(c.QueryParam("amount"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	needed, err := a.RUsecase.QuoteMintAmountBLT(ctx, assetDenom, target)
	if err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, needed)
}
