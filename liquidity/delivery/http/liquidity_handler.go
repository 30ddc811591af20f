package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dudesahn/wBLTRouter/domain"
	"github.com/dudesahn/wBLTRouter/domain/mvc"
	"github.com/dudesahn/wBLTRouter/log"
	"github.com/dudesahn/wBLTRouter/router/types"
)

// LiquidityHandler represent the httphandler for liquidity quoting
type LiquidityHandler struct {
	LUsecase mvc.LiquidityUsecase
	logger   log.Logger
}

const liquidityResource = "/liquidity"

func formatLiquidityResource(resource string) string {
	return liquidityResource + resource
}

// NewLiquidityHandler will initialize the liquidity/ resources endpoint
func NewLiquidityHandler(e *echo.Echo, us mvc.LiquidityUsecase, logger log.Logger) {
	handler := &LiquidityHandler{
		LUsecase: us,
		logger:   logger,
	}
	e.GET(formatLiquidityResource("/quote-add"), handler.QuoteAddLiquidityUnderlying)
	e.GET(formatLiquidityResource("/quote-remove"), handler.QuoteRemoveLiquidityUnderlying)
}

// @Summary Add Liquidity Quote
// @Description projects a proportional deposit into the (denomA, denomB) pool. DenomA may be a vault underlying; it is converted to the wrapped denom held by the pool before matching the reserve ratio.
// @ID quote-add-liquidity
// @Produce  json
// @Param  denomA  query  string  true  "The caller-presented denom of the first side."
// @Param  denomB  query  string  true  "The denom of the second side."
// @Param  amountA  query  string  true  "Desired amount of the first side."
// @Param  amountB  query  string  true  "Desired amount of the second side."
// @Success 200  {object}  domain.AddLiquidityQuote  "The projected deposit"
// @Router /liquidity/quote-add [get]
func (a *LiquidityHandler) QuoteAddLiquidityUnderlying(c echo.Context) error {
	ctx := c.Request().Context()

	denomA := c.QueryParam("denomA")
	denomB := c.QueryParam("denomB")
	if denomA == "" || denomB == "" {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: types.ErrDenomPairNotSpecified.Error()})
	}

	amountA, err := types.ParseAmount(c.QueryParam("amountA"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	amountB, err := types.ParseAmount(c.QueryParam("amountB"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	quote, err := a.LUsecase.QuoteAddLiquidityUnderlying(ctx, denomA, denomB, amountA, amountB)
	if err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, quote)
}

// @Summary Remove Liquidity Quote
// @Description projects the proportional reserves for burning the liquidity amount, converting the wrapped side back to underlying denomA.
// @ID quote-remove-liquidity
// @Produce  json
// @Param  denomA  query  string  true  "The caller-presented denom of the first side."
// @Param  denomB  query  string  true  "The denom of the second side."
// @Param  liquidity  query  string  true  "The LP amount to burn."
// @Success 200  {object}  domain.RemoveLiquidityQuote  "The projected withdrawal"
// @Router /liquidity/quote-remove [get]
func (a *LiquidityHandler) QuoteRemoveLiquidityUnderlying(c echo.Context) error {
	ctx := c.Request().Context()

	denomA := c.QueryParam("denomA")
	denomB := c.QueryParam("denomB")
	if denomA == "" || denomB == "" {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: types.ErrDenomPairNotSpecified.Error()})
	}

	liquidity, err := types.ParseAmount(c.QueryParam("liquidity"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: types.ErrLiquidityNotValid.Error()})
	}

	quote, err := a.LUsecase.QuoteRemoveLiquidityUnderlying(ctx, denomA, denomB, liquidity)
	if err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, quote)
}
