package http

import (
	"net/http"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/labstack/echo/v4"

	"github.com/dudesahn/wBLTRouter/domain"
	"github.com/dudesahn/wBLTRouter/domain/mvc"
	"github.com/dudesahn/wBLTRouter/log"
	"github.com/dudesahn/wBLTRouter/router/types"
)

// OptionsHandler represent the httphandler for option exercise quoting
type OptionsHandler struct {
	OUsecase mvc.OptionsUsecase
	logger   log.Logger
}

const optionsResource = "/options"

func formatOptionsResource(resource string) string {
	return optionsResource + resource
}

// NewOptionsHandler will initialize the options/ resources endpoint
func NewOptionsHandler(e *echo.Echo, us mvc.OptionsUsecase, logger log.Logger) {
	handler := &OptionsHandler{
		OUsecase: us,
		logger:   logger,
	}
	e.GET(formatOptionsResource("/quote-exercise-lp"), handler.QuoteTokenNeededToExerciseLp)
}

// QuoteExerciseLpResponse carries the padded and exact payment requirement.
type QuoteExerciseLpResponse struct {
	Gross sdk.Coin `json:"gross"`
	Net   sdk.Coin `json:"net"`
}

// @Summary Option Exercise Quote
// @Description returns the payment-token cost of exercising the given option amount into a staked liquidity position. net is the exact requirement at current rates; gross pads it with the configured safety margin.
// @ID quote-exercise-lp
// @Produce  json
// @Param  paymentDenom  query  string  true  "The denom the exercise is paid with."
// @Param  exerciseAmount  query  string  true  "The option amount to exercise."
// @Param  discount  query  int  true  "The discount percent."
// @Success 200  {object}  QuoteExerciseLpResponse  "The payment requirement"
// @Router /options/quote-exercise-lp [get]
func (a *OptionsHandler) QuoteTokenNeededToExerciseLp(c echo.Context) error {
	ctx := c.Request().Context()

	paymentDenom := c.QueryParam("paymentDenom")
	if paymentDenom == "" {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: types.ErrPaymentDenomNotSpecified.Error()})
	}

	exerciseAmount, err := types.ParseAmount(c.QueryParam("exerciseAmount"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: types.ErrExerciseAmountNotValid.Error()})
	}

	discount, err := strconv.ParseInt(c.QueryParam("discount"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: types.ErrDiscountNotValid.Error()})
	}

	gross, net, err := a.OUsecase.QuoteTokenNeededToExerciseLp(ctx, paymentDenom, exerciseAmount, discount)
	if err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, QuoteExerciseLpResponse{Gross: gross, Net: net})
}
