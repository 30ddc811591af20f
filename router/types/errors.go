package types

import "errors"

// Handler Errors
var (
	ErrTokenInNotValid          = errors.New("tokenIn is invalid - must be in the format amountDenom")
	ErrTokenOutNotValid         = errors.New("tokenOut is invalid - must be in the format amountDenom")
	ErrTokenInNotSpecified      = errors.New("tokenIn is required")
	ErrTokenOutNotSpecified     = errors.New("tokenOut is required")
	ErrRouteNotSpecified        = errors.New("route is required")
	ErrRouteNotValid            = errors.New("route is invalid - must be comma-separated denomIn:denomOut:curve hops where curve is volatile or stable")
	ErrAmountNotValid           = errors.New("amount must be a positive integer")
	ErrDenomNotSpecified        = errors.New("denom is required")
	ErrDenomPairNotSpecified    = errors.New("denomA and denomB are required")
	ErrLiquidityNotValid        = errors.New("liquidity must be a positive integer")
	ErrDiscountNotValid         = errors.New("discount must be an integer percent below the maximum")
	ErrExerciseAmountNotValid   = errors.New("exerciseAmount must be a positive integer")
	ErrPaymentDenomNotSpecified = errors.New("paymentDenom is required")
)
