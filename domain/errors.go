package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given Param is not valid")
)

// GetStatusCode returns status code given error
func GetStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var (
		invalidRoute    InvalidRouteError
		poolNotFound    PoolNotFoundError
		deadlineErr     DeadlineExceededError
		insufficientOut InsufficientOutputError
		slippage        SlippageExceededError
		payment         InsufficientPaymentError
		unsupported     UnsupportedDenomError
		discount        InvalidDiscountError
	)

	switch {
	case errors.As(err, &invalidRoute), errors.As(err, &poolNotFound),
		errors.As(err, &unsupported), errors.As(err, &discount),
		errors.Is(err, ErrBadParamInput):
		return http.StatusBadRequest
	case errors.As(err, &deadlineErr):
		return http.StatusRequestTimeout
	case errors.As(err, &insufficientOut), errors.As(err, &slippage), errors.As(err, &payment):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

// InvalidRouteError is an error type for a structurally invalid route.
type InvalidRouteError struct {
	Reason string
}

func (e InvalidRouteError) Error() string {
	return "invalid route: " + e.Reason
}

// PoolNotFoundError is an error type for a hop referencing a nonexistent pool.
type PoolNotFoundError struct {
	Key PoolKey
}

func (e PoolNotFoundError) Error() string {
	return fmt.Sprintf("pool with key %s is not found", e.Key)
}

// DeadlineExceededError is an error type for a call submitted past its deadline.
type DeadlineExceededError struct {
	Deadline int64
	Now      int64
}

func (e DeadlineExceededError) Error() string {
	return fmt.Sprintf("deadline (%d) exceeded, current time (%d)", e.Deadline, e.Now)
}

// InsufficientOutputError is an error type for a realized swap output below
// the caller's minimum.
type InsufficientOutputError struct {
	MinAmount    string
	ActualAmount string
}

func (e InsufficientOutputError) Error() string {
	return fmt.Sprintf("insufficient output amount (%s), minimum required (%s)", e.ActualAmount, e.MinAmount)
}

// SlippageExceededError is an error type for a realized liquidity amount below
// the caller's per-side minimum.
type SlippageExceededError struct {
	Denom     string
	MinAmount string
	Amount    string
}

func (e SlippageExceededError) Error() string {
	return fmt.Sprintf("slippage exceeded for denom (%s): amount (%s) below minimum (%s)", e.Denom, e.Amount, e.MinAmount)
}

// InsufficientPaymentError is an error type for an exercise payment below the
// quoted requirement.
type InsufficientPaymentError struct {
	Needed   string
	Provided string
}

func (e InsufficientPaymentError) Error() string {
	return fmt.Sprintf("insufficient payment (%s), quoted requirement (%s)", e.Provided, e.Needed)
}

// TransferError is an error type for an underlying transfer that did not
// complete as required.
type TransferError struct {
	Denom string
	From  string
	To    string
}

func (e TransferError) Error() string {
	return fmt.Sprintf("transfer of denom (%s) from (%s) to (%s) failed", e.Denom, e.From, e.To)
}

// UnsupportedDenomError is an error type for a denom the wrapper vault cannot
// convert.
type UnsupportedDenomError struct {
	Denom string
}

func (e UnsupportedDenomError) Error() string {
	return fmt.Sprintf("denom (%s) is not supported by the wrapper vault", e.Denom)
}

// InvalidDiscountError is an error type for a discount percent outside [0, 100).
type InvalidDiscountError struct {
	Discount int64
}

func (e InvalidDiscountError) Error() string {
	return fmt.Sprintf("discount (%d) must be in [0, %d)", e.Discount, MaxDiscount)
}

// ResidualBalanceError is an error type for the router retaining balance after
// a call. This is an internal invariant violation and aborts the call.
type ResidualBalanceError struct {
	Denom   string
	Balance string
}

func (e ResidualBalanceError) Error() string {
	return fmt.Sprintf("router retained residual balance (%s) of denom (%s)", e.Balance, e.Denom)
}
