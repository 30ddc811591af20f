package domain

import (
	"context"

	"github.com/osmosis-labs/osmosis/osmomath"
)

// MaxDiscount bounds the option discount percent. Valid discounts are in
// [0, MaxDiscount).
const MaxDiscount = 100

// OptionToken is the discounted option token whose exercise settles into a
// staked liquidity position. Exercise settlement itself is external; the
// router only quotes the payment and fronts the wrapped asset.
type OptionToken interface {
	// Denom returns the option token denom.
	Denom() string

	// PaymentDenom returns the denom the option is exercised with. This is
	// the wrapped asset.
	PaymentDenom() string

	// GetPaymentTokenAmountForExerciseLp returns the discounted payment owed
	// for exercising the given amount, and the additional payment matched
	// into the liquidity position.
	GetPaymentTokenAmountForExerciseLp(ctx context.Context, amount osmomath.Int, discount int64) (payment osmomath.Int, paymentToAddLiquidity osmomath.Int, err error)

	// ExerciseLp settles the exercise: burns amount of option tokens held by
	// holder, pulls at most maxPayment of the payment token from payer, mints
	// the liquidity position and stakes it to the gauge on behalf of
	// recipient. Returns the payment actually consumed.
	ExerciseLp(ctx context.Context, amount, maxPayment osmomath.Int, discount int64, holder, payer, recipient string) (osmomath.Int, error)
}
