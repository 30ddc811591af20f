package mocks

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/dudesahn/wBLTRouter/domain"
)

var _ domain.OptionToken = &MockOptionToken{}

// MockOptionToken is an option token fake. The strike is a fixed amount of
// the payment token per option unit; exercise burns the options, pulls the
// discounted payment plus the liquidity match, and credits a staked gauge
// receipt to the recipient.
type MockOptionToken struct {
	Bank    *MockBank
	Address string

	denom        string
	paymentDenom string
	gaugeDenom   string

	// paymentPerToken is the undiscounted strike in payment token per option
	// unit.
	paymentPerToken osmomath.Dec
}

// NewMockOptionToken registers an option token fake over the bank.
func NewMockOptionToken(bank *MockBank, denom, paymentDenom, gaugeDenom string, paymentPerToken osmomath.Dec) *MockOptionToken {
	return &MockOptionToken{
		Bank:            bank,
		Address:         fmt.Sprintf("option-%s", denom),
		denom:           denom,
		paymentDenom:    paymentDenom,
		gaugeDenom:      gaugeDenom,
		paymentPerToken: paymentPerToken,
	}
}

// GaugeDenom returns the staked receipt denom credited on exercise.
func (o *MockOptionToken) GaugeDenom() string {
	return o.gaugeDenom
}

// Denom implements domain.OptionToken.
func (o *MockOptionToken) Denom() string {
	return o.denom
}

// PaymentDenom implements domain.OptionToken.
func (o *MockOptionToken) PaymentDenom() string {
	return o.paymentDenom
}

// GetPaymentTokenAmountForExerciseLp implements domain.OptionToken.
func (o *MockOptionToken) GetPaymentTokenAmountForExerciseLp(_ context.Context, amount osmomath.Int, discount int64) (osmomath.Int, osmomath.Int, error) {
	if discount < 0 || discount >= domain.MaxDiscount {
		return osmomath.Int{}, osmomath.Int{}, domain.InvalidDiscountError{Discount: discount}
	}

	strike := o.paymentPerToken.MulInt(amount)

	payment := strike.MulInt64(domain.MaxDiscount - discount).QuoInt64(domain.MaxDiscount).Ceil().TruncateInt()
	paymentToAddLiquidity := strike.Ceil().TruncateInt()

	return payment, paymentToAddLiquidity, nil
}

// ExerciseLp implements domain.OptionToken.
func (o *MockOptionToken) ExerciseLp(ctx context.Context, amount, maxPayment osmomath.Int, discount int64, holder, payer, recipient string) (osmomath.Int, error) {
	payment, paymentToAddLiquidity, err := o.GetPaymentTokenAmountForExerciseLp(ctx, amount, discount)
	if err != nil {
		return osmomath.Int{}, err
	}

	total := payment.Add(paymentToAddLiquidity)
	if total.GT(maxPayment) {
		return osmomath.Int{}, domain.InsufficientPaymentError{Needed: total.String(), Provided: maxPayment.String()}
	}

	if err := o.Bank.Send(ctx, payer, o.Address, sdk.NewCoin(o.paymentDenom, total)); err != nil {
		return osmomath.Int{}, err
	}

	o.Bank.BurnCoin(holder, sdk.NewCoin(o.denom, amount))
	o.Bank.MintCoin(recipient, sdk.NewCoin(o.gaugeDenom, amount))

	return total, nil
}
