package usecase_test

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/suite"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/dudesahn/wBLTRouter/domain"
	"github.com/dudesahn/wBLTRouter/router/usecase/routertesting"
)

type OptionsUsecaseTestSuite struct {
	routertesting.RouterTestHelper
}

func TestOptionsUsecaseTestSuite(t *testing.T) {
	suite.Run(t, new(OptionsUsecaseTestSuite))
}

// TestQuoteTokenNeededToExerciseLp checks the headline quote in the payment
// token itself. The strike is one payment token per option unit, so at a 25%
// discount the holder owes 750 plus the full 1000 liquidity match, and the
// gross adds the 1% safety margin on top.
func (s *OptionsUsecaseTestSuite) TestQuoteTokenNeededToExerciseLp() {
	s.SetupDefaultEnvironment()

	gross, net, err := s.OptionsUsecase.QuoteTokenNeededToExerciseLp(s.Ctx, routertesting.WBLT, osmomath.NewInt(1000), 25)
	s.Require().NoError(err)

	s.Require().Equal(sdk.NewCoin(routertesting.WBLT, osmomath.NewInt(1750)), net)
	s.Require().Equal(sdk.NewCoin(routertesting.WBLT, osmomath.NewInt(1768)), gross)
}

// TestQuoteTokenNeededToExerciseLp_Underlying quotes in a vault-supported
// asset instead of the payment token. The vault rate is one and usdc is
// priced at one, so the underlying amounts match the wrapped ones.
func (s *OptionsUsecaseTestSuite) TestQuoteTokenNeededToExerciseLp_Underlying() {
	s.SetupDefaultEnvironment()

	gross, net, err := s.OptionsUsecase.QuoteTokenNeededToExerciseLp(s.Ctx, routertesting.USDC, osmomath.NewInt(1000), 25)
	s.Require().NoError(err)

	s.Require().Equal(sdk.NewCoin(routertesting.USDC, osmomath.NewInt(1750)), net)
	s.Require().Equal(sdk.NewCoin(routertesting.USDC, osmomath.NewInt(1768)), gross)
}

func (s *OptionsUsecaseTestSuite) TestQuoteTokenNeededToExerciseLp_Errors() {
	s.SetupDefaultEnvironment()

	_, _, err := s.OptionsUsecase.QuoteTokenNeededToExerciseLp(s.Ctx, routertesting.USDT, osmomath.NewInt(1000), 25)
	s.Require().ErrorAs(err, &domain.UnsupportedDenomError{})

	_, _, err = s.OptionsUsecase.QuoteTokenNeededToExerciseLp(s.Ctx, routertesting.WBLT, osmomath.NewInt(1000), 100)
	s.Require().ErrorAs(err, &domain.InvalidDiscountError{})
}

// TestExerciseLpWithUnderlying pays in the payment token directly, with a
// surplus over the required amount. The surplus comes back, the options are
// burned, and the staked receipt lands with the holder.
func (s *OptionsUsecaseTestSuite) TestExerciseLpWithUnderlying() {
	s.SetupDefaultEnvironment()

	s.Fund(routertesting.Alice, sdk.NewCoin(routertesting.WBLT, osmomath.NewInt(1768)))
	s.MintTo(routertesting.Alice, sdk.NewCoin(routertesting.OBLT, osmomath.NewInt(1000)))

	result, err := s.OptionsUsecase.ExerciseLpWithUnderlying(s.Ctx, sdk.NewCoin(routertesting.WBLT, osmomath.NewInt(1768)), osmomath.NewInt(1000), 25, routertesting.Alice, s.FutureDeadline())
	s.Require().NoError(err)

	s.Require().Equal(sdk.NewCoin(routertesting.WBLT, osmomath.NewInt(1750)), result.PaymentUsed)
	s.Require().Equal(sdk.NewCoin(routertesting.WBLT, osmomath.NewInt(18)), result.Refunded)

	s.Require().Equal(osmomath.NewInt(18), s.Bank.BalanceOf(s.Ctx, routertesting.Alice, routertesting.WBLT))
	s.Require().True(s.Bank.BalanceOf(s.Ctx, routertesting.Alice, routertesting.OBLT).IsZero())
	s.Require().Equal(osmomath.NewInt(1000), s.Bank.BalanceOf(s.Ctx, routertesting.Alice, routertesting.Gauge))

	s.Require().True(s.Bank.BalanceOf(s.Ctx, routertesting.Router, routertesting.WBLT).IsZero())
}

// TestExerciseLpWithUnderlying_VaultDeposit pays in usdc. The payment is
// wrapped through the vault before settlement and the refund is paid out in
// the wrapped asset.
func (s *OptionsUsecaseTestSuite) TestExerciseLpWithUnderlying_VaultDeposit() {
	s.SetupDefaultEnvironment()

	s.MintTo(routertesting.Alice, sdk.NewCoin(routertesting.USDC, osmomath.NewInt(1800)))
	s.MintTo(routertesting.Alice, sdk.NewCoin(routertesting.OBLT, osmomath.NewInt(1000)))

	result, err := s.OptionsUsecase.ExerciseLpWithUnderlying(s.Ctx, sdk.NewCoin(routertesting.USDC, osmomath.NewInt(1800)), osmomath.NewInt(1000), 25, routertesting.Alice, s.FutureDeadline())
	s.Require().NoError(err)

	s.Require().Equal(osmomath.NewInt(1750), result.PaymentUsed.Amount)
	s.Require().Equal(sdk.NewCoin(routertesting.WBLT, osmomath.NewInt(50)), result.Refunded)

	s.Require().True(s.Bank.BalanceOf(s.Ctx, routertesting.Alice, routertesting.USDC).IsZero())
	s.Require().Equal(osmomath.NewInt(50), s.Bank.BalanceOf(s.Ctx, routertesting.Alice, routertesting.WBLT))
	s.Require().Equal(osmomath.NewInt(1000), s.Bank.BalanceOf(s.Ctx, routertesting.Alice, routertesting.Gauge))

	for _, denom := range []string{routertesting.USDC, routertesting.WBLT} {
		s.Require().True(s.Bank.BalanceOf(s.Ctx, routertesting.Router, denom).IsZero())
	}
}

// TestExerciseLpWithUnderlying_InsufficientPayment rolls the whole exercise
// back when the payment does not cover the discounted strike plus the
// liquidity match.
func (s *OptionsUsecaseTestSuite) TestExerciseLpWithUnderlying_InsufficientPayment() {
	s.SetupDefaultEnvironment()

	s.Fund(routertesting.Alice, sdk.NewCoin(routertesting.WBLT, osmomath.NewInt(1000)))
	s.MintTo(routertesting.Alice, sdk.NewCoin(routertesting.OBLT, osmomath.NewInt(1000)))

	_, err := s.OptionsUsecase.ExerciseLpWithUnderlying(s.Ctx, sdk.NewCoin(routertesting.WBLT, osmomath.NewInt(1000)), osmomath.NewInt(1000), 25, routertesting.Alice, s.FutureDeadline())
	s.Require().ErrorAs(err, &domain.InsufficientPaymentError{})

	s.Require().Equal(osmomath.NewInt(1000), s.Bank.BalanceOf(s.Ctx, routertesting.Alice, routertesting.WBLT))
	s.Require().Equal(osmomath.NewInt(1000), s.Bank.BalanceOf(s.Ctx, routertesting.Alice, routertesting.OBLT))
	s.Require().True(s.Bank.BalanceOf(s.Ctx, routertesting.Alice, routertesting.Gauge).IsZero())
}

func (s *OptionsUsecaseTestSuite) TestExerciseLpWithUnderlying_Errors() {
	s.SetupDefaultEnvironment()

	_, err := s.OptionsUsecase.ExerciseLpWithUnderlying(s.Ctx, sdk.NewCoin(routertesting.USDT, osmomath.NewInt(1000)), osmomath.NewInt(1000), 25, routertesting.Alice, s.FutureDeadline())
	s.Require().ErrorAs(err, &domain.UnsupportedDenomError{})

	_, err = s.OptionsUsecase.ExerciseLpWithUnderlying(s.Ctx, sdk.NewCoin(routertesting.WBLT, osmomath.NewInt(1000)), osmomath.NewInt(1000), 25, routertesting.Alice, s.PastDeadline())
	s.Require().ErrorAs(err, &domain.DeadlineExceededError{})
}

// TestExerciseLpWithUnderlyingETH wraps native coin first. One eth wraps to
// one weth, which the vault values at 2500 base units, comfortably covering
// the 1750 owed. The surplus is refunded in the wrapped asset.
func (s *OptionsUsecaseTestSuite) TestExerciseLpWithUnderlyingETH() {
	s.SetupDefaultEnvironment()

	s.MintTo(routertesting.Alice, sdk.NewCoin(routertesting.ETH, osmomath.NewInt(1)))
	s.MintTo(routertesting.Alice, sdk.NewCoin(routertesting.OBLT, osmomath.NewInt(1000)))

	result, err := s.OptionsUsecase.ExerciseLpWithUnderlyingETH(s.Ctx, osmomath.NewInt(1), osmomath.NewInt(1000), 25, routertesting.Alice, s.FutureDeadline())
	s.Require().NoError(err)

	s.Require().Equal(osmomath.NewInt(1750), result.PaymentUsed.Amount)
	s.Require().Equal(sdk.NewCoin(routertesting.WBLT, osmomath.NewInt(750)), result.Refunded)

	s.Require().True(s.Bank.BalanceOf(s.Ctx, routertesting.Alice, routertesting.ETH).IsZero())
	s.Require().True(s.Bank.BalanceOf(s.Ctx, routertesting.Alice, routertesting.WETH).IsZero())
	s.Require().Equal(osmomath.NewInt(750), s.Bank.BalanceOf(s.Ctx, routertesting.Alice, routertesting.WBLT))
	s.Require().Equal(osmomath.NewInt(1000), s.Bank.BalanceOf(s.Ctx, routertesting.Alice, routertesting.Gauge))
}
