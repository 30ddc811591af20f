package usecase_test

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/suite"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/dudesahn/wBLTRouter/domain"
	"github.com/dudesahn/wBLTRouter/router/usecase/routertesting"
)

type RouterUsecaseTestSuite struct {
	routertesting.RouterTestHelper
}

func TestRouterUsecaseTestSuite(t *testing.T) {
	suite.Run(t, new(RouterUsecaseTestSuite))
}

var (
	usdcToWethRoute = domain.Route{
		{TokenInDenom: routertesting.USDC, TokenOutDenom: routertesting.WBLT},
		{TokenInDenom: routertesting.WBLT, TokenOutDenom: routertesting.WETH},
	}
)

func (s *RouterUsecaseTestSuite) TestGetAmountsOut() {
	s.SetupDefaultEnvironment()

	tokenIn := sdk.NewCoin(routertesting.USDC, osmomath.NewInt(50_000_000))

	amounts, err := s.RouterUsecase.GetAmountsOut(s.Ctx, tokenIn, usdcToWethRoute)
	s.Require().NoError(err)
	s.Require().Len(amounts, 3)
	s.Require().Equal(tokenIn.Amount, amounts[0])
	s.Require().True(amounts[2].IsPositive())
}

func (s *RouterUsecaseTestSuite) TestGetAmountsOut_Errors() {
	s.SetupDefaultEnvironment()

	// Token in does not match the route entry.
	_, err := s.RouterUsecase.GetAmountsOut(s.Ctx, sdk.NewCoin(routertesting.WETH, osmomath.NewInt(1_000)), usdcToWethRoute)
	s.Require().ErrorAs(err, &domain.InvalidRouteError{})

	// Route exceeds the configured hop cap.
	tooLong := domain.Route{
		{TokenInDenom: routertesting.USDC, TokenOutDenom: routertesting.WBLT},
		{TokenInDenom: routertesting.WBLT, TokenOutDenom: routertesting.WETH},
		{TokenInDenom: routertesting.WETH, TokenOutDenom: routertesting.USDC},
		{TokenInDenom: routertesting.USDC, TokenOutDenom: routertesting.WBLT},
		{TokenInDenom: routertesting.WBLT, TokenOutDenom: routertesting.WETH},
	}
	_, err = s.RouterUsecase.GetAmountsOut(s.Ctx, sdk.NewCoin(routertesting.USDC, osmomath.NewInt(1_000)), tooLong)
	s.Require().ErrorAs(err, &domain.InvalidRouteError{})
}

// TestGetAmountsOut_Monotonicity asserts that a strictly larger input never
// produces a smaller output on the same state.
func (s *RouterUsecaseTestSuite) TestGetAmountsOut_Monotonicity() {
	s.SetupDefaultEnvironment()

	previous := osmomath.ZeroInt()
	for _, amountIn := range []int64{1_000, 10_000, 1_000_000, 50_000_000, 500_000_000} {
		amounts, err := s.RouterUsecase.GetAmountsOut(s.Ctx, sdk.NewCoin(routertesting.USDC, osmomath.NewInt(amountIn)), usdcToWethRoute)
		s.Require().NoError(err)

		out := amounts[len(amounts)-1]
		s.Require().True(out.GTE(previous), "output %s for input %d below output %s for smaller input", out, amountIn, previous)
		previous = out
	}
}

func (s *RouterUsecaseTestSuite) TestGetAmountsIn() {
	s.SetupDefaultEnvironment()

	tokenOut := sdk.NewCoin(routertesting.WETH, osmomath.NewInt(10_000))

	amounts, err := s.RouterUsecase.GetAmountsIn(s.Ctx, tokenOut, usdcToWethRoute)
	s.Require().NoError(err)
	s.Require().Len(amounts, 3)
	s.Require().Equal(tokenOut.Amount, amounts[2])

	// Feeding the projected input forward covers the requested output.
	forward, err := s.RouterUsecase.GetAmountsOut(s.Ctx, sdk.NewCoin(routertesting.USDC, amounts[0]), usdcToWethRoute)
	s.Require().NoError(err)
	s.Require().True(forward[2].GTE(tokenOut.Amount))

	// Token out must match the route exit.
	_, err = s.RouterUsecase.GetAmountsIn(s.Ctx, sdk.NewCoin(routertesting.USDC, osmomath.NewInt(1_000)), usdcToWethRoute)
	s.Require().ErrorAs(err, &domain.InvalidRouteError{})
}

// TestQuoteExecuteParity asserts that executing a route realizes exactly the
// amounts the quote projected on the same state.
func (s *RouterUsecaseTestSuite) TestQuoteExecuteParity() {
	s.SetupDefaultEnvironment()

	tokenIn := sdk.NewCoin(routertesting.USDC, osmomath.NewInt(50_000_000))
	s.MintTo(routertesting.Alice, tokenIn)

	amounts, err := s.RouterUsecase.GetAmountsOut(s.Ctx, tokenIn, usdcToWethRoute)
	s.Require().NoError(err)
	quoted := amounts[len(amounts)-1]

	tokenOut, err := s.RouterUsecase.SwapExactTokensForTokens(s.Ctx, tokenIn, osmomath.ZeroInt(), usdcToWethRoute, routertesting.Alice, routertesting.Bob, s.FutureDeadline())
	s.Require().NoError(err)
	s.Require().Equal(quoted, tokenOut.Amount)
}
