package usecase_test

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/suite"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/dudesahn/wBLTRouter/domain"
	"github.com/dudesahn/wBLTRouter/router/usecase/routertesting"
)

type LiquidityUsecaseTestSuite struct {
	routertesting.RouterTestHelper
}

func TestLiquidityUsecaseTestSuite(t *testing.T) {
	suite.Run(t, new(LiquidityUsecaseTestSuite))
}

func (s *LiquidityUsecaseTestSuite) TestQuoteAddLiquidityUnderlying_DirectPair() {
	s.SetupDefaultEnvironment()

	// wblt/usdc reserves are even, so an even deposit binds fully.
	quote, err := s.LiquidityUsecase.QuoteAddLiquidityUnderlying(s.Ctx, routertesting.WBLT, routertesting.USDC, osmomath.NewInt(10_000_000), osmomath.NewInt(10_000_000))
	s.Require().NoError(err)

	s.Require().Equal(osmomath.NewInt(10_000_000), quote.AmountA.Amount)
	s.Require().Equal(quote.AmountA, quote.AmountAWrapped)
	s.Require().Equal(osmomath.NewInt(10_000_000), quote.AmountB.Amount)
	s.Require().True(quote.Liquidity.IsPositive())

	// An excess B side is trimmed to the reserve ratio.
	trimmed, err := s.LiquidityUsecase.QuoteAddLiquidityUnderlying(s.Ctx, routertesting.WBLT, routertesting.USDC, osmomath.NewInt(10_000_000), osmomath.NewInt(25_000_000))
	s.Require().NoError(err)
	s.Require().Equal(osmomath.NewInt(10_000_000), trimmed.AmountB.Amount)
}

// TestQuoteAddLiquidityUnderlying_WrappedSide presents the vault base asset
// for a pool that holds the wrapped asset: the quote converts it at the
// vault rate before matching the reserve ratio.
func (s *LiquidityUsecaseTestSuite) TestQuoteAddLiquidityUnderlying_WrappedSide() {
	s.SetupDefaultEnvironment()

	// Rate is one, so the wrapped projection equals the presented amount.
	quote, err := s.LiquidityUsecase.QuoteAddLiquidityUnderlying(s.Ctx, routertesting.BLT, routertesting.WETH, osmomath.NewInt(25_000_000), osmomath.NewInt(10_000))
	s.Require().NoError(err)

	s.Require().Equal(routertesting.BLT, quote.AmountA.Denom)
	s.Require().Equal(routertesting.WBLT, quote.AmountAWrapped.Denom)
	s.Require().Equal(quote.AmountA.Amount, quote.AmountAWrapped.Amount)

	// Reserve ratio is 2500 wblt per weth.
	s.Require().Equal(osmomath.NewInt(10_000), quote.AmountB.Amount)
	s.Require().Equal(osmomath.NewInt(25_000_000), quote.AmountAWrapped.Amount)

	_, err = s.LiquidityUsecase.QuoteAddLiquidityUnderlying(s.Ctx, routertesting.USDT, routertesting.WETH, osmomath.NewInt(1_000), osmomath.NewInt(1_000))
	s.Require().ErrorAs(err, &domain.PoolNotFoundError{})
}

func (s *LiquidityUsecaseTestSuite) TestAddRemoveLiquidity_DirectPair() {
	s.SetupDefaultEnvironment()

	s.MintTo(routertesting.Alice, sdk.NewCoin(routertesting.WBLT, osmomath.NewInt(10_000_000)))
	s.MintTo(routertesting.Alice, sdk.NewCoin(routertesting.USDC, osmomath.NewInt(10_000_000)))

	result, err := s.LiquidityUsecase.AddLiquidity(s.Ctx,
		routertesting.WBLT, osmomath.NewInt(10_000_000),
		routertesting.USDC, osmomath.NewInt(10_000_000),
		osmomath.NewInt(9_000_000), osmomath.NewInt(9_000_000),
		routertesting.Alice, routertesting.Alice, s.FutureDeadline())
	s.Require().NoError(err)
	s.Require().True(result.Liquidity.IsPositive())

	pool, ok := s.PoolRepository.GetPoolByDenoms(routertesting.WBLT, routertesting.USDC, false)
	s.Require().True(ok)
	s.Require().Equal(result.Liquidity, s.Bank.BalanceOf(s.Ctx, routertesting.Alice, pool.GetLPDenom()))
	s.Require().True(s.Bank.BalanceOf(s.Ctx, routertesting.Router, routertesting.WBLT).IsZero())

	// Burn it all back and receive the proportional reserves.
	removed, err := s.LiquidityUsecase.RemoveLiquidity(s.Ctx,
		routertesting.WBLT, routertesting.USDC,
		result.Liquidity, osmomath.OneInt(), osmomath.OneInt(),
		routertesting.Alice, routertesting.Bob, s.FutureDeadline())
	s.Require().NoError(err)

	s.Require().Equal(removed.AmountA.Amount, s.Bank.BalanceOf(s.Ctx, routertesting.Bob, routertesting.WBLT))
	s.Require().Equal(removed.AmountB.Amount, s.Bank.BalanceOf(s.Ctx, routertesting.Bob, routertesting.USDC))
	s.Require().True(s.Bank.BalanceOf(s.Ctx, routertesting.Alice, pool.GetLPDenom()).IsZero())
}

// TestAddLiquidity_WrappedSide deposits the vault base asset into a wrapped
// pool: the underlying is wrapped en route and the router ends flat.
func (s *LiquidityUsecaseTestSuite) TestAddLiquidity_WrappedSide() {
	s.SetupDefaultEnvironment()

	s.MintTo(routertesting.Alice, sdk.NewCoin(routertesting.BLT, osmomath.NewInt(25_000_000)))
	s.MintTo(routertesting.Alice, sdk.NewCoin(routertesting.WETH, osmomath.NewInt(10_000)))

	result, err := s.LiquidityUsecase.AddLiquidity(s.Ctx,
		routertesting.BLT, osmomath.NewInt(25_000_000),
		routertesting.WETH, osmomath.NewInt(10_000),
		osmomath.OneInt(), osmomath.OneInt(),
		routertesting.Alice, routertesting.Alice, s.FutureDeadline())
	s.Require().NoError(err)
	s.Require().True(result.Liquidity.IsPositive())

	for _, denom := range []string{routertesting.BLT, routertesting.WBLT, routertesting.WETH} {
		s.Require().True(s.Bank.BalanceOf(s.Ctx, routertesting.Router, denom).IsZero(), "router retained %s", denom)
	}
}

// TestAddLiquidity_SlippageRollback asserts that a per-side minimum violation
// aborts the addition with no balance changes.
func (s *LiquidityUsecaseTestSuite) TestAddLiquidity_SlippageRollback() {
	s.SetupDefaultEnvironment()

	s.MintTo(routertesting.Alice, sdk.NewCoin(routertesting.WBLT, osmomath.NewInt(10_000_000)))
	s.MintTo(routertesting.Alice, sdk.NewCoin(routertesting.USDC, osmomath.NewInt(25_000_000)))

	// The B side gets trimmed to 10M by the reserve ratio, below the 20M min.
	_, err := s.LiquidityUsecase.AddLiquidity(s.Ctx,
		routertesting.WBLT, osmomath.NewInt(10_000_000),
		routertesting.USDC, osmomath.NewInt(25_000_000),
		osmomath.OneInt(), osmomath.NewInt(20_000_000),
		routertesting.Alice, routertesting.Alice, s.FutureDeadline())
	s.Require().ErrorAs(err, &domain.SlippageExceededError{})

	s.Require().Equal(osmomath.NewInt(10_000_000), s.Bank.BalanceOf(s.Ctx, routertesting.Alice, routertesting.WBLT))
	s.Require().Equal(osmomath.NewInt(25_000_000), s.Bank.BalanceOf(s.Ctx, routertesting.Alice, routertesting.USDC))
}

func (s *LiquidityUsecaseTestSuite) TestAddLiquidity_DeadlineExpired() {
	s.SetupDefaultEnvironment()

	_, err := s.LiquidityUsecase.AddLiquidity(s.Ctx,
		routertesting.WBLT, osmomath.NewInt(1_000),
		routertesting.USDC, osmomath.NewInt(1_000),
		osmomath.OneInt(), osmomath.OneInt(),
		routertesting.Alice, routertesting.Alice, s.PastDeadline())
	s.Require().ErrorAs(err, &domain.DeadlineExceededError{})
}

func (s *LiquidityUsecaseTestSuite) TestQuoteRemoveLiquidityUnderlying() {
	s.SetupDefaultEnvironment()

	pool, ok := s.PoolRepository.GetPoolByDenoms(routertesting.WBLT, routertesting.WETH, false)
	s.Require().True(ok)
	supply, err := pool.GetTotalSupply(s.Ctx)
	s.Require().NoError(err)

	// A tenth of the supply projects a tenth of both reserves, the wrapped
	// side redeemed to base assets at rate one.
	quote, err := s.LiquidityUsecase.QuoteRemoveLiquidityUnderlying(s.Ctx, routertesting.BLT, routertesting.WETH, supply.QuoRaw(10))
	s.Require().NoError(err)

	s.Require().Equal(routertesting.BLT, quote.AmountA.Denom)
	s.Require().Equal(osmomath.NewInt(250_000_000), quote.AmountA.Amount)
	s.Require().Equal(osmomath.NewInt(100_000), quote.AmountB.Amount)
}

func (s *LiquidityUsecaseTestSuite) TestAddRemoveLiquidityETH() {
	s.SetupDefaultEnvironment()

	s.MintTo(routertesting.Alice, sdk.NewCoin(routertesting.ETH, osmomath.NewInt(10_000)))
	s.MintTo(routertesting.Alice, sdk.NewCoin(routertesting.WBLT, osmomath.NewInt(25_000_000)))

	result, err := s.LiquidityUsecase.AddLiquidityETH(s.Ctx,
		osmomath.NewInt(10_000),
		routertesting.WBLT, osmomath.NewInt(25_000_000),
		osmomath.OneInt(), osmomath.OneInt(),
		routertesting.Alice, routertesting.Alice, s.FutureDeadline())
	s.Require().NoError(err)
	s.Require().True(result.Liquidity.IsPositive())

	// The wrap leg consumed the native side in full.
	s.Require().True(s.Bank.BalanceOf(s.Ctx, routertesting.Alice, routertesting.ETH).IsZero())

	removed, err := s.LiquidityUsecase.RemoveLiquidityETH(s.Ctx,
		routertesting.WBLT, result.Liquidity,
		osmomath.OneInt(), osmomath.OneInt(),
		routertesting.Alice, routertesting.Bob, s.FutureDeadline())
	s.Require().NoError(err)

	s.Require().Equal(routertesting.ETH, removed.AmountA.Denom)
	s.Require().Equal(removed.AmountA.Amount, s.Bank.BalanceOf(s.Ctx, routertesting.Bob, routertesting.ETH))
	s.Require().Equal(removed.AmountB.Amount, s.Bank.BalanceOf(s.Ctx, routertesting.Bob, routertesting.WBLT))
}
