package usecase_test

import (
	"testing"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/suite"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/dudesahn/wBLTRouter/domain"
	"github.com/dudesahn/wBLTRouter/router/usecase/routertesting"
)

type WrapperUsecaseTestSuite struct {
	routertesting.RouterTestHelper
}

func TestWrapperUsecaseTestSuite(t *testing.T) {
	suite.Run(t, new(WrapperUsecaseTestSuite))
}

// TestCompileRoute_StepKinds asserts the hop classification rules: a
// registered pool always serves its own pair, and only pairs without a pool
// compile to vault deposit/redeem legs across the wrapped-asset boundary.
func (s *WrapperUsecaseTestSuite) TestCompileRoute_StepKinds() {
	s.SetupDefaultEnvironment()

	testcases := []struct {
		name          string
		route         domain.Route
		expectedKinds []domain.StepKind
		expectedError bool
	}{
		{
			name: "pool swap",
			route: domain.Route{
				{TokenInDenom: routertesting.WBLT, TokenOutDenom: routertesting.WETH},
			},
			expectedKinds: []domain.StepKind{domain.StepSwap},
		},
		{
			name: "vault deposit leg",
			route: domain.Route{
				{TokenInDenom: routertesting.BLT, TokenOutDenom: routertesting.WBLT},
			},
			expectedKinds: []domain.StepKind{domain.StepVaultDeposit},
		},
		{
			name: "vault redeem leg",
			route: domain.Route{
				{TokenInDenom: routertesting.WBLT, TokenOutDenom: routertesting.BLT},
			},
			expectedKinds: []domain.StepKind{domain.StepVaultRedeem},
		},
		{
			name: "deposit then swap",
			route: domain.Route{
				{TokenInDenom: routertesting.BLT, TokenOutDenom: routertesting.WBLT},
				{TokenInDenom: routertesting.WBLT, TokenOutDenom: routertesting.WETH},
			},
			expectedKinds: []domain.StepKind{domain.StepVaultDeposit, domain.StepSwap},
		},
		{
			name: "swap ending in redeem to base",
			route: domain.Route{
				{TokenInDenom: routertesting.WETH, TokenOutDenom: routertesting.WBLT},
				{TokenInDenom: routertesting.WBLT, TokenOutDenom: routertesting.BLT},
			},
			expectedKinds: []domain.StepKind{domain.StepSwap, domain.StepVaultRedeem},
		},
		{
			name: "registered pool shadows the vault leg",
			route: domain.Route{
				// USDC is vault-supported, but the wblt/usdc pool exists and
				// must price its own pair.
				{TokenInDenom: routertesting.WBLT, TokenOutDenom: routertesting.USDC},
			},
			expectedKinds: []domain.StepKind{domain.StepSwap},
		},
		{
			name: "stable pool hop",
			route: domain.Route{
				{TokenInDenom: routertesting.USDC, TokenOutDenom: routertesting.USDT, Stable: true},
			},
			expectedKinds: []domain.StepKind{domain.StepSwap},
		},
		{
			name: "unknown pool",
			route: domain.Route{
				{TokenInDenom: routertesting.USDT, TokenOutDenom: routertesting.WETH},
			},
			expectedError: true,
		},
		{
			name: "wrong curve family",
			route: domain.Route{
				{TokenInDenom: routertesting.USDC, TokenOutDenom: routertesting.USDT, Stable: false},
			},
			expectedError: true,
		},
	}

	for _, tc := range testcases {
		s.Run(tc.name, func() {
			steps, err := s.WrapperUsecase.CompileRoute(s.Ctx, tc.route)

			if tc.expectedError {
				s.Require().Error(err)
				s.Require().ErrorAs(err, &domain.PoolNotFoundError{})
				return
			}

			s.Require().NoError(err)
			s.Require().Len(steps, len(tc.expectedKinds))
			for i, step := range steps {
				s.Require().Equal(tc.expectedKinds[i], step.GetKind(), "step %d", i)
			}
		})
	}
}

// TestCompileRoute_VaultFallback covers a vault-supported asset that no pool
// lists: the wrapped-asset hops fall back to vault legs in both directions.
func (s *WrapperUsecaseTestSuite) TestCompileRoute_VaultFallback() {
	s.SetupDefaultEnvironment()

	s.Vault.SetPrice(routertesting.USDT, osmomath.OneDec())

	steps, err := s.WrapperUsecase.CompileRoute(s.Ctx, domain.Route{
		{TokenInDenom: routertesting.USDT, TokenOutDenom: routertesting.WBLT},
		{TokenInDenom: routertesting.WBLT, TokenOutDenom: routertesting.WETH},
	})
	s.Require().NoError(err)
	s.Require().Len(steps, 2)
	s.Require().Equal(domain.StepVaultDeposit, steps[0].GetKind())
	s.Require().Equal(domain.StepSwap, steps[1].GetKind())

	back, err := s.WrapperUsecase.CompileRoute(s.Ctx, domain.Route{
		{TokenInDenom: routertesting.WBLT, TokenOutDenom: routertesting.USDT},
	})
	s.Require().NoError(err)
	s.Require().Equal(domain.StepVaultRedeem, back[0].GetKind())
}

func (s *WrapperUsecaseTestSuite) TestWithNativeEntryExit() {
	s.SetupDefaultEnvironment()

	steps, err := s.WrapperUsecase.CompileRoute(s.Ctx, domain.Route{
		{TokenInDenom: routertesting.WETH, TokenOutDenom: routertesting.WBLT},
	})
	s.Require().NoError(err)

	withEntry, err := s.WrapperUsecase.WithNativeEntry(steps)
	s.Require().NoError(err)
	s.Require().Len(withEntry, 2)
	s.Require().Equal(domain.StepNativeWrap, withEntry[0].GetKind())
	s.Require().Equal(routertesting.ETH, withEntry[0].GetTokenInDenom())

	// Exit requires the route to end in the wrapped native token.
	_, err = s.WrapperUsecase.WithNativeExit(steps)
	s.Require().Error(err)

	reverse, err := s.WrapperUsecase.CompileRoute(s.Ctx, domain.Route{
		{TokenInDenom: routertesting.WBLT, TokenOutDenom: routertesting.WETH},
	})
	s.Require().NoError(err)

	withExit, err := s.WrapperUsecase.WithNativeExit(reverse)
	s.Require().NoError(err)
	s.Require().Len(withExit, 2)
	s.Require().Equal(domain.StepNativeUnwrap, withExit[1].GetKind())
	s.Require().Equal(routertesting.ETH, withExit[1].GetTokenOutDenom())

	// Entry requires the route to start with the wrapped native token.
	_, err = s.WrapperUsecase.WithNativeEntry(reverse)
	s.Require().Error(err)
}

func (s *WrapperUsecaseTestSuite) TestMintViews() {
	s.SetupDefaultEnvironment()

	// Rate is one-to-one before any report.
	minted, err := s.WrapperUsecase.GetMintAmountWrappedBLT(s.Ctx, sdk.NewCoin(routertesting.BLT, osmomath.NewInt(1_000_000)))
	s.Require().NoError(err)
	s.Require().Equal(osmomath.NewInt(1_000_000), minted.Amount)

	needed, err := s.WrapperUsecase.QuoteMintAmountBLT(s.Ctx, routertesting.BLT, osmomath.NewInt(1_000_000))
	s.Require().NoError(err)
	s.Require().Equal(osmomath.NewInt(1_000_000), needed.Amount)

	_, err = s.WrapperUsecase.GetMintAmountWrappedBLT(s.Ctx, sdk.NewCoin(routertesting.USDT, osmomath.NewInt(1)))
	s.Require().ErrorAs(err, &domain.UnsupportedDenomError{})

	_, err = s.WrapperUsecase.QuoteMintAmountBLT(s.Ctx, routertesting.USDT, osmomath.NewInt(1))
	s.Require().ErrorAs(err, &domain.UnsupportedDenomError{})
}

// TestMintAmount_DecayWindow asserts the rate drift while locked profit
// decays: shares minted per asset shrink monotonically during the window and
// stabilize once the full profit is unlocked.
func (s *WrapperUsecaseTestSuite) TestMintAmount_DecayWindow() {
	s.SetupDefaultEnvironment()

	reportTime := time.Unix(1_700_000_000, 0)
	s.Vault.Report(osmomath.NewInt(1_000_000_000), reportTime)

	assets := sdk.NewCoin(routertesting.BLT, osmomath.NewInt(1_000_000))

	mintedAt := func(offsetSecs int64) osmomath.Int {
		s.Vault.Now = func() time.Time { return reportTime.Add(time.Duration(offsetSecs) * time.Second) }
		minted, err := s.WrapperUsecase.GetMintAmountWrappedBLT(s.Ctx, assets)
		s.Require().NoError(err)
		return minted.Amount
	}

	atReport := mintedAt(0)
	midWindow := mintedAt(routertesting.DecayWindowSecs / 2)
	postWindow := mintedAt(routertesting.DecayWindowSecs)
	wellPast := mintedAt(routertesting.DecayWindowSecs * 10)

	// Right after the report the profit is fully locked, so the share rate
	// still excludes it.
	s.Require().Equal(osmomath.NewInt(1_000_000), atReport)

	s.Require().True(midWindow.LT(atReport), "mid-window mint %s must be below at-report mint %s", midWindow, atReport)
	s.Require().True(postWindow.LT(midWindow), "post-window mint %s must be below mid-window mint %s", postWindow, midWindow)
	s.Require().Equal(postWindow, wellPast)
}

// TestWrapSwapEquivalence_PostDecay asserts that once the decay window has
// fully elapsed, minting through the vault leg of a route reports the same
// wrapped amount as the standalone mint view.
func (s *WrapperUsecaseTestSuite) TestWrapSwapEquivalence_PostDecay() {
	s.SetupDefaultEnvironment()

	reportTime := time.Unix(1_700_000_000, 0)
	s.Vault.Report(osmomath.NewInt(1_000_000_000), reportTime)
	s.Vault.Now = func() time.Time { return reportTime.Add(routertesting.DecayWindowSecs * time.Second) }

	assets := sdk.NewCoin(routertesting.BLT, osmomath.NewInt(5_000_000))

	viaView, err := s.WrapperUsecase.GetMintAmountWrappedBLT(s.Ctx, assets)
	s.Require().NoError(err)

	steps, err := s.WrapperUsecase.CompileRoute(s.Ctx, domain.Route{
		{TokenInDenom: routertesting.BLT, TokenOutDenom: routertesting.WBLT},
	})
	s.Require().NoError(err)
	s.Require().Equal(domain.StepVaultDeposit, steps[0].GetKind())

	viaRoute, err := steps[0].CalculateTokenOutByTokenIn(s.Ctx, assets)
	s.Require().NoError(err)

	s.Require().Equal(viaView, viaRoute)

	// And executing the leg realizes exactly the quoted amount.
	s.MintTo(routertesting.Alice, assets)
	executed, err := steps[0].Execute(s.Ctx, assets, routertesting.Alice, routertesting.Alice)
	s.Require().NoError(err)
	s.Require().Equal(viaView, executed)
}
