package routertesting

import (
	"context"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/suite"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/dudesahn/wBLTRouter/domain"
	"github.com/dudesahn/wBLTRouter/domain/mocks"
	"github.com/dudesahn/wBLTRouter/domain/mvc"
	liquidityusecase "github.com/dudesahn/wBLTRouter/liquidity/usecase"
	"github.com/dudesahn/wBLTRouter/log"
	optionsusecase "github.com/dudesahn/wBLTRouter/options/usecase"
	routerrepo "github.com/dudesahn/wBLTRouter/router/repository"
	routerusecase "github.com/dudesahn/wBLTRouter/router/usecase"
	wrapperusecase "github.com/dudesahn/wBLTRouter/wrapper/usecase"
)

// Test denoms shared across suites.
const (
	BLT   = "blt"
	WBLT  = "wblt"
	ETH   = "eth"
	WETH  = "weth"
	USDC  = "usdc"
	USDT  = "usdt"
	OBLT  = "oblt"
	Gauge = "gauge-wblt-weth"

	Router   = "router"
	Treasury = "treasury"
	Alice    = "alice"
	Bob      = "bob"
)

// DecayWindowSecs is the locked profit decay window the default vault is
// configured with.
const DecayWindowSecs = 100

// RouterTestHelper seeds a full in-memory environment: the bank ledger, the
// wrapper vault, the native wrapper, the option token, a set of pools, and
// the usecases wired over them.
type RouterTestHelper struct {
	suite.Suite

	Ctx  context.Context
	Bank *mocks.MockBank

	Vault  *mocks.MockWrapperVault
	Native *mocks.MockNativeWrapper
	Option *mocks.MockOptionToken

	PoolRepository routerrepo.PoolRepository

	WrapperUsecase   mvc.WrapperUsecase
	RouterUsecase    mvc.RouterUsecase
	LiquidityUsecase mvc.LiquidityUsecase
	OptionsUsecase   mvc.OptionsUsecase
}

// SetupDefaultEnvironment wires the environment with deterministic reserves.
// The vault starts at a one-to-one share rate with no locked profit.
func (s *RouterTestHelper) SetupDefaultEnvironment() {
	s.Ctx = context.Background()
	s.Bank = mocks.NewMockBank()

	degradation := domain.DegradationCoefficient.QuoRaw(DecayWindowSecs)
	s.Vault = mocks.NewMockWrapperVault(s.Bank, BLT, WBLT, degradation)
	s.Vault.SetPrice(USDC, osmomath.OneDec())
	s.Vault.SetPrice(WETH, osmomath.NewDec(2500))

	s.Native = mocks.NewMockNativeWrapper(s.Bank, ETH, WETH)
	s.Option = mocks.NewMockOptionToken(s.Bank, OBLT, WBLT, Gauge, osmomath.OneDec())

	s.PoolRepository = routerrepo.New()

	// Seed the vault so the wrapped asset has supply at rate one.
	s.MintTo(Treasury, sdk.NewCoin(BLT, osmomath.NewInt(10_000_000_000)))
	_, err := s.Vault.Deposit(s.Ctx, sdk.NewCoin(BLT, osmomath.NewInt(10_000_000_000)), Treasury, Treasury)
	s.Require().NoError(err)

	s.SeedPool(WBLT, WETH, false, osmomath.NewInt(2_500_000_000), osmomath.NewInt(1_000_000))
	s.SeedPool(WBLT, USDC, false, osmomath.NewInt(1_000_000_000), osmomath.NewInt(1_000_000_000))
	s.SeedPool(WETH, USDC, false, osmomath.NewInt(1_000_000), osmomath.NewInt(2_500_000_000))
	s.SeedPool(USDC, USDT, true, osmomath.NewInt(1_000_000_000), osmomath.NewInt(1_000_000_000))

	logger := log.NewNoOpLogger()
	routerConfig := domain.RouterConfig{MaxHops: 4, RouterAccount: Router}
	optionsConfig := domain.OptionsConfig{SafetyMarginBps: 100}

	s.WrapperUsecase = wrapperusecase.NewWrapperUsecase(s.PoolRepository, s.Vault, s.Native, logger)
	s.RouterUsecase = routerusecase.NewRouterUsecase(routerConfig, s.WrapperUsecase, s.Bank, s.Bank, logger)
	s.LiquidityUsecase = liquidityusecase.NewLiquidityUsecase(routerConfig, s.PoolRepository, s.Vault, s.Native, s.Bank, s.Bank, logger)
	s.OptionsUsecase = optionsusecase.NewOptionsUsecase(optionsConfig, Router, s.Vault, s.Native, s.Option, s.Bank, s.Bank, logger)
}

// SeedPool registers a pool funded with the given reserves, crediting the LP
// to the treasury.
func (s *RouterTestHelper) SeedPool(denomA, denomB string, stable bool, reserveA, reserveB osmomath.Int) *mocks.MockRoutablePool {
	pool := mocks.NewMockPool(s.Bank, denomA, denomB, stable, map[string]int{
		denomA: 6,
		denomB: 6,
	})

	s.Fund(Treasury, sdk.NewCoin(denomA, reserveA))
	s.Fund(Treasury, sdk.NewCoin(denomB, reserveB))

	_, err := pool.Join(s.Ctx, sdk.NewCoin(denomA, reserveA), sdk.NewCoin(denomB, reserveB), Treasury, Treasury)
	s.Require().NoError(err)

	s.PoolRepository.SetPool(pool)

	return pool
}

// MintTo credits the account with the coin out of thin air.
func (s *RouterTestHelper) MintTo(account string, coin sdk.Coin) {
	s.Bank.MintCoin(account, coin)
}

// Fund credits the account like MintTo, except that wrapped shares are
// sourced through an actual vault deposit so the share supply stays backed
// by vault assets.
func (s *RouterTestHelper) Fund(account string, coin sdk.Coin) {
	if coin.Denom == WBLT {
		s.MintTo(account, sdk.NewCoin(BLT, coin.Amount))
		_, err := s.Vault.Deposit(s.Ctx, sdk.NewCoin(BLT, coin.Amount), account, account)
		s.Require().NoError(err)
		return
	}
	s.MintTo(account, coin)
}

// FutureDeadline returns a deadline comfortably in the future.
func (s *RouterTestHelper) FutureDeadline() int64 {
	return time.Now().Add(time.Hour).Unix()
}

// PastDeadline returns a deadline already elapsed.
func (s *RouterTestHelper) PastDeadline() int64 {
	return time.Now().Add(-time.Hour).Unix()
}
