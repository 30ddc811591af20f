package main

import (
	"context"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/dudesahn/wBLTRouter/domain"
	"github.com/dudesahn/wBLTRouter/domain/mocks"
	routerrepo "github.com/dudesahn/wBLTRouter/router/repository"
)

// Default environment denoms.
const (
	denomBLT   = "blt"
	denomWBLT  = "wblt"
	denomETH   = "eth"
	denomWETH  = "weth"
	denomUSDC  = "usdc"
	denomOBLT  = "oblt"
	denomGauge = "gauge-wblt-weth"

	treasuryAccount = "treasury"
)

// environment bundles the ledger-backed collaborators the query server
// routes over.
type environment struct {
	bank           *mocks.MockBank
	poolRepository routerrepo.PoolRepository
	vault          *mocks.MockWrapperVault
	native         *mocks.MockNativeWrapper
	option         *mocks.MockOptionToken
}

// newEnvironment seeds an in-process ledger with the wrapper vault, the
// native wrapper, the option token and a starting set of pools. The server
// quotes and dry-runs against this state; it carries no chain connection.
func newEnvironment() *environment {
	bank := mocks.NewMockBank()

	// Six hour locked profit decay window.
	degradation := domain.DegradationCoefficient.QuoRaw(6 * 60 * 60)
	vault := mocks.NewMockWrapperVault(bank, denomBLT, denomWBLT, degradation)
	vault.SetPrice(denomUSDC, osmomath.OneDec())
	vault.SetPrice(denomWETH, osmomath.NewDec(2500))

	native := mocks.NewMockNativeWrapper(bank, denomETH, denomWETH)

	option := mocks.NewMockOptionToken(bank, denomOBLT, denomWBLT, denomGauge, osmomath.OneDec())

	poolRepository := routerrepo.New()

	env := &environment{
		bank:           bank,
		poolRepository: poolRepository,
		vault:          vault,
		native:         native,
		option:         option,
	}

	env.seedVault(osmomath.NewInt(10_000_000_000))
	env.seedPool(denomWBLT, denomWETH, false, osmomath.NewInt(2_500_000_000), osmomath.NewInt(1_000_000))
	env.seedPool(denomWBLT, denomUSDC, false, osmomath.NewInt(1_000_000_000), osmomath.NewInt(1_000_000_000))
	env.seedPool(denomWETH, denomUSDC, false, osmomath.NewInt(1_000_000), osmomath.NewInt(2_500_000_000))

	vault.Report(osmomath.NewInt(1_000_000), time.Now())

	return env
}

// seedVault deposits initial base assets so the wrapped token has supply.
func (env *environment) seedVault(assets osmomath.Int) {
	env.bank.MintCoin(treasuryAccount, sdk.NewCoin(denomBLT, assets))
	if _, err := env.vault.Deposit(context.Background(), sdk.NewCoin(denomBLT, assets), treasuryAccount, treasuryAccount); err != nil {
		panic(err)
	}
}

// seedPool registers a pool funded with the given reserves, crediting the LP
// to the treasury.
func (env *environment) seedPool(denomA, denomB string, stable bool, reserveA, reserveB osmomath.Int) {
	pool := mocks.NewMockPool(env.bank, denomA, denomB, stable, map[string]int{
		denomA: 6,
		denomB: 6,
	})

	env.fund(treasuryAccount, sdk.NewCoin(denomA, reserveA))
	env.fund(treasuryAccount, sdk.NewCoin(denomB, reserveB))

	if _, err := pool.Join(context.Background(), sdk.NewCoin(denomA, reserveA), sdk.NewCoin(denomB, reserveB), treasuryAccount, treasuryAccount); err != nil {
		panic(err)
	}

	env.poolRepository.SetPool(pool)
}

// fund credits the account, sourcing wrapped shares through a vault deposit
// so the share supply stays backed by vault assets.
func (env *environment) fund(account string, coin sdk.Coin) {
	if coin.Denom == denomWBLT {
		env.bank.MintCoin(account, sdk.NewCoin(denomBLT, coin.Amount))
		if _, err := env.vault.Deposit(context.Background(), sdk.NewCoin(denomBLT, coin.Amount), account, account); err != nil {
			panic(err)
		}
		return
	}
	env.bank.MintCoin(account, coin)
}
