package usecase

import (
	"context"
	"fmt"
	"math/big"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/dudesahn/wBLTRouter/domain"
	"github.com/dudesahn/wBLTRouter/domain/mvc"
	"github.com/dudesahn/wBLTRouter/log"
	routerrepo "github.com/dudesahn/wBLTRouter/router/repository"
)

var _ mvc.LiquidityUsecase = &liquidityUseCaseImpl{}

type liquidityUseCaseImpl struct {
	config         domain.RouterConfig
	poolRepository routerrepo.PoolRepository
	vault          domain.WrapperVault
	native         domain.NativeWrapper
	bank           domain.Bank
	txManager      domain.TxManager
	logger         log.Logger

	now func() time.Time
}

var (
	liquidityAddsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "wblt_router_liquidity_adds_total",
		Help: "Total number of successful liquidity additions.",
	})
	liquidityRemovesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "wblt_router_liquidity_removes_total",
		Help: "Total number of successful liquidity removals.",
	})
	liquidityFailuresTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "wblt_router_liquidity_failures_total",
		Help: "Total number of failed liquidity operations.",
	}, []string{"method"})
)

func init() {
	prometheus.MustRegister(liquidityAddsTotal)
	prometheus.MustRegister(liquidityRemovesTotal)
	prometheus.MustRegister(liquidityFailuresTotal)
}

// NewLiquidityUsecase will create a new liquidity manager over the registered
// pools and the wrapper vault.
func NewLiquidityUsecase(config domain.RouterConfig, poolRepository routerrepo.PoolRepository, vault domain.WrapperVault, native domain.NativeWrapper, bank domain.Bank, txManager domain.TxManager, logger log.Logger) mvc.LiquidityUsecase {
	return &liquidityUseCaseImpl{
		config:         config,
		poolRepository: poolRepository,
		vault:          vault,
		native:         native,
		bank:           bank,
		txManager:      txManager,
		logger:         logger,
		now:            time.Now,
	}
}

// resolvePool finds the pool for the pair, translating denomA to the wrapped
// denom when denomA is only in the pool as its vault underlying. Volatile
// pools take precedence over stable ones for the same pair.
func (l *liquidityUseCaseImpl) resolvePool(denomA, denomB string) (domain.RoutablePool, string, bool, error) {
	for _, stable := range []bool{false, true} {
		if pool, ok := l.poolRepository.GetPoolByDenoms(denomA, denomB, stable); ok {
			return pool, denomA, false, nil
		}
	}

	if l.vault.SupportsDeposit(denomA) {
		wrappedDenom := l.vault.WrappedDenom()
		for _, stable := range []bool{false, true} {
			if pool, ok := l.poolRepository.GetPoolByDenoms(wrappedDenom, denomB, stable); ok {
				return pool, wrappedDenom, true, nil
			}
		}
	}

	return nil, "", false, domain.PoolNotFoundError{Key: domain.NewPoolKey(denomA, denomB, false)}
}

// QuoteAddLiquidityUnderlying implements mvc.LiquidityUsecase.
func (l *liquidityUseCaseImpl) QuoteAddLiquidityUnderlying(ctx context.Context, denomA, denomB string, amountADesired, amountBDesired osmomath.Int) (domain.AddLiquidityQuote, error) {
	pool, poolDenomA, wrapped, err := l.resolvePool(denomA, denomB)
	if err != nil {
		return domain.AddLiquidityQuote{}, err
	}

	amountA := sdk.NewCoin(denomA, amountADesired)
	amountAWrapped := amountA
	if wrapped {
		amountAWrapped, err = l.vault.PreviewDeposit(ctx, amountA)
		if err != nil {
			return domain.AddLiquidityQuote{}, err
		}
	}

	reserveA, reserveB, err := l.poolReserves(ctx, pool, poolDenomA, denomB)
	if err != nil {
		return domain.AddLiquidityQuote{}, err
	}

	amountB := sdk.NewCoin(denomB, amountBDesired)

	if reserveA.IsZero() || reserveB.IsZero() {
		// First deposit sets the ratio.
		liquidity := intSqrt(amountAWrapped.Amount.Mul(amountB.Amount))
		return domain.AddLiquidityQuote{
			AmountA:        amountA,
			AmountAWrapped: amountAWrapped,
			AmountB:        amountB,
			Liquidity:      liquidity,
		}, nil
	}

	// Match the reserve ratio: try the full A side, fall back to the full B
	// side if the matching B exceeds the desired B.
	bOptimal, err := pool.QuoteLiquidity(ctx, amountAWrapped)
	if err != nil {
		return domain.AddLiquidityQuote{}, err
	}

	if bOptimal.Amount.GT(amountBDesired) {
		aOptimal, err := pool.QuoteLiquidity(ctx, amountB)
		if err != nil {
			return domain.AddLiquidityQuote{}, err
		}

		amountAWrapped = aOptimal
		amountA = aOptimal
		if wrapped {
			// Round against the depositor so the vault deposit covers
			// the wrapped amount.
			amountA, err = l.vault.PreviewMint(ctx, denomA, aOptimal.Amount)
			if err != nil {
				return domain.AddLiquidityQuote{}, err
			}
		}
	} else {
		amountB = bOptimal
	}

	supply, err := pool.GetTotalSupply(ctx)
	if err != nil {
		return domain.AddLiquidityQuote{}, err
	}

	liquidity := osmomath.MinInt(
		amountAWrapped.Amount.Mul(supply).Quo(reserveA),
		amountB.Amount.Mul(supply).Quo(reserveB),
	)

	return domain.AddLiquidityQuote{
		AmountA:        amountA,
		AmountAWrapped: amountAWrapped,
		AmountB:        amountB,
		Liquidity:      liquidity,
	}, nil
}

// QuoteRemoveLiquidityUnderlying implements mvc.LiquidityUsecase.
func (l *liquidityUseCaseImpl) QuoteRemoveLiquidityUnderlying(ctx context.Context, denomA, denomB string, liquidity osmomath.Int) (domain.RemoveLiquidityQuote, error) {
	pool, poolDenomA, wrapped, err := l.resolvePool(denomA, denomB)
	if err != nil {
		return domain.RemoveLiquidityQuote{}, err
	}

	reserveA, reserveB, err := l.poolReserves(ctx, pool, poolDenomA, denomB)
	if err != nil {
		return domain.RemoveLiquidityQuote{}, err
	}

	supply, err := pool.GetTotalSupply(ctx)
	if err != nil {
		return domain.RemoveLiquidityQuote{}, err
	}
	if !supply.IsPositive() {
		return domain.RemoveLiquidityQuote{}, domain.PoolNotFoundError{Key: pool.GetKey()}
	}

	amountA := sdk.NewCoin(poolDenomA, liquidity.Mul(reserveA).Quo(supply))
	amountB := sdk.NewCoin(denomB, liquidity.Mul(reserveB).Quo(supply))

	if wrapped {
		amountA, err = l.vault.PreviewRedeem(ctx, amountA.Amount, denomA)
		if err != nil {
			return domain.RemoveLiquidityQuote{}, err
		}
	}

	return domain.RemoveLiquidityQuote{AmountA: amountA, AmountB: amountB}, nil
}

// AddLiquidity implements mvc.LiquidityUsecase.
func (l *liquidityUseCaseImpl) AddLiquidity(ctx context.Context, denomA string, amountADesired osmomath.Int, denomB string, amountBDesired, amountAMin, amountBMin osmomath.Int, sender, recipient string, deadline int64) (result domain.AddLiquidityResult, err error) {
	if err := l.checkDeadline(deadline); err != nil {
		return domain.AddLiquidityResult{}, err
	}

	quote, err := l.QuoteAddLiquidityUnderlying(ctx, denomA, denomB, amountADesired, amountBDesired)
	if err != nil {
		return domain.AddLiquidityResult{}, err
	}

	if quote.AmountA.Amount.LT(amountAMin) {
		return domain.AddLiquidityResult{}, domain.SlippageExceededError{Denom: denomA, MinAmount: amountAMin.String(), Amount: quote.AmountA.Amount.String()}
	}
	if quote.AmountB.Amount.LT(amountBMin) {
		return domain.AddLiquidityResult{}, domain.SlippageExceededError{Denom: denomB, MinAmount: amountBMin.String(), Amount: quote.AmountB.Amount.String()}
	}

	pool, poolDenomA, wrapped, err := l.resolvePool(denomA, denomB)
	if err != nil {
		return domain.AddLiquidityResult{}, err
	}

	tx, err := l.txManager.Begin(ctx)
	if err != nil {
		return domain.AddLiquidityResult{}, err
	}

	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("error when adding liquidity: %v", rec)
		}
		if err != nil {
			liquidityFailuresTotal.WithLabelValues("add").Inc()
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				l.logger.Error("failed to roll back liquidity addition", zap.Error(rollbackErr))
			}
		}
	}()

	routerAccount := l.config.RouterAccount

	if err = l.bank.Send(ctx, sender, routerAccount, quote.AmountA); err != nil {
		return domain.AddLiquidityResult{}, err
	}
	if err = l.bank.Send(ctx, sender, routerAccount, quote.AmountB); err != nil {
		return domain.AddLiquidityResult{}, err
	}

	joinA := quote.AmountAWrapped
	if wrapped {
		var minted sdk.Coin
		minted, err = l.vault.Deposit(ctx, quote.AmountA, routerAccount, routerAccount)
		if err != nil {
			return domain.AddLiquidityResult{}, err
		}

		// Rounding in the deposit preview can mint a share or two over the
		// quoted wrapped amount. Surplus goes back to the sender so the
		// router ends flat.
		if surplus := minted.Amount.Sub(joinA.Amount); surplus.IsPositive() {
			if err = l.bank.Send(ctx, routerAccount, sender, sdk.NewCoin(minted.Denom, surplus)); err != nil {
				return domain.AddLiquidityResult{}, err
			}
		}
	}

	liquidity, err := pool.Join(ctx, joinA, quote.AmountB, routerAccount, recipient)
	if err != nil {
		return domain.AddLiquidityResult{}, err
	}

	for _, denom := range []string{denomA, poolDenomA, denomB, pool.GetLPDenom()} {
		if balance := l.bank.BalanceOf(ctx, routerAccount, denom); balance.IsPositive() {
			return domain.AddLiquidityResult{}, domain.ResidualBalanceError{Denom: denom, Balance: balance.String()}
		}
	}

	if err = tx.Commit(); err != nil {
		return domain.AddLiquidityResult{}, err
	}

	liquidityAddsTotal.Inc()
	l.logger.Debug("added liquidity",
		zap.String("pool", pool.String()),
		zap.String("amount_a", quote.AmountA.String()),
		zap.String("amount_b", quote.AmountB.String()),
		zap.String("liquidity", liquidity.String()),
	)

	return domain.AddLiquidityResult{
		AmountA:   quote.AmountA,
		AmountB:   quote.AmountB,
		Liquidity: liquidity,
	}, nil
}

// AddLiquidityETH implements mvc.LiquidityUsecase.
func (l *liquidityUseCaseImpl) AddLiquidityETH(ctx context.Context, amountADesired osmomath.Int, denomB string, amountBDesired, amountAMin, amountBMin osmomath.Int, sender, recipient string, deadline int64) (result domain.AddLiquidityResult, err error) {
	if err := l.checkDeadline(deadline); err != nil {
		return domain.AddLiquidityResult{}, err
	}

	tx, err := l.txManager.Begin(ctx)
	if err != nil {
		return domain.AddLiquidityResult{}, err
	}

	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("error when adding liquidity: %v", rec)
		}
		if err != nil {
			liquidityFailuresTotal.WithLabelValues("add_eth").Inc()
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				l.logger.Error("failed to roll back liquidity addition", zap.Error(rollbackErr))
			}
		}
	}()

	// Wrap the native side in place, then run the token path. Whatever the
	// binding quote leaves unwrapped goes back to native value.
	if _, err = l.native.Deposit(ctx, amountADesired, sender, sender); err != nil {
		return domain.AddLiquidityResult{}, err
	}

	wrappedNative := l.native.WrappedDenom()

	result, err = l.AddLiquidity(ctx, wrappedNative, amountADesired, denomB, amountBDesired, amountAMin, amountBMin, sender, recipient, deadline)
	if err != nil {
		return domain.AddLiquidityResult{}, err
	}

	if leftover := amountADesired.Sub(result.AmountA.Amount); leftover.IsPositive() {
		if _, err = l.native.Withdraw(ctx, leftover, sender, sender); err != nil {
			return domain.AddLiquidityResult{}, err
		}
	}

	if err = tx.Commit(); err != nil {
		return domain.AddLiquidityResult{}, err
	}

	return result, nil
}

// RemoveLiquidity implements mvc.LiquidityUsecase.
func (l *liquidityUseCaseImpl) RemoveLiquidity(ctx context.Context, denomA, denomB string, liquidity, amountAMin, amountBMin osmomath.Int, sender, recipient string, deadline int64) (quote domain.RemoveLiquidityQuote, err error) {
	if err := l.checkDeadline(deadline); err != nil {
		return domain.RemoveLiquidityQuote{}, err
	}

	pool, _, wrapped, err := l.resolvePool(denomA, denomB)
	if err != nil {
		return domain.RemoveLiquidityQuote{}, err
	}

	tx, err := l.txManager.Begin(ctx)
	if err != nil {
		return domain.RemoveLiquidityQuote{}, err
	}

	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("error when removing liquidity: %v", rec)
		}
		if err != nil {
			liquidityFailuresTotal.WithLabelValues("remove").Inc()
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				l.logger.Error("failed to roll back liquidity removal", zap.Error(rollbackErr))
			}
		}
	}()

	routerAccount := l.config.RouterAccount

	if err = l.bank.Send(ctx, sender, routerAccount, sdk.NewCoin(pool.GetLPDenom(), liquidity)); err != nil {
		return domain.RemoveLiquidityQuote{}, err
	}

	coinA, coinB, err := l.exitOriented(ctx, pool, liquidity, denomA, denomB, wrapped, routerAccount)
	if err != nil {
		return domain.RemoveLiquidityQuote{}, err
	}

	amountA := coinA
	if wrapped {
		amountA, err = l.vault.Redeem(ctx, coinA, denomA, routerAccount, recipient)
		if err != nil {
			return domain.RemoveLiquidityQuote{}, err
		}
	} else {
		if err = l.bank.Send(ctx, routerAccount, recipient, coinA); err != nil {
			return domain.RemoveLiquidityQuote{}, err
		}
	}

	if err = l.bank.Send(ctx, routerAccount, recipient, coinB); err != nil {
		return domain.RemoveLiquidityQuote{}, err
	}

	if amountA.Amount.LT(amountAMin) {
		return domain.RemoveLiquidityQuote{}, domain.SlippageExceededError{Denom: denomA, MinAmount: amountAMin.String(), Amount: amountA.Amount.String()}
	}
	if coinB.Amount.LT(amountBMin) {
		return domain.RemoveLiquidityQuote{}, domain.SlippageExceededError{Denom: denomB, MinAmount: amountBMin.String(), Amount: coinB.Amount.String()}
	}

	for _, denom := range []string{denomA, coinA.Denom, denomB, pool.GetLPDenom()} {
		if balance := l.bank.BalanceOf(ctx, routerAccount, denom); balance.IsPositive() {
			return domain.RemoveLiquidityQuote{}, domain.ResidualBalanceError{Denom: denom, Balance: balance.String()}
		}
	}

	if err = tx.Commit(); err != nil {
		return domain.RemoveLiquidityQuote{}, err
	}

	liquidityRemovesTotal.Inc()
	l.logger.Debug("removed liquidity",
		zap.String("pool", pool.String()),
		zap.String("amount_a", amountA.String()),
		zap.String("amount_b", coinB.String()),
	)

	return domain.RemoveLiquidityQuote{AmountA: amountA, AmountB: coinB}, nil
}

// RemoveLiquidityETH implements mvc.LiquidityUsecase.
func (l *liquidityUseCaseImpl) RemoveLiquidityETH(ctx context.Context, denomB string, liquidity, amountAMin, amountBMin osmomath.Int, sender, recipient string, deadline int64) (quote domain.RemoveLiquidityQuote, err error) {
	if err := l.checkDeadline(deadline); err != nil {
		return domain.RemoveLiquidityQuote{}, err
	}

	tx, err := l.txManager.Begin(ctx)
	if err != nil {
		return domain.RemoveLiquidityQuote{}, err
	}

	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("error when removing liquidity: %v", rec)
		}
		if err != nil {
			liquidityFailuresTotal.WithLabelValues("remove_eth").Inc()
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				l.logger.Error("failed to roll back liquidity removal", zap.Error(rollbackErr))
			}
		}
	}()

	routerAccount := l.config.RouterAccount
	wrappedNative := l.native.WrappedDenom()

	pool, _, _, err := l.resolvePool(wrappedNative, denomB)
	if err != nil {
		return domain.RemoveLiquidityQuote{}, err
	}

	if err = l.bank.Send(ctx, sender, routerAccount, sdk.NewCoin(pool.GetLPDenom(), liquidity)); err != nil {
		return domain.RemoveLiquidityQuote{}, err
	}

	coinA, coinB, err := l.exitOriented(ctx, pool, liquidity, wrappedNative, denomB, false, routerAccount)
	if err != nil {
		return domain.RemoveLiquidityQuote{}, err
	}

	if coinA.Amount.LT(amountAMin) {
		return domain.RemoveLiquidityQuote{}, domain.SlippageExceededError{Denom: wrappedNative, MinAmount: amountAMin.String(), Amount: coinA.Amount.String()}
	}
	if coinB.Amount.LT(amountBMin) {
		return domain.RemoveLiquidityQuote{}, domain.SlippageExceededError{Denom: denomB, MinAmount: amountBMin.String(), Amount: coinB.Amount.String()}
	}

	native, err := l.native.Withdraw(ctx, coinA.Amount, routerAccount, recipient)
	if err != nil {
		return domain.RemoveLiquidityQuote{}, err
	}

	if err = l.bank.Send(ctx, routerAccount, recipient, coinB); err != nil {
		return domain.RemoveLiquidityQuote{}, err
	}

	for _, denom := range []string{wrappedNative, l.native.NativeDenom(), denomB, pool.GetLPDenom()} {
		if balance := l.bank.BalanceOf(ctx, routerAccount, denom); balance.IsPositive() {
			return domain.RemoveLiquidityQuote{}, domain.ResidualBalanceError{Denom: denom, Balance: balance.String()}
		}
	}

	if err = tx.Commit(); err != nil {
		return domain.RemoveLiquidityQuote{}, err
	}

	liquidityRemovesTotal.Inc()

	return domain.RemoveLiquidityQuote{AmountA: native, AmountB: coinB}, nil
}

// exitOriented burns the liquidity at the pool and orients the outputs so the
// first coin is the (possibly wrapped) A side.
func (l *liquidityUseCaseImpl) exitOriented(ctx context.Context, pool domain.RoutablePool, liquidity osmomath.Int, denomA, denomB string, wrapped bool, account string) (sdk.Coin, sdk.Coin, error) {
	coinA, coinB, err := pool.Exit(ctx, liquidity, account, account)
	if err != nil {
		return sdk.Coin{}, sdk.Coin{}, err
	}

	sideA := denomA
	if wrapped {
		sideA = l.vault.WrappedDenom()
	}

	if coinA.Denom != sideA {
		coinA, coinB = coinB, coinA
	}
	if coinA.Denom != sideA || coinB.Denom != denomB {
		return sdk.Coin{}, sdk.Coin{}, domain.InvalidRouteError{Reason: fmt.Sprintf("pool %s does not match pair (%s, %s)", pool.GetKey(), denomA, denomB)}
	}

	return coinA, coinB, nil
}

// poolReserves reads the reserves oriented to the (denomA, denomB) pair.
func (l *liquidityUseCaseImpl) poolReserves(ctx context.Context, pool domain.RoutablePool, denomA, denomB string) (osmomath.Int, osmomath.Int, error) {
	reserveA, reserveB, err := pool.GetReserves(ctx)
	if err != nil {
		return osmomath.Int{}, osmomath.Int{}, err
	}

	if reserveA.Denom != denomA {
		reserveA, reserveB = reserveB, reserveA
	}
	if reserveA.Denom != denomA || reserveB.Denom != denomB {
		return osmomath.Int{}, osmomath.Int{}, domain.InvalidRouteError{Reason: fmt.Sprintf("pool %s does not match pair (%s, %s)", pool.GetKey(), denomA, denomB)}
	}

	return reserveA.Amount, reserveB.Amount, nil
}

func (l *liquidityUseCaseImpl) checkDeadline(deadline int64) error {
	if now := l.now().Unix(); now > deadline {
		return domain.DeadlineExceededError{Deadline: deadline, Now: now}
	}
	return nil
}

func intSqrt(value osmomath.Int) osmomath.Int {
	return osmomath.NewIntFromBigInt(new(big.Int).Sqrt(value.BigInt()))
}
