package usecase

import (
	"context"
	"fmt"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/dudesahn/wBLTRouter/domain"
	"github.com/dudesahn/wBLTRouter/domain/mvc"
	"github.com/dudesahn/wBLTRouter/log"
)

var _ mvc.OptionsUsecase = &optionsUseCaseImpl{}

type optionsUseCaseImpl struct {
	config        domain.OptionsConfig
	routerAccount string
	vault         domain.WrapperVault
	native        domain.NativeWrapper
	option        domain.OptionToken
	bank          domain.Bank
	txManager     domain.TxManager
	logger        log.Logger

	now func() time.Time
}

var (
	exercisesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "wblt_router_option_exercises_total",
		Help: "Total number of settled option exercises.",
	})
	exerciseFailuresTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "wblt_router_option_exercise_failures_total",
		Help: "Total number of failed option exercises.",
	}, []string{"method"})
)

func init() {
	prometheus.MustRegister(exercisesTotal)
	prometheus.MustRegister(exerciseFailuresTotal)
}

const bpsScale = 10_000

// NewOptionsUsecase will create a new option exercise quoter over the wrapper
// vault and the option token.
func NewOptionsUsecase(config domain.OptionsConfig, routerAccount string, vault domain.WrapperVault, native domain.NativeWrapper, option domain.OptionToken, bank domain.Bank, txManager domain.TxManager, logger log.Logger) mvc.OptionsUsecase {
	return &optionsUseCaseImpl{
		config:        config,
		routerAccount: routerAccount,
		vault:         vault,
		native:        native,
		option:        option,
		bank:          bank,
		txManager:     txManager,
		logger:        logger,
		now:           time.Now,
	}
}

// QuoteTokenNeededToExerciseLp implements mvc.OptionsUsecase.
func (o *optionsUseCaseImpl) QuoteTokenNeededToExerciseLp(ctx context.Context, paymentDenom string, exerciseAmount osmomath.Int, discount int64) (sdk.Coin, sdk.Coin, error) {
	payment, paymentToAddLiquidity, err := o.option.GetPaymentTokenAmountForExerciseLp(ctx, exerciseAmount, discount)
	if err != nil {
		return sdk.Coin{}, sdk.Coin{}, err
	}

	total := payment.Add(paymentToAddLiquidity)

	var net sdk.Coin
	switch {
	case paymentDenom == o.option.PaymentDenom():
		net = sdk.NewCoin(paymentDenom, total)
	case o.vault.SupportsDeposit(paymentDenom):
		net, err = o.vault.PreviewMint(ctx, paymentDenom, total)
		if err != nil {
			return sdk.Coin{}, sdk.Coin{}, err
		}
	default:
		return sdk.Coin{}, sdk.Coin{}, domain.UnsupportedDenomError{Denom: paymentDenom}
	}

	// The conversion rate can move between quote and settlement while the
	// vault's decay window is active, so the headline quote carries a safety
	// margin. Surplus is refunded on settlement.
	margin := osmomath.NewInt(bpsScale + o.config.SafetyMarginBps)
	grossAmount := net.Amount.Mul(margin).Add(osmomath.NewInt(bpsScale - 1)).Quo(osmomath.NewInt(bpsScale))
	gross := sdk.NewCoin(net.Denom, grossAmount)

	return gross, net, nil
}

// ExerciseLpWithUnderlying implements mvc.OptionsUsecase.
func (o *optionsUseCaseImpl) ExerciseLpWithUnderlying(ctx context.Context, payment sdk.Coin, exerciseAmount osmomath.Int, discount int64, sender string, deadline int64) (result domain.ExerciseLpResult, err error) {
	if err := o.checkDeadline(deadline); err != nil {
		return domain.ExerciseLpResult{}, err
	}

	paymentTokenDenom := o.option.PaymentDenom()
	if payment.Denom != paymentTokenDenom && !o.vault.SupportsDeposit(payment.Denom) {
		return domain.ExerciseLpResult{}, domain.UnsupportedDenomError{Denom: payment.Denom}
	}

	requiredPayment, paymentToAddLiquidity, err := o.option.GetPaymentTokenAmountForExerciseLp(ctx, exerciseAmount, discount)
	if err != nil {
		return domain.ExerciseLpResult{}, err
	}
	required := requiredPayment.Add(paymentToAddLiquidity)

	tx, err := o.txManager.Begin(ctx)
	if err != nil {
		return domain.ExerciseLpResult{}, err
	}

	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("error when exercising option: %v", rec)
		}
		if err != nil {
			exerciseFailuresTotal.WithLabelValues("exercise_lp").Inc()
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				o.logger.Error("failed to roll back option exercise", zap.Error(rollbackErr))
			}
		}
	}()

	if err = o.bank.Send(ctx, sender, o.routerAccount, payment); err != nil {
		return domain.ExerciseLpResult{}, err
	}

	wrapped := payment
	if payment.Denom != paymentTokenDenom {
		wrapped, err = o.vault.Deposit(ctx, payment, o.routerAccount, o.routerAccount)
		if err != nil {
			return domain.ExerciseLpResult{}, err
		}
	}

	if wrapped.Amount.LT(required) {
		return domain.ExerciseLpResult{}, domain.InsufficientPaymentError{Needed: required.String(), Provided: wrapped.Amount.String()}
	}

	consumed, err := o.option.ExerciseLp(ctx, exerciseAmount, wrapped.Amount, discount, sender, o.routerAccount, sender)
	if err != nil {
		return domain.ExerciseLpResult{}, err
	}

	refunded := sdk.NewCoin(paymentTokenDenom, wrapped.Amount.Sub(consumed))
	if refunded.Amount.IsPositive() {
		if err = o.bank.Send(ctx, o.routerAccount, sender, refunded); err != nil {
			return domain.ExerciseLpResult{}, err
		}
	}

	for _, denom := range []string{payment.Denom, paymentTokenDenom} {
		if balance := o.bank.BalanceOf(ctx, o.routerAccount, denom); balance.IsPositive() {
			return domain.ExerciseLpResult{}, domain.ResidualBalanceError{Denom: denom, Balance: balance.String()}
		}
	}

	if err = tx.Commit(); err != nil {
		return domain.ExerciseLpResult{}, err
	}

	exercisesTotal.Inc()
	o.logger.Debug("exercised option into staked position",
		zap.String("payment", payment.String()),
		zap.String("consumed", consumed.String()),
		zap.String("refunded", refunded.String()),
	)

	return domain.ExerciseLpResult{
		PaymentUsed: sdk.NewCoin(paymentTokenDenom, consumed),
		Refunded:    refunded,
	}, nil
}

// ExerciseLpWithUnderlyingETH implements mvc.OptionsUsecase.
func (o *optionsUseCaseImpl) ExerciseLpWithUnderlyingETH(ctx context.Context, amountIn osmomath.Int, exerciseAmount osmomath.Int, discount int64, sender string, deadline int64) (result domain.ExerciseLpResult, err error) {
	if err := o.checkDeadline(deadline); err != nil {
		return domain.ExerciseLpResult{}, err
	}

	tx, err := o.txManager.Begin(ctx)
	if err != nil {
		return domain.ExerciseLpResult{}, err
	}

	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("error when exercising option: %v", rec)
		}
		if err != nil {
			exerciseFailuresTotal.WithLabelValues("exercise_lp_eth").Inc()
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				o.logger.Error("failed to roll back option exercise", zap.Error(rollbackErr))
			}
		}
	}()

	wrapped, err := o.native.Deposit(ctx, amountIn, sender, sender)
	if err != nil {
		return domain.ExerciseLpResult{}, err
	}

	result, err = o.ExerciseLpWithUnderlying(ctx, wrapped, exerciseAmount, discount, sender, deadline)
	if err != nil {
		return domain.ExerciseLpResult{}, err
	}

	if err = tx.Commit(); err != nil {
		return domain.ExerciseLpResult{}, err
	}

	return result, nil
}

func (o *optionsUseCaseImpl) checkDeadline(deadline int64) error {
	if now := o.now().Unix(); now > deadline {
		return domain.DeadlineExceededError{Deadline: deadline, Now: now}
	}
	return nil
}
