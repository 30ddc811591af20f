package usecase

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"go.uber.org/zap"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/dudesahn/wBLTRouter/domain"
	"github.com/dudesahn/wBLTRouter/router/usecase/route"
)

// SwapExactTokensForTokens implements mvc.RouterUsecase.
func (r *routerUseCaseImpl) SwapExactTokensForTokens(ctx context.Context, tokenIn sdk.Coin, amountOutMin osmomath.Int, hops domain.Route, sender, recipient string, deadline int64) (sdk.Coin, error) {
	if err := r.checkDeadline(deadline); err != nil {
		return sdk.Coin{}, err
	}

	compiled, err := r.compile(ctx, hops)
	if err != nil {
		return sdk.Coin{}, err
	}

	return r.executeSteps(ctx, "exact_tokens_for_tokens", compiled, tokenIn, amountOutMin, sender, recipient)
}

// SwapExactETHForTokens implements mvc.RouterUsecase.
func (r *routerUseCaseImpl) SwapExactETHForTokens(ctx context.Context, amountIn, amountOutMin osmomath.Int, hops domain.Route, sender, recipient string, deadline int64) (sdk.Coin, error) {
	if err := r.checkDeadline(deadline); err != nil {
		return sdk.Coin{}, err
	}

	compiled, err := r.compile(ctx, hops)
	if err != nil {
		return sdk.Coin{}, err
	}

	steps, err := r.wrapperUsecase.WithNativeEntry(compiled.Steps)
	if err != nil {
		return sdk.Coin{}, err
	}

	tokenIn := sdk.NewCoin(r.wrapperUsecase.NativeDenom(), amountIn)

	return r.executeSteps(ctx, "exact_eth_for_tokens", route.New(steps), tokenIn, amountOutMin, sender, recipient)
}

// SwapExactTokensForETH implements mvc.RouterUsecase.
func (r *routerUseCaseImpl) SwapExactTokensForETH(ctx context.Context, tokenIn sdk.Coin, amountOutMin osmomath.Int, hops domain.Route, sender, recipient string, deadline int64) (sdk.Coin, error) {
	if err := r.checkDeadline(deadline); err != nil {
		return sdk.Coin{}, err
	}

	compiled, err := r.compile(ctx, hops)
	if err != nil {
		return sdk.Coin{}, err
	}

	steps, err := r.wrapperUsecase.WithNativeExit(compiled.Steps)
	if err != nil {
		return sdk.Coin{}, err
	}

	return r.executeSteps(ctx, "exact_tokens_for_eth", route.New(steps), tokenIn, amountOutMin, sender, recipient)
}

// checkDeadline is the single cooperative cancellation point, evaluated once
// at entry before any transfer begins.
func (r *routerUseCaseImpl) checkDeadline(deadline int64) error {
	if now := r.now().Unix(); now > deadline {
		return domain.DeadlineExceededError{Deadline: deadline, Now: now}
	}
	return nil
}

// executeSteps runs the compiled route inside a single transaction. Funds flow
// caller -> router -> pool/vault -> ... -> recipient; the router's balance of
// every touched denom must be zero when the transaction commits. The min-out
// bound is checked strictly after the last step.
func (r *routerUseCaseImpl) executeSteps(ctx context.Context, method string, compiled route.RouteImpl, tokenIn sdk.Coin, amountOutMin osmomath.Int, sender, recipient string) (tokenOut sdk.Coin, err error) {
	tx, err := r.txManager.Begin(ctx)
	if err != nil {
		return sdk.Coin{}, err
	}

	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("error when executing route: %v", rec)
		}
		if err != nil {
			swapFailuresTotal.WithLabelValues(method).Inc()
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				r.logger.Error("failed to roll back swap", zap.Error(rollbackErr))
			}
		}
	}()

	routerAccount := r.config.RouterAccount

	if err := r.bank.Send(ctx, sender, routerAccount, tokenIn); err != nil {
		return sdk.Coin{}, err
	}

	current := tokenIn
	for i, step := range compiled.Steps {
		// The last step pays the recipient directly so the router never
		// holds the output.
		to := routerAccount
		if i == len(compiled.Steps)-1 {
			to = recipient
		}

		current, err = step.Execute(ctx, current, routerAccount, to)
		if err != nil {
			return sdk.Coin{}, err
		}
	}

	if current.Amount.LT(amountOutMin) {
		return sdk.Coin{}, domain.InsufficientOutputError{
			MinAmount:    amountOutMin.String(),
			ActualAmount: current.Amount.String(),
		}
	}

	for _, denom := range compiled.Denoms() {
		if balance := r.bank.BalanceOf(ctx, routerAccount, denom); balance.IsPositive() {
			return sdk.Coin{}, domain.ResidualBalanceError{Denom: denom, Balance: balance.String()}
		}
	}

	if err := tx.Commit(); err != nil {
		return sdk.Coin{}, err
	}

	swapsTotal.WithLabelValues(method).Inc()
	r.logger.Debug("executed route",
		zap.String("route", compiled.String()),
		zap.String("token_in", tokenIn.String()),
		zap.String("token_out", current.String()),
	)

	return current, nil
}
