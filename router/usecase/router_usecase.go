package usecase

import (
	"context"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/dudesahn/wBLTRouter/domain"
	"github.com/dudesahn/wBLTRouter/domain/mvc"
	"github.com/dudesahn/wBLTRouter/log"
	"github.com/dudesahn/wBLTRouter/router/usecase/route"
)

var _ mvc.RouterUsecase = &routerUseCaseImpl{}

type routerUseCaseImpl struct {
	config         domain.RouterConfig
	wrapperUsecase mvc.WrapperUsecase
	bank           domain.Bank
	txManager      domain.TxManager
	logger         log.Logger

	// now is the chain-time source. Swappable in tests.
	now func() time.Time
}

var (
	quotesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "router_quotes_total",
			Help: "Total number of quote simulations.",
		},
		[]string{"method"},
	)
	swapsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "router_swaps_total",
			Help: "Total number of executed swaps.",
		},
		[]string{"method"},
	)
	swapFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "router_swap_failures_total",
			Help: "Total number of failed swaps.",
		},
		[]string{"method"},
	)
)

func init() {
	prometheus.MustRegister(quotesTotal)
	prometheus.MustRegister(swapsTotal)
	prometheus.MustRegister(swapFailuresTotal)
}

// NewRouterUsecase will create a new router use case object.
func NewRouterUsecase(config domain.RouterConfig, wrapperUsecase mvc.WrapperUsecase, bank domain.Bank, txManager domain.TxManager, logger log.Logger) mvc.RouterUsecase {
	return &routerUseCaseImpl{
		config:         config,
		wrapperUsecase: wrapperUsecase,
		bank:           bank,
		txManager:      txManager,
		logger:         logger,

		now: time.Now,
	}
}

// GetAmountsOut implements mvc.RouterUsecase.
func (r *routerUseCaseImpl) GetAmountsOut(ctx context.Context, tokenIn sdk.Coin, hops domain.Route) ([]osmomath.Int, error) {
	quotesTotal.WithLabelValues("amounts_out").Inc()

	compiled, err := r.compile(ctx, hops)
	if err != nil {
		return nil, err
	}

	if tokenIn.Denom != compiled.TokenInDenom() {
		return nil, domain.InvalidRouteError{Reason: "token in denom does not match the route entry"}
	}

	amounts, err := compiled.CalculateTokenOutByTokenIn(ctx, tokenIn)
	if err != nil {
		return nil, err
	}

	return coinAmounts(amounts), nil
}

// GetAmountsIn implements mvc.RouterUsecase.
func (r *routerUseCaseImpl) GetAmountsIn(ctx context.Context, tokenOut sdk.Coin, hops domain.Route) ([]osmomath.Int, error) {
	quotesTotal.WithLabelValues("amounts_in").Inc()

	compiled, err := r.compile(ctx, hops)
	if err != nil {
		return nil, err
	}

	if tokenOut.Denom != compiled.TokenOutDenom() {
		return nil, domain.InvalidRouteError{Reason: "token out denom does not match the route exit"}
	}

	amounts, err := compiled.CalculateTokenInByTokenOut(ctx, tokenOut)
	if err != nil {
		return nil, err
	}

	return coinAmounts(amounts), nil
}

// GetMintAmountWrappedBLT implements mvc.RouterUsecase.
func (r *routerUseCaseImpl) GetMintAmountWrappedBLT(ctx context.Context, assets sdk.Coin) (sdk.Coin, error) {
	quotesTotal.WithLabelValues("mint_amount").Inc()
	return r.wrapperUsecase.GetMintAmountWrappedBLT(ctx, assets)
}

// QuoteMintAmountBLT implements mvc.RouterUsecase.
func (r *routerUseCaseImpl) QuoteMintAmountBLT(ctx context.Context, assetDenom string, wrappedTarget osmomath.Int) (sdk.Coin, error) {
	quotesTotal.WithLabelValues("quote_mint").Inc()
	return r.wrapperUsecase.QuoteMintAmountBLT(ctx, assetDenom, wrappedTarget)
}

// GetConfig implements mvc.RouterUsecase.
func (r *routerUseCaseImpl) GetConfig() domain.RouterConfig {
	return r.config
}

// compile validates the hop sequence and compiles it into executable steps.
func (r *routerUseCaseImpl) compile(ctx context.Context, hops domain.Route) (route.RouteImpl, error) {
	if r.config.MaxHops > 0 && len(hops) > r.config.MaxHops {
		return route.RouteImpl{}, domain.InvalidRouteError{Reason: "route exceeds the maximum number of hops"}
	}

	steps, err := r.wrapperUsecase.CompileRoute(ctx, hops)
	if err != nil {
		return route.RouteImpl{}, err
	}

	return route.New(steps), nil
}

func coinAmounts(coins []sdk.Coin) []osmomath.Int {
	amounts := make([]osmomath.Int, 0, len(coins))
	for _, coin := range coins {
		amounts = append(amounts, coin.Amount)
	}
	return amounts
}
