package main

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/dudesahn/wBLTRouter/domain"
	"github.com/dudesahn/wBLTRouter/log"
	"github.com/dudesahn/wBLTRouter/middleware"

	liquidityHttpDelivery "github.com/dudesahn/wBLTRouter/liquidity/delivery/http"
	liquidityUseCase "github.com/dudesahn/wBLTRouter/liquidity/usecase"
	optionsHttpDelivery "github.com/dudesahn/wBLTRouter/options/delivery/http"
	optionsUseCase "github.com/dudesahn/wBLTRouter/options/usecase"
	routerHttpDelivery "github.com/dudesahn/wBLTRouter/router/delivery/http"
	routerrepo "github.com/dudesahn/wBLTRouter/router/repository"
	routerUseCase "github.com/dudesahn/wBLTRouter/router/usecase"
	wrapperUseCase "github.com/dudesahn/wBLTRouter/wrapper/usecase"
)

// RouterQueryServer defines an interface for the router query server.
// It wires the quoting usecases over the configured environment and exposes
// endpoints for querying them.
type RouterQueryServer interface {
	GetLogger() log.Logger
	Shutdown(context.Context) error
	Start(context.Context) error
}

type routerQueryServer struct {
	e       *echo.Echo
	address string
	logger  log.Logger
}

// GetLogger implements RouterQueryServer.
func (s *routerQueryServer) GetLogger() log.Logger {
	return s.logger
}

// Shutdown implements RouterQueryServer.
func (s *routerQueryServer) Shutdown(ctx context.Context) error {
	return s.e.Shutdown(ctx)
}

// Start implements RouterQueryServer.
func (s *routerQueryServer) Start(context.Context) error {
	s.logger.Info("Starting router query server", zap.String("address", s.address))
	err := s.e.Start(s.address)
	if err != nil {
		return err
	}

	return nil
}

// NewRouterQueryServer creates a new router query server over the given
// environment.
func NewRouterQueryServer(
	config domain.Config,
	poolRepository routerrepo.PoolRepository,
	vault domain.WrapperVault,
	native domain.NativeWrapper,
	option domain.OptionToken,
	bank domain.Bank,
	txManager domain.TxManager,
	logger log.Logger,
) (RouterQueryServer, error) {
	// Setup echo server
	e := echo.New()
	middleware := middleware.InitMiddleware(config.CORS)
	e.Use(middleware.CORS)
	e.Use(middleware.InstrumentMiddleware)

	// Initialize usecases
	wrapperUsecase := wrapperUseCase.NewWrapperUsecase(poolRepository, vault, native, logger)
	routerUsecase := routerUseCase.NewRouterUsecase(*config.Router, wrapperUsecase, bank, txManager, logger)
	liquidityUsecase := liquidityUseCase.NewLiquidityUsecase(*config.Router, poolRepository, vault, native, bank, txManager, logger)
	optionsUsecase := optionsUseCase.NewOptionsUsecase(*config.Options, config.Router.RouterAccount, vault, native, option, bank, txManager, logger)

	// HTTP handlers
	routerHttpDelivery.NewRouterHandler(e, routerUsecase, logger)
	liquidityHttpDelivery.NewLiquidityHandler(e, liquidityUsecase, logger)
	optionsHttpDelivery.NewOptionsHandler(e, optionsUsecase, logger)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return &routerQueryServer{
		e:       e,
		address: config.ServerAddress,
		logger:  logger,
	}, nil
}
