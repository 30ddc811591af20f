package usecase

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/dudesahn/wBLTRouter/domain"
	"github.com/dudesahn/wBLTRouter/domain/mvc"
	"github.com/dudesahn/wBLTRouter/log"
	routerrepo "github.com/dudesahn/wBLTRouter/router/repository"
	"github.com/dudesahn/wBLTRouter/router/usecase/pools"
)

var _ mvc.WrapperUsecase = &wrapperUseCaseImpl{}

type wrapperUseCaseImpl struct {
	poolRepository routerrepo.PoolRepository
	vault          domain.WrapperVault
	native         domain.NativeWrapper
	logger         log.Logger
}

// NewWrapperUsecase will create a new wrap boundary resolver.
func NewWrapperUsecase(poolRepository routerrepo.PoolRepository, vault domain.WrapperVault, native domain.NativeWrapper, logger log.Logger) mvc.WrapperUsecase {
	return &wrapperUseCaseImpl{
		poolRepository: poolRepository,
		vault:          vault,
		native:         native,
		logger:         logger,
	}
}

// WrappedDenom implements mvc.WrapperUsecase.
func (w *wrapperUseCaseImpl) WrappedDenom() string {
	return w.vault.WrappedDenom()
}

// NativeDenom implements mvc.WrapperUsecase.
func (w *wrapperUseCaseImpl) NativeDenom() string {
	return w.native.NativeDenom()
}

// WrappedNativeDenom implements mvc.WrapperUsecase.
func (w *wrapperUseCaseImpl) WrappedNativeDenom() string {
	return w.native.WrappedDenom()
}

// CompileRoute implements mvc.WrapperUsecase.
//
// Each hop resolves to its registered pool first. Only when no pool serves
// the pair does a hop crossing the wrapped-asset boundary compile to a vault
// leg: a hop into the wrapped asset from a vault-supported underlying becomes
// a deposit, the symmetric hop out becomes a redeem. A registered pool
// therefore always prices its own pair; the vault legs cover assets the AMM
// does not list. These rules are checked hop by hop so that a route may mix
// pool swaps and wrap legs freely.
func (w *wrapperUseCaseImpl) CompileRoute(ctx context.Context, route domain.Route) ([]domain.RoutableStep, error) {
	if err := route.Validate(); err != nil {
		return nil, err
	}

	wrappedDenom := w.vault.WrappedDenom()

	steps := make([]domain.RoutableStep, 0, len(route))
	for _, hop := range route {
		if pool, ok := w.poolRepository.GetPoolByDenoms(hop.TokenInDenom, hop.TokenOutDenom, hop.Stable); ok {
			steps = append(steps, pools.NewRoutableSwapStep(pool, hop.TokenInDenom, hop.TokenOutDenom))
			continue
		}

		switch {
		case hop.TokenOutDenom == wrappedDenom && w.vault.SupportsDeposit(hop.TokenInDenom):
			steps = append(steps, &vaultDepositStep{vault: w.vault, assetDenom: hop.TokenInDenom})
		case hop.TokenInDenom == wrappedDenom && w.vault.SupportsDeposit(hop.TokenOutDenom):
			steps = append(steps, &vaultRedeemStep{vault: w.vault, assetDenom: hop.TokenOutDenom})
		default:
			return nil, domain.PoolNotFoundError{Key: domain.NewPoolKey(hop.TokenInDenom, hop.TokenOutDenom, hop.Stable)}
		}
	}

	return steps, nil
}

// WithNativeEntry implements mvc.WrapperUsecase.
func (w *wrapperUseCaseImpl) WithNativeEntry(steps []domain.RoutableStep) ([]domain.RoutableStep, error) {
	if len(steps) == 0 {
		return nil, domain.InvalidRouteError{Reason: "route is empty"}
	}

	if first := steps[0].GetTokenInDenom(); first != w.native.WrappedDenom() {
		return nil, domain.InvalidRouteError{
			Reason: fmt.Sprintf("native entry requires the route to start with (%s), got (%s)", w.native.WrappedDenom(), first),
		}
	}

	return append([]domain.RoutableStep{&nativeWrapStep{native: w.native}}, steps...), nil
}

// WithNativeExit implements mvc.WrapperUsecase.
func (w *wrapperUseCaseImpl) WithNativeExit(steps []domain.RoutableStep) ([]domain.RoutableStep, error) {
	if len(steps) == 0 {
		return nil, domain.InvalidRouteError{Reason: "route is empty"}
	}

	if last := steps[len(steps)-1].GetTokenOutDenom(); last != w.native.WrappedDenom() {
		return nil, domain.InvalidRouteError{
			Reason: fmt.Sprintf("native exit requires the route to end with (%s), got (%s)", w.native.WrappedDenom(), last),
		}
	}

	return append(steps, &nativeUnwrapStep{native: w.native}), nil
}

// GetMintAmountWrappedBLT implements mvc.WrapperUsecase.
func (w *wrapperUseCaseImpl) GetMintAmountWrappedBLT(ctx context.Context, assets sdk.Coin) (sdk.Coin, error) {
	if !w.vault.SupportsDeposit(assets.Denom) {
		return sdk.Coin{}, domain.UnsupportedDenomError{Denom: assets.Denom}
	}

	return w.vault.PreviewDeposit(ctx, assets)
}

// QuoteMintAmountBLT implements mvc.WrapperUsecase.
func (w *wrapperUseCaseImpl) QuoteMintAmountBLT(ctx context.Context, assetDenom string, wrappedTarget osmomath.Int) (sdk.Coin, error) {
	if !w.vault.SupportsDeposit(assetDenom) {
		return sdk.Coin{}, domain.UnsupportedDenomError{Denom: assetDenom}
	}

	return w.vault.PreviewMint(ctx, assetDenom, wrappedTarget)
}
