package usecase

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/dudesahn/wBLTRouter/domain"
)

var (
	_ domain.RoutableStep = &vaultDepositStep{}
	_ domain.RoutableStep = &vaultRedeemStep{}
	_ domain.RoutableStep = &nativeWrapStep{}
	_ domain.RoutableStep = &nativeUnwrapStep{}
)

// vaultDepositStep converts a vault underlying into the wrapped asset at the
// vault's current rate. The rate is read per operation, never cached, because
// it drifts during the locked-profit decay window.
type vaultDepositStep struct {
	vault      domain.WrapperVault
	assetDenom string
}

func (s *vaultDepositStep) GetKind() domain.StepKind { return domain.StepVaultDeposit }

func (s *vaultDepositStep) GetTokenInDenom() string { return s.assetDenom }

func (s *vaultDepositStep) GetTokenOutDenom() string { return s.vault.WrappedDenom() }

func (s *vaultDepositStep) CalculateTokenOutByTokenIn(ctx context.Context, tokenIn sdk.Coin) (sdk.Coin, error) {
	return s.vault.PreviewDeposit(ctx, tokenIn)
}

func (s *vaultDepositStep) CalculateTokenInByTokenOut(ctx context.Context, tokenOut sdk.Coin) (sdk.Coin, error) {
	return s.vault.PreviewMint(ctx, s.assetDenom, tokenOut.Amount)
}

func (s *vaultDepositStep) Execute(ctx context.Context, tokenIn sdk.Coin, from, to string) (sdk.Coin, error) {
	return s.vault.Deposit(ctx, tokenIn, from, to)
}

func (s *vaultDepositStep) String() string {
	return fmt.Sprintf("vault deposit %s -> %s", s.assetDenom, s.vault.WrappedDenom())
}

// vaultRedeemStep converts the wrapped asset back into a vault underlying.
type vaultRedeemStep struct {
	vault      domain.WrapperVault
	assetDenom string
}

func (s *vaultRedeemStep) GetKind() domain.StepKind { return domain.StepVaultRedeem }

func (s *vaultRedeemStep) GetTokenInDenom() string { return s.vault.WrappedDenom() }

func (s *vaultRedeemStep) GetTokenOutDenom() string { return s.assetDenom }

func (s *vaultRedeemStep) CalculateTokenOutByTokenIn(ctx context.Context, tokenIn sdk.Coin) (sdk.Coin, error) {
	return s.vault.PreviewRedeem(ctx, tokenIn.Amount, s.assetDenom)
}

func (s *vaultRedeemStep) CalculateTokenInByTokenOut(ctx context.Context, tokenOut sdk.Coin) (sdk.Coin, error) {
	return s.vault.PreviewWithdraw(ctx, tokenOut)
}

func (s *vaultRedeemStep) Execute(ctx context.Context, tokenIn sdk.Coin, from, to string) (sdk.Coin, error) {
	return s.vault.Redeem(ctx, tokenIn, s.assetDenom, from, to)
}

func (s *vaultRedeemStep) String() string {
	return fmt.Sprintf("vault redeem %s -> %s", s.vault.WrappedDenom(), s.assetDenom)
}

// nativeWrapStep wraps native value 1:1.
type nativeWrapStep struct {
	native domain.NativeWrapper
}

func (s *nativeWrapStep) GetKind() domain.StepKind { return domain.StepNativeWrap }

func (s *nativeWrapStep) GetTokenInDenom() string { return s.native.NativeDenom() }

func (s *nativeWrapStep) GetTokenOutDenom() string { return s.native.WrappedDenom() }

func (s *nativeWrapStep) CalculateTokenOutByTokenIn(_ context.Context, tokenIn sdk.Coin) (sdk.Coin, error) {
	return sdk.NewCoin(s.native.WrappedDenom(), tokenIn.Amount), nil
}

func (s *nativeWrapStep) CalculateTokenInByTokenOut(_ context.Context, tokenOut sdk.Coin) (sdk.Coin, error) {
	return sdk.NewCoin(s.native.NativeDenom(), tokenOut.Amount), nil
}

func (s *nativeWrapStep) Execute(ctx context.Context, tokenIn sdk.Coin, from, to string) (sdk.Coin, error) {
	return s.native.Deposit(ctx, tokenIn.Amount, from, to)
}

func (s *nativeWrapStep) String() string {
	return fmt.Sprintf("wrap %s -> %s", s.native.NativeDenom(), s.native.WrappedDenom())
}

// nativeUnwrapStep unwraps the wrapped native token 1:1.
type nativeUnwrapStep struct {
	native domain.NativeWrapper
}

func (s *nativeUnwrapStep) GetKind() domain.StepKind { return domain.StepNativeUnwrap }

func (s *nativeUnwrapStep) GetTokenInDenom() string { return s.native.WrappedDenom() }

func (s *nativeUnwrapStep) GetTokenOutDenom() string { return s.native.NativeDenom() }

func (s *nativeUnwrapStep) CalculateTokenOutByTokenIn(_ context.Context, tokenIn sdk.Coin) (sdk.Coin, error) {
	return sdk.NewCoin(s.native.NativeDenom(), tokenIn.Amount), nil
}

func (s *nativeUnwrapStep) CalculateTokenInByTokenOut(_ context.Context, tokenOut sdk.Coin) (sdk.Coin, error) {
	return sdk.NewCoin(s.native.WrappedDenom(), tokenOut.Amount), nil
}

func (s *nativeUnwrapStep) Execute(ctx context.Context, tokenIn sdk.Coin, from, to string) (sdk.Coin, error) {
	return s.native.Withdraw(ctx, tokenIn.Amount, from, to)
}

func (s *nativeUnwrapStep) String() string {
	return fmt.Sprintf("unwrap %s -> %s", s.native.WrappedDenom(), s.native.NativeDenom())
}
