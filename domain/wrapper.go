package domain

import (
	"context"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/osmosis-labs/osmosis/osmomath"
)

// WrapperVault is the yield-bearing wrapper for the base liquidity token.
// Conversion rates are time-varying while the locked-profit decay window is
// active, so previews must be read at conversion time and never cached.
type WrapperVault interface {
	// WrappedDenom returns the denom of the wrapped share token.
	WrappedDenom() string

	// GetAddress returns the vault's account.
	GetAddress() string

	// SupportsDeposit returns true if the denom can be deposited for shares.
	SupportsDeposit(denom string) bool

	// PreviewDeposit returns the wrapped shares minted for depositing assets.
	PreviewDeposit(ctx context.Context, assets sdk.Coin) (sdk.Coin, error)

	// PreviewMint returns the assets of the given denom needed to mint the
	// target amount of wrapped shares. Rounds against the depositor.
	PreviewMint(ctx context.Context, assetDenom string, shares osmomath.Int) (sdk.Coin, error)

	// PreviewRedeem returns the assets of the given denom released for
	// redeeming shares.
	PreviewRedeem(ctx context.Context, shares osmomath.Int, assetDenom string) (sdk.Coin, error)

	// PreviewWithdraw returns the wrapped shares that must be redeemed to
	// release the given assets. Rounds against the withdrawer.
	PreviewWithdraw(ctx context.Context, assets sdk.Coin) (sdk.Coin, error)

	// Deposit pulls assets from the from account and mints shares to the to
	// account.
	Deposit(ctx context.Context, assets sdk.Coin, from, to string) (sdk.Coin, error)

	// Redeem burns shares from the from account and sends assets of the given
	// denom to the to account.
	Redeem(ctx context.Context, shares sdk.Coin, assetDenom, from, to string) (sdk.Coin, error)

	// LastReport returns the time of the vault's last accounting report.
	LastReport(ctx context.Context) (time.Time, error)

	// LockedProfitDegradation returns the per-second degradation rate scaled
	// by DegradationCoefficient. The decay window is
	// DegradationCoefficient / rate seconds past LastReport.
	LockedProfitDegradation(ctx context.Context) (osmomath.Int, error)
}

// DegradationCoefficient is the scale of the vault's locked profit
// degradation rate.
var DegradationCoefficient = osmomath.NewInt(1_000_000_000_000_000_000)

// NativeWrapper converts between native value and its 1:1 wrapped token.
type NativeWrapper interface {
	// NativeDenom returns the denom the router uses to account native value.
	NativeDenom() string

	// WrappedDenom returns the wrapped native token denom.
	WrappedDenom() string

	// GetAddress returns the wrapper's account.
	GetAddress() string

	// Deposit wraps native value from the from account, crediting the wrapped
	// token to the to account.
	Deposit(ctx context.Context, amount osmomath.Int, from, to string) (sdk.Coin, error)

	// Withdraw unwraps tokens from the from account, crediting native value
	// to the to account.
	Withdraw(ctx context.Context, amount osmomath.Int, from, to string) (sdk.Coin, error)
}
