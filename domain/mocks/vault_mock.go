package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/dudesahn/wBLTRouter/domain"
)

var _ domain.WrapperVault = &MockWrapperVault{}

// DecayFn returns the fraction of profit still locked after elapsed seconds
// of a window seconds decay. Must be monotonically non-increasing in elapsed
// and return zero once elapsed >= window.
type DecayFn func(elapsed, window int64) osmomath.Dec

// LinearDecay is the default locked profit decay.
func LinearDecay(elapsed, window int64) osmomath.Dec {
	if elapsed >= window {
		return osmomath.ZeroDec()
	}
	return osmomath.NewDec(window - elapsed).QuoInt64(window)
}

// MockWrapperVault is a yield-bearing vault fake over the bank ledger. The
// vault holds the base denom; deposits in any supported denom are converted
// to base value at a fixed per-denom price before shares are issued. All
// mutations go through the bank so transaction rollback covers vault state.
type MockWrapperVault struct {
	Bank    *MockBank
	Address string

	baseDenom    string
	wrappedDenom string

	mu sync.RWMutex
	// basePerUnit maps supported deposit denoms to base value per unit.
	// The base denom itself is always priced at one.
	basePerUnit map[string]osmomath.Dec

	lockedProfit osmomath.Int
	lastReport   time.Time
	degradation  osmomath.Int
	decay        DecayFn

	// Now is injectable for decay window tests.
	Now func() time.Time
}

// NewMockWrapperVault registers a vault fake over the bank.
func NewMockWrapperVault(bank *MockBank, baseDenom, wrappedDenom string, degradation osmomath.Int) *MockWrapperVault {
	return &MockWrapperVault{
		Bank:         bank,
		Address:      fmt.Sprintf("vault-%s", wrappedDenom),
		baseDenom:    baseDenom,
		wrappedDenom: wrappedDenom,
		basePerUnit: map[string]osmomath.Dec{
			baseDenom: osmomath.OneDec(),
		},
		lockedProfit: osmomath.ZeroInt(),
		lastReport:   time.Unix(0, 0),
		degradation:  degradation,
		decay:        LinearDecay,
		Now:          time.Now,
	}
}

// SetPrice registers a supported deposit denom at the given base value per
// unit.
func (v *MockWrapperVault) SetPrice(denom string, basePerUnit osmomath.Dec) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.basePerUnit[denom] = basePerUnit
}

// SetDecayFn overrides the decay curve.
func (v *MockWrapperVault) SetDecayFn(fn DecayFn) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.decay = fn
}

// Report books profit into the vault and starts a new decay window at the
// given time. The profit is minted to the vault in the base denom.
func (v *MockWrapperVault) Report(profit osmomath.Int, at time.Time) {
	v.Bank.MintCoin(v.Address, sdk.NewCoin(v.baseDenom, profit))

	v.mu.Lock()
	defer v.mu.Unlock()
	v.lockedProfit = profit
	v.lastReport = at
}

// WrappedDenom implements domain.WrapperVault.
func (v *MockWrapperVault) WrappedDenom() string {
	return v.wrappedDenom
}

// GetAddress implements domain.WrapperVault.
func (v *MockWrapperVault) GetAddress() string {
	return v.Address
}

// SupportsDeposit implements domain.WrapperVault.
func (v *MockWrapperVault) SupportsDeposit(denom string) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	_, ok := v.basePerUnit[denom]
	return ok
}

// PreviewDeposit implements domain.WrapperVault.
func (v *MockWrapperVault) PreviewDeposit(ctx context.Context, assets sdk.Coin) (sdk.Coin, error) {
	baseValue, err := v.toBase(assets)
	if err != nil {
		return sdk.Coin{}, err
	}

	freeFunds, supply := v.freeFunds(ctx)
	if supply.IsZero() || freeFunds.IsZero() {
		return sdk.NewCoin(v.wrappedDenom, baseValue), nil
	}

	shares := baseValue.Mul(supply).Quo(freeFunds)
	return sdk.NewCoin(v.wrappedDenom, shares), nil
}

// PreviewMint implements domain.WrapperVault.
func (v *MockWrapperVault) PreviewMint(ctx context.Context, assetDenom string, shares osmomath.Int) (sdk.Coin, error) {
	v.mu.RLock()
	price, ok := v.basePerUnit[assetDenom]
	v.mu.RUnlock()
	if !ok {
		return sdk.Coin{}, domain.UnsupportedDenomError{Denom: assetDenom}
	}

	freeFunds, supply := v.freeFunds(ctx)

	baseNeeded := shares
	if !supply.IsZero() && !freeFunds.IsZero() {
		baseNeeded = shares.Mul(freeFunds).Add(supply).Sub(osmomath.OneInt()).Quo(supply)
	}

	assets := osmomath.NewDecFromInt(baseNeeded).Quo(price).Ceil().TruncateInt()
	return sdk.NewCoin(assetDenom, assets), nil
}

// PreviewRedeem implements domain.WrapperVault.
func (v *MockWrapperVault) PreviewRedeem(ctx context.Context, shares osmomath.Int, assetDenom string) (sdk.Coin, error) {
	v.mu.RLock()
	price, ok := v.basePerUnit[assetDenom]
	v.mu.RUnlock()
	if !ok {
		return sdk.Coin{}, domain.UnsupportedDenomError{Denom: assetDenom}
	}

	freeFunds, supply := v.freeFunds(ctx)
	if supply.IsZero() {
		return sdk.NewCoin(assetDenom, osmomath.ZeroInt()), nil
	}

	baseOut := shares.Mul(freeFunds).Quo(supply)
	assets := osmomath.NewDecFromInt(baseOut).Quo(price).TruncateInt()
	return sdk.NewCoin(assetDenom, assets), nil
}

// PreviewWithdraw implements domain.WrapperVault.
func (v *MockWrapperVault) PreviewWithdraw(ctx context.Context, assets sdk.Coin) (sdk.Coin, error) {
	baseValue, err := v.toBase(assets)
	if err != nil {
		return sdk.Coin{}, err
	}

	freeFunds, supply := v.freeFunds(ctx)
	if supply.IsZero() || freeFunds.IsZero() {
		return sdk.NewCoin(v.wrappedDenom, baseValue), nil
	}

	shares := baseValue.Mul(supply).Add(freeFunds).Sub(osmomath.OneInt()).Quo(freeFunds)
	return sdk.NewCoin(v.wrappedDenom, shares), nil
}

// Deposit implements domain.WrapperVault.
func (v *MockWrapperVault) Deposit(ctx context.Context, assets sdk.Coin, from, to string) (sdk.Coin, error) {
	shares, err := v.PreviewDeposit(ctx, assets)
	if err != nil {
		return sdk.Coin{}, err
	}

	if err := v.Bank.Send(ctx, from, v.Address, assets); err != nil {
		return sdk.Coin{}, err
	}

	// Non-base deposits are swapped into base value at the vault.
	if assets.Denom != v.baseDenom {
		baseValue, err := v.toBase(assets)
		if err != nil {
			return sdk.Coin{}, err
		}
		v.Bank.BurnCoin(v.Address, assets)
		v.Bank.MintCoin(v.Address, sdk.NewCoin(v.baseDenom, baseValue))
	}

	v.Bank.MintCoin(to, shares)

	return shares, nil
}

// Redeem implements domain.WrapperVault.
func (v *MockWrapperVault) Redeem(ctx context.Context, shares sdk.Coin, assetDenom, from, to string) (sdk.Coin, error) {
	if shares.Denom != v.wrappedDenom {
		return sdk.Coin{}, domain.UnsupportedDenomError{Denom: shares.Denom}
	}

	assets, err := v.PreviewRedeem(ctx, shares.Amount, assetDenom)
	if err != nil {
		return sdk.Coin{}, err
	}

	baseOut, err := v.toBase(assets)
	if err != nil {
		return sdk.Coin{}, err
	}

	v.Bank.BurnCoin(from, shares)
	v.Bank.BurnCoin(v.Address, sdk.NewCoin(v.baseDenom, baseOut))
	v.Bank.MintCoin(to, assets)

	return assets, nil
}

// LastReport implements domain.WrapperVault.
func (v *MockWrapperVault) LastReport(_ context.Context) (time.Time, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.lastReport, nil
}

// LockedProfitDegradation implements domain.WrapperVault.
func (v *MockWrapperVault) LockedProfitDegradation(_ context.Context) (osmomath.Int, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.degradation, nil
}

// freeFunds returns totalAssets minus currently locked profit, plus the
// wrapped share supply.
func (v *MockWrapperVault) freeFunds(ctx context.Context) (osmomath.Int, osmomath.Int) {
	totalAssets := v.Bank.BalanceOf(ctx, v.Address, v.baseDenom)
	supply := v.Bank.Supply(v.wrappedDenom)

	v.mu.RLock()
	defer v.mu.RUnlock()

	locked := osmomath.ZeroInt()
	if v.lockedProfit.IsPositive() && v.degradation.IsPositive() {
		window := domain.DegradationCoefficient.Quo(v.degradation).Int64()
		elapsed := v.Now().Unix() - v.lastReport.Unix()
		if elapsed < 0 {
			elapsed = 0
		}
		ratio := v.decay(elapsed, window)
		locked = ratio.MulInt(v.lockedProfit).TruncateInt()
	}

	free := totalAssets.Sub(locked)
	if free.IsNegative() {
		free = osmomath.ZeroInt()
	}
	return free, supply
}

func (v *MockWrapperVault) toBase(assets sdk.Coin) (osmomath.Int, error) {
	v.mu.RLock()
	price, ok := v.basePerUnit[assets.Denom]
	v.mu.RUnlock()
	if !ok {
		return osmomath.Int{}, domain.UnsupportedDenomError{Denom: assets.Denom}
	}
	return price.MulInt(assets.Amount).TruncateInt(), nil
}
