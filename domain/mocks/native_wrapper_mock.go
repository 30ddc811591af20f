package mocks

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/dudesahn/wBLTRouter/domain"
)

var _ domain.NativeWrapper = &MockNativeWrapper{}

// MockNativeWrapper wraps and unwraps native value 1:1 through the bank
// ledger.
type MockNativeWrapper struct {
	Bank    *MockBank
	Address string

	nativeDenom  string
	wrappedDenom string
}

// NewMockNativeWrapper registers a native wrapper fake over the bank.
func NewMockNativeWrapper(bank *MockBank, nativeDenom, wrappedDenom string) *MockNativeWrapper {
	return &MockNativeWrapper{
		Bank:         bank,
		Address:      fmt.Sprintf("wrapper-%s", wrappedDenom),
		nativeDenom:  nativeDenom,
		wrappedDenom: wrappedDenom,
	}
}

// NativeDenom implements domain.NativeWrapper.
func (w *MockNativeWrapper) NativeDenom() string {
	return w.nativeDenom
}

// WrappedDenom implements domain.NativeWrapper.
func (w *MockNativeWrapper) WrappedDenom() string {
	return w.wrappedDenom
}

// GetAddress implements domain.NativeWrapper.
func (w *MockNativeWrapper) GetAddress() string {
	return w.Address
}

// Deposit implements domain.NativeWrapper.
func (w *MockNativeWrapper) Deposit(ctx context.Context, amount osmomath.Int, from, to string) (sdk.Coin, error) {
	if err := w.Bank.Send(ctx, from, w.Address, sdk.NewCoin(w.nativeDenom, amount)); err != nil {
		return sdk.Coin{}, err
	}

	wrapped := sdk.NewCoin(w.wrappedDenom, amount)
	w.Bank.MintCoin(to, wrapped)

	return wrapped, nil
}

// Withdraw implements domain.NativeWrapper.
func (w *MockNativeWrapper) Withdraw(ctx context.Context, amount osmomath.Int, from, to string) (sdk.Coin, error) {
	w.Bank.BurnCoin(from, sdk.NewCoin(w.wrappedDenom, amount))

	native := sdk.NewCoin(w.nativeDenom, amount)
	if err := w.Bank.Send(ctx, w.Address, to, native); err != nil {
		return sdk.Coin{}, err
	}

	return native, nil
}
