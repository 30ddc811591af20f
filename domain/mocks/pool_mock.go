package mocks

import (
	"context"
	"fmt"
	"math/big"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/dudesahn/wBLTRouter/domain"
)

var _ domain.RoutablePool = &MockRoutablePool{}

// Swap fee multiplier: 0.3% => 997/1000.
var (
	feeMul = big.NewInt(997)
	feeDen = big.NewInt(1000)
)

// MockRoutablePool is a deterministic pool fake. Volatile pools implement the
// constant-product curve with a 0.3% input fee; stable pools implement the
// solidly x3y+xy3 curve. Reserves and LP supply live in the bank ledger so
// transaction rollback covers pool state too.
type MockRoutablePool struct {
	Bank    *MockBank
	Key     domain.PoolKey
	Address string
	LPDenom string

	// Decimals maps each pair denom to its precision. Used by the stable
	// curve to normalize amounts to 18 decimals.
	Decimals map[string]int
}

// NewMockPool registers a pool fake over the bank.
func NewMockPool(bank *MockBank, denomA, denomB string, stable bool, decimals map[string]int) *MockRoutablePool {
	key := domain.NewPoolKey(denomA, denomB, stable)
	return &MockRoutablePool{
		Bank:     bank,
		Key:      key,
		Address:  fmt.Sprintf("pool-%s-%s-%t", key.DenomA, key.DenomB, key.Stable),
		LPDenom:  fmt.Sprintf("lp-%s-%s-%t", key.DenomA, key.DenomB, key.Stable),
		Decimals: decimals,
	}
}

// GetKey implements domain.RoutablePool.
func (p *MockRoutablePool) GetKey() domain.PoolKey {
	return p.Key
}

// GetAddress implements domain.RoutablePool.
func (p *MockRoutablePool) GetAddress() string {
	return p.Address
}

// GetLPDenom implements domain.RoutablePool.
func (p *MockRoutablePool) GetLPDenom() string {
	return p.LPDenom
}

// GetReserves implements domain.RoutablePool.
func (p *MockRoutablePool) GetReserves(ctx context.Context) (sdk.Coin, sdk.Coin, error) {
	reserveA := p.Bank.BalanceOf(ctx, p.Address, p.Key.DenomA)
	reserveB := p.Bank.BalanceOf(ctx, p.Address, p.Key.DenomB)
	return sdk.NewCoin(p.Key.DenomA, reserveA), sdk.NewCoin(p.Key.DenomB, reserveB), nil
}

// GetTotalSupply implements domain.RoutablePool.
func (p *MockRoutablePool) GetTotalSupply(_ context.Context) (osmomath.Int, error) {
	return p.Bank.Supply(p.LPDenom), nil
}

// CalculateTokenOutByTokenIn implements domain.RoutablePool.
func (p *MockRoutablePool) CalculateTokenOutByTokenIn(ctx context.Context, tokenIn sdk.Coin) (sdk.Coin, error) {
	tokenOutDenom := p.Key.OtherDenom(tokenIn.Denom)
	if tokenOutDenom == "" {
		return sdk.Coin{}, domain.InvalidRouteError{Reason: fmt.Sprintf("denom (%s) is not in pool %s", tokenIn.Denom, p.Key)}
	}

	reserveIn := p.Bank.BalanceOf(ctx, p.Address, tokenIn.Denom)
	reserveOut := p.Bank.BalanceOf(ctx, p.Address, tokenOutDenom)
	if !reserveIn.IsPositive() || !reserveOut.IsPositive() {
		return sdk.Coin{}, domain.PoolNotFoundError{Key: p.Key}
	}

	var amountOut *big.Int
	if p.Key.Stable {
		amountOut = p.stableAmountOut(tokenIn.Amount.BigInt(), tokenIn.Denom, tokenOutDenom, reserveIn.BigInt(), reserveOut.BigInt())
	} else {
		amountOut = constantProductOut(tokenIn.Amount.BigInt(), reserveIn.BigInt(), reserveOut.BigInt())
	}

	return sdk.NewCoin(tokenOutDenom, osmomath.NewIntFromBigInt(amountOut)), nil
}

// CalculateTokenInByTokenOut implements domain.RoutablePool.
func (p *MockRoutablePool) CalculateTokenInByTokenOut(ctx context.Context, tokenOut sdk.Coin) (sdk.Coin, error) {
	tokenInDenom := p.Key.OtherDenom(tokenOut.Denom)
	if tokenInDenom == "" {
		return sdk.Coin{}, domain.InvalidRouteError{Reason: fmt.Sprintf("denom (%s) is not in pool %s", tokenOut.Denom, p.Key)}
	}

	reserveIn := p.Bank.BalanceOf(ctx, p.Address, tokenInDenom)
	reserveOut := p.Bank.BalanceOf(ctx, p.Address, tokenOut.Denom)
	if !reserveIn.IsPositive() || reserveOut.LTE(tokenOut.Amount) {
		return sdk.Coin{}, domain.PoolNotFoundError{Key: p.Key}
	}

	if p.Key.Stable {
		// Binary search the input on the forward curve: cheap and exact
		// enough for a fake.
		amountIn := p.stableAmountInSearch(ctx, tokenOut, tokenInDenom)
		return sdk.NewCoin(tokenInDenom, amountIn), nil
	}

	amountIn := constantProductIn(tokenOut.Amount.BigInt(), reserveIn.BigInt(), reserveOut.BigInt())
	return sdk.NewCoin(tokenInDenom, osmomath.NewIntFromBigInt(amountIn)), nil
}

// QuoteLiquidity implements domain.RoutablePool.
func (p *MockRoutablePool) QuoteLiquidity(ctx context.Context, tokenIn sdk.Coin) (sdk.Coin, error) {
	tokenOutDenom := p.Key.OtherDenom(tokenIn.Denom)
	if tokenOutDenom == "" {
		return sdk.Coin{}, domain.InvalidRouteError{Reason: fmt.Sprintf("denom (%s) is not in pool %s", tokenIn.Denom, p.Key)}
	}

	reserveIn := p.Bank.BalanceOf(ctx, p.Address, tokenIn.Denom)
	reserveOut := p.Bank.BalanceOf(ctx, p.Address, tokenOutDenom)
	if !reserveIn.IsPositive() || !reserveOut.IsPositive() {
		return sdk.Coin{}, domain.PoolNotFoundError{Key: p.Key}
	}

	amountOut := tokenIn.Amount.Mul(reserveOut).Quo(reserveIn)
	return sdk.NewCoin(tokenOutDenom, amountOut), nil
}

// SwapExactIn implements domain.RoutablePool.
func (p *MockRoutablePool) SwapExactIn(ctx context.Context, tokenIn sdk.Coin, from, to string) (sdk.Coin, error) {
	tokenOut, err := p.CalculateTokenOutByTokenIn(ctx, tokenIn)
	if err != nil {
		return sdk.Coin{}, err
	}

	if err := p.Bank.Send(ctx, from, p.Address, tokenIn); err != nil {
		return sdk.Coin{}, err
	}

	if err := p.Bank.Send(ctx, p.Address, to, tokenOut); err != nil {
		return sdk.Coin{}, err
	}

	return tokenOut, nil
}

// Join implements domain.RoutablePool.
func (p *MockRoutablePool) Join(ctx context.Context, coinA, coinB sdk.Coin, from, to string) (osmomath.Int, error) {
	if coinA.Denom != p.Key.DenomA {
		coinA, coinB = coinB, coinA
	}
	if coinA.Denom != p.Key.DenomA || coinB.Denom != p.Key.DenomB {
		return osmomath.Int{}, domain.InvalidRouteError{Reason: fmt.Sprintf("coins do not match pool %s", p.Key)}
	}

	reserveA := p.Bank.BalanceOf(ctx, p.Address, p.Key.DenomA)
	reserveB := p.Bank.BalanceOf(ctx, p.Address, p.Key.DenomB)
	supply := p.Bank.Supply(p.LPDenom)

	var liquidity osmomath.Int
	if supply.IsZero() {
		product := new(big.Int).Mul(coinA.Amount.BigInt(), coinB.Amount.BigInt())
		liquidity = osmomath.NewIntFromBigInt(new(big.Int).Sqrt(product))
	} else {
		byA := coinA.Amount.Mul(supply).Quo(reserveA)
		byB := coinB.Amount.Mul(supply).Quo(reserveB)
		liquidity = osmomath.MinInt(byA, byB)
	}

	if !liquidity.IsPositive() {
		return osmomath.Int{}, domain.TransferError{Denom: p.LPDenom, From: from, To: to}
	}

	if err := p.Bank.Send(ctx, from, p.Address, coinA); err != nil {
		return osmomath.Int{}, err
	}
	if err := p.Bank.Send(ctx, from, p.Address, coinB); err != nil {
		return osmomath.Int{}, err
	}

	p.Bank.MintCoin(to, sdk.NewCoin(p.LPDenom, liquidity))

	return liquidity, nil
}

// Exit implements domain.RoutablePool.
func (p *MockRoutablePool) Exit(ctx context.Context, liquidity osmomath.Int, from, to string) (sdk.Coin, sdk.Coin, error) {
	supply := p.Bank.Supply(p.LPDenom)
	if !supply.IsPositive() || liquidity.GT(supply) {
		return sdk.Coin{}, sdk.Coin{}, domain.TransferError{Denom: p.LPDenom, From: from, To: to}
	}

	reserveA := p.Bank.BalanceOf(ctx, p.Address, p.Key.DenomA)
	reserveB := p.Bank.BalanceOf(ctx, p.Address, p.Key.DenomB)

	amountA := liquidity.Mul(reserveA).Quo(supply)
	amountB := liquidity.Mul(reserveB).Quo(supply)

	p.Bank.BurnCoin(from, sdk.NewCoin(p.LPDenom, liquidity))

	coinA := sdk.NewCoin(p.Key.DenomA, amountA)
	coinB := sdk.NewCoin(p.Key.DenomB, amountB)

	if err := p.Bank.Send(ctx, p.Address, to, coinA); err != nil {
		return sdk.Coin{}, sdk.Coin{}, err
	}
	if err := p.Bank.Send(ctx, p.Address, to, coinB); err != nil {
		return sdk.Coin{}, sdk.Coin{}, err
	}

	return coinA, coinB, nil
}

// String implements domain.RoutablePool.
func (p *MockRoutablePool) String() string {
	return p.Key.String()
}

// constantProductOut computes amountOut = in*997*reserveOut / (reserveIn*1000 + in*997).
func constantProductOut(amountIn, reserveIn, reserveOut *big.Int) *big.Int {
	inWithFee := new(big.Int).Mul(amountIn, feeMul)
	numerator := new(big.Int).Mul(inWithFee, reserveOut)
	denominator := new(big.Int).Mul(reserveIn, feeDen)
	denominator.Add(denominator, inWithFee)
	return numerator.Div(numerator, denominator)
}

// constantProductIn computes amountIn = reserveIn*out*1000 / ((reserveOut-out)*997) + 1.
func constantProductIn(amountOut, reserveIn, reserveOut *big.Int) *big.Int {
	numerator := new(big.Int).Mul(reserveIn, amountOut)
	numerator.Mul(numerator, feeDen)
	denominator := new(big.Int).Sub(reserveOut, amountOut)
	denominator.Mul(denominator, feeMul)
	numerator.Div(numerator, denominator)
	return numerator.Add(numerator, big.NewInt(1))
}

var e18 = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

// stableAmountOut computes the solidly x3y+xy3 curve output with the input
// fee already charged and amounts normalized to 18 decimals.
func (p *MockRoutablePool) stableAmountOut(amountIn *big.Int, denomIn, denomOut string, reserveIn, reserveOut *big.Int) *big.Int {
	inAfterFee := new(big.Int).Mul(amountIn, feeMul)
	inAfterFee.Div(inAfterFee, feeDen)

	decIn := pow10(p.Decimals[denomIn])
	decOut := pow10(p.Decimals[denomOut])

	x := normalize(reserveIn, decIn)
	y := normalize(reserveOut, decOut)
	dx := normalize(inAfterFee, decIn)

	xy := stableK(x, y)
	newY := stableY(new(big.Int).Add(x, dx), xy, y)

	dy := new(big.Int).Sub(y, newY)
	dy.Mul(dy, decOut)
	return dy.Div(dy, e18)
}

// stableAmountInSearch binary-searches the smallest input whose forward quote
// covers tokenOut.
func (p *MockRoutablePool) stableAmountInSearch(ctx context.Context, tokenOut sdk.Coin, tokenInDenom string) osmomath.Int {
	lo := osmomath.OneInt()
	hi := p.Bank.BalanceOf(ctx, p.Address, tokenInDenom).MulRaw(1000)

	for lo.LT(hi) {
		mid := lo.Add(hi).QuoRaw(2)
		quote, err := p.CalculateTokenOutByTokenIn(ctx, sdk.NewCoin(tokenInDenom, mid))
		if err == nil && quote.Amount.GTE(tokenOut.Amount) {
			hi = mid
		} else {
			lo = mid.AddRaw(1)
		}
	}

	return lo
}

// stableK computes k = xy(x^2 + y^2) / 1e36 for 18-decimal x and y.
func stableK(x, y *big.Int) *big.Int {
	a := new(big.Int).Mul(x, y)
	a.Div(a, e18)
	b := new(big.Int).Mul(x, x)
	b.Div(b, e18)
	c := new(big.Int).Mul(y, y)
	c.Div(c, e18)
	b.Add(b, c)
	a.Mul(a, b)
	return a.Div(a, e18)
}

// stableY solves stableK(x0, y) = xy for y by newton iteration.
func stableY(x0, xy, y *big.Int) *big.Int {
	y = new(big.Int).Set(y)
	for i := 0; i < 255; i++ {
		prev := new(big.Int).Set(y)
		k := stableK(x0, y)

		if k.Cmp(xy) < 0 {
			dy := new(big.Int).Sub(xy, k)
			dy.Mul(dy, e18)
			dy.Div(dy, stableD(x0, y))
			y.Add(y, dy)
		} else {
			dy := new(big.Int).Sub(k, xy)
			dy.Mul(dy, e18)
			dy.Div(dy, stableD(x0, y))
			y.Sub(y, dy)
		}

		diff := new(big.Int).Sub(y, prev)
		if diff.CmpAbs(big.NewInt(1)) <= 0 {
			break
		}
	}
	return y
}

// stableD is the derivative d(k)/dy = 3x*y^2/1e36 + x^3/1e36.
func stableD(x0, y *big.Int) *big.Int {
	a := new(big.Int).Mul(y, y)
	a.Div(a, e18)
	a.Mul(a, new(big.Int).Mul(x0, big.NewInt(3)))
	a.Div(a, e18)

	b := new(big.Int).Mul(x0, x0)
	b.Div(b, e18)
	b.Mul(b, x0)
	b.Div(b, e18)

	return a.Add(a, b)
}

func normalize(amount, decScale *big.Int) *big.Int {
	normalized := new(big.Int).Mul(amount, e18)
	return normalized.Div(normalized, decScale)
}

func pow10(decimals int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
}
