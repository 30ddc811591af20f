package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dudesahn/wBLTRouter/domain"
)

func TestRouteValidate(t *testing.T) {
	testcases := []struct {
		name          string
		route         domain.Route
		expectedError bool
	}{
		{
			name:          "empty route",
			route:         domain.Route{},
			expectedError: true,
		},
		{
			name: "single hop",
			route: domain.Route{
				{TokenInDenom: "usdc", TokenOutDenom: "wblt"},
			},
		},
		{
			name: "two continuous hops",
			route: domain.Route{
				{TokenInDenom: "usdc", TokenOutDenom: "wblt"},
				{TokenInDenom: "wblt", TokenOutDenom: "weth"},
			},
		},
		{
			name: "empty denom",
			route: domain.Route{
				{TokenInDenom: "", TokenOutDenom: "wblt"},
			},
			expectedError: true,
		},
		{
			name: "self swap",
			route: domain.Route{
				{TokenInDenom: "usdc", TokenOutDenom: "usdc"},
			},
			expectedError: true,
		},
		{
			name: "discontinuity between hops",
			route: domain.Route{
				{TokenInDenom: "usdc", TokenOutDenom: "wblt"},
				{TokenInDenom: "weth", TokenOutDenom: "usdc"},
			},
			expectedError: true,
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.route.Validate()

			if tc.expectedError {
				require.Error(t, err)
				require.ErrorAs(t, err, &domain.InvalidRouteError{})
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestRouteReverse(t *testing.T) {
	route := domain.Route{
		{TokenInDenom: "usdc", TokenOutDenom: "wblt", Stable: true},
		{TokenInDenom: "wblt", TokenOutDenom: "weth"},
	}

	reversed := route.Reverse()

	require.NoError(t, reversed.Validate())
	assert.Equal(t, "weth", reversed.TokenInDenom())
	assert.Equal(t, "usdc", reversed.TokenOutDenom())
	assert.True(t, reversed[1].Stable)
}

func TestPoolKeyOrdering(t *testing.T) {
	keyAB := domain.NewPoolKey("wblt", "usdc", false)
	keyBA := domain.NewPoolKey("usdc", "wblt", false)

	assert.Equal(t, keyAB, keyBA)
	assert.Equal(t, "wblt", keyAB.OtherDenom("usdc"))
	assert.Equal(t, "usdc", keyAB.OtherDenom("wblt"))
	assert.Equal(t, "", keyAB.OtherDenom("weth"))

	// The stable flag separates curve families for the same pair.
	assert.NotEqual(t, keyAB, domain.NewPoolKey("wblt", "usdc", true))
}
