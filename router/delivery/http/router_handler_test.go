package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/dudesahn/wBLTRouter/log"
	routerhttp "github.com/dudesahn/wBLTRouter/router/delivery/http"
	"github.com/dudesahn/wBLTRouter/router/usecase/routertesting"
)

type RouterHandlerTestSuite struct {
	routertesting.RouterTestHelper
}

func TestRouterHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RouterHandlerTestSuite))
}

// request runs one GET against a freshly registered handler and returns the
// recorded response.
func (s *RouterHandlerTestSuite) request(path string, queryParams map[string]string) *httptest.ResponseRecorder {
	e := echo.New()
	routerhttp.NewRouterHandler(e, s.RouterUsecase, log.NewNoOpLogger())

	req := httptest.NewRequest(http.MethodGet, path, nil)
	q := req.URL.Query()
	for k, v := range queryParams {
		q.Set(k, v)
	}
	req.URL.RawQuery = q.Encode()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func (s *RouterHandlerTestSuite) TestGetAmountsOut() {
	s.SetupDefaultEnvironment()

	rec := s.request("/router/amounts-out", map[string]string{
		"tokenIn": "1000000usdc",
		"route":   "usdc:wblt:volatile,wblt:weth:volatile",
	})

	s.Require().Equal(http.StatusOK, rec.Code)

	var response routerhttp.GetAmountsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))

	s.Require().Len(response.Amounts, 3)
	s.Require().Equal(osmomath.NewInt(1_000_000), response.Amounts[0])
	s.Require().True(response.Amounts[2].IsPositive())
}

func (s *RouterHandlerTestSuite) TestGetAmountsOut_BadRequest() {
	s.SetupDefaultEnvironment()

	// Malformed route string.
	rec := s.request("/router/amounts-out", map[string]string{
		"tokenIn": "1000000usdc",
		"route":   "usdc:wblt",
	})
	s.Require().Equal(http.StatusBadRequest, rec.Code)

	// Route does not start at the input denom.
	rec = s.request("/router/amounts-out", map[string]string{
		"tokenIn": "1000000weth",
		"route":   "usdc:wblt:volatile",
	})
	s.Require().Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterHandlerTestSuite) TestGetAmountsIn() {
	s.SetupDefaultEnvironment()

	rec := s.request("/router/amounts-in", map[string]string{
		"tokenOut": "1000weth",
		"route":    "usdc:wblt:volatile,wblt:weth:volatile",
	})

	s.Require().Equal(http.StatusOK, rec.Code)

	var response routerhttp.GetAmountsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))

	s.Require().Len(response.Amounts, 3)
	s.Require().Equal(osmomath.NewInt(1000), response.Amounts[2])
}

func (s *RouterHandlerTestSuite) TestGetMintAmountWrappedBLT() {
	s.SetupDefaultEnvironment()

	// Rate is one, so depositing the base asset mints one-for-one.
	rec := s.request("/router/mint-amount", map[string]string{
		"assets": "1000000blt",
	})
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().Contains(rec.Body.String(), "1000000")

	rec = s.request("/router/mint-amount", map[string]string{
		"assets": "1000000usdt",
	})
	s.Require().Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterHandlerTestSuite) TestQuoteMintAmountBLT() {
	s.SetupDefaultEnvironment()

	rec := s.request("/router/quote-mint", map[string]string{
		"denom":  "blt",
		"amount": "1000000",
	})
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().Contains(rec.Body.String(), "1000000")

	rec = s.request("/router/quote-mint", map[string]string{
		"denom": "blt",
	})
	s.Require().Equal(http.StatusBadRequest, rec.Code)
}
