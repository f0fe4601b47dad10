package di_test

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"volatility_report/internal/app/di"
	"volatility_report/internal/feature/report/domain/entity"
	"volatility_report/internal/feature/report/usecase"
	"volatility_report/internal/platform/config"
	"volatility_report/internal/platform/externalapi/tdameritrade"
	"volatility_report/internal/platform/mockapi"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// startAPI は fixture を返す擬似APIを起動し、そのURLを返します。
func startAPI(t *testing.T, f *mockapi.Fixture) (*mockapi.Server, string) {
	t.Helper()
	s := mockapi.NewServer(f)
	ts := httptest.NewServer(mockapi.NewRouter(s))
	t.Cleanup(ts.Close)
	return s, ts.URL + "/v1"
}

func appConfig(baseURL, watchlist string) *config.AppConfig {
	return &config.AppConfig{
		LogLevel: "info",
		TDAmeritrade: tdameritrade.Config{
			AccessToken: "mock-token",
			BaseURL:     baseURL,
			Timeout:     5 * time.Second,
		},
		Report: usecase.Config{
			AccountID:     "123456789",
			WatchlistName: watchlist,
		},
	}
}

// expectedVolatility は fixture の足から期待される出力行を作ります。
func expectedVolatility(t *testing.T, bars []mockapi.Candle, symbol string) string {
	t.Helper()
	candles := make([]entity.Candle, 0, len(bars))
	for _, b := range bars {
		candles = append(candles, entity.Candle{High: b.High, Low: b.Low})
	}
	v, ok := usecase.IntradayVolatility(candles)
	require.True(t, ok)
	return fmt.Sprintf("%s: %.2f%%", symbol, v*100)
}

func TestReport_EndToEnd(t *testing.T) {
	f := mockapi.DemoFixture()
	s, baseURL := startAPI(t, f)

	var out bytes.Buffer
	res, err := di.NewReport(appConfig(baseURL, "My Watchlist"), &out).Run(context.Background())
	require.NoError(t, err)

	want := strings.Join([]string{
		"Intraday Volatility:",
		expectedVolatility(t, f.Candles["AAPL"], "AAPL"),
		expectedVolatility(t, f.Candles["MSFT"], "MSFT"),
		expectedVolatility(t, f.Candles["NVDA"], "NVDA"),
		"Total Value: $3500.00",
		"Available Buying Power: $25000.00",
	}, "\n") + "\n"
	assert.Equal(t, want, out.String())

	assert.Len(t, res.Volatility, 3)
	assert.Equal(t, 1, s.Hits("watchlists"))
	assert.Equal(t, 3, s.HitsWithPrefix("pricehistory:"))
	assert.Equal(t, 1, s.Hits("balances"))
	assert.Equal(t, 3, s.HitsWithPrefix("quotes:"))
}

func TestReport_Idempotent(t *testing.T) {
	_, baseURL := startAPI(t, mockapi.DemoFixture())
	cfg := appConfig(baseURL, "My Watchlist")

	var first, second bytes.Buffer
	_, err := di.NewReport(cfg, &first).Run(context.Background())
	require.NoError(t, err)
	_, err = di.NewReport(cfg, &second).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first.String(), second.String())
}

func TestReport_SymbolHistoryFailureIsSkipped(t *testing.T) {
	f := mockapi.DemoFixture()
	f.FailStatus = map[string]int{"pricehistory:MSFT": http.StatusInternalServerError}
	_, baseURL := startAPI(t, f)

	var out bytes.Buffer
	res, err := di.NewReport(appConfig(baseURL, "My Watchlist"), &out).Run(context.Background())
	require.NoError(t, err)

	assert.NotContains(t, out.String(), "MSFT:")
	assert.Contains(t, out.String(), "AAPL:")
	assert.Contains(t, out.String(), "NVDA:")
	assert.NotContains(t, res.Volatility, "MSFT")
	// 時価評価には MSFT も含まれる
	assert.Contains(t, out.String(), "Total Value: $3500.00")
}

func TestReport_FatalErrors(t *testing.T) {
	tests := []struct {
		name      string
		watchlist string
		fail      map[string]int
		wantErr   error
		check     func(t *testing.T, s *mockapi.Server, out string)
	}{
		{
			name:      "watchlist not found",
			watchlist: "Nope",
			wantErr:   usecase.ErrWatchlistNotFound,
			check: func(t *testing.T, s *mockapi.Server, out string) {
				assert.Empty(t, out)
				assert.Zero(t, s.HitsWithPrefix("pricehistory:"))
				assert.Zero(t, s.HitsWithPrefix("quotes:"))
			},
		},
		{
			name:      "watchlists unavailable",
			watchlist: "My Watchlist",
			fail:      map[string]int{"watchlists": http.StatusServiceUnavailable},
			check: func(t *testing.T, s *mockapi.Server, out string) {
				assert.Empty(t, out)
				assert.Zero(t, s.HitsWithPrefix("pricehistory:"))
			},
		},
		{
			name:      "balances unavailable",
			watchlist: "My Watchlist",
			fail:      map[string]int{"balances": http.StatusInternalServerError},
			check: func(t *testing.T, s *mockapi.Server, out string) {
				assert.Contains(t, out, "Intraday Volatility:")
				assert.NotContains(t, out, "Total Value")
				assert.Zero(t, s.HitsWithPrefix("quotes:"))
			},
		},
		{
			name:      "quote unavailable",
			watchlist: "My Watchlist",
			fail:      map[string]int{"quotes:MSFT": http.StatusBadGateway},
			check: func(t *testing.T, s *mockapi.Server, out string) {
				assert.NotContains(t, out, "Total Value")
				// NVDA は MSFT の失敗後に問い合わせない
				assert.Zero(t, s.Hits("quotes:NVDA"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := mockapi.DemoFixture()
			f.FailStatus = tt.fail
			s, baseURL := startAPI(t, f)

			var out bytes.Buffer
			res, err := di.NewReport(appConfig(baseURL, tt.watchlist), &out).Run(context.Background())

			require.Error(t, err)
			assert.Nil(t, res)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				var se *tdameritrade.StatusError
				assert.ErrorAs(t, err, &se)
			}
			tt.check(t, s, out.String())
		})
	}
}

func TestReport_Unauthorized(t *testing.T) {
	_, baseURL := startAPI(t, mockapi.DemoFixture())
	cfg := appConfig(baseURL, "My Watchlist")
	cfg.TDAmeritrade.AccessToken = "wrong"

	_, err := di.NewReport(cfg, &bytes.Buffer{}).Run(context.Background())

	var se *tdameritrade.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusUnauthorized, se.StatusCode)
	assert.Contains(t, err.Error(), "status code 401 - Unauthorized")
}
