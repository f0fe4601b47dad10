package tdameritrade

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	json "github.com/goccy/go-json"

	"volatility_report/internal/feature/report/domain/entity"
	"volatility_report/internal/feature/report/usecase"
	"volatility_report/internal/platform/externalapi/tdameritrade/dto"
)

// TDAmeritradeBrokerage はTD Ameritrade APIから口座・相場データを取得するBrokerageRepository実装です。
// 1つの *http.Client を全リクエストで共有し、並行呼び出しに対して安全です。
type TDAmeritradeBrokerage struct {
	cfg      Config
	client   *http.Client
	validate *validator.Validate
}

// TDAmeritradeBrokerageがBrokerageRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.BrokerageRepository = (*TDAmeritradeBrokerage)(nil)

// NewTDAmeritradeBrokerage は指定された設定とHTTPクライアントでTDAmeritradeBrokerageの新しいインスタンスを生成します。
func NewTDAmeritradeBrokerage(cfg Config, client *http.Client) *TDAmeritradeBrokerage {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return &TDAmeritradeBrokerage{cfg: cfg, client: client, validate: validator.New()}
}

// GetWatchlists は口座に登録されたウォッチリストの一覧を取得します。
func (t *TDAmeritradeBrokerage) GetWatchlists(ctx context.Context, accountID string) ([]entity.Watchlist, error) {
	var body []dto.Watchlist
	if err := t.get(ctx, "accounts/"+url.PathEscape(accountID)+"/watchlists", nil, &body); err != nil {
		return nil, err
	}

	out := make([]entity.Watchlist, 0, len(body))
	for i := range body {
		if err := t.validate.Struct(&body[i]); err != nil {
			return nil, fmt.Errorf("%w: watchlist[%d]: %v", ErrMalformedPayload, i, err)
		}
		w := entity.Watchlist{
			Name:  body[i].Name,
			Items: make([]entity.WatchlistItem, 0, len(body[i].WatchlistItems)),
		}
		for _, it := range body[i].WatchlistItems {
			w.Items = append(w.Items, entity.WatchlistItem{Symbol: it.Symbol, Quantity: it.Quantity})
		}
		out = append(out, w)
	}
	return out, nil
}

// GetPriceHistory は日中足の価格履歴を取得し、entity.Candleのスライスとして返します。
func (t *TDAmeritradeBrokerage) GetPriceHistory(ctx context.Context, symbol string, q usecase.PriceHistoryQuery) ([]entity.Candle, error) {
	params := url.Values{}
	params.Set("periodType", "day")
	params.Set("period", strconv.Itoa(q.PeriodDays))
	params.Set("frequencyType", "minute")
	params.Set("frequency", strconv.Itoa(q.FrequencyMinutes))

	var body dto.PriceHistory
	if err := t.get(ctx, "marketdata/"+url.PathEscape(symbol)+"/pricehistory", params, &body); err != nil {
		return nil, err
	}
	if err := t.validate.Struct(&body); err != nil {
		return nil, fmt.Errorf("%w: price history %s: %v", ErrMalformedPayload, symbol, err)
	}

	candles := make([]entity.Candle, 0, len(body.Candles))
	for _, c := range body.Candles {
		candles = append(candles, entity.Candle{
			Time:   time.UnixMilli(*c.Datetime).UTC(),
			Open:   *c.Open,
			High:   *c.High,
			Low:    *c.Low,
			Close:  *c.Close,
			Volume: c.Volume,
		})
	}
	return candles, nil
}

// GetBalance は口座残高から余力（availableFunds）を取得します。
func (t *TDAmeritradeBrokerage) GetBalance(ctx context.Context, accountID string) (entity.Balance, error) {
	var body dto.Balances
	if err := t.get(ctx, "accounts/"+url.PathEscape(accountID)+"/balances", nil, &body); err != nil {
		return entity.Balance{}, err
	}
	if err := t.validate.Struct(&body); err != nil {
		return entity.Balance{}, fmt.Errorf("%w: balances: %v", ErrMalformedPayload, err)
	}
	return entity.Balance{AvailableFunds: *body.SecuritiesAccount.InitialBalances.AvailableFunds}, nil
}

// GetQuote は1銘柄の最新値を取得します。
func (t *TDAmeritradeBrokerage) GetQuote(ctx context.Context, symbol string) (entity.Quote, error) {
	params := url.Values{}
	params.Set("symbol", symbol)

	var body map[string]dto.Quote
	if err := t.get(ctx, "marketdata/quotes", params, &body); err != nil {
		return entity.Quote{}, err
	}
	q, ok := body[symbol]
	if !ok {
		return entity.Quote{}, fmt.Errorf("%w: quote for %s missing", ErrMalformedPayload, symbol)
	}
	if err := t.validate.Struct(&q); err != nil {
		return entity.Quote{}, fmt.Errorf("%w: quote %s: %v", ErrMalformedPayload, symbol, err)
	}
	return entity.Quote{Symbol: symbol, LastPrice: *q.LastPrice}, nil
}

// get はGETリクエストを送信し、2xx応答のJSONボディを out にデコードします。
func (t *TDAmeritradeBrokerage) get(ctx context.Context, path string, params url.Values, out any) error {
	if params == nil {
		params = url.Values{}
	}
	if t.cfg.APIKey != "" {
		params.Set("apikey", t.cfg.APIKey)
	}

	u := strings.TrimRight(t.cfg.BaseURL, "/") + "/" + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+t.cfg.AccessToken)

	res, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()
	slog.Debug("tdameritrade response", "path", path, "status", res.StatusCode)

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return &StatusError{StatusCode: res.StatusCode, Reason: reason(res)}
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return nil
}

// reason はステータス行の理由句を返します。無ければ標準の文言を使います。
func reason(res *http.Response) string {
	r := strings.TrimSpace(strings.TrimPrefix(res.Status, strconv.Itoa(res.StatusCode)))
	if r == "" {
		r = http.StatusText(res.StatusCode)
	}
	return r
}
