package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"volatility_report/internal/feature/report/domain/entity"
)

// PriceHistoryQuery は価格履歴の取得条件です。
type PriceHistoryQuery struct {
	PeriodDays       int // 取得期間（営業日）
	FrequencyMinutes int // 足の間隔（分）
}

// BrokerageRepository は証券会社APIへのアクセスを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type BrokerageRepository interface {
	GetWatchlists(ctx context.Context, accountID string) ([]entity.Watchlist, error)
	GetPriceHistory(ctx context.Context, symbol string, q PriceHistoryQuery) ([]entity.Candle, error)
	GetBalance(ctx context.Context, accountID string) (entity.Balance, error)
	GetQuote(ctx context.Context, symbol string) (entity.Quote, error)
}

// Reporter はレポートの出力先を抽象化します。
type Reporter interface {
	ReportVolatility(results []entity.VolatilityResult) error
	ReportSummary(summary entity.PortfolioSummary) error
}

// Result は1回の実行で得られた結果です。
type Result struct {
	Volatility map[string]float64 // 計算できた銘柄のみを含む
	Summary    entity.PortfolioSummary
}

// ReportUsecase はウォッチリストのボラティリティとポートフォリオ評価額を算出します。
type ReportUsecase struct {
	cfg      Config
	repo     BrokerageRepository
	reporter Reporter
}

// NewReportUsecase は新しい ReportUsecase を生成します。
// LookbackDays / IntradayIntervalMinutes が0以下の場合はデフォルト値を使用します。
func NewReportUsecase(cfg Config, repo BrokerageRepository, reporter Reporter) *ReportUsecase {
	return &ReportUsecase{cfg: cfg.withDefaults(), repo: repo, reporter: reporter}
}

// Run はウォッチリスト取得からレポート出力までを1回実行します。
// 価格履歴の取得失敗は銘柄単位で無視し、それ以外の失敗は即座にエラーを返します。
func (u *ReportUsecase) Run(ctx context.Context) (*Result, error) {
	// 1. ウォッチリスト取得
	watchlist, err := u.fetchWatchlist(ctx)
	if err != nil {
		return nil, err
	}
	symbols := watchlist.Symbols()
	slog.Info("watchlist loaded", "name", watchlist.Name, "symbols", len(symbols))

	// 2. ボラティリティを銘柄ごとに並行取得
	results := u.fetchVolatilities(ctx, symbols)

	// 3. ボラティリティを出力
	reported := make([]entity.VolatilityResult, 0, len(results))
	volatility := make(map[string]float64, len(results))
	for _, r := range results {
		if r.Volatility == nil {
			continue
		}
		reported = append(reported, r)
		volatility[r.Symbol] = *r.Volatility
	}
	if err := u.reporter.ReportVolatility(reported); err != nil {
		return nil, fmt.Errorf("report volatility: %w", err)
	}

	// 4. 残高取得
	balance, err := u.repo.GetBalance(ctx, u.cfg.AccountID)
	if err != nil {
		return nil, fmt.Errorf("fetch balances: %w", err)
	}

	// 5. 時価を順番に取得して評価額を積算
	total, err := u.portfolioValue(ctx, watchlist, symbols)
	if err != nil {
		return nil, err
	}

	// 6. 合計を出力
	summary := entity.PortfolioSummary{TotalValue: total, AvailableFunds: balance.AvailableFunds}
	if err := u.reporter.ReportSummary(summary); err != nil {
		return nil, fmt.Errorf("report summary: %w", err)
	}

	return &Result{Volatility: volatility, Summary: summary}, nil
}

// fetchWatchlist は設定された名前のウォッチリストを返します。
func (u *ReportUsecase) fetchWatchlist(ctx context.Context) (entity.Watchlist, error) {
	lists, err := u.repo.GetWatchlists(ctx, u.cfg.AccountID)
	if err != nil {
		return entity.Watchlist{}, fmt.Errorf("fetch watchlists: %w", err)
	}
	for _, w := range lists {
		if w.Name == u.cfg.WatchlistName {
			return w, nil
		}
	}
	return entity.Watchlist{}, fmt.Errorf("%w: %q", ErrWatchlistNotFound, u.cfg.WatchlistName)
}

// fetchVolatilities は全銘柄の価格履歴を同時に取得し、すべての完了を待ってから
// ウォッチリスト順の結果を返します。各goroutineは自分のスロットにのみ書き込みます。
func (u *ReportUsecase) fetchVolatilities(ctx context.Context, symbols []string) []entity.VolatilityResult {
	q := PriceHistoryQuery{
		PeriodDays:       u.cfg.LookbackDays,
		FrequencyMinutes: u.cfg.IntradayIntervalMinutes,
	}
	results := make([]entity.VolatilityResult, len(symbols))

	var g errgroup.Group
	for i, s := range symbols {
		results[i].Symbol = s
		g.Go(func() error {
			results[i].Volatility = u.volatilityOf(ctx, s, q)
			return nil
		})
	}
	// 失敗は銘柄単位で握りつぶすため、Wait がエラーを返すことはない
	_ = g.Wait()

	return results
}

// volatilityOf は1銘柄のボラティリティを返します。取得・計算できない場合は nil です。
func (u *ReportUsecase) volatilityOf(ctx context.Context, symbol string, q PriceHistoryQuery) *float64 {
	candles, err := u.repo.GetPriceHistory(ctx, symbol, q)
	if err != nil {
		slog.Warn("price history unavailable", "symbol", symbol, "error", err)
		return nil
	}
	vol, ok := IntradayVolatility(candles)
	if !ok {
		slog.Warn("not enough bars for volatility", "symbol", symbol, "bars", len(candles))
		return nil
	}
	return &vol
}

// portfolioValue はウォッチリスト順に1銘柄ずつ時価を取得し、保有数量を掛けて合算します。
func (u *ReportUsecase) portfolioValue(ctx context.Context, watchlist entity.Watchlist, symbols []string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, s := range symbols {
		quote, err := u.repo.GetQuote(ctx, s)
		if err != nil {
			return decimal.Zero, fmt.Errorf("fetch quote %s: %w", s, err)
		}
		total = total.Add(quote.LastPrice.Mul(watchlist.QuantityOf(s)))
	}
	return total, nil
}
