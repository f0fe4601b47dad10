package usecase

import "fmt"

const (
	// DefaultLookbackDays は価格履歴の取得期間（営業日）のデフォルト値です。
	DefaultLookbackDays = 5
	// DefaultIntradayIntervalMinutes は日中足の間隔（分）のデフォルト値です。
	DefaultIntradayIntervalMinutes = 5
)

// Config はレポート実行に必要な口座・ウォッチリストの設定です。
type Config struct {
	AccountID               string `envconfig:"ACCOUNT_ID" required:"true"`
	WatchlistName           string `envconfig:"WATCHLIST_NAME" required:"true"`
	LookbackDays            int    `envconfig:"LOOKBACK_DAYS" default:"5"`
	IntradayIntervalMinutes int    `envconfig:"INTRADAY_INTERVAL_MINUTES" default:"5"`
}

// Validate は設定値の整合性を検証します。
func (c Config) Validate() error {
	if c.AccountID == "" {
		return fmt.Errorf("%w: account id is empty", ErrInvalidConfig)
	}
	if c.WatchlistName == "" {
		return fmt.Errorf("%w: watchlist name is empty", ErrInvalidConfig)
	}
	if c.LookbackDays < 0 {
		return fmt.Errorf("%w: lookback days must be positive, got %d", ErrInvalidConfig, c.LookbackDays)
	}
	if c.IntradayIntervalMinutes < 0 {
		return fmt.Errorf("%w: intraday interval must be positive, got %d", ErrInvalidConfig, c.IntradayIntervalMinutes)
	}
	return nil
}

// withDefaults はゼロ値の項目をデフォルト値で補完したコピーを返します。
func (c Config) withDefaults() Config {
	if c.LookbackDays <= 0 {
		c.LookbackDays = DefaultLookbackDays
	}
	if c.IntradayIntervalMinutes <= 0 {
		c.IntradayIntervalMinutes = DefaultIntradayIntervalMinutes
	}
	return c
}
