package usecase

import (
	"errors"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "valid", cfg: Config{AccountID: "123", WatchlistName: "Tech", LookbackDays: 5, IntradayIntervalMinutes: 5}},
		{name: "zero periods fall back to defaults", cfg: Config{AccountID: "123", WatchlistName: "Tech"}},
		{name: "missing account", cfg: Config{WatchlistName: "Tech"}, wantErr: true},
		{name: "missing watchlist", cfg: Config{AccountID: "123"}, wantErr: true},
		{name: "negative lookback", cfg: Config{AccountID: "123", WatchlistName: "Tech", LookbackDays: -1}, wantErr: true},
		{name: "negative interval", cfg: Config{AccountID: "123", WatchlistName: "Tech", IntradayIntervalMinutes: -5}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.cfg.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidConfig) {
					t.Fatalf("expected ErrInvalidConfig, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_withDefaults(t *testing.T) {
	t.Parallel()

	got := Config{AccountID: "123", WatchlistName: "Tech"}.withDefaults()
	if got.LookbackDays != DefaultLookbackDays {
		t.Errorf("expected lookback %d, got %d", DefaultLookbackDays, got.LookbackDays)
	}
	if got.IntradayIntervalMinutes != DefaultIntradayIntervalMinutes {
		t.Errorf("expected interval %d, got %d", DefaultIntradayIntervalMinutes, got.IntradayIntervalMinutes)
	}

	custom := Config{LookbackDays: 10, IntradayIntervalMinutes: 15}.withDefaults()
	if custom.LookbackDays != 10 || custom.IntradayIntervalMinutes != 15 {
		t.Errorf("custom values not preserved: %+v", custom)
	}
}
