// Command report prints the intraday volatility of a watchlist and the value of its holdings.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"volatility_report/internal/app/di"
	"volatility_report/internal/feature/report/transport/console"
	"volatility_report/internal/platform/config"
)

const (
	exitFailure     = 1
	exitConfigError = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	// 設定読み込み（.env があれば先に環境変数へ展開）
	cfg, err := config.Load()
	if err != nil {
		console.PrintError(os.Stdout, err)
		return exitConfigError
	}
	level, _ := config.ParseLevel(cfg.LogLevel)
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	// Ctrl+C / SIGTERM で実行中のリクエストを中断する
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if _, err := di.NewReport(cfg, os.Stdout).Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			slog.Warn("report interrupted")
		}
		console.PrintError(os.Stdout, err)
		return exitFailure
	}
	return 0
}
