// Package console はレポートを標準出力などのテキストストリームへ書き出します。
package console

import (
	"fmt"
	"io"

	"volatility_report/internal/feature/report/domain/entity"
	"volatility_report/internal/feature/report/usecase"
)

// Reporter は usecase.Reporter のテキスト出力実装です。
type Reporter struct {
	w io.Writer
}

var _ usecase.Reporter = (*Reporter)(nil)

// NewReporter は w に書き出す Reporter を生成します。
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// ReportVolatility はボラティリティをパーセント表記（小数点以下2桁）で出力します。
func (r *Reporter) ReportVolatility(results []entity.VolatilityResult) error {
	if _, err := fmt.Fprintln(r.w, "Intraday Volatility:"); err != nil {
		return err
	}
	for _, res := range results {
		if res.Volatility == nil {
			continue
		}
		if _, err := fmt.Fprintf(r.w, "%s: %.2f%%\n", res.Symbol, *res.Volatility*100); err != nil {
			return err
		}
	}
	return nil
}

// ReportSummary は評価額と余力を通貨表記（小数点以下2桁）で出力します。
func (r *Reporter) ReportSummary(summary entity.PortfolioSummary) error {
	_, err := fmt.Fprintf(r.w, "Total Value: $%s\nAvailable Buying Power: $%s\n",
		summary.TotalValue.StringFixed(2),
		summary.AvailableFunds.StringFixed(2),
	)
	return err
}

// PrintError は致命的エラーの診断メッセージを出力します。
func PrintError(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "Error: %v\n", err)
}
