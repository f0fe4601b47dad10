// Package http はブローカーAPI呼び出し用の共有HTTPクライアントを提供します。
package http

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient は1回の実行で共有するHTTPクライアントを作成します。
//
// 設定:
//   - Proxy: 環境変数（HTTPS_PROXYなど）が設定されている場合に使用
//   - Dialer.Timeout: TCP接続確立のタイムアウト
//   - MaxIdleConnsPerHost: 価格履歴の並行取得で同一ホストへの接続を再利用できる数
//   - TLSHandshakeTimeout: HTTPSハンドシェイクの最大時間
//   - Client.Timeout: リクエスト全体のタイムアウト（0の場合は無制限に待機）
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:   true,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 32,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}
	if timeout < 0 {
		timeout = 0
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
