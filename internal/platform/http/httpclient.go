package http

import (
	"net"
	"net/http"
	"time"
)

// DefaultMaxConnsPerHost は同一ホストへの同時接続数の既定値です。
// 市場データはすべて単一のホストから取得します。
const DefaultMaxConnsPerHost = 8

// NewHTTPClient は外部API呼び出し用に設定されたHTTPクライアントを作成します。
//
// 設定:
//   - Proxy: 環境変数（HTTP_PROXYなど）が設定されている場合に使用
//   - Dialer.Timeout: TCP接続タイムアウト
//   - MaxConnsPerHost / MaxIdleConnsPerHost: 1ホストへの接続数の上限と再利用数
//   - Client.Timeout: リクエスト全体のタイムアウト（呼び出し元から渡される）
//
// maxConnsPerHost が0以下の場合は DefaultMaxConnsPerHost を使います。
// http.DefaultClientにはタイムアウトがないため、常にこのクライアントを使用すること。
func NewHTTPClient(timeout time.Duration, maxConnsPerHost int) *http.Client {
	if maxConnsPerHost <= 0 {
		maxConnsPerHost = DefaultMaxConnsPerHost
	}
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        maxConnsPerHost * 2,
		MaxIdleConnsPerHost: maxConnsPerHost,
		MaxConnsPerHost:     maxConnsPerHost,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
		ForceAttemptHTTP2:   true,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
