package adapterwebsocket

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/coder/websocket"

	"arenabot/domain"
)

// DialConfig はアリーナへの接続設定です。
type DialConfig struct {
	URL string
	// Token が空でなければ Authorization: Bearer として送る
	Token string
	// MaxElapsed を超えたら諦める。0なら ctx が切れるまで再試行する
	MaxElapsed time.Duration
	// InitialInterval は最初の再試行までの待ち時間
	InitialInterval time.Duration
}

// Dial は指数バックオフで再試行しながらアリーナに接続し、Transportを返します。
func Dial(ctx context.Context, cfg DialConfig) (domain.Transport, error) {
	header := http.Header{}
	if cfg.Token != "" {
		header.Set("Authorization", "Bearer "+cfg.Token)
	}

	b := backoff.NewExponentialBackOff()
	if cfg.InitialInterval > 0 {
		b.InitialInterval = cfg.InitialInterval
	}
	b.MaxInterval = 10 * time.Second

	opts := []backoff.RetryOption{
		backoff.WithBackOff(b),
		backoff.WithNotify(func(err error, next time.Duration) {
			slog.WarnContext(ctx, "dial failed, retrying", "url", cfg.URL, "err", err, "next", next)
		}),
	}
	if cfg.MaxElapsed > 0 {
		opts = append(opts, backoff.WithMaxElapsedTime(cfg.MaxElapsed))
	}

	conn, err := backoff.Retry(ctx, func() (*websocket.Conn, error) {
		conn, resp, err := websocket.Dial(ctx, cfg.URL, &websocket.DialOptions{HTTPHeader: header})
		if err != nil {
			// 認証エラーは再試行しても変わらない
			if resp != nil && (resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden) {
				return nil, backoff.Permanent(fmt.Errorf("dial %s: %s: %w", cfg.URL, resp.Status, err))
			}
			return nil, err
		}
		return conn, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("dial: %w", err)
	}
	slog.InfoContext(ctx, "connected", "url", cfg.URL)
	return NewTransportFrom(conn), nil
}
