package domain

import (
	"context"
	"sync/atomic"
)

// Connection はアリーナとの物理的な接続を表します。
type Connection struct {
	transport Transport
	closed    atomic.Bool
}

func NewConnection(transport Transport) *Connection {
	return &Connection{transport: transport}
}

func (c *Connection) Write(ctx context.Context, data []byte) error {
	return c.transport.Write(ctx, data)
}

func (c *Connection) Read(ctx context.Context) ([]byte, error) {
	return c.transport.Read(ctx)
}

// Close は正常終了コードで接続を閉じます。2回目以降は何もしません。
func (c *Connection) Close() {
	if !c.closed.CompareAndSwap(false, true) {
		return
	}
	_ = c.transport.Close(1000, "")
}
