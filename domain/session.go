package domain

import (
	"sync/atomic"
	"time"
)

// Session はアリーナとの1接続の論理的な状態を表す構造体です。
// IDはAssignを受け取るまでゼロ値です。
type Session struct {
	id atomic.Pointer[SessionID]

	// activity
	lastRead atomic.Int64
	lastPong atomic.Int64

	// lifecycle
	closed atomic.Bool
}

func NewSession() *Session {
	s := &Session{}
	now := time.Now().UnixNano()
	s.lastRead.Store(now)
	s.lastPong.Store(now)
	return s
}

// Assign はアリーナから通知されたIDを保存します。再通知の場合は上書きします。
func (s *Session) Assign(id SessionID) {
	s.id.Store(&id)
}

// ID は割り当て済みのIDを返します。未割り当てならゼロ値です。
func (s *Session) ID() SessionID {
	if p := s.id.Load(); p != nil {
		return *p
	}
	return SessionID{}
}

func (s *Session) Assigned() bool {
	return s.id.Load() != nil
}

func (s *Session) TouchRead() {
	s.lastRead.Store(time.Now().UnixNano())
}

// TouchPong はアリーナからの死活応答（PingまたはPong）を記録します。
func (s *Session) TouchPong() {
	s.lastPong.Store(time.Now().UnixNano())
}

func (s *Session) Close() bool {
	return s.closed.CompareAndSwap(false, true)
}

func (s *Session) IsClosed() bool {
	return s.closed.Load()
}

// IsIdle はアリーナからの受信・死活応答が timeout を超えて途絶えているかを返します。
func (s *Session) IsIdle(timeout time.Duration) (bool, IdleReason) {
	if timeout <= 0 {
		return false, IdleDisabled
	}
	var reason IdleReason
	if s.IsReadIdle(timeout) {
		reason |= IdleRead
	}
	if s.IsPongIdle(timeout) {
		reason |= IdlePong
	}
	return reason != IdleNone, reason
}

func (s *Session) IsReadIdle(timeout time.Duration) bool {
	return isIdleSince(unixNanoToTime(s.lastRead.Load()), timeout)
}

func (s *Session) IsPongIdle(timeout time.Duration) bool {
	return isIdleSince(unixNanoToTime(s.lastPong.Load()), timeout)
}

func isIdleSince(last time.Time, timeout time.Duration) bool {
	return time.Since(last) > timeout
}

func unixNanoToTime(nano int64) time.Time {
	return time.Unix(0, nano)
}
