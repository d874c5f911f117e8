package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	adapterwebsocket "arenabot/adapter/websocket"
	"arenabot/auth"
	"arenabot/domain"
	"arenabot/driver"
	"arenabot/handler"
	"arenabot/policy"
)

var ErrInvalidFleet = errors.New("invalid fleet config")

// DialFunc はアリーナへの接続を確立します。テストでは差し替えます。
type DialFunc func(ctx context.Context, cfg adapterwebsocket.DialConfig) (domain.Transport, error)

// FleetConfig は同じポリシーで動く複数ボットの設定です。
type FleetConfig struct {
	URL    string
	Policy string
	Params policy.Params
	Count  int
	// Name はボット名の接頭辞。"<Name>-<index>" になる
	Name   string
	RoomID domain.RoomID

	Secret   string
	TokenTTL time.Duration

	Seed           uint64
	ReconnectDelay time.Duration
	Driver         driver.Options
	Dial           DialFunc
}

// Fleet はボットごとに接続・再接続を繰り返します。
type Fleet struct {
	cfg     FleetConfig
	members []*member
}

type member struct {
	name string
	idx  int

	mu       sync.Mutex
	current  *driver.Driver
	restarts int
}

func NewFleet(cfg FleetConfig) (*Fleet, error) {
	if cfg.Count <= 0 {
		return nil, fmt.Errorf("%w: count %d", ErrInvalidFleet, cfg.Count)
	}
	if cfg.URL == "" {
		return nil, fmt.Errorf("%w: empty url", ErrInvalidFleet)
	}
	if err := cfg.Params.Validate(); err != nil {
		return nil, err
	}
	// 名前解決だけ先に確認する
	if _, err := policy.New(cfg.Policy, cfg.Params, rand.New(rand.NewPCG(cfg.Seed, 0))); err != nil {
		return nil, err
	}
	if cfg.Dial == nil {
		cfg.Dial = adapterwebsocket.Dial
	}
	if cfg.ReconnectDelay <= 0 {
		cfg.ReconnectDelay = 2 * time.Second
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = time.Hour
	}
	if cfg.Name == "" {
		cfg.Name = cfg.Policy
	}

	f := &Fleet{cfg: cfg}
	for i := range cfg.Count {
		f.members = append(f.members, &member{name: fmt.Sprintf("%s-%d", cfg.Name, i), idx: i})
	}
	return f, nil
}

// Run は ctx がキャンセルされるまで全ボットを動かし続けます。
func (f *Fleet) Run(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)
	for _, m := range f.members {
		eg.Go(func() error {
			f.runMember(ctx, m)
			return nil
		})
	}
	return eg.Wait()
}

func (f *Fleet) runMember(ctx context.Context, m *member) {
	logger := slog.With("bot", m.name, "policy", f.cfg.Policy)

	for {
		err := f.session(ctx, m)
		if ctx.Err() != nil {
			return
		}
		if errors.Is(err, driver.ErrKicked) {
			logger.WarnContext(ctx, "kicked by arena, not reconnecting", "err", err)
			return
		}
		logger.WarnContext(ctx, "bot session ended, reconnecting", "err", err)

		m.mu.Lock()
		m.restarts++
		m.mu.Unlock()

		select {
		case <-ctx.Done():
			return
		case <-time.After(f.cfg.ReconnectDelay):
		}
	}
}

// session は1回分の接続を最後まで動かします。
func (f *Fleet) session(ctx context.Context, m *member) error {
	token, err := auth.NewToken(f.cfg.Secret, m.name, f.cfg.TokenTTL, time.Now())
	if err != nil {
		return fmt.Errorf("token: %w", err)
	}

	transport, err := f.cfg.Dial(ctx, adapterwebsocket.DialConfig{URL: f.cfg.URL, Token: token})
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	conn := domain.NewConnection(transport)

	rng := rand.New(rand.NewPCG(f.cfg.Seed, uint64(m.idx)))
	bot, err := policy.New(f.cfg.Policy, f.cfg.Params, rng)
	if err != nil {
		conn.Close()
		return err
	}

	opts := f.cfg.Driver
	opts.Name = m.name
	opts.RoomID = f.cfg.RoomID
	d, err := driver.New(conn, bot, opts)
	if err != nil {
		conn.Close()
		return err
	}

	m.mu.Lock()
	m.current = d
	m.mu.Unlock()

	slog.InfoContext(ctx, "connected", "bot", m.name)
	return d.Run(ctx)
}

// Statuses はヘルスチェック用に各ボットの状態を返します。
func (f *Fleet) Statuses() []handler.BotStatus {
	out := make([]handler.BotStatus, 0, len(f.members))
	for _, m := range f.members {
		m.mu.Lock()
		s := handler.BotStatus{Name: m.name, Policy: f.cfg.Policy, Restarts: m.restarts}
		if m.current != nil && m.current.Ready() {
			s.Ready = true
			s.SessionID = m.current.SessionID().String()
		}
		m.mu.Unlock()
		out = append(out, s)
	}
	return out
}
