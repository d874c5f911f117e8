package driver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"arenabot/domain"
	"arenabot/internal/loop"
	"arenabot/robot"
)

var (
	// ErrInitializationFailed は接続またはボットが指定されていない場合に返されるエラーです。
	ErrInitializationFailed = errors.New("failed to initialize driver")
	// ErrSessionIdle はアリーナからの受信が途絶えた場合に返されるエラーです。
	ErrSessionIdle = errors.New("arena stopped responding")
	// ErrKicked はアリーナから切断を通知された場合に返されるエラーです。
	ErrKicked = errors.New("kicked by arena")
	// ErrNotInitialized はInitより前にイベントが届いた場合のエラーです。
	ErrNotInitialized = errors.New("event before init")
)

const (
	defaultHeartbeatInterval = 5 * time.Second
	defaultQueueSize         = 1024
	leaveTimeout             = time.Second
)

// Options はDriverの設定です。ゼロ値の項目は既定値になります。
type Options struct {
	// Name はログ・トレースに付けるボット名
	Name string
	// RoomID が空ならアリーナに自動割り当てを任せる
	RoomID domain.RoomID

	HeartbeatInterval time.Duration
	// IdleTimeout を超えて受信がなければセッションを終了する。既定は HeartbeatInterval の3倍
	IdleTimeout time.Duration

	QueueSize      int
	WriteQueueSize int

	Tracer trace.Tracer
}

func (o *Options) setDefaults() {
	if o.HeartbeatInterval <= 0 {
		o.HeartbeatInterval = defaultHeartbeatInterval
	}
	if o.IdleTimeout <= 0 {
		o.IdleTimeout = 3 * o.HeartbeatInterval
	}
	if o.QueueSize <= 0 {
		o.QueueSize = defaultQueueSize
	}
	if o.WriteQueueSize <= 0 {
		o.WriteQueueSize = defaultQueueSize
	}
	if o.Tracer == nil {
		o.Tracer = otel.Tracer("arenabot/driver")
	}
}

// Driver はアリーナとの1接続を受け持ち、受信したイベントをボットのコールバックに変換します。
// コールバックは単一のゴルーチンから1つずつ呼ばれます。
type Driver struct {
	conn    *domain.Connection
	bot     robot.Robot
	opts    Options
	logger  *slog.Logger
	session *domain.Session

	writeCh chan []byte
	events  *loop.Loop[domain.Event]
	host    *remoteHost

	seq atomic.Uint32

	// dispatch ゴルーチンのみが触る
	initialized bool
}

func New(conn *domain.Connection, bot robot.Robot, opts Options) (*Driver, error) {
	if conn == nil {
		return nil, ErrInitializationFailed
	}
	if bot == nil {
		return nil, ErrInitializationFailed
	}
	opts.setDefaults()

	d := &Driver{
		conn:    conn,
		bot:     bot,
		opts:    opts,
		logger:  slog.Default().With("bot", opts.Name),
		session: domain.NewSession(),
		writeCh: make(chan []byte, opts.WriteQueueSize),
	}
	d.host = newRemoteHost(d)

	events, err := loop.New(loop.Config[domain.Event]{
		Handler:   d.dispatch,
		QueueSize: opts.QueueSize,
		Logger:    d.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInitializationFailed, err)
	}
	d.events = events
	return d, nil
}

// Ready はアリーナからセッションIDが割り当て済みかを返します。
func (d *Driver) Ready() bool {
	return d.session.Assigned() && !d.session.IsClosed()
}

// SessionID は割り当てられたセッションIDを返します。未割り当てならゼロ値です。
func (d *Driver) SessionID() domain.SessionID {
	return d.session.ID()
}

// Run は接続が切れるか ctx がキャンセルされるまでブロックします。
// ctx のキャンセルによる終了は nil を返します。
func (d *Driver) Run(ctx context.Context) error {
	parent := ctx
	defer d.close()

	heartbeat := domain.NewHeartbeatService(d.opts.HeartbeatInterval, d.session, d.writeCh)

	eg, ctx := errgroup.WithContext(ctx)
	// 受信より先にループを起動しておく
	if err := d.events.Start(ctx); err != nil {
		return err
	}
	eg.Go(func() error {
		<-d.events.Done()
		return nil
	})
	eg.Go(func() error {
		return d.readLoop(ctx)
	})
	eg.Go(func() error {
		return d.writeLoop(ctx)
	})
	eg.Go(func() error {
		heartbeat.Run(ctx)
		return nil
	})
	eg.Go(func() error {
		return d.watchIdle(ctx)
	})

	err := eg.Wait()
	if parent.Err() != nil {
		d.leave()
		return nil
	}
	return err
}

func (d *Driver) readLoop(ctx context.Context) error {
	for {
		data, err := d.conn.Read(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("read: %w", err)
		}
		d.session.TouchRead()
		if err := d.handleData(ctx, data); err != nil {
			return err
		}
	}
}

func (d *Driver) writeLoop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case data := <-d.writeCh:
			if err := d.conn.Write(ctx, data); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("write: %w", err)
			}
		}
	}
}

// watchIdle はアリーナからの受信と死活応答を監視し、途絶えたらセッションを終了させます。
func (d *Driver) watchIdle(ctx context.Context) error {
	ticker := time.NewTicker(d.opts.HeartbeatInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if !d.session.Assigned() {
				continue
			}
			if idle, reason := d.session.IsIdle(d.opts.IdleTimeout); idle && reason.Has(domain.IdleRead) {
				return fmt.Errorf("%w: %s", ErrSessionIdle, reason)
			}
		}
	}
}

func (d *Driver) handleData(ctx context.Context, data []byte) error {
	frame, err := domain.ParseFrame(data)
	if err != nil {
		d.logger.WarnContext(ctx, "failed to parse frame", "err", err)
		return nil
	}

	switch frame.PayloadHeader.DataType {
	case domain.DataTypeControl:
		return d.handleControlMessage(ctx, frame)
	case domain.DataTypeEvent:
		if d.session.Assigned() && domain.SessionIDFromBytes(frame.Header.SessionID) != d.session.ID() {
			d.logger.WarnContext(ctx, "session ID mismatch", "expected", d.session.ID(), "got", domain.SessionIDFromBytes(frame.Header.SessionID))
			return nil
		}
		ev, err := domain.ParseEvent(domain.EventSubType(frame.PayloadHeader.SubType), frame.Payload)
		if err != nil {
			d.logger.WarnContext(ctx, "failed to parse event", "err", err)
			return nil
		}
		if err := d.events.Submit(ctx, ev); err != nil && ctx.Err() == nil {
			d.logger.WarnContext(ctx, "failed to submit event", "event", ev.SubType(), "err", err)
		}
	default:
		d.logger.WarnContext(ctx, "unknown data type", "dataType", frame.PayloadHeader.DataType)
	}
	return nil
}

func (d *Driver) handleControlMessage(ctx context.Context, frame *domain.Frame) error {
	switch domain.ControlSubType(frame.PayloadHeader.SubType) {
	case domain.ControlSubTypeAssign:
		id := domain.SessionIDFromBytes(frame.Header.SessionID)
		d.session.Assign(id)
		d.session.TouchPong()
		d.logger.InfoContext(ctx, "session assigned", "sessionID", id)
		d.send(ctx, domain.EncodeJoinMessage(id, d.nextSeq(), d.opts.RoomID))
		d.logger.InfoContext(ctx, "join requested", "roomID", d.opts.RoomID)
	case domain.ControlSubTypePing:
		d.session.TouchPong()
		d.send(ctx, domain.EncodePongMessage(d.session.ID(), d.nextSeq()))
	case domain.ControlSubTypePong:
		d.session.TouchPong()
	case domain.ControlSubTypeKick:
		return fmt.Errorf("%w: %s", ErrKicked, frame.Payload)
	case domain.ControlSubTypeError:
		d.logger.WarnContext(ctx, "arena reported error", "message", string(frame.Payload))
	default:
		d.logger.DebugContext(ctx, "ignored control message", "subType", frame.PayloadHeader.SubType)
	}
	return nil
}

// send は書き込みキューに積みます。満杯なら破棄します。
func (d *Driver) send(ctx context.Context, data []byte) bool {
	select {
	case d.writeCh <- data:
		return true
	default:
		d.logger.WarnContext(ctx, "writeCh full, message dropped", "sessionID", d.session.ID())
		return false
	}
}

func (d *Driver) nextSeq() uint16 {
	return uint16(d.seq.Add(1))
}

// leave はキャンセル時にアリーナへ離脱を通知します。届かなくても構いません。
func (d *Driver) leave() {
	if !d.session.Assigned() {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), leaveTimeout)
	defer cancel()
	if err := d.conn.Write(ctx, domain.EncodeLeaveMessage(d.session.ID(), d.nextSeq())); err != nil {
		d.logger.DebugContext(ctx, "failed to send leave", "err", err)
	}
}

func (d *Driver) close() {
	if !d.session.Close() {
		return
	}
	d.conn.Close()
}
