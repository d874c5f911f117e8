package loop

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"
)

var (
	ErrHandlerRequired = errors.New("loop: handler is required")
	ErrAlreadyStarted  = errors.New("loop: start called multiple times")
	ErrNotStarted      = errors.New("loop: not started")
	ErrStopped         = errors.New("loop: stopped")
	ErrQueueFull       = errors.New("loop: queue is full")
)

// Handler processes requests submitted to the loop.
type Handler[T any] func(ctx context.Context, req T) error

// Config controls the behaviour of the single thread loop.
type Config[T any] struct {
	Handler   Handler[T]
	QueueSize int
	Logger    *slog.Logger
}

// Loop delivers incoming requests to the provided handler on a single goroutine.
// Requests are handled one at a time in submission order.
type Loop[T any] struct {
	handler Handler[T]
	queue   chan T
	logger  *slog.Logger

	started  atomic.Bool
	stopping atomic.Bool

	quit chan struct{}
	done chan struct{}
}

// New creates a Loop with the supplied configuration.
func New[T any](cfg Config[T]) (*Loop[T], error) {
	if cfg.Handler == nil {
		return nil, ErrHandlerRequired
	}
	queueSize := cfg.QueueSize
	if queueSize <= 0 {
		queueSize = 1024
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Loop[T]{
		handler: cfg.Handler,
		queue:   make(chan T, queueSize),
		logger:  logger,
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
	}, nil
}

// Start launches the single-thread loop in the background. It must be called once.
func (l *Loop[T]) Start(ctx context.Context) error {
	if !l.started.CompareAndSwap(false, true) {
		return ErrAlreadyStarted
	}
	go l.run(ctx)
	return nil
}

// Run runs the loop on the calling goroutine until ctx is cancelled or Stop drains it.
func (l *Loop[T]) Run(ctx context.Context) error {
	if !l.started.CompareAndSwap(false, true) {
		return ErrAlreadyStarted
	}
	l.run(ctx)
	return nil
}

func (l *Loop[T]) run(ctx context.Context) {
	defer close(l.done)
	for {
		select {
		case <-ctx.Done():
			l.logger.DebugContext(ctx, "loop: context cancelled, shutting down", "err", ctx.Err())
			return
		case <-l.quit:
			l.drain(ctx)
			return
		case req := <-l.queue:
			l.handle(ctx, req)
		}
	}
}

// drain は停止要求時点でキューに残っている分だけ処理する
func (l *Loop[T]) drain(ctx context.Context) {
	for {
		select {
		case req := <-l.queue:
			l.handle(ctx, req)
		default:
			return
		}
	}
}

func (l *Loop[T]) handle(ctx context.Context, req T) {
	if err := l.handler(ctx, req); err != nil {
		l.logger.WarnContext(ctx, "loop: handler error", "err", err)
	}
}

// Submit enqueues a request, blocking while the queue is full.
func (l *Loop[T]) Submit(ctx context.Context, req T) error {
	if !l.started.Load() {
		return ErrNotStarted
	}
	if l.stopping.Load() {
		return ErrStopped
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-l.quit:
		return ErrStopped
	case l.queue <- req:
		return nil
	}
}

// TrySubmit enqueues a request without blocking.
func (l *Loop[T]) TrySubmit(req T) error {
	if !l.started.Load() {
		return ErrNotStarted
	}
	if l.stopping.Load() {
		return ErrStopped
	}
	select {
	case l.queue <- req:
		return nil
	default:
		return ErrQueueFull
	}
}

// Stop drains the loop and waits for graceful completion.
func (l *Loop[T]) Stop(ctx context.Context) error {
	if !l.stopping.CompareAndSwap(false, true) {
		return ErrStopped
	}
	close(l.quit)
	if !l.started.Load() {
		return nil
	}
	select {
	case <-l.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// DrainTimeout stops the loop and waits for completion with the given timeout.
func (l *Loop[T]) DrainTimeout(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return l.Stop(ctx)
}

// Done はループのゴルーチンが終了すると閉じられます。
func (l *Loop[T]) Done() <-chan struct{} {
	return l.done
}
