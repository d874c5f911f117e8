package loop

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestNew_RequiresHandler(t *testing.T) {
	if _, err := New(Config[int]{}); !errors.Is(err, ErrHandlerRequired) {
		t.Errorf("err = %v, want ErrHandlerRequired", err)
	}
}

func TestLoop_ProcessesInOrder(t *testing.T) {
	var got []int
	l, err := New(Config[int]{Handler: func(_ context.Context, req int) error {
		got = append(got, req)
		return nil
	}})
	if err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	if err := l.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	for i := 0; i < 100; i++ {
		if err := l.Submit(ctx, i); err != nil {
			t.Fatalf("Submit(%d): %v", i, err)
		}
	}
	if err := l.DrainTimeout(time.Second); err != nil {
		t.Fatalf("DrainTimeout: %v", err)
	}

	if len(got) != 100 {
		t.Fatalf("handled %d, want 100", len(got))
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("got[%d] = %d, want %d", i, v, i)
		}
	}
}

func TestLoop_SerializesConcurrentSubmits(t *testing.T) {
	// ハンドラ内の非同期アクセスがないことを -race で確認する
	count := 0
	l, _ := New(Config[struct{}]{Handler: func(context.Context, struct{}) error {
		count++
		return nil
	}, QueueSize: 4})

	ctx := context.Background()
	_ = l.Start(ctx)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = l.Submit(ctx, struct{}{})
			}
		}()
	}
	wg.Wait()
	_ = l.DrainTimeout(time.Second)

	if count != 400 {
		t.Errorf("count = %d, want 400", count)
	}
}

func TestLoop_HandlerErrorDoesNotStop(t *testing.T) {
	handled := make(chan int, 2)
	l, _ := New(Config[int]{Handler: func(_ context.Context, req int) error {
		handled <- req
		if req == 0 {
			return errors.New("boom")
		}
		return nil
	}})

	ctx := context.Background()
	_ = l.Start(ctx)
	_ = l.Submit(ctx, 0)
	_ = l.Submit(ctx, 1)
	_ = l.DrainTimeout(time.Second)

	if len(handled) != 2 {
		t.Errorf("handled %d, want 2", len(handled))
	}
}

func TestLoop_Lifecycle(t *testing.T) {
	l, _ := New(Config[int]{Handler: func(context.Context, int) error { return nil }})
	ctx := context.Background()

	if err := l.Submit(ctx, 1); !errors.Is(err, ErrNotStarted) {
		t.Errorf("Submit before Start: err = %v, want ErrNotStarted", err)
	}
	if err := l.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := l.Start(ctx); !errors.Is(err, ErrAlreadyStarted) {
		t.Errorf("second Start: err = %v, want ErrAlreadyStarted", err)
	}
	if err := l.DrainTimeout(time.Second); err != nil {
		t.Fatalf("DrainTimeout: %v", err)
	}
	if err := l.Submit(ctx, 1); !errors.Is(err, ErrStopped) {
		t.Errorf("Submit after Stop: err = %v, want ErrStopped", err)
	}
	if err := l.TrySubmit(1); !errors.Is(err, ErrStopped) {
		t.Errorf("TrySubmit after Stop: err = %v, want ErrStopped", err)
	}
	if err := l.Stop(ctx); !errors.Is(err, ErrStopped) {
		t.Errorf("second Stop: err = %v, want ErrStopped", err)
	}
}

func TestLoop_TrySubmitFull(t *testing.T) {
	block := make(chan struct{})
	l, _ := New(Config[int]{Handler: func(context.Context, int) error {
		<-block
		return nil
	}, QueueSize: 1})

	ctx := context.Background()
	_ = l.Start(ctx)

	// 1件目はハンドラで止まり、2件目でキューが埋まる
	_ = l.Submit(ctx, 1)
	deadline := time.After(time.Second)
	for {
		if err := l.TrySubmit(2); errors.Is(err, ErrQueueFull) {
			break
		}
		select {
		case <-deadline:
			t.Fatal("queue never reported full")
		default:
		}
	}
	close(block)
	_ = l.DrainTimeout(time.Second)
}

func TestLoop_RunStopsOnCancel(t *testing.T) {
	l, _ := New(Config[int]{Handler: func(context.Context, int) error { return nil }})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestLoop_DoneClosesOnCancel(t *testing.T) {
	l, _ := New(Config[int]{Handler: func(context.Context, int) error { return nil }})

	ctx, cancel := context.WithCancel(context.Background())
	if err := l.Start(ctx); err != nil {
		t.Fatal(err)
	}
	cancel()

	select {
	case <-l.Done():
	case <-time.After(time.Second):
		t.Fatal("Done not closed after cancel")
	}
}
