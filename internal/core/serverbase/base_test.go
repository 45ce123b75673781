// SPDX-License-Identifier: MPL-2.0

package serverbase

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestLifecycle_HappyPath(t *testing.T) {
	t.Parallel()

	b := NewBase()
	if b.State() != StateCreated {
		t.Fatalf("initial state = %s, want created", b.State())
	}
	if b.Context() != nil {
		t.Error("Context() should be nil before start")
	}

	if err := b.TransitionToStarting(context.Background()); err != nil {
		t.Fatalf("TransitionToStarting() error = %v", err)
	}
	b.TransitionToRunning()
	if !b.IsRunning() {
		t.Fatalf("state = %s, want running", b.State())
	}
	select {
	case <-b.StartedChannel():
	default:
		t.Error("StartedChannel should be closed once running")
	}

	if !b.TransitionToStopping() {
		t.Fatal("first TransitionToStopping should return true")
	}
	if b.Context().Err() == nil {
		t.Error("context should be cancelled when stopping")
	}
	if b.TransitionToStopping() {
		t.Error("second TransitionToStopping should return false")
	}

	b.TransitionToStopped()
	if b.State() != StateStopped {
		t.Errorf("state = %s, want stopped", b.State())
	}
	if _, open := <-b.Err(); open {
		t.Error("Err channel should be closed after stop")
	}
}

func TestTransitionToStarting_Twice(t *testing.T) {
	t.Parallel()

	b := NewBase()
	if err := b.TransitionToStarting(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := b.TransitionToStarting(context.Background()); err == nil {
		t.Error("second start should fail")
	}
}

func TestTransitionToStarting_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b := NewBase()
	err := b.TransitionToStarting(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
	if b.State() != StateFailed {
		t.Errorf("state = %s, want failed", b.State())
	}
	if got := <-b.Err(); !errors.Is(got, context.Canceled) {
		t.Errorf("Err() delivered %v", got)
	}
}

func TestTransitionToStopping_NeverStarted(t *testing.T) {
	t.Parallel()

	b := NewBase()
	if b.TransitionToStopping() {
		t.Error("stopping a created server needs no shutdown")
	}
	if b.State() != StateStopped {
		t.Errorf("state = %s, want stopped", b.State())
	}
}

func TestTransitionToFailed(t *testing.T) {
	t.Parallel()

	b := NewBase()
	if err := b.TransitionToStarting(context.Background()); err != nil {
		t.Fatal(err)
	}
	boom := errors.New("boom")
	b.TransitionToFailed(boom)

	if !errors.Is(b.LastError(), boom) {
		t.Errorf("LastError() = %v, want boom", b.LastError())
	}
	if b.TransitionToStopping() {
		t.Error("stopping a failed server needs no shutdown")
	}
	if b.State() != StateFailed {
		t.Errorf("state = %s, want failed", b.State())
	}
}

func TestWaitForReady(t *testing.T) {
	t.Parallel()

	b := NewBase()
	if err := b.TransitionToStarting(context.Background()); err != nil {
		t.Fatal(err)
	}

	short, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if err := b.WaitForReady(short); err == nil {
		t.Error("WaitForReady should time out while starting")
	}

	go b.TransitionToRunning()
	ctx, cancel2 := context.WithTimeout(context.Background(), time.Second)
	defer cancel2()
	if err := b.WaitForReady(ctx); err != nil {
		t.Errorf("WaitForReady() error = %v", err)
	}
}

func TestGo_WaitForShutdown(t *testing.T) {
	t.Parallel()

	b := NewBase()
	var done atomic.Int32
	for range 5 {
		b.Go(func() {
			time.Sleep(time.Millisecond)
			done.Add(1)
		})
	}
	b.WaitForShutdown()
	if done.Load() != 5 {
		t.Errorf("%d goroutines finished, want 5", done.Load())
	}
}

func TestConcurrentStop(t *testing.T) {
	t.Parallel()

	b := NewBase()
	if err := b.TransitionToStarting(context.Background()); err != nil {
		t.Fatal(err)
	}
	b.TransitionToRunning()

	var winners atomic.Int32
	var wg sync.WaitGroup
	for range 10 {
		wg.Go(func() {
			if b.TransitionToStopping() {
				winners.Add(1)
			}
		})
	}
	wg.Wait()

	if winners.Load() != 1 {
		t.Errorf("%d callers won the stop, want exactly 1", winners.Load())
	}
}

func TestState_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		state    State
		expected string
		terminal bool
	}{
		{StateCreated, "created", false},
		{StateStarting, "starting", false},
		{StateRunning, "running", false},
		{StateStopping, "stopping", false},
		{StateStopped, "stopped", true},
		{StateFailed, "failed", true},
		{State(99), "state(99)", false},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.expected {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.expected)
		}
		if got := tt.state.IsTerminal(); got != tt.terminal {
			t.Errorf("State(%d).IsTerminal() = %v", tt.state, got)
		}
	}
}
