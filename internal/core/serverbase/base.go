// SPDX-License-Identifier: MPL-2.0

package serverbase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
)

// Base carries the lifecycle of a server. Servers embed it and call the
// Transition* methods from Start and Stop.
//
// A server instance is single-use: once stopped or failed, create a new instance.
type Base struct {
	state atomic.Int32

	mu      sync.Mutex
	lastErr error

	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	startedCh chan struct{}
	errCh     chan error
}

// NewBase creates a Base in StateCreated.
func NewBase() *Base {
	b := &Base{
		startedCh: make(chan struct{}),
		errCh:     make(chan error, 1),
	}
	b.state.Store(int32(StateCreated))
	return b
}

// State returns the current state.
func (b *Base) State() State {
	return State(b.state.Load())
}

// IsRunning reports whether the server accepts connections.
func (b *Base) IsRunning() bool {
	return b.State() == StateRunning
}

// Err delivers errors raised after a successful start.
func (b *Base) Err() <-chan error {
	return b.errCh
}

// LastError returns the error that caused StateFailed, or nil.
func (b *Base) LastError() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastErr
}

// Context is cancelled when the server stops or fails. It is nil before start.
func (b *Base) Context() context.Context {
	return b.ctx
}

// StartedChannel is closed once the server is running.
func (b *Base) StartedChannel() <-chan struct{} {
	return b.startedCh
}

// TransitionToStarting moves Created to Starting. An already cancelled ctx
// fails the server before any setup happens.
func (b *Base) TransitionToStarting(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		b.TransitionToFailed(fmt.Errorf("context cancelled before start: %w", err))
		return b.LastError()
	}

	if !b.state.CompareAndSwap(int32(StateCreated), int32(StateStarting)) {
		return fmt.Errorf("cannot start server in state %s", b.State())
	}

	b.ctx, b.cancel = context.WithCancel(context.Background())
	return nil
}

// TransitionToRunning moves Starting to Running and releases StartedChannel waiters.
func (b *Base) TransitionToRunning() {
	if b.state.CompareAndSwap(int32(StateStarting), int32(StateRunning)) {
		close(b.startedCh)
	}
}

// TransitionToFailed records err and moves to StateFailed.
func (b *Base) TransitionToFailed(err error) {
	b.mu.Lock()
	b.lastErr = err
	b.mu.Unlock()

	b.state.Store(int32(StateFailed))
	if b.cancel != nil {
		b.cancel()
	}
	b.SendError(err)
}

// TransitionToStopping reports whether the caller must perform the shutdown.
// A server that never started goes straight to Stopped.
func (b *Base) TransitionToStopping() bool {
	for {
		current := b.State()
		switch current {
		case StateCreated:
			if b.state.CompareAndSwap(int32(StateCreated), int32(StateStopped)) {
				return false
			}
		case StateStarting, StateRunning:
			if b.state.CompareAndSwap(int32(current), int32(StateStopping)) {
				if b.cancel != nil {
					b.cancel()
				}
				return true
			}
		default:
			return false
		}
	}
}

// TransitionToStopped marks the end of a shutdown, after every goroutine exited.
func (b *Base) TransitionToStopped() {
	b.state.Store(int32(StateStopped))
	close(b.errCh)
}

// WaitForReady blocks until the server runs or ctx is done.
func (b *Base) WaitForReady(ctx context.Context) error {
	select {
	case <-b.startedCh:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for server ready: %w", ctx.Err())
	}
}

// Go runs fn in a goroutine that WaitForShutdown waits for.
func (b *Base) Go(fn func()) {
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		fn()
	}()
}

// WaitForShutdown blocks until every goroutine started with Go returned.
func (b *Base) WaitForShutdown() {
	b.wg.Wait()
}

// SendError delivers err to Err without blocking; it is dropped when one is pending.
func (b *Base) SendError(err error) {
	select {
	case b.errCh <- err:
	default:
	}
}
