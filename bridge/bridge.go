// Package bridge adapts the asynchronous event stream produced by the
// protocol layer into the single-threaded UI update loop, and carries
// outbound control commands back the other way.
package bridge

import (
	"sync"

	"github.com/dcampos/buds-manager/device"
)

// EventBridge owns the consumer end of the shared event queue.
//
// The contract is single-outstanding-receive: AwaitNext acquires the
// queue exclusively for the duration of one receive, so a second
// concurrent call blocks until the first resolves rather than racing
// it. Callers must re-invoke AwaitNext after each resolved event to
// keep the pipeline live; the bridge does not auto-repeat.
type EventBridge struct {
	mu     sync.Mutex
	events chan device.Event
}

// NewEventBridge creates a bridge over a queue with the given buffer
// capacity. The returned bridge is the single consumer; Producer gives
// the sending side to the protocol layer.
func NewEventBridge(capacity int) *EventBridge {
	return &EventBridge{
		events: make(chan device.Event, capacity),
	}
}

// Producer returns the send side of the queue.
func (b *EventBridge) Producer() chan<- device.Event {
	return b.events
}

// Close terminates the stream. After close, AwaitNext yields NoOp
// forever; it never fails.
func (b *EventBridge) Close() {
	close(b.events)
}

// AwaitNext blocks until one event is available and returns it.
// Events are delivered in production order, exactly once. When the
// producer side has closed the queue, AwaitNext returns the NoOp
// sentinel so the caller's re-arm logic stays uniform.
//
// The mutex scopes the receive itself: acquire, receive, release. It
// is never held by the UI loop across a suspension point; only the
// goroutine performing the blocking receive holds it.
func (b *EventBridge) AwaitNext() device.Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	ev, ok := <-b.events
	if !ok {
		return device.NoOp{}
	}
	return ev
}

// CommandQueue carries outbound control commands from the UI to the
// protocol layer. Sends are fire-and-forget and never block the UI: a
// full queue drops the command rather than stalling a render pass.
type CommandQueue struct {
	commands chan device.Command
}

// NewCommandQueue creates a command queue with the given capacity.
func NewCommandQueue(capacity int) *CommandQueue {
	return &CommandQueue{
		commands: make(chan device.Command, capacity),
	}
}

// Send enqueues a command. It reports whether the command was
// accepted; false means the consumer has fallen behind and the
// command was dropped.
func (q *CommandQueue) Send(cmd device.Command) bool {
	select {
	case q.commands <- cmd:
		return true
	default:
		return false
	}
}

// Receive returns the consumer end of the queue.
func (q *CommandQueue) Receive() <-chan device.Command {
	return q.commands
}

// Close closes the command queue. Only the UI side may call it, after
// all senders have stopped.
func (q *CommandQueue) Close() {
	close(q.commands)
}
