// Package channel defines the message link between the widget and its host:
// a pair of closed tagged unions (inbound events, outbound commands), the
// envelope codec, and the transport contract. The link is asynchronous,
// unordered and at-least-once; the widget's reconciler is written so that
// duplicate or reordered delivery is harmless.
package channel

import (
	"context"
	"errors"
)

// Action identifies a message tag on the wire.
type Action string

// ErrUnknownAction is returned by DecodeInbound for tags this widget does
// not understand. Adapters drop such messages, keeping the protocol
// forward compatible.
var ErrUnknownAction = errors.New("channel: unknown action")

// Handler consumes one decoded inbound event. Adapters must invoke it
// serially; no two invocations may overlap.
type Handler func(Inbound)

// Adapter is the transport contract. It performs no validation, no
// buffering and no retries of its own.
type Adapter interface {
	// Run announces readiness to the host, then delivers decoded inbound
	// events to handler until ctx is cancelled.
	Run(ctx context.Context, handler Handler) error
	// Send transmits an outbound command, fire-and-forget. A nil error
	// means handed to the transport, not delivered.
	Send(ctx context.Context, cmd Outbound) error
	// Ping verifies transport connectivity.
	Ping(ctx context.Context) error
	Close() error
}
