// Package engine wires store, reconciler and aggregator behind the
// channel adapter and enforces the serial execution model: one inbound
// event is fully applied before the next is looked at.
package engine

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-widget/internal/channel"
	"github.com/spec-kit/helpdesk-widget/internal/notify"
	"github.com/spec-kit/helpdesk-widget/internal/observability"
	"github.com/spec-kit/helpdesk-widget/internal/reconcile"
	"github.com/spec-kit/helpdesk-widget/internal/store"
)

// Engine owns the widget state and its inbound event loop.
type Engine struct {
	mu         sync.Mutex
	store      *store.Store
	reconciler *reconcile.Reconciler
	agg        *notify.Aggregator
	adapter    channel.Adapter
	metrics    *observability.Metrics
	logger     *zap.Logger
}

// New assembles the core. The aggregator's pulse is wired straight to the
// host as a notificationReceived command, matching what the widget's
// embedder expects when the badge changes. projector may be nil.
func New(adapter channel.Adapter, projector reconcile.Projector, metrics *observability.Metrics, logger *zap.Logger) *Engine {
	st := store.New()
	agg := notify.NewAggregator(st, logger, func(ticketID string, totalCount int) {
		err := adapter.Send(context.Background(), channel.NotificationReceived{
			TicketID:   ticketID,
			TotalCount: totalCount,
		})
		if err != nil {
			logger.Warn("notification pulse not delivered", zap.Error(err))
		}
	})
	return &Engine{
		store:      st,
		reconciler: reconcile.NewReconciler(st, agg, projector, logger),
		agg:        agg,
		adapter:    adapter,
		metrics:    metrics,
		logger:     logger,
	}
}

// HandleInbound applies one event. Safe to hand to any transport; the
// internal mutex guarantees no two applications interleave.
func (e *Engine) HandleInbound(ev channel.Inbound) {
	e.mu.Lock()
	defer e.mu.Unlock()
	tag := string(ev.InboundAction())
	e.metrics.RecordEvent(tag)
	e.logger.Debug("inbound event", zap.String("event", tag))
	e.reconciler.Apply(ev)
}

// Run drives the adapter's delivery loop until ctx is cancelled.
func (e *Engine) Run(ctx context.Context) error {
	return e.adapter.Run(ctx, e.HandleInbound)
}

// Store exposes the canonical state for read-only consumers.
func (e *Engine) Store() *store.Store {
	return e.store
}

// Aggregator exposes the notification feed.
func (e *Engine) Aggregator() *notify.Aggregator {
	return e.agg
}
