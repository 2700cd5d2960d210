package channel

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-widget/internal/config"
)

// RedisAdapter carries the host link over Redis pub/sub: the widget
// subscribes to the inbound channel and publishes commands to the outbound
// one. Pub/sub has no ordering or delivery guarantee, which is exactly the
// contract the reconciler is built for.
type RedisAdapter struct {
	client   *redis.Client
	inbound  string
	outbound string
	logger   *zap.Logger
}

// NewRedisAdapter connects to Redis using the provided configuration.
func NewRedisAdapter(cfg config.ChannelConfig, logger *zap.Logger) *RedisAdapter {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("unable to reach redis", zap.Error(err))
	} else {
		logger.Info("connected to redis")
	}

	return &RedisAdapter{
		client:   client,
		inbound:  cfg.InboundChannel,
		outbound: cfg.OutboundChannel,
		logger:   logger,
	}
}

// Run subscribes to the inbound channel, announces ready and delivers
// decoded events to handler one at a time until ctx is cancelled.
func (a *RedisAdapter) Run(ctx context.Context, handler Handler) error {
	sub := a.client.Subscribe(ctx, a.inbound)
	defer sub.Close()

	// Confirm the subscription before ready, so the snapshot the host
	// sends in response cannot race past us.
	if _, err := sub.Receive(ctx); err != nil {
		return err
	}
	if err := a.Send(ctx, Ready{}); err != nil {
		a.logger.Warn("ready announcement failed", zap.Error(err))
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-sub.Channel():
			if !ok {
				return errors.New("channel: inbound subscription closed")
			}
			ev, err := DecodeInbound([]byte(msg.Payload))
			if err != nil {
				if errors.Is(err, ErrUnknownAction) {
					a.logger.Debug("dropping unrecognized event", zap.Error(err))
				} else {
					a.logger.Warn("undecodable inbound event", zap.Error(err))
				}
				continue
			}
			handler(ev)
		}
	}
}

// Send publishes one command to the outbound channel, fire-and-forget.
func (a *RedisAdapter) Send(ctx context.Context, cmd Outbound) error {
	payload, err := EncodeOutbound(cmd)
	if err != nil {
		return err
	}
	return a.client.Publish(ctx, a.outbound, payload).Err()
}

// Ping verifies Redis connectivity.
func (a *RedisAdapter) Ping(ctx context.Context) error {
	if a == nil || a.client == nil {
		return errors.New("channel: redis client not configured")
	}
	return a.client.Ping(ctx).Err()
}

// Close closes the client.
func (a *RedisAdapter) Close() error {
	if a == nil || a.client == nil {
		return nil
	}
	return a.client.Close()
}
