package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Redis pub/sub channel and durability queue.
const (
	Channel = "game_events"
	// BackupQueue receives envelopes when no subscriber is listening, so a
	// restarting bridge can observe what it missed.
	BackupQueue    = "game_events_queue"
	backupQueueCap = 1000
)

// RedisPublisher publishes envelopes to the shared pub/sub channel.
type RedisPublisher struct {
	rdb    *redis.Client
	logger *zap.Logger
}

// NewRedisPublisher wraps an existing Redis connection.
func NewRedisPublisher(rdb *redis.Client, logger *zap.Logger) *RedisPublisher {
	return &RedisPublisher{rdb: rdb, logger: logger}
}

func (p *RedisPublisher) PublishGame(ctx context.Context, gameID, event string, data any) error {
	return p.publish(ctx, newEnvelope(TypeGameEvent, gameID, event, data))
}

func (p *RedisPublisher) PublishGlobal(ctx context.Context, event string, data any) error {
	return p.publish(ctx, newEnvelope(TypeGlobalEvent, "", event, data))
}

func (p *RedisPublisher) publish(ctx context.Context, env Envelope) error {
	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}
	receivers, err := p.rdb.Publish(ctx, Channel, data).Result()
	if err != nil {
		return fmt.Errorf("publish %s: %w", env.Event, err)
	}
	if receivers == 0 {
		// Nobody listening: park the envelope on the backup queue.
		pipe := p.rdb.TxPipeline()
		pipe.RPush(ctx, BackupQueue, data)
		pipe.LTrim(ctx, BackupQueue, -backupQueueCap, -1)
		if _, err := pipe.Exec(ctx); err != nil {
			p.logger.Warn("backup queue push failed",
				zap.String("event", env.Event), zap.Error(err))
		}
	}
	return nil
}

func (p *RedisPublisher) Close() error { return nil }

// RedisSubscriber consumes the pub/sub channel and hands each envelope to a
// handler. One subscriber per bridge process.
type RedisSubscriber struct {
	pubsub *redis.PubSub
	logger *zap.Logger
	done   chan struct{}
}

// NewRedisSubscriber subscribes to the event channel and starts delivering
// envelopes to h in channel order.
func NewRedisSubscriber(ctx context.Context, rdb *redis.Client, h Handler, logger *zap.Logger) (*RedisSubscriber, error) {
	pubsub := rdb.Subscribe(ctx, Channel)
	// Force the subscription to be established before publishes race it.
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, fmt.Errorf("subscribe %s: %w", Channel, err)
	}
	s := &RedisSubscriber{pubsub: pubsub, logger: logger, done: make(chan struct{})}
	go s.loop(h)
	return s, nil
}

func (s *RedisSubscriber) loop(h Handler) {
	defer close(s.done)
	for msg := range s.pubsub.Channel() {
		var env Envelope
		if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
			s.logger.Warn("malformed envelope", zap.Error(err))
			continue
		}
		h(env)
	}
}

// Close tears down the subscription and waits for the delivery loop to end.
func (s *RedisSubscriber) Close() error {
	err := s.pubsub.Close()
	<-s.done
	return err
}
