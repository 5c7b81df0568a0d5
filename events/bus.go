package events

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Bus is an in-process Publisher for embedded deployments: envelopes are
// delivered synchronously to every subscribed handler, in publish order.
type Bus struct {
	logger *zap.Logger

	mu       sync.RWMutex
	handlers []Handler
}

// NewBus creates a Bus with no subscribers.
func NewBus(logger *zap.Logger) *Bus {
	return &Bus{logger: logger}
}

// Subscribe registers h for every published envelope.
func (b *Bus) Subscribe(h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, h)
}

func (b *Bus) PublishGame(_ context.Context, gameID, event string, data any) error {
	b.emit(newEnvelope(TypeGameEvent, gameID, event, data))
	return nil
}

func (b *Bus) PublishGlobal(_ context.Context, event string, data any) error {
	b.emit(newEnvelope(TypeGlobalEvent, "", event, data))
	return nil
}

// emit delivers env to all handlers synchronously. Each handler is guarded
// by panic recovery so a misbehaving subscriber cannot take down the server.
func (b *Bus) emit(env Envelope) {
	b.mu.RLock()
	handlers := b.handlers
	b.mu.RUnlock()
	for _, h := range handlers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					b.logger.Error("event handler panicked",
						zap.String("event", env.Event), zap.Any("panic", r))
				}
			}()
			h(env)
		}()
	}
}

func (b *Bus) Close() error { return nil }
