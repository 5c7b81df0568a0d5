package store

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Janitor periodically sweeps inactive games from the store.
type Janitor struct {
	store  GameStore
	logger *zap.Logger
}

// NewJanitor creates a Janitor over store.
func NewJanitor(store GameStore, logger *zap.Logger) *Janitor {
	return &Janitor{store: store, logger: logger}
}

// Run sweeps on the given interval. It blocks until done is closed.
func (j *Janitor) Run(interval time.Duration, done <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			n, err := j.store.CleanupInactive(ctx)
			cancel()
			if err != nil {
				j.logger.Warn("cleanup failed", zap.Error(err))
				continue
			}
			if n > 0 {
				j.logger.Info("cleaned up inactive games", zap.Int("removed", n))
			}
		}
	}
}
