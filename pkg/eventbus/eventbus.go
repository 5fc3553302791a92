package eventbus

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Event is anything that can happen in the system.
type Event interface {
	Name() string
}

// Listener handles a single event.
type Listener func(ctx context.Context, event Event) error

// Bus delivers events to subscribed listeners. Dispatch is synchronous and
// in subscription order, so observers always see events in the order the
// commands were applied.
type Bus struct {
	listeners map[string][]Listener
	mu        sync.RWMutex
	logger    *zap.Logger
}

func New(logger *zap.Logger) *Bus {
	return &Bus{
		listeners: make(map[string][]Listener),
		logger:    logger,
	}
}

func (b *Bus) Subscribe(eventName string, listener Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners[eventName] = append(b.listeners[eventName], listener)
}

// Publish calls every listener subscribed to the event. Listener errors are
// logged, never propagated to the publishing command.
func (b *Bus) Publish(ctx context.Context, event Event) {
	b.mu.RLock()
	listeners := b.listeners[event.Name()]
	b.mu.RUnlock()

	for _, listener := range listeners {
		if err := listener(ctx, event); err != nil {
			b.logger.Error("event listener failed",
				zap.String("event", event.Name()),
				zap.Error(err),
			)
		}
	}
}
