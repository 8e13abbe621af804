package events

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// EventListener processes events
type EventListener interface {
	HandleEvent(event Event) error
	Priority() int
	ID() string
}

// Bus manages event distribution
type Bus struct {
	listeners map[EventType][]EventListener
	mu        sync.RWMutex
	logger    *zap.Logger
}

// NewBus creates a new event bus. A nil logger disables logging.
func NewBus(logger *zap.Logger) *Bus {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bus{
		listeners: make(map[EventType][]EventListener),
		logger:    logger.Named("events"),
	}
}

// Subscribe adds a listener for specific event types
func (b *Bus) Subscribe(eventType EventType, listener EventListener) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners[eventType] = append(b.listeners[eventType], listener)

	// Lower priority runs first; equal priorities keep subscription order
	sort.SliceStable(b.listeners[eventType], func(i, j int) bool {
		return b.listeners[eventType][i].Priority() < b.listeners[eventType][j].Priority()
	})

	b.logger.Debug("listener subscribed",
		zap.String("listener", listener.ID()),
		zap.String("event", string(eventType)),
		zap.Int("priority", listener.Priority()),
	)
}

// Unsubscribe removes a listener
func (b *Bus) Unsubscribe(eventType EventType, listenerID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	listeners := b.listeners[eventType]
	for i, l := range listeners {
		if l.ID() != listenerID {
			continue
		}
		b.listeners[eventType] = append(listeners[:i:i], listeners[i+1:]...)

		b.logger.Debug("listener unsubscribed",
			zap.String("listener", listenerID),
			zap.String("event", string(eventType)),
		)
		return
	}
}

// Emit sends an event to all registered listeners
func (b *Bus) Emit(event Event) error {
	b.mu.RLock()
	listeners := make([]EventListener, len(b.listeners[event.GetType()]))
	copy(listeners, b.listeners[event.GetType()])
	b.mu.RUnlock()

	// Process listeners in priority order
	for _, listener := range listeners {
		if event.IsCancelled() {
			b.logger.Debug("event cancelled, stopping propagation", zap.String("event", string(event.GetType())))
			break
		}

		if err := listener.HandleEvent(event); err != nil {
			return fmt.Errorf("listener %s failed: %w", listener.ID(), err)
		}
	}

	return nil
}

// Clear removes all listeners
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners = make(map[EventType][]EventListener)
}
