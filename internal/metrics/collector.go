package metrics

import (
	"context"
	"log/slog"
	"time"
)

type EventType string

const (
	EventResponseCompleted EventType = "response_completed"
	EventRequestRejected   EventType = "request_rejected"
)

type Event struct {
	Type       EventType
	Timestamp  time.Time
	Method     string
	Path       string
	Duration   time.Duration
	StatusCode int
	Message    string
}

type Collector struct {
	eventCh chan Event
	metrics *Metrics
	logger  *slog.Logger
}

func NewCollector(bufferSize int, logger *slog.Logger) *Collector {
	return &Collector{
		eventCh: make(chan Event, bufferSize),
		metrics: NewMetrics(),
		logger:  logger,
	}
}

// Emit sends an event without ever blocking the request path. Events are
// dropped when the buffer is full.
func (c *Collector) Emit(event Event) {
	select {
	case c.eventCh <- event:
	default:
	}
}

func (c *Collector) Start(ctx context.Context) {
	go c.run(ctx)
}

func (c *Collector) run(ctx context.Context) {
	c.logger.Info("Metrics collector started")
	defer c.logger.Info("Metrics collector stopped")

	for {
		select {
		case event := <-c.eventCh:
			c.processEvent(event)
		case <-ctx.Done():
			// Drain remaining events before shutdown
			c.drain()
			return
		}
	}
}

func (c *Collector) processEvent(event Event) {
	switch event.Type {
	case EventResponseCompleted:
		c.metrics.RecordResponse(event.Method, event.StatusCode, event.Duration)

	case EventRequestRejected:
		c.metrics.RecordRejection(event.Message)
	}
}

func (c *Collector) drain() {
	for {
		select {
		case event := <-c.eventCh:
			c.processEvent(event)
		default:
			return
		}
	}
}

func (c *Collector) Snapshot() Snapshot {
	return c.metrics.Snapshot()
}
