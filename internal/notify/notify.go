package notify

import (
	"context"
	"sync"
	"time"

	"nucleav-frontend/internal/logger"
	"nucleav-frontend/internal/session"
)

// Severity of a user-facing notification
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Sink receives every outcome that must reach the user
type Sink interface {
	Notify(ctx context.Context, message string, severity Severity)
}

// Notification is one queued message
type Notification struct {
	Message   string    `json:"message"`
	Severity  Severity  `json:"severity"`
	CreatedAt time.Time `json:"created_at"`
}

// LogSink writes notifications to the structured log
type LogSink struct{}

func (LogSink) Notify(ctx context.Context, message string, severity Severity) {
	log := logger.WithContext(ctx).WithField("severity", string(severity))
	switch severity {
	case SeverityError:
		log.Error(message)
	case SeverityWarning:
		log.Warn(message)
	default:
		log.Info(message)
	}
}

// Buffer keeps the most recent notifications of each caller session until
// that session drains them. Queues left undrained for longer than the idle
// timeout are dropped.
type Buffer struct {
	mu     sync.Mutex
	queues map[string]*queue
	limit  int
	idle   time.Duration
	now    func() time.Time
}

type queue struct {
	items   []Notification
	touched time.Time
}

// DefaultIdleTimeout is how long an undrained session queue is kept
const DefaultIdleTimeout = time.Hour

// NewBuffer creates a buffer holding at most limit notifications per session
func NewBuffer(limit int) *Buffer {
	if limit <= 0 {
		limit = 100
	}
	return &Buffer{
		queues: make(map[string]*queue),
		limit:  limit,
		idle:   DefaultIdleTimeout,
		now:    time.Now,
	}
}

// Notify queues the message for the session found in ctx
func (b *Buffer) Notify(ctx context.Context, message string, severity Severity) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	b.pruneLocked(now)

	key := session.Key(ctx)
	q, ok := b.queues[key]
	if !ok {
		q = &queue{}
		b.queues[key] = q
	}
	q.touched = now
	q.items = append(q.items, Notification{Message: message, Severity: severity, CreatedAt: now})
	if over := len(q.items) - b.limit; over > 0 {
		q.items = append([]Notification(nil), q.items[over:]...)
	}
}

// Drain returns and clears the notifications queued for the session in ctx, oldest first
func (b *Buffer) Drain(ctx context.Context) []Notification {
	b.mu.Lock()
	defer b.mu.Unlock()

	key := session.Key(ctx)
	q, ok := b.queues[key]
	if !ok {
		return []Notification{}
	}
	delete(b.queues, key)
	return q.items
}

func (b *Buffer) pruneLocked(now time.Time) {
	for key, q := range b.queues {
		if now.Sub(q.touched) > b.idle {
			delete(b.queues, key)
		}
	}
}

// Multi fans a notification out to several sinks
type Multi []Sink

func (m Multi) Notify(ctx context.Context, message string, severity Severity) {
	for _, s := range m {
		s.Notify(ctx, message, severity)
	}
}
