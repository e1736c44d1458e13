package notification

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DispatcherConfig tunes the async delivery worker pool
type DispatcherConfig struct {
	Workers      int
	QueueSize    int
	MaxRetries   int
	RetryBackoff time.Duration
	SendTimeout  time.Duration
}

// DefaultDispatcherConfig returns sensible defaults
func DefaultDispatcherConfig() DispatcherConfig {
	return DispatcherConfig{
		Workers:      2,
		QueueSize:    256,
		MaxRetries:   3,
		RetryBackoff: 500 * time.Millisecond,
		SendTimeout:  10 * time.Second,
	}
}

// Dispatcher delivers messages asynchronously through a bounded worker
// pool. Delivery is fire-and-forget from the caller's point of view:
// failures are retried with exponential backoff, then logged and dropped.
// They never propagate back into the operation that queued the message.
type Dispatcher struct {
	sender Sender
	logger *zap.Logger
	cfg    DispatcherConfig

	queue  chan Message
	wg     sync.WaitGroup
	mu     sync.Mutex
	closed bool
}

// NewDispatcher creates a dispatcher and starts its workers
func NewDispatcher(sender Sender, logger *zap.Logger, cfg DispatcherConfig) *Dispatcher {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.QueueSize < 1 {
		cfg.QueueSize = 1
	}
	d := &Dispatcher{
		sender: sender,
		logger: logger,
		cfg:    cfg,
		queue:  make(chan Message, cfg.QueueSize),
	}
	for i := 0; i < cfg.Workers; i++ {
		d.wg.Add(1)
		go d.worker()
	}
	return d
}

// Enqueue hands a message to the pool without blocking. A full queue or a
// closed dispatcher drops the message with a warning and returns false.
func (d *Dispatcher) Enqueue(msg Message) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		d.logger.Warn("dispatcher closed, dropping message",
			zap.String("kind", string(msg.Kind)),
			zap.String("recipient", msg.Recipient))
		return false
	}
	select {
	case d.queue <- msg:
		return true
	default:
		d.logger.Warn("notification queue full, dropping message",
			zap.String("kind", string(msg.Kind)),
			zap.String("recipient", msg.Recipient))
		return false
	}
}

// Close stops accepting messages and waits until every queued message has
// finished its bounded delivery attempts.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()
	d.wg.Wait()
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for msg := range d.queue {
		d.deliver(msg)
	}
}

func (d *Dispatcher) deliver(msg Message) {
	backoff := d.cfg.RetryBackoff
	for attempt := 0; ; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), d.cfg.SendTimeout)
		err := d.sender.Send(ctx, msg)
		cancel()
		if err == nil {
			return
		}
		if attempt >= d.cfg.MaxRetries {
			d.logger.Warn("notification delivery failed, giving up",
				zap.String("kind", string(msg.Kind)),
				zap.String("recipient", msg.Recipient),
				zap.Int("attempts", attempt+1),
				zap.Error(err))
			return
		}
		time.Sleep(backoff)
		backoff *= 2
	}
}

var _ Queue = (*Dispatcher)(nil)
