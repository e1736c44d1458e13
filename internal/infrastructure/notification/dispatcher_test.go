package notification

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type recordingSender struct {
	mu       sync.Mutex
	failures int
	sent     []Message
}

func (s *recordingSender) Send(_ context.Context, msg Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failures > 0 {
		s.failures--
		return errors.New("transport unavailable")
	}
	s.sent = append(s.sent, msg)
	return nil
}

func (s *recordingSender) sentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

func testConfig() DispatcherConfig {
	return DispatcherConfig{
		Workers:      2,
		QueueSize:    8,
		MaxRetries:   2,
		RetryBackoff: time.Millisecond,
		SendTimeout:  time.Second,
	}
}

func TestDispatcherDelivers(t *testing.T) {
	sender := &recordingSender{}
	d := NewDispatcher(sender, zap.NewNop(), testConfig())

	assert.True(t, d.Enqueue(Message{Kind: KindInvoice, Recipient: "jane@example.com"}))
	assert.True(t, d.Enqueue(Message{Kind: KindReceipt, Recipient: "jane@example.com"}))
	d.Close()

	assert.Equal(t, 2, sender.sentCount())
}

func TestDispatcherRetriesTransientFailure(t *testing.T) {
	sender := &recordingSender{failures: 2}
	d := NewDispatcher(sender, zap.NewNop(), testConfig())

	assert.True(t, d.Enqueue(Message{Kind: KindInvoice, Recipient: "jane@example.com"}))
	d.Close()

	assert.Equal(t, 1, sender.sentCount())
}

func TestDispatcherCloseDrainsPendingRetries(t *testing.T) {
	cfg := testConfig()
	cfg.Workers = 1
	sender := &recordingSender{failures: 2}
	d := NewDispatcher(sender, zap.NewNop(), cfg)

	for i := 0; i < 3; i++ {
		assert.True(t, d.Enqueue(Message{Kind: KindReceipt, Recipient: "jane@example.com"}))
	}
	d.Close()

	assert.Equal(t, 3, sender.sentCount())
}

func TestDispatcherEnqueueAfterClose(t *testing.T) {
	sender := &recordingSender{}
	d := NewDispatcher(sender, zap.NewNop(), testConfig())
	d.Close()

	assert.False(t, d.Enqueue(Message{Kind: KindInvoice, Recipient: "jane@example.com"}))
	assert.Equal(t, 0, sender.sentCount())
}

func TestDispatcherGivesUpAfterMaxRetries(t *testing.T) {
	sender := &recordingSender{failures: 10}
	d := NewDispatcher(sender, zap.NewNop(), testConfig())

	assert.True(t, d.Enqueue(Message{Kind: KindInvoice, Recipient: "jane@example.com"}))
	d.Close()

	assert.Equal(t, 0, sender.sentCount())
}

func TestDispatcherDropsWhenQueueFull(t *testing.T) {
	cfg := testConfig()
	cfg.Workers = 1
	cfg.QueueSize = 1
	// a sender that blocks long enough for the queue to fill
	blocking := &slowSender{release: make(chan struct{})}
	d := NewDispatcher(blocking, zap.NewNop(), cfg)

	d.Enqueue(Message{Kind: KindInvoice}) // picked up by the worker
	d.Enqueue(Message{Kind: KindInvoice}) // sits in the queue
	dropped := false
	for i := 0; i < 10; i++ {
		if !d.Enqueue(Message{Kind: KindInvoice}) {
			dropped = true
			break
		}
	}
	assert.True(t, dropped)

	close(blocking.release)
	d.Close()
}

type slowSender struct {
	release chan struct{}
}

func (s *slowSender) Send(ctx context.Context, _ Message) error {
	select {
	case <-s.release:
	case <-ctx.Done():
	}
	return nil
}
