package notification

import "context"

// Kind classifies an outbound message
type Kind string

const (
	KindInvoice = Kind("invoice")
	KindReceipt = Kind("receipt")
)

// Message is one outbound notification. Attachment is a reference (a
// document id or path) for the transport to resolve, never raw bytes.
type Message struct {
	Kind       Kind
	Recipient  string
	Subject    string
	Body       string
	Attachment string
}

// Sender delivers a single message over some transport. Implementations are
// injected; nothing in the engine reaches for a process-global service.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Queue accepts messages for asynchronous delivery. Enqueue never blocks;
// it reports false when the message was dropped.
type Queue interface {
	Enqueue(msg Message) bool
}
