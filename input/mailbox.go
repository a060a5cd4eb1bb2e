package input

import "sync"

// MailboxCapacity bounds queued intents between two ticks
const MailboxCapacity = 64

// Mailbox carries intents from the input goroutine to the tick
// Post never blocks; when full the oldest intent is dropped
type Mailbox struct {
	mu      sync.Mutex
	pending []Intent
}

func NewMailbox() *Mailbox {
	return &Mailbox{pending: make([]Intent, 0, MailboxCapacity)}
}

// Post queues an intent, safe from any goroutine
func (m *Mailbox) Post(i Intent) {
	m.mu.Lock()
	if len(m.pending) == MailboxCapacity {
		copy(m.pending, m.pending[1:])
		m.pending = m.pending[:MailboxCapacity-1]
	}
	m.pending = append(m.pending, i)
	m.mu.Unlock()
}

// Drain returns and clears the queued intents in posting order
func (m *Mailbox) Drain() []Intent {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.pending) == 0 {
		return nil
	}
	out := make([]Intent, len(m.pending))
	copy(out, m.pending)
	m.pending = m.pending[:0]
	return out
}
