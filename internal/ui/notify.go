package ui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// Notifier re-enters the Bubble Tea program from outside its event loop:
// scheduler goroutines (autoplay ticks, trailing reveal passes) post
// messages here instead of touching view state directly. Posts made
// before Attach are buffered and flushed once the program is running.
type Notifier struct {
	mu    sync.Mutex
	send  func(tea.Msg)
	queue []tea.Msg
}

// NewNotifier returns an unattached notifier.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// Attach connects the notifier to the running program's Send and flushes
// anything posted during startup.
func (n *Notifier) Attach(send func(tea.Msg)) {
	n.mu.Lock()
	n.send = send
	pending := n.queue
	n.queue = nil
	n.mu.Unlock()

	for _, msg := range pending {
		send(msg)
	}
}

// Post delivers msg to the program, or buffers it until Attach.
func (n *Notifier) Post(msg tea.Msg) {
	n.mu.Lock()
	send := n.send
	if send == nil {
		n.queue = append(n.queue, msg)
		n.mu.Unlock()
		return
	}
	n.mu.Unlock()

	send(msg)
}
