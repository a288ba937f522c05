package gate

import (
	"sync"
	"time"
)

// NotificationLevel enumerates toast severities.
type NotificationLevel string

const (
	NotifySuccess NotificationLevel = "success"
	NotifyError   NotificationLevel = "error"
	NotifyInfo    NotificationLevel = "info"
)

// Notification is a transient user-facing toast.
type Notification struct {
	Level      NotificationLevel `json:"level"`
	Message    string            `json:"message"`
	OccurredAt time.Time         `json:"occurred_at"`
}

// Notifier surfaces human-readable notifications as a side effect. Every
// auth and API failure path notifies AND re-raises the error, so callers
// keep control flow while the user still sees a message.
type Notifier interface {
	Success(message string)
	Error(message string)
	Info(message string)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(level NotificationLevel, message string)

func (f NotifierFunc) Success(message string) { f.emit(NotifySuccess, message) }
func (f NotifierFunc) Error(message string)   { f.emit(NotifyError, message) }
func (f NotifierFunc) Info(message string)    { f.emit(NotifyInfo, message) }

func (f NotifierFunc) emit(level NotificationLevel, message string) {
	if f == nil {
		return
	}
	f(level, message)
}

type logNotifier struct {
	logger Logger
}

func (n logNotifier) Success(message string) {
	n.logger.Info("notify success", "message", message)
}

func (n logNotifier) Error(message string) {
	n.logger.Error("notify error", "message", message)
}

func (n logNotifier) Info(message string) {
	n.logger.Info("notify", "message", message)
}

func normalizeNotifier(n Notifier, logger Logger) Notifier {
	if n != nil {
		return n
	}
	if logger == nil {
		logger = defLogger{}
	}
	return logNotifier{logger: logger}
}

// ChannelNotifier fans notifications out to subscribers, feeding the
// realtime toast channel. Delivery is best effort: a subscriber with a
// full buffer drops the notification rather than blocking auth flows.
type ChannelNotifier struct {
	mu   sync.RWMutex
	subs map[chan Notification]struct{}
}

// NewChannelNotifier creates a fan-out notifier with no subscribers.
func NewChannelNotifier() *ChannelNotifier {
	return &ChannelNotifier{
		subs: make(map[chan Notification]struct{}),
	}
}

// Subscribe registers a buffered channel; Unsubscribe releases it.
func (n *ChannelNotifier) Subscribe(buffer int) chan Notification {
	if buffer <= 0 {
		buffer = 8
	}
	ch := make(chan Notification, buffer)
	n.mu.Lock()
	n.subs[ch] = struct{}{}
	n.mu.Unlock()
	return ch
}

func (n *ChannelNotifier) Unsubscribe(ch chan Notification) {
	n.mu.Lock()
	if _, ok := n.subs[ch]; ok {
		delete(n.subs, ch)
		close(ch)
	}
	n.mu.Unlock()
}

func (n *ChannelNotifier) Success(message string) { n.emit(NotifySuccess, message) }
func (n *ChannelNotifier) Error(message string)   { n.emit(NotifyError, message) }
func (n *ChannelNotifier) Info(message string)    { n.emit(NotifyInfo, message) }

func (n *ChannelNotifier) emit(level NotificationLevel, message string) {
	event := Notification{
		Level:      level,
		Message:    message,
		OccurredAt: time.Now(),
	}

	n.mu.RLock()
	defer n.mu.RUnlock()
	for ch := range n.subs {
		select {
		case ch <- event:
		default:
		}
	}
}

// MultiNotifier forwards every notification to each wrapped notifier.
type MultiNotifier []Notifier

func (m MultiNotifier) Success(message string) {
	for _, n := range m {
		n.Success(message)
	}
}

func (m MultiNotifier) Error(message string) {
	for _, n := range m {
		n.Error(message)
	}
}

func (m MultiNotifier) Info(message string) {
	for _, n := range m {
		n.Info(message)
	}
}
