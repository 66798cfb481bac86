package notification

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Severity tags a notification for display.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
)

// DefaultTTL is how long a notification stays visible before auto-dismiss.
const DefaultTTL = 5 * time.Second

// Notification is a transient user-facing message.
type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Severity  Severity  `json:"severity"`
	CreatedAt time.Time `json:"createdAt"`
}

// Center holds the currently visible notifications. Every pushed
// notification auto-dismisses after the configured TTL; clients can also
// dismiss explicitly.
type Center struct {
	mu     sync.Mutex
	ttl    time.Duration
	active map[string]Notification
	timers map[string]*time.Timer
}

func NewCenter(ttl time.Duration) *Center {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Center{
		ttl:    ttl,
		active: make(map[string]Notification),
		timers: make(map[string]*time.Timer),
	}
}

// Push adds a notification and schedules its auto-dismiss.
func (c *Center) Push(severity Severity, message string) Notification {
	n := Notification{
		ID:        uuid.NewString(),
		Message:   message,
		Severity:  severity,
		CreatedAt: time.Now(),
	}

	c.mu.Lock()
	c.active[n.ID] = n
	c.timers[n.ID] = time.AfterFunc(c.ttl, func() { c.Dismiss(n.ID) })
	c.mu.Unlock()

	return n
}

func (c *Center) Error(message string) Notification   { return c.Push(SeverityError, message) }
func (c *Center) Warning(message string) Notification { return c.Push(SeverityWarning, message) }
func (c *Center) Success(message string) Notification { return c.Push(SeveritySuccess, message) }
func (c *Center) Info(message string) Notification    { return c.Push(SeverityInfo, message) }

// Dismiss removes a notification before its TTL expires. Dismissing an
// unknown id is a no-op.
func (c *Center) Dismiss(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t, ok := c.timers[id]; ok {
		t.Stop()
		delete(c.timers, id)
	}
	delete(c.active, id)
}

// Active lists the visible notifications, oldest first.
func (c *Center) Active() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Notification, 0, len(c.active))
	for _, n := range c.active {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}
