package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shopkart/storefront/internal/models"
)

// DefaultNotificationTTL is how long the head notification stays
// visible before expiring.
const DefaultNotificationTTL = 5 * time.Second

// Notifications is a FIFO queue of transient user-facing messages.
// Only the head entry has an expiry timer running; when it is removed,
// by timeout or manual dismissal, the next entry becomes the head and
// gets a fresh window.
type Notifications struct {
	mu      sync.Mutex
	entries []models.Notification
	ttl     time.Duration
	timer   *time.Timer
	headID  string
}

func NewNotifications(ttl time.Duration) *Notifications {
	if ttl <= 0 {
		ttl = DefaultNotificationTTL
	}
	return &Notifications{ttl: ttl}
}

// Push appends a notification and returns it with its generated
// identifier.
func (n *Notifications) Push(kind, message string) models.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	entry := models.Notification{
		ID:      uuid.NewString(),
		Kind:    kind,
		Message: message,
	}
	n.entries = append(n.entries, entry)

	if len(n.entries) == 1 {
		n.schedule(entry.ID)
	}
	return entry
}

// Dismiss removes an entry at any position. Dismissing the head
// immediately promotes the next entry.
func (n *Notifications) Dismiss(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for i, entry := range n.entries {
		if entry.ID != id {
			continue
		}
		n.entries = append(n.entries[:i], n.entries[i+1:]...)
		if i == 0 {
			n.promote()
		}
		return
	}
}

// Active returns the queued notifications in insertion order.
func (n *Notifications) Active() []models.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	entries := make([]models.Notification, len(n.entries))
	copy(entries, n.entries)
	return entries
}

// Stop cancels the pending expiry timer, if any.
func (n *Notifications) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.headID = ""
}

// schedule starts the expiry window for the given head entry. Callers
// must hold the lock.
func (n *Notifications) schedule(id string) {
	if n.timer != nil {
		n.timer.Stop()
	}
	n.headID = id
	n.timer = time.AfterFunc(n.ttl, func() { n.expire(id) })
}

// promote restarts the expiry window for the new head, if any.
// Callers must hold the lock.
func (n *Notifications) promote() {
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.headID = ""
	if len(n.entries) > 0 {
		n.schedule(n.entries[0].ID)
	}
}

func (n *Notifications) expire(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	// The head may have been dismissed while the timer fired.
	if n.headID != id || len(n.entries) == 0 || n.entries[0].ID != id {
		return
	}
	n.entries = n.entries[1:]
	n.promote()
}
