package storefront

import (
	"slices"
	"sync"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/google/uuid"
)

// Bus topics.
const (
	TopicToast          = "storefront:toast"
	TopicToastDismissed = "storefront:toast:dismissed"
)

// DefaultToastTTL is how long a toast stays visible.
const DefaultToastTTL = 3 * time.Second

type ToastType string

const (
	ToastSuccess ToastType = "success"
	ToastInfo    ToastType = "info"
	ToastWarning ToastType = "warning"
	ToastError   ToastType = "error"
)

// Toast is a short-lived user notification.
type Toast struct {
	ID        uuid.UUID
	Type      ToastType
	Message   string
	CreatedAt time.Time
}

// Notifier publishes toasts on the bus and dismisses each one after its TTL.
// Subscribers receive a Toast on TopicToast and its ID on TopicToastDismissed.
type Notifier struct {
	bus EventBus.Bus
	ttl time.Duration

	mu     sync.Mutex
	active []Toast
}

func NewNotifier(bus EventBus.Bus, ttl time.Duration) *Notifier {
	if ttl <= 0 {
		ttl = DefaultToastTTL
	}

	return &Notifier{bus: bus, ttl: ttl}
}

// Notify shows a toast and schedules its dismissal.
func (n *Notifier) Notify(typ ToastType, message string) Toast {
	toast := Toast{
		ID:        uuid.New(),
		Type:      typ,
		Message:   message,
		CreatedAt: time.Now(),
	}

	n.mu.Lock()
	n.active = append(n.active, toast)
	n.mu.Unlock()

	n.bus.Publish(TopicToast, toast)
	time.AfterFunc(n.ttl, func() { n.Dismiss(toast.ID) })

	return toast
}

// Dismiss removes a toast early. Unknown IDs are ignored.
func (n *Notifier) Dismiss(id uuid.UUID) {
	n.mu.Lock()
	i := slices.IndexFunc(n.active, func(t Toast) bool { return t.ID == id })
	if i < 0 {
		n.mu.Unlock()
		return
	}
	n.active = slices.Delete(n.active, i, i+1)
	n.mu.Unlock()

	n.bus.Publish(TopicToastDismissed, id)
}

// Active lists the visible toasts, oldest first.
func (n *Notifier) Active() []Toast {
	n.mu.Lock()
	defer n.mu.Unlock()

	return slices.Clone(n.active)
}

// Subscribe registers fn for every new toast.
func (n *Notifier) Subscribe(fn func(Toast)) error {
	return n.bus.Subscribe(TopicToast, fn)
}
