// Package notify presents transient, self-expiring notifications.
package notify

import (
	"sort"
	"sync"
	"time"

	"github.com/goodnatureofminers/neuronet-client/internal/model"
	"go.uber.org/zap"
)

// DefaultTTL is how long a notification stays visible.
const DefaultTTL = 5 * time.Second

const (
	reasonExpired   = "expired"
	reasonDismissed = "dismissed"
)

type entry struct {
	notification model.Notification
	timer        stopper
}

// Presenter keeps the set of visible notifications. Each notification expires on
// its own timer; there is no cap on how many are visible at once.
// Sinks are called with the presenter lock held and must not call back into it.
type Presenter struct {
	logger    *zap.Logger
	metrics   Metrics
	sinks     []Sink
	ttl       time.Duration
	afterFunc afterFunc
	now       func() time.Time

	mu     sync.Mutex
	nextID uint64
	active map[uint64]*entry
	closed bool
}

// NewPresenter builds a Presenter. A zero ttl selects DefaultTTL.
func NewPresenter(logger *zap.Logger, metrics Metrics, ttl time.Duration, sinks ...Sink) *Presenter {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Presenter{
		logger:    logger,
		metrics:   metrics,
		sinks:     sinks,
		ttl:       ttl,
		afterFunc: realAfterFunc,
		now:       time.Now,
		active:    make(map[uint64]*entry),
	}
}

// Notify shows message and arms its expiry. It returns the notification id.
func (p *Presenter) Notify(message string, kind model.Kind) uint64 {
	kind = kind.Normalize()

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		p.logger.Debug("presenter closed, dropping notification", zap.String("message", message))
		return 0
	}
	p.nextID++
	n := model.Notification{
		ID:        p.nextID,
		Message:   message,
		Kind:      kind,
		CreatedAt: p.now(),
	}
	e := &entry{notification: n}
	p.active[n.ID] = e
	e.timer = p.afterFunc(p.ttl, func() {
		p.remove(n.ID, reasonExpired)
	})
	for _, s := range p.sinks {
		s.Show(n)
	}
	active := len(p.active)
	p.mu.Unlock()

	p.log(n)
	p.metrics.ObserveShown(string(kind), active)
	return n.ID
}

// Dismiss removes a notification before it expires. It reports whether the
// notification was still visible; dismissing twice is a no-op.
func (p *Presenter) Dismiss(id uint64) bool {
	return p.remove(id, reasonDismissed)
}

// Active returns the visible notifications ordered by creation.
func (p *Presenter) Active() []model.Notification {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]model.Notification, 0, len(p.active))
	for _, e := range p.active {
		out = append(out, e.notification)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Close stops every pending expiry timer and drops later notifications.
func (p *Presenter) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true
	for id, e := range p.active {
		e.timer.Stop()
		delete(p.active, id)
	}
}

func (p *Presenter) remove(id uint64, reason string) bool {
	p.mu.Lock()
	e, ok := p.active[id]
	if !ok {
		p.mu.Unlock()
		return false
	}
	delete(p.active, id)
	e.timer.Stop()
	for _, s := range p.sinks {
		s.Remove(id)
	}
	active := len(p.active)
	p.mu.Unlock()

	p.metrics.ObserveRemoved(reason, active)
	return true
}

func (p *Presenter) log(n model.Notification) {
	fields := []zap.Field{zap.Uint64("id", n.ID), zap.String("kind", string(n.Kind)), zap.String("message", n.Message)}
	switch n.Kind {
	case model.KindError:
		p.logger.Error("notification", fields...)
	case model.KindWarning:
		p.logger.Warn("notification", fields...)
	default:
		p.logger.Info("notification", fields...)
	}
}
