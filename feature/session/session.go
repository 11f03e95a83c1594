package session

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"collection-adapter/core/host"
	"collection-adapter/core/pool"
	"collection-adapter/core/reconcile"
	"collection-adapter/feature/session/models"

	"go.uber.org/zap"
)

// FixedType is the type tag of leading and trailing children the collection never touches.
const FixedType = -1

// ErrUnexpectedComponent is returned when a holder does not wrap a host.Node.
var ErrUnexpectedComponent = errors.New("holder component is not a node")

// Sequence hands out node ids. It is guarded by the lock of its owners.
type Sequence struct {
	n int
}

// Next returns the next id.
func (s *Sequence) Next() string {
	s.n++
	return fmt.Sprintf("n%d", s.n)
}

// Config assembles a Session.
type Config struct {
	// Settings carries stash size, offsets, pool capacity and debug checks.
	Settings reconcile.Settings
	// Capacities overrides pool capacity per type.
	Capacities map[int]int
	// Pool is shared with other sessions when set; otherwise the session builds its own.
	Pool *pool.Pool[*reconcile.Holder]
	// Lock serialises the session. Sessions sharing a pool must share the lock.
	Lock *sync.Mutex
	// IDs numbers created nodes. Sessions sharing a pool should share it.
	IDs *Sequence
	// Context is exposed to the reconciler through the host.
	Context context.Context
	// Logger receives debug diagnostics.
	Logger *zap.Logger
}

// Session is one collection reconciled into an in-memory host.
type Session struct {
	id      string
	mu      *sync.Mutex
	host    *host.Memory
	adapter *reconcile.ListAdapter[models.Item]
	pool    *pool.Pool[*reconcile.Holder]
	ids     *Sequence
	stash   int
	reports []reconcile.Report
}

// New builds a detached session with an empty collection. Fixed header and
// footer nodes are mounted for the configured offsets.
func New(id string, cfg Config) (*Session, error) {
	if err := cfg.Settings.Validate(); err != nil {
		return nil, err
	}

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.String("session", id))

	s := &Session{
		id:    id,
		mu:    cfg.Lock,
		pool:  cfg.Pool,
		ids:   cfg.IDs,
		stash: cfg.Settings.StashSize,
	}
	if s.mu == nil {
		s.mu = &sync.Mutex{}
	}
	if s.ids == nil {
		s.ids = &Sequence{}
	}
	if s.pool == nil {
		s.pool = cfg.Settings.NewPool(id, log)
	}
	if len(cfg.Capacities) > 0 {
		s.mu.Lock()
		for typ, max := range cfg.Capacities {
			s.pool.SetCapacity(typ, max)
		}
		s.mu.Unlock()
	}

	fixed := make([]host.Component, 0, cfg.Settings.StartOffset+cfg.Settings.EndOffset)
	for i := 0; i < cfg.Settings.StartOffset; i++ {
		n := host.NewNode("header", FixedType)
		n.ID = fmt.Sprintf("header-%d", i)
		fixed = append(fixed, n)
	}
	for i := 0; i < cfg.Settings.EndOffset; i++ {
		n := host.NewNode("footer", FixedType)
		n.ID = fmt.Sprintf("footer-%d", i)
		fixed = append(fixed, n)
	}
	s.host = host.NewMemory(cfg.Context, fixed...)

	lc := reconcile.ListConfig[models.Item]{
		BindItem: bindItem,
		ItemType: func(item models.Item) int { return item.Type },
		Equal:    func(a, b []models.Item) bool { return slices.Equal(a, b) },
	}
	lc.Factory = s.create
	lc.OnReport = func(r reconcile.Report) { s.reports = append(s.reports, r) }
	lc.Logger = log
	cfg.Settings.Apply(&lc.Config, s.pool)

	adapter, err := reconcile.NewListAdapter(lc)
	if err != nil {
		return nil, err
	}
	s.adapter = adapter
	return s, nil
}

// ID returns the session id.
func (s *Session) ID() string {
	return s.id
}

// SetItems replaces the collection.
func (s *Session) SetItems(items []models.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.adapter.Set(items)
}

// Attach mounts the collection into the session host.
func (s *Session) Attach() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.adapter.Attach(s.host)
}

// Detach unmounts the collection, recycling every holder.
func (s *Session) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.adapter.Detach()
}

// Refresh re-runs reconciliation against the current items.
func (s *Session) Refresh() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.adapter.NotifyDataChanged()
}

// SetCapacity changes the pool capacity for a type.
func (s *Session) SetCapacity(typ, max int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pool.SetCapacity(typ, max)
}

// ClearPool drops every idle holder.
func (s *Session) ClearPool() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pool.Clear()
}

// DrainReports returns the reports of passes run since the last call.
func (s *Session) DrainReports() []reconcile.Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.reports
	s.reports = nil
	return out
}

// DrainJournal returns the host operations recorded since the last call.
func (s *Session) DrainJournal() []host.Op {
	s.mu.Lock()
	defer s.mu.Unlock()
	ops := s.host.Journal()
	s.host.ResetJournal()
	return ops
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := s.adapter.Reconciler()
	managed := make(map[host.Component]*reconcile.Holder)
	for _, p := range r.Positions() {
		if h, ok := r.Holder(p); ok {
			managed[h.Component()] = h
		}
	}

	children := s.host.Children()
	snap := models.Snapshot{
		ID:         s.id,
		Attached:   r.Attached(),
		StashSize:  s.stash,
		Items:      s.adapter.Items(),
		Children:   make([]models.Child, 0, len(children)),
		Pool:       s.pool.Stats(),
		LastReport: r.LastReport(),
		Host:       s.host.Stats(),
	}
	for i, c := range children {
		child := models.Child{
			Index:      i,
			Visibility: c.Visibility().String(),
			Position:   reconcile.NoPosition,
		}
		if n, ok := c.(*host.Node); ok {
			child.ID = n.ID
			child.Label = n.Label
			child.Type = n.Kind
		}
		if h, ok := managed[c]; ok {
			child.Managed = true
			child.Position = h.Position()
			child.Stashed = h.Stashed()
		}
		snap.Children = append(snap.Children, child)
	}
	return snap
}

func (s *Session) create(_ host.Host, typ int) (*reconcile.Holder, error) {
	n := host.NewNode("", typ)
	n.ID = s.ids.Next()
	return reconcile.NewHolder(n)
}

func bindItem(h *reconcile.Holder, item models.Item, _ int) error {
	n, ok := h.Component().(*host.Node)
	if !ok {
		return fmt.Errorf("bind %q: %w", item.Text, ErrUnexpectedComponent)
	}
	n.Label = item.Text
	return nil
}
