package session

import (
	"context"
	"errors"
	"sort"
	"sync"

	"collection-adapter/core/logger"
	"collection-adapter/core/pool"
	"collection-adapter/core/reconcile"
	"collection-adapter/feature/session/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrSessionNotFound is returned for unknown session ids.
var ErrSessionNotFound = errors.New("session not found")

// Service manages the live sessions.
type Service struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	settings reconcile.Settings
	history  HistoryRepository
	logger   *zap.Logger

	// Set when sessions share one pool.
	sharedPool *pool.Pool[*reconcile.Holder]
	sharedLock *sync.Mutex
	sharedIDs  *Sequence
}

// NewService creates a session service. A nil history discards reports.
func NewService(settings reconcile.Settings, history HistoryRepository, logger *zap.Logger) *Service {
	if history == nil {
		history = NoopHistory{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{
		sessions: make(map[string]*Session),
		settings: settings,
		history:  history,
		logger:   logger,
	}
	if settings.SharedPool {
		s.sharedPool = settings.NewPool("shared", logger)
		s.sharedLock = &sync.Mutex{}
		s.sharedIDs = &Sequence{}
	}
	return s
}

// Settings returns the adapter settings new sessions start from.
func (s *Service) Settings() reconcile.Settings {
	return s.settings
}

// Create builds a session, optionally sets its items and attaches it.
func (s *Service) Create(ctx context.Context, req models.CreateRequest) (*models.Snapshot, error) {
	settings := s.settings
	if req.StashSize != nil {
		settings.StashSize = *req.StashSize
	}
	if req.StartOffset != nil {
		settings.StartOffset = *req.StartOffset
	}
	if req.EndOffset != nil {
		settings.EndOffset = *req.EndOffset
	}

	id := uuid.NewString()
	sess, err := New(id, Config{
		Settings:   settings,
		Capacities: req.Capacities,
		Pool:       s.sharedPool,
		Lock:       s.sharedLock,
		IDs:        s.sharedIDs,
		Logger:     s.logger,
	})
	if err != nil {
		return nil, err
	}

	if len(req.Items) > 0 {
		if err := sess.SetItems(req.Items); err != nil {
			return nil, err
		}
	}
	if req.Attach {
		if err := sess.Attach(); err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()

	logger.WithSession(s.logger, id).Info("Session created",
		zap.Int("stash_size", settings.StashSize),
		zap.Bool("shared_pool", s.sharedPool != nil),
	)
	s.persist(ctx, sess)

	snap := sess.Snapshot()
	return &snap, nil
}

// Get returns the snapshot of a session.
func (s *Service) Get(id string) (*models.Snapshot, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	snap := sess.Snapshot()
	return &snap, nil
}

// IDs returns the ids of the live sessions, sorted.
func (s *Service) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// SetItems replaces the items of a session.
func (s *Service) SetItems(ctx context.Context, id string, items []models.Item) (*models.Snapshot, error) {
	return s.mutate(ctx, id, func(sess *Session) error { return sess.SetItems(items) })
}

// Attach mounts a session's collection.
func (s *Service) Attach(ctx context.Context, id string) (*models.Snapshot, error) {
	return s.mutate(ctx, id, (*Session).Attach)
}

// Detach unmounts a session's collection.
func (s *Service) Detach(ctx context.Context, id string) (*models.Snapshot, error) {
	return s.mutate(ctx, id, (*Session).Detach)
}

// SetCapacity changes the pool capacity of one type.
func (s *Service) SetCapacity(id string, typ, max int) (*models.Snapshot, error) {
	if max < 0 {
		return nil, reconcile.ErrInvalidArgument
	}
	return s.mutate(context.Background(), id, func(sess *Session) error {
		sess.SetCapacity(typ, max)
		return nil
	})
}

// ClearPool drops the idle holders of a session's pool.
func (s *Service) ClearPool(id string) (*models.Snapshot, error) {
	return s.mutate(context.Background(), id, func(sess *Session) error {
		sess.ClearPool()
		return nil
	})
}

// Delete detaches and forgets a session.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}

	err := sess.Detach()
	s.persist(ctx, sess)
	logger.WithSession(s.logger, id).Info("Session deleted")
	return err
}

// History returns the persisted passes of a session, newest first.
func (s *Service) History(ctx context.Context, id string, limit int) ([]models.RefreshRecord, error) {
	if _, err := s.lookup(id); err != nil {
		return nil, err
	}
	return s.history.List(ctx, id, limit)
}

func (s *Service) lookup(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func (s *Service) mutate(ctx context.Context, id string, fn func(*Session) error) (*models.Snapshot, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	err = fn(sess)
	// Passes completed before a failure are still recorded.
	s.persist(ctx, sess)
	if err != nil {
		return nil, err
	}
	snap := sess.Snapshot()
	return &snap, nil
}

func (s *Service) persist(ctx context.Context, sess *Session) {
	reports := sess.DrainReports()
	if len(reports) == 0 {
		return
	}
	if err := s.history.Save(ctx, sess.ID(), reports); err != nil {
		logger.WithSession(s.logger, sess.ID()).Warn("Failed to save refresh history", zap.Error(err))
	}
}
