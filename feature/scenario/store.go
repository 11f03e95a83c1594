package scenario

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"
	"time"

	"collection-adapter/core/storage"

	"go.uber.org/zap"
)

// StoragePrefix marks a scenario reference that names an object key in the bucket.
const StoragePrefix = "storage:"

const yamlExt = ".yaml"

var (
	// ErrStorageDisabled is returned for bucket operations when no client is configured.
	ErrStorageDisabled = errors.New("scenario storage is disabled")
	// ErrNotFound is returned for unknown scenarios.
	ErrNotFound = errors.New("scenario not found")
)

// Store loads scenarios from local files or from the object storage bucket.
type Store struct {
	client storage.Client
	bucket string
	prefix string
	cache  *cache
	logger *zap.Logger
}

// NewStore creates a store. A nil client limits it to local files.
func NewStore(client storage.Client, bucket, prefix string, ttl time.Duration, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		client: client,
		bucket: bucket,
		prefix: prefix,
		cache:  newCache(ttl),
		logger: logger,
	}
}

// Load resolves ref: "storage:<key>" reads the object key from the bucket, anything
// else is a local file path.
func (s *Store) Load(ctx context.Context, ref string) (*Scenario, error) {
	if key, ok := strings.CutPrefix(ref, StoragePrefix); ok {
		return s.fetch(ctx, key)
	}

	data, err := os.ReadFile(ref)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", ref, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	return Parse(data)
}

// Get loads the named scenario from the bucket.
func (s *Store) Get(ctx context.Context, name string) (*Scenario, error) {
	if err := validName(name); err != nil {
		return nil, err
	}
	return s.fetch(ctx, s.key(name))
}

// Put validates data and uploads it under name.
func (s *Store) Put(ctx context.Context, name string, data []byte) (*Scenario, error) {
	if s.client == nil {
		return nil, ErrStorageDisabled
	}
	if err := validName(name); err != nil {
		return nil, err
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, err
	}
	key := s.key(name)
	if err := storage.WriteObject(ctx, s.client, s.bucket, key, "application/yaml", data); err != nil {
		return nil, err
	}
	s.cache.invalidate(key)
	s.logger.Info("Scenario stored", zap.String("key", key))
	return sc, nil
}

// List returns the names of the scenarios in the bucket.
func (s *Store) List(ctx context.Context) ([]string, error) {
	if s.client == nil {
		return nil, ErrStorageDisabled
	}
	keys, err := storage.ListKeys(ctx, s.client, s.bucket, s.prefix)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		if !strings.HasSuffix(k, yamlExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(strings.TrimPrefix(k, s.prefix), yamlExt))
	}
	sort.Strings(names)
	return names, nil
}

func (s *Store) fetch(ctx context.Context, key string) (*Scenario, error) {
	if s.client == nil {
		return nil, ErrStorageDisabled
	}
	return s.cache.getOrLoad(ctx, key, func(ctx context.Context) (*Scenario, error) {
		data, err := storage.ReadObject(ctx, s.client, s.bucket, key)
		if err != nil {
			if errors.Is(err, storage.ErrObjectNotFound) {
				return nil, fmt.Errorf("%s: %w", key, ErrNotFound)
			}
			return nil, err
		}
		s.logger.Debug("Scenario fetched", zap.String("key", key), zap.Int("bytes", len(data)))
		return Parse(data)
	})
}

func (s *Store) key(name string) string {
	return s.prefix + name + yamlExt
}

func validName(name string) error {
	if name == "" || strings.Contains(name, "..") || path.IsAbs(name) {
		return fmt.Errorf("%w: bad name %q", ErrInvalidScenario, name)
	}
	return nil
}
