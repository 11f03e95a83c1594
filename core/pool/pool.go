package pool

import (
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// DefaultCapacity is the number of idle items kept per type unless configured otherwise.
const DefaultCapacity = 5

// ErrAlreadyPooled is returned in debug mode when the same item is put twice.
var ErrAlreadyPooled = errors.New("item already exists in pool")

// Item is anything that can be pooled: it must report its partition key and be
// comparable so duplicates can be detected.
type Item interface {
	comparable
	Type() int
}

// Options configures a Pool.
type Options struct {
	// Name identifies the pool in log entries.
	Name string
	// DefaultCapacity applies to partitions without an explicit capacity.
	// Zero or negative means DefaultCapacity.
	DefaultCapacity int
	// Debug enables the duplicate check on Put.
	Debug bool
	// Logger receives hit/miss/discard events at debug level. Nil disables logging.
	Logger *zap.Logger
}

// PartitionStats describes one partition.
type PartitionStats struct {
	Type     int `json:"type"`
	Idle     int `json:"idle"`
	Capacity int `json:"capacity"`
	Hits     int `json:"hits"`
	Misses   int `json:"misses"`
	Discards int `json:"discards"`
}

type partition[T Item] struct {
	idle     []T
	max      int
	hits     int
	misses   int
	discards int
}

// Pool stores idle items keyed by their type tag.
type Pool[T Item] struct {
	name            string
	defaultCapacity int
	debug           bool
	logger          *zap.Logger
	partitions      map[int]*partition[T]
}

// New creates an empty pool.
func New[T Item](opts Options) *Pool[T] {
	capacity := opts.DefaultCapacity
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	name := opts.Name
	if name == "" {
		name = "default"
	}
	return &Pool[T]{
		name:            name,
		defaultCapacity: capacity,
		debug:           opts.Debug,
		logger:          logger.With(zap.String("pool", name)),
		partitions:      make(map[int]*partition[T]),
	}
}

// Name returns the pool name.
func (p *Pool[T]) Name() string {
	return p.name
}

// Take removes and returns the most recently put item of the given type.
func (p *Pool[T]) Take(typ int) (T, bool) {
	var zero T
	part := p.partition(typ)
	n := len(part.idle)
	if n == 0 {
		part.misses++
		p.logger.Debug("pool miss", zap.Int("type", typ))
		return zero, false
	}
	item := part.idle[n-1]
	part.idle[n-1] = zero
	part.idle = part.idle[:n-1]
	part.hits++
	p.logger.Debug("holder taken from pool", zap.Int("type", typ), zap.Int("idle", len(part.idle)))
	return item, true
}

// Put returns an item to its partition. When the partition is full the item is
// discarded and nil is returned.
func (p *Pool[T]) Put(item T) error {
	typ := item.Type()
	part := p.partition(typ)
	if len(part.idle) >= part.max {
		part.discards++
		p.logger.Debug("holder discarded, pool is full", zap.Int("type", typ), zap.Int("capacity", part.max))
		return nil
	}
	if p.debug {
		for _, idle := range part.idle {
			if idle == item {
				return fmt.Errorf("put type %d: %w", typ, ErrAlreadyPooled)
			}
		}
	}
	part.idle = append(part.idle, item)
	return nil
}

// SetCapacity sets the maximum number of idle items kept for typ, dropping the most
// recently added items when the partition already holds more.
func (p *Pool[T]) SetCapacity(typ, max int) {
	if max < 0 {
		max = 0
	}
	part := p.partition(typ)
	part.max = max
	var zero T
	for len(part.idle) > max {
		last := len(part.idle) - 1
		part.idle[last] = zero
		part.idle = part.idle[:last]
		part.discards++
	}
}

// Capacity returns the maximum number of idle items kept for typ.
func (p *Pool[T]) Capacity(typ int) int {
	if part, ok := p.partitions[typ]; ok {
		return part.max
	}
	return p.defaultCapacity
}

// Count returns the number of idle items of typ.
func (p *Pool[T]) Count(typ int) int {
	if part, ok := p.partitions[typ]; ok {
		return len(part.idle)
	}
	return 0
}

// Types returns the known type tags in ascending order.
func (p *Pool[T]) Types() []int {
	types := make([]int, 0, len(p.partitions))
	for typ := range p.partitions {
		types = append(types, typ)
	}
	sort.Ints(types)
	return types
}

// Clear drops every idle item. Capacities and counters are kept.
func (p *Pool[T]) Clear() {
	for _, part := range p.partitions {
		clear(part.idle)
		part.idle = part.idle[:0]
	}
}

// Stats returns a snapshot of every partition, ordered by type.
func (p *Pool[T]) Stats() []PartitionStats {
	stats := make([]PartitionStats, 0, len(p.partitions))
	for _, typ := range p.Types() {
		part := p.partitions[typ]
		stats = append(stats, PartitionStats{
			Type:     typ,
			Idle:     len(part.idle),
			Capacity: part.max,
			Hits:     part.hits,
			Misses:   part.misses,
			Discards: part.discards,
		})
	}
	return stats
}

func (p *Pool[T]) partition(typ int) *partition[T] {
	part, ok := p.partitions[typ]
	if !ok {
		part = &partition[T]{max: p.defaultCapacity}
		p.partitions[typ] = part
	}
	return part
}
