package models

import (
	"time"

	"collection-adapter/core/host"
	"collection-adapter/core/pool"
	"collection-adapter/core/reconcile"
)

// Item is one entry of a session collection. Type selects the holder partition.
type Item struct {
	Type int    `json:"type" yaml:"type"`
	Text string `json:"text" yaml:"text"`
}

// CreateRequest describes a new session. Nil tuning fields fall back to the
// configured adapter settings.
type CreateRequest struct {
	StashSize   *int        `json:"stash_size,omitempty"`
	StartOffset *int        `json:"start_offset,omitempty"`
	EndOffset   *int        `json:"end_offset,omitempty"`
	Capacities  map[int]int `json:"capacities,omitempty"`
	Items       []Item      `json:"items,omitempty"`
	Attach      bool        `json:"attach"`
}

// ItemsRequest replaces the items of a session.
type ItemsRequest struct {
	Items []Item `json:"items"`
}

// CapacityRequest sets the pool capacity of one type.
type CapacityRequest struct {
	Max int `json:"max"`
}

// Child describes one host child at snapshot time.
type Child struct {
	Index      int    `json:"index"`
	ID         string `json:"id"`
	Label      string `json:"label"`
	Type       int    `json:"type"`
	Visibility string `json:"visibility"`
	// Managed is false for fixed leading and trailing children.
	Managed  bool `json:"managed"`
	Position int  `json:"position"`
	Stashed  bool `json:"stashed"`
}

// Snapshot is the observable state of a session.
type Snapshot struct {
	ID         string                `json:"id"`
	Attached   bool                  `json:"attached"`
	StashSize  int                   `json:"stash_size"`
	Items      []Item                `json:"items"`
	Children   []Child               `json:"children"`
	Pool       []pool.PartitionStats `json:"pool"`
	LastReport reconcile.Report      `json:"last_report"`
	Host       host.Stats            `json:"host"`
}

// RefreshRecord is one persisted reconciliation pass.
type RefreshRecord struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SessionID    string    `gorm:"size:36;index;not null" json:"session_id"`
	ItemCount    int       `json:"item_count"`
	Stashed      int       `json:"stashed"`
	Evicted      int       `json:"evicted"`
	Reused       int       `json:"reused"`
	Retyped      int       `json:"retyped"`
	Taken        int       `json:"taken"`
	Created      int       `json:"created"`
	Bound        int       `json:"bound"`
	RemovedStart int       `json:"removed_start"`
	RemovedCount int       `json:"removed_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName overrides the gorm table name.
func (RefreshRecord) TableName() string {
	return "refresh_history"
}

// RefreshColumns lists the columns the refresh_history table must have.
var RefreshColumns = []string{
	"id", "session_id", "item_count", "stashed", "evicted", "reused", "retyped",
	"taken", "created", "bound", "removed_start", "removed_count", "created_at",
}

// NewRefreshRecord converts a pass report into a record.
func NewRefreshRecord(sessionID string, r reconcile.Report) RefreshRecord {
	return RefreshRecord{
		SessionID:    sessionID,
		ItemCount:    r.ItemCount,
		Stashed:      r.Stashed,
		Evicted:      r.Evicted,
		Reused:       r.Reused,
		Retyped:      r.Retyped,
		Taken:        r.Taken,
		Created:      r.Created,
		Bound:        r.Bound,
		RemovedStart: r.RemovedStart,
		RemovedCount: r.RemovedCount,
	}
}
