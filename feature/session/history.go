package session

import (
	"context"
	"fmt"
	"strings"

	"collection-adapter/core/database"
	"collection-adapter/core/reconcile"
	"collection-adapter/feature/session/models"

	"gorm.io/gorm"
)

// DefaultHistoryLimit caps history queries without an explicit limit.
const DefaultHistoryLimit = 50

// HistoryRepository persists reconciliation reports.
type HistoryRepository interface {
	// Save stores the reports of one session in order.
	Save(ctx context.Context, sessionID string, reports []reconcile.Report) error
	// List returns the most recent records of a session, newest first.
	List(ctx context.Context, sessionID string, limit int) ([]models.RefreshRecord, error)
}

// GormHistory stores history in the refresh_history table.
type GormHistory struct {
	db *gorm.DB
}

// NewGormHistory creates a repository over db.
func NewGormHistory(db *gorm.DB) *GormHistory {
	return &GormHistory{db: db}
}

// Migrate creates or updates the table and verifies its columns.
func (r *GormHistory) Migrate() error {
	if err := r.db.AutoMigrate(&models.RefreshRecord{}); err != nil {
		return fmt.Errorf("failed to migrate refresh history: %w", err)
	}
	return r.Verify()
}

// Verify checks that the table carries every column the model writes.
func (r *GormHistory) Verify() error {
	missing, err := database.MissingColumns(r.db, models.RefreshRecord{}.TableName(), models.RefreshColumns)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return fmt.Errorf("refresh_history is missing columns: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Save implements HistoryRepository.
func (r *GormHistory) Save(ctx context.Context, sessionID string, reports []reconcile.Report) error {
	if len(reports) == 0 {
		return nil
	}
	records := make([]models.RefreshRecord, len(reports))
	for i, rep := range reports {
		records[i] = models.NewRefreshRecord(sessionID, rep)
	}
	if err := r.db.WithContext(ctx).Create(&records).Error; err != nil {
		return fmt.Errorf("failed to save refresh history: %w", err)
	}
	return nil
}

// List implements HistoryRepository.
func (r *GormHistory) List(ctx context.Context, sessionID string, limit int) ([]models.RefreshRecord, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	var records []models.RefreshRecord
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("id DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list refresh history: %w", err)
	}
	return records, nil
}

// NoopHistory discards reports. It is used when the database is disabled.
type NoopHistory struct{}

// Save implements HistoryRepository.
func (NoopHistory) Save(context.Context, string, []reconcile.Report) error {
	return nil
}

// List implements HistoryRepository.
func (NoopHistory) List(context.Context, string, int) ([]models.RefreshRecord, error) {
	return []models.RefreshRecord{}, nil
}
