package session

import (
	"context"
	"testing"
	"time"

	"collection-adapter/core/reconcile"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestGormHistory_Save(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewGormHistory(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `refresh_history`").
		WillReturnResult(sqlmock.NewResult(1, 2))
	mock.ExpectCommit()

	err := repo.Save(context.Background(), "s-1", []reconcile.Report{
		{ItemCount: 2, Created: 2, Bound: 2, RemovedStart: -1},
		{ItemCount: 1, Stashed: 1, Bound: 1, RemovedStart: -1},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormHistory_SaveEmpty(t *testing.T) {
	db, mock := setupMockDB(t)
	require.NoError(t, NewGormHistory(db).Save(context.Background(), "s-1", nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormHistory_SaveError(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `refresh_history`").WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := NewGormHistory(db).Save(context.Background(), "s-1", []reconcile.Report{{ItemCount: 1}})
	assert.ErrorIs(t, err, assert.AnError)
}

func TestGormHistory_List(t *testing.T) {
	db, mock := setupMockDB(t)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "session_id", "item_count", "stashed", "evicted", "reused", "retyped", "taken", "created", "bound", "removed_start", "removed_count", "created_at"}).
		AddRow(2, "s-1", 1, 1, 0, 1, 0, 0, 0, 1, -1, 0, now).
		AddRow(1, "s-1", 2, 0, 0, 0, 0, 0, 2, 2, -1, 0, now)
	mock.ExpectQuery("SELECT \\* FROM `refresh_history` WHERE session_id = \\? ORDER BY id DESC LIMIT").
		WillReturnRows(rows)

	records, err := NewGormHistory(db).List(context.Background(), "s-1", 0)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, uint(2), records[0].ID)
	assert.Equal(t, 1, records[0].Stashed)
	assert.Equal(t, 2, records[1].Created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormHistory_Verify(t *testing.T) {
	t.Run("Complete", func(t *testing.T) {
		db, mock := setupMockDB(t)
		rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
		for _, c := range []string{"id", "session_id", "item_count", "stashed", "evicted", "reused", "retyped", "taken", "created", "bound", "removed_start", "removed_count", "created_at"} {
			rows.AddRow(c, "bigint", "NO", "", nil, "")
		}
		mock.ExpectQuery("SHOW COLUMNS FROM `refresh_history`").WillReturnRows(rows)

		assert.NoError(t, NewGormHistory(db).Verify())
	})

	t.Run("Missing", func(t *testing.T) {
		db, mock := setupMockDB(t)
		rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
			AddRow("id", "bigint", "NO", "PRI", nil, "auto_increment").
			AddRow("session_id", "varchar(36)", "NO", "MUL", nil, "")
		mock.ExpectQuery("SHOW COLUMNS FROM `refresh_history`").WillReturnRows(rows)

		err := NewGormHistory(db).Verify()
		assert.ErrorContains(t, err, "item_count")
	})
}

func TestNoopHistory(t *testing.T) {
	var h HistoryRepository = NoopHistory{}
	assert.NoError(t, h.Save(context.Background(), "s", []reconcile.Report{{}}))
	recs, err := h.List(context.Background(), "s", 1)
	assert.NoError(t, err)
	assert.Empty(t, recs)
}
