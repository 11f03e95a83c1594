// Package database handles the optional MySQL connection and schema inspection.
//
// It provides a wrapper around GORM to configure MySQL connections from the
// application's configuration. The connection is only used to persist refresh
// history; when it is disabled or unreachable the service keeps running without it.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns read SHOW COLUMNS so that callers can verify
// a table matches the columns their models expect before writing to it.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("database unavailable, history disabled", zap.Error(err))
//	}
package database
