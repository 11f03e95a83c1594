// Package session hosts named reconciliation sessions behind an HTTP API.
//
// Each session owns an in-memory host, optionally pre-filled with fixed header and
// footer nodes, and a list adapter over Item values whose Type selects the holder
// partition. Every reconciliation pass is reported to a HistoryRepository, which is
// backed by MySQL through GORM when the database is enabled.
//
// # Shared Pool
//
// With adapter.shared_pool set, all sessions draw holders from one pool and are
// serialised by one lock. Capacity changes made through any session then apply to all.
//
// # HTTP Endpoints
//
//   - POST /sessions : Create a session.
//   - GET /sessions/:id : Snapshot of children, pool and last report.
//   - PUT /sessions/:id/items : Replace items.
//   - POST /sessions/:id/attach, POST /sessions/:id/detach
//   - PUT /sessions/:id/pool/:type : Set the capacity of a type.
//   - DELETE /sessions/:id/pool : Clear idle holders.
//   - DELETE /sessions/:id : Detach and delete.
//   - GET /sessions/:id/history : Persisted passes, newest first.
package session
