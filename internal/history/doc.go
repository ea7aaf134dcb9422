// Package history records simulation runs and their scene executions.
//
// Device readings themselves are never persisted; the stored records are
// an audit trail of what each run did (which seed drove it, whether the
// scene fired, which devices it activated). Records are written through
// the Repository interface, backed by SQLite in production and by mocks
// in tests.
//
// Usage:
//
//	repo := history.NewSQLiteRepository(db)
//	run := &history.Run{ID: history.GenerateID(), Seed: 42, DeviceCount: 5}
//	if err := repo.CreateRun(ctx, run); err != nil { ... }
package history
