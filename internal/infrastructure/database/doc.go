// Package database opens the SQLite store for run history and applies
// embedded schema migrations.
//
// The connection uses WAL mode (configurable), a busy timeout, and
// foreign-key enforcement, with a single open connection to match
// SQLite's one-writer model.
//
// Migrations are additive-only *.up.sql files named
// YYYYMMDD_HHMMSS_description.up.sql, applied in version order and
// tracked in the schema_migrations table. The files are embedded by the
// top-level migrations package, which assigns MigrationsFS at init.
//
// Usage:
//
//	db, err := database.Open(cfg)
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	if err := db.Migrate(ctx); err != nil {
//	    return err
//	}
package database
