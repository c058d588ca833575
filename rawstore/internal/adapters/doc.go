// Package adapters provides database driver adapters for the raw store.
//
// The adapters wrap pgxpool.Pool, sql.DB and sqlx.DB behind one write-only
// DBAdapter interface so the loader logic stays independent of the concrete
// driver's bulk-write mechanics.
package adapters
