// Package rawstore provides the idempotent PostgreSQL loader for synthetic
// events.
//
// The Store writes batches of serialized events into the raw events table in
// one bulk statement with ON CONFLICT DO NOTHING keyed by the event
// identifier, making repeated loads of overlapping event sets safe. It
// supports multiple database adapters (pgx, sql.DB, sqlx) behind one
// write-only seam.
//
// Usage examples:
//
//	// Basic usage
//	db, _ := pgxpool.New(context.Background(), dsn)
//	store, _ := rawstore.NewStoreFromPGXPool(db)
//
//	// With operational logging and a custom table
//	store, _ := rawstore.NewStoreFromPGXPool(
//		db,
//		rawstore.WithSchemaName("raw"),
//		rawstore.WithTableName("events"),
//		rawstore.WithLogger(logger),
//	)
//
//	inserted, err := store.Load(ctx, rows, "batch_20240101")
package rawstore
