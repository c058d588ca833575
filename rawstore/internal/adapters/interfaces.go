package adapters

import "context"

// DBAdapter defines the interface for database operations needed by the
// raw store. The loader only ever writes, so a single Exec is enough.
type DBAdapter interface {
	Exec(ctx context.Context, query string) (DBResult, error)
}

// DBResult defines the interface for execution results.
type DBResult interface {
	RowsAffected() (int64, error)
}
