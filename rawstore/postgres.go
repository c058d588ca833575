package rawstore

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // driver import
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/clouddocs/eventgen-go/rawstore/internal/adapters"
)

const (
	defaultSchemaName = "raw"
	defaultTableName  = "events"

	logMsgBuildInsertQueryFailed = "failed to build insert query"
	logMsgDBExecFailed           = "database execution failed during event load"
	logMsgRowsAffectedFailed     = "failed to get rows affected count"
	logMsgEventsLoaded           = "events loaded"
	logMsgEmptyBatchSkipped      = "empty batch, nothing to load"
	logMsgSQLExecuted            = "executed sql for: "
	logMsgOperation              = "rawstore operation: "
	logAttrError                 = "error"
	logAttrQuery                 = "query"
	logAttrBatchID               = "batch_id"
	logAttrEventCount            = "event_count"
	logAttrRowsInserted          = "rows_inserted"
	logAttrDurationMS            = "duration_ms"
	logActionLoad                = "load"
	colEventID                   = "event_id"
	colRawPayload                = "raw_payload"
	colBatchID                   = "batch_id"
	dialectPostgres              = "postgres"
	castText                     = "?::text"
	castJsonb                    = "?::jsonb"
)

// Logger interface for SQL query logging, operational metrics, warnings, and error reporting.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Store writes serialized events into the raw events table with
// at-most-once insertion semantics per event identifier.
type Store struct {
	db         adapters.DBAdapter
	schemaName string
	tableName  string
	logger     Logger
}

// NewStoreFromPGXPool creates a new Store using a pgx pool with optional configuration.
func NewStoreFromPGXPool(db *pgxpool.Pool, options ...Option) (*Store, error) {
	if db == nil {
		return nil, ErrNilDatabaseConnection
	}

	return newStore(adapters.NewPGXAdapter(db), options...)
}

// NewStoreFromSQLDB creates a new Store using a sql.DB with optional configuration.
func NewStoreFromSQLDB(db *sql.DB, options ...Option) (*Store, error) {
	if db == nil {
		return nil, ErrNilDatabaseConnection
	}

	return newStore(adapters.NewSQLAdapter(db), options...)
}

// NewStoreFromSQLX creates a new Store using a sqlx.DB with optional configuration.
func NewStoreFromSQLX(db *sqlx.DB, options ...Option) (*Store, error) {
	if db == nil {
		return nil, ErrNilDatabaseConnection
	}

	return newStore(adapters.NewSQLXAdapter(db), options...)
}

func newStore(db adapters.DBAdapter, options ...Option) (*Store, error) {
	store := &Store{
		db:         db,
		schemaName: defaultSchemaName,
		tableName:  defaultTableName,
	}

	for _, option := range options {
		if err := option(store); err != nil {
			return nil, err
		}
	}

	return store, nil
}

// Load writes all rows in a single bulk insert, skipping silently on
// duplicate event identifiers, and returns the number of rows actually
// inserted.
//
// Re-running a load for a batch that partially succeeded inserts only the
// rows not already present; the returned count is the sole signal of partial
// prior completion. Duplicates are an expected, recoverable condition, not a
// fault. Storage failures are propagated without internal retry — retrying
// from the outside is safe because of the conflict policy.
func (s *Store) Load(ctx context.Context, rows StorableRows, batchID string) (int64, error) {
	if batchID == "" {
		return 0, ErrEmptyBatchIDSupplied
	}

	if len(rows) == 0 {
		s.logOperation(logMsgEmptyBatchSkipped, logAttrBatchID, batchID)
		return 0, nil
	}

	sqlQuery, buildQueryErr := s.buildInsertQuery(rows, batchID)
	if buildQueryErr != nil {
		if s.logger != nil {
			s.logger.Error(logMsgBuildInsertQueryFailed, logAttrError, buildQueryErr.Error(), logAttrEventCount, len(rows))
		}

		return 0, buildQueryErr
	}

	rowsInserted, duration, execErr := s.executeLoadQuery(ctx, sqlQuery)
	if execErr != nil {
		return 0, execErr
	}

	s.logOperation(
		logMsgEventsLoaded,
		logAttrBatchID, batchID,
		logAttrEventCount, len(rows),
		logAttrRowsInserted, rowsInserted,
		logAttrDurationMS, s.durationToMilliseconds(duration),
	)

	return rowsInserted, nil
}

// buildInsertQuery builds the bulk insert statement with the skip-on-conflict
// policy keyed by the table's primary key (the event identifier).
func (s *Store) buildInsertQuery(rows StorableRows, batchID string) (string, error) {
	builder := goqu.Dialect(dialectPostgres)

	vals := make([][]interface{}, 0, len(rows))
	for _, row := range rows {
		vals = append(vals, goqu.Vals{
			goqu.L(castText, row.EventID),
			goqu.L(castJsonb, string(row.PayloadJSON)),
			goqu.L(castText, batchID),
		})
	}

	insertStmt := builder.
		Insert(goqu.S(s.schemaName).Table(s.tableName)).
		Cols(colEventID, colRawPayload, colBatchID).
		Vals(vals...).
		OnConflict(goqu.DoNothing())

	sqlQuery, _, toSQLErr := insertStmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

// executeLoadQuery executes the bulk insert and returns rows inserted and duration.
func (s *Store) executeLoadQuery(ctx context.Context, sqlQuery string) (int64, time.Duration, error) {
	start := time.Now()
	result, execErr := s.db.Exec(ctx, sqlQuery)
	duration := time.Since(start)
	s.logQueryWithDuration(sqlQuery, logActionLoad, duration)

	if execErr != nil {
		if s.logger != nil {
			s.logger.Error(logMsgDBExecFailed, logAttrError, execErr.Error(), logAttrQuery, sqlQuery)
		}

		return 0, duration, errors.Join(ErrLoadingEventsFailed, execErr)
	}

	rowsInserted, rowsAffectedErr := result.RowsAffected()
	if rowsAffectedErr != nil {
		if s.logger != nil {
			s.logger.Error(logMsgRowsAffectedFailed, logAttrError, rowsAffectedErr.Error())
		}

		return 0, duration, errors.Join(ErrGettingRowsAffectedFailed, rowsAffectedErr)
	}

	return rowsInserted, duration, nil
}

// logQueryWithDuration logs SQL queries with execution time at debug level if the logger is configured.
func (s *Store) logQueryWithDuration(sqlQuery string, action string, duration time.Duration) {
	if s.logger != nil {
		s.logger.Debug(logMsgSQLExecuted+action, logAttrDurationMS, s.durationToMilliseconds(duration), logAttrQuery, sqlQuery)
	}
}

// logOperation logs operational information at info level if the logger is configured.
func (s *Store) logOperation(action string, args ...any) {
	if s.logger != nil {
		s.logger.Info(logMsgOperation+action, args...)
	}
}

// durationToMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func (s *Store) durationToMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
