package rawstore

import (
	"context"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeRows(t *testing.T, count int) StorableRows {
	t.Helper()

	rows := make(StorableRows, 0, count)
	for i := 0; i < count; i++ {
		row, err := BuildStorableRow(
			fmt.Sprintf("evt_%032x", i),
			[]byte(fmt.Sprintf(`{"event_type": "user_login", "n": %d}`, i)),
		)
		require.NoError(t, err)
		rows = append(rows, row)
	}

	return rows
}

func Test_NewStore_NilConnection(t *testing.T) {
	_, err := NewStoreFromSQLDB(nil)
	assert.ErrorIs(t, err, ErrNilDatabaseConnection)

	_, err = NewStoreFromPGXPool(nil)
	assert.ErrorIs(t, err, ErrNilDatabaseConnection)

	_, err = NewStoreFromSQLX(nil)
	assert.ErrorIs(t, err, ErrNilDatabaseConnection)
}

func Test_NewStore_OptionErrors(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	_, err = NewStoreFromSQLDB(db, WithTableName(""))
	assert.ErrorIs(t, err, ErrEmptyTableNameSupplied)

	_, err = NewStoreFromSQLDB(db, WithSchemaName(""))
	assert.ErrorIs(t, err, ErrEmptySchemaNameSupplied)
}

func Test_Store_Load_InsertsAllRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store, err := NewStoreFromSQLDB(db)
	require.NoError(t, err)

	mock.ExpectExec(`INSERT INTO "raw"\."events" \("event_id", "raw_payload", "batch_id"\).*ON CONFLICT DO NOTHING`).
		WillReturnResult(sqlmock.NewResult(0, 3))

	inserted, err := store.Load(context.Background(), makeRows(t, 3), "batch_20240101")
	require.NoError(t, err)
	assert.Equal(t, int64(3), inserted)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// A repeated load of the same rows inserts nothing; only the returned count
// signals the duplicates.
func Test_Store_Load_SkipsDuplicatesOnRerun(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store, err := NewStoreFromSQLDB(db)
	require.NoError(t, err)

	rows := makeRows(t, 4)

	mock.ExpectExec(`ON CONFLICT DO NOTHING`).WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec(`ON CONFLICT DO NOTHING`).WillReturnResult(sqlmock.NewResult(0, 0))

	first, err := store.Load(context.Background(), rows, "batch_20240101")
	require.NoError(t, err)
	assert.Equal(t, int64(4), first)

	second, err := store.Load(context.Background(), rows, "batch_20240101")
	require.NoError(t, err)
	assert.Equal(t, int64(0), second)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// Loading A then A∪B reports only the count of B's new rows on the second call.
func Test_Store_Load_PartialOverlap(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store, err := NewStoreFromSQLDB(db)
	require.NoError(t, err)

	setA := makeRows(t, 5)
	setAB := makeRows(t, 7)

	mock.ExpectExec(`ON CONFLICT DO NOTHING`).WillReturnResult(sqlmock.NewResult(0, 5))
	mock.ExpectExec(`ON CONFLICT DO NOTHING`).WillReturnResult(sqlmock.NewResult(0, 2))

	first, err := store.Load(context.Background(), setA, "batch_20240101")
	require.NoError(t, err)
	assert.Equal(t, int64(5), first)

	second, err := store.Load(context.Background(), setAB, "batch_20240101")
	require.NoError(t, err)
	assert.Equal(t, int64(2), second)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_Store_Load_EmptyBatchSkipsDatabase(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store, err := NewStoreFromSQLDB(db)
	require.NoError(t, err)

	inserted, err := store.Load(context.Background(), nil, "batch_20240101")
	require.NoError(t, err)
	assert.Equal(t, int64(0), inserted)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_Store_Load_EmptyBatchID(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store, err := NewStoreFromSQLDB(db)
	require.NoError(t, err)

	_, err = store.Load(context.Background(), makeRows(t, 1), "")
	assert.ErrorIs(t, err, ErrEmptyBatchIDSupplied)
}

func Test_Store_Load_PropagatesExecError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store, err := NewStoreFromSQLDB(db)
	require.NoError(t, err)

	mock.ExpectExec(`ON CONFLICT DO NOTHING`).WillReturnError(fmt.Errorf("connection refused"))

	_, err = store.Load(context.Background(), makeRows(t, 2), "batch_20240101")
	assert.ErrorIs(t, err, ErrLoadingEventsFailed)
	assert.ErrorContains(t, err, "connection refused")
}

func Test_Store_Load_CustomSchemaAndTable(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store, err := NewStoreFromSQLDB(db, WithSchemaName("staging"), WithTableName("raw_events"))
	require.NoError(t, err)

	mock.ExpectExec(`INSERT INTO "staging"\."raw_events"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	inserted, err := store.Load(context.Background(), makeRows(t, 1), "batch_20240102")
	require.NoError(t, err)
	assert.Equal(t, int64(1), inserted)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_Store_Load_EmbedsBatchID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store, err := NewStoreFromSQLDB(db)
	require.NoError(t, err)

	mock.ExpectExec(`batch_20240101_deadbeef`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	inserted, err := store.Load(context.Background(), makeRows(t, 1), "batch_20240101_deadbeef")
	require.NoError(t, err)
	assert.Equal(t, int64(1), inserted)

	assert.NoError(t, mock.ExpectationsWereMet())
}
