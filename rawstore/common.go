package rawstore

import (
	"errors"
)

var ErrNilDatabaseConnection = errors.New("database connection must not be nil")
var ErrEmptyTableNameSupplied = errors.New("empty tableName supplied")
var ErrEmptySchemaNameSupplied = errors.New("empty schemaName supplied")
var ErrEmptyBatchIDSupplied = errors.New("empty batchID supplied")
var ErrBuildingQueryFailed = errors.New("building insert query failed")
var ErrLoadingEventsFailed = errors.New("loading events failed")
var ErrGettingRowsAffectedFailed = errors.New("getting rows affected count failed")
