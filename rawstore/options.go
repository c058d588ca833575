package rawstore

// Option defines a functional option for configuring a Store.
type Option func(*Store) error

// WithSchemaName sets the schema the raw events table lives in.
func WithSchemaName(schemaName string) Option {
	return func(s *Store) error {
		if schemaName == "" {
			return ErrEmptySchemaNameSupplied
		}

		s.schemaName = schemaName

		return nil
	}
}

// WithTableName sets the table name for the Store.
func WithTableName(tableName string) Option {
	return func(s *Store) error {
		if tableName == "" {
			return ErrEmptyTableNameSupplied
		}

		s.tableName = tableName

		return nil
	}
}

// WithLogger sets the logger for the Store.
// The logger will receive messages at different levels based on the logger's configured level:
//
// Debug level: SQL queries with execution timing (development use)
// Info level: Event counts, inserted counts, durations (production-safe)
// Error level: Critical failures that cause operation failures.
func WithLogger(logger Logger) Option {
	return func(s *Store) error {
		s.logger = logger
		return nil
	}
}
