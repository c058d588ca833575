// Package main implements the synthetic event generation CLI: it drives the
// generator over a date range and loads each day's batch idempotently into
// the raw event store.
package main

import (
	"context"
	"database/sql"
	"encoding/hex"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	jsoniter "github.com/json-iterator/go"
	_ "github.com/lib/pq" // driver import for the sql and sqlx adapters

	"github.com/clouddocs/eventgen-go/eventgen"
	"github.com/clouddocs/eventgen-go/rawstore"
)

const batchTokenHexLength = 8

func main() {
	cfg := parseFlags()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	generator, err := eventgen.NewGenerator(
		cfg.Seed,
		eventgen.WithUserCount(cfg.UserCount),
		eventgen.WithDocumentCount(cfg.DocumentCount),
	)
	if err != nil {
		log.Fatalf("Failed to create generator: %v", err)
	}

	var store *rawstore.Store
	if !cfg.DryRun {
		var closeStore func()
		store, closeStore, err = initializeStore(ctx, cfg.DSN)
		if err != nil {
			log.Fatalf("Failed to create raw store: %v", err)
		}
		defer closeStore()
	}

	var totalLoaded int64
	dayCount := 0

	for day := cfg.StartDate; !day.After(cfg.EndDate); day = day.AddDate(0, 0, 1) {
		if ctx.Err() != nil {
			log.Printf("Interrupted, stopping before %s", day.Format(dateLayout))
			break
		}

		dayCount++
		batchID := batchIDFor(day, cfg.UniqueBatch)

		events := make([]eventgen.Event, 0, cfg.EventsPerDay)
		for event := range generator.ForDay(day, cfg.EventsPerDay) {
			events = append(events, event)
		}

		if cfg.DryRun {
			log.Printf("%s: generated %d events", day.Format(dateLayout), len(events))
			printSampleEvent(events[0])
			continue
		}

		rows, rowsErr := rowsFromEvents(events)
		if rowsErr != nil {
			log.Fatalf("Failed to serialize batch %s: %v", batchID, rowsErr)
		}

		loaded, loadErr := store.Load(ctx, rows, batchID)
		if loadErr != nil {
			log.Fatalf("Failed to load batch %s: %v", batchID, loadErr)
		}

		totalLoaded += loaded
		log.Printf("%s: loaded %d events (batch: %s, running total: %d)",
			day.Format(dateLayout), loaded, batchID, totalLoaded)
	}

	if !cfg.DryRun && dayCount > 0 {
		log.Printf("Total events loaded: %d over %d days (average %d events/day)",
			totalLoaded, dayCount, totalLoaded/int64(dayCount))
	}
}

// initializeStore creates the raw store on the adapter selected by the
// DB_ADAPTER environment variable (default: pgx). The returned close function
// releases the underlying connection on all exit paths.
func initializeStore(ctx context.Context, dsn string) (*rawstore.Store, func(), error) {
	adapterType := strings.ToLower(os.Getenv("DB_ADAPTER"))
	if adapterType == "" {
		adapterType = "pgx"
	}

	logger := slog.Default()

	switch adapterType {
	case "pgx":
		pool, err := pgxpool.NewWithConfig(ctx, postgresPoolConfig(dsn))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create pgx pool: %w", err)
		}

		if pingErr := pool.Ping(ctx); pingErr != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("failed to connect to database: %w", pingErr)
		}

		store, err := rawstore.NewStoreFromPGXPool(pool, rawstore.WithLogger(logger))
		if err != nil {
			pool.Close()
			return nil, nil, err
		}

		return store, pool.Close, nil

	case "sql", "sql.db":
		db, err := sql.Open("postgres", dsn)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open database: %w", err)
		}

		if pingErr := db.PingContext(ctx); pingErr != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("failed to connect to database: %w", pingErr)
		}

		store, err := rawstore.NewStoreFromSQLDB(db, rawstore.WithLogger(logger))
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}

		return store, func() { _ = db.Close() }, nil

	case "sqlx":
		db, err := sqlx.Open("postgres", dsn)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open database: %w", err)
		}

		if pingErr := db.PingContext(ctx); pingErr != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("failed to connect to database: %w", pingErr)
		}

		store, err := rawstore.NewStoreFromSQLX(db, rawstore.WithLogger(logger))
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}

		return store, func() { _ = db.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown database adapter: %s (supported: pgx, sql, sqlx)", adapterType)
	}
}

// batchIDFor derives the operational batch identifier for one day's load.
// The uniqueness token distinguishes repeated manual runs for the same day.
func batchIDFor(day time.Time, unique bool) string {
	batchID := "batch_" + day.Format("20060102")
	if unique {
		token := uuid.New()
		batchID += "_" + hex.EncodeToString(token[:batchTokenHexLength/2])
	}

	return batchID
}

// rowsFromEvents serializes events into the scalar rows the raw store loads.
func rowsFromEvents(events []eventgen.Event) (rawstore.StorableRows, error) {
	rows := make(rawstore.StorableRows, 0, len(events))

	for _, event := range events {
		payload, err := event.PayloadJSON()
		if err != nil {
			return nil, fmt.Errorf("failed to serialize event %s: %w", event.EventID, err)
		}

		row, err := rawstore.BuildStorableRow(event.EventID, payload)
		if err != nil {
			return nil, fmt.Errorf("failed to build row for event %s: %w", event.EventID, err)
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// printSampleEvent pretty-prints one event so dry runs can preview the shape
// without touching storage.
func printSampleEvent(event eventgen.Event) {
	pretty, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(event, "", "  ")
	if err != nil {
		log.Printf("Failed to render sample event: %v", err)
		return
	}

	log.Printf("Sample event:\n%s", pretty)
}
