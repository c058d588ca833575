package main

import (
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clouddocs/eventgen-go/eventgen"
)

func Test_BatchIDFor(t *testing.T) {
	day := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "batch_20240101", batchIDFor(day, false))
	assert.Regexp(t, `^batch_20240101_[0-9a-f]{8}$`, batchIDFor(day, true))
}

func Test_BatchIDFor_UniqueTokensDiffer(t *testing.T) {
	day := time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC)

	assert.NotEqual(t, batchIDFor(day, true), batchIDFor(day, true))
}

func Test_RowsFromEvents(t *testing.T) {
	generator, err := eventgen.NewGenerator(42)
	require.NoError(t, err)

	day := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	events := make([]eventgen.Event, 0, 5)
	for event := range generator.ForDay(day, 5) {
		events = append(events, event)
	}

	rows, err := rowsFromEvents(events)
	require.NoError(t, err)
	require.Len(t, rows, 5)

	for i, row := range rows {
		assert.Equal(t, events[i].EventID, row.EventID)
		assert.True(t, jsoniter.ConfigFastest.Valid(row.PayloadJSON))
	}
}
