package rawstore

import (
	"errors"

	jsoniter "github.com/json-iterator/go"
)

var ErrEmptyEventID = errors.New("event id must not be empty")
var ErrInvalidPayloadJSON = errors.New("payload json is not valid")

// StorableRows is an alias type for a slice of StorableRow.
type StorableRows = []StorableRow

// StorableRow is a DTO (data transfer object) used by the Store to load
// events into the raw events table.
//
// It is built on scalars to be completely agnostic of how client code models
// events. While its properties are exported, it should only be constructed
// with the supplied factory method BuildStorableRow.
type StorableRow struct {
	EventID     string
	PayloadJSON []byte
}

// BuildStorableRow is a factory method for StorableRow.
//
// The event id is the raw store's unique key; the payload is the opaque
// serialized event document. Returns an error if the event id is empty or
// payloadJSON is not valid JSON.
func BuildStorableRow(eventID string, payloadJSON []byte) (StorableRow, error) {
	if eventID == "" {
		return StorableRow{}, ErrEmptyEventID
	}

	if !jsoniter.ConfigFastest.Valid(payloadJSON) {
		return StorableRow{}, ErrInvalidPayloadJSON
	}

	return StorableRow{
		EventID:     eventID,
		PayloadJSON: payloadJSON,
	}, nil
}
