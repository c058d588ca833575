package rawstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_BuildStorableRow_ErrorCases(t *testing.T) {
	validPayloadJSON := []byte(`{"event_id": "evt_0123", "event_type": "user_login"}`)

	tests := []struct {
		name        string
		eventID     string
		payloadJSON []byte
		expectedErr error
	}{
		{
			name:        "empty event id",
			eventID:     "",
			payloadJSON: validPayloadJSON,
			expectedErr: ErrEmptyEventID,
		},
		{
			name:        "invalid payload JSON",
			eventID:     "evt_0123",
			payloadJSON: []byte(`{"invalid": json}`),
			expectedErr: ErrInvalidPayloadJSON,
		},
		{
			name:        "empty payload JSON",
			eventID:     "evt_0123",
			payloadJSON: []byte(``),
			expectedErr: ErrInvalidPayloadJSON,
		},
		{
			name:        "nil payload JSON",
			eventID:     "evt_0123",
			payloadJSON: nil,
			expectedErr: ErrInvalidPayloadJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildStorableRow(tt.eventID, tt.payloadJSON)
			assert.ErrorContains(t, err, tt.expectedErr.Error())
		})
	}
}

func Test_BuildStorableRow_Success(t *testing.T) {
	eventID := "evt_00112233445566778899aabbccddeeff"
	payloadJSON := []byte(`{"event_type": "document_edited", "user_id": "usr_001122334455"}`)

	row, err := BuildStorableRow(eventID, payloadJSON)
	assert.NoError(t, err)
	assert.Equal(t, eventID, row.EventID)
	assert.Equal(t, payloadJSON, row.PayloadJSON)
}
