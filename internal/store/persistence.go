package store

import (
	"encoding/json"
	"fmt"

	"github.com/sambrend/nomer/internal/models"
)

const currentSchemaVersion = 1

// stateEnvelope wraps the aggregate with a schema version so a future
// shape change can migrate instead of silently misreading old blobs.
type stateEnvelope struct {
	SchemaVersion int             `json:"schemaVersion"`
	State         models.AppState `json:"state"`
}

func encodeState(state models.AppState) ([]byte, error) {
	payload, err := json.Marshal(stateEnvelope{
		SchemaVersion: currentSchemaVersion,
		State:         state,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal state envelope: %w", err)
	}
	return payload, nil
}

// decodeState accepts the current envelope and, for blobs written before
// versioning existed, a bare aggregate at the top level.
func decodeState(payload []byte) (models.AppState, error) {
	var envelope stateEnvelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return models.AppState{}, fmt.Errorf("parse state blob: %w", err)
	}

	if envelope.SchemaVersion == 0 {
		legacy := models.EmptyAppState()
		if err := json.Unmarshal(payload, &legacy); err != nil {
			return models.AppState{}, fmt.Errorf("parse legacy state blob: %w", err)
		}
		return normalizeState(legacy), nil
	}
	if envelope.SchemaVersion != currentSchemaVersion {
		return models.AppState{}, fmt.Errorf("unknown state schema version %d", envelope.SchemaVersion)
	}
	return normalizeState(envelope.State), nil
}

// normalizeState replaces nil collections with empty ones so a sparse
// blob never leaves the aggregate with nil slices.
func normalizeState(state models.AppState) models.AppState {
	if state.Users == nil {
		state.Users = []models.User{}
	}
	if state.CheckIns == nil {
		state.CheckIns = []models.CheckIn{}
	}
	if state.Sales == nil {
		state.Sales = []models.SimSale{}
	}
	if state.Reports == nil {
		state.Reports = []models.DailyReport{}
	}
	return state
}
