package ws

import (
	"encoding/json"

	"microgrid-twin/internal/api/models"
	"microgrid-twin/internal/model"
)

// Envelope is the wire shape of every socket message: a type tag plus a
// type-specific payload.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

const (
	// Client -> Server
	TypeSimRun      = "sim:run"
	TypeSimStop     = "sim:stop"
	TypeSimSetSpeed = "sim:set_speed"

	// Server -> Client
	TypeSimHour    = "sim:hour"
	TypeSimSummary = "sim:summary"
	TypeSimDone    = "sim:done"
	TypeSimError   = "sim:error"
)

// Client -> Server payloads

type RunPayload struct {
	Config models.SimulateRequest `json:"config"`
}

type SetSpeedPayload struct {
	HoursPerSecond float64 `json:"hours_per_second"`
}

// Server -> Client payloads

// HourPayload delivers one playback frame: the same hour from both
// strategy ledgers, so the UI can animate the comparison in lockstep.
type HourPayload struct {
	Hour     int                `json:"hour"`
	Baseline model.HourlyRecord `json:"baseline"`
	Smart    model.HourlyRecord `json:"smart"`
}

type SummaryPayload struct {
	Summary model.Summary `json:"summary"`
}

type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func NewEnvelope(msgType string, payload any) ([]byte, error) {
	var raw json.RawMessage
	if payload != nil {
		var err error
		raw, err = json.Marshal(payload)
		if err != nil {
			return nil, err
		}
	}
	return json.Marshal(Envelope{Type: msgType, Payload: raw})
}
