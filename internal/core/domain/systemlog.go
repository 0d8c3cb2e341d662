package domain

import "time"

// LogCodeChanged is the status classification recorded for successful
// create/update/delete actions.
const LogCodeChanged = 201

// SystemLog is one append-only entry of the action history. Entries are never
// updated or deleted.
type SystemLog struct {
	LogID      string    `json:"logID" db:"log_id"`
	Message    string    `json:"message" db:"message"`
	StatusCode int       `json:"statusCode" db:"status_code"`
	ActorID    string    `json:"actorID" db:"actor_id"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}
