package domain

import "time"

type HoldState string

const (
	HoldStateActive   HoldState = "active"
	HoldStateConsumed HoldState = "consumed"
	HoldStateReleased HoldState = "released"
	HoldStateExpired  HoldState = "expired"
)

// Terminal reports whether the state allows no further transitions.
func (s HoldState) Terminal() bool {
	return s != HoldStateActive
}

// Hold reserves quantity seats on one occurrence for a limited time.
// Only active holds count against capacity.
type Hold struct {
	Token        string    `json:"token"`
	OccurrenceID string    `json:"occurrence_id"`
	Quantity     int       `json:"quantity"`
	State        HoldState `json:"state"`
	CreatedAt    time.Time `json:"created_at"`
	ExpiresAt    time.Time `json:"expires_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (h *Hold) ExpiredAt(now time.Time) bool {
	return !h.ExpiresAt.After(now)
}
