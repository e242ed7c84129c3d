package domain

import "time"

type OccurrenceStatus string

const (
	OccurrenceStatusActive    OccurrenceStatus = "active"
	OccurrenceStatusInactive  OccurrenceStatus = "inactive"
	OccurrenceStatusCancelled OccurrenceStatus = "cancelled"
	OccurrenceStatusCompleted OccurrenceStatus = "completed"
)

func (s OccurrenceStatus) Valid() bool {
	switch s {
	case OccurrenceStatusActive, OccurrenceStatusInactive,
		OccurrenceStatusCancelled, OccurrenceStatusCompleted:
		return true
	}
	return false
}

// Terminal statuses never transition again; active and inactive
// may flip between each other.
func (s OccurrenceStatus) CanTransitionTo(to OccurrenceStatus) bool {
	if !to.Valid() || s == to {
		return false
	}
	switch s {
	case OccurrenceStatusActive, OccurrenceStatusInactive:
		return true
	}
	return false
}

// Occurrence is the bookable unit: one fixed-capacity run of a product
// at a specific time.
type Occurrence struct {
	ID        string           `json:"id"`
	ProductID string           `json:"product_id"`
	StartAt   time.Time        `json:"start_at"`
	EndAt     *time.Time       `json:"end_at,omitempty"`
	Capacity  int              `json:"capacity"`
	Booked    int              `json:"booked"`
	Status    OccurrenceStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

func (o *Occurrence) Bookable() bool {
	return o.Status == OccurrenceStatusActive
}

// Slot is an occurrence annotated with its computed availability,
// as returned by slot resolution.
type Slot struct {
	Occurrence *Occurrence `json:"occurrence"`
	Available  int         `json:"available"`
}

// OccurrenceAvailability is a point-in-time capacity snapshot.
type OccurrenceAvailability struct {
	OccurrenceID string           `json:"occurrence_id"`
	Status       OccurrenceStatus `json:"status"`
	Capacity     int              `json:"capacity"`
	Booked       int              `json:"booked"`
	Available    int              `json:"available"`
}

type CreateOccurrenceInput struct {
	ProductID string
	StartAt   time.Time
	EndAt     *time.Time
	Capacity  int
}
