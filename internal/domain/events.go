package domain

import "time"

type ThresholdKind string

const (
	ThresholdLowAvailability ThresholdKind = "low_availability"
	ThresholdNearlyFull      ThresholdKind = "nearly_full"
	ThresholdWaitlist        ThresholdKind = "waitlist"
)

// CapacityThresholdEvent describes a watermark crossing on one occurrence.
// Events are edge-triggered: a kind fires again only after availability
// recovered above the watermark in between.
type CapacityThresholdEvent struct {
	OccurrenceID string        `json:"occurrence_id"`
	Kind         ThresholdKind `json:"kind"`
	Available    int           `json:"available"`
	Capacity     int           `json:"capacity"`
	At           time.Time     `json:"at"`
}

type LifecycleKind string

const (
	LifecycleHoldPlaced       LifecycleKind = "hold_placed"
	LifecycleHoldRenewed      LifecycleKind = "hold_renewed"
	LifecycleHoldReleased     LifecycleKind = "hold_released"
	LifecycleHoldExpired      LifecycleKind = "hold_expired"
	LifecycleBookingConfirmed LifecycleKind = "booking_confirmed"
)

type BookingLifecycleEvent struct {
	Kind         LifecycleKind `json:"kind"`
	OccurrenceID string        `json:"occurrence_id"`
	HoldToken    string        `json:"hold_token"`
	Quantity     int           `json:"quantity"`
	At           time.Time     `json:"at"`
}
