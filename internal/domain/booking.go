package domain

import "time"

// Booking is the permanent record written when a hold is consumed.
type Booking struct {
	ID            string    `json:"id"`
	OccurrenceID  string    `json:"occurrence_id"`
	HoldToken     string    `json:"hold_token"`
	Quantity      int       `json:"quantity"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	Note          string    `json:"note,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type BookingDetails struct {
	CustomerName  string
	CustomerEmail string
	Note          string
}
