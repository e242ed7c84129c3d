package dto

import (
	"time"

	"github.com/niksmo/slotkeeper/internal/domain"
)

type ProductResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Active    bool   `json:"active"`
	CreatedAt string `json:"created_at"`
}

type OccurrenceResponse struct {
	ID        string  `json:"id"`
	ProductID string  `json:"product_id"`
	StartAt   string  `json:"start_at"`
	EndAt     *string `json:"end_at,omitempty"`
	Capacity  int     `json:"capacity"`
	Booked    int     `json:"booked"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"created_at"`
}

type SlotResponse struct {
	Occurrence OccurrenceResponse `json:"occurrence"`
	Available  int                `json:"available"`
}

type HoldResponse struct {
	Token        string `json:"token"`
	OccurrenceID string `json:"occurrence_id"`
	Quantity     int    `json:"quantity"`
	State        string `json:"state"`
	ExpiresAt    string `json:"expires_at"`
	CreatedAt    string `json:"created_at"`
}

type AvailabilityResponse struct {
	OccurrenceID string `json:"occurrence_id"`
	Status       string `json:"status"`
	Capacity     int    `json:"capacity"`
	Booked       int    `json:"booked"`
	Available    int    `json:"available"`
}

type ClosureResponse struct {
	ID        string  `json:"id"`
	ProductID *string `json:"product_id,omitempty"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Reason    string  `json:"reason,omitempty"`
	CreatedAt string  `json:"created_at"`
}

type BookingConfirmedResponse struct {
	BookingID string `json:"booking_id"`
}

type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Active:    p.Active,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
}

func ToOccurrenceResponse(o *domain.Occurrence) OccurrenceResponse {
	resp := OccurrenceResponse{
		ID:        o.ID,
		ProductID: o.ProductID,
		StartAt:   o.StartAt.Format(time.RFC3339),
		Capacity:  o.Capacity,
		Booked:    o.Booked,
		Status:    string(o.Status),
		CreatedAt: o.CreatedAt.Format(time.RFC3339),
	}
	if o.EndAt != nil {
		endAt := o.EndAt.Format(time.RFC3339)
		resp.EndAt = &endAt
	}

	return resp
}

func ToSlotResponse(s domain.Slot) SlotResponse {
	return SlotResponse{
		Occurrence: ToOccurrenceResponse(s.Occurrence),
		Available:  s.Available,
	}
}

func ToHoldResponse(h *domain.Hold) HoldResponse {
	return HoldResponse{
		Token:        h.Token,
		OccurrenceID: h.OccurrenceID,
		Quantity:     h.Quantity,
		State:        string(h.State),
		ExpiresAt:    h.ExpiresAt.Format(time.RFC3339),
		CreatedAt:    h.CreatedAt.Format(time.RFC3339),
	}
}

func ToAvailabilityResponse(a *domain.OccurrenceAvailability) AvailabilityResponse {
	return AvailabilityResponse{
		OccurrenceID: a.OccurrenceID,
		Status:       string(a.Status),
		Capacity:     a.Capacity,
		Booked:       a.Booked,
		Available:    a.Available,
	}
}

func ToClosureResponse(c *domain.Closure) ClosureResponse {
	return ClosureResponse{
		ID:        c.ID,
		ProductID: c.ProductID,
		StartDate: c.StartDate.Format(time.RFC3339),
		EndDate:   c.EndDate.Format(time.RFC3339),
		Reason:    c.Reason,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}
