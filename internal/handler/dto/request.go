package dto

type CreateProductRequest struct {
	Name string `json:"name" binding:"required"`
}

type CreateOccurrenceRequest struct {
	StartAt  string `json:"start_at" binding:"required"`
	EndAt    string `json:"end_at"`
	Capacity int    `json:"capacity" binding:"gte=0"`
}

type ReserveRequest struct {
	OccurrenceID string `json:"occurrence_id" binding:"required,uuid"`
	Quantity     int    `json:"quantity" binding:"required,gt=0"`
}

type RenewHoldRequest struct {
	TTLMinutes int `json:"ttl_minutes" binding:"gte=0"`
}

type ConfirmHoldRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"omitempty,email"`
	Note          string `json:"note"`
}

type UpdateOccurrenceStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CreateClosureRequest struct {
	ProductID *string `json:"product_id" binding:"omitempty,uuid"`
	StartDate string  `json:"start_date" binding:"required"`
	EndDate   string  `json:"end_date" binding:"required"`
	Reason    string  `json:"reason"`
}
