package domain

import "time"

// Closure blocks bookings for a date range. ProductID nil means the
// closure is global and applies to every product.
type Closure struct {
	ID        string    `json:"id"`
	ProductID *string   `json:"product_id,omitempty"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

// Covers reports whether t falls inside the closure range, bounds included.
func (c *Closure) Covers(t time.Time) bool {
	return !t.Before(c.StartDate) && !t.After(c.EndDate)
}

func (c *Closure) AppliesTo(productID string) bool {
	return c.ProductID == nil || *c.ProductID == productID
}

type CreateClosureInput struct {
	ProductID *string
	StartDate time.Time
	EndDate   time.Time
	Reason    string
}
