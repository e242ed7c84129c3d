package ports

import (
	"context"

	"github.com/niksmo/slotkeeper/internal/domain"
)

type ProductStore interface {
	Create(ctx context.Context, p *domain.Product) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}
