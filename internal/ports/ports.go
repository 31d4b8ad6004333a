package ports

import (
	"context"

	"investapi/internal/domain"
)

// Companies resolves lookups and searches for route handlers.
type Companies interface {
	GetByIdentifier(ctx context.Context, id string) (*domain.Company, error)
	SearchByName(ctx context.Context, name string, limit int) ([]*domain.Company, error)
	Select(ctx context.Context, sel domain.CompanySelection) ([]*domain.Company, error)
	Regions(ctx context.Context) ([]*domain.Region, error)
}
