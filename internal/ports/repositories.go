package ports

import (
	"context"

	"investapi/internal/domain"
)

// CompanyRepository reads companies from the relational store. Every
// operation is side-effect free; single-row lookups return
// domain.ErrCompanyNotFound when no row matches.
type CompanyRepository interface {
	GetCompanyByITN(ctx context.Context, itn string) (*domain.Company, error)
	GetCompanyByPSRN(ctx context.Context, psrn string) (*domain.Company, error)
	SearchCompaniesByName(ctx context.Context, name string, limit int) ([]*domain.Company, error)
	SelectCompanies(ctx context.Context, sel domain.CompanySelection) ([]*domain.Company, error)
	ListRegions(ctx context.Context) ([]*domain.Region, error)
}

// HealthChecker probes the store with a trivial round trip.
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}
