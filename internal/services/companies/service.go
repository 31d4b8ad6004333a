package companies

import (
	"context"

	"investapi/internal/domain"
	"investapi/internal/ports"
)

const itnLength = 10

// Service routes identifier lookups and passes search/selection queries
// through to the repository.
type Service struct {
	repo ports.CompanyRepository
}

func New(repo ports.CompanyRepository) *Service {
	return &Service{repo: repo}
}

// GetByIdentifier resolves a path identifier: a 10-digit numeric string
// is treated as a tax identifier, anything else as a registration
// number. Routing is a pure function of the identifier's shape.
func (s *Service) GetByIdentifier(ctx context.Context, id string) (*domain.Company, error) {
	if IsTaxIdentifier(id) {
		return s.repo.GetCompanyByITN(ctx, id)
	}
	return s.repo.GetCompanyByPSRN(ctx, id)
}

func (s *Service) SearchByName(ctx context.Context, name string, limit int) ([]*domain.Company, error) {
	return s.repo.SearchCompaniesByName(ctx, name, limit)
}

func (s *Service) Select(ctx context.Context, sel domain.CompanySelection) ([]*domain.Company, error) {
	return s.repo.SelectCompanies(ctx, sel)
}

func (s *Service) Regions(ctx context.Context) ([]*domain.Region, error) {
	return s.repo.ListRegions(ctx)
}

// IsTaxIdentifier reports whether id has the 10-digit ITN shape.
func IsTaxIdentifier(id string) bool {
	if len(id) != itnLength {
		return false
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
