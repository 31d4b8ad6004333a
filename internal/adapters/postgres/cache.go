package postgres

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"

	"investapi/internal/domain"
	"investapi/internal/ports"
)

// CachingRepository memoizes the single-row lookups of an inner
// repository in a bounded LRU. Only successful lookups are retained: a
// failed or missing lookup is retried on the next call, never frozen as
// a negative entry. Search, selection and region reads pass through.
type CachingRepository struct {
	inner  ports.CompanyRepository
	byITN  *lru.Cache[string, *domain.Company]
	byPSRN *lru.Cache[string, *domain.Company]
}

var _ ports.CompanyRepository = (*CachingRepository)(nil)

func NewCachingRepository(inner ports.CompanyRepository, size int) (*CachingRepository, error) {
	byITN, err := lru.New[string, *domain.Company](size)
	if err != nil {
		return nil, err
	}
	byPSRN, err := lru.New[string, *domain.Company](size)
	if err != nil {
		return nil, err
	}
	return &CachingRepository{inner: inner, byITN: byITN, byPSRN: byPSRN}, nil
}

func (r *CachingRepository) GetCompanyByITN(ctx context.Context, itn string) (*domain.Company, error) {
	if company, ok := r.byITN.Get(itn); ok {
		return company, nil
	}
	company, err := r.inner.GetCompanyByITN(ctx, itn)
	if err != nil {
		return nil, err
	}
	r.byITN.Add(itn, company)
	return company, nil
}

func (r *CachingRepository) GetCompanyByPSRN(ctx context.Context, psrn string) (*domain.Company, error) {
	if company, ok := r.byPSRN.Get(psrn); ok {
		return company, nil
	}
	company, err := r.inner.GetCompanyByPSRN(ctx, psrn)
	if err != nil {
		return nil, err
	}
	r.byPSRN.Add(psrn, company)
	return company, nil
}

func (r *CachingRepository) SearchCompaniesByName(ctx context.Context, name string, limit int) ([]*domain.Company, error) {
	return r.inner.SearchCompaniesByName(ctx, name, limit)
}

func (r *CachingRepository) SelectCompanies(ctx context.Context, sel domain.CompanySelection) ([]*domain.Company, error) {
	return r.inner.SelectCompanies(ctx, sel)
}

func (r *CachingRepository) ListRegions(ctx context.Context) ([]*domain.Region, error) {
	return r.inner.ListRegions(ctx)
}
