package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"investapi/internal/domain"
)

type countingRepo struct {
	itnCalls  int
	psrnCalls int
	err       error
}

func (r *countingRepo) GetCompanyByITN(_ context.Context, itn string) (*domain.Company, error) {
	r.itnCalls++
	if r.err != nil {
		return nil, r.err
	}
	return &domain.Company{ITN: itn}, nil
}

func (r *countingRepo) GetCompanyByPSRN(_ context.Context, psrn string) (*domain.Company, error) {
	r.psrnCalls++
	if r.err != nil {
		return nil, r.err
	}
	return &domain.Company{PSRN: psrn}, nil
}

func (r *countingRepo) SearchCompaniesByName(_ context.Context, _ string, _ int) ([]*domain.Company, error) {
	return nil, nil
}

func (r *countingRepo) SelectCompanies(_ context.Context, _ domain.CompanySelection) ([]*domain.Company, error) {
	return nil, nil
}

func (r *countingRepo) ListRegions(_ context.Context) ([]*domain.Region, error) {
	return nil, nil
}

func TestCachingRepositoryMemoizesLookups(t *testing.T) {
	inner := &countingRepo{}
	repo, err := NewCachingRepository(inner, 8)
	require.NoError(t, err)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		company, err := repo.GetCompanyByITN(ctx, "7710561081")
		require.NoError(t, err)
		require.Equal(t, "7710561081", company.ITN)
	}
	require.Equal(t, 1, inner.itnCalls)

	for i := 0; i < 3; i++ {
		_, err := repo.GetCompanyByPSRN(ctx, "1047796788819")
		require.NoError(t, err)
	}
	require.Equal(t, 1, inner.psrnCalls)
}

func TestCachingRepositoryNeverCachesErrors(t *testing.T) {
	inner := &countingRepo{err: domain.ErrCompanyNotFound}
	repo, err := NewCachingRepository(inner, 8)
	require.NoError(t, err)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := repo.GetCompanyByITN(ctx, "8887776655")
		require.ErrorIs(t, err, domain.ErrCompanyNotFound)
	}
	// Every failed lookup hits the store again.
	require.Equal(t, 3, inner.itnCalls)

	// Once the store recovers, the lookup succeeds and is memoized.
	inner.err = nil
	_, err = repo.GetCompanyByITN(ctx, "8887776655")
	require.NoError(t, err)
	_, err = repo.GetCompanyByITN(ctx, "8887776655")
	require.NoError(t, err)
	require.Equal(t, 4, inner.itnCalls)
}

func TestCachingRepositoryIsBounded(t *testing.T) {
	inner := &countingRepo{}
	repo, err := NewCachingRepository(inner, 2)
	require.NoError(t, err)

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		_, err := repo.GetCompanyByITN(ctx, fmt.Sprintf("77105610%02d", i))
		require.NoError(t, err)
	}
	require.Equal(t, 5, inner.itnCalls)

	// The oldest entries were evicted, so re-reading them hits the
	// store again.
	_, err = repo.GetCompanyByITN(ctx, "7710561000")
	require.NoError(t, err)
	require.Equal(t, 6, inner.itnCalls)
}

func TestCachingRepositoryRejectsNonPositiveSize(t *testing.T) {
	_, err := NewCachingRepository(&countingRepo{}, 0)
	require.Error(t, err)
	require.False(t, errors.Is(err, domain.ErrCompanyNotFound))
}
