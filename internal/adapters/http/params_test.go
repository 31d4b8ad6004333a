package httpadapter

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"investapi/internal/domain"
)

func fieldsOf(t *testing.T, err error) map[string][]string {
	t.Helper()
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
	return verr.Fields
}

func TestParseSearchParams(t *testing.T) {
	t.Run("name is required", func(t *testing.T) {
		_, err := parseSearchParams(url.Values{})
		fields := fieldsOf(t, err)
		assert.Equal(t, map[string][]string{
			"name": {"Missing data for required field."},
		}, fields)
	})

	t.Run("limit defaults to 5", func(t *testing.T) {
		params, err := parseSearchParams(url.Values{"name": {"gazprom"}})
		require.NoError(t, err)
		assert.Equal(t, "gazprom", params.Name)
		assert.Equal(t, 5, params.Limit)
	})

	t.Run("explicit limit", func(t *testing.T) {
		params, err := parseSearchParams(url.Values{"name": {"x"}, "limit": {"20"}})
		require.NoError(t, err)
		assert.Equal(t, 20, params.Limit)
	})

	t.Run("limit is capped", func(t *testing.T) {
		params, err := parseSearchParams(url.Values{"name": {"x"}, "limit": {"9000"}})
		require.NoError(t, err)
		assert.Equal(t, maxSearchLimit, params.Limit)
	})

	t.Run("non-integer limit", func(t *testing.T) {
		_, err := parseSearchParams(url.Values{"name": {"x"}, "limit": {"ten"}})
		fields := fieldsOf(t, err)
		assert.Equal(t, []string{"Not a valid integer."}, fields["limit"])
	})

	t.Run("non-positive limit", func(t *testing.T) {
		_, err := parseSearchParams(url.Values{"name": {"x"}, "limit": {"0"}})
		fields := fieldsOf(t, err)
		assert.Equal(t, []string{"Must be greater than 0."}, fields["limit"])
	})
}

func validSelectionQuery() url.Values {
	return url.Values{
		"size":                    {"Крупная"},
		"region_codes":            {"77,78"},
		"is_acting":               {"true"},
		"is_liquidating":          {"false"},
		"not_reported_last_year":  {"false"},
		"not_in_sme_registry":     {"false"},
		"ceo_has_other_companies": {"true"},
		"negative_list_risk":      {"false"},
		"bankruptcy_probability":  {"40"},
	}
}

func TestParseSelectionParams(t *testing.T) {
	t.Run("full valid filter", func(t *testing.T) {
		q := validSelectionQuery()
		q.Set("limit", "10")
		q.Set("offset", "30")

		sel, err := parseSelectionParams(q)
		require.NoError(t, err)
		assert.Equal(t, domain.CompanySelection{
			Size:                  "Крупная",
			RegionCodes:           []string{"77", "78"},
			IsActing:              true,
			CEOHasOtherCompanies:  true,
			BankruptcyProbability: 40,
			Limit:                 10,
			Offset:                30,
		}, sel)
	})

	t.Run("defaults for limit and offset", func(t *testing.T) {
		sel, err := parseSelectionParams(validSelectionQuery())
		require.NoError(t, err)
		assert.Equal(t, defaultSelectionLimit, sel.Limit)
		assert.Equal(t, 0, sel.Offset)
	})

	t.Run("all fields missing", func(t *testing.T) {
		_, err := parseSelectionParams(url.Values{})
		fields := fieldsOf(t, err)
		for _, field := range []string{
			"size", "region_codes", "is_acting", "is_liquidating",
			"not_reported_last_year", "not_in_sme_registry",
			"ceo_has_other_companies", "negative_list_risk",
			"bankruptcy_probability",
		} {
			assert.Equal(t, []string{"Missing data for required field."}, fields[field], field)
		}
	})

	t.Run("malformed region code", func(t *testing.T) {
		q := validSelectionQuery()
		q.Set("region_codes", "77,7x")
		_, err := parseSelectionParams(q)
		fields := fieldsOf(t, err)
		assert.Contains(t, fields, "region_codes")
	})

	t.Run("probability out of range", func(t *testing.T) {
		for _, bad := range []string{"-1", "101"} {
			q := validSelectionQuery()
			q.Set("bankruptcy_probability", bad)
			_, err := parseSelectionParams(q)
			fields := fieldsOf(t, err)
			assert.Equal(t, []string{"Must be between 0 and 100."}, fields["bankruptcy_probability"])
		}
	})

	t.Run("bad boolean", func(t *testing.T) {
		q := validSelectionQuery()
		q.Set("is_acting", "yes please")
		_, err := parseSelectionParams(q)
		fields := fieldsOf(t, err)
		assert.Equal(t, []string{"Not a valid boolean."}, fields["is_acting"])
	})

	t.Run("negative offset", func(t *testing.T) {
		q := validSelectionQuery()
		q.Set("offset", "-5")
		_, err := parseSelectionParams(q)
		fields := fieldsOf(t, err)
		assert.Equal(t, []string{"Must be greater than or equal to 0."}, fields["offset"])
	})

	t.Run("selection limit is capped", func(t *testing.T) {
		q := validSelectionQuery()
		q.Set("limit", "100000")
		sel, err := parseSelectionParams(q)
		require.NoError(t, err)
		assert.Equal(t, maxSelectionLimit, sel.Limit)
	})
}
