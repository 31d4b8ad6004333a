package httpadapter

import (
	"net/url"
	"strconv"
	"strings"

	"investapi/internal/domain"
)

// Validation message strings are part of the wire contract; clients
// match on them, so the wording is fixed.
const (
	msgMissingField     = "Missing data for required field."
	msgNotAnInteger     = "Not a valid integer."
	msgNotABoolean      = "Not a valid boolean."
	msgNotPositive      = "Must be greater than 0."
	msgNegative         = "Must be greater than or equal to 0."
	msgNotARegionCode   = "Not a valid 2-digit region code."
	msgProbabilityRange = "Must be between 0 and 100."
)

const (
	defaultSearchLimit = 5
	maxSearchLimit     = 100

	defaultSelectionLimit = 100
	maxSelectionLimit     = 1000
)

type fieldErrors map[string][]string

func (fe fieldErrors) add(field, message string) {
	fe[field] = append(fe[field], message)
}

func (fe fieldErrors) err() error {
	if len(fe) == 0 {
		return nil
	}
	return &domain.ValidationError{Fields: fe}
}

// searchParams is the validated form of /companies/query parameters.
type searchParams struct {
	Name  string
	Limit int
}

func parseSearchParams(q url.Values) (searchParams, error) {
	fe := fieldErrors{}
	params := searchParams{Limit: defaultSearchLimit}

	name := q.Get("name")
	if name == "" {
		fe.add("name", msgMissingField)
	}
	params.Name = name

	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			fe.add("limit", msgNotAnInteger)
		case limit < 1:
			fe.add("limit", msgNotPositive)
		default:
			if limit > maxSearchLimit {
				limit = maxSearchLimit
			}
			params.Limit = limit
		}
	}

	return params, fe.err()
}

// parseSelectionParams validates the multi-predicate filter. Either the
// whole filter validates or the request fails with every violation
// listed; nothing is partially applied.
func parseSelectionParams(q url.Values) (domain.CompanySelection, error) {
	fe := fieldErrors{}
	sel := domain.CompanySelection{
		Limit: defaultSelectionLimit,
	}

	sel.Size = q.Get("size")
	if sel.Size == "" {
		fe.add("size", msgMissingField)
	}

	if raw := q.Get("region_codes"); raw == "" {
		fe.add("region_codes", msgMissingField)
	} else {
		codes := strings.Split(raw, ",")
		for _, code := range codes {
			if !isRegionCode(code) {
				fe.add("region_codes", msgNotARegionCode)
				codes = nil
				break
			}
		}
		sel.RegionCodes = codes
	}

	sel.IsActing = parseBoolField(q, fe, "is_acting")
	sel.IsLiquidating = parseBoolField(q, fe, "is_liquidating")
	sel.NotReportedLastYear = parseBoolField(q, fe, "not_reported_last_year")
	sel.NotInSMERegistry = parseBoolField(q, fe, "not_in_sme_registry")
	sel.CEOHasOtherCompanies = parseBoolField(q, fe, "ceo_has_other_companies")
	sel.NegativeListRisk = parseBoolField(q, fe, "negative_list_risk")

	if raw := q.Get("bankruptcy_probability"); raw == "" {
		fe.add("bankruptcy_probability", msgMissingField)
	} else if p, err := strconv.Atoi(raw); err != nil {
		fe.add("bankruptcy_probability", msgNotAnInteger)
	} else if p < 0 || p > 100 {
		fe.add("bankruptcy_probability", msgProbabilityRange)
	} else {
		sel.BankruptcyProbability = p
	}

	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			fe.add("limit", msgNotAnInteger)
		case limit < 1:
			fe.add("limit", msgNotPositive)
		default:
			if limit > maxSelectionLimit {
				limit = maxSelectionLimit
			}
			sel.Limit = limit
		}
	}

	if raw := q.Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			fe.add("offset", msgNotAnInteger)
		case offset < 0:
			fe.add("offset", msgNegative)
		default:
			sel.Offset = offset
		}
	}

	return sel, fe.err()
}

func parseBoolField(q url.Values, fe fieldErrors, field string) bool {
	raw := q.Get(field)
	if raw == "" {
		fe.add(field, msgMissingField)
		return false
	}
	switch strings.ToLower(raw) {
	case "true", "1":
		return true
	case "false", "0":
		return false
	default:
		fe.add(field, msgNotABoolean)
		return false
	}
}

func isRegionCode(code string) bool {
	if len(code) != 2 {
		return false
	}
	return code[0] >= '0' && code[0] <= '9' && code[1] >= '0' && code[1] <= '9'
}
