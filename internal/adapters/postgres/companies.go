package postgres

import (
	"context"
	"errors"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"investapi/internal/domain"
)

const tableCompanies = "companies"

var companyColumns = []string{
	"id", "name", "size", "registered_at", "itn", "psrn",
	"region_code", "region_name", "activity_code", "activity_name",
	"charter_capital", "is_acting", "is_liquidating",
	"not_reported_last_year", "not_in_sme_registry",
	"ceo_has_other_companies", "negative_list_risk",
	"bankruptcy_probability", "bankruptcy_vars",
	"is_enough_finance_data", "relative_success",
	"revenue_forecast", "assets_forecast",
	"dev_stage", "dev_stage_coordinates",
}

func builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

func (db *DB) GetCompanyByITN(ctx context.Context, itn string) (*domain.Company, error) {
	return db.getCompanyBy(ctx, "itn", itn)
}

func (db *DB) GetCompanyByPSRN(ctx context.Context, psrn string) (*domain.Company, error) {
	return db.getCompanyBy(ctx, "psrn", psrn)
}

func (db *DB) getCompanyBy(ctx context.Context, column, value string) (*domain.Company, error) {
	ctx, cancel := db.queryContext(ctx)
	defer cancel()

	// itn and psrn are unique, so LIMIT 1 is a formality.
	query := `SELECT ` + strings.Join(companyColumns, ", ") +
		` FROM companies WHERE ` + column + ` = $1::TEXT LIMIT 1`

	row := db.Pool.QueryRow(ctx, query, value)
	company, err := scanCompany(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrCompanyNotFound
	}
	if err != nil {
		return nil, &domain.QueryError{Op: "get company by " + column, Err: err}
	}
	return company, nil
}

// SearchCompaniesByName orders by pg_trgm distance to the given name,
// nearest first. The ordering is entirely the engine's <-> operator.
func (db *DB) SearchCompaniesByName(ctx context.Context, name string, limit int) ([]*domain.Company, error) {
	ctx, cancel := db.queryContext(ctx)
	defer cancel()

	query := `
		SELECT ` + strings.Join(companyColumns, ", ") + `
		FROM companies
		ORDER BY name <-> $1::TEXT
		LIMIT $2
	`
	rows, err := db.Pool.Query(ctx, query, name, limit)
	if err != nil {
		return nil, &domain.QueryError{Op: "search companies by name", Err: err}
	}
	defer rows.Close()

	return collectCompanies(rows, "search companies by name")
}

func (db *DB) SelectCompanies(ctx context.Context, sel domain.CompanySelection) ([]*domain.Company, error) {
	ctx, cancel := db.queryContext(ctx)
	defer cancel()

	query := builder().Select(companyColumns...).
		From(tableCompanies).
		Where(sq.Eq{"size": sel.Size}).
		Where(sq.Expr("region_code = any(?::TEXT[])", sel.RegionCodes)).
		Where(sq.Eq{
			"is_acting":               sel.IsActing,
			"is_liquidating":          sel.IsLiquidating,
			"not_reported_last_year":  sel.NotReportedLastYear,
			"not_in_sme_registry":     sel.NotInSMERegistry,
			"ceo_has_other_companies": sel.CEOHasOtherCompanies,
			"negative_list_risk":      sel.NegativeListRisk,
		}).
		Where(sq.LtOrEq{"bankruptcy_probability": sel.BankruptcyProbability}).
		OrderBy("bankruptcy_probability").
		Limit(uint64(sel.Limit)).
		Offset(uint64(sel.Offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, &domain.QueryError{Op: "select companies", Err: err}
	}

	rows, err := db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, &domain.QueryError{Op: "select companies", Err: err}
	}
	defer rows.Close()

	return collectCompanies(rows, "select companies")
}

func (db *DB) ListRegions(ctx context.Context) ([]*domain.Region, error) {
	ctx, cancel := db.queryContext(ctx)
	defer cancel()

	rows, err := db.Pool.Query(ctx, `
		SELECT DISTINCT region_code, region_name
		FROM companies
		ORDER BY region_code
	`)
	if err != nil {
		return nil, &domain.QueryError{Op: "list regions", Err: err}
	}
	defer rows.Close()

	regions := make([]*domain.Region, 0)
	for rows.Next() {
		var r domain.Region
		if err := rows.Scan(&r.Code, &r.Name); err != nil {
			return nil, &domain.QueryError{Op: "list regions", Err: err}
		}
		regions = append(regions, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.QueryError{Op: "list regions", Err: err}
	}
	return regions, nil
}

func scanCompany(row pgx.Row) (*domain.Company, error) {
	var c domain.Company
	err := row.Scan(
		&c.ID, &c.Name, &c.Size, &c.RegisteredAt, &c.ITN, &c.PSRN,
		&c.RegionCode, &c.RegionName, &c.ActivityCode, &c.ActivityName,
		&c.CharterCapital, &c.IsActing, &c.IsLiquidating,
		&c.NotReportedLastYear, &c.NotInSMERegistry,
		&c.CEOHasOtherCompanies, &c.NegativeListRisk,
		&c.BankruptcyProbability, &c.BankruptcyVars,
		&c.IsEnoughFinanceData, &c.RelativeSuccess,
		&c.RevenueForecast, &c.AssetsForecast,
		&c.DevStage, &c.DevStageCoordinates,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func collectCompanies(rows pgx.Rows, op string) ([]*domain.Company, error) {
	companies := make([]*domain.Company, 0)
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			return nil, &domain.QueryError{Op: op, Err: err}
		}
		companies = append(companies, company)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.QueryError{Op: op, Err: err}
	}
	return companies, nil
}
