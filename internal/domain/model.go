package domain

import "encoding/json"

// Company is one row of the companies table. The JSON field set is the
// service's wire format: every key is always present, nullable columns
// marshal as null.
type Company struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Size string `json:"size"`

	RegisteredAt Date    `json:"registered_at"`
	ITN          string  `json:"itn"`
	PSRN         string  `json:"psrn"`
	RegionCode   string  `json:"region_code"`
	RegionName   string  `json:"region_name"`
	ActivityCode *string `json:"activity_code"`
	ActivityName *string `json:"activity_name"`

	CharterCapital *int64 `json:"charter_capital"`
	IsActing       bool   `json:"is_acting"`

	// Risk flags. Unknown values stay null rather than defaulting.
	IsLiquidating        *bool `json:"is_liquidating"`
	NotReportedLastYear  *bool `json:"not_reported_last_year"`
	NotInSMERegistry     *bool `json:"not_in_sme_registry"`
	CEOHasOtherCompanies *bool `json:"ceo_has_other_companies"`
	NegativeListRisk     *bool `json:"negative_list_risk"`

	// Bankruptcy forecast.
	BankruptcyProbability int             `json:"bankruptcy_probability"`
	BankruptcyVars        json.RawMessage `json:"bankruptcy_vars"`

	// Finance forecast.
	IsEnoughFinanceData *bool           `json:"is_enough_finance_data"`
	RelativeSuccess     *int            `json:"relative_success"`
	RevenueForecast     *int64          `json:"revenue_forecast"`
	AssetsForecast      *int64          `json:"assets_forecast"`
	DevStage            *string         `json:"dev_stage"`
	DevStageCoordinates json.RawMessage `json:"dev_stage_coordinates"`
}

// Region is a distinct (code, name) pair from the companies table.
type Region struct {
	Code string `json:"region_code"`
	Name string `json:"region_name"`
}

// CompanySelection is a request-scoped filter specification for the
// selection endpoint. Built from validated query parameters, used for a
// single query, then discarded.
type CompanySelection struct {
	Size                  string
	RegionCodes           []string
	IsActing              bool
	IsLiquidating         bool
	NotReportedLastYear   bool
	NotInSMERegistry      bool
	CEOHasOtherCompanies  bool
	NegativeListRisk      bool
	BankruptcyProbability int
	Limit                 int
	Offset                int
}
