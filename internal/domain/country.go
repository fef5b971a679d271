package domain

import (
	"time"
)

// Country is a persisted country record with its estimated GDP.
type Country struct {
	ID           int64
	Name         string
	Capital      string
	Region       string
	CurrencyCode string
	Population   int64
	ExchangeRate float64
	EstimatedGDP float64
	FlagURL      string
	RefreshedAt  time.Time
}

// SourceCountry is a raw country entry as returned by the countries API,
// before rates are joined in.
type SourceCountry struct {
	Name       string
	Capital    string
	Region     string
	Population int64
	FlagURL    string
	// Currencies holds the ISO currency codes in API order; the first one
	// is used for the rate lookup.
	Currencies []string
}

type ListQuery struct {
	Region   string
	Currency string
	Sort     string
}

const (
	SortGDPDesc        = "gdp_desc"
	SortGDPAsc         = "gdp_asc"
	SortNameAsc        = "name_asc"
	SortPopulationDesc = "population_desc"
)

// Status is derived on read, never stored.
type Status struct {
	TotalCountries  int64
	LastRefreshedAt *time.Time
}

type RefreshSummary struct {
	Processed       int
	Skipped         int
	LastRefreshedAt time.Time
}
