package adapters

import (
	"context"
	"time"

	"countrygdp/internal/domain"
)

type CountriesClient interface {
	GetCountries(ctx context.Context) ([]domain.SourceCountry, error)
}

type RatesClient interface {
	// GetExchangeRates returns USD-based rates keyed by currency code.
	GetExchangeRates(ctx context.Context) (map[string]float64, error)
}

type CountryRepository interface {
	ReplaceAll(ctx context.Context, records []domain.Country) error
	List(ctx context.Context, query domain.ListQuery) ([]domain.Country, error)
	GetByName(ctx context.Context, name string) (domain.Country, error)
	Delete(ctx context.Context, name string) error
	Status(ctx context.Context) (domain.Status, error)
}

type CountryCache interface {
	Get(name string) (domain.Country, bool)
	Set(country domain.Country)
	Del(name string)
	Clear()
}

type SummaryRenderer interface {
	Render(total int64, lastRefresh time.Time, top []domain.Country) error
	Path() string
}
