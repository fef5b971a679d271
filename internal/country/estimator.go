package country

import (
	"math/rand/v2"
	"time"

	"countrygdp/internal/domain"
)

// MultiplierFunc produces the GDP multiplier for one country. The default
// draws uniformly from [1000, 2000].
type MultiplierFunc func() int64

func defaultMultiplier() int64 { return 1000 + rand.Int64N(1001) }

type Estimator struct {
	multiplier MultiplierFunc
}

// Estimate joins countries with USD rates and computes
// estimated_gdp = population * multiplier / rate.
//
// A country is skipped, never failing the batch, when it has no name, no
// currency code, its code is missing from the rate mapping, the rate is not
// positive, or the population is not positive.
func (e *Estimator) Estimate(countries []domain.SourceCountry, rates map[string]float64, now time.Time) (records []domain.Country, skipped int) {
	records = make([]domain.Country, 0, len(countries))
	for _, c := range countries {
		if c.Name == "" || len(c.Currencies) == 0 {
			skipped++
			continue
		}
		code := c.Currencies[0]
		rate, ok := rates[code]
		if !ok || rate <= 0 || c.Population <= 0 {
			skipped++
			continue
		}
		records = append(records, domain.Country{
			Name:         c.Name,
			Capital:      c.Capital,
			Region:       c.Region,
			CurrencyCode: code,
			Population:   c.Population,
			ExchangeRate: rate,
			EstimatedGDP: float64(c.Population) * float64(e.multiplier()) / rate,
			FlagURL:      c.FlagURL,
			RefreshedAt:  now,
		})
	}
	return records, skipped
}

func NewEstimator(multiplier MultiplierFunc) *Estimator {
	if multiplier == nil {
		multiplier = defaultMultiplier
	}
	return &Estimator{multiplier: multiplier}
}
