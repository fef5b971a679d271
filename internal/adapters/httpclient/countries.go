package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"countrygdp/internal/domain"
)

type CountriesClient struct {
	http    *http.Client
	listURL string
}

type countryEntry struct {
	Name       string          `json:"name"`
	Capital    string          `json:"capital"`
	Region     string          `json:"region"`
	Population int64           `json:"population"`
	Flag       string          `json:"flag"`
	Currencies []currencyEntry `json:"currencies"`
}

type currencyEntry struct {
	Code string `json:"code"`
}

func (c *CountriesClient) GetCountries(ctx context.Context) ([]domain.SourceCountry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.listURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create countries request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute countries request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status code %d from countries api: %s", resp.StatusCode, resp.Status)
	}

	var body []countryEntry
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode countries response: %w", err)
	}

	countries := make([]domain.SourceCountry, 0, len(body))
	for _, e := range body {
		codes := make([]string, 0, len(e.Currencies))
		for _, cur := range e.Currencies {
			if cur.Code != "" {
				codes = append(codes, cur.Code)
			}
		}
		countries = append(countries, domain.SourceCountry{
			Name:       e.Name,
			Capital:    e.Capital,
			Region:     e.Region,
			Population: e.Population,
			FlagURL:    e.Flag,
			Currencies: codes,
		})
	}
	return countries, nil
}

func NewCountriesClient(httpClient *http.Client, listURL string) *CountriesClient {
	return &CountriesClient{http: httpClient, listURL: listURL}
}
