package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

type ExchangeRateClient struct {
	http      *http.Client
	latestURL string
}

type ratesResponse struct {
	Result   string             `json:"result"`
	BaseCode string             `json:"base_code"`
	Rates    map[string]float64 `json:"rates"`
}

func (c *ExchangeRateClient) GetExchangeRates(ctx context.Context) (map[string]float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.latestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create rates request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute rates request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status code %d from rates api: %s", resp.StatusCode, resp.Status)
	}

	var body ratesResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode rates response: %w", err)
	}

	if body.Result != "success" {
		return nil, fmt.Errorf("rates api returned non-success result: %s", body.Result)
	}
	if len(body.Rates) == 0 {
		return nil, fmt.Errorf("rates api returned empty rates payload")
	}

	return body.Rates, nil
}

func NewExchangeRateClient(httpClient *http.Client, latestURL string) *ExchangeRateClient {
	return &ExchangeRateClient{http: httpClient, latestURL: latestURL}
}
