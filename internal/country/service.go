package country

import (
	"context"
	"fmt"
	"os"
	"time"

	"countrygdp/internal/adapters"
	"countrygdp/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const topCountriesInSummary = 5

type Service struct {
	countriesClient adapters.CountriesClient
	ratesClient     adapters.RatesClient
	repo            adapters.CountryRepository
	cache           adapters.CountryCache
	renderer        adapters.SummaryRenderer
	estimator       *Estimator
	now             func() time.Time
}

// Refresh fetches both upstreams, recomputes estimated GDP for every
// eligible country and atomically replaces the stored records. If either
// upstream call fails no write happens at all.
func (s *Service) Refresh(ctx context.Context) (domain.RefreshSummary, error) {
	execID := uuid.NewString()

	countries, err := s.countriesClient.GetCountries(ctx)
	if err != nil {
		return domain.RefreshSummary{}, fmt.Errorf("%w: countries api: %w", domain.ErrGatewayUnavailable, err)
	}
	rates, err := s.ratesClient.GetExchangeRates(ctx)
	if err != nil {
		return domain.RefreshSummary{}, fmt.Errorf("%w: rates api: %w", domain.ErrGatewayUnavailable, err)
	}

	now := s.now().UTC()
	records, skipped := s.estimator.Estimate(countries, rates, now)
	logrus.Infof("Refresh %s: %d countries fetched, %d eligible, %d skipped", execID, len(countries), len(records), skipped)

	if err = s.repo.ReplaceAll(ctx, records); err != nil {
		return domain.RefreshSummary{}, fmt.Errorf("failed to store refreshed countries: %w", err)
	}
	s.cache.Clear()

	// Best effort only. The refresh is committed, a rendering failure must
	// not surface to the caller.
	if renderErr := s.renderSummary(ctx); renderErr != nil {
		logrus.WithError(renderErr).WithField("exec_id", execID).Warn("Summary image rendering failed")
	}

	return domain.RefreshSummary{
		Processed:       len(records),
		Skipped:         skipped,
		LastRefreshedAt: now,
	}, nil
}

func (s *Service) List(ctx context.Context, query domain.ListQuery) ([]domain.Country, error) {
	return s.repo.List(ctx, query)
}

func (s *Service) GetByName(ctx context.Context, name string) (domain.Country, error) {
	if c, ok := s.cache.Get(name); ok {
		return c, nil
	}
	c, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return domain.Country{}, err
	}
	s.cache.Set(c)
	return c, nil
}

func (s *Service) Delete(ctx context.Context, name string) error {
	if err := s.repo.Delete(ctx, name); err != nil {
		return err
	}
	s.cache.Del(name)
	return nil
}

func (s *Service) Status(ctx context.Context) (domain.Status, error) {
	return s.repo.Status(ctx)
}

// SummaryImage returns the path of the cached summary PNG, rendering it on
// demand when the file is missing but the store has records.
func (s *Service) SummaryImage(ctx context.Context) (string, error) {
	path := s.renderer.Path()
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	st, err := s.repo.Status(ctx)
	if err != nil {
		return "", err
	}
	if st.TotalCountries == 0 {
		return "", domain.ErrImageNotFound
	}
	if err = s.renderSummary(ctx); err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrImageNotFound, err)
	}
	return path, nil
}

func (s *Service) renderSummary(ctx context.Context) error {
	st, err := s.repo.Status(ctx)
	if err != nil {
		return err
	}
	top, err := s.repo.List(ctx, domain.ListQuery{Sort: domain.SortGDPDesc})
	if err != nil {
		return err
	}
	if len(top) > topCountriesInSummary {
		top = top[:topCountriesInSummary]
	}
	var lastRefresh time.Time
	if st.LastRefreshedAt != nil {
		lastRefresh = *st.LastRefreshedAt
	}
	return s.renderer.Render(st.TotalCountries, lastRefresh, top)
}

func NewService(
	countriesClient adapters.CountriesClient,
	ratesClient adapters.RatesClient,
	repo adapters.CountryRepository,
	cache adapters.CountryCache,
	renderer adapters.SummaryRenderer,
	estimator *Estimator,
) *Service {
	return &Service{
		countriesClient: countriesClient,
		ratesClient:     ratesClient,
		repo:            repo,
		cache:           cache,
		renderer:        renderer,
		estimator:       estimator,
		now:             time.Now,
	}
}
