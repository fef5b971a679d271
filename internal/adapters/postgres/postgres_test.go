package postgres_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"countrygdp/internal/adapters/postgres"
	"countrygdp/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
	tcpg "github.com/testcontainers/testcontainers-go/modules/postgres"
)

const migrationsDir = "../../platform/db/migrations"

var (
	pgSetupOnce sync.Once

	pgContainer *tcpg.PostgresContainer
	pgConnStr   string
)

func TestMain(m *testing.M) {
	code := m.Run()
	if pgContainer != nil {
		_ = pgContainer.Terminate(context.Background())
	}
	os.Exit(code)
}

func setupPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()

	pgSetupOnce.Do(func() {
		startPostgres(t)
	})

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, pgConnStr)
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })

	_, err = pool.Exec(ctx, `truncate table countries restart identity`)
	require.NoError(t, err)

	return pool
}

func startPostgres(t *testing.T) {
	ctx := context.Background()
	pg, err := tcpg.Run(ctx,
		"postgres:16-alpine",
		tcpg.WithDatabase("postgres"),
		tcpg.WithUsername("postgres"),
		tcpg.WithPassword("postgres"),
	)
	require.NoError(t, err)

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := goose.OpenDBWithDriver("pgx", dsn)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	require.Eventually(t, func() bool {
		pingCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		return db.PingContext(pingCtx) == nil
	}, 15*time.Second, 500*time.Millisecond)

	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.UpContext(ctx, db, migrationsDir))

	pgContainer = pg
	pgConnStr = dsn
}

func testCountry(name string, mutate func(*domain.Country)) domain.Country {
	c := domain.Country{
		Name:         name,
		Capital:      "Capital of " + name,
		Region:       "Africa",
		CurrencyCode: "NGN",
		Population:   1000000,
		ExchangeRate: 1600.0,
		EstimatedGDP: 937500000.0,
		FlagURL:      "https://flagcdn.com/x.svg",
		RefreshedAt:  time.Date(2025, 1, 2, 15, 4, 5, 0, time.UTC),
	}
	if mutate != nil {
		mutate(&c)
	}
	return c
}

// ---------- ReplaceAll ----------

func TestCountryRepository_ReplaceAll_InsertsRecords(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewCountryRepository(pool)
	ctx := context.Background()

	err := repo.ReplaceAll(ctx, []domain.Country{
		testCountry("Nigeria", nil),
		testCountry("Ghana", func(c *domain.Country) { c.CurrencyCode = "GHS" }),
	})
	require.NoError(t, err)

	st, err := repo.Status(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), st.TotalCountries)
}

func TestCountryRepository_ReplaceAll_UpsertIsCaseInsensitive(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewCountryRepository(pool)
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, []domain.Country{testCountry("Nigeria", nil)}))

	updated := testCountry("NIGERIA", func(c *domain.Country) {
		c.ExchangeRate = 1700.0
		c.RefreshedAt = time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC)
	})
	require.NoError(t, repo.ReplaceAll(ctx, []domain.Country{updated}))

	st, err := repo.Status(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), st.TotalCountries, "refresh must overwrite, not duplicate")

	c, err := repo.GetByName(ctx, "nigeria")
	require.NoError(t, err)
	require.Equal(t, "NIGERIA", c.Name)
	require.InDelta(t, 1700.0, c.ExchangeRate, 1e-9)
}

func TestCountryRepository_ReplaceAll_FailureRollsBackEverything(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewCountryRepository(pool)
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, []domain.Country{testCountry("France", nil)}))

	// The last record violates the population check constraint, aborting
	// the whole transaction.
	err := repo.ReplaceAll(ctx, []domain.Country{
		testCountry("Germany", nil),
		testCountry("Spain", nil),
		testCountry("Brokenland", func(c *domain.Country) { c.Population = 0 }),
	})
	require.Error(t, err)

	st, err := repo.Status(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), st.TotalCountries, "failed refresh must leave the store untouched")

	_, err = repo.GetByName(ctx, "Germany")
	require.ErrorIs(t, err, domain.ErrCountryNotFound)
}

func TestCountryRepository_ReplaceAll_EmptySetIsNoop(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewCountryRepository(pool)

	require.NoError(t, repo.ReplaceAll(context.Background(), nil))
}

// ---------- GetByName ----------

func TestCountryRepository_GetByName_CaseInsensitive(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewCountryRepository(pool)
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, []domain.Country{testCountry("Nigeria", nil)}))

	lower, err := repo.GetByName(ctx, "nigeria")
	require.NoError(t, err)
	upper, err := repo.GetByName(ctx, "Nigeria")
	require.NoError(t, err)
	require.Equal(t, lower, upper)
}

func TestCountryRepository_GetByName_NotFound(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewCountryRepository(pool)

	_, err := repo.GetByName(context.Background(), "Atlantis")
	require.ErrorIs(t, err, domain.ErrCountryNotFound)
}

// ---------- Delete ----------

func TestCountryRepository_Delete_TwiceSecondIsNotFound(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewCountryRepository(pool)
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, []domain.Country{
		testCountry("Nigeria", nil),
		testCountry("Ghana", func(c *domain.Country) { c.CurrencyCode = "GHS" }),
	}))

	require.NoError(t, repo.Delete(ctx, "NIGERIA"))
	require.ErrorIs(t, repo.Delete(ctx, "Nigeria"), domain.ErrCountryNotFound)

	st, err := repo.Status(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), st.TotalCountries, "delete removes exactly one row")
}

// ---------- List ----------

func seedListFixture(t *testing.T, repo *postgres.CountryRepository) {
	t.Helper()
	err := repo.ReplaceAll(context.Background(), []domain.Country{
		testCountry("Nigeria", func(c *domain.Country) { c.EstimatedGDP = 300; c.Population = 206139589 }),
		testCountry("Ghana", func(c *domain.Country) { c.CurrencyCode = "GHS"; c.EstimatedGDP = 100; c.Population = 31000000 }),
		testCountry("France", func(c *domain.Country) {
			c.Region = "Europe"
			c.CurrencyCode = "EUR"
			c.EstimatedGDP = 200
			c.Population = 67000000
		}),
	})
	require.NoError(t, err)
}

func TestCountryRepository_List_RegionFilterCaseInsensitive(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewCountryRepository(pool)
	seedListFixture(t, repo)

	countries, err := repo.List(context.Background(), domain.ListQuery{Region: "africa"})
	require.NoError(t, err)
	require.Len(t, countries, 2)
	for _, c := range countries {
		require.Equal(t, "Africa", c.Region)
	}
}

func TestCountryRepository_List_CurrencyFilter(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewCountryRepository(pool)
	seedListFixture(t, repo)

	countries, err := repo.List(context.Background(), domain.ListQuery{Currency: "eur"})
	require.NoError(t, err)
	require.Len(t, countries, 1)
	require.Equal(t, "France", countries[0].Name)
}

func TestCountryRepository_List_SortGDPDescIsNonIncreasing(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewCountryRepository(pool)
	seedListFixture(t, repo)

	countries, err := repo.List(context.Background(), domain.ListQuery{Sort: domain.SortGDPDesc})
	require.NoError(t, err)
	require.Len(t, countries, 3)
	for i := 1; i < len(countries); i++ {
		require.GreaterOrEqual(t, countries[i-1].EstimatedGDP, countries[i].EstimatedGDP)
	}
}

func TestCountryRepository_List_SortPopulationDesc(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewCountryRepository(pool)
	seedListFixture(t, repo)

	countries, err := repo.List(context.Background(), domain.ListQuery{Sort: domain.SortPopulationDesc})
	require.NoError(t, err)
	require.Len(t, countries, 3)
	require.Equal(t, "Nigeria", countries[0].Name)
}

func TestCountryRepository_List_DefaultOrderIsName(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewCountryRepository(pool)
	seedListFixture(t, repo)

	countries, err := repo.List(context.Background(), domain.ListQuery{})
	require.NoError(t, err)
	require.Len(t, countries, 3)
	require.Equal(t, "France", countries[0].Name)
	require.Equal(t, "Ghana", countries[1].Name)
	require.Equal(t, "Nigeria", countries[2].Name)
}

// ---------- Status ----------

func TestCountryRepository_Status_Empty(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewCountryRepository(pool)

	st, err := repo.Status(context.Background())
	require.NoError(t, err)
	require.Zero(t, st.TotalCountries)
	require.Nil(t, st.LastRefreshedAt)
}

func TestCountryRepository_Status_TotalMatchesUnfilteredList(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewCountryRepository(pool)
	seedListFixture(t, repo)
	ctx := context.Background()

	st, err := repo.Status(ctx)
	require.NoError(t, err)

	countries, err := repo.List(ctx, domain.ListQuery{})
	require.NoError(t, err)
	require.Equal(t, int64(len(countries)), st.TotalCountries)
	require.NotNil(t, st.LastRefreshedAt)
}
