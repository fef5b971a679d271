package postgres

import (
	"context"
	"errors"
	"fmt"

	"countrygdp/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CountryRepository struct {
	pool *pgxpool.Pool
}

const upsertSQL = `
    insert into countries (name, capital, region, currency_code, population, exchange_rate, estimated_gdp, flag_url, refreshed_at)
    values ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    on conflict ((lower(name))) do update set
        name = excluded.name,
        capital = excluded.capital,
        region = excluded.region,
        currency_code = excluded.currency_code,
        population = excluded.population,
        exchange_rate = excluded.exchange_rate,
        estimated_gdp = excluded.estimated_gdp,
        flag_url = excluded.flag_url,
        refreshed_at = excluded.refreshed_at;
`

// ReplaceAll upserts the whole record set in a single transaction. Either
// every record commits or none do.
func (r *CountryRepository) ReplaceAll(ctx context.Context, records []domain.Country) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	batch := &pgx.Batch{}
	for _, c := range records {
		batch.Queue(upsertSQL,
			c.Name, c.Capital, c.Region, c.CurrencyCode,
			c.Population, c.ExchangeRate, c.EstimatedGDP, c.FlagURL, c.RefreshedAt,
		)
	}
	if err = tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to upsert %d countries: %w", len(records), err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

const selectColumns = `id, name, capital, region, currency_code, population, exchange_rate, estimated_gdp, flag_url, refreshed_at`

func (r *CountryRepository) List(ctx context.Context, query domain.ListQuery) ([]domain.Country, error) {
	q := `select ` + selectColumns + ` from countries`

	var (
		conds []string
		args  []any
	)
	if query.Region != "" {
		args = append(args, query.Region)
		conds = append(conds, fmt.Sprintf("lower(region) = lower($%d)", len(args)))
	}
	if query.Currency != "" {
		args = append(args, query.Currency)
		conds = append(conds, fmt.Sprintf("lower(currency_code) = lower($%d)", len(args)))
	}
	for i, cond := range conds {
		if i == 0 {
			q += " where " + cond
		} else {
			q += " and " + cond
		}
	}

	switch query.Sort {
	case domain.SortGDPDesc:
		q += " order by estimated_gdp desc"
	case domain.SortGDPAsc:
		q += " order by estimated_gdp asc"
	case domain.SortPopulationDesc:
		q += " order by population desc"
	default: // SortNameAsc and unset
		q += " order by lower(name) asc"
	}

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query countries: %w", err)
	}
	defer rows.Close()

	countries := make([]domain.Country, 0, 256)
	for rows.Next() {
		c, scanErr := scanCountry(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		countries = append(countries, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating countries: %w", err)
	}
	return countries, nil
}

func (r *CountryRepository) GetByName(ctx context.Context, name string) (domain.Country, error) {
	q := `select ` + selectColumns + ` from countries where lower(name) = lower($1)`

	row := r.pool.QueryRow(ctx, q, name)
	c, err := scanCountry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Country{}, domain.ErrCountryNotFound
		}
		return domain.Country{}, fmt.Errorf("failed to select country %q: %w", name, err)
	}
	return c, nil
}

func (r *CountryRepository) Delete(ctx context.Context, name string) error {
	tag, err := r.pool.Exec(ctx, `delete from countries where lower(name) = lower($1)`, name)
	if err != nil {
		return fmt.Errorf("failed to delete country %q: %w", name, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCountryNotFound
	}
	return nil
}

func (r *CountryRepository) Status(ctx context.Context) (domain.Status, error) {
	var st domain.Status
	err := r.pool.QueryRow(ctx, `select count(*), max(refreshed_at) from countries`).
		Scan(&st.TotalCountries, &st.LastRefreshedAt)
	if err != nil {
		return domain.Status{}, fmt.Errorf("failed to select status: %w", err)
	}
	return st, nil
}

func scanCountry(row pgx.Row) (domain.Country, error) {
	var c domain.Country
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Capital,
		&c.Region,
		&c.CurrencyCode,
		&c.Population,
		&c.ExchangeRate,
		&c.EstimatedGDP,
		&c.FlagURL,
		&c.RefreshedAt,
	)
	return c, err
}

func NewCountryRepository(pool *pgxpool.Pool) *CountryRepository {
	return &CountryRepository{pool: pool}
}
