package country

import (
	"fmt"
	"strings"

	"countrygdp/internal/domain"
)

var supportedSorts = map[string]struct{}{
	domain.SortGDPDesc:        {},
	domain.SortGDPAsc:         {},
	domain.SortNameAsc:        {},
	domain.SortPopulationDesc: {},
}

// ParseListQuery validates raw query parameters for the list endpoint.
// An unknown sort value wraps domain.ErrInvalidQuery.
func ParseListQuery(region, currency, sort string) (domain.ListQuery, error) {
	sort = strings.ToLower(strings.TrimSpace(sort))
	if sort != "" {
		if _, ok := supportedSorts[sort]; !ok {
			return domain.ListQuery{}, fmt.Errorf("%w: unsupported sort %q", domain.ErrInvalidQuery, sort)
		}
	}
	return domain.ListQuery{
		Region:   strings.TrimSpace(region),
		Currency: strings.TrimSpace(currency),
		Sort:     sort,
	}, nil
}
