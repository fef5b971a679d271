package country

import (
	"testing"

	"countrygdp/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestParseListQuery_Defaults(t *testing.T) {
	q, err := ParseListQuery("", "", "")
	require.NoError(t, err)
	require.Equal(t, domain.ListQuery{}, q)
}

func TestParseListQuery_TrimsAndLowersSort(t *testing.T) {
	q, err := ParseListQuery(" Africa ", " NGN ", " GDP_DESC ")
	require.NoError(t, err)
	require.Equal(t, "Africa", q.Region)
	require.Equal(t, "NGN", q.Currency)
	require.Equal(t, domain.SortGDPDesc, q.Sort)
}

func TestParseListQuery_SupportedSorts(t *testing.T) {
	for _, sort := range []string{domain.SortGDPDesc, domain.SortGDPAsc, domain.SortNameAsc, domain.SortPopulationDesc} {
		_, err := ParseListQuery("", "", sort)
		require.NoError(t, err)
	}
}

func TestParseListQuery_UnsupportedSort(t *testing.T) {
	_, err := ParseListQuery("", "", "gdp_sideways")
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrInvalidQuery)
	require.Contains(t, err.Error(), "gdp_sideways")
}
