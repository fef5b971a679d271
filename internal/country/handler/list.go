package handler

import (
	"net/http"
	"time"

	"countrygdp/internal/country"
	"countrygdp/internal/domain"

	"github.com/sirupsen/logrus"
)

type CountryResponse struct {
	ID              int64     `json:"id" example:"1"`
	Name            string    `json:"name" example:"Nigeria"`
	Capital         string    `json:"capital" example:"Abuja"`
	Region          string    `json:"region" example:"Africa"`
	CurrencyCode    string    `json:"currency_code" example:"NGN"`
	Population      int64     `json:"population" example:"206139589"`
	ExchangeRate    float64   `json:"exchange_rate" example:"1600.23"`
	EstimatedGDP    float64   `json:"estimated_gdp" example:"193256432.1"`
	FlagURL         string    `json:"flag_url" example:"https://flagcdn.com/ng.svg"`
	LastRefreshedAt time.Time `json:"last_refreshed_at" example:"2025-01-02T15:04:05Z"`
}

func toCountryResponse(c domain.Country) CountryResponse {
	return CountryResponse{
		ID:              c.ID,
		Name:            c.Name,
		Capital:         c.Capital,
		Region:          c.Region,
		CurrencyCode:    c.CurrencyCode,
		Population:      c.Population,
		ExchangeRate:    c.ExchangeRate,
		EstimatedGDP:    c.EstimatedGDP,
		FlagURL:         c.FlagURL,
		LastRefreshedAt: c.RefreshedAt,
	}
}

// List godoc
// @Summary List countries
// @Description List stored countries with optional case-insensitive region/currency filters and sorting
// @Tags Countries
// @Produce json
// @Param region query string false "Region filter"
// @Param currency query string false "Currency code filter"
// @Param sort query string false "Sort order" Enums(gdp_desc, gdp_asc, name_asc, population_desc)
// @Success 200 {array} CountryResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /countries [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	query, err := country.ParseListQuery(params.Get("region"), params.Get("currency"), params.Get("sort"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	countries, err := h.service.List(r.Context(), query)
	if err != nil {
		msg := "failed to list countries"
		logrus.WithError(err).WithField("handler", "List").Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	res := make([]CountryResponse, 0, len(countries))
	for _, c := range countries {
		res = append(res, toCountryResponse(c))
	}
	writeJSON(w, http.StatusOK, res)
}
