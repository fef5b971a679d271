package handler

import (
	"errors"
	"net/http"
	"strings"

	"countrygdp/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

// GetByName godoc
// @Summary Get country by name
// @Description Get one stored country, matched case-insensitively by name
// @Tags Countries
// @Produce json
// @Param name path string true "Country name"
// @Success 200 {object} CountryResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /countries/{name} [get]
func (h *Handler) GetByName(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(chi.URLParam(r, "name"))

	c, err := h.service.GetByName(r.Context(), name)
	if err != nil {
		if errors.Is(err, domain.ErrCountryNotFound) {
			writeError(w, http.StatusNotFound, "country not found")
			return
		}
		msg := "failed to get country"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetByName", "name": name}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusOK, toCountryResponse(c))
}
