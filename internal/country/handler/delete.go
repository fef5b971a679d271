package handler

import (
	"errors"
	"net/http"
	"strings"

	"countrygdp/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

// Delete godoc
// @Summary Delete country by name
// @Description Remove one stored country, matched case-insensitively by name
// @Tags Countries
// @Param name path string true "Country name"
// @Success 204 "deleted"
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /countries/{name} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(chi.URLParam(r, "name"))

	if err := h.service.Delete(r.Context(), name); err != nil {
		if errors.Is(err, domain.ErrCountryNotFound) {
			writeError(w, http.StatusNotFound, "country not found")
			return
		}
		msg := "failed to delete country"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "Delete", "name": name}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
