package handler

import (
	"errors"
	"net/http"
	"time"

	"countrygdp/internal/domain"

	"github.com/sirupsen/logrus"
)

type RefreshResponse struct {
	Processed       int       `json:"processed" example:"180"`
	Skipped         int       `json:"skipped" example:"12"`
	LastRefreshedAt time.Time `json:"last_refreshed_at" example:"2025-01-02T15:04:05Z"`
}

// Refresh godoc
// @Summary Refresh country data
// @Description Fetch countries and USD exchange rates from the external APIs, recompute estimated GDP and replace stored records atomically
// @Tags Countries
// @Produce json
// @Success 200 {object} RefreshResponse
// @Failure 503 {object} errorResponse "external data source unavailable, store unchanged"
// @Failure 500 {object} errorResponse
// @Router /countries/refresh [post]
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Refresh(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrGatewayUnavailable) {
			logrus.WithError(err).WithField("handler", "Refresh").Warn("upstream fetch failed, store unchanged")
			writeError(w, http.StatusServiceUnavailable, "external data source unavailable")
			return
		}
		msg := "failed to refresh countries"
		logrus.WithError(err).WithField("handler", "Refresh").Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusOK, RefreshResponse{
		Processed:       summary.Processed,
		Skipped:         summary.Skipped,
		LastRefreshedAt: summary.LastRefreshedAt,
	})
}
