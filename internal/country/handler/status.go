package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

type StatusResponse struct {
	TotalCountries  int64      `json:"total_countries" example:"250"`
	LastRefreshedAt *time.Time `json:"last_refreshed_at" example:"2025-01-02T15:04:05Z"`
}

// Status godoc
// @Summary Service status
// @Description Total stored countries and the time of the last successful refresh
// @Tags Status
// @Produce json
// @Success 200 {object} StatusResponse
// @Failure 500 {object} errorResponse
// @Router /status [get]
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	st, err := h.service.Status(r.Context())
	if err != nil {
		msg := "failed to get status"
		logrus.WithError(err).WithField("handler", "Status").Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusOK, StatusResponse{
		TotalCountries:  st.TotalCountries,
		LastRefreshedAt: st.LastRefreshedAt,
	})
}
