package handler

import (
	"errors"
	"net/http"

	"countrygdp/internal/domain"

	"github.com/sirupsen/logrus"
)

// Image godoc
// @Summary Summary image
// @Description Serve the cached summary PNG, rendering it on demand when missing but data exists
// @Tags Status
// @Produce png
// @Success 200 {file} binary
// @Failure 404 {object} errorResponse "image was never generated"
// @Failure 500 {object} errorResponse
// @Router /countries/image [get]
func (h *Handler) Image(w http.ResponseWriter, r *http.Request) {
	path, err := h.service.SummaryImage(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrImageNotFound) {
			writeError(w, http.StatusNotFound, "summary image not found")
			return
		}
		msg := "failed to serve summary image"
		logrus.WithError(err).WithField("handler", "Image").Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	http.ServeFile(w, r, path)
}
