package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"countrygdp/internal/domain"
)

// CountryService is what the HTTP layer needs from the country service.
type CountryService interface {
	Refresh(ctx context.Context) (domain.RefreshSummary, error)
	List(ctx context.Context, query domain.ListQuery) ([]domain.Country, error)
	GetByName(ctx context.Context, name string) (domain.Country, error)
	Delete(ctx context.Context, name string) error
	Status(ctx context.Context) (domain.Status, error)
	SummaryImage(ctx context.Context) (string, error)
}

type Handler struct {
	service CountryService
}

func NewCountryHandler(service CountryService) *Handler {
	return &Handler{service: service}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Error: errorMsg,
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}
