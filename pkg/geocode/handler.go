package geocode

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/Minpi-0/traveler-app/internal/rest"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	locationName := strings.TrimSpace(r.URL.Query().Get("location"))
	if locationName == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Missing location parameter",
		})
		return
	}

	coords, err := h.service.Resolve(r.Context(), locationName)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error: "not found",
			})
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(coords); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
