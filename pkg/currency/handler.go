package currency

import (
	"encoding/json"
	"net/http"
)

type RateDTO struct {
	Currency string `json:"currency"`
	Rate     string `json:"rate"`
	Home     bool   `json:"home,omitempty"`
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// GetRates returns the fixed currency set with exchange rates, for the
// expense form currency selector.
func (h *Handler) GetRates(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	supported := Supported()
	dtos := make([]RateDTO, 0, len(supported))
	for _, c := range supported {
		dtos = append(dtos, RateDTO{
			Currency: string(c),
			Rate:     Rate(c).String(),
			Home:     c == Home,
		})
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
