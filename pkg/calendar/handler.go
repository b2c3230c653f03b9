package calendar

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Minpi-0/traveler-app/internal/rest"
	"github.com/Minpi-0/traveler-app/internal/utils"
)

type MonthGridDTO struct {
	Year          int    `json:"year"`
	Month         int    `json:"month"`
	LeadingBlanks int    `json:"leadingBlanks"`
	Days          int    `json:"days"`
	WeekStart     string `json:"weekStart"`
}

type Handler struct {
	clock utils.Clock
}

func NewHandler(clock utils.Clock) *Handler {
	return &Handler{clock: clock}
}

// GetMonthGrid returns the month grid for the month containing the given
// date (today when omitted), plus the week start (Sunday) of that date for
// the range selector.
func (h *Handler) GetMonthGrid(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var date time.Time
	if dateString := r.URL.Query().Get("date"); dateString != "" {
		parsed, err := ParseDateKey(dateString)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error:   "Invalid date format",
				Details: "'date' must be in YYYY-MM-DD format",
			})
			return
		}
		date = parsed
	} else {
		date = h.clock.Now()
	}

	grid := MonthGridFor(date)
	dto := MonthGridDTO{
		Year:          grid.Year,
		Month:         int(grid.Month),
		LeadingBlanks: grid.LeadingBlanks,
		Days:          grid.Days,
		WeekStart:     DateKey(StartOfWeek(date)),
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dto); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
