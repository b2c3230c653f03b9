package itinerary

import (
	"encoding/json"
	"net/http"

	"github.com/Minpi-0/traveler-app/pkg/geocode"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type ActivityDTO struct {
	ID          string          `json:"id,omitempty"`
	Date        string          `json:"date"`
	Time        string          `json:"time"`
	Icon        string          `json:"icon"`
	Description string          `json:"description"`
	Location    string          `json:"location,omitempty"`
	Coordinates *geocode.LatLng `json:"coordinates,omitempty"`
	// MovedFrom carries the origin date when an edit relocates the
	// activity to another day.
	MovedFrom string `json:"movedFrom,omitempty"`
}

type DayDTO struct {
	Date       string        `json:"date"`
	Activities []ActivityDTO `json:"activities"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (h *Handler) GetDays(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	days, err := h.service.Days(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]DayDTO, 0, len(days))
	for _, day := range days {
		dtos = append(dtos, dayToDTO(day))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) CreateActivity(w http.ResponseWriter, r *http.Request) {
	log.Debug("Registering new activity")
	w.Header().Set("Content-Type", "application/json")

	var dto ActivityDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.service.AddOrUpdate(r.Context(), dtoToActivity(dto), false, "")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(activityToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	id := vars["id"]

	var dto ActivityDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if dto.ID == "" || dto.ID != id {
		http.Error(w, "Invalid activity id in request body", http.StatusBadRequest)
		return
	}

	updated, err := h.service.AddOrUpdate(r.Context(), dtoToActivity(dto), true, dto.MovedFrom)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(activityToDTO(updated)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	id := vars["id"]
	date := r.URL.Query().Get("date")

	removed, err := h.service.Remove(r.Context(), id, date)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !removed {
		http.Error(w, "Activity not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func dayToDTO(day Day) DayDTO {
	activities := make([]ActivityDTO, 0, len(day.Activities))
	for _, a := range day.Activities {
		activities = append(activities, activityToDTO(a))
	}
	return DayDTO{Date: day.Date, Activities: activities}
}

func activityToDTO(a Activity) ActivityDTO {
	return ActivityDTO{
		ID:          a.ID,
		Date:        a.Date,
		Time:        a.Time,
		Icon:        string(a.Icon),
		Description: a.Description,
		Location:    a.Location,
		Coordinates: a.Coordinates,
	}
}

func dtoToActivity(dto ActivityDTO) Activity {
	return Activity{
		ID:          dto.ID,
		Date:        dto.Date,
		Time:        dto.Time,
		Icon:        Icon(dto.Icon),
		Description: dto.Description,
		Location:    dto.Location,
		Coordinates: dto.Coordinates,
	}
}
