package app

import (
	"github.com/Minpi-0/traveler-app/internal/config"
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Payer registry
	r.HandleFunc("/api/payer", deps.PayerHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/payer", deps.PayerHandler.Add).Methods("POST")
	r.HandleFunc("/api/payer/{name}", deps.PayerHandler.Rename).Methods("PUT")
	r.HandleFunc("/api/payer/{name}", deps.PayerHandler.Remove).Methods("DELETE")

	// Currencies
	r.HandleFunc("/api/currency/rates", deps.CurrencyHandler.GetRates).Methods("GET")

	// Expense ledger
	r.HandleFunc("/api/expense", deps.ExpenseHandler.GetFiltered).Methods("GET")
	r.HandleFunc("/api/expense", deps.ExpenseHandler.Create).Methods("POST")
	r.HandleFunc("/api/expense/{id}", deps.ExpenseHandler.Update).Methods("PUT")
	r.HandleFunc("/api/expense/{id}", deps.ExpenseHandler.Delete).Methods("DELETE")

	// Itinerary
	r.HandleFunc("/api/itinerary", deps.ItineraryHandler.GetDays).Methods("GET")
	r.HandleFunc("/api/itinerary/activity", deps.ItineraryHandler.CreateActivity).Methods("POST")
	r.HandleFunc("/api/itinerary/activity/{id}", deps.ItineraryHandler.UpdateActivity).Methods("PUT")
	r.HandleFunc("/api/itinerary/activity/{id}", deps.ItineraryHandler.DeleteActivity).Methods("DELETE")

	// Geocoding
	r.HandleFunc("/api/geocode", deps.GeocodeHandler.Resolve).Queries("location", "{location}").Methods("GET")

	// Map view
	r.HandleFunc("/api/map/markers", deps.MapViewHandler.GetMarkers).Methods("GET")
	r.HandleFunc("/api/map/refresh", deps.MapViewHandler.Refresh).Methods("POST")

	// Calendar widget
	r.HandleFunc("/api/calendar/month", deps.CalendarHandler.GetMonthGrid).Methods("GET")
}
