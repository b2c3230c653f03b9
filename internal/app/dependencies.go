package app

import (
	"database/sql"
	"time"

	"github.com/Minpi-0/traveler-app/internal/config"
	"github.com/Minpi-0/traveler-app/internal/event_bus"
	"github.com/Minpi-0/traveler-app/internal/utils"
	"github.com/Minpi-0/traveler-app/pkg/calendar"
	"github.com/Minpi-0/traveler-app/pkg/currency"
	"github.com/Minpi-0/traveler-app/pkg/expense"
	"github.com/Minpi-0/traveler-app/pkg/geocode"
	"github.com/Minpi-0/traveler-app/pkg/itinerary"
	"github.com/Minpi-0/traveler-app/pkg/mapview"
	"github.com/Minpi-0/traveler-app/pkg/payer"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Bus *event_bus.EventBus

	PayerRepo    payer.Repo
	PayerService payer.Service
	PayerHandler *payer.Handler

	CurrencyHandler *currency.Handler

	ExpenseRepo    expense.Repo
	ExpenseService *expense.ServiceImpl
	ExpenseHandler *expense.Handler

	ItineraryRepo    itinerary.Repository
	ItineraryService *itinerary.ServiceImpl
	ItineraryHandler *itinerary.Handler

	GeocodeResolver geocode.Resolver
	GeocodeService  *geocode.ServiceImpl
	GeocodeHandler  *geocode.Handler

	MapViewService *mapview.ServiceImpl
	MapViewHandler *mapview.Handler

	CalendarHandler *calendar.Handler
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *sql.DB, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.Bus = event_bus.NewEventBus()

	deps.PayerRepo = payer.NewRepo(db)
	deps.PayerService = payer.NewService(deps.PayerRepo)
	deps.PayerHandler = payer.NewHandler(deps.PayerService)

	deps.CurrencyHandler = currency.NewHandler()

	deps.ExpenseRepo = expense.NewMemoryRepo()
	deps.ExpenseService = expense.NewService(deps.ExpenseRepo)
	deps.ExpenseHandler = expense.NewHandler(deps.ExpenseService)

	deps.ItineraryRepo = itinerary.NewMemoryRepository()
	deps.ItineraryService = itinerary.NewService(deps.ItineraryRepo, deps.Bus)
	deps.ItineraryHandler = itinerary.NewHandler(deps.ItineraryService)

	deps.GeocodeResolver = geocode.NewStaticResolver(time.Duration(cfg.Geocoder.DelayMs) * time.Millisecond)
	deps.GeocodeService = geocode.NewService(
		deps.GeocodeResolver,
		cfg.Geocoder.MaxAttempts,
		time.Duration(cfg.Geocoder.InitialBackoffMs)*time.Millisecond,
	)
	deps.GeocodeHandler = geocode.NewHandler(deps.GeocodeService)

	deps.MapViewService = mapview.NewService(deps.ItineraryService, deps.GeocodeService, deps.Bus)
	deps.MapViewHandler = mapview.NewHandler(deps.MapViewService)

	deps.CalendarHandler = calendar.NewHandler(&utils.SystemClock{})

	return deps
}
