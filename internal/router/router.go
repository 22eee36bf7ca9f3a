package router

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/petroshift/station-backend/internal/handlers"
	"github.com/petroshift/station-backend/internal/middleware"
)

func NewRouter(deps *handlers.Deps) chi.Router {
	r := chi.NewRouter()

	lm := middleware.NewLoggerMiddleware(deps.Log)
	r.Use(chimiddleware.RequestID)
	r.Use(lm.LoggerMiddleware)
	r.Use(chimiddleware.Recoverer)

	sh := handlers.NewSummaryHandlers(deps)
	th := handlers.NewTransactionHandlers(deps)
	oh := handlers.NewOwnerHandlers(deps)
	ah := handlers.NewAttendantHandlers(deps)
	seth := handlers.NewSettingsHandlers(deps)
	rh := handlers.NewReadingsHandlers(deps)
	shfh := handlers.NewShiftHandlers(deps)

	r.Mount("/summary", sh.SummaryRoutes())
	r.Mount("/transactions", th.TransactionRoutes())
	r.Mount("/deposits", th.DepositRoutes())
	r.Mount("/owners", oh.OwnerRoutes())
	r.Mount("/attendants", ah.AttendantRoutes())
	r.Mount("/settings", seth.SettingsRoutes())
	r.Mount("/readings", rh.ReadingsRoutes())
	r.Mount("/shift", shfh.ShiftRoutes())

	return r
}
