package handlers

import (
	"log/slog"
	"net/http"

	"github.com/petroshift/station-backend/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	SummarySvc      SummaryService
	TransactionSvc  TransactionService
	OwnerSvc        OwnerService
	AttendantSvc    AttendantService
	SettingsSvc     SettingsService
	ReadingsSvc     ReadingsService
	ShiftSvc        ShiftService

	// Passcode guards the destructive shift routes.
	Passcode func(http.Handler) http.Handler
}
