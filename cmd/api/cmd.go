package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/petroshift/station-backend/internal/bootstrap"
	"github.com/petroshift/station-backend/internal/config"
	"github.com/petroshift/station-backend/internal/handlers"
	"github.com/petroshift/station-backend/internal/middleware"
	"github.com/petroshift/station-backend/internal/response"
	"github.com/petroshift/station-backend/internal/router"
	"github.com/petroshift/station-backend/internal/services"
	"github.com/petroshift/station-backend/internal/store"
	"github.com/petroshift/station-backend/pkg/logger"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg := config.Load()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	appCtx := logger.ToContext(context.Background(), bs.Log)

	// stores
	tstore := store.NewTransactionStore(bs.Firestore)
	ostore := store.NewOwnerStore(bs.Firestore)
	astore := store.NewAttendantStore(bs.Firestore)
	sstore := store.NewSettingsStore(bs.Firestore)
	rstore := store.NewReadingsStore(bs.Firestore)

	// live feed mirrors the ledger and readings for read paths
	feed := services.NewFeedService(tstore, astore, rstore)
	err = feed.Start(appCtx)
	exitOnError("feed start failed", err, bs.Log)

	// services
	setserv := services.NewSettingsService(sstore)
	oserv := services.NewOwnerService(ostore)
	aserv := services.NewAttendantService(astore)
	txserv := services.NewTransactionService(tstore, astore, ostore, setserv)
	sumserv := services.NewSummaryService(feed, astore, setserv)
	rdserv := services.NewReadingsService(feed, feed, setserv)
	seedserv := services.NewSeedService(ostore, astore)
	shserv := services.NewShiftService(tstore, rstore, ostore, astore, seedserv)

	if cfg.SeedOnStart {
		exitOnError("seeding failed", seedserv.Seed(appCtx), bs.Log)
	}

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.SummarySvc = sumserv
	deps.TransactionSvc = txserv
	deps.OwnerSvc = oserv
	deps.AttendantSvc = aserv
	deps.SettingsSvc = setserv
	deps.ReadingsSvc = rdserv
	deps.ShiftSvc = shserv
	deps.Passcode = middleware.NewPasscodeMiddleware(cfg.AdminPasscode).Require

	// router
	r := router.NewRouter(deps)
	err = http.ListenAndServe(":"+cfg.Port, r)
	exitOnError("server start failed", err, bs.Log)
}
