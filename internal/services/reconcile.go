package services

import (
	"math"
	"strconv"
	"strings"

	"github.com/petroshift/station-backend/internal/dto"
	"github.com/petroshift/station-backend/internal/models"
)

// reconcileEpsilon is the display threshold below which a difference counts
// as reconciled. UI-equivalence tests depend on this exact value.
const reconcileEpsilon = 0.01

// Reconcile derives sold volumes from the day's two meter readings per fuel
// type, prices them with the configured rates, and compares the result
// against the revenue actually recorded. The caller scopes todaysTxs to one
// attendant and one day; Reconcile itself only drops non-Sale records.
//
// A meter delta that comes out negative (rollover, entry error, meter
// replacement) clamps to zero sold volume so the numbers stay usable, and
// the anomaly is surfaced in Warnings instead of being silently hidden.
func Reconcile(readings models.DailyReadings, settings models.Settings, todaysTxs []models.Transaction) dto.Reconciliation {
	p2 := parseReading(readings.Petrol2PM)
	p10 := parseReading(readings.Petrol10PM)
	d2 := parseReading(readings.Diesel2PM)
	d10 := parseReading(readings.Diesel10PM)

	rec := dto.Reconciliation{}

	if p10 > p2 {
		rec.PetrolSold = p10 - p2
	} else if p10 < p2 {
		rec.Warnings = append(rec.Warnings, "petrol 10 PM reading is below the 2 PM reading")
	}

	if d10 > d2 {
		rec.DieselSold = d10 - d2
	} else if d10 < d2 {
		rec.Warnings = append(rec.Warnings, "diesel 10 PM reading is below the 2 PM reading")
	}

	rec.ExpectedSales = rec.PetrolSold*settings.PetrolRate + rec.DieselSold*settings.DieselRate

	for _, tx := range todaysTxs {
		if tx.Type == models.TransactionSale {
			rec.RecordedSales += tx.FuelAmount
		}
	}

	rec.Difference = rec.RecordedSales - rec.ExpectedSales
	rec.Reconciled = math.Abs(rec.Difference) < reconcileEpsilon
	return rec
}

// parseReading is deliberately lenient: reading fields are free text and an
// unparsable or empty value counts as zero rather than blocking entry.
func parseReading(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
