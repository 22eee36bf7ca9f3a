package services

import (
	"github.com/petroshift/station-backend/internal/dto"
	"github.com/petroshift/station-backend/internal/models"
)

// Aggregate folds a transaction snapshot into derived shift metrics. A
// non-empty attendantName scopes the fold to that attendant's records; the
// empty string produces the station-wide summary. Pure function: the result
// depends only on the snapshot and the settings passed in, never on
// ordering.
//
// Cash in hand is a running balance, advance + cash sales − deposits; it
// assumes the advance float resets once per shift. Deposits count toward
// the cash math but not toward the sale count shown on attendant cards.
func Aggregate(txs []models.Transaction, settings models.Settings, attendantName string) dto.Summary {
	sum := dto.Summary{AttendantName: attendantName}

	for _, tx := range txs {
		if attendantName != "" && tx.UserName != attendantName {
			continue
		}

		switch tx.Type {
		case models.TransactionDeposit:
			sum.CashDeposited += tx.FuelAmount

		case models.TransactionSale:
			sum.TransactionCount++

			switch tx.FuelType {
			case models.FuelPetrol:
				sum.PetrolVolume += tx.FuelVolume
			case models.FuelDiesel:
				sum.DieselVolume += tx.FuelVolume
			}

			switch tx.PaymentMode {
			case models.PaymentCash:
				sum.CashFromSales += tx.FuelAmount
			case models.PaymentPaytm:
				sum.PaytmTotal += tx.FuelAmount
			}
		}
	}

	sum.CashInHand = settings.AdvanceCash + sum.CashFromSales - sum.CashDeposited
	return sum
}
