package services

import (
	"context"

	"github.com/petroshift/station-backend/internal/dto"
	"github.com/petroshift/station-backend/internal/models"
)

// summaryTransactions delivers the transaction snapshot the summary is
// computed over. Wired to the live feed in production so repeated dashboard
// polls do not hit Firestore.
type summaryTransactions interface {
	List(ctx context.Context) ([]models.Transaction, error)
}

type summaryService struct {
	txs        summaryTransactions
	attendants attendantLister
	settings   settingsProvider
}

func NewSummaryService(txs summaryTransactions, attendants attendantLister, settings settingsProvider) *summaryService {
	return &summaryService{txs: txs, attendants: attendants, settings: settings}
}

// Summary computes the station-wide totals plus one card per attendant, all
// from a single snapshot so the numbers are mutually consistent.
func (s *summaryService) Summary(ctx context.Context) (dto.SummaryResponse, error) {
	settings, err := s.settings.GetOrCreate(ctx)
	if err != nil {
		return dto.SummaryResponse{}, err
	}
	txs, err := s.txs.List(ctx)
	if err != nil {
		return dto.SummaryResponse{}, err
	}
	attendants, err := s.attendants.List(ctx)
	if err != nil {
		return dto.SummaryResponse{}, err
	}

	resp := dto.SummaryResponse{
		Total:      Aggregate(txs, settings, ""),
		Attendants: make([]dto.AttendantSummary, 0, len(attendants)),
	}
	for _, a := range attendants {
		sum := Aggregate(txs, settings, a.Name)
		// The paytm figure appears on the station-wide card only.
		sum.PaytmTotal = 0
		resp.Attendants = append(resp.Attendants, dto.AttendantSummary{
			Summary:   sum,
			AvatarURL: a.AvatarURL,
		})
	}
	return resp, nil
}
