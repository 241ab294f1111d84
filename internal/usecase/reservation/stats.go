package reservation

import (
	"context"

	domain "github.com/BruksfildServices01/autoservice-booking/internal/domain/reservation"
	"github.com/BruksfildServices01/autoservice-booking/internal/dto"
)

const statsMonths = 12

type ReservationStats struct {
	repo domain.Repository
}

func NewReservationStats(repo domain.Repository) *ReservationStats {
	return &ReservationStats{repo: repo}
}

func (uc *ReservationStats) Execute(ctx context.Context) (*dto.ReservationStatsResponse, error) {
	total, err := uc.repo.CountReservations(ctx, domain.Filter{})
	if err != nil {
		return nil, err
	}

	byStatus, err := uc.repo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	byService, err := uc.repo.CountByService(ctx)
	if err != nil {
		return nil, err
	}

	byMonth, err := uc.repo.CountByMonth(ctx, statsMonths)
	if err != nil {
		return nil, err
	}

	out := &dto.ReservationStatsResponse{
		TotalReservations: total,
		StatusStats:       byStatus,
		ServiceStats:      byService,
		MonthlyStats:      byMonth,
	}
	if out.StatusStats == nil {
		out.StatusStats = []domain.StatusCount{}
	}
	if out.ServiceStats == nil {
		out.ServiceStats = []domain.ServiceCount{}
	}
	if out.MonthlyStats == nil {
		out.MonthlyStats = []domain.MonthCount{}
	}

	return out, nil
}
