package reservation

import (
	"context"

	domain "github.com/barbexa/barbexa-api/internal/domain/reservation"
	"github.com/barbexa/barbexa-api/internal/dto"
)

const defaultListLimit = 200

type ListReservations struct {
	repo domain.Repository
}

func NewListReservations(repo domain.Repository) *ListReservations {
	return &ListReservations{repo: repo}
}

func (uc *ListReservations) Execute(
	ctx context.Context,
	filters domain.ListFilters,
) ([]dto.ReservationListDTO, error) {

	if filters.Limit <= 0 {
		filters.Limit = defaultListLimit
	}

	reservations, err := uc.repo.ListReservations(ctx, filters)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.ReservationListDTO, 0, len(reservations))
	for _, res := range reservations {
		rows = append(rows, dto.ReservationListFrom(res))
	}

	return rows, nil
}
