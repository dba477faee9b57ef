package reservation

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/barbexa/barbexa-api/internal/domain/reservation"
	"github.com/barbexa/barbexa-api/internal/dto"
	"github.com/barbexa/barbexa-api/internal/httperr"
)

type GetReservation struct {
	repo domain.Repository
}

func NewGetReservation(repo domain.Repository) *GetReservation {
	return &GetReservation{repo: repo}
}

func (uc *GetReservation) Execute(
	ctx context.Context,
	reservationID uint,
) (*dto.ReservationDetailDTO, error) {

	res, err := uc.repo.GetReservationByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound(
				"reservation_not_found",
				"Reserva não encontrada.",
			)
		}
		return nil, err
	}

	return dto.ReservationDetailFrom(res), nil
}
