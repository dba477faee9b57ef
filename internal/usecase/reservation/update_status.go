package reservation

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/barbexa/barbexa-api/internal/audit"
	domain "github.com/barbexa/barbexa-api/internal/domain/reservation"
	"github.com/barbexa/barbexa-api/internal/dto"
	"github.com/barbexa/barbexa-api/internal/httperr"
)

type UpdateReservationStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateReservationStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateReservationStatus {
	return &UpdateReservationStatus{
		repo:  repo,
		audit: audit,
	}
}

// Execute sobrescreve o status da reserva. A transição é livre (não
// há máquina de estados), mas o status precisa existir na tabela.
func (uc *UpdateReservationStatus) Execute(
	ctx context.Context,
	identity domain.Identity,
	reservationID uint,
	statusID uint,
) (*dto.ReservationDetailDTO, error) {

	if !domain.IsValidStatus(statusID) {
		return nil, httperr.ErrInvalid(
			"invalid_status",
			"Status de reserva desconhecido.",
		)
	}

	if err := uc.repo.UpdateReservationStatus(ctx, reservationID, statusID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound(
				"reservation_not_found",
				"Reserva não encontrada.",
			)
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &identity.UserID,
		Action:   "reservation_status_updated",
		Entity:   "reservation",
		EntityID: &reservationID,
		Metadata: map[string]any{"status_id": statusID},
	})

	res, err := uc.repo.GetReservationByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	return dto.ReservationDetailFrom(res), nil
}
