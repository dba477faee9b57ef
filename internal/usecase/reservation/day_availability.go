package reservation

import (
	"context"
	"time"

	domain "github.com/barbexa/barbexa-api/internal/domain/reservation"
)

type GetBarberDayAvailability struct {
	repo domain.Repository
}

func NewGetBarberDayAvailability(repo domain.Repository) *GetBarberDayAvailability {
	return &GetBarberDayAvailability{repo: repo}
}

// Execute devolve os intervalos ocupados do barbeiro no dia indicado
// (reservas ativas apenas), para bloqueio de horários no cliente.
func (uc *GetBarberDayAvailability) Execute(
	ctx context.Context,
	barberID uint,
	date time.Time,
) ([]domain.BusyInterval, error) {

	dayStart := time.Date(
		date.Year(), date.Month(), date.Day(),
		0, 0, 0, 0,
		date.Location(),
	)
	dayEnd := dayStart.Add(24 * time.Hour)

	return uc.repo.ListBusyIntervals(ctx, barberID, dayStart, dayEnd)
}
