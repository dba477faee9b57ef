package reservation

import (
	"context"
	"time"

	"github.com/barbexa/barbexa-api/internal/models"
)

type Repository interface {
	// -------- Catálogo / elegibilidade --------
	ListEnabledServices(
		ctx context.Context,
		serviceIDs []uint,
	) ([]models.Service, error)

	ListEnabledCombos(
		ctx context.Context,
		comboIDs []uint,
	) ([]models.Combo, error)

	CountBarberServices(
		ctx context.Context,
		barberID uint,
		serviceIDs []uint,
	) (int64, error)

	// -------- Disponibilidade --------
	HasOverlap(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) (bool, error)

	ListBusyIntervals(
		ctx context.Context,
		barberID uint,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]BusyInterval, error)

	// -------- Escrita (transacional) --------
	CreateReservation(
		ctx context.Context,
		res *models.Reservation,
		serviceIDs []uint,
		comboIDs []uint,
	) error

	UpdateReservationStatus(
		ctx context.Context,
		reservationID uint,
		statusID uint,
	) error

	// -------- Leituras --------
	GetReservationByID(
		ctx context.Context,
		reservationID uint,
	) (*models.Reservation, error)

	ListReservations(
		ctx context.Context,
		filters ListFilters,
	) ([]models.Reservation, error)
}
