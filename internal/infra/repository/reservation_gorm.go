package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/barbexa/barbexa-api/internal/domain/reservation"
	"github.com/barbexa/barbexa-api/internal/httperr"
	"github.com/barbexa/barbexa-api/internal/models"
)

type ReservationGormRepository struct {
	db *gorm.DB
}

func NewReservationGormRepository(db *gorm.DB) *ReservationGormRepository {
	return &ReservationGormRepository{db: db}
}

// --------------------------------------------------
// Catálogo / elegibilidade
// --------------------------------------------------

func (r *ReservationGormRepository) ListEnabledServices(
	ctx context.Context,
	serviceIDs []uint,
) ([]models.Service, error) {

	if len(serviceIDs) == 0 {
		return []models.Service{}, nil
	}

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("enabled = ? AND id IN ?", true, serviceIDs).
		Find(&services).Error; err != nil {
		return nil, err
	}

	return services, nil
}

func (r *ReservationGormRepository) ListEnabledCombos(
	ctx context.Context,
	comboIDs []uint,
) ([]models.Combo, error) {

	if len(comboIDs) == 0 {
		return []models.Combo{}, nil
	}

	var combos []models.Combo
	if err := r.db.WithContext(ctx).
		Preload("Items.Service").
		Where("enabled = ? AND id IN ?", true, comboIDs).
		Find(&combos).Error; err != nil {
		return nil, err
	}

	return combos, nil
}

func (r *ReservationGormRepository) CountBarberServices(
	ctx context.Context,
	barberID uint,
	serviceIDs []uint,
) (int64, error) {

	if len(serviceIDs) == 0 {
		return 0, nil
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.BarberService{}).
		Where("barber_id = ? AND service_id IN ?", barberID, serviceIDs).
		Distinct("service_id").
		Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

// --------------------------------------------------
// Disponibilidade
// --------------------------------------------------

func (r *ReservationGormRepository) HasOverlap(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where(
			"barber_id = ? AND status_id IN ? AND start_at < ? AND end_at > ?",
			barberID, domain.ActiveStatusIDs(), end, start,
		).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *ReservationGormRepository) ListBusyIntervals(
	ctx context.Context,
	barberID uint,
	dayStart time.Time,
	dayEnd time.Time,
) ([]domain.BusyInterval, error) {

	intervals := []domain.BusyInterval{}
	if err := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Select("start_at", "end_at", "status_id").
		Where(
			"barber_id = ? AND status_id IN ? AND start_at >= ? AND start_at < ?",
			barberID, domain.ActiveStatusIDs(), dayStart, dayEnd,
		).
		Order("start_at ASC").
		Scan(&intervals).Error; err != nil {
		return nil, err
	}

	return intervals, nil
}

// --------------------------------------------------
// Escrita transacional
// --------------------------------------------------

// CreateReservation grava cabeçalho e junções em uma transação única.
// O conflito de horário é re-verificado dentro da transação, com
// SELECT ... FOR UPDATE no Postgres, fechando a janela entre checagem
// e gravação para reservas concorrentes do mesmo barbeiro.
func (r *ReservationGormRepository) CreateReservation(
	ctx context.Context,
	res *models.Reservation,
	serviceIDs []uint,
	comboIDs []uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		conflicts := tx.Model(&models.Reservation{})
		if tx.Dialector.Name() == "postgres" {
			conflicts = conflicts.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var count int64
		if err := conflicts.
			Where(
				"barber_id = ? AND status_id IN ? AND start_at < ? AND end_at > ?",
				res.BarberID, domain.ActiveStatusIDs(), res.EndAt, res.StartAt,
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrConflict(
				"time_conflict",
				"O barbeiro já tem uma reserva nesse intervalo.",
			)
		}

		if err := tx.Omit(clause.Associations).Create(res).Error; err != nil {
			return err
		}

		if len(serviceIDs) > 0 {
			links := make([]models.ReservationService, 0, len(serviceIDs))
			for _, serviceID := range serviceIDs {
				links = append(links, models.ReservationService{
					ReservationID: res.ID,
					ServiceID:     serviceID,
				})
			}
			if err := tx.Omit(clause.Associations).Create(&links).Error; err != nil {
				return err
			}
		}

		if len(comboIDs) > 0 {
			links := make([]models.ReservationCombo, 0, len(comboIDs))
			for _, comboID := range comboIDs {
				links = append(links, models.ReservationCombo{
					ReservationID: res.ID,
					ComboID:       comboID,
				})
			}
			if err := tx.Omit(clause.Associations).Create(&links).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *ReservationGormRepository) UpdateReservationStatus(
	ctx context.Context,
	reservationID uint,
	statusID uint,
) error {

	result := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("id = ?", reservationID).
		Update("status_id", statusID)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// --------------------------------------------------
// Leituras
// --------------------------------------------------

func (r *ReservationGormRepository) GetReservationByID(
	ctx context.Context,
	reservationID uint,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Status").
		Preload("Client").
		Preload("Barber").
		Preload("Services.Service").
		Preload("Combos.Combo.Items.Service").
		First(&res, reservationID).Error; err != nil {
		return nil, err
	}

	return &res, nil
}

func (r *ReservationGormRepository) ListReservations(
	ctx context.Context,
	filters domain.ListFilters,
) ([]models.Reservation, error) {

	limit := filters.Limit
	if limit <= 0 {
		limit = 200
	}

	query := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Preload("Status").
		Preload("Client").
		Preload("Barber")

	if filters.ClientID != 0 {
		query = query.Where("client_id = ?", filters.ClientID)
	}
	if filters.BarberID != 0 {
		query = query.Where("barber_id = ?", filters.BarberID)
	}
	if filters.StatusID != 0 {
		query = query.Where("status_id = ?", filters.StatusID)
	}
	if filters.From != nil {
		query = query.Where("start_at >= ?", *filters.From)
	}
	if filters.To != nil {
		query = query.Where("start_at < ?", *filters.To)
	}

	var reservations []models.Reservation
	if err := query.
		Order("start_at DESC").
		Limit(limit).
		Find(&reservations).Error; err != nil {
		return nil, err
	}

	return reservations, nil
}

// Compile-time check
var _ domain.Repository = (*ReservationGormRepository)(nil)
