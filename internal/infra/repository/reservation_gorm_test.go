package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	dbpkg "github.com/barbexa/barbexa-api/internal/db"
	domain "github.com/barbexa/barbexa-api/internal/domain/reservation"
	"github.com/barbexa/barbexa-api/internal/httperr"
	"github.com/barbexa/barbexa-api/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf(
		"file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"),
	)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, dbpkg.Migrate(db))
	require.NoError(t, dbpkg.Seed(db))

	return db
}

func createUser(t *testing.T, db *gorm.DB, username string, roleID uint) models.User {
	t.Helper()

	user := models.User{
		Username:     username,
		Email:        username + "@barbexa.test",
		PasswordHash: "x",
		RoleID:       roleID,
		Enabled:      true,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createService(t *testing.T, db *gorm.DB, name, duration string, enabled bool) models.Service {
	t.Helper()

	service := models.Service{
		Name:     name,
		Price:    10,
		Duration: duration,
		Enabled:  true,
	}
	require.NoError(t, db.Create(&service).Error)

	// soft delete: o default do gorm engoliria o false na criação
	if !enabled {
		require.NoError(t, db.Model(&service).Update("enabled", false).Error)
	}
	return service
}

func grantService(t *testing.T, db *gorm.DB, barberID, serviceID uint) {
	t.Helper()
	require.NoError(t, db.Create(&models.BarberService{
		BarberID:  barberID,
		ServiceID: serviceID,
	}).Error)
}

func newReservation(clientID, barberID, statusID uint, start, end time.Time) *models.Reservation {
	return &models.Reservation{
		ClientID: clientID,
		BarberID: barberID,
		StatusID: statusID,
		StartAt:  start,
		EndAt:    end,
	}
}

func ts(hour, min int) time.Time {
	return time.Date(2024, 1, 10, hour, min, 0, 0, time.UTC)
}

// --------------------------------------------------
// Disponibilidade
// --------------------------------------------------

func TestHasOverlap(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReservationGormRepository(db)
	ctx := context.Background()

	client := createUser(t, db, "client", 3)
	barber := createUser(t, db, "barber", 2)

	require.NoError(t, repo.CreateReservation(
		ctx,
		newReservation(client.ID, barber.ID, 1, ts(9, 0), ts(9, 30)),
		nil, nil,
	))

	overlap, err := repo.HasOverlap(ctx, barber.ID, ts(9, 15), ts(9, 45))
	require.NoError(t, err)
	assert.True(t, overlap)

	// encostar no fim não conflita
	overlap, err = repo.HasOverlap(ctx, barber.ID, ts(9, 30), ts(10, 0))
	require.NoError(t, err)
	assert.False(t, overlap)

	// outro barbeiro não conflita
	overlap, err = repo.HasOverlap(ctx, barber.ID+99, ts(9, 15), ts(9, 45))
	require.NoError(t, err)
	assert.False(t, overlap)
}

func TestHasOverlap_IgnoresInactiveStatuses(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReservationGormRepository(db)
	ctx := context.Background()

	client := createUser(t, db, "client", 3)
	barber := createUser(t, db, "barber", 2)

	res := newReservation(client.ID, barber.ID, 1, ts(9, 0), ts(9, 30))
	require.NoError(t, repo.CreateReservation(ctx, res, nil, nil))
	require.NoError(t, repo.UpdateReservationStatus(ctx, res.ID, 5))

	overlap, err := repo.HasOverlap(ctx, barber.ID, ts(9, 0), ts(9, 30))
	require.NoError(t, err)
	assert.False(t, overlap, "reserva cancelada não deve bloquear horário")
}

// --------------------------------------------------
// Escrita transacional
// --------------------------------------------------

func TestCreateReservation_WritesHeaderAndJunctions(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReservationGormRepository(db)
	ctx := context.Background()

	client := createUser(t, db, "client", 3)
	barber := createUser(t, db, "barber", 2)
	corte := createService(t, db, "Corte", "00:30:00", true)
	barba := createService(t, db, "Barba", "00:15:00", true)

	combo := models.Combo{Name: "Corte + Barba", Enabled: true}
	require.NoError(t, db.Create(&combo).Error)
	require.NoError(t, db.Create(&[]models.ComboItem{
		{ComboID: combo.ID, ServiceID: corte.ID, Quantity: 1},
		{ComboID: combo.ID, ServiceID: barba.ID, Quantity: 1},
	}).Error)

	res := newReservation(client.ID, barber.ID, 1, ts(9, 0), ts(10, 0))
	require.NoError(t, repo.CreateReservation(
		ctx, res,
		[]uint{corte.ID, barba.ID},
		[]uint{combo.ID},
	))
	require.NotZero(t, res.ID)

	created, err := repo.GetReservationByID(ctx, res.ID)
	require.NoError(t, err)

	assert.Equal(t, "PENDING", created.Status.Name)
	assert.Equal(t, "client", created.Client.Username)
	assert.Equal(t, "barber", created.Barber.Username)
	require.Len(t, created.Services, 2)
	require.Len(t, created.Combos, 1)
	assert.Equal(t, "Corte + Barba", created.Combos[0].Combo.Name)
	require.Len(t, created.Combos[0].Combo.Items, 2)
}

func TestCreateReservation_ConflictRollsBackEverything(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReservationGormRepository(db)
	ctx := context.Background()

	client := createUser(t, db, "client", 3)
	barber := createUser(t, db, "barber", 2)
	corte := createService(t, db, "Corte", "00:30:00", true)

	require.NoError(t, repo.CreateReservation(
		ctx,
		newReservation(client.ID, barber.ID, 1, ts(9, 0), ts(9, 30)),
		[]uint{corte.ID},
		nil,
	))

	err := repo.CreateReservation(
		ctx,
		newReservation(client.ID, barber.ID, 1, ts(9, 15), ts(9, 45)),
		[]uint{corte.ID},
		nil,
	)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "time_conflict"))

	var headers, links int64
	db.Model(&models.Reservation{}).Count(&headers)
	db.Model(&models.ReservationService{}).Count(&links)
	assert.EqualValues(t, 1, headers, "reserva parcial não pode ficar visível")
	assert.EqualValues(t, 1, links)
}

// --------------------------------------------------
// Leituras
// --------------------------------------------------

func TestUpdateReservationStatus_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReservationGormRepository(db)

	err := repo.UpdateReservationStatus(context.Background(), 9999, 2)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListReservations_FiltersAndOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReservationGormRepository(db)
	ctx := context.Background()

	client := createUser(t, db, "client", 3)
	other := createUser(t, db, "other", 3)
	barber := createUser(t, db, "barber", 2)

	require.NoError(t, repo.CreateReservation(ctx,
		newReservation(client.ID, barber.ID, 1, ts(9, 0), ts(9, 30)), nil, nil))
	require.NoError(t, repo.CreateReservation(ctx,
		newReservation(other.ID, barber.ID, 1, ts(11, 0), ts(11, 30)), nil, nil))
	require.NoError(t, repo.CreateReservation(ctx,
		newReservation(client.ID, barber.ID, 1, ts(14, 0), ts(14, 30)), nil, nil))

	// ordenada por start_at decrescente
	all, err := repo.ListReservations(ctx, domain.ListFilters{Limit: 200})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, ts(14, 0).Unix(), all[0].StartAt.Unix())
	assert.Equal(t, ts(9, 0).Unix(), all[2].StartAt.Unix())

	// filtro por cliente
	mine, err := repo.ListReservations(ctx, domain.ListFilters{ClientID: client.ID})
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	// recorte [from, to)
	from := ts(9, 0)
	to := ts(14, 0)
	window, err := repo.ListReservations(ctx, domain.ListFilters{From: &from, To: &to})
	require.NoError(t, err)
	assert.Len(t, window, 2)

	// limite
	limited, err := repo.ListReservations(ctx, domain.ListFilters{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestListBusyIntervals_OnlyActiveWithinDay(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReservationGormRepository(db)
	ctx := context.Background()

	client := createUser(t, db, "client", 3)
	barber := createUser(t, db, "barber", 2)

	require.NoError(t, repo.CreateReservation(ctx,
		newReservation(client.ID, barber.ID, 1, ts(9, 0), ts(9, 30)), nil, nil))

	cancelled := newReservation(client.ID, barber.ID, 1, ts(10, 0), ts(10, 30))
	require.NoError(t, repo.CreateReservation(ctx, cancelled, nil, nil))
	require.NoError(t, repo.UpdateReservationStatus(ctx, cancelled.ID, 5))

	// outro dia
	nextDay := ts(9, 0).Add(24 * time.Hour)
	require.NoError(t, repo.CreateReservation(ctx,
		newReservation(client.ID, barber.ID, 1, nextDay, nextDay.Add(30*time.Minute)), nil, nil))

	dayStart := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	intervals, err := repo.ListBusyIntervals(ctx, barber.ID, dayStart, dayStart.Add(24*time.Hour))
	require.NoError(t, err)

	require.Len(t, intervals, 1)
	assert.Equal(t, ts(9, 0).Unix(), intervals[0].StartAt.Unix())
	assert.Equal(t, ts(9, 30).Unix(), intervals[0].EndAt.Unix())
	assert.EqualValues(t, 1, intervals[0].StatusID)
}

// --------------------------------------------------
// Catálogo / elegibilidade
// --------------------------------------------------

func TestListEnabledServices_SkipsDisabled(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReservationGormRepository(db)
	ctx := context.Background()

	active := createService(t, db, "Corte", "00:30:00", true)
	disabled := createService(t, db, "Antigo", "00:30:00", false)

	services, err := repo.ListEnabledServices(ctx, []uint{active.ID, disabled.ID})
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, active.ID, services[0].ID)
}

func TestCountBarberServices(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReservationGormRepository(db)
	ctx := context.Background()

	barber := createUser(t, db, "barber", 2)
	corte := createService(t, db, "Corte", "00:30:00", true)
	barba := createService(t, db, "Barba", "00:15:00", true)

	grantService(t, db, barber.ID, corte.ID)

	count, err := repo.CountBarberServices(ctx, barber.ID, []uint{corte.ID, barba.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	grantService(t, db, barber.ID, barba.ID)

	count, err = repo.CountBarberServices(ctx, barber.ID, []uint{corte.ID, barba.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}
