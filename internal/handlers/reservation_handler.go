package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/barbexa/barbexa-api/internal/domain/reservation"
	"github.com/barbexa/barbexa-api/internal/httperr"
	"github.com/barbexa/barbexa-api/internal/httpresp"
	"github.com/barbexa/barbexa-api/internal/timezone"
	ucReservation "github.com/barbexa/barbexa-api/internal/usecase/reservation"
)

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	createUC       *ucReservation.CreateReservation
	getUC          *ucReservation.GetReservation
	listUC         *ucReservation.ListReservations
	updateStatusUC *ucReservation.UpdateReservationStatus
	availabilityUC *ucReservation.GetBarberDayAvailability
}

func NewReservationHandler(
	createUC *ucReservation.CreateReservation,
	getUC *ucReservation.GetReservation,
	listUC *ucReservation.ListReservations,
	updateStatusUC *ucReservation.UpdateReservationStatus,
	availabilityUC *ucReservation.GetBarberDayAvailability,
) *ReservationHandler {
	return &ReservationHandler{
		createUC:       createUC,
		getUC:          getUC,
		listUC:         listUC,
		updateStatusUC: updateStatusUC,
		availabilityUC: availabilityUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateReservationRequest struct {
	ClientID uint   `json:"client_id"`
	BarberID uint   `json:"barber_id" binding:"required"`
	Services []uint `json:"services"`
	Combos   []uint `json:"combos"`
	StartAt  string `json:"start_at" binding:"required"`
	Notes    string `json:"notes"`
}

type UpdateStatusRequest struct {
	StatusID uint `json:"status_id" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ReservationHandler) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	start, err := timezone.ParseDateTime(req.StartAt)
	if err != nil {
		httperr.BadRequest(c, "invalid_start_at", "Data ou hora inválida.")
		return
	}

	detail, err := h.createUC.Execute(
		c.Request.Context(),
		identityFromContext(c),
		domain.CreateInput{
			ClientID:   req.ClientID,
			BarberID:   req.BarberID,
			ServiceIDs: req.Services,
			ComboIDs:   req.Combos,
			StartAt:    start,
			Notes:      req.Notes,
		},
	)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.Created(c, detail)
}

// ======================================================
// DETAIL
// ======================================================

func (h *ReservationHandler) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID de reserva inválido.")
		return
	}

	detail, err := h.getUC.Execute(c.Request.Context(), uint(id))
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, detail)
}

// ======================================================
// LIST
// ======================================================

func (h *ReservationHandler) List(c *gin.Context) {
	filters := domain.ListFilters{
		ClientID: queryUint(c, "client_id"),
		BarberID: queryUint(c, "barber_id"),
		StatusID: queryUint(c, "status_id"),
		Limit:    int(queryUint(c, "limit")),
	}

	if from := c.Query("from"); from != "" {
		t, err := parseDateOrDateTime(from)
		if err != nil {
			httperr.BadRequest(c, "invalid_from", "Filtro 'from' inválido.")
			return
		}
		filters.From = &t
	}
	if to := c.Query("to"); to != "" {
		t, err := parseDateOrDateTime(to)
		if err != nil {
			httperr.BadRequest(c, "invalid_to", "Filtro 'to' inválido.")
			return
		}
		filters.To = &t
	}

	rows, err := h.listUC.Execute(c.Request.Context(), filters)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.List(c, rows)
}

// ======================================================
// UPDATE STATUS
// ======================================================

func (h *ReservationHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID de reserva inválido.")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	detail, err := h.updateStatusUC.Execute(
		c.Request.Context(),
		identityFromContext(c),
		uint(id),
		req.StatusID,
	)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, detail)
}

// ======================================================
// DAY AVAILABILITY
// ======================================================

func (h *ReservationHandler) BarberDayAvailability(c *gin.Context) {
	barberID, err := strconv.ParseUint(c.Param("barberId"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "ID de barbeiro inválido.")
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	date, err := timezone.ParseDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	intervals, err := h.availabilityUC.Execute(c.Request.Context(), uint(barberID), date)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.List(c, intervals)
}

// ======================================================
// HELPERS
// ======================================================

func queryUint(c *gin.Context, key string) uint {
	v, err := strconv.ParseUint(c.Query(key), 10, 64)
	if err != nil {
		return 0
	}
	return uint(v)
}

func parseDateOrDateTime(value string) (time.Time, error) {
	if t, err := timezone.ParseDateTime(value); err == nil {
		return t, nil
	}
	return timezone.ParseDate(value)
}
