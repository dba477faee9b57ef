package reservation

import (
	"context"
	"time"

	"github.com/barbexa/barbexa-api/internal/audit"
	domain "github.com/barbexa/barbexa-api/internal/domain/reservation"
	"github.com/barbexa/barbexa-api/internal/dto"
	"github.com/barbexa/barbexa-api/internal/httperr"
	"github.com/barbexa/barbexa-api/internal/models"
)

// ======================================================
// USE CASE
// ======================================================

type CreateReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateReservation {
	return &CreateReservation{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateReservation) Execute(
	ctx context.Context,
	identity domain.Identity,
	in domain.CreateInput,
) (*dto.ReservationDetailDTO, error) {

	// --------------------------------------------------
	// 1. Cliente: usa o informado ou infere do chamador
	// --------------------------------------------------
	clientID := in.ClientID
	if clientID == 0 {
		clientID = identity.UserID
	}
	if clientID == 0 {
		return nil, httperr.ErrInvalid(
			"client_required",
			"Não foi possível resolver o cliente da reserva.",
		)
	}

	serviceIDs := dedupe(in.ServiceIDs)
	comboIDs := dedupe(in.ComboIDs)

	if len(serviceIDs) == 0 && len(comboIDs) == 0 {
		return nil, httperr.ErrInvalid(
			"must_specify_items",
			"Informe pelo menos um serviço ou combo.",
		)
	}

	// --------------------------------------------------
	// 2. Elegibilidade: catálogo ativo + autorização
	// --------------------------------------------------
	services, err := uc.repo.ListEnabledServices(ctx, serviceIDs)
	if err != nil {
		return nil, err
	}
	if len(services) != len(serviceIDs) {
		return nil, httperr.ErrInvalid(
			"service_not_available",
			"Algum serviço não existe ou está desabilitado.",
		)
	}

	combos, err := uc.repo.ListEnabledCombos(ctx, comboIDs)
	if err != nil {
		return nil, err
	}
	if len(combos) != len(comboIDs) {
		return nil, httperr.ErrInvalid(
			"combo_not_available",
			"Algum combo não existe ou está desabilitado.",
		)
	}

	if len(serviceIDs) > 0 {
		count, err := uc.repo.CountBarberServices(ctx, in.BarberID, serviceIDs)
		if err != nil {
			return nil, err
		}
		if count != int64(len(serviceIDs)) {
			return nil, httperr.ErrForbidden(
				"barber_not_authorized",
				"O barbeiro não oferece todos os serviços solicitados.",
			)
		}
	}

	// --------------------------------------------------
	// 3. Duração total → end_at
	// --------------------------------------------------
	totalMinutes, err := domain.TotalMinutes(services, combos)
	if err != nil || totalMinutes <= 0 {
		return nil, httperr.ErrInvalid(
			"invalid_total_duration",
			"Duração total inválida.",
		)
	}

	end := in.StartAt.Add(time.Duration(totalMinutes) * time.Minute)

	// --------------------------------------------------
	// 4. Conflito de horário (gate de admissão)
	// --------------------------------------------------
	overlap, err := uc.repo.HasOverlap(ctx, in.BarberID, in.StartAt, end)
	if err != nil {
		return nil, err
	}
	if overlap {
		uc.audit.Dispatch(audit.Event{
			UserID: &identity.UserID,
			Action: "reservation_conflict",
			Entity: "reservation",
			Metadata: map[string]any{
				"barber_id": in.BarberID,
				"start_at":  in.StartAt,
				"end_at":    end,
			},
		})
		return nil, httperr.ErrConflict(
			"time_conflict",
			"O barbeiro já tem uma reserva nesse intervalo.",
		)
	}

	// --------------------------------------------------
	// 5. Gravação transacional (re-checa conflito sob lock)
	// --------------------------------------------------
	res := &models.Reservation{
		ClientID: clientID,
		BarberID: in.BarberID,
		StatusID: uint(domain.InitialStatus()),
		StartAt:  in.StartAt,
		EndAt:    end,
		Notes:    in.Notes,
	}

	if err := uc.repo.CreateReservation(ctx, res, serviceIDs, comboIDs); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &identity.UserID,
		Action:   "reservation_created",
		Entity:   "reservation",
		EntityID: &res.ID,
	})

	// --------------------------------------------------
	// 6. Releitura hidratada
	// --------------------------------------------------
	created, err := uc.repo.GetReservationByID(ctx, res.ID)
	if err != nil {
		return nil, err
	}

	return dto.ReservationDetailFrom(created), nil
}

func dedupe(ids []uint) []uint {
	if len(ids) == 0 {
		return nil
	}

	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
