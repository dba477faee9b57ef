package dto

import (
	"time"

	"github.com/barbexa/barbexa-api/internal/models"
)

// ======================================================
// Reserva hidratada (detalhe)
// ======================================================

type ReservationServiceLine struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Duration string `json:"duration"`
}

type ReservationComboItemLine struct {
	ServiceID uint   `json:"service_id"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Duration  string `json:"duration"`
	Quantity  int    `json:"quantity"`
}

type ReservationComboLine struct {
	ID               uint                       `json:"id"`
	Name             string                     `json:"name"`
	Price            *int                       `json:"price"`
	DiscountPercent  int                        `json:"discount_percent"`
	DurationOverride *string                    `json:"duration_override"`
	Items            []ReservationComboItemLine `json:"items"`
}

type ReservationDetailDTO struct {
	ID uint `json:"id"`

	ClientID   uint   `json:"client_id"`
	ClientName string `json:"client_name"`
	BarberID   uint   `json:"barber_id"`
	BarberName string `json:"barber_name"`

	StatusID   uint   `json:"status_id"`
	StatusName string `json:"status_name"`

	StartAt time.Time `json:"start_at"`
	EndAt   time.Time `json:"end_at"`
	Notes   string    `json:"notes"`

	Services []ReservationServiceLine `json:"services"`
	Combos   []ReservationComboLine   `json:"combos"`
}

type ReservationListDTO struct {
	ID uint `json:"id"`

	StartAt time.Time `json:"start_at"`
	EndAt   time.Time `json:"end_at"`
	Notes   string    `json:"notes"`

	StatusID   uint   `json:"status_id"`
	StatusName string `json:"status_name"`

	ClientID   uint   `json:"client_id"`
	ClientName string `json:"client_name"`
	BarberID   uint   `json:"barber_id"`
	BarberName string `json:"barber_name"`
}

// ReservationDetailFrom monta o detalhe hidratado a partir do modelo
// pré-carregado (status, usuários, serviços e combos com itens).
func ReservationDetailFrom(res *models.Reservation) *ReservationDetailDTO {
	detail := &ReservationDetailDTO{
		ID:         res.ID,
		ClientID:   res.ClientID,
		ClientName: res.Client.Username,
		BarberID:   res.BarberID,
		BarberName: res.Barber.Username,
		StatusID:   res.StatusID,
		StatusName: res.Status.Name,
		StartAt:    res.StartAt,
		EndAt:      res.EndAt,
		Notes:      res.Notes,
		Services:   []ReservationServiceLine{},
		Combos:     []ReservationComboLine{},
	}

	for _, line := range res.Services {
		detail.Services = append(detail.Services, ReservationServiceLine{
			ID:       line.Service.ID,
			Name:     line.Service.Name,
			Price:    line.Service.Price,
			Duration: line.Service.Duration,
		})
	}

	for _, line := range res.Combos {
		combo := ReservationComboLine{
			ID:               line.Combo.ID,
			Name:             line.Combo.Name,
			Price:            line.Combo.Price,
			DiscountPercent:  line.Combo.DiscountPercent,
			DurationOverride: line.Combo.DurationOverride,
			Items:            []ReservationComboItemLine{},
		}
		for _, item := range line.Combo.Items {
			combo.Items = append(combo.Items, ReservationComboItemLine{
				ServiceID: item.ServiceID,
				Name:      item.Service.Name,
				Price:     item.Service.Price,
				Duration:  item.Service.Duration,
				Quantity:  item.Quantity,
			})
		}
		detail.Combos = append(detail.Combos, combo)
	}

	return detail
}

func ReservationListFrom(res models.Reservation) ReservationListDTO {
	return ReservationListDTO{
		ID:         res.ID,
		StartAt:    res.StartAt,
		EndAt:      res.EndAt,
		Notes:      res.Notes,
		StatusID:   res.StatusID,
		StatusName: res.Status.Name,
		ClientID:   res.ClientID,
		ClientName: res.Client.Username,
		BarberID:   res.BarberID,
		BarberName: res.Barber.Username,
	}
}
