package models

import "time"

type ReservationStatus struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:20;uniqueIndex;not null" json:"name"`
}

type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint `json:"client_id"`
	Client   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	BarberID uint `gorm:"index" json:"barber_id"`
	Barber   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber"`

	StatusID uint              `json:"status_id"`
	Status   ReservationStatus `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"status"`

	StartAt time.Time `gorm:"index" json:"start_at"`
	EndAt   time.Time `json:"end_at"`

	Notes string `gorm:"size:255" json:"notes"`

	Services []ReservationService `json:"services"`
	Combos   []ReservationCombo   `json:"combos"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ReservationService liga a reserva aos serviços incluídos.
// Imutável depois da criação da reserva.
type ReservationService struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ReservationID uint `gorm:"index" json:"reservation_id"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`
}

// ReservationCombo liga a reserva aos combos incluídos.
type ReservationCombo struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ReservationID uint `gorm:"index" json:"reservation_id"`

	ComboID uint  `json:"combo_id"`
	Combo   Combo `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"combo"`
}
