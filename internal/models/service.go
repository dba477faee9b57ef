package models

import "time"

// Service é um serviço individual da barbearia. O preço é inteiro
// (sem centavos) e a duração usa o formato HH:MM:SS.
type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Price       int    `json:"price"`
	Duration    string `gorm:"size:8;not null" json:"duration"`
	Description string `gorm:"size:255" json:"description"`

	Enabled bool `gorm:"default:true" json:"enabled"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BarberService autoriza um barbeiro a executar um serviço.
type BarberService struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID  uint `gorm:"uniqueIndex:idx_barber_service" json:"barber_id"`
	ServiceID uint `gorm:"uniqueIndex:idx_barber_service" json:"service_id"`
}
