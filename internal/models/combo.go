package models

import "time"

// Combo agrupa serviços vendidos como uma única unidade reservável.
// Price e DurationOverride são opcionais: sem override, a duração do
// combo é a soma dos itens.
type Combo struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`

	Price            *int    `json:"price"`
	DiscountPercent  int     `json:"discount_percent"`
	DurationOverride *string `gorm:"size:8" json:"duration_override"`

	Enabled bool `gorm:"default:true" json:"enabled"`

	Items []ComboItem `json:"items"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ComboItem struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ComboID uint `gorm:"index" json:"combo_id"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	Quantity int `gorm:"default:1" json:"quantity"`
}
