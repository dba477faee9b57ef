package reservation

import "time"

// Identity é a identidade autenticada do chamador, resolvida pela
// camada HTTP e passada explicitamente para os casos de uso.
type Identity struct {
	UserID   uint
	Username string
	RoleCode string
}

type CreateInput struct {
	ClientID uint
	BarberID uint

	ServiceIDs []uint
	ComboIDs   []uint

	StartAt time.Time
	Notes   string
}

// ListFilters filtra a listagem de reservas. Campos zerados são
// ignorados; From/To recortam start_at em [From, To).
type ListFilters struct {
	ClientID uint
	BarberID uint
	StatusID uint

	From *time.Time
	To   *time.Time

	Limit int
}

// BusyInterval é um intervalo ocupado na agenda de um barbeiro.
type BusyInterval struct {
	StartAt  time.Time `json:"start_at"`
	EndAt    time.Time `json:"end_at"`
	StatusID uint      `json:"status_id"`
}
