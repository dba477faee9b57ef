package reservation

// ===============================
// Reservation Status
// ===============================

// Status espelha a tabela reservation_statuses. Reservas com status
// ativo (pendente, confirmada, em andamento) ocupam a agenda do
// barbeiro; concluídas e canceladas não bloqueiam horário.
type Status uint

const (
	StatusPending    Status = 1
	StatusConfirmed  Status = 2
	StatusInProgress Status = 3
	StatusCompleted  Status = 4
	StatusCancelled  Status = 5
)

var statusNames = map[Status]string{
	StatusPending:    "PENDING",
	StatusConfirmed:  "CONFIRMED",
	StatusInProgress: "IN_PROGRESS",
	StatusCompleted:  "COMPLETED",
	StatusCancelled:  "CANCELLED",
}

func (s Status) Name() string {
	return statusNames[s]
}

// IsValidStatus aceita qualquer status conhecido. A transição é livre:
// não há máquina de estados imposta na troca de status.
func IsValidStatus(id uint) bool {
	_, ok := statusNames[Status(id)]
	return ok
}

// ActiveStatusIDs são os status que contam para detecção de conflito.
func ActiveStatusIDs() []uint {
	return []uint{
		uint(StatusPending),
		uint(StatusConfirmed),
		uint(StatusInProgress),
	}
}

// InitialStatus é o status de toda reserva recém-criada.
func InitialStatus() Status {
	return StatusPending
}
