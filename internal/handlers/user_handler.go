package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbexa/barbexa-api/internal/httperr"
	"github.com/barbexa/barbexa-api/internal/httpresp"
)

type UserHandler struct {
	db *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

type BarberRow struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// ListBarbers devolve os usuários com papel BARBER_02 para o cliente
// escolher o barbeiro na hora de reservar.
func (h *UserHandler) ListBarbers(c *gin.Context) {
	var barbers []BarberRow
	if err := h.db.
		Table("users").
		Select("users.id", "users.username").
		Joins("JOIN roles ON roles.id = users.role_id").
		Where("roles.code_name = ? AND users.enabled = ?", "BARBER_02", true).
		Order("users.username ASC").
		Scan(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}

	httpresp.List(c, barbers)
}
