package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/barbexa/barbexa-api/internal/httperr"
	"github.com/barbexa/barbexa-api/internal/httpresp"
	"github.com/barbexa/barbexa-api/internal/models"
)

// CatalogHandler expõe as leituras de catálogo (serviços e combos
// habilitados) e a concessão de serviços a barbeiros — a relação que o
// validador de elegibilidade consulta.
type CatalogHandler struct {
	db *gorm.DB
}

func NewCatalogHandler(db *gorm.DB) *CatalogHandler {
	return &CatalogHandler{db: db}
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	var services []models.Service
	if err := h.db.
		Where("enabled = ?", true).
		Order("name ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	httpresp.List(c, services)
}

func (h *CatalogHandler) ListCombos(c *gin.Context) {
	var combos []models.Combo
	if err := h.db.
		Preload("Items.Service").
		Where("enabled = ?", true).
		Order("name ASC").
		Find(&combos).Error; err != nil {
		httperr.Internal(c, "failed_to_list_combos", "Erro ao listar combos.")
		return
	}

	httpresp.List(c, combos)
}

// --------- Barber services ---------

type GrantBarberServicesRequest struct {
	Services []uint `json:"services" binding:"required,min=1"`
}

// GrantBarberServices insere as autorizações barbeiro→serviço.
// Idempotente: pares já existentes são ignorados.
func (h *CatalogHandler) GrantBarberServices(c *gin.Context) {
	barberID, err := strconv.ParseUint(c.Param("barberId"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "ID de barbeiro inválido.")
		return
	}

	var req GrantBarberServicesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var barber models.User
	if err := h.db.First(&barber, uint(barberID)).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	grants := make([]models.BarberService, 0, len(req.Services))
	for _, serviceID := range req.Services {
		grants = append(grants, models.BarberService{
			BarberID:  uint(barberID),
			ServiceID: serviceID,
		})
	}

	if err := h.db.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&grants).Error; err != nil {
		httperr.Internal(c, "failed_to_grant_services", "Erro ao salvar serviços do barbeiro.")
		return
	}

	httpresp.Created(c, gin.H{"barber_id": barberID, "services": req.Services})
}
