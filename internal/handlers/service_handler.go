package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbermx/appointment-api/internal/httperr"
	"github.com/barbermx/appointment-api/internal/httpresp"
	"github.com/barbermx/appointment-api/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

// ======================================================
// PÚBLICO
// ======================================================

func (h *ServiceHandler) ListActive(c *gin.Context) {
	var services []models.Service
	if err := h.db.
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	httpresp.List(c, services)
}

// ======================================================
// ADMIN
// ======================================================

type ServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	DurationMin int     `json:"duration_min" binding:"required,gt=0"`
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	service := models.Service{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		DurationMin: req.DurationMin,
		IsActive:    true,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Erro ao criar serviço.")
		return
	}

	httpresp.Created(c, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var service models.Service
	if err := h.db.First(&service, uint(id)).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	service.Name = req.Name
	service.Description = req.Description
	service.Price = req.Price
	service.DurationMin = req.DurationMin

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Erro ao atualizar serviço.")
		return
	}

	c.JSON(http.StatusOK, service)
}

// Deactivate esconde o serviço de novas reservas; agendamentos
// existentes ficam como estão.
func (h *ServiceHandler) Deactivate(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	if err := h.db.Model(&models.Service{}).
		Where("id = ?", uint(id)).
		Update("is_active", false).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Erro ao desativar serviço.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
