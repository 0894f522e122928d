package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/barbermx/appointment-api/internal/domain/appointment"
	"github.com/barbermx/appointment-api/internal/httperr"
	"github.com/barbermx/appointment-api/internal/httpresp"
	"github.com/barbermx/appointment-api/internal/models"
)

type BarberHandler struct {
	db *gorm.DB
}

func NewBarberHandler(db *gorm.DB) *BarberHandler {
	return &BarberHandler{db: db}
}

// ======================================================
// PÚBLICO
// ======================================================

type BarberPublicDTO struct {
	ID           uint                `json:"id"`
	FullName     string              `json:"full_name"`
	AvatarURL    string              `json:"avatar_url"`
	WorkSchedule domain.WorkSchedule `json:"work_schedule"`
}

func (h *BarberHandler) ListActive(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.
		Preload("Profile").
		Where("is_active = ?", true).
		Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}

	out := make([]BarberPublicDTO, 0, len(barbers))
	for _, b := range barbers {
		out = append(out, BarberPublicDTO{
			ID:           b.ID,
			FullName:     b.Profile.FullName,
			AvatarURL:    b.Profile.AvatarURL,
			WorkSchedule: b.WorkSchedule,
		})
	}

	httpresp.List(c, out)
}

// ======================================================
// ADMIN
// ======================================================

type CreateBarberRequest struct {
	ProfileID uint `json:"profile_id" binding:"required"`
}

// Create promove um perfil existente a barbeiro: muda o papel e cria
// a linha de barbeiro com a agenda vazia (todos os dias desativados).
func (h *BarberHandler) Create(c *gin.Context) {
	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var profile models.Profile
	if err := h.db.First(&profile, req.ProfileID).Error; err != nil {
		httperr.NotFound(c, "profile_not_found", "Perfil não encontrado.")
		return
	}

	var count int64
	h.db.Model(&models.Barber{}).Where("profile_id = ?", req.ProfileID).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "barber_already_exists", "Perfil já é barbeiro.")
		return
	}

	barber := models.Barber{
		ProfileID:    req.ProfileID,
		IsActive:     true,
		WorkSchedule: domain.WorkSchedule{},
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&barber).Error; err != nil {
			return err
		}
		return tx.Model(&profile).Update("role", string(models.RoleBarber)).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_create_barber", "Erro ao criar barbeiro.")
		return
	}

	httpresp.Created(c, barber)
}

type SetBarberActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

func (h *BarberHandler) SetActive(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var req SetBarberActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if err := h.db.Model(&models.Barber{}).
		Where("id = ?", uint(id)).
		Update("is_active", *req.IsActive).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", "Erro ao atualizar barbeiro.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

type PromoteRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// PromoteRole muda o papel de um perfil (client/barber/admin).
func (h *BarberHandler) PromoteRole(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var req PromoteRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	role, err := models.ParseRole(req.Role)
	if err != nil {
		httperr.BadRequest(c, "invalid_role", "Papel inválido.")
		return
	}

	if err := h.db.Model(&models.Profile{}).
		Where("id = ?", uint(id)).
		Update("role", string(role)).Error; err != nil {
		httperr.Internal(c, "failed_to_update_profile", "Erro ao atualizar perfil.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
