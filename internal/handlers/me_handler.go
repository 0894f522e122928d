package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbermx/appointment-api/internal/httperr"
	"github.com/barbermx/appointment-api/internal/middleware"
	"github.com/barbermx/appointment-api/internal/models"
	"github.com/barbermx/appointment-api/internal/storage"
)

const (
	profileFetchAttempts = 3
	profileFetchBackoff  = 300 * time.Millisecond
)

type MeHandler struct {
	db      *gorm.DB
	avatars *storage.AvatarStore
}

func NewMeHandler(db *gorm.DB, avatars *storage.AvatarStore) *MeHandler {
	return &MeHandler{db: db, avatars: avatars}
}

// FetchProfileWithRetry tenta algumas vezes com backoff fixo.
// Não encontrado depois das tentativas é 404; erro de banco que não
// resolve no retry vira profile_not_ready (o cliente tenta de novo).
func (h *MeHandler) FetchProfileWithRetry(c *gin.Context, profileID uint) (*models.Profile, bool) {
	var lastErr error

	for attempt := 0; attempt < profileFetchAttempts; attempt++ {
		if attempt > 0 {
			time.Sleep(profileFetchBackoff)
		}

		var profile models.Profile
		lastErr = h.db.First(&profile, profileID).Error
		if lastErr == nil {
			return &profile, true
		}
	}

	if errors.Is(lastErr, gorm.ErrRecordNotFound) {
		httperr.NotFound(c, "profile_not_found", "Perfil não encontrado.")
	} else {
		httperr.Write(c, http.StatusServiceUnavailable, "profile_not_ready",
			"Perfil indisponível no momento, tente novamente.")
	}

	return nil, false
}

func (h *MeHandler) GetMe(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing_session"})
		return
	}

	profile, ok := h.FetchProfileWithRetry(c, session.ProfileID)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

type UpdateMeRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Phone    string `json:"phone"`
}

func (h *MeHandler) UpdateMe(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing_session"})
		return
	}

	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	profile, ok := h.FetchProfileWithRetry(c, session.ProfileID)
	if !ok {
		return
	}

	profile.FullName = req.FullName
	profile.Phone = req.Phone

	if err := h.db.Save(profile).Error; err != nil {
		httperr.Internal(c, "failed_to_update_profile", "Erro ao atualizar perfil.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// UploadAvatar recebe multipart ("avatar"), converte pra webp 256x256
// e grava a URL pública no perfil.
func (h *MeHandler) UploadAvatar(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing_session"})
		return
	}

	if h.avatars == nil {
		httperr.Internal(c, "storage_not_configured", "Upload de avatar não configurado.")
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Arquivo de avatar ausente.")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		httperr.BadRequest(c, "invalid_file", "Não foi possível ler o arquivo.")
		return
	}
	defer f.Close()

	url, err := h.avatars.Upload(c.Request.Context(), session.ProfileID, f)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Imagem inválida (use JPEG ou PNG).")
		return
	}

	profile, ok := h.FetchProfileWithRetry(c, session.ProfileID)
	if !ok {
		return
	}

	profile.AvatarURL = url
	if err := h.db.Save(profile).Error; err != nil {
		httperr.Internal(c, "failed_to_update_profile", "Erro ao atualizar perfil.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatar_url": url})
}
