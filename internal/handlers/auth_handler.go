package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/barbermx/appointment-api/internal/config"
	"github.com/barbermx/appointment-api/internal/middleware"
	"github.com/barbermx/appointment-api/internal/models"
	"github.com/barbermx/appointment-api/internal/validators"
)

const tokenTTL = 24 * time.Hour

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
	rdb    *redis.Client
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, rdb *redis.Client) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, rdb: rdb}
}

// --------- Requests ---------

type RegisterRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

// Register cria sempre um perfil de cliente. Barbeiros e admins são
// promovidos depois pelo admin.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_email_domain",
			"message": "O domínio do e-mail informado não parece ser válido.",
		})
		return
	}

	var count int64
	h.db.Model(&models.Profile{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email_already_exists"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_hash_password"})
		return
	}

	profile := models.Profile{
		FullName:     req.FullName,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Role:         string(models.RoleClient),
	}

	if err := h.db.Create(&profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_profile"})
		return
	}

	token, err := h.generateToken(&profile)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"profile": gin.H{
			"id":        profile.ID,
			"full_name": profile.FullName,
			"email":     profile.Email,
			"phone":     profile.Phone,
			"role":      profile.Role,
		},
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var profile models.Profile
	if err := h.db.Where("email = ?", email).First(&profile).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(profile.PasswordHash),
		[]byte(req.Password),
	); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	token, err := h.generateToken(&profile)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile": gin.H{
			"id":        profile.ID,
			"full_name": profile.FullName,
			"email":     profile.Email,
			"phone":     profile.Phone,
			"role":      profile.Role,
		},
		"token": token,
	})
}

// Logout coloca o jti do token na denylist até ele expirar sozinho.
func (h *AuthHandler) Logout(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok || session.TokenID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing_session"})
		return
	}

	if err := h.rdb.Set(
		c.Request.Context(),
		middleware.DenylistKey(session.TokenID),
		"1",
		tokenTTL,
	).Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_revoke_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AuthHandler) generateToken(profile *models.Profile) (string, error) {
	claims := jwt.MapClaims{
		"sub":  profile.ID,
		"role": profile.Role,
		"jti":  uuid.NewString(),
		"exp":  time.Now().Add(tokenTTL).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
