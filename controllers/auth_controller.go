package controllers

import (
	"net/http"
	"strings"
	"time"

	"gym-backend/config"
	"gym-backend/models"
	"gym-backend/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type AuthController struct {
	Secret   string
	TokenTTL time.Duration
}

func NewAuthController(secret string) *AuthController {
	return &AuthController{Secret: secret, TokenTTL: 12 * time.Hour}
}

type loginPayload struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "username and password required")
		return
	}

	username := strings.TrimSpace(payload.Username)

	var admin models.Admin
	if err := config.DB.Where("username = ?", username).First(&admin).Error; err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(payload.Password)) != nil {
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	now := time.Now()
	_ = config.DB.Model(&admin).Update("last_login", now).Error

	token, err := utils.NewAccessToken(ac.Secret, admin.ID, admin.FullName, ac.TokenTTL)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to issue token")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"token": token,
		"admin": gin.H{
			"id":        admin.ID,
			"username":  admin.Username,
			"full_name": admin.FullName,
		},
	})
}
