package handler

import (
	"errors"

	"main/dto"
	"main/middleware"
	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	UserService *usecase.UserService
	Logger      *zap.Logger
}

func NewAuthHandler(userService *usecase.UserService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{UserService: userService, Logger: logger}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "email, password and name are required")
		return
	}

	user, err := h.UserService.Register(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			middleware.AuthAttempts.WithLabelValues("failure", "register").Inc()
			utils.Conflict(c, "email already registered")
			return
		}
		h.Logger.Error("registration failed", zap.Error(err))
		utils.InternalError(c, "internal server error")
		return
	}

	middleware.AuthAttempts.WithLabelValues("success", "register").Inc()
	utils.Created(c, gin.H{
		"message": "registration successful",
		"user":    dto.ToUserResponse(user),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "email and password are required")
		return
	}

	user, err := h.UserService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			middleware.AuthAttempts.WithLabelValues("failure", "login").Inc()
			utils.Unauthorized(c, "invalid email or password")
			return
		}
		h.Logger.Error("login failed", zap.Error(err))
		utils.InternalError(c, "internal server error")
		return
	}

	middleware.AuthAttempts.WithLabelValues("success", "login").Inc()
	utils.Success(c, gin.H{
		"message": "login successful",
		"user":    dto.ToUserResponse(user),
	})
}
