package handlers

import (
	"net/http"

	"sentosa_backend/internal/middleware"
	"sentosa_backend/internal/services"
	"sentosa_backend/internal/services/dto"
	"sentosa_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

func (h *AuthHandler) RegisterRoutes(r *gin.Engine) {
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	r.GET("/verify", middleware.AuthMiddleware(), h.Verify)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	if err := h.authService.Register(db, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.authService.Login(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	// Mirrored into a cookie for browser clients; API clients use the
	// Authorization header.
	c.SetCookie("token", response.Token, 0, "/", "", true, true)
	c.JSON(http.StatusOK, response)
}

func (h *AuthHandler) Verify(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		apperrors.HandleError(c, apperrors.ErrInvalidToken)
		return
	}

	db := h.GetDB(c)

	response, err := h.authService.Authenticate(db, claims)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
