package handlers

import (
	"yournews/helper"
	"yournews/middleware"
	"yournews/models"
	"yournews/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthService
	Helper      *helper.HTTPHelper
}

func NewAuthHandler(authService services.AuthService, h *helper.HTTPHelper) *AuthHandler {
	return &AuthHandler{authService: authService, Helper: h}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	response, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Register success", response)
}

func (h *AuthHandler) Token(c *gin.Context) {
	var req models.TokenRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	response, err := h.authService.Token(c.Request.Context(), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Login success", response)
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	user := middleware.GetUser(c)
	if user == nil {
		h.Helper.SendUnauthorizedError(c, "User not found in context")
		return
	}

	h.Helper.SendSuccess(c, "Profile", user)
}
