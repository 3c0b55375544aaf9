package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Mohan3458/Human-Capital-Performance-and-Attrition-Analysis/internal/service"
	"github.com/Mohan3458/Human-Capital-Performance-and-Attrition-Analysis/internal/service/serviceutils"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) RegisterHandler(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid request body", err)
	}

	if err := h.svc.Register(c.Request().Context(), req.Name, req.Email, req.Password); err != nil {
		return serviceutils.ResponseError(c, statusFor(err), "Registration failed", err)
	}

	return serviceutils.ResponseSuccess(c, http.StatusCreated, "User registered successfully", nil)
}

func (h *AuthHandler) LoginHandler(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid request body", err)
	}

	token, err := h.svc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return serviceutils.ResponseError(c, statusFor(err), "Login failed", err)
	}

	return c.JSON(http.StatusOK, token)
}
