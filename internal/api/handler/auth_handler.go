package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/RuanParreira/arquitetura-cebola/internal/api/metrics"
	"github.com/RuanParreira/arquitetura-cebola/internal/core/ports"
)

// AuthHandler exposes the credential exchange and token verification routes.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login exchanges a client_id/client_secret pair for a session token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Client ID and Client Secret are required")
	}

	result, err := h.authService.Authenticate(c.Request().Context(), req.ClientID, req.ClientSecret)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		Message: "Authentication successful",
		Token:   result.Token,
		User:    result.User,
	})
}

// Verify decodes a token and echoes its claims back. Failures answer 401
// with valid=false rather than the plain error envelope.
func (h *AuthHandler) Verify(c echo.Context) error {
	var req verifyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Token is required")
	}

	claims, err := h.authService.VerifyToken(req.Token)
	if err != nil {
		metrics.TokenVerificationsTotal.WithLabelValues("failure").Inc()
		return c.JSON(http.StatusUnauthorized, map[string]any{
			"valid": false,
			"error": err.Error(),
		})
	}

	metrics.TokenVerificationsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, verifyResponse{Valid: true, User: claims})
}
