package handlers

import (
	"log/slog"
	"net/http"

	"commerce-insights/internal/dto"
	"commerce-insights/internal/errors"
	"commerce-insights/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService services.AuthServiceInterface
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authService services.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// IssueToken exchanges service-client credentials for an access token
//
// Method: POST /api/v1/auth/token
// Authentication: None (this is the credential exchange)
//
// Request body:
//   - grantType: Must be "client_credentials"
//   - clientId: Registered client identifier
//   - clientSecret: Client secret
//
// Success Response: 200 OK
//   - accessToken: Signed JWT
//   - tokenType: "Bearer"
//   - expiresAt: ISO 8601 timestamp
//
// Error Responses:
//   - 400: Invalid request body or grant type
//   - 401: Unknown client or wrong secret
//   - 500: Token issuance not configured or signing failure
func (h *AuthHandler) IssueToken(c echo.Context) error {
	var req dto.TokenRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	tokens, err := h.authService.IssueToken(&req)
	if err != nil {
		if err == services.ErrInvalidCredentials {
			slog.Warn("token request rejected", "client_id", req.ClientID, "remote_ip", getClientIP(c))
			return SendError(c, errors.AuthInvalidCredentials)
		}
		if err == services.ErrTokenIssueDisabled {
			return SendError(c, errors.SystemConfigurationError)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, tokens)
}
