package middleware

import (
	"commerce-insights/internal/errors"
	"commerce-insights/internal/handlers"
	"commerce-insights/internal/services"

	"github.com/labstack/echo/v4"
)

// RequireAuth creates a middleware that requires a valid JWT access token
// issued through the client-credentials flow
func RequireAuth(tokenService services.TokenServiceInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			token, err := tokenService.ExtractTokenFromHeader(authHeader)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			claims, err := tokenService.ValidateAccessToken(token)
			if err != nil {
				if err == services.ErrExpiredToken {
					return handlers.SendError(c, errors.AuthExpiredToken)
				}
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			if claims.ClientID == "" {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat, errors.WithDetails("Missing client ID in token"))
			}

			c.Set("client_id", claims.ClientID)
			c.Set("token_scope", claims.Scope)
			c.Set("token_jti", claims.ID)

			return next(c)
		}
	}
}

// RequireScope creates a middleware that requires one of the given scopes
func RequireScope(requiredScopes ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenScope, ok := c.Get("token_scope").(string)
			if !ok {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat, errors.WithDetails("Scope not found in token"))
			}

			for _, scope := range requiredScopes {
				if tokenScope == scope {
					return next(c)
				}
			}

			return handlers.SendError(c, errors.AuthInsufficientPermission)
		}
	}
}

// RequireIngest is a convenience middleware that requires the ingest scope
func RequireIngest() echo.MiddlewareFunc {
	return RequireScope(services.ScopeIngest)
}
