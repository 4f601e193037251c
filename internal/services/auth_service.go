package services

import (
	"errors"
	"fmt"
	"log/slog"

	"commerce-insights/internal/config"
	"commerce-insights/internal/dto"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid client credentials")
	ErrTokenIssueDisabled = errors.New("token issuance is not configured")
)

// AuthService verifies the service-client credential and issues access
// tokens. There is a single static client, so no user store is involved.
type AuthService struct {
	cfg          *config.AuthConfig
	tokenService TokenServiceInterface
	metrics      MetricsRecorderInterface
	logger       *slog.Logger
	secretHash   []byte
}

// NewAuthService creates a new authentication service. When only a
// plaintext secret is configured (development setups) it is hashed once
// here so verification always runs against a bcrypt hash.
func NewAuthService(
	cfg *config.AuthConfig,
	tokenService TokenServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) (AuthServiceInterface, error) {
	service := &AuthService{
		cfg:          cfg,
		tokenService: tokenService,
		metrics:      metrics,
		logger:       logger,
	}

	switch {
	case cfg.ClientSecretHash != "":
		service.secretHash = []byte(cfg.ClientSecretHash)
	case cfg.ClientSecret != "":
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.ClientSecret), cfg.BCryptCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash client secret: %w", err)
		}
		service.secretHash = hash
		logger.Warn("using plaintext AUTH_CLIENT_SECRET; set AUTH_CLIENT_SECRET_HASH in production")
	default:
		logger.Warn("no client credential configured; token endpoint will reject all requests")
	}

	return service, nil
}

// IssueToken verifies the client credential and returns a short-lived
// access token
func (s *AuthService) IssueToken(req *dto.TokenRequest) (*dto.TokenResponse, error) {
	if len(s.secretHash) == 0 {
		return nil, ErrTokenIssueDisabled
	}

	if req.ClientID != s.cfg.ClientID {
		s.recordAuthEvent("rejected_client")
		s.logger.Warn("token request with unknown client id", "client_id", req.ClientID)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(s.secretHash, []byte(req.ClientSecret)); err != nil {
		s.recordAuthEvent("rejected_secret")
		s.logger.Warn("token request with invalid secret", "client_id", req.ClientID)
		return nil, ErrInvalidCredentials
	}

	accessToken, expiresAt, err := s.tokenService.GenerateAccessToken(req.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	s.recordAuthEvent("token_issued")
	s.logger.Info("access token issued",
		"client_id", req.ClientID,
		"expires_at", expiresAt)

	return &dto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	}, nil
}

func (s *AuthService) recordAuthEvent(eventType string) {
	s.metrics.IncrementCounter("authentication_event", map[string]string{
		"event_type": eventType,
	})
}
