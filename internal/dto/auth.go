package dto

import "time"

// Auth Request DTOs

// TokenRequest contains service-client credentials for the token endpoint
type TokenRequest struct {
	GrantType    string `json:"grantType" validate:"required,eq=client_credentials"`
	ClientID     string `json:"clientId" validate:"required,min=1,max=100"`
	ClientSecret string `json:"clientSecret" validate:"required"`
}

// Auth Response DTOs

// TokenResponse contains the issued access token
type TokenResponse struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresAt   time.Time `json:"expiresAt"`
}
