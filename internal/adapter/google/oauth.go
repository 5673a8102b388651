package google

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"gitlab.com/classhub-2025.net/internal/config"
	"gitlab.com/classhub-2025.net/internal/core/ports/primary"
	"gitlab.com/classhub-2025.net/internal/core/ports/secondary"
	"gitlab.com/classhub-2025.net/internal/domain"
	"gitlab.com/classhub-2025.net/internal/static/errs"
)

const userInfoURL = "https://www.googleapis.com/oauth2/v3/userinfo"

var _ secondary.IdentityProviderPort = (*Provider)(nil)

// Provider implements the identity provider port against Google OAuth2.
type Provider struct {
	oauthConfig *oauth2.Config
	logger      primary.Logger
}

func NewProvider(cfg *config.GGAuthConfig, logger primary.Logger) *Provider {
	return &Provider{
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{"profile", "email"},
			Endpoint:     google.Endpoint,
		},
		logger: logger,
	}
}

func (p *Provider) AuthCodeURL(state string) string {
	return p.oauthConfig.AuthCodeURL(state)
}

// Exchange trades the authorization code for tokens and extracts the
// user's identity. The identity normally comes straight from the id_token
// claims; when Google omits the id_token the userinfo endpoint is queried.
func (p *Provider) Exchange(ctx context.Context, code string) (*domain.ExternalIdentity, error) {
	token, err := p.oauthConfig.Exchange(ctx, code)
	if err != nil {
		p.logger.Error("Failed to exchange authorization code", "error", err)
		return nil, errs.UpstreamFailure
	}

	if rawIDToken, ok := token.Extra("id_token").(string); ok && rawIDToken != "" {
		identity, err := identityFromIDToken(rawIDToken)
		if err == nil {
			return identity, nil
		}
		p.logger.Warn("Failed to decode id_token, falling back to userinfo", "error", err)
	}

	return p.fetchUserInfo(ctx, token)
}

// identityFromIDToken decodes the claims of Google's id_token. The token
// arrived over TLS directly from the token endpoint, so its signature is
// not re-verified here.
func identityFromIDToken(rawIDToken string) (*domain.ExternalIdentity, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(rawIDToken, claims); err != nil {
		return nil, fmt.Errorf("failed to parse id_token: %w", err)
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, fmt.Errorf("id_token missing sub claim")
	}
	name, _ := claims["name"].(string)
	email, _ := claims["email"].(string)
	picture, _ := claims["picture"].(string)

	return &domain.ExternalIdentity{
		Provider: domain.ProviderGoogle,
		Subject:  sub,
		Name:     name,
		Email:    email,
		Picture:  picture,
	}, nil
}

// googleUser decodes the userinfo API response.
type googleUser struct {
	ID      string `json:"sub"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
}

func (p *Provider) fetchUserInfo(ctx context.Context, token *oauth2.Token) (*domain.ExternalIdentity, error) {
	client := p.oauthConfig.Client(ctx, token)
	resp, err := client.Get(userInfoURL)
	if err != nil {
		p.logger.Error("Failed to get user info", "error", err)
		return nil, errs.UpstreamFailure
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		p.logger.Error("Userinfo request rejected", "status", resp.StatusCode)
		return nil, errs.UpstreamFailure
	}

	var gu googleUser
	if err := json.NewDecoder(resp.Body).Decode(&gu); err != nil {
		p.logger.Error("Failed to decode user info", "error", err)
		return nil, errs.UpstreamFailure
	}

	return &domain.ExternalIdentity{
		Provider: domain.ProviderGoogle,
		Subject:  gu.ID,
		Name:     gu.Name,
		Email:    gu.Email,
		Picture:  gu.Picture,
	}, nil
}
