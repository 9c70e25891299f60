// Package google implements the identity provider using Google's OAuth 2.0 code flow.
package google

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"kitchenlink/config"
	"kitchenlink/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	authEndpoint  = "https://accounts.google.com/o/oauth2/v2/auth"
	tokenEndpoint = "https://oauth2.googleapis.com/token"

	exchangeTimeout = 10 * time.Second
)

// idTokenClaims represents the claims in a Google ID token
type idTokenClaims struct {
	Iss           string `json:"iss"`            // Issuer
	Sub           string `json:"sub"`            // Subject (user ID)
	Aud           string `json:"aud"`            // Audience (client ID)
	Exp           int64  `json:"exp"`            // Expiration time
	Iat           int64  `json:"iat"`            // Issued at
	Email         string `json:"email"`          // User's email
	EmailVerified bool   `json:"email_verified"` // Email verification status
	Name          string `json:"name"`           // User's full name
	Picture       string `json:"picture"`        // User's profile picture
}

// tokenResponse is the relevant subset of Google's token endpoint response.
type tokenResponse struct {
	IDToken string `json:"id_token"`
}

// identityProvider implements service.IdentityProvider against Google's endpoints.
type identityProvider struct {
	clientID     string
	clientSecret string
	redirectURI  string
	httpClient   *http.Client
	logger       *slog.Logger
}

// NewIdentityProvider creates a new Google identity provider
func NewIdentityProvider(cfg *config.Config, logger *slog.Logger) service.IdentityProvider {
	return &identityProvider{
		clientID:     cfg.GoogleOAuth.ClientID,
		clientSecret: cfg.GoogleOAuth.ClientSecret,
		redirectURI:  cfg.GoogleOAuth.RedirectURI,
		httpClient:   &http.Client{Timeout: exchangeTimeout},
		logger:       logger,
	}
}

// BuildAuthorizationURL returns the provider login URL carrying the given state.
func (p *identityProvider) BuildAuthorizationURL(state string) string {
	params := url.Values{}
	params.Set("client_id", p.clientID)
	params.Set("redirect_uri", p.redirectURI)
	params.Set("response_type", "code")
	params.Set("scope", "openid email profile")
	params.Set("state", state)

	return authEndpoint + "?" + params.Encode()
}

// Exchange trades an authorization code for the authenticated user's identity.
func (p *identityProvider) Exchange(ctx context.Context, code string) (*service.IdentityUser, error) {
	form := url.Values{}
	form.Set("code", code)
	form.Set("client_id", p.clientID)
	form.Set("client_secret", p.clientSecret)
	form.Set("redirect_uri", p.redirectURI)
	form.Set("grant_type", "authorization_code")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenEndpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build token request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "token exchange request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read token response")
	}
	if resp.StatusCode != http.StatusOK {
		p.logger.Error("Google token exchange rejected",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)))

		return nil, errors.Errorf("token exchange failed with status %d", resp.StatusCode)
	}

	var tokenResp tokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return nil, errors.Wrap(err, "failed to parse token response")
	}
	if tokenResp.IDToken == "" {
		return nil, errors.New("token response carried no id_token")
	}

	claims, err := p.parseIDToken(tokenResp.IDToken)
	if err != nil {
		return nil, errors.Wrap(err, "invalid ID token")
	}
	if err := p.verifyTokenClaims(claims); err != nil {
		return nil, errors.Wrap(err, "token verification failed")
	}

	p.logger.Info("Google code exchange succeeded",
		slog.String("subject", claims.Sub))

	return &service.IdentityUser{
		Subject:       claims.Sub,
		Email:         claims.Email,
		Name:          claims.Name,
		AvatarURL:     claims.Picture,
		EmailVerified: claims.EmailVerified,
	}, nil
}

// parseIDToken decodes the JWT payload and extracts claims. The token came
// over TLS directly from Google's token endpoint, so the signature is not
// re-verified here.
func (p *identityProvider) parseIDToken(token string) (*idTokenClaims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, errors.New("invalid JWT format")
	}

	decoded, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode token payload")
	}

	var claims idTokenClaims
	if err := json.Unmarshal(decoded, &claims); err != nil {
		return nil, errors.Wrap(err, "failed to parse token claims")
	}

	return &claims, nil
}

// verifyTokenClaims verifies the token claims
func (p *identityProvider) verifyTokenClaims(claims *idTokenClaims) error {
	// Check issuer
	if claims.Iss != "https://accounts.google.com" && claims.Iss != "accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", claims.Iss)
	}

	// Check audience (client ID)
	if claims.Aud != p.clientID {
		return errors.Errorf("invalid audience: expected %s, got %s", p.clientID, claims.Aud)
	}

	// Check expiration
	now := time.Now().Unix()
	if claims.Exp < now {
		return errors.Errorf("token expired: expired at %d, current time %d", claims.Exp, now)
	}

	if claims.Email == "" {
		return errors.New("token carried no email claim")
	}

	return nil
}
