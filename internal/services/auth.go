package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/desertthunder/spotview/internal/models"
	"github.com/desertthunder/spotview/internal/shared"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// Authenticator implements [TokenProvider] with the OAuth2 client-credentials grant.
type Authenticator struct {
	tokenURL   string
	httpClient *http.Client
}

// NewAuthenticator creates an Authenticator for the given token endpoint.
//
// tokenURL defaults to the Spotify accounts service and client to [http.DefaultClient].
func NewAuthenticator(tokenURL string, client *http.Client) *Authenticator {
	if tokenURL == "" {
		tokenURL = spotifyTokenURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Authenticator{tokenURL: tokenURL, httpClient: client}
}

// Token posts grant_type=client_credentials with a Basic authorization header and returns the access token.
//
// Every failure wraps [shared.ErrAuthFailed].
func (a *Authenticator) Token(ctx context.Context, creds models.Credentials) (string, error) {
	if !creds.Valid() {
		return "", fmt.Errorf("%w: %w", shared.ErrAuthFailed, shared.ErrMissingCredentials)
	}

	config := &clientcredentials.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		TokenURL:     a.tokenURL,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, a.httpClient)
	token, err := config.Token(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", shared.ErrAuthFailed, err)
	}

	if token.AccessToken == "" {
		return "", fmt.Errorf("%w: empty access_token in response", shared.ErrAuthFailed)
	}

	return token.AccessToken, nil
}
