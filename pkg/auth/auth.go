// Package auth derives request credentials from a config.Configuration:
// OAuth client-credentials token sources and the legacy basic-auth header.
// It performs no network traffic itself; token requests happen only when a
// caller asks the returned oauth2 types for a token.
package auth

import (
	"context"
	"encoding/base64"
	"errors"

	"github.com/openpayu/openpayu-go/pkg/config"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

var (
	// ErrMissingClientCredentials is returned when the OAuth client id or secret is empty.
	ErrMissingClientCredentials = errors.New("oauth client id and secret are required")
	// ErrMissingPosCredentials is returned when the POS id or signature key is empty.
	ErrMissingPosCredentials = errors.New("merchant pos id and signature key are required")
)

// ClientCredentials builds a client_credentials grant configuration against
// the configured OAuth endpoint. PayU expects the credentials in the form
// body, so AuthStyleInParams is used.
func ClientCredentials(cfg *config.Configuration) (*clientcredentials.Config, error) {
	id, secret := cfg.OAuthClientID(), cfg.OAuthClientSecret()
	if id == "" || secret == "" {
		return nil, ErrMissingClientCredentials
	}
	return &clientcredentials.Config{
		ClientID:     id,
		ClientSecret: secret,
		TokenURL:     cfg.OAuthEndpoint(),
		AuthStyle:    oauth2.AuthStyleInParams,
	}, nil
}

// TokenSource returns a caching token source for the configured client.
// Tokens are fetched lazily on the first Token call.
func TokenSource(ctx context.Context, cfg *config.Configuration) (oauth2.TokenSource, error) {
	cc, err := ClientCredentials(cfg)
	if err != nil {
		return nil, err
	}
	zap.L().Debug("oauth token source created",
		zap.String("token_url", cc.TokenURL),
		zap.String("client_id", cc.ClientID))
	return cc.TokenSource(ctx), nil
}

// BasicAuth returns the Authorization header value for the legacy
// POS id / signature key flow.
//
// Deprecated: use TokenSource.
func BasicAuth(cfg *config.Configuration) (string, error) {
	posID, key := cfg.MerchantPosID(), cfg.SignatureKey()
	if posID == "" || key == "" {
		return "", ErrMissingPosCredentials
	}
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(posID+":"+key)), nil
}
