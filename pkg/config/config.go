// Package config holds the settings shared by every OpenPayU client
// component: target environment and derived endpoints, legacy and OAuth
// credentials, API version, hash algorithm and the SDK identification string.
package config

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
)

const (
	// DefaultAPIVersion is the API version of a fresh Configuration.
	DefaultAPIVersion = "2.1"
	// DefaultSender identifies the calling application when none is set.
	DefaultSender = "Generic"
)

// Configuration is the SDK settings store. It is safe for concurrent use;
// the zero value is not usable, create one with New.
type Configuration struct {
	mu sync.RWMutex

	environment   Environment
	serviceDomain string
	serviceURL    string
	oauthEndpoint string

	merchantPosID string
	signatureKey  string

	oauthClientID     string
	oauthClientSecret string

	apiVersion    string
	hashAlgorithm HashAlgorithm
	sender        string
	manifestPath  string
}

// New returns a Configuration with defaults applied and the secure
// payu.com endpoints derived.
func New() *Configuration {
	c := &Configuration{
		apiVersion:    DefaultAPIVersion,
		hashAlgorithm: DefaultHashAlgorithm,
		sender:        DefaultSender,
		manifestPath:  defaultManifestPath,
	}
	ep, err := deriveEndpoints(string(EnvSecure), DefaultDomain, DefaultAPIPath, DefaultVersionPath)
	if err != nil {
		panic(fmt.Sprintf("config: default endpoints: %v", err))
	}
	c.applyEndpoints(ep)
	return c
}

// SetAPIVersion stores version verbatim. An empty version is rejected with
// a *ConfigurationError.
func (c *Configuration) SetAPIVersion(version string) error {
	if version == "" {
		return newConfigurationError("API version", version, "must not be empty", nil)
	}
	c.mu.Lock()
	c.apiVersion = version
	c.mu.Unlock()
	return nil
}

// APIVersion returns the API version sent with requests.
func (c *Configuration) APIVersion() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.apiVersion
}

// SetHashAlgorithm accepts one of SHA, SHA-256, SHA-384 or SHA-512.
func (c *Configuration) SetHashAlgorithm(value string) error {
	h, err := parseHashAlgorithm(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.hashAlgorithm = h
	c.mu.Unlock()
	return nil
}

// HashAlgorithm returns the digest used for signatures.
func (c *Configuration) HashAlgorithm() HashAlgorithm {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hashAlgorithm
}

// SetEnvironment selects the environment and derives the service URL and
// OAuth endpoint from it. environment and domain are case-insensitive;
// surrounding whitespace in environment is not accepted.
// Empty domain, api or version fall back to DefaultDomain, DefaultAPIPath and
// DefaultVersionPath.
//
// For EnvSecure domain must be a bare host name and the URLs are rooted at
// https://secure.<domain>/. For EnvCustom domain must be an absolute http(s)
// URL used as is. On error nothing is changed.
func (c *Configuration) SetEnvironment(environment, domain, api, version string) error {
	ep, err := deriveEndpoints(environment, domain, api, version)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.applyEndpoints(ep)
	c.mu.Unlock()

	zap.L().Debug("environment configured",
		zap.String("environment", ep.environment.String()),
		zap.String("service_url", ep.serviceURL),
		zap.String("oauth_endpoint", ep.oauthEndpoint))
	return nil
}

// applyEndpoints must be called with mu held (or before c is shared).
func (c *Configuration) applyEndpoints(ep *endpoints) {
	c.environment = ep.environment
	c.serviceURL = ep.serviceURL
	c.oauthEndpoint = ep.oauthEndpoint
	if !ep.keepDomain {
		c.serviceDomain = ep.serviceDomain
	}
}

// ServiceURL is the base address for API calls, e.g. https://secure.payu.com/api/v2_1/.
func (c *Configuration) ServiceURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.serviceURL
}

// OAuthEndpoint is the URL used to obtain access tokens.
func (c *Configuration) OAuthEndpoint() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.oauthEndpoint
}

// Environment returns the selected environment.
func (c *Configuration) Environment() Environment {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.environment
}

// ServiceDomain is the last secure domain with a trailing slash. Custom
// environments leave it untouched.
func (c *Configuration) ServiceDomain() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.serviceDomain
}

// SetMerchantPosID stores the POS id with surrounding whitespace removed.
//
// Deprecated: use OAuth client credentials.
func (c *Configuration) SetMerchantPosID(value string) {
	c.mu.Lock()
	c.merchantPosID = strings.TrimSpace(value)
	c.mu.Unlock()
}

// MerchantPosID returns the POS id used for basic auth.
//
// Deprecated: use OAuth client credentials.
func (c *Configuration) MerchantPosID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.merchantPosID
}

// SetSignatureKey stores the signature key with surrounding whitespace removed.
//
// Deprecated: use OAuth client credentials.
func (c *Configuration) SetSignatureKey(value string) {
	c.mu.Lock()
	c.signatureKey = strings.TrimSpace(value)
	c.mu.Unlock()
}

// SignatureKey returns the second key of the POS.
//
// Deprecated: use OAuth client credentials.
func (c *Configuration) SignatureKey() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.signatureKey
}

// SetOAuthClientID stores the OAuth client_id as given.
func (c *Configuration) SetOAuthClientID(value string) {
	c.mu.Lock()
	c.oauthClientID = value
	c.mu.Unlock()
}

// OAuthClientID returns the OAuth client_id.
func (c *Configuration) OAuthClientID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.oauthClientID
}

// SetOAuthClientSecret stores the OAuth client_secret as given.
func (c *Configuration) SetOAuthClientSecret(value string) {
	c.mu.Lock()
	c.oauthClientSecret = value
	c.mu.Unlock()
}

// OAuthClientSecret returns the OAuth client_secret.
func (c *Configuration) OAuthClientSecret() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.oauthClientSecret
}

// SetSender names the calling application in outbound requests.
func (c *Configuration) SetSender(value string) {
	c.mu.Lock()
	c.sender = value
	c.mu.Unlock()
}

// Sender returns the calling application name.
func (c *Configuration) Sender() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sender
}

// SetManifestPath changes where SDKVersion looks for the manifest. Any
// location understood by github.com/viant/afs is accepted.
func (c *Configuration) SetManifestPath(path string) {
	c.mu.Lock()
	c.manifestPath = path
	c.mu.Unlock()
}

// ManifestPath returns the manifest location used by SDKVersion.
func (c *Configuration) ManifestPath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.manifestPath
}

// FullSenderName returns "<sender>@<sdk version>".
func (c *Configuration) FullSenderName() string {
	return fmt.Sprintf("%s@%s", c.Sender(), c.SDKVersion())
}

// SDKVersion returns "<engine> <version>" from the manifest, or
// DefaultSDKVersion when the manifest is missing or incomplete.
func (c *Configuration) SDKVersion() string {
	return c.ResolveSDKVersion(context.Background()).String()
}

// ResolveSDKVersion reads the manifest on every call and reports which path
// was taken. It never fails.
func (c *Configuration) ResolveSDKVersion(ctx context.Context) SDKVersion {
	return readSDKVersion(ctx, c.ManifestPath())
}

// Snapshot is a point-in-time copy of a Configuration.
type Snapshot struct {
	Environment       Environment   `yaml:"environment" json:"environment"`
	ServiceDomain     string        `yaml:"service_domain" json:"service_domain"`
	ServiceURL        string        `yaml:"service_url" json:"service_url"`
	OAuthEndpoint     string        `yaml:"oauth_endpoint" json:"oauth_endpoint"`
	MerchantPosID     string        `yaml:"merchant_pos_id" json:"merchant_pos_id"`
	SignatureKey      string        `yaml:"signature_key" json:"signature_key"`
	OAuthClientID     string        `yaml:"oauth_client_id" json:"oauth_client_id"`
	OAuthClientSecret string        `yaml:"oauth_client_secret" json:"oauth_client_secret"`
	APIVersion        string        `yaml:"api_version" json:"api_version"`
	HashAlgorithm     HashAlgorithm `yaml:"hash_algorithm" json:"hash_algorithm"`
	Sender            string        `yaml:"sender" json:"sender"`
	ManifestPath      string        `yaml:"manifest_path" json:"manifest_path"`
}

// Snapshot copies every field under a single read lock.
func (c *Configuration) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Snapshot{
		Environment:       c.environment,
		ServiceDomain:     c.serviceDomain,
		ServiceURL:        c.serviceURL,
		OAuthEndpoint:     c.oauthEndpoint,
		MerchantPosID:     c.merchantPosID,
		SignatureKey:      c.signatureKey,
		OAuthClientID:     c.oauthClientID,
		OAuthClientSecret: c.oauthClientSecret,
		APIVersion:        c.apiVersion,
		HashAlgorithm:     c.hashAlgorithm,
		Sender:            c.sender,
		ManifestPath:      c.manifestPath,
	}
}
