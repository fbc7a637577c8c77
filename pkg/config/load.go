package config

import (
	"context"
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "OPENPAYU"

// Settings is the serialisable form of a Configuration, read from a YAML file
// and environment variables. Derived URLs are not part of it; they are
// computed by Build through SetEnvironment.
//
// Environment names are derived from the field names (OPENPAYU_API_VERSION,
// OPENPAYU_OAUTH_CLIENT_ID, ...). Fields carry no envconfig tag so that only
// prefixed variables are read.
type Settings struct {
	Environment       string `yaml:"environment" split_words:"true"`
	Domain            string `yaml:"domain" split_words:"true"`
	APIPath           string `yaml:"api_path" split_words:"true"`
	VersionPath       string `yaml:"version_path" split_words:"true"`
	APIVersion        string `yaml:"api_version" split_words:"true"`
	HashAlgorithm     string `yaml:"hash_algorithm" split_words:"true"`
	MerchantPosID     string `yaml:"merchant_pos_id" split_words:"true"`
	SignatureKey      string `yaml:"signature_key" split_words:"true"`
	OauthClientID     string `yaml:"oauth_client_id" split_words:"true"`
	OauthClientSecret string `yaml:"oauth_client_secret" split_words:"true"`
	Sender            string `yaml:"sender" split_words:"true"`
	ManifestPath      string `yaml:"manifest_path" split_words:"true"`
}

// DefaultSettings matches the state of New().
func DefaultSettings() Settings {
	return Settings{
		Environment:   string(EnvSecure),
		Domain:        DefaultDomain,
		APIPath:       DefaultAPIPath,
		VersionPath:   DefaultVersionPath,
		APIVersion:    DefaultAPIVersion,
		HashAlgorithm: string(DefaultHashAlgorithm),
		Sender:        DefaultSender,
		ManifestPath:  defaultManifestPath,
	}
}

// Load builds a Configuration from defaults, then the YAML file at path (if
// path is not empty), then OPENPAYU_* environment variables.
func Load(path string) (*Configuration, error) {
	return LoadContext(context.Background(), path)
}

// LoadContext is Load with a context for the file read. path may be any
// location understood by github.com/viant/afs.
func LoadContext(ctx context.Context, path string) (*Configuration, error) {
	s := DefaultSettings()

	if path != "" {
		data, err := storageFS.DownloadWithURL(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err = yaml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, &s); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	cfg, err := s.Build()
	if err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	zap.L().Debug("configuration loaded",
		zap.String("file", path),
		zap.String("environment", cfg.Environment().String()),
		zap.String("service_url", cfg.ServiceURL()))
	return cfg, nil
}

// Build applies s through the validated setters. All invalid fields are
// reported together; no Configuration is returned in that case.
func (s Settings) Build() (*Configuration, error) {
	c := New()

	var errs error
	errs = multierr.Append(errs, c.SetEnvironment(s.Environment, s.Domain, s.APIPath, s.VersionPath))
	errs = multierr.Append(errs, c.SetAPIVersion(s.APIVersion))
	errs = multierr.Append(errs, c.SetHashAlgorithm(s.HashAlgorithm))
	if errs != nil {
		return nil, errs
	}

	c.SetMerchantPosID(s.MerchantPosID)
	c.SetSignatureKey(s.SignatureKey)
	c.SetOAuthClientID(s.OauthClientID)
	c.SetOAuthClientSecret(s.OauthClientSecret)
	if s.Sender != "" {
		c.SetSender(s.Sender)
	}
	if s.ManifestPath != "" {
		c.SetManifestPath(s.ManifestPath)
	}
	return c, nil
}
