package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/multierr"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "openpayu.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// TestLoad_Defaults verifies that Load without a file or environment matches New.
func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if cfg.Snapshot() != New().Snapshot() {
		t.Fatalf("Load(\"\") = %+v, want %+v", cfg.Snapshot(), New().Snapshot())
	}
}

func TestLoad_File(t *testing.T) {
	path := writeConfigFile(t, `
environment: secure
domain: snd.payu.com
api_version: "2.1"
hash_algorithm: SHA-512
merchant_pos_id: " 300746 "
signature_key: b6ca15b0d1020e8094d9b5f8d163db54
oauth_client_id: "300746"
oauth_client_secret: 2ee86a66e5d97e3fadc400c9f19b065d
sender: ShopFront
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if cfg.ServiceURL() != "https://secure.snd.payu.com/api/v2_1/" {
		t.Errorf("ServiceURL() = %q", cfg.ServiceURL())
	}
	if cfg.HashAlgorithm() != HashSHA512 {
		t.Errorf("HashAlgorithm() = %q", cfg.HashAlgorithm())
	}
	if cfg.MerchantPosID() != "300746" {
		t.Errorf("MerchantPosID() = %q", cfg.MerchantPosID())
	}
	if cfg.OAuthClientID() != "300746" || cfg.OAuthClientSecret() != "2ee86a66e5d97e3fadc400c9f19b065d" {
		t.Errorf("unexpected OAuth credentials %q/%q", cfg.OAuthClientID(), cfg.OAuthClientSecret())
	}
	if cfg.Sender() != "ShopFront" {
		t.Errorf("Sender() = %q", cfg.Sender())
	}
}

// TestLoad_EnvOverridesFile verifies precedence: defaults < file < environment.
func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, "environment: secure\nsender: FromFile\napi_version: \"2.0\"\n")
	t.Setenv("OPENPAYU_ENVIRONMENT", "custom")
	t.Setenv("OPENPAYU_DOMAIN", "https://payu.internal/")
	t.Setenv("OPENPAYU_SENDER", "FromEnv")
	t.Setenv("OPENPAYU_OAUTH_CLIENT_ID", "env-client")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if cfg.Environment() != EnvCustom {
		t.Errorf("Environment() = %q", cfg.Environment())
	}
	if cfg.ServiceURL() != "https://payu.internal/api/v2_1/" {
		t.Errorf("ServiceURL() = %q", cfg.ServiceURL())
	}
	if cfg.Sender() != "FromEnv" {
		t.Errorf("Sender() = %q", cfg.Sender())
	}
	if cfg.APIVersion() != "2.0" {
		t.Errorf("APIVersion() = %q, want value from file", cfg.APIVersion())
	}
	if cfg.OAuthClientID() != "env-client" {
		t.Errorf("OAuthClientID() = %q", cfg.OAuthClientID())
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := writeConfigFile(t, "environment: [secure\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

// TestSettingsBuild_ReportsAllErrors verifies that every invalid field is
// reported, not only the first one.
func TestSettingsBuild_ReportsAllErrors(t *testing.T) {
	s := DefaultSettings()
	s.Environment = "bogus"
	s.APIVersion = ""
	s.HashAlgorithm = "MD5"

	cfg, err := s.Build()
	if err == nil {
		t.Fatal("expected error")
	}
	if cfg != nil {
		t.Fatal("expected no Configuration on error")
	}

	errs := multierr.Errors(err)
	if len(errs) != 3 {
		t.Fatalf("expected 3 errors, got %d: %v", len(errs), err)
	}
	fields := map[string]bool{}
	for _, e := range errs {
		var cfgErr *ConfigurationError
		if !errors.As(e, &cfgErr) {
			t.Fatalf("expected *ConfigurationError, got %T", e)
		}
		fields[cfgErr.Field] = true
	}
	for _, f := range []string{"environment", "API version", "hash algorithm"} {
		if !fields[f] {
			t.Errorf("missing error for %s", f)
		}
	}
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("OPENPAYU_HASH_ALGORITHM", "MD5")
	_, err := Load("")
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigurationError, got %v", err)
	}
}

// TestLoad_IgnoresUnprefixedEnv verifies that common deployment variables
// without the OPENPAYU_ prefix do not leak into the configuration.
func TestLoad_IgnoresUnprefixedEnv(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("DOMAIN", "evil.example")
	t.Setenv("SENDER", "Other")
	t.Setenv("API_VERSION", "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if cfg.Snapshot() != New().Snapshot() {
		t.Fatalf("Load(\"\") = %+v, want defaults %+v", cfg.Snapshot(), New().Snapshot())
	}
}

func TestLoad_EnvNames(t *testing.T) {
	t.Setenv("OPENPAYU_API_PATH", "rest/")
	t.Setenv("OPENPAYU_VERSION_PATH", "v3/")
	t.Setenv("OPENPAYU_API_VERSION", "3.0")
	t.Setenv("OPENPAYU_HASH_ALGORITHM", "SHA-384")
	t.Setenv("OPENPAYU_MERCHANT_POS_ID", "145227")
	t.Setenv("OPENPAYU_SIGNATURE_KEY", "13a980d4f851f3d9a1cfc792fb1f5e50")
	t.Setenv("OPENPAYU_OAUTH_CLIENT_ID", "145227")
	t.Setenv("OPENPAYU_OAUTH_CLIENT_SECRET", "12f071174cb7eb79d4aac5bc2f07563f")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	s := cfg.Snapshot()
	if s.ServiceURL != "https://secure.payu.com/rest/v3/" {
		t.Errorf("ServiceURL = %q", s.ServiceURL)
	}
	if s.APIVersion != "3.0" || s.HashAlgorithm != HashSHA384 {
		t.Errorf("APIVersion/HashAlgorithm = %q/%q", s.APIVersion, s.HashAlgorithm)
	}
	if s.MerchantPosID != "145227" || s.SignatureKey != "13a980d4f851f3d9a1cfc792fb1f5e50" {
		t.Errorf("legacy credentials = %q/%q", s.MerchantPosID, s.SignatureKey)
	}
	if s.OAuthClientID != "145227" || s.OAuthClientSecret != "12f071174cb7eb79d4aac5bc2f07563f" {
		t.Errorf("OAuth credentials = %q/%q", s.OAuthClientID, s.OAuthClientSecret)
	}
}

// TestLoadContext_FileURL verifies that the config file is read through the
// same storage layer as the manifest, so file:// locations work.
func TestLoadContext_FileURL(t *testing.T) {
	path := writeConfigFile(t, "sender: FromURL\n")

	cfg, err := LoadContext(context.Background(), "file://"+path)
	if err != nil {
		t.Fatalf("LoadContext error = %v", err)
	}
	if cfg.Sender() != "FromURL" {
		t.Fatalf("Sender() = %q", cfg.Sender())
	}
}
