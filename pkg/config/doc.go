// Package config provides configuration management for the OpenPayU Go SDK.
//
// A Configuration holds everything the HTTP client and request signing code
// need to know about the merchant: which PayU environment to talk to, the
// credentials to authenticate with, the API version and the hash algorithm.
// It is an explicit value passed to collaborators, not global state.
//
// # Basic Configuration
//
// New returns a Configuration targeting the production secure environment:
//
//	cfg := config.New()
//	cfg.SetOAuthClientID("145227")
//	cfg.SetOAuthClientSecret("12f071174cb7eb79d4aac5bc2f07563f")
//
//	cfg.ServiceURL()    // https://secure.payu.com/api/v2_1/
//	cfg.OAuthEndpoint() // https://secure.payu.com/pl/standard/user/oauth/authorize
//
// # Environments
//
// Two environments are available:
//
//	config.EnvSecure - PayU hosted, URLs rooted at https://secure.<domain>/
//	config.EnvCustom - self hosted, the domain is a full URL including scheme
//
// The sandbox is a secure environment on another domain:
//
//	if err := cfg.SetEnvironment("secure", "snd.payu.com", "", ""); err != nil {
//		return err
//	}
//
// A custom endpoint supplies its own scheme:
//
//	err := cfg.SetEnvironment("custom", "https://payu.internal:8443/", "api/", "v2_1/")
//
// SetEnvironment updates the environment, service URL and OAuth endpoint
// together. A rejected call leaves all of them unchanged.
//
// # Legacy Credentials
//
// MerchantPosID and SignatureKey are kept for basic-auth integrations and are
// deprecated in favour of OAuth.
//
// # Hash Algorithm
//
// One of SHA, SHA-256 (default), SHA-384 or SHA-512. HashAlgorithm.CryptoHash
// returns the matching crypto.Hash.
//
// # SDK Version
//
// SDKVersion reads manifest.json from the module root:
//
//	{"version": "0.1.0", "extra": [{"engine": "Go SDK"}]}
//
// and returns "Go SDK 0.1.0". When the manifest is missing or incomplete it
// returns DefaultSDKVersion. ResolveSDKVersion reports which of the two
// happened. FullSenderName combines the sender with the version:
//
//	cfg.SetSender("MyShop")
//	cfg.FullSenderName() // MyShop@Go SDK 0.1.0
//
// # Loading
//
// Load reads an optional YAML file and OPENPAYU_* environment variables:
//
//	environment: secure
//	domain: snd.payu.com
//	oauth_client_id: "300746"
//	oauth_client_secret: 2ee86a66e5d97e3fadc400c9f19b065d
//
//	cfg, err := config.Load("openpayu.yaml")
//
// Environment variables take precedence over the file.
//
// # Thread Safety
//
// All methods are safe for concurrent use. Snapshot returns a consistent copy
// of every field.
package config
