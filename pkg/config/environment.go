package config

import (
	"net/url"
	"strings"
)

// Environment selects how service and OAuth URLs are derived.
type Environment string

const (
	// EnvSecure targets a PayU-hosted domain under the "secure." host prefix.
	EnvSecure Environment = "secure"
	// EnvCustom targets a self-hosted endpoint; the domain carries its own scheme.
	EnvCustom Environment = "custom"
)

const (
	// DefaultDomain is used when SetEnvironment receives an empty domain.
	DefaultDomain = "payu.com"
	// DefaultAPIPath is used when SetEnvironment receives an empty api path.
	DefaultAPIPath = "api/"
	// DefaultVersionPath is used when SetEnvironment receives an empty version path.
	DefaultVersionPath = "v2_1/"
	// OAuthContext is the token endpoint path relative to the domain.
	OAuthContext = "pl/standard/user/oauth/authorize"
)

const environmentRule = "oneof=custom secure"

// String returns the lower-case environment name.
func (e Environment) String() string {
	return string(e)
}

// endpoints is the result of a successful derivation. It is applied to the
// Configuration as a whole or not at all.
type endpoints struct {
	environment   Environment
	serviceDomain string
	serviceURL    string
	oauthEndpoint string
	// keepDomain leaves serviceDomain as it was (custom environments).
	keepDomain bool
}

// deriveEndpoints validates the input and builds both URLs without touching
// any shared state.
func deriveEndpoints(environment, domain, api, version string) (*endpoints, error) {
	env := strings.ToLower(environment)
	if err := validate.Var(env, "required,"+environmentRule); err != nil {
		return nil, newConfigurationError("environment", env, "is not valid environment", err)
	}

	domain = strings.TrimRight(strings.ToLower(strings.TrimSpace(domain)), "/")
	if domain == "" {
		domain = DefaultDomain
	}
	if api == "" {
		api = DefaultAPIPath
	}
	if version == "" {
		version = DefaultVersionPath
	}

	var base *url.URL
	switch Environment(env) {
	case EnvSecure:
		if err := validate.Var(domain, "hostname_rfc1123"); err != nil {
			return nil, newConfigurationError("domain", domain, "must be a bare host name in secure environment", err)
		}
		base = &url.URL{Scheme: "https", Host: "secure." + domain, Path: "/"}
	case EnvCustom:
		if err := validate.Var(domain, "http_url"); err != nil {
			return nil, newConfigurationError("domain", domain, "must be an absolute http(s) URL in custom environment", err)
		}
		u, err := url.Parse(domain)
		if err != nil {
			return nil, newConfigurationError("domain", domain, "cannot be parsed", err)
		}
		if u.Path == "" {
			u.Path = "/"
		}
		u.RawQuery, u.Fragment = "", ""
		base = u
	}

	ep := &endpoints{
		environment:   Environment(env),
		serviceURL:    base.JoinPath(api, version).String(),
		oauthEndpoint: base.JoinPath(OAuthContext).String(),
		keepDomain:    Environment(env) == EnvCustom,
	}
	if !ep.keepDomain {
		ep.serviceDomain = domain + "/"
	}
	return ep, nil
}
