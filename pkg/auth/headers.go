package auth

import (
	"net/http"

	"github.com/openpayu/openpayu-go/pkg/config"
)

const (
	// AuthorizationHeader carries "Basic ..." for legacy POS credentials or
	// "Bearer ..." for OAuth access tokens.
	AuthorizationHeader = "Authorization"
	// UserAgentHeader identifies the calling application and SDK build,
	// e.g. "MyShop@Go SDK 0.1.0".
	UserAgentHeader = "User-Agent"
	// ContentTypeHeader and AcceptHeader are always JSON for the REST API.
	ContentTypeHeader = "Content-Type"
	AcceptHeader      = "Accept"

	// JSONContentType is the media type of every API request and response.
	JSONContentType = "application/json"
)

// Headers returns the identification headers every API request carries.
// Authorization is not included; see BasicAuth and TokenSource.
func Headers(cfg *config.Configuration) http.Header {
	h := http.Header{}
	h.Set(UserAgentHeader, cfg.FullSenderName())
	h.Set(ContentTypeHeader, JSONContentType)
	h.Set(AcceptHeader, JSONContentType)
	return h
}
