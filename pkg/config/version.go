package config

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/viant/afs"
	"go.uber.org/zap"
)

const (
	// DefaultSDKVersion identifies the build when no usable manifest is found.
	DefaultSDKVersion = "Go SDK 0.1.X-DEV / OAUTH"
	// ManifestFile is the name of the SDK manifest at the module root.
	ManifestFile = "manifest.json"
)

// VersionSource tells where an SDKVersion came from.
type VersionSource int

const (
	// VersionFallback means DefaultSDKVersion was used.
	VersionFallback VersionSource = iota
	// VersionFromManifest means the value was read from the manifest.
	VersionFromManifest
)

// String returns "manifest" or "fallback".
func (s VersionSource) String() string {
	if s == VersionFromManifest {
		return "manifest"
	}
	return "fallback"
}

// SDKVersion is the outcome of version discovery.
type SDKVersion struct {
	Engine  string
	Version string
	Source  VersionSource
}

// String renders "<engine> <version>", or DefaultSDKVersion for a fallback.
func (v SDKVersion) String() string {
	if v.Source != VersionFromManifest {
		return DefaultSDKVersion
	}
	return fmt.Sprintf("%s %s", v.Engine, v.Version)
}

var fallbackVersion = SDKVersion{Source: VersionFallback}

type manifest struct {
	Version *string `json:"version"`
	Extra   []struct {
		Engine *string `json:"engine"`
	} `json:"extra"`
}

// defaultManifestPath points two directories above this package, i.e. the
// module root. It is empty when the source location is unknown.
var defaultManifestPath = func() string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return ""
	}
	return filepath.Join(filepath.Dir(file), "..", "..", ManifestFile)
}()

// storageFS reads the manifest and configuration files.
var storageFS = afs.New()

// readSDKVersion never returns an error; every failure falls back.
func readSDKVersion(ctx context.Context, location string) SDKVersion {
	if location == "" {
		return fallbackVersion
	}
	ok, err := storageFS.Exists(ctx, location)
	if err != nil || !ok {
		zap.L().Debug("sdk manifest not found, using fallback version", zap.String("path", location))
		return fallbackVersion
	}
	data, err := storageFS.DownloadWithURL(ctx, location)
	if err != nil {
		zap.L().Debug("sdk manifest unreadable, using fallback version", zap.String("path", location), zap.Error(err))
		return fallbackVersion
	}
	var m manifest
	if err = json.Unmarshal(data, &m); err != nil {
		zap.L().Debug("sdk manifest malformed, using fallback version", zap.String("path", location), zap.Error(err))
		return fallbackVersion
	}
	if m.Version == nil || len(m.Extra) == 0 || m.Extra[0].Engine == nil {
		zap.L().Debug("sdk manifest lacks version or engine, using fallback version", zap.String("path", location))
		return fallbackVersion
	}
	return SDKVersion{Engine: *m.Extra[0].Engine, Version: *m.Version, Source: VersionFromManifest}
}
