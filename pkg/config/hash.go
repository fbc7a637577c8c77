package config

import (
	"crypto"
	// Register the SHA implementations referenced by CryptoHash.
	_ "crypto/sha1"
	_ "crypto/sha256"
	_ "crypto/sha512"

	"github.com/go-playground/validator/v10"
)

// HashAlgorithm names the digest used when signing requests and verifying
// notification signatures.
type HashAlgorithm string

const (
	// HashSHA1 is SHA-1, kept for old integrations.
	HashSHA1 HashAlgorithm = "SHA"
	// HashSHA256 is SHA-256.
	HashSHA256 HashAlgorithm = "SHA-256"
	// HashSHA384 is SHA-384.
	HashSHA384 HashAlgorithm = "SHA-384"
	// HashSHA512 is SHA-512.
	HashSHA512 HashAlgorithm = "SHA-512"
)

// DefaultHashAlgorithm is the algorithm of a fresh Configuration.
const DefaultHashAlgorithm = HashSHA256

// HashAlgorithms lists every accepted algorithm name.
var HashAlgorithms = []HashAlgorithm{HashSHA1, HashSHA256, HashSHA384, HashSHA512}

const hashAlgorithmRule = "oneof=SHA SHA-256 SHA-384 SHA-512"

// CryptoHash maps the algorithm to its crypto.Hash. Unknown names map to 0.
func (h HashAlgorithm) CryptoHash() crypto.Hash {
	switch h {
	case HashSHA1:
		return crypto.SHA1
	case HashSHA256:
		return crypto.SHA256
	case HashSHA384:
		return crypto.SHA384
	case HashSHA512:
		return crypto.SHA512
	}
	return 0
}

// String returns the algorithm name as accepted by SetHashAlgorithm.
func (h HashAlgorithm) String() string {
	return string(h)
}

// parseHashAlgorithm is case sensitive: "sha-256" is rejected.
func parseHashAlgorithm(value string) (HashAlgorithm, error) {
	if err := validate.Var(value, "required,"+hashAlgorithmRule); err != nil {
		return "", newConfigurationError("hash algorithm", value, "is not available", err)
	}
	return HashAlgorithm(value), nil
}

var validate = validator.New()
