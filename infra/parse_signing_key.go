package infra

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"log"
	"os"
	"strings"

	"github.com/police-department/evidence-manager/utils"
)

func ParseSigningKey(privateKeyString string) (*rsa.PrivateKey, bool) {
	// docker-compose escapes the newlines of multi-line env variables
	privateKeyString = strings.ReplaceAll(privateKeyString, "\\n", "\n")
	block, _ := pem.Decode([]byte(privateKeyString))
	if block == nil {
		return nil, false
	}

	switch block.Type {
	case "RSA PRIVATE KEY":
		key, err := x509.ParsePKCS1PrivateKey(block.Bytes)
		return key, err == nil
	case "PRIVATE KEY":
		key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, false
		}
		rsaKey, ok := key.(*rsa.PrivateKey)
		return rsaKey, ok
	}
	return nil, false
}

// ReadParseOrGenerateSigningKey reads the key from the env value, then from the key file. With neither,
// it generates a throwaway key, which invalidates every token at restart.
func ReadParseOrGenerateSigningKey(ctx context.Context, signingKey, signingKeyFile string) *rsa.PrivateKey {
	logger := utils.LoggerFromContext(ctx)

	if signingKey != "" {
		key, ok := ParseSigningKey(signingKey)
		if !ok {
			log.Fatalf("failed to parse AUTHENTICATION_JWT_SIGNING_KEY as a PEM encoded RSA private key")
		}
		return key
	}

	if signingKeyFile != "" {
		content, err := os.ReadFile(signingKeyFile)
		if err != nil {
			log.Fatalf("failed to read AUTHENTICATION_JWT_SIGNING_KEY_FILE: %s", err)
		}
		key, ok := ParseSigningKey(string(content))
		if !ok {
			log.Fatalf("failed to parse %s as a PEM encoded RSA private key", signingKeyFile)
		}
		return key
	}

	logger.WarnContext(ctx, "no signing key configured, generating a random one: tokens will not survive a restart")
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		log.Fatalf("failed to generate a signing key: %s", err)
	}
	return key
}
