package infra

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSigningKey(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	pkcs1 := string(pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)}))
	parsed, ok := ParseSigningKey(pkcs1)
	require.True(t, ok)
	assert.True(t, key.Equal(parsed))

	escaped := strings.ReplaceAll(pkcs1, "\n", "\\n")
	parsed, ok = ParseSigningKey(escaped)
	require.True(t, ok)
	assert.True(t, key.Equal(parsed))

	_, ok = ParseSigningKey("not a key")
	assert.False(t, ok)
}

func TestReadParseOrGenerateSigningKey_Generates(t *testing.T) {
	key := ReadParseOrGenerateSigningKey(context.Background(), "", "")
	require.NotNil(t, key)
	assert.NoError(t, key.Validate())
}
