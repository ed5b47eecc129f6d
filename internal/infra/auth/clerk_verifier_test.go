package auth

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beautymap/config"
)

func newKeyPair(t *testing.T) (*rsa.PrivateKey, string) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)

	return key, string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))
}

func sign(t *testing.T, key *rsa.PrivateKey, claims ClerkClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func validClaims() ClerkClaims {
	now := time.Now()

	return ClerkClaims{
		AuthorizedParty: "http://localhost:5173",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user_2abc",
			Issuer:    "https://clerk.beautymap.example",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
		},
	}
}

func TestClerkVerifier_Verify(t *testing.T) {
	key, publicPEM := newKeyPair(t)
	otherKey, _ := newKeyPair(t)

	verifier, err := NewClerkVerifier(&config.Config{Clerk: &config.ClerkConfig{
		PublicKey:         publicPEM,
		Issuer:            "https://clerk.beautymap.example",
		AuthorizedParties: []string{"http://localhost:5173"},
	}})
	require.NoError(t, err)

	expired := validClaims()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))

	wrongIssuer := validClaims()
	wrongIssuer.Issuer = "https://elsewhere.example"

	wrongParty := validClaims()
	wrongParty.AuthorizedParty = "https://phishing.example"

	noSubject := validClaims()
	noSubject.Subject = ""

	tests := []struct {
		name    string
		token   string
		wantErr bool
	}{
		{name: "valid token", token: sign(t, key, validClaims())},
		{name: "expired", token: sign(t, key, expired), wantErr: true},
		{name: "wrong issuer", token: sign(t, key, wrongIssuer), wantErr: true},
		{name: "wrong authorized party", token: sign(t, key, wrongParty), wantErr: true},
		{name: "missing subject", token: sign(t, key, noSubject), wantErr: true},
		{name: "foreign signature", token: sign(t, otherKey, validClaims()), wantErr: true},
		{name: "garbage", token: "not-a-jwt", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := verifier.Verify(context.Background(), tt.token)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, "user_2abc", identity.Subject)
		})
	}
}

func TestClerkVerifier_RejectsHMAC(t *testing.T) {
	_, publicPEM := newKeyPair(t)
	verifier, err := NewClerkVerifier(&config.Config{Clerk: &config.ClerkConfig{PublicKey: publicPEM}})
	require.NoError(t, err)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, validClaims()).SignedString([]byte(publicPEM))
	require.NoError(t, err)

	_, err = verifier.Verify(context.Background(), token)
	assert.Error(t, err)
}

func TestNewClerkVerifier_RequiresKey(t *testing.T) {
	_, err := NewClerkVerifier(&config.Config{})
	assert.Error(t, err)

	_, err = NewClerkVerifier(&config.Config{Clerk: &config.ClerkConfig{PublicKey: "garbage"}})
	assert.Error(t, err)
}
