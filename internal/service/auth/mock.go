package auth

import (
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"

	"github.com/mapadengue/mapadengue-go/internal/mockdata"
)

// mockSigningKey signs locally issued substitute tokens. The signature
// is never verified client-side; signing just keeps the tokens
// structurally real so expiry decoding works on them.
var mockSigningKey = []byte("mapadengue-mock")

var mockUser = userWire{
	ID:     "usr-0001",
	Nome:   "AGENTE DE CAMPO",
	Email:  mockdata.MockEmail,
	Perfil: "agente",
}

// mockTokenPair issues a substitute session shaped exactly like a live
// login response.
func mockTokenPair() tokenPairWire {
	now := time.Now()
	access := signedToken(jwtlib.MapClaims{
		"sub":  mockUser.ID,
		"name": mockUser.Nome,
		"iat":  now.Unix(),
		"exp":  now.Add(time.Hour).Unix(),
	})
	refresh := signedToken(jwtlib.MapClaims{
		"sub": mockUser.ID,
		"iat": now.Unix(),
		"exp": now.Add(30 * 24 * time.Hour).Unix(),
	})
	return tokenPairWire{AccessToken: access, RefreshToken: refresh, User: mockUser}
}

func signedToken(claims jwtlib.MapClaims) string {
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	signed, err := token.SignedString(mockSigningKey)
	if err != nil {
		// HS256 signing of map claims cannot fail at runtime.
		return ""
	}
	return signed
}

// checkMockCredentials validates against the substitute credential
// pair.
func checkMockCredentials(email, password string) bool {
	return email == mockdata.MockEmail && password == mockdata.MockPassword
}
