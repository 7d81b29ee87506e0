package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mapadengue/mapadengue-go/internal/domain"
	"github.com/mapadengue/mapadengue-go/internal/mockdata"
	"github.com/mapadengue/mapadengue-go/internal/service"
	"github.com/mapadengue/mapadengue-go/internal/token"
	"github.com/mapadengue/mapadengue-go/internal/transport"
)

func newService(t *testing.T, handler http.HandlerFunc) (*Service, token.Store) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	store := token.NewMemoryStore()
	tr := transport.New(srv.URL,
		transport.WithTokenStore(store),
		transport.WithRetryBackoff(time.Millisecond),
	)
	return New(service.Deps{Transport: tr}), store
}

func TestLogin_Live(t *testing.T) {
	svc, store := newService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login", r.URL.Path)
		var creds credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		require.Equal(t, "vigia@prefeitura.gov.br", creds.Email)

		json.NewEncoder(w).Encode(tokenPairWire{
			AccessToken:  "live-access",
			RefreshToken: "live-refresh",
			User:         userWire{ID: "usr-42", Nome: "MARIA DA SILVA", Email: creds.Email, Perfil: "supervisor"},
		})
	})

	res := svc.Login(context.Background(), "vigia@prefeitura.gov.br", "s3cret")
	require.True(t, res.Success, "live login failed: %v", res.Err)
	assert.Equal(t, "usr-42", res.Data.ID)
	assert.Equal(t, "Maria da Silva", res.Data.Nome)
	assert.Equal(t, "live-access", store.AccessToken())
	assert.Equal(t, "live-refresh", store.RefreshToken())
}

func TestLogin_404FallsBackToSubstituteCredentials(t *testing.T) {
	svc, store := newService(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"não encontrado"}`, http.StatusNotFound)
	})

	res := svc.Login(context.Background(), mockdata.MockEmail, mockdata.MockPassword)
	require.True(t, res.Success, "fallback login failed: %v", res.Err)
	assert.Equal(t, mockdata.MockEmail, res.Data.Email)

	// The substitute session is a real decodable JWT pair.
	assert.NotEmpty(t, store.AccessToken())
	assert.False(t, token.IsExpired(store.AccessToken()))
}

func TestLogin_404WithWrongCredentials(t *testing.T) {
	svc, store := newService(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"não encontrado"}`, http.StatusNotFound)
	})

	res := svc.Login(context.Background(), mockdata.MockEmail, "wrong")
	require.False(t, res.Success, "wrong substitute credentials must be rejected")
	assert.Equal(t, domain.ErrorKindAuth, res.Err.Kind)
	assert.Equal(t, 401, res.Err.Status)
	assert.Empty(t, store.AccessToken())
}

func TestLogin_LiveRejectionNeverFallsBack(t *testing.T) {
	svc, _ := newService(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"credenciais inválidas","code":"invalid_credentials"}`, http.StatusUnauthorized)
	})

	// Even the substitute pair must not open a session when the live
	// endpoint exists and says no.
	res := svc.Login(context.Background(), mockdata.MockEmail, mockdata.MockPassword)
	require.False(t, res.Success)
	assert.Equal(t, domain.ErrorKindAuth, res.Err.Kind)
	assert.Equal(t, "invalid_credentials", res.Err.Code)
}

func TestLogin_MockMode(t *testing.T) {
	store := token.NewMemoryStore()
	tr := transport.New("http://example.invalid", transport.WithTokenStore(store))
	svc := New(service.Deps{Transport: tr, MockAPI: func() bool { return true }})

	res := svc.Login(context.Background(), mockdata.MockEmail, mockdata.MockPassword)
	require.True(t, res.Success)
	assert.Equal(t, "Agente de Campo", res.Data.Nome)
	assert.NotEmpty(t, store.AccessToken())

	rejected := svc.Login(context.Background(), "other@example.com", mockdata.MockPassword)
	assert.False(t, rejected.Success)
	assert.Equal(t, domain.ErrorKindAuth, rejected.Err.Kind)
}

func TestLogout_AlwaysClearsLocally(t *testing.T) {
	svc, store := newService(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"não encontrado"}`, http.StatusNotFound)
	})
	require.NoError(t, store.SetTokens("a", "r"))

	res := svc.Logout(context.Background())
	require.True(t, res.Success)
	assert.Empty(t, store.AccessToken())
	assert.Empty(t, store.RefreshToken())
}

func TestRefresh_WithoutSession(t *testing.T) {
	svc, _ := newService(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("refresh must not hit the network without a stored token")
	})

	res := svc.Refresh(context.Background())
	require.False(t, res.Success)
	assert.Equal(t, domain.ErrorKindAuth, res.Err.Kind)
}

func TestRefresh_Live(t *testing.T) {
	svc, store := newService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/refresh", r.URL.Path)
		var req refreshRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "old-refresh", req.RefreshToken)

		json.NewEncoder(w).Encode(tokenPairWire{
			AccessToken:  "new-access",
			RefreshToken: "new-refresh",
			User:         userWire{ID: "usr-42", Nome: "MARIA DA SILVA"},
		})
	})
	require.NoError(t, store.SetTokens("old-access", "old-refresh"))

	res := svc.Refresh(context.Background())
	require.True(t, res.Success, "refresh failed: %v", res.Err)
	assert.Equal(t, "new-access", store.AccessToken())
	assert.Equal(t, "new-refresh", store.RefreshToken())
}

func TestMockTokenPair_Decodable(t *testing.T) {
	pair := mockTokenPair()

	exp, ok := token.Expiration(pair.AccessToken)
	require.True(t, ok, "substitute access token must carry a decodable exp")
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)

	exp, ok = token.Expiration(pair.RefreshToken)
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), exp, time.Minute)
}
