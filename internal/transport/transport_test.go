package transport

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mapadengue/mapadengue-go/internal/domain"
	"github.com/mapadengue/mapadengue-go/internal/token"
)

// flakyTransport emits network errors for the first n calls, then
// delegates.
type flakyTransport struct {
	failures int
	calls    atomic.Int32
	next     http.RoundTripper
}

func (f *flakyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	n := f.calls.Add(1)
	if int(n) <= f.failures {
		return nil, errors.New("connection reset by peer")
	}
	return f.next.RoundTrip(req)
}

func newTestClient(t *testing.T, ft *flakyTransport, opts ...Option) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	}))
	t.Cleanup(srv.Close)

	if ft.next == nil {
		ft.next = http.DefaultTransport
	}
	opts = append([]Option{
		WithHTTPClient(&http.Client{Transport: ft}),
		WithRetryBackoff(5 * time.Millisecond),
	}, opts...)
	return New(srv.URL, opts...), srv
}

func TestDo_RetriesOnceOnNetworkFailure(t *testing.T) {
	ft := &flakyTransport{failures: 1}
	c, _ := newTestClient(t, ft)

	body, apiErr := c.Do(context.Background(), http.MethodGet, "/facts", nil, nil)
	if apiErr != nil {
		t.Fatalf("Do() error = %v", apiErr)
	}
	if string(body) != `{"ok":true}` {
		t.Errorf("body = %s", body)
	}
	if got := ft.calls.Load(); got != 2 {
		t.Errorf("attempts = %d, want 2", got)
	}
}

func TestDo_SecondNetworkFailureSurfaces(t *testing.T) {
	ft := &flakyTransport{failures: 10}
	c, _ := newTestClient(t, ft)

	_, apiErr := c.Do(context.Background(), http.MethodGet, "/facts", nil, nil)
	if apiErr == nil {
		t.Fatal("expected an error")
	}
	if apiErr.Kind != domain.ErrorKindNetwork {
		t.Errorf("Kind = %s, want %s", apiErr.Kind, domain.ErrorKindNetwork)
	}
	if apiErr.Status != 0 {
		t.Errorf("Status = %d, want 0", apiErr.Status)
	}
	// Exactly one retry, never a third attempt.
	if got := ft.calls.Load(); got != 2 {
		t.Errorf("attempts = %d, want 2", got)
	}
}

func TestDo_NoRetryOnServerError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, `{"message":"internal"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, WithRetryBackoff(time.Millisecond))

	_, apiErr := c.Do(context.Background(), http.MethodGet, "/facts", nil, nil)
	if apiErr == nil || apiErr.Kind != domain.ErrorKindServer {
		t.Fatalf("apiErr = %v, want server kind", apiErr)
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("attempts = %d, want 1", got)
	}
}

func TestDo_UnauthorizedClearsSessionAndNotifies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"token expirado"}`))
	}))
	defer srv.Close()

	store := token.NewMemoryStore()
	store.SetTokens("stale-access", "stale-refresh")

	var notified bool
	c := New(srv.URL,
		WithTokenStore(store),
		WithOnUnauthorized(func() { notified = true }),
	)

	_, apiErr := c.Do(context.Background(), http.MethodGet, "/auth/me", nil, nil)
	if apiErr == nil || apiErr.Kind != domain.ErrorKindAuth {
		t.Fatalf("apiErr = %v, want auth kind", apiErr)
	}
	if store.AccessToken() != "" {
		t.Error("session should be cleared after 401")
	}
	if !notified {
		t.Error("OnUnauthorized callback not invoked")
	}
	if apiErr.Message != "token expirado" {
		t.Errorf("Message = %q", apiErr.Message)
	}
}

func TestDo_AttachesBearerAndHeaders(t *testing.T) {
	var gotAuth, gotKey, gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotKey = r.Header.Get("X-API-Key")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	store := token.NewMemoryStore()
	store.SetTokens("my-access", "my-refresh")

	c := New(srv.URL, WithTokenStore(store), WithAPIKey("secret-key"))
	if _, apiErr := c.Do(context.Background(), http.MethodGet, "/municipios", nil, nil); apiErr != nil {
		t.Fatalf("Do() error = %v", apiErr)
	}

	if gotAuth != "Bearer my-access" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotKey != "secret-key" {
		t.Errorf("X-API-Key = %q", gotKey)
	}
	if gotRequestID == "" {
		t.Error("expected an X-Request-ID")
	}
}

func TestDo_NoBearerWhenLoggedOut(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	if _, apiErr := c.Do(context.Background(), http.MethodGet, "/municipios", nil, nil); apiErr != nil {
		t.Fatalf("Do() error = %v", apiErr)
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q, want empty", gotAuth)
	}
}

func TestDo_CancelAbortsBackoff(t *testing.T) {
	ft := &flakyTransport{failures: 10}
	c, _ := newTestClient(t, ft, WithRetryBackoff(5*time.Second))

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	_, apiErr := c.Do(ctx, http.MethodGet, "/facts", nil, nil)
	if apiErr == nil || apiErr.Kind != domain.ErrorKindNetwork {
		t.Fatalf("apiErr = %v, want network kind", apiErr)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("cancellation took %v, backoff was not abandoned", elapsed)
	}
	// The late retry must never fire.
	time.Sleep(50 * time.Millisecond)
	if got := ft.calls.Load(); got != 1 {
		t.Errorf("attempts = %d, want 1", got)
	}
}

func TestGetJSON_DecodesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("limit") != "5" {
			t.Errorf("limit = %q", r.URL.Query().Get("limit"))
		}
		w.Write([]byte(`{"total":3}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	var out struct {
		Total int `json:"total"`
	}
	q := url.Values{}
	q.Set("limit", "5")
	if apiErr := c.GetJSON(context.Background(), "/municipios", q, &out); apiErr != nil {
		t.Fatalf("GetJSON() error = %v", apiErr)
	}
	if out.Total != 3 {
		t.Errorf("Total = %d", out.Total)
	}
}
