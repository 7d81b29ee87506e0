package mapadengue

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mapadengue/mapadengue-go/internal/mockdata"
	"github.com/mapadengue/mapadengue-go/internal/service/facts"
	"github.com/mapadengue/mapadengue-go/internal/service/municipios"
	"github.com/mapadengue/mapadengue-go/internal/service/risk"
)

type countingTransport struct {
	calls atomic.Int32
}

func (c *countingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	c.calls.Add(1)
	return nil, http.ErrUseLastResponse
}

// In mock mode the whole client must work end to end without a single
// network call.
func TestClient_MockModeEndToEnd(t *testing.T) {
	rt := &countingTransport{}
	client, err := New("http://example.invalid",
		WithMockMode(true),
		WithHTTPClient(&http.Client{Transport: rt}),
	)
	require.NoError(t, err)
	defer client.Close()

	ctx := context.Background()

	login := client.Auth.Login(ctx, mockdata.MockEmail, mockdata.MockPassword)
	require.True(t, login.Success, "login: %v", login.Err)
	assert.NotEmpty(t, client.Tokens().AccessToken())

	muns := client.Municipios.List(ctx, municipios.ListParams{Limit: 5})
	require.True(t, muns.Success, "municipios: %v", muns.Err)
	assert.Len(t, muns.Data, 5)

	pois := client.Facts.List(ctx, facts.ListParams{})
	require.True(t, pois.Success, "facts: %v", pois.Err)
	assert.NotEmpty(t, pois.Data)

	wx := client.Weather.List(ctx)
	require.True(t, wx.Success, "weather: %v", wx.Err)
	assert.NotEmpty(t, wx.Data)

	dash := client.Risk.Dashboard(ctx)
	require.True(t, dash.Success, "risk: %v", dash.Err)
	assert.NotEmpty(t, dash.Data.Municipios)

	analyze := client.Risk.Analyze(ctx, risk.AnalyzeInput{
		Municipio:        "SÃO PAULO",
		TemperaturaC:     28,
		UmidadePct:       75,
		CasosRecentes:    200,
		CasosAnoAnterior: 100,
		Populacao:        500000,
	})
	require.True(t, analyze.Success, "analyze: %v", analyze.Err)
	assert.Equal(t, 80, analyze.Data.Score)

	logout := client.Auth.Logout(ctx)
	require.True(t, logout.Success, "logout: %v", logout.Err)
	assert.Empty(t, client.Tokens().AccessToken())

	assert.Zero(t, rt.calls.Load(), "mock mode issued network calls")
}

func TestClient_WithSessionFile(t *testing.T) {
	path := t.TempDir() + "/session.db"

	client, err := New("http://example.invalid",
		WithMockMode(true),
		WithSessionFile(path),
	)
	require.NoError(t, err)

	login := client.Auth.Login(context.Background(), mockdata.MockEmail, mockdata.MockPassword)
	require.True(t, login.Success)
	access := client.Tokens().AccessToken()
	require.NotEmpty(t, access)
	require.NoError(t, client.Close())

	// A second client on the same file resumes the session.
	reopened, err := New("http://example.invalid",
		WithMockMode(true),
		WithSessionFile(path),
	)
	require.NoError(t, err)
	defer reopened.Close()

	assert.Equal(t, access, reopened.Tokens().AccessToken())
}
