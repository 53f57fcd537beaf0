package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/infrastructure/memory"
)

func TestRequestID_SeGeneraSiFalta(t *testing.T) {
	app := buildAPIApp(memory.NewStore(memory.DefaultSeed()))

	resp := apiGet(t, app, "/api/cases")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"), "la respuesta debe llevar un request id")
}

func TestRequestID_SeRespetaElDelCliente(t *testing.T) {
	app := buildAPIApp(memory.NewStore(memory.DefaultSeed()))

	req := httptest.NewRequest(http.MethodGet, "/api/cases", nil)
	req.Header.Set("Authorization", validToken(t))
	req.Header.Set("X-Request-ID", "req-propio-01")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "req-propio-01", resp.Header.Get("X-Request-ID"))
}
