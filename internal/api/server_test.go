package api_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"net/http"
	"net/http/httptest"
	"settleup/internal/api"
	"settleup/internal/api/handler/v1handler"
	"testing"

	"settleup/pkg/logger"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func testOptions(t *testing.T) api.Options {
	t.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	pubASN1, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)

	return api.Options{
		SecHandlerOptions: &v1handler.SecHandlerOptions{
			PublicKey: string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubASN1})),
		},
		MetricsPath:    "/metrics",
		AllowedOrigins: []string{"*"},
	}
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	return rec
}

func TestNewHandler_Routes(t *testing.T) {
	h, err := api.NewHandler(api.Deps{}, testOptions(t))
	require.NoError(t, err)

	rec := get(t, h, "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", rec.Body.String())

	rec = get(t, h, "/specs/v1.yaml")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Body.String(), "openapi: 3.0.3")

	rec = get(t, h, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = get(t, h, "/v1/docs/")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = get(t, h, "/v1/sessions")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"code":"UNAUTHORIZED","message":"missing bearer token"}`, rec.Body.String())
	require.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	rec = get(t, h, "/debug/pprof/")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNewHandler_Pprof(t *testing.T) {
	opts := testOptions(t)
	opts.EnablePprof = true
	h, err := api.NewHandler(api.Deps{}, opts)
	require.NoError(t, err)

	rec := get(t, h, "/debug/pprof/")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestNewHandler_HealthCheckFails(t *testing.T) {
	h, err := api.NewHandler(api.Deps{
		Ping: func(context.Context) error { return errors.New("connection refused") },
	}, testOptions(t))
	require.NoError(t, err)

	rec := get(t, h, "/healthz")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestNewServer_InvalidPublicKey(t *testing.T) {
	opts := testOptions(t)
	opts.SecHandlerOptions = &v1handler.SecHandlerOptions{PublicKey: "garbage"}

	_, err := api.NewServer(api.Deps{}, opts)
	require.Error(t, err)
}
