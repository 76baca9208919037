// SPDX-License-Identifier: GPL-3.0-only

package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runProtected(t *testing.T, cfg AuthConfig, header string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/summary", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := VerifyAdminMiddleware(cfg)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	return rec, h(c)
}

func TestVerifyAdminMiddleware(t *testing.T) {
	cfg := AuthConfig{Secret: []byte("test-secret"), TokenTTL: time.Hour}

	token, expiresAt, err := IssueAdminToken(cfg, time.Now())
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	rec, err := runProtected(t, cfg, "Bearer "+token)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestVerifyAdminMiddlewareRejects(t *testing.T) {
	cfg := AuthConfig{Secret: []byte("test-secret"), TokenTTL: time.Hour}

	expired, _, err := IssueAdminToken(cfg, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)
	foreign, _, err := IssueAdminToken(AuthConfig{Secret: []byte("other"), TokenTTL: time.Hour}, time.Now())
	require.NoError(t, err)

	for name, header := range map[string]string{
		"missing":      "",
		"not bearer":   "Basic abc",
		"empty bearer": "Bearer ",
		"garbage":      "Bearer not.a.jwt",
		"expired":      "Bearer " + expired,
		"wrong secret": "Bearer " + foreign,
	} {
		_, err := runProtected(t, cfg, header)
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr, name)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code, name)
	}
}
