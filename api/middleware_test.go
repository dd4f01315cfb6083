package api

import (
	"net/http"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminRoutesRequireAuth(t *testing.T) {
	router, _ := newTestRouter(t)

	t.Run("no token", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/admin/skills", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token signed with the wrong secret", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "admin"})
		signed, err := token.SignedString([]byte("some-other-secret"))
		require.NoError(t, err)

		rec := doRequest(t, router, http.MethodGet, "/admin/skills", signed, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token without a subject", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{})
		signed, err := token.SignedString([]byte(testAdminSecret))
		require.NoError(t, err)

		rec := doRequest(t, router, http.MethodGet, "/admin/skills", signed, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/admin/skills", adminToken(t), nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestPublicRoutesNeedNoAuth(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
