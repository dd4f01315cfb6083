package api

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartUpload(t *testing.T, category, filename, content string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("category", category))

	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return &buf, writer.FormDataContentType()
}

func TestUploadFile(t *testing.T) {
	router, _ := newTestRouter(t)
	token := adminToken(t)

	t.Run("accepted upload returns a reference", func(t *testing.T) {
		body, contentType := multipartUpload(t, "company_logos", "logo.png", "png-bytes")

		req := httptest.NewRequest(http.MethodPost, "/admin/uploads", body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("Authorization", "Bearer "+token)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code)

		var resp map[string]string
		decodeBody(t, rec, &resp)
		assert.True(t, strings.HasPrefix(resp["ref"], "/media/company_logos/"))
		assert.True(t, strings.HasSuffix(resp["ref"], "logo.png"))
	})

	t.Run("disallowed extension is rejected", func(t *testing.T) {
		body, contentType := multipartUpload(t, "company_logos", "logo.exe", "not-an-image")

		req := httptest.NewRequest(http.MethodPost, "/admin/uploads", body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("Authorization", "Bearer "+token)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing category is a bad request", func(t *testing.T) {
		body, contentType := multipartUpload(t, "", "logo.png", "png-bytes")

		req := httptest.NewRequest(http.MethodPost, "/admin/uploads", body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("Authorization", "Bearer "+token)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
