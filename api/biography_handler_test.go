package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taranjyot-singh/portfolio-backend/models"
)

func TestGetBiographyBeforeCreation(t *testing.T) {
	router, _ := newTestRouter()

	recorder := doRequest(t, router, http.MethodGet, "/api/biography", "")
	require.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestUpsertBiographyPreservesID(t *testing.T) {
	router, _ := newTestRouter()

	first := doRequest(t, router, http.MethodPost, "/api/biography", `{"content": "First version of the biography."}`)
	require.Equal(t, http.StatusOK, first.Code)

	var created models.Biography
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)

	second := doRequest(t, router, http.MethodPost, "/api/biography", `{"content": "Second version of the biography."}`)
	require.Equal(t, http.StatusOK, second.Code)

	var updated models.Biography
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &updated))
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Second version of the biography.", updated.Content)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	fetched := doRequest(t, router, http.MethodGet, "/api/biography", "")
	require.Equal(t, http.StatusOK, fetched.Code)

	var bio models.Biography
	require.NoError(t, json.Unmarshal(fetched.Body.Bytes(), &bio))
	assert.Equal(t, created.ID, bio.ID)
}

func TestUpsertBiographyMissingContent(t *testing.T) {
	router, _ := newTestRouter()

	recorder := doRequest(t, router, http.MethodPost, "/api/biography", `{}`)
	require.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
}
