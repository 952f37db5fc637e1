package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockroom-backend/internal/models"
)

func TestItemCRUD(t *testing.T) {
	e, _ := newTestServer(t)

	// Empty list comes back as an empty array, not null
	rec := doJSON(e, http.MethodGet, "/api/items", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	// Create
	rec = doJSON(e, http.MethodPost, "/api/items", `{"name":"widget"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var item models.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "widget", item.Name)

	// Get
	rec = doJSON(e, http.MethodGet, "/api/items/"+item.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)

	// Update
	rec = doJSON(e, http.MethodPut, "/api/items/"+item.ID, `{"name":"gadget"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(e, http.MethodGet, "/api/items/"+item.ID, "")
	assert.Contains(t, rec.Body.String(), "gadget")

	// Delete, then the id is gone
	rec = doJSON(e, http.MethodDelete, "/api/items/"+item.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(e, http.MethodGet, "/api/items/"+item.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestItemValidation(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/items", `{"name":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Whitespace does not count toward the minimum length
	rec = doJSON(e, http.MethodPost, "/api/items", `{"name":"  a  "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(e, http.MethodPut, "/api/items/some-id", `{"name":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestItemUnknownID(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/api/items/no-such-id", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(e, http.MethodPut, "/api/items/no-such-id", `{"name":"widget"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(e, http.MethodDelete, "/api/items/no-such-id", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCategoryCRUD(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/categories", `{"name":"tools"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var category models.Category
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &category))
	assert.NotEmpty(t, category.ID)

	rec = doJSON(e, http.MethodGet, "/api/categories", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "tools")

	rec = doJSON(e, http.MethodPut, "/api/categories/"+category.ID, `{"name":"hardware"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodDelete, "/api/categories/"+category.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(e, http.MethodGet, "/api/categories/"+category.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthCheck(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
