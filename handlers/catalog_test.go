package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Omarrio321/Aran-Repairs/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/catalog/categories", GetCategoriesHandler)
	r.GET("/api/catalog/brands", GetBrandsHandler)
	r.GET("/api/catalog/models", GetModelsHandler)
	r.GET("/api/catalog/repairs", GetRepairsHandler)
	r.GET("/api/catalog/accessories/:id", GetAccessoryByIDHandler)

	bh := NewBookingHandler(nil, zap.NewNop())
	r.GET("/api/booking/slots", bh.GetSlots)
	return r
}

func doGet(t *testing.T, r *gin.Engine, url string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestGetCategories(t *testing.T) {
	w := doGet(t, testRouter(), "/api/catalog/categories")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Categories []models.DeviceCategory `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Categories, 5)
}

func TestGetBrandsRequiresType(t *testing.T) {
	r := testRouter()

	w := doGet(t, r, "/api/catalog/brands")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doGet(t, r, "/api/catalog/brands?type=console")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Brands []models.Brand `json:"brands"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Brands, 3)
}

func TestGetModelsUnknownFiltersYieldEmptyList(t *testing.T) {
	w := doGet(t, testRouter(), "/api/catalog/models?brand=nokia&type=phone")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Models []models.DeviceModel `json:"models"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotNil(t, body.Models)
	assert.Empty(t, body.Models)
}

func TestGetRepairsFallsBackToPhone(t *testing.T) {
	r := testRouter()

	phone := doGet(t, r, "/api/catalog/repairs?type=phone")
	unknown := doGet(t, r, "/api/catalog/repairs?type=toaster")
	require.Equal(t, http.StatusOK, phone.Code)
	require.Equal(t, http.StatusOK, unknown.Code)
	assert.JSONEq(t, phone.Body.String(), unknown.Body.String())
}

func TestGetAccessoryByIDNotFound(t *testing.T) {
	w := doGet(t, testRouter(), "/api/catalog/accessories/acc-unknown")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetSlots(t *testing.T) {
	r := testRouter()

	t.Run("requires a date", func(t *testing.T) {
		w := doGet(t, r, "/api/booking/slots")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("closed day renders as empty, not an error", func(t *testing.T) {
		w := doGet(t, r, "/api/booking/slots?date=2026-08-30") // Sunday
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Slots []string `json:"slots"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.NotNil(t, body.Slots)
		assert.Empty(t, body.Slots)
	})

	t.Run("monday schedule", func(t *testing.T) {
		w := doGet(t, r, "/api/booking/slots?date=2026-08-31")
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Slots []string `json:"slots"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Len(t, body.Slots, 10)
		assert.Equal(t, "13:00", body.Slots[0])
	})
}
