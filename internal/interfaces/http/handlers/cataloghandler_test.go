package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atelier/internal/application/catalog/usecases"
	"atelier/internal/shared/logger"
)

func setupCatalogRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.NewLogger()

	handler := NewCatalogHandler(
		usecases.NewGetCatalogUseCase(log),
		usecases.NewGetTierUseCase(log),
		usecases.NewGetComparisonUseCase(log),
		usecases.NewListServicesUseCase(log),
		usecases.NewGetCategoriesUseCase(log),
		usecases.NewPreviewPriceUseCase(log),
	)

	engine := gin.New()
	engine.GET("/catalog", handler.GetCatalog)
	engine.GET("/catalog/services", handler.ListServices)
	engine.GET("/catalog/categories", handler.GetCategories)
	engine.GET("/catalog/:tier", handler.GetTier)
	engine.GET("/catalog/:tier/comparison", handler.GetComparison)
	engine.POST("/pricing/preview", handler.PreviewPrice)
	return engine
}

func TestCatalogHandler_GetTier(t *testing.T) {
	engine := setupCatalogRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/catalog/ecommerce", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			ID     string `json:"id"`
			Levels map[string]struct {
				Price        int      `json:"price"`
				IncludedTags []string `json:"included_tags"`
			} `json:"levels"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "ecommerce", resp.Data.ID)
	assert.Equal(t, 6500, resp.Data.Levels["premium"].Price)
	assert.Contains(t, resp.Data.Levels["premium"].IncludedTags, "loyalty_system")
	assert.Contains(t, resp.Data.Levels["premium"].IncludedTags, "extended_support")
}

func TestCatalogHandler_ListServices(t *testing.T) {
	engine := setupCatalogRouter()

	t.Run("tier filter keeps only compatible services", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/catalog/services?tier=starter", nil)
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data struct {
				Services []struct {
					ID string `json:"id"`
				} `json:"services"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Data.Services)
	})

	t.Run("unknown tier returns 400", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/catalog/services?tier=enterprise", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCatalogHandler_GetCategories(t *testing.T) {
	engine := setupCatalogRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/catalog/categories", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Categories []struct {
				ID        string `json:"id"`
				SortOrder int    `json:"sort_order"`
			} `json:"categories"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.Len(t, resp.Data.Categories, 4)
	assert.Equal(t, "photography", resp.Data.Categories[0].ID)
	for i, c := range resp.Data.Categories {
		assert.Equal(t, i+1, c.SortOrder)
	}
}

func TestCatalogHandler_GetCatalog(t *testing.T) {
	engine := setupCatalogRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/catalog", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Tiers []struct {
				ID     string `json:"id"`
				Levels map[string]struct {
					Price int `json:"price"`
				} `json:"levels"`
			} `json:"tiers"`
			Services []struct {
				ID string `json:"id"`
			} `json:"services"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	require.Len(t, resp.Data.Tiers, 3)
	assert.Equal(t, "starter", resp.Data.Tiers[0].ID)
	assert.Equal(t, "pro", resp.Data.Tiers[1].ID)
	assert.Equal(t, "ecommerce", resp.Data.Tiers[2].ID)
	assert.Equal(t, 1250, resp.Data.Tiers[0].Levels["standard"].Price)
	assert.NotEmpty(t, resp.Data.Services)
}

func TestCatalogHandler_GetComparison(t *testing.T) {
	engine := setupCatalogRouter()

	t.Run("known tier returns categories in order", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/catalog/pro/comparison", nil)
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Success bool `json:"success"`
			Data    []struct {
				Name string `json:"name"`
				Rows []struct {
					Feature string `json:"feature"`
				} `json:"rows"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

		require.Len(t, resp.Data, 4)
		assert.Equal(t, "Pagine e Contenuti", resp.Data[0].Name)
		assert.Equal(t, "Supporto e Training", resp.Data[3].Name)
		assert.NotEmpty(t, resp.Data[0].Rows)
	})

	t.Run("unknown tier returns 400", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/catalog/enterprise/comparison", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCatalogHandler_PreviewPrice(t *testing.T) {
	engine := setupCatalogRouter()

	post := func(t *testing.T, payload map[string]interface{}) *httptest.ResponseRecorder {
		t.Helper()
		body, err := json.Marshal(payload)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/pricing/preview", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)
		return w
	}

	t.Run("pro base with two services", func(t *testing.T) {
		w := post(t, map[string]interface{}{
			"tier":        "pro",
			"level":       "base",
			"service_ids": []string{"whatsapp-business", "qr-code"},
		})

		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data struct {
				BasePrice     int `json:"base_price"`
				ServicesPrice int `json:"services_price"`
				TaxAmount     int `json:"tax_amount"`
				TotalPrice    int `json:"total_price"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

		assert.Equal(t, 1800, resp.Data.BasePrice)
		assert.Equal(t, 160, resp.Data.ServicesPrice)
		assert.Equal(t, 431, resp.Data.TaxAmount)
		assert.Equal(t, 2391, resp.Data.TotalPrice)
	})

	t.Run("unknown service ids are reported not rejected", func(t *testing.T) {
		w := post(t, map[string]interface{}{
			"tier":        "starter",
			"level":       "base",
			"service_ids": []string{"does-not-exist"},
		})

		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data struct {
				ServicesPrice   int      `json:"services_price"`
				UnknownServices []string `json:"unknown_services"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

		assert.Equal(t, 0, resp.Data.ServicesPrice)
		assert.Equal(t, []string{"does-not-exist"}, resp.Data.UnknownServices)
	})

	t.Run("invalid tier returns 400", func(t *testing.T) {
		w := post(t, map[string]interface{}{
			"tier":  "enterprise",
			"level": "base",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
