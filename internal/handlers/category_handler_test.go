package handlers_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ukozhakova/Django2021-Endterm/internal/audit"
	"github.com/ukozhakova/Django2021-Endterm/internal/handlers"
	"github.com/ukozhakova/Django2021-Endterm/internal/models"
)

func TestCategoryHandlers(t *testing.T) {
	router, testDB := setupTestRouter(t)

	user := createTestUser(t, "catowner", false)
	token := accessTokenFor(t, user.ID)

	t.Run("Successfully creates a category", func(t *testing.T) {
		reqBody := handlers.CategoryRequest{Name: "Clothes"}
		recorder := performJSON(router, http.MethodPost, "/categories", reqBody, token)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var responseCategory models.Category
		err := json.Unmarshal(recorder.Body.Bytes(), &responseCategory)
		assert.NoError(t, err)
		assert.Greater(t, responseCategory.ID, uint(0))
		assert.Equal(t, "Clothes", responseCategory.Name)

		var storedCategory models.Category
		testDB.First(&storedCategory, responseCategory.ID)
		assert.Equal(t, "Clothes", storedCategory.Name)
	})

	t.Run("Returns 401 for unauthenticated create", func(t *testing.T) {
		reqBody := handlers.CategoryRequest{Name: "Shoes"}
		recorder := performJSON(router, http.MethodPost, "/categories", reqBody, "")

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("List and retrieve are public", func(t *testing.T) {
		category := models.Category{Name: "Books"}
		testDB.Create(&category)

		recorder := performJSON(router, http.MethodGet, "/categories", nil, "")
		assert.Equal(t, http.StatusOK, recorder.Code)

		recorder = performJSON(router, http.MethodGet, "/categories/"+itoa(category.ID), nil, "")
		assert.Equal(t, http.StatusOK, recorder.Code)

		var got models.Category
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
		assert.Equal(t, "Books", got.Name)
	})

	t.Run("Returns 404 for missing category", func(t *testing.T) {
		recorder := performJSON(router, http.MethodGet, "/categories/99999", nil, "")
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("Updates a category", func(t *testing.T) {
		category := models.Category{Name: "Old"}
		testDB.Create(&category)

		reqBody := handlers.CategoryRequest{Name: "New"}
		recorder := performJSON(router, http.MethodPut, "/categories/"+itoa(category.ID), reqBody, token)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var storedCategory models.Category
		testDB.First(&storedCategory, category.ID)
		assert.Equal(t, "New", storedCategory.Name)
	})

	t.Run("Nested products view sorts by ascending price", func(t *testing.T) {
		category := models.Category{Name: "Sorted"}
		testDB.Create(&category)
		for _, price := range []int{30, 10, 20} {
			testDB.Create(&models.Product{Name: "p", Description: "plenty long d", Price: price, CategoryID: category.ID})
		}

		recorder := performJSON(router, http.MethodGet, "/categories/"+itoa(category.ID)+"/products", nil, "")
		assert.Equal(t, http.StatusOK, recorder.Code)

		var products []models.Product
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &products))
		assert.Len(t, products, 3)
		assert.Equal(t, []int{10, 20, 30}, []int{products[0].Price, products[1].Price, products[2].Price})
	})

	t.Run("Nested products view 404s on missing parent", func(t *testing.T) {
		recorder := performJSON(router, http.MethodGet, "/categories/99999/products", nil, "")
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("Delete cascades to products and logs each one first", func(t *testing.T) {
		category := models.Category{Name: "Doomed"}
		testDB.Create(&category)
		for i := 0; i < 3; i++ {
			testDB.Create(&models.Product{Name: "p", Description: "plenty long d", Price: 5, CategoryID: category.ID})
		}

		var logBuf bytes.Buffer
		audit.SetLogger(slog.New(slog.NewTextHandler(&logBuf, nil)))
		t.Cleanup(func() { audit.SetLogger(slog.Default()) })

		recorder := performJSON(router, http.MethodDelete, "/categories/"+itoa(category.ID), nil, token)
		assert.Equal(t, http.StatusOK, recorder.Code)

		assert.Equal(t, 3, strings.Count(logBuf.String(), "cascade delete"))

		var count int64
		testDB.Model(&models.Product{}).Where("category_id = ?", category.ID).Count(&count)
		assert.Equal(t, int64(0), count)
		testDB.Model(&models.Category{}).Where("id = ?", category.ID).Count(&count)
		assert.Equal(t, int64(0), count)
	})

	t.Run("Delete of a missing category is still success-shaped", func(t *testing.T) {
		recorder := performJSON(router, http.MethodDelete, "/categories/99999", nil, token)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}
