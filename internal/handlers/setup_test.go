package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ukozhakova/Django2021-Endterm/internal/auth"
	"github.com/ukozhakova/Django2021-Endterm/internal/db"
	"github.com/ukozhakova/Django2021-Endterm/internal/handlers"
	"github.com/ukozhakova/Django2021-Endterm/internal/models"
	"github.com/ukozhakova/Django2021-Endterm/internal/repos"
	"github.com/ukozhakova/Django2021-Endterm/internal/storage"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	// A uniquely named shared-cache DB so every test gets its own schema
	// while gorm's pooled connections still see the same data.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	testDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("failed to connect test database: " + err.Error())
	}

	if err := db.Migrate(testDB); err != nil {
		panic("failed to auto-migrate models: " + err.Error())
	}

	originalDB := db.DB
	db.SetTestDB(testDB)

	originalStore := handlers.Store
	handlers.Store = &storage.Disk{Dir: t.TempDir()}

	r := gin.New()
	r.Use(gin.Recovery())

	public := r.Group("/")
	public.Use(auth.OptionalAuth())
	{
		public.GET("/categories", handlers.ListCategories)
		public.GET("/categories/:id", handlers.GetCategory)
		public.GET("/categories/:id/products", handlers.CategoryProducts)
		public.GET("/providers", handlers.ListProviders)
		public.GET("/providers/:id", handlers.GetProvider)
		public.GET("/providers/:id/products", handlers.ProviderProducts)
		public.GET("/products", handlers.ListProducts)
		public.GET("/products/:id", handlers.GetProduct)
	}

	r.POST("/signup", handlers.Signup)
	r.POST("/login", handlers.Login)
	r.POST("/login/refresh", handlers.Refresh)

	api := r.Group("/")
	api.Use(auth.RequireAuth())
	{
		api.POST("/categories", handlers.CreateCategory)
		api.PUT("/categories/:id", handlers.UpdateCategory)
		api.DELETE("/categories/:id", handlers.DeleteCategory)

		api.POST("/providers", handlers.CreateProvider)
		api.PUT("/providers/:id", handlers.UpdateProvider)
		api.DELETE("/providers/:id", handlers.DeleteProvider)

		api.POST("/products", handlers.CreateProduct)
		api.PUT("/products/:id", handlers.UpdateProduct)
		api.DELETE("/products/:id", handlers.DeleteProduct)

		api.GET("/orders", handlers.ListOrders)
		api.POST("/orders", handlers.CreateOrder)
		api.GET("/orders/:id", handlers.GetOrder)
		api.PUT("/orders/:id", handlers.UpdateOrder)
		api.DELETE("/orders/:id", handlers.DeleteOrder)

		api.GET("/reviews", handlers.ListReviews)
		api.POST("/reviews", handlers.CreateReview)
		api.GET("/reviews/:id", handlers.GetReview)
		api.PUT("/reviews/:id", handlers.UpdateReview)
		api.DELETE("/reviews/:id", handlers.DeleteReview)

		api.GET("/profiles", handlers.GetProfile)
		api.PUT("/profiles", handlers.UpdateProfile)

		api.POST("/logout", handlers.Logout)
		api.GET("/users", auth.RequireStaff(), handlers.ListUsers)
		api.GET("/users/me", handlers.Me)
	}

	t.Cleanup(func() {
		db.SetTestDB(originalDB)
		handlers.Store = originalStore
	})

	return r, testDB
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// createTestUser seeds a user (and via the hook, their profile) and returns it.
func createTestUser(t *testing.T, username string, staff bool) models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Username:  username,
		Password:  string(hash),
		FirstName: "Test",
		LastName:  "User",
		Email:     username + "@example.com",
		IsStaff:   staff,
	}
	require.NoError(t, repos.CreateUser(&user))
	return user
}

func accessTokenFor(t *testing.T, userID uint) string {
	pair, err := auth.IssuePair(userID)
	require.NoError(t, err)
	return pair.Access
}

func performJSON(router *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func performMultipart(router *gin.Engine, method, path string, fields map[string]string, fileField, filename string, fileContent []byte, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		writer.WriteField(key, value)
	}
	if fileField != "" {
		part, _ := writer.CreateFormFile(fileField, filename)
		part.Write(fileContent)
	}
	writer.Close()

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}
