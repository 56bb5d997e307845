package productcontroller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ipd-emporium/emporium-api/models"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}))
	return db
}

func productRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/products", GetProducts(db))
	r.GET("/products/categories", GetCategories(db))
	r.GET("/products/:id", GetProductByID(db))
	r.POST("/products", CreateProduct(db))
	r.PUT("/products/:id", UpdateProduct(db))
	r.DELETE("/products/:id", DeleteProduct(db))
	return r
}

func doReq(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validProductInput() CreateProductInput {
	return CreateProductInput{
		Name:     "Desk Lamp",
		Price:    15500,
		Category: "home",
		Image:    "lamp.jpg",
		Stock:    10,
		Rating:   4.2,
	}
}

func TestCreateProduct(t *testing.T) {
	db := setupDB(t)
	r := productRouter(db)

	w := doReq(t, r, http.MethodPost, "/products", validProductInput())
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	// Gallery falls back to the primary image.
	assert.Equal(t, models.Images{"lamp.jpg"}, created.Images)
}

func TestCreateProductValidation(t *testing.T) {
	db := setupDB(t)
	r := productRouter(db)

	missing := validProductInput()
	missing.Name = ""
	assert.Equal(t, http.StatusBadRequest, doReq(t, r, http.MethodPost, "/products", missing).Code)

	badSale := validProductInput()
	badSale.SalePrice = 20000
	assert.Equal(t, http.StatusBadRequest, doReq(t, r, http.MethodPost, "/products", badSale).Code)
}

func TestUpdateProductPartialMerge(t *testing.T) {
	db := setupDB(t)
	r := productRouter(db)

	w := doReq(t, r, http.MethodPost, "/products", validProductInput())
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doReq(t, r, http.MethodPut, fmt.Sprintf("/products/%d", created.ID), map[string]interface{}{
		"sale_price": 12000,
		"stock":      3,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Product
	require.NoError(t, db.First(&updated, created.ID).Error)
	assert.Equal(t, float64(12000), updated.SalePrice)
	assert.Equal(t, 3, updated.Stock)
	// Untouched fields survive the merge.
	assert.Equal(t, "Desk Lamp", updated.Name)
	assert.Equal(t, float64(15500), updated.Price)
}

func TestUpdateProductRejectsSaleAbovePrice(t *testing.T) {
	db := setupDB(t)
	r := productRouter(db)

	w := doReq(t, r, http.MethodPost, "/products", validProductInput())
	var created models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doReq(t, r, http.MethodPut, fmt.Sprintf("/products/%d", created.ID), map[string]interface{}{
		"sale_price": 99999,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteProduct(t *testing.T) {
	db := setupDB(t)
	r := productRouter(db)

	w := doReq(t, r, http.MethodPost, "/products", validProductInput())
	var created models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	assert.Equal(t, http.StatusOK, doReq(t, r, http.MethodDelete, fmt.Sprintf("/products/%d", created.ID), nil).Code)
	assert.Equal(t, http.StatusNotFound, doReq(t, r, http.MethodGet, fmt.Sprintf("/products/%d", created.ID), nil).Code)
	assert.Equal(t, http.StatusNotFound, doReq(t, r, http.MethodDelete, fmt.Sprintf("/products/%d", created.ID), nil).Code)
}

func TestGetProductsAppliesQueryParams(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, db.Create(&[]models.Product{
		{Name: "Cheap Gadget", Price: 5000, Category: "electronics", Image: "a.jpg"},
		{Name: "Pricey Gadget", Price: 90000, Category: "electronics", Image: "b.jpg"},
		{Name: "Sofa", Price: 150000, Category: "home", Image: "c.jpg"},
	}).Error)
	r := productRouter(db)

	w := doReq(t, r, http.MethodGet, "/products?category=electronics&max_price=10000&sort_by=price-low", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Products []models.Product `json:"products"`
		Count    int              `json:"count"`
		Total    int              `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, 3, resp.Total)
	require.Len(t, resp.Products, 1)
	assert.Equal(t, "Cheap Gadget", resp.Products[0].Name)

	w = doReq(t, r, http.MethodGet, "/products?min_price=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCategories(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, db.Create(&[]models.Product{
		{Name: "A", Price: 1, Category: "electronics", Image: "a.jpg"},
		{Name: "B", Price: 1, Category: "electronics", Image: "b.jpg"},
		{Name: "C", Price: 1, Category: "home", Image: "c.jpg"},
	}).Error)
	r := productRouter(db)

	w := doReq(t, r, http.MethodGet, "/products/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "electronics")
	assert.Contains(t, w.Body.String(), "home")
}
