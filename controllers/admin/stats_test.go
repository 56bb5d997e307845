package adminController

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

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
	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.Order{}, &models.OrderItem{}, &models.Admin{}))
	return db
}

func statsRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/stats", GetQuickStats(db))
	r.GET("/admin/activity", GetActivityFeed(db))
	return r
}

func TestQuickStats(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, db.Create(&[]models.Product{
		{Name: "A", Price: 1000, Category: "x", Image: "a.jpg"},
		{Name: "B", Price: 2000, Category: "x", Image: "b.jpg"},
	}).Error)
	require.NoError(t, db.Create(&[]models.Order{
		{OrderRef: "r1", CustomerEmail: "ada@example.com", TotalAmount: 5000, Status: models.OrderStatusPaid},
		{OrderRef: "r2", CustomerEmail: "ada@example.com", TotalAmount: 7000, Status: models.OrderStatusDelivered},
		{OrderRef: "r3", CustomerEmail: "bola@example.com", TotalAmount: 9000, Status: models.OrderStatusCancelled},
	}).Error)

	w := httptest.NewRecorder()
	statsRouter(db).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/stats", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var stats QuickStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	// Cancelled orders count toward volume but not revenue.
	assert.Equal(t, float64(12000), stats.TotalRevenue)
	assert.EqualValues(t, 3, stats.TotalOrders)
	assert.EqualValues(t, 2, stats.TotalProducts)
	assert.EqualValues(t, 2, stats.UniqueCustomers)
}

func TestActivityFeedLimit(t *testing.T) {
	db := setupDB(t)
	for i := 0; i < 15; i++ {
		require.NoError(t, db.Create(&models.Order{
			OrderRef:  fmt.Sprintf("r%d", i),
			CreatedAt: time.Now().Add(time.Duration(-i) * time.Minute),
		}).Error)
	}
	r := statsRouter(db)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/activity", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var orders []models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	require.Len(t, orders, 10)
	// Newest first.
	assert.Equal(t, "r0", orders[0].OrderRef)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/activity?limit=3", nil))
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	assert.Len(t, orders, 3)
}
