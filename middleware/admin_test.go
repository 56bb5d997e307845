package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ipd-emporium/emporium-api/models"
)

const testSecret = "test-secret"

func setupAdminDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.AdminSession{}))
	return db
}

func signAdminToken(t *testing.T, secret, role, jti string, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "ada@example.com",
		"role":  role,
		"jti":   jti,
		"exp":   exp.Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func adminRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/session", ValidateAdminToken(db, testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"email": c.GetString("admin_email"),
			"role":  c.GetString("admin_role"),
		})
	})
	return r
}

func getWithToken(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin/session", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminTokenWithLiveSession(t *testing.T) {
	db := setupAdminDB(t)
	require.NoError(t, db.Create(&models.AdminSession{
		TokenID:   "jti-1",
		Email:     "ada@example.com",
		ExpiresAt: time.Now().Add(time.Hour),
	}).Error)

	token := signAdminToken(t, testSecret, "admin", "jti-1", time.Now().Add(time.Hour))
	w := getWithToken(adminRouter(db), token)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ada@example.com")
}

func TestAdminTokenMissingHeader(t *testing.T) {
	db := setupAdminDB(t)
	w := getWithToken(adminRouter(db), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminTokenWrongRole(t *testing.T) {
	db := setupAdminDB(t)
	token := signAdminToken(t, testSecret, "user", "jti-1", time.Now().Add(time.Hour))
	w := getWithToken(adminRouter(db), token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminTokenWrongSecret(t *testing.T) {
	db := setupAdminDB(t)
	token := signAdminToken(t, "other-secret", "admin", "jti-1", time.Now().Add(time.Hour))
	w := getWithToken(adminRouter(db), token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminTokenRevokedSessionFailsBeforeTokenExpiry(t *testing.T) {
	db := setupAdminDB(t)
	revokedAt := time.Now()
	require.NoError(t, db.Create(&models.AdminSession{
		TokenID:   "jti-1",
		Email:     "ada@example.com",
		ExpiresAt: time.Now().Add(time.Hour),
		RevokedAt: &revokedAt,
	}).Error)

	// Token is still within its own expiry; the revoked row wins.
	token := signAdminToken(t, testSecret, "admin", "jti-1", time.Now().Add(time.Hour))
	w := getWithToken(adminRouter(db), token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminTokenWithoutBackingSession(t *testing.T) {
	db := setupAdminDB(t)
	token := signAdminToken(t, testSecret, "admin", "jti-ghost", time.Now().Add(time.Hour))
	w := getWithToken(adminRouter(db), token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
