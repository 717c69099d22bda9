package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orcado/internal/core/appctx"
	"orcado/internal/domain/auth"
)

func testRouter(validator JWTValidator, adminOnly bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorHandler())

	group := router.Group("", Auth(validator))
	if adminOnly {
		group.Use(RequireAdmin())
	}
	group.GET("/whoami", func(c *gin.Context) {
		user := appctx.GetUser(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"username": user.Username})
	})
	return router
}

func issueToken(t *testing.T, user *auth.User) (string, *auth.JWTService) {
	t.Helper()
	svc := auth.NewJWTService(auth.DefaultJWTConfig("test-secret"))
	token, _, err := svc.GenerateAccessToken(user)
	require.NoError(t, err)
	return token, svc
}

func TestAuth_ValidToken(t *testing.T) {
	user := auth.NewUser("maria", "maria@example.com", "x")
	token, svc := issueToken(t, user)
	router := testRouter(svc, false)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "maria")
}

func TestAuth_MissingHeader(t *testing.T) {
	svc := auth.NewJWTService(auth.DefaultJWTConfig("test-secret"))
	router := testRouter(svc, false)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_MalformedHeader(t *testing.T) {
	svc := auth.NewJWTService(auth.DefaultJWTConfig("test-secret"))
	router := testRouter(svc, false)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Token abc")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_WrongSecret(t *testing.T) {
	user := auth.NewUser("maria", "maria@example.com", "x")
	token, _ := issueToken(t, user)
	other := auth.NewJWTService(auth.DefaultJWTConfig("different-secret"))
	router := testRouter(other, false)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdmin(t *testing.T) {
	operator := auth.NewUser("op", "op@example.com", "x")
	opToken, svc := issueToken(t, operator)

	admin := auth.NewUser("boss", "boss@example.com", "x")
	admin.Role = auth.RoleAdmin
	adminToken, _, err := svc.GenerateAccessToken(admin)
	require.NoError(t, err)

	router := testRouter(svc, true)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+opToken)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
