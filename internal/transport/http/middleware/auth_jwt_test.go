package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"admedia-api/internal/core/auth"
)

func newGateEngine(j *auth.JWTer, requireRole string, reached *bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthJWT(j, requireRole), func(c *gin.Context) {
		*reached = true
		claims := ClaimsFrom(c)
		c.JSON(http.StatusOK, gin.H{"uid": claims.UID, "role": claims.Role})
	})
	return r
}

func testJWTer(ttl time.Duration) *auth.JWTer {
	return &auth.JWTer{Secret: []byte("gate-secret"), Issuer: "admedia-api", TTL: ttl}
}

func TestAuthJWT_MissingHeader(t *testing.T) {
	var reached bool
	r := newGateEngine(testJWTer(time.Hour), "", &reached)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	// 没带 token：403，且根本不进 handler
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "No token provided")
	assert.False(t, reached)
}

func TestAuthJWT_NonBearerHeader(t *testing.T) {
	var reached bool
	r := newGateEngine(testJWTer(time.Hour), "", &reached)

	// 带了头但不是合法 token：进验证流程再失败，401 而非 403
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic abc123")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired token")
	assert.False(t, reached)
}

func TestAuthJWT_HeaderWithoutSpace(t *testing.T) {
	var reached bool
	r := newGateEngine(testJWTer(time.Hour), "", &reached)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "justatoken")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, reached)
}

func TestAuthJWT_SchemeNotInspected(t *testing.T) {
	// 网关只看空格后的部分，scheme 写什么都一样
	j := testJWTer(time.Hour)
	tok, err := j.Issue(7, "user")
	require.NoError(t, err)

	var reached bool
	r := newGateEngine(j, "", &reached)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token "+tok)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, reached)
}

func TestAuthJWT_GarbageToken(t *testing.T) {
	var reached bool
	r := newGateEngine(testJWTer(time.Hour), "", &reached)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer this.is.garbage")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired token")
	assert.False(t, reached)
}

func TestAuthJWT_ExpiredToken(t *testing.T) {
	j := testJWTer(-time.Minute)
	tok, err := j.Issue(7, "user")
	require.NoError(t, err)

	var reached bool
	r := newGateEngine(testJWTer(time.Hour), "", &reached)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, reached)
}

func TestAuthJWT_ValidToken(t *testing.T) {
	j := testJWTer(time.Hour)
	tok, err := j.Issue(7, "user")
	require.NoError(t, err)

	var reached bool
	r := newGateEngine(j, "", &reached)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, reached)
	assert.Contains(t, w.Body.String(), `"uid":7`)
}

func TestAuthJWT_RoleMismatch(t *testing.T) {
	j := testJWTer(time.Hour)
	tok, err := j.Issue(7, "user")
	require.NoError(t, err)

	var reached bool
	r := newGateEngine(j, "admin", &reached)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, reached)
}
