package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"admedia-api/internal/core/auth"
	"admedia-api/internal/domain"
	"admedia-api/pkg/utils"
)

func newTestAPI(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "api.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}))
	j := &auth.JWTer{Secret: []byte("test-secret"), Issuer: "admedia-api", TTL: time.Hour}
	return NewAPIEngine(zap.NewNop(), db, j), db
}

func doJSON(r *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	out := map[string]any{}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w, out
}

func TestRegister_HashesPassword(t *testing.T) {
	r, db := newTestAPI(t)

	w, out := doJSON(r, http.MethodPost, "/Users/register", "", gin.H{
		"userName": "danny", "emailId": "danny@gmail.com", "password": "danny@123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "User created", out["message"])
	assert.NotZero(t, out["id"])

	var u domain.User
	require.NoError(t, db.First(&u, "emailId = ?", "danny@gmail.com").Error)
	assert.NotEqual(t, "danny@123", u.PasswordHash)
	assert.True(t, utils.CheckPassword("danny@123", u.PasswordHash))
	assert.Equal(t, "user", u.Role)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	r, db := newTestAPI(t)

	w, _ := doJSON(r, http.MethodPost, "/Users/register", "", gin.H{
		"userName": "danny", "emailId": "danny@gmail.com", "password": "danny@123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, out := doJSON(r, http.MethodPost, "/Users/register", "", gin.H{
		"userName": "danny2", "emailId": "danny@gmail.com", "password": "other",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email already exists", out["message"])

	// 重复注册不能产生第二行
	var n int64
	require.NoError(t, db.Model(&domain.User{}).Where("emailId = ?", "danny@gmail.com").Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestRegister_PasswordOverBcryptLimit(t *testing.T) {
	r, db := newTestAPI(t)

	// bcrypt 装不下 72 字节以上的明文；不能静默落一个空哈希进库
	long := strings.Repeat("a", 80)
	w, out := doJSON(r, http.MethodPost, "/Users/register", "", gin.H{
		"userName": "danny", "emailId": "danny@gmail.com", "password": long,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	assert.Equal(t, "Password too long", out["message"])

	var n int64
	require.NoError(t, db.Model(&domain.User{}).Count(&n).Error)
	assert.EqualValues(t, 0, n)
}

func TestLogin_FullFlow(t *testing.T) {
	r, _ := newTestAPI(t)

	w, _ := doJSON(r, http.MethodPost, "/Users/register", "", gin.H{
		"userName": "danny", "emailId": "danny@gmail.com", "password": "danny@123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, out := doJSON(r, http.MethodPost, "/Users/login", "", gin.H{
		"emailId": "danny@gmail.com", "password": "danny@123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Login successful", out["message"])
	tok, _ := out["token"].(string)
	require.NotEmpty(t, tok)

	// 登录响应只投影安全字段，绝不回传哈希
	data, _ := out["data"].(map[string]any)
	require.NotNil(t, data)
	assert.Equal(t, "danny@gmail.com", data["emailId"])
	assert.NotContains(t, data, "password")
	assert.NotContains(t, w.Body.String(), "$2a$")

	// 带 token 的受保护请求放行
	w, _ = doJSON(r, http.MethodGet, "/Users", tok, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// 不带 token：403；乱 token：401
	w, _ = doJSON(r, http.MethodGet, "/Users", "", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w, _ = doJSON(r, http.MethodGet, "/Users", "garbage.token.here", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_WrongPassword(t *testing.T) {
	r, _ := newTestAPI(t)

	w, _ := doJSON(r, http.MethodPost, "/Users/register", "", gin.H{
		"userName": "danny", "emailId": "danny@gmail.com", "password": "danny@123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, out := doJSON(r, http.MethodPost, "/Users/login", "", gin.H{
		"emailId": "danny@gmail.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid credentials", out["message"])
	assert.NotContains(t, out, "token")
}

func TestLogin_UnknownEmail(t *testing.T) {
	r, _ := newTestAPI(t)

	w, out := doJSON(r, http.MethodPost, "/Users/login", "", gin.H{
		"emailId": "nope@x.com", "password": "x",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "User not found", out["message"])
	assert.NotContains(t, out, "token")
}

func TestUserCRUD(t *testing.T) {
	r, db := newTestAPI(t)

	w, out := doJSON(r, http.MethodPost, "/Users/register", "", gin.H{
		"userName": "danny", "emailId": "danny@gmail.com", "password": "danny@123",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	id := int(out["id"].(float64))

	w, out = doJSON(r, http.MethodPost, "/Users/login", "", gin.H{
		"emailId": "danny@gmail.com", "password": "danny@123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	tok := out["token"].(string)

	// GET by id
	w, out = doJSON(r, http.MethodGet, "/Users/"+itoa(id), tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "danny", out["userName"])

	// GET 未知 id → 404
	w, out = doJSON(r, http.MethodGet, "/Users/99999", tok, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Users not found", out["message"])

	// PUT 带超长密码：拒绝且不动现有行
	w, out = doJSON(r, http.MethodPut, "/Users/"+itoa(id), tok, gin.H{
		"userName": "daniel", "emailId": "daniel@gmail.com", "password": strings.Repeat("a", 80),
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Password too long", out["message"])

	var before domain.User
	require.NoError(t, db.First(&before, "userId = ?", id).Error)
	assert.True(t, utils.CheckPassword("danny@123", before.PasswordHash))

	// PUT 整行替换 + 强制重哈希
	w, out = doJSON(r, http.MethodPut, "/Users/"+itoa(id), tok, gin.H{
		"userName": "daniel", "emailId": "daniel@gmail.com", "password": "new@pass",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "User updated", out["message"])

	var u domain.User
	require.NoError(t, db.First(&u, "userId = ?", id).Error)
	assert.Equal(t, "daniel", u.UserName)
	assert.True(t, utils.CheckPassword("new@pass", u.PasswordHash))
	assert.False(t, utils.CheckPassword("danny@123", u.PasswordHash))

	// DELETE
	w, out = doJSON(r, http.MethodDelete, "/Users/"+itoa(id), tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "User deleted", out["message"])

	var n int64
	require.NoError(t, db.Model(&domain.User{}).Count(&n).Error)
	assert.EqualValues(t, 0, n)

	// 账号删了，未过期的 token 仍然有效（无吊销列表）
	w, _ = doJSON(r, http.MethodGet, "/Users", tok, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func itoa(n int) string { return strconv.Itoa(n) }
