package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHash(t *testing.T, pw string) string {
	t.Helper()
	h, err := HashPassword(pw)
	require.NoError(t, err)
	return h
}

func TestHashPassword_NeverPlaintext(t *testing.T) {
	h := mustHash(t, "danny@123")
	assert.NotEmpty(t, h)
	assert.NotEqual(t, "danny@123", h)
	assert.True(t, CheckPassword("danny@123", h))
}

func TestCheckPassword_Mismatch(t *testing.T) {
	h := mustHash(t, "danny@123")
	assert.False(t, CheckPassword("wrong", h))
	assert.False(t, CheckPassword("", h))
}

func TestHashPassword_EmptyInputStillHashes(t *testing.T) {
	// 没有最小长度策略，空密码也要能哈希并通过校验
	h := mustHash(t, "")
	assert.NotEmpty(t, h)
	assert.True(t, CheckPassword("", h))
	assert.False(t, CheckPassword("x", h))
}

func TestHashPassword_OverBcryptLimit(t *testing.T) {
	// bcrypt 上限 72 字节：恰好 72 可哈希，超出必须报错而不是返回空串
	h := mustHash(t, strings.Repeat("a", 72))
	assert.True(t, CheckPassword(strings.Repeat("a", 72), h))

	h, err := HashPassword(strings.Repeat("a", 73))
	assert.Error(t, err)
	assert.Empty(t, h)
	assert.False(t, CheckPassword(strings.Repeat("a", 73), h))
}

func TestHashPassword_Salted(t *testing.T) {
	assert.NotEqual(t, mustHash(t, "same"), mustHash(t, "same"))
}
