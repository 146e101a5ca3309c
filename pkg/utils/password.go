package utils

import "golang.org/x/crypto/bcrypt"

// HashCost 与旧系统保持一致（bcrypt 10 轮）
const HashCost = 10

// HashPassword 明文超过 bcrypt 的 72 字节上限会返回错误，
// 调用方按客户端错误处理，绝不能把空串当哈希落库
func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), HashCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func CheckPassword(pw, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pw)) == nil
}
