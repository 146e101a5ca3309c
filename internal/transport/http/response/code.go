package response

import "net/http"

// 直接使用 HTTP 语义的状态码
const (
	CodeOK           = http.StatusOK
	CodeCreated      = http.StatusCreated
	CodeBadRequest   = http.StatusBadRequest
	CodeUnauthorized = http.StatusUnauthorized
	CodeForbidden    = http.StatusForbidden
	CodeNotFound     = http.StatusNotFound
	CodeServerError  = http.StatusInternalServerError
)

// CodeMsgMap 集中管理 code - 默认 message
var CodeMsgMap = map[int]string{
	CodeOK:           "OK",
	CodeCreated:      "Created",
	CodeBadRequest:   "Bad Request",
	CodeUnauthorized: "Unauthorized",
	CodeForbidden:    "Forbidden",
	CodeNotFound:     "Not Found",
	CodeServerError:  "Internal Server Error",
}
