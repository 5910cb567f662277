package errors

import "net/http"

// Code 错误分类
type Code string

const (
	CodeOK                 Code = "OK"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeDuplicateEntity    Code = "DUPLICATE_ENTITY"
	CodeInvariantViolation Code = "INVARIANT_VIOLATION"
	CodeInternal           Code = "INTERNAL"
)

func (c Code) String() string {
	return string(c)
}

// HTTPStatus 对应的 HTTP 状态码
func (c Code) HTTPStatus() int {
	switch c {
	case CodeOK:
		return http.StatusOK
	case CodeInvalidArgument:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeDuplicateEntity:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
