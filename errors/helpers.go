package errors

import (
	"errors"

	"go.uber.org/multierr"
)

// GetCode 取分类码；非 *Error 一律视为内部错误。
// 组合错误（multierr）取第一个可识别的分类码。
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	for _, e := range multierr.Errors(err) {
		var customErr *Error
		if errors.As(e, &customErr) {
			return customErr.Code
		}
	}

	return CodeInternal
}

// GetMessage 取面向用户的消息
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Message
	}

	return err.Error()
}

func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

func IsDuplicateEntity(err error) bool {
	return GetCode(err) == CodeDuplicateEntity
}

func IsInvariantViolation(err error) bool {
	return GetCode(err) == CodeInvariantViolation
}

func IsInternal(err error) bool {
	return GetCode(err) == CodeInternal
}
