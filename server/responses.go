package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"dogwalk/errors"
)

const contentTypeJSON = "application/json"

// 错误码（响应体 code 字段）
const (
	codeBadRequest      = "badRequest"
	codeInvalidArgument = "invalidArgument"
	codeMapNotFound     = "mapNotFound"
	codeInvalidMethod   = "invalidMethod"
	codeInvalidToken    = "invalidToken"
	codeUnknownToken    = "unknownToken"
	codeConflict        = "conflict"
	codeInternal        = "internalError"
)

// bodyCodes 核心层分类码到响应体 code 的映射，未列出的按内部错误处理
var bodyCodes = map[errors.Code]string{
	errors.CodeInvalidArgument: codeInvalidArgument,
	errors.CodeNotFound:        codeMapNotFound,
	errors.CodeDuplicateEntity: codeConflict,
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		Log.Warnw("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorBody{Code: code, Message: message})
}

func writeOK(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, struct{}{})
}

// writeAppError 把核心层错误翻译成协议响应，状态码取自分类码
func writeAppError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := code.HTTPStatus()
	body, ok := bodyCodes[code]
	if !ok || status >= http.StatusInternalServerError {
		Log.Errorw("request failed", "code", code, "error", err)
		writeError(w, http.StatusInternalServerError, codeInternal, "Internal error")
		return
	}
	writeError(w, status, body, errors.GetMessage(err))
}

// allowMethods 方法不符时返回 405 与 Allow 头
func allowMethods(h http.HandlerFunc, methods ...string) http.HandlerFunc {
	allow := strings.Join(methods, ", ")
	return func(w http.ResponseWriter, r *http.Request) {
		for _, m := range methods {
			if r.Method == m {
				h(w, r)
				return
			}
		}
		w.Header().Set("Allow", allow)
		writeError(w, http.StatusMethodNotAllowed, codeInvalidMethod, "Invalid method")
	}
}
