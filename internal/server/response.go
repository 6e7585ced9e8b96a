package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ukaji3/gradcheck-go/pkg/gradcheck"
	"github.com/ukaji3/gradcheck-go/pkg/gradcheck/render"
)

// errMissingInput is returned when a request carries neither htmlFile nor tableHtml.
var errMissingInput = errors.New("請提供 htmlFile 或 tableHtml")

// errorResponse is the body of every failed request.
type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// mapError translates pipeline errors to HTTP status codes and messages.
func mapError(err error) (status int, msg string) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.Is(err, errMissingInput):
		return http.StatusBadRequest, errMissingInput.Error()
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge, "檔案過大"
	case errors.Is(err, gradcheck.ErrTableNotFound):
		return http.StatusUnprocessableEntity, "找不到課程表格"
	case errors.Is(err, render.ErrUnsupportedFormat):
		return http.StatusBadRequest, "不支援的匯出格式"
	case errors.Is(err, gradcheck.ErrInvalidFormat):
		return http.StatusBadRequest, "無法讀取 HTML"
	default:
		return http.StatusInternalServerError, "解析失敗"
	}
}

// handleError maps err and sends the error response.
func (s *Server) handleError(c *gin.Context, err error) {
	status, msg := mapError(err)
	if status >= 500 {
		s.log.Error().Err(err).Str("request_id", c.GetString(requestIDKey)).Msg("request failed")
	}
	resp := errorResponse{Message: msg}
	if detail := err.Error(); detail != msg {
		resp.Error = detail
	}
	c.AbortWithStatusJSON(status, resp)
}
