package handlers

import (
	"errors"
	"net/http"

	"github.com/dharavthjayanth/3D-Model/internal/metrics"
	"github.com/dharavthjayanth/3D-Model/internal/repository"
	"github.com/dharavthjayanth/3D-Model/internal/service"

	"github.com/gin-gonic/gin"
)

const errInternal = "Internal server error"

// errorBody is the JSON error envelope: {"detail": "..."}.
type errorBody struct {
	Detail string `json:"detail" example:"AC not found"`
}

// classify maps a service or repository error to a status code and a
// client-facing message.
func classify(err error) (int, string) {
	var missing *repository.MissingFileError
	var svcErr *service.Error
	switch {
	case errors.As(err, &missing):
		return http.StatusInternalServerError, "Missing file: " + missing.Name
	case errors.As(err, &svcErr):
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			return http.StatusBadRequest, svcErr.Msg
		case errors.Is(err, service.ErrNotFound):
			return http.StatusNotFound, svcErr.Msg
		default:
			return http.StatusInternalServerError, svcErr.Msg
		}
	default:
		return http.StatusInternalServerError, errInternal
	}
}

// commandResult is the metrics label for the outcome of a command.
func commandResult(err error) string {
	switch {
	case err == nil:
		return metrics.ResultApplied
	case errors.Is(err, service.ErrInvalidInput):
		return metrics.ResultInvalid
	case errors.Is(err, service.ErrNotFound):
		return metrics.ResultNotFound
	default:
		return metrics.ResultError
	}
}

// respondError logs err and writes the classified error response. Server
// errors are logged at error level, client errors at info.
func (h *Handler) respondError(c *gin.Context, err error, logKey string, kv ...interface{}) {
	code, msg := classify(err)
	fields := append([]interface{}{"err", err, "status", code, "request_id", requestID(c)}, kv...)
	if code >= http.StatusInternalServerError {
		h.log.Errorw(logKey, fields...)
	} else {
		h.log.Infow(logKey, fields...)
	}
	c.AbortWithStatusJSON(code, errorBody{Detail: msg})
}

// badRequest answers 400 for malformed requests that never reach a service.
func (h *Handler) badRequest(c *gin.Context, msg, logKey string, err error) {
	h.log.Infow(logKey, "err", err, "request_id", requestID(c))
	c.AbortWithStatusJSON(http.StatusBadRequest, errorBody{Detail: msg})
}
