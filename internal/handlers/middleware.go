package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "requestId"

	corsAllowMethods = "DELETE, GET, HEAD, OPTIONS, PATCH, POST, PUT"
	corsMaxAge       = "600"

	unmatchedRoute = "unmatched"
)

// requestIDMiddleware propagates the caller's X-Request-ID or assigns a new one.
func (h *Handler) requestIDMiddleware(c *gin.Context) {
	id := strings.TrimSpace(c.GetHeader(requestIDHeader))
	if id == "" {
		id = uuid.NewString()
	}
	c.Set(requestIDKey, id)
	c.Header(requestIDHeader, id)
	c.Next()
}

func requestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

func (h *Handler) originAllowed(origin string) bool {
	for _, o := range h.opts.AllowedOrigins {
		if o == "*" || strings.EqualFold(o, origin) {
			return true
		}
	}
	return false
}

// corsMiddleware answers preflight requests and decorates responses for
// allowed origins. The origin is echoed so credentialed requests work.
func (h *Handler) corsMiddleware(c *gin.Context) {
	origin := c.GetHeader("Origin")
	if origin == "" || !h.originAllowed(origin) {
		c.Next()
		return
	}

	c.Header("Access-Control-Allow-Origin", origin)
	c.Header("Access-Control-Allow-Credentials", "true")
	c.Header("Vary", "Origin")

	if c.Request.Method == http.MethodOptions && c.GetHeader("Access-Control-Request-Method") != "" {
		c.Header("Access-Control-Allow-Methods", corsAllowMethods)
		if reqHeaders := c.GetHeader("Access-Control-Request-Headers"); reqHeaders != "" {
			c.Header("Access-Control-Allow-Headers", reqHeaders)
		}
		c.Header("Access-Control-Max-Age", corsMaxAge)
		c.AbortWithStatus(http.StatusNoContent)
		return
	}
	c.Next()
}

// observeMiddleware records request metrics and a debug access log line.
func (h *Handler) observeMiddleware(c *gin.Context) {
	start := time.Now()
	c.Next()

	elapsed := time.Since(start)
	route := c.FullPath()
	if route == "" {
		route = unmatchedRoute
	}
	status := c.Writer.Status()

	h.metrics.RecordRequest(c.Request.Method, route, strconv.Itoa(status), elapsed.Seconds())
	h.log.Debugw("http_request",
		"method", c.Request.Method,
		"route", route,
		"path", c.Request.URL.Path,
		"status", status,
		"duration", elapsed,
		"request_id", requestID(c),
	)
}
