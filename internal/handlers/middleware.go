package handlers

import (
	"net/http"
	"time"

	"itemdesk/internal/flash"
	"itemdesk/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	ctxRequestID    = "requestId"
	ctxIdentity     = "identity"
)

// requestID tags every request with an id, reusing the caller's one if sent.
func (h *Handler) requestID(c *gin.Context) {
	id := c.GetHeader(requestIDHeader)
	if id == "" || len(id) > 128 {
		id = uuid.NewString()
	}
	c.Set(ctxRequestID, id)
	c.Header(requestIDHeader, id)
	c.Next()
}

func (h *Handler) requestLogger(c *gin.Context) {
	start := time.Now()
	c.Next()
	if h.log == nil {
		return
	}
	h.log.Infow("http_request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"latency", time.Since(start),
		"request_id", c.GetString(ctxRequestID),
	)
}

// requireSession lets through only requests with a valid session cookie.
// Everyone else is sent to the login page with notice.
func (h *Handler) requireSession(notice string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := h.sessions.Current(c)
		if !ok {
			if h.log != nil {
				h.log.Infow("session_required", "path", c.Request.URL.Path, "request_id", c.GetString(ctxRequestID))
			}
			flash.Write(c.Writer, flash.Danger(notice))
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		// store in Gin context
		c.Set(ctxIdentity, id)
		c.Next()
	}
}

func currentIdentity(c *gin.Context) (session.Identity, bool) {
	v, ok := c.Get(ctxIdentity)
	if !ok {
		return session.Identity{}, false
	}
	id, ok := v.(session.Identity)
	return id, ok
}
