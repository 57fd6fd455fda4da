package handlers

import (
	"net/http"

	"itemdesk/internal/flash"
	"itemdesk/internal/views"

	"github.com/gin-gonic/gin"
)

// User-facing notices.
const (
	noticeUsernameTaken      = "Username already exists."
	noticeRegistered         = "Registration successful! Please log in."
	noticeLoginFailed        = "Login failed! Invalid username or password."
	noticeLoggedOut          = "You have been logged out."
	noticeItemCreated        = "New item added successfully!"
	noticeItemNotFound       = "Item not found!"
	noticeItemUpdated        = "Item updated successfully!"
	noticeCredentialsMissing = "Username and password are required."
	noticeNameRequired       = "Name is required."
	noticePasswordTooLong    = "Password is too long."

	noticeLoginDashboard = "You must be logged in to view the dashboard."
	noticeLoginNew       = "You must be logged in to create a new item."
	noticeLoginEdit      = "You must be logged in to edit an item."
	noticeLoginSearch    = "You must be logged in to access the search page."
)

// render fills the per-request parts of page and writes the template.
func (h *Handler) render(c *gin.Context, code int, name string, page views.Page) {
	if n, ok := flash.ReadAndClear(c.Writer, c.Request); ok {
		page.Flash = &n
	}
	if id, ok := currentIdentity(c); ok {
		page.Username = id.Username
	}
	c.HTML(code, name, page)
}

func (h *Handler) redirectWithNotice(c *gin.Context, location string, notice flash.Notice) {
	flash.Write(c.Writer, notice)
	c.Redirect(http.StatusFound, location)
}

// Centralized error logging and response.
func (h *Handler) internalError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err, "request_id", c.GetString(ctxRequestID)}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.HTML(http.StatusInternalServerError, views.ErrorPage, views.Page{
		Title: "Error",
		Error: "Internal server error.",
	})
}

// health godoc
// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
