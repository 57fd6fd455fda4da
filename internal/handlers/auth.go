package handlers

import (
	"errors"
	"net/http"

	"itemdesk/internal/flash"
	"itemdesk/internal/service"
	"itemdesk/internal/session"
	"itemdesk/internal/views"

	"github.com/gin-gonic/gin"
)

// Single, shared credentials form for both register and login.
type credentialsForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// loginForm godoc
// @Summary      Login page
// @Tags         auth
// @Produce      html
// @Success      200
// @Router       / [get]
func (h *Handler) loginForm(c *gin.Context) {
	h.render(c, http.StatusOK, views.LoginPage, views.Page{Title: "Login"})
}

// login godoc
// @Summary      Log in
// @Description  Starts a session and redirects to the dashboard. Failures redirect back to the login page with a notice.
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Param        username  formData  string  true  "Username"
// @Param        password  formData  string  true  "Password"
// @Success      302
// @Router       /login [post]
func (h *Handler) login(c *gin.Context) {
	var input credentialsForm
	if err := c.ShouldBind(&input); err != nil {
		h.redirectWithNotice(c, "/", flash.Danger(noticeCredentialsMissing))
		return
	}

	u, err := h.services.Authenticate(c.Request.Context(), input.Username, input.Password)
	switch {
	case errors.Is(err, service.ErrMissingCredentials):
		h.redirectWithNotice(c, "/", flash.Danger(noticeCredentialsMissing))
		return
	case errors.Is(err, service.ErrInvalidCredentials):
		if h.log != nil {
			h.log.Infow("auth_login_failed", "username", input.Username)
		}
		h.redirectWithNotice(c, "/", flash.Danger(noticeLoginFailed))
		return
	case err != nil:
		h.internalError(c, "auth_login_error", err, "username", input.Username)
		return
	}

	if err := h.sessions.Start(c, session.Identity{UserID: u.ID, Username: u.Username}); err != nil {
		h.internalError(c, "auth_session_start_failed", err, "user_id", u.ID)
		return
	}
	if h.log != nil {
		h.log.Infow("auth_login", "user_id", u.ID)
	}
	c.Redirect(http.StatusFound, "/dashboard")
}

// registerForm godoc
// @Summary      Registration page
// @Tags         auth
// @Produce      html
// @Success      200
// @Router       /register [get]
func (h *Handler) registerForm(c *gin.Context) {
	h.render(c, http.StatusOK, views.RegisterPage, views.Page{Title: "Register"})
}

// register godoc
// @Summary      Register
// @Description  Creates an account and redirects to the login page.
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Param        username  formData  string  true  "Username"
// @Param        password  formData  string  true  "Password"
// @Success      302
// @Router       /register [post]
func (h *Handler) register(c *gin.Context) {
	var input credentialsForm
	if err := c.ShouldBind(&input); err != nil {
		h.redirectWithNotice(c, "/register", flash.Danger(noticeCredentialsMissing))
		return
	}

	id, err := h.services.SignUp(c.Request.Context(), input.Username, input.Password)
	switch {
	case errors.Is(err, service.ErrUsernameTaken):
		h.redirectWithNotice(c, "/register", flash.Danger(noticeUsernameTaken))
		return
	case errors.Is(err, service.ErrMissingCredentials):
		h.redirectWithNotice(c, "/register", flash.Danger(noticeCredentialsMissing))
		return
	case errors.Is(err, service.ErrPasswordTooLong):
		h.redirectWithNotice(c, "/register", flash.Danger(noticePasswordTooLong))
		return
	case err != nil:
		h.internalError(c, "auth_register_failed", err, "username", input.Username)
		return
	}

	if h.log != nil {
		h.log.Infow("auth_registered", "user_id", id)
	}
	h.redirectWithNotice(c, "/", flash.Success(noticeRegistered))
}

// logout godoc
// @Summary      Log out
// @Tags         auth
// @Success      302
// @Router       /logout [get]
func (h *Handler) logout(c *gin.Context) {
	h.sessions.Clear(c)
	h.redirectWithNotice(c, "/", flash.Info(noticeLoggedOut))
}
