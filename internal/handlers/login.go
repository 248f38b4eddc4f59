package handlers

//go:generate mockgen -source=login.go -destination=mock_login.go -package=handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sbilibin2017/senda7/internal/cookies"
	"github.com/sbilibin2017/senda7/internal/logger"
	"github.com/sbilibin2017/senda7/internal/models"
	"github.com/sbilibin2017/senda7/internal/services"
)

const (
	msgInvalidCredentials = "Usuario o contraseña incorrectos."
	msgLoggedOut          = "Sesión cerrada correctamente"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// LoginForm is the login form.
type LoginForm struct {
	Username string `form:"usuario" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// NewLoginPageHandler returns the login form view.
// @Summary Login page
// @Tags auth
// @Produce json
// @Success 200 {object} models.FormView
// @Router /login [get]
func NewLoginPageHandler(jar *cookies.Helper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.FormView{
			Form:  "login",
			Flash: jar.PopFlash(w, r),
		})
	}
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Verifies credentials, starts a session and redirects to the panel.
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param usuario formData string true "Username"
// @Param password formData string true "Password"
// @Success 303 "Redirect to /panel, token cookie set"
// @Failure 400 {object} models.FormView "Validation errors"
// @Failure 401 {object} models.FormView "Invalid username or password"
// @Failure 500 {object} models.FormView "Internal error"
// @Router /login [post]
func NewLoginHandler(svc Loginer, jar *cookies.Helper, ttl time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view := models.FormView{Form: "login"}

		if err := r.ParseForm(); err != nil {
			view.Error = msgBadForm
			writeJSON(w, http.StatusBadRequest, view)
			return
		}

		form := LoginForm{
			Username: formValue(r, "usuario"),
			Password: r.PostFormValue("password"),
		}
		if view.Errors = validateForm(form); len(view.Errors) > 0 {
			writeJSON(w, http.StatusBadRequest, view)
			return
		}

		token, err := svc.Login(r.Context(), form.Username, form.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				view.Error = msgInvalidCredentials
				writeJSON(w, http.StatusUnauthorized, view)
				return
			}
			logger.Log.Errorw("login failed", "err", err)
			view.Error = msgInternalError
			writeJSON(w, http.StatusInternalServerError, view)
			return
		}

		jar.SetToken(w, token, ttl)
		http.Redirect(w, r, "/panel", http.StatusSeeOther)
	}
}

// NewLogoutHandler clears the session and returns to the login page.
// @Summary Logout
// @Tags auth
// @Success 303 "Redirect to /login, token cookie cleared"
// @Router /logout [get]
// @Router /logout [post]
func NewLogoutHandler(jar *cookies.Helper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jar.ClearToken(w)
		jar.SetFlash(w, msgLoggedOut)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	}
}
