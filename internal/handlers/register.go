package handlers

//go:generate mockgen -source=register.go -destination=mock_register.go -package=handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sbilibin2017/senda7/internal/cookies"
	"github.com/sbilibin2017/senda7/internal/logger"
	"github.com/sbilibin2017/senda7/internal/models"
	"github.com/sbilibin2017/senda7/internal/passwords"
)

const (
	msgDuplicateUsername = "El nombre de usuario ya está registrado."
	msgRegistered        = "¡Registro exitoso! Bienvenido a Senda 7."
)

// Registerer defines the interface that the registration service must implement.
type Registerer interface {
	Register(ctx context.Context, username, password, country string) (string, error)
}

// RegisterForm is the registration form.
type RegisterForm struct {
	Username string `form:"usuario" validate:"required,max=64"`
	Password string `form:"password" validate:"required,min=8,max=72"`
	Confirm  string `form:"confirmar" validate:"required,eqfield=Password"`
	Country  string `form:"pais" validate:"required,max=64"`
}

// NewRegisterPageHandler returns the registration form view.
// @Summary Registration page
// @Tags auth
// @Produce json
// @Success 200 {object} models.FormView
// @Router /registro [get]
func NewRegisterPageHandler(jar *cookies.Helper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.FormView{
			Form:  "registro",
			Flash: jar.PopFlash(w, r),
		})
	}
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates an account, starts a session and redirects to the welcome page.
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param usuario formData string true "Username"
// @Param password formData string true "Password, 8 to 72 characters"
// @Param confirmar formData string true "Password confirmation"
// @Param pais formData string true "Country"
// @Success 303 "Redirect to /bienvenida, token cookie set"
// @Failure 400 {object} models.FormView "Validation errors"
// @Failure 409 {object} models.FormView "Username already taken"
// @Failure 500 {object} models.FormView "Internal error"
// @Router /registro [post]
func NewRegisterHandler(svc Registerer, jar *cookies.Helper, ttl time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view := models.FormView{Form: "registro"}

		if err := r.ParseForm(); err != nil {
			view.Error = msgBadForm
			writeJSON(w, http.StatusBadRequest, view)
			return
		}

		form := RegisterForm{
			Username: formValue(r, "usuario"),
			Password: r.PostFormValue("password"),
			Confirm:  r.PostFormValue("confirmar"),
			Country:  formValue(r, "pais"),
		}
		if view.Errors = validateForm(form); len(view.Errors) > 0 {
			writeJSON(w, http.StatusBadRequest, view)
			return
		}

		token, err := svc.Register(r.Context(), form.Username, form.Password, form.Country)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrDuplicateUsername):
				view.Error = msgDuplicateUsername
				writeJSON(w, http.StatusConflict, view)
			case errors.Is(err, passwords.ErrPasswordTooLong):
				view.Errors = []models.FieldError{{Field: "password", Message: "La contraseña es demasiado larga."}}
				writeJSON(w, http.StatusBadRequest, view)
			default:
				logger.Log.Errorw("registration failed", "err", err)
				view.Error = msgInternalError
				writeJSON(w, http.StatusInternalServerError, view)
			}
			return
		}

		jar.SetToken(w, token, ttl)
		jar.SetFlash(w, msgRegistered)
		http.Redirect(w, r, "/bienvenida", http.StatusSeeOther)
	}
}
