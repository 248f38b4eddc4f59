package handlers

import (
	"net/http"

	"github.com/sbilibin2017/senda7/internal/cookies"
	"github.com/sbilibin2017/senda7/internal/middlewares"
	"github.com/sbilibin2017/senda7/internal/models"
)

// NewPanelHandler returns the dashboard of the signed-in user.
// @Summary User panel
// @Tags pages
// @Produce json
// @Success 200 {object} models.PanelView
// @Success 303 "Redirect to /login when not signed in"
// @Router /panel [get]
func NewPanelHandler(jar *cookies.Helper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, panelView(w, r, jar))
	}
}

// NewWelcomeHandler returns the page shown right after registration.
// @Summary Welcome page
// @Tags pages
// @Produce json
// @Success 200 {object} models.PanelView
// @Success 303 "Redirect to /login when not signed in"
// @Router /bienvenida [get]
func NewWelcomeHandler(jar *cookies.Helper) http.HandlerFunc {
	return NewPanelHandler(jar)
}

func panelView(w http.ResponseWriter, r *http.Request, jar *cookies.Helper) models.PanelView {
	user := middlewares.GetUserFromContext(r.Context())

	goals := user.Goals
	if goals == nil {
		goals = []string{}
	}

	return models.PanelView{
		Username:     user.Username,
		Country:      user.Country,
		Goals:        goals,
		RegisteredAt: user.CreatedAt,
		Flash:        jar.PopFlash(w, r),
	}
}
