package handlers

//go:generate mockgen -source=goals.go -destination=mock_goals.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/senda7/internal/cookies"
	"github.com/sbilibin2017/senda7/internal/logger"
	"github.com/sbilibin2017/senda7/internal/middlewares"
	"github.com/sbilibin2017/senda7/internal/models"
	"github.com/sbilibin2017/senda7/internal/services"
)

const msgGoalsUpdated = "Objetivos actualizados"

// GoalsUpdater replaces the goals of a user.
type GoalsUpdater interface {
	UpdateGoals(ctx context.Context, userID int64, goals []string) error
}

// GoalsForm holds the submitted goals, one per repeated "objetivo" value.
type GoalsForm struct {
	Goals []string `form:"objetivo" validate:"max=20,dive,max=200"`
}

// NewGoalsPageHandler returns the current goals of the user.
// @Summary Goals page
// @Tags pages
// @Produce json
// @Success 200 {object} models.PanelView
// @Success 303 "Redirect to /login when not signed in"
// @Router /objetivos [get]
func NewGoalsPageHandler(jar *cookies.Helper) http.HandlerFunc {
	return NewPanelHandler(jar)
}

// NewGoalsHandler replaces the user's goals and returns to the panel.
// @Summary Update goals
// @Description Replaces the goal list. Blank entries are dropped, order is kept.
// @Tags pages
// @Accept x-www-form-urlencoded
// @Produce json
// @Param objetivo formData []string false "Goal, repeated" collectionFormat(multi)
// @Success 303 "Redirect to /panel"
// @Failure 400 {object} models.FormView "Validation errors"
// @Failure 500 {object} models.FormView "Internal error"
// @Router /objetivos [post]
func NewGoalsHandler(svc GoalsUpdater, jar *cookies.Helper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view := models.FormView{Form: "objetivos"}

		if err := r.ParseForm(); err != nil {
			view.Error = msgBadForm
			writeJSON(w, http.StatusBadRequest, view)
			return
		}

		// blank inputs are dropped before the count is checked
		form := GoalsForm{Goals: services.NormalizeGoals(r.PostForm["objetivo"])}
		if view.Errors = validateForm(form); len(view.Errors) > 0 {
			writeJSON(w, http.StatusBadRequest, view)
			return
		}

		user := middlewares.GetUserFromContext(r.Context())
		if err := svc.UpdateGoals(r.Context(), user.ID, form.Goals); err != nil {
			if errors.Is(err, models.ErrUserNotFound) {
				jar.ClearToken(w)
				jar.SetFlash(w, middlewares.NoticeUserGone)
				http.Redirect(w, r, middlewares.LoginPath, http.StatusSeeOther)
				return
			}
			logger.Log.Errorw("failed to update goals", "user_id", user.ID, "err", err)
			view.Error = msgInternalError
			writeJSON(w, http.StatusInternalServerError, view)
			return
		}

		jar.SetFlash(w, msgGoalsUpdated)
		http.Redirect(w, r, "/panel", http.StatusSeeOther)
	}
}
