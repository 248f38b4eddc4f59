package handlers

//go:generate mockgen -source=recommendation.go -destination=mock_recommendation.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/senda7/internal/logger"
	"github.com/sbilibin2017/senda7/internal/models"
	"github.com/sbilibin2017/senda7/internal/recommendations"
)

// Recommender produces advice for a validated input.
type Recommender interface {
	Recommend(ctx context.Context, in recommendations.Input) (string, error)
}

// NewRecommendationPageHandler returns the empty form view of topic.
// @Summary Recommendation form
// @Tags recommendations
// @Produce json
// @Param topic path string true "Topic" Enums(organizacion, gestion_tiempo, bienestar_emocional, crecimiento_espiritual, desarrollo_habitos, reflexion_proposito)
// @Success 200 {object} models.RecommendationView
// @Success 303 "Redirect to /login when not signed in"
// @Router /{topic} [get]
func NewRecommendationPageHandler(topic recommendations.Topic) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.RecommendationView{Topic: string(topic)})
	}
}

// NewRecommendationHandler validates the topic form and returns the advice.
// @Summary Get a recommendation
// @Description Field names depend on the topic, see the topic form.
// @Tags recommendations
// @Accept x-www-form-urlencoded
// @Produce json
// @Param topic path string true "Topic" Enums(organizacion, gestion_tiempo, bienestar_emocional, crecimiento_espiritual, desarrollo_habitos, reflexion_proposito)
// @Success 200 {object} models.RecommendationView
// @Success 303 "Redirect to /login when not signed in"
// @Failure 400 {object} models.RecommendationView "Validation errors"
// @Router /{topic} [post]
func NewRecommendationHandler(topic recommendations.Topic, svc Recommender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view := models.RecommendationView{Topic: string(topic)}

		if err := r.ParseForm(); err != nil {
			view.Error = msgBadForm
			writeJSON(w, http.StatusBadRequest, view)
			return
		}

		in, err := recommendations.Parse(topic, r.PostForm)
		if err != nil {
			var fieldErr *recommendations.FieldError
			if errors.As(err, &fieldErr) {
				msg := "Debe ser un número entero."
				if errors.Is(fieldErr, recommendations.ErrMissingValue) {
					msg = "Este campo es obligatorio."
				}
				view.Errors = []models.FieldError{{Field: fieldErr.Field, Message: msg}}
			} else {
				view.Error = msgBadForm
			}
			writeJSON(w, http.StatusBadRequest, view)
			return
		}

		if view.Errors = validateForm(in); len(view.Errors) > 0 {
			writeJSON(w, http.StatusBadRequest, view)
			return
		}

		advice, err := svc.Recommend(r.Context(), in)
		if err != nil {
			logger.Log.Errorw("failed to build recommendation", "topic", topic, "err", err)
			view.Error = msgInternalError
			writeJSON(w, http.StatusInternalServerError, view)
			return
		}

		view.Recommendation = advice
		writeJSON(w, http.StatusOK, view)
	}
}
