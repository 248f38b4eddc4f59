// Package router assembles the HTTP routes of the application.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"github.com/sbilibin2017/senda7/internal/cookies"
	"github.com/sbilibin2017/senda7/internal/handlers"
	"github.com/sbilibin2017/senda7/internal/middlewares"
	"github.com/sbilibin2017/senda7/internal/recommendations"
)

// Authenticator registers and signs in users.
type Authenticator interface {
	handlers.Registerer
	handlers.Loginer
}

// Config holds everything the routes depend on.
type Config struct {
	Log        *zap.SugaredLogger
	Production bool
	SwaggerURL string

	// DB scopes mutating requests in a transaction. Nil disables it.
	DB *sqlx.DB

	Jar      *cookies.Helper
	TokenTTL time.Duration
	Tokener  middlewares.Tokener
	Users    middlewares.UserResolver

	Auth        Authenticator
	Goals       handlers.GoalsUpdater
	Recommender handlers.Recommender
}

// New returns the application router.
func New(cfg Config) http.Handler {
	log := cfg.Log
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	tx := func(next http.Handler) http.Handler { return next }
	if cfg.DB != nil {
		tx = middlewares.TxMiddleware(cfg.DB)
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(log))
	r.Use(middlewares.SecureMiddleware(cfg.Production))

	// Public routes
	r.Get("/", http.RedirectHandler("/registro", http.StatusSeeOther).ServeHTTP)
	r.Get("/registro", handlers.NewRegisterPageHandler(cfg.Jar))
	r.With(tx).Post("/registro", handlers.NewRegisterHandler(cfg.Auth, cfg.Jar, cfg.TokenTTL))
	r.Get("/login", handlers.NewLoginPageHandler(cfg.Jar))
	r.Post("/login", handlers.NewLoginHandler(cfg.Auth, cfg.Jar, cfg.TokenTTL))
	r.Get("/logout", handlers.NewLogoutHandler(cfg.Jar))
	r.Post("/logout", handlers.NewLogoutHandler(cfg.Jar))

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(cfg.Tokener, cfg.Users, cfg.Jar))

		r.Get("/panel", handlers.NewPanelHandler(cfg.Jar))
		r.Get("/bienvenida", handlers.NewWelcomeHandler(cfg.Jar))
		r.Get("/objetivos", handlers.NewGoalsPageHandler(cfg.Jar))
		r.With(tx).Post("/objetivos", handlers.NewGoalsHandler(cfg.Goals, cfg.Jar))

		for _, topic := range recommendations.Topics {
			r.Get("/"+string(topic), handlers.NewRecommendationPageHandler(topic))
			r.Post("/"+string(topic), handlers.NewRecommendationHandler(topic, cfg.Recommender))
		}
	})

	if cfg.SwaggerURL != "" {
		r.Get(middlewares.DocsPathPrefix+"*", httpSwagger.Handler(httpSwagger.URL(cfg.SwaggerURL)))
	}

	return r
}
