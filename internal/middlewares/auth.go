package middlewares

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=middlewares

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/senda7/internal/cookies"
	"github.com/sbilibin2017/senda7/internal/jwt"
	"github.com/sbilibin2017/senda7/internal/logger"
	"github.com/sbilibin2017/senda7/internal/models"
)

// LoginPath is where rejected requests are sent.
const LoginPath = "/login"

// Notices shown on the login page after a rejected request.
const (
	NoticeLoginRequired  = "Debes iniciar sesión para continuar"
	NoticeSessionExpired = "Tu sesión ha expirado, inicia sesión nuevamente"
	NoticeInvalidSession = "Sesión inválida, inicia sesión nuevamente"
	NoticeUserGone       = "El usuario ya no existe"
	NoticeUnavailable    = "No pudimos verificar tu sesión, inténtalo más tarde"
)

// Tokener extracts and verifies session tokens.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// UserResolver loads the current state of a user.
type UserResolver interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// Outcome is the result of authorizing one request: Admitted, Unauthenticated,
// Expired or Invalid.
type Outcome interface {
	outcome()
}

// Admitted carries the user resolved from a valid token.
type Admitted struct {
	User *models.User
}

// Unauthenticated means no usable identity was found. Reason is the notice
// shown to the user; ClearToken tells whether the client still holds a token
// that should be dropped.
type Unauthenticated struct {
	Reason     string
	ClearToken bool
}

// Expired means the token was genuine but past its expiry.
type Expired struct{}

// Invalid means the token could not be verified.
type Invalid struct {
	Err error
}

func (Admitted) outcome()        {}
func (Unauthenticated) outcome() {}
func (Expired) outcome()         {}
func (Invalid) outcome()         {}

// Authorize runs the guard state machine for r. It never retries: the first
// failure decides the outcome.
func Authorize(ctx context.Context, r *http.Request, tokener Tokener, users UserResolver) Outcome {
	tokenString, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		return Unauthenticated{Reason: NoticeLoginRequired}
	}

	claims, err := tokener.GetClaims(ctx, tokenString)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return Expired{}
	case err != nil:
		return Invalid{Err: err}
	}

	user, err := users.GetByID(ctx, claims.UserID)
	if err != nil {
		logger.Log.Errorw("failed to resolve session user", "user_id", claims.UserID, "err", err)
		return Unauthenticated{Reason: NoticeUnavailable}
	}
	if user == nil {
		return Unauthenticated{Reason: NoticeUserGone, ClearToken: true}
	}

	return Admitted{User: user}
}

// AuthMiddleware admits requests carrying a valid session and redirects
// everything else to the login page with a notice.
func AuthMiddleware(tokener Tokener, users UserResolver, jar *cookies.Helper) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			var notice string
			switch o := Authorize(ctx, r, tokener, users).(type) {
			case Admitted:
				next.ServeHTTP(w, r.WithContext(SetUserToContext(ctx, o.User)))
				return
			case Expired:
				jar.ClearToken(w)
				notice = NoticeSessionExpired
			case Invalid:
				logger.Log.Infow("authorization failed", "err", o.Err)
				jar.ClearToken(w)
				notice = NoticeInvalidSession
			case Unauthenticated:
				if o.ClearToken {
					jar.ClearToken(w)
				}
				notice = o.Reason
			}

			jar.SetFlash(w, notice)
			http.Redirect(w, r, LoginPath, http.StatusSeeOther)
		})
	}
}

type userContextKey struct{}

// SetUserToContext stores the authenticated user in ctx.
func SetUserToContext(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// GetUserFromContext returns the authenticated user, or nil outside a guarded route.
func GetUserFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(userContextKey{}).(*models.User)
	return user
}
