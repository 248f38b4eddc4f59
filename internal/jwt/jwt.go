package jwt

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultExpiration is the lifetime of tokens issued by Generate when no
// expiration option is given.
const DefaultExpiration = time.Hour

// DefaultCookieName is the cookie carrying the bearer token.
const DefaultCookieName = "token"

// Token errors.
var (
	ErrEmptySecret    = errors.New("jwt secret key is empty")
	ErrNoToken        = errors.New("token missing")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenMalformed = errors.New("token malformed")
)

// Claims is the verified payload of a token.
type Claims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// JWT provides methods to generate and validate JWT tokens.
type JWT struct {
	SecretKey  string           // Secret key for signing tokens
	Exp        time.Duration    // Token expiration duration
	CookieName string           // Cookie the token is read from
	now        func() time.Time // Clock used for issuing and verifying
}

// Option configures a JWT.
type Option func(*JWT)

// WithSecretKey sets the HMAC signing secret.
func WithSecretKey(secret string) Option {
	return func(j *JWT) { j.SecretKey = secret }
}

// WithExpiration sets the default token lifetime.
func WithExpiration(exp time.Duration) Option {
	return func(j *JWT) { j.Exp = exp }
}

// WithCookieName sets the cookie GetTokenFromRequest reads.
func WithCookieName(name string) Option {
	return func(j *JWT) { j.CookieName = name }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(j *JWT) { j.now = now }
}

// New creates a new JWT instance
func New(opts ...Option) *JWT {
	j := &JWT{
		Exp:        DefaultExpiration,
		CookieName: DefaultCookieName,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Generate creates a token for userID valid for the configured expiration.
func (j *JWT) Generate(ctx context.Context, userID int64) (string, error) {
	return j.Issue(ctx, userID, j.Exp)
}

// Issue creates a token for userID valid for ttl.
func (j *JWT) Issue(ctx context.Context, userID int64, ttl time.Duration) (string, error) {
	if j.SecretKey == "" {
		return "", ErrEmptySecret
	}

	now := j.now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.SecretKey))
}

// GetClaims verifies the signature and expiry of tokenString and returns its
// claims. A token is expired from the instant its exp is reached.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, j.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenMalformed, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenMalformed
	}
	if claims.UserID <= 0 || claims.Subject != strconv.FormatInt(claims.UserID, 10) {
		return nil, fmt.Errorf("%w: invalid subject", ErrTokenMalformed)
	}
	return claims, nil
}

func (j *JWT) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, errors.New("unexpected signing method")
	}
	return []byte(j.SecretKey), nil
}

// Validate reports whether tokenString is a valid, unexpired token.
func (j *JWT) Validate(ctx context.Context, tokenString string) error {
	_, err := j.GetClaims(ctx, tokenString)
	return err
}

// GetTokenFromRequest extracts the token from the token cookie, falling back
// to the Authorization header.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	if cookie, err := r.Cookie(j.CookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrNoToken
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}
