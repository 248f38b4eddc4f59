package jwt

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func newClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)}
}

func TestJWT_Defaults(t *testing.T) {
	j := New()
	assert.Equal(t, DefaultExpiration, j.Exp)
	assert.Equal(t, time.Hour, j.Exp)
	assert.Equal(t, DefaultCookieName, j.CookieName)
}

func TestJWT_GenerateAndValidate(t *testing.T) {
	clock := newClock()
	j := New(WithSecretKey("test-secret"), WithExpiration(time.Minute), WithClock(clock.Now))
	ctx := context.Background()

	token, err := j.Generate(ctx, 42)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	assert.NoError(t, j.Validate(ctx, token))

	claims, err := j.GetClaims(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "42", claims.Subject)
	assert.True(t, claims.ExpiresAt.Time.Equal(clock.now.Add(time.Minute)))
	assert.NotEmpty(t, claims.ID)
}

func TestJWT_GenerateEmptySecret(t *testing.T) {
	j := New()

	token, err := j.Generate(context.Background(), 1)
	assert.ErrorIs(t, err, ErrEmptySecret)
	assert.Empty(t, token)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(-time.Minute))
	ctx := context.Background()

	token, err := j.Generate(ctx, 7)
	require.NoError(t, err)

	err = j.Validate(ctx, token)
	assert.ErrorIs(t, err, ErrTokenExpired)

	claims, err := j.GetClaims(ctx, token)
	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.Nil(t, claims)
}

func TestJWT_ExpiryBoundaryIsInclusive(t *testing.T) {
	clock := newClock()
	j := New(WithSecretKey("test-secret"), WithClock(clock.Now))
	ctx := context.Background()

	token, err := j.Issue(ctx, 3, time.Hour)
	require.NoError(t, err)

	clock.now = clock.now.Add(time.Hour - time.Second)
	assert.NoError(t, j.Validate(ctx, token))

	clock.now = clock.now.Add(time.Second)
	assert.ErrorIs(t, j.Validate(ctx, token), ErrTokenExpired)

	clock.now = clock.now.Add(time.Second)
	assert.ErrorIs(t, j.Validate(ctx, token), ErrTokenExpired)
}

func TestJWT_TokensAreDistinct(t *testing.T) {
	clock := newClock()
	j := New(WithSecretKey("test-secret"), WithClock(clock.Now))
	ctx := context.Background()

	first, err := j.Generate(ctx, 5)
	require.NoError(t, err)
	clock.now = clock.now.Add(10 * time.Minute)
	second, err := j.Generate(ctx, 5)
	require.NoError(t, err)
	sameInstant, err := j.Generate(ctx, 5)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.NotEqual(t, second, sameInstant)

	// first expires at T+60m, second at T+70m
	clock.now = clock.now.Add(45 * time.Minute)
	assert.NoError(t, j.Validate(ctx, first))
	assert.NoError(t, j.Validate(ctx, second))

	clock.now = clock.now.Add(10 * time.Minute)
	assert.ErrorIs(t, j.Validate(ctx, first), ErrTokenExpired)
	assert.NoError(t, j.Validate(ctx, second))
}

func TestJWT_InvalidToken(t *testing.T) {
	j := New(WithSecretKey("secret"))
	ctx := context.Background()

	for _, token := range []string{"", "invalid.token.string", "abc"} {
		err := j.Validate(ctx, token)
		assert.ErrorIs(t, err, ErrTokenMalformed)

		claims, err := j.GetClaims(ctx, token)
		assert.ErrorIs(t, err, ErrTokenMalformed)
		assert.Nil(t, claims)
	}
}

func TestJWT_Validate_WrongSecret(t *testing.T) {
	j1 := New(WithSecretKey("secret1"))
	j2 := New(WithSecretKey("secret2"))
	ctx := context.Background()

	token, err := j1.Generate(ctx, 9)
	require.NoError(t, err)

	assert.ErrorIs(t, j2.Validate(ctx, token), ErrTokenMalformed)
}

func TestJWT_Validate_TamperedPayload(t *testing.T) {
	j := New(WithSecretKey("secret"))
	ctx := context.Background()

	token, err := j.Generate(ctx, 9)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	other, err := j.Generate(ctx, 10)
	require.NoError(t, err)
	parts[1] = strings.Split(other, ".")[1]

	assert.ErrorIs(t, j.Validate(ctx, strings.Join(parts, ".")), ErrTokenMalformed)
}

func TestJWT_Validate_RejectsOtherAlgorithms(t *testing.T) {
	j := New(WithSecretKey("secret"))
	ctx := context.Background()

	claims := Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	require.NoError(t, err)
	assert.ErrorIs(t, j.Validate(ctx, hs512), ErrTokenMalformed)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	assert.ErrorIs(t, j.Validate(ctx, none), ErrTokenMalformed)
}

func TestJWT_Validate_RequiresSubjectAndExpiry(t *testing.T) {
	j := New(WithSecretKey("secret"))
	ctx := context.Background()

	tests := []struct {
		name   string
		claims Claims
	}{
		{
			name:   "NoExpiry",
			claims: Claims{UserID: 1, RegisteredClaims: jwt.RegisteredClaims{Subject: "1"}},
		},
		{
			name:   "NoUserID",
			claims: Claims{RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			}},
		},
		{
			name:   "SubjectMismatch",
			claims: Claims{UserID: 1, RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "2",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, tt.claims).SignedString([]byte("secret"))
			require.NoError(t, err)
			assert.ErrorIs(t, j.Validate(ctx, token), ErrTokenMalformed)
		})
	}
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New()
	ctx := context.Background()

	tests := []struct {
		name          string
		cookie        string
		header        string
		expectedToken string
		expectError   bool
	}{
		{"Cookie", "cookietoken", "", "cookietoken", false},
		{"CookieWinsOverHeader", "cookietoken", "Bearer headertoken", "cookietoken", false},
		{"ValidBearer", "", "Bearer mytoken123", "mytoken123", false},
		{"LowercaseBearer", "", "bearer mytoken123", "mytoken123", false},
		{"NoHeader", "", "", "", true},
		{"InvalidFormat", "", "Token mytoken123", "", true},
		{"TooManyParts", "", "Bearer a b c", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequestWithContext(ctx, http.MethodGet, "/", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: DefaultCookieName, Value: tt.cookie})
			}
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(ctx, req)
			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}

func TestJWT_GetTokenFromRequest_NoToken(t *testing.T) {
	j := New(WithCookieName("session"))
	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: DefaultCookieName, Value: "ignored"})

	_, err := j.GetTokenFromRequest(context.Background(), req)
	assert.ErrorIs(t, err, ErrNoToken)
}
