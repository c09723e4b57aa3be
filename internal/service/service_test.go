package service_test

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jayadityadev/social-media-api/internal/access"
	"github.com/jayadityadev/social-media-api/internal/config"
	"github.com/jayadityadev/social-media-api/internal/models"
	"github.com/jayadityadev/social-media-api/internal/repository"
	"github.com/jayadityadev/social-media-api/internal/service"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testJWTSecret = "test-secret-key-for-unit-tests"

func newTestService(t *testing.T) *service.Service {
	t.Helper()
	ctx := context.Background()
	db, err := repository.Open(ctx, repository.DriverSQLite, ":memory:")
	require.NoError(t, err)
	log, _ := logtest.NewNullLogger()
	repo, err := repository.NewRepository(db, log)
	require.NoError(t, err)
	require.NoError(t, repo.EnsureSchema(ctx))
	t.Cleanup(func() { repo.Close() })

	cfg := &config.Config{
		JWTSecret:  testJWTSecret,
		JWTExpiry:  30 * time.Minute,
		BcryptCost: bcrypt.MinCost,
	}
	return service.NewService(repo, log, cfg)
}

func register(t *testing.T, svc *service.Service, email string) access.Caller {
	t.Helper()
	user, err := svc.Register(context.Background(), email, "pw1")
	require.NoError(t, err)
	return access.Caller{ID: user.ID}
}

func createPost(t *testing.T, svc *service.Service, c access.Caller, title string, published bool) *models.Post {
	t.Helper()
	post, err := svc.CreatePost(context.Background(), c, service.PostInput{
		Title: title, Content: "content", Category: models.DefaultCategory, Published: published,
	})
	require.NoError(t, err)
	return post
}

func signToken(t *testing.T, secret string, claims jwt.Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestRegister_Success(t *testing.T) {
	svc := newTestService(t)

	user, err := svc.Register(context.Background(), "a@x.com", "pw1")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "a@x.com", user.Email)
	assert.NotEqual(t, "pw1", user.PasswordHash)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := newTestService(t)
	register(t, svc, "a@x.com")

	_, err := svc.Register(context.Background(), "a@x.com", "other")
	assert.ErrorIs(t, err, models.ErrConflict)
}

func TestRegister_InvalidInput(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"empty email", "", "pw"},
		{"not an email", "nobody", "pw"},
		{"display name form", "Bob <bob@x.com>", "pw"},
		{"empty password", "a@x.com", ""},
		{"password over 72 bytes", "a@x.com", strings.Repeat("p", 73)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tc.email, tc.password)
			assert.ErrorIs(t, err, models.ErrValidation)
		})
	}
}

func TestRegister_NormalizesEmail(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, " Bob@X.COM ", "pw1")
	require.NoError(t, err)
	assert.Equal(t, "Bob@x.com", user.Email)

	_, err = svc.Register(ctx, "Bob@x.com", "pw2")
	assert.ErrorIs(t, err, models.ErrConflict)

	for _, email := range []string{"Bob@x.com", " Bob@X.COM ", "Bob@x.Com"} {
		_, err := svc.Login(ctx, email, "pw1")
		assert.NoError(t, err, email)
	}

	_, err = svc.Login(ctx, "bob@x.com", "pw1")
	assert.ErrorIs(t, err, models.ErrUnauthorized)
}

func TestLogin_IssuesTokenForCaller(t *testing.T) {
	svc := newTestService(t)
	c := register(t, svc, "a@x.com")
	ctx := context.Background()

	token, err := svc.Login(ctx, "a@x.com", "pw1")
	require.NoError(t, err)

	got, err := svc.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestLogin_BadCredentials(t *testing.T) {
	svc := newTestService(t)
	register(t, svc, "a@x.com")
	ctx := context.Background()

	_, err := svc.Login(ctx, "a@x.com", "wrong")
	assert.ErrorIs(t, err, models.ErrUnauthorized)

	_, err = svc.Login(ctx, "nobody@x.com", "pw1")
	assert.ErrorIs(t, err, models.ErrUnauthorized)
}

func TestAuthenticate_RejectsBadTokens(t *testing.T) {
	svc := newTestService(t)
	c := register(t, svc, "a@x.com")
	now := time.Now()
	sub := func(s string) jwt.RegisteredClaims {
		return jwt.RegisteredClaims{Subject: s, ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour))}
	}
	validSub := sub(jwtSubject(c))

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"wrong secret", signToken(t, "other-secret", validSub)},
		{"expired", signToken(t, testJWTSecret, jwt.RegisteredClaims{
			Subject:   jwtSubject(c),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute)),
		})},
		{"no expiry", signToken(t, testJWTSecret, jwt.RegisteredClaims{Subject: jwtSubject(c)})},
		{"non numeric subject", signToken(t, testJWTSecret, sub("alice"))},
		{"missing subject", signToken(t, testJWTSecret, sub(""))},
		{"unknown user", signToken(t, testJWTSecret, sub("9999"))},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Authenticate(context.Background(), tc.token)
			assert.ErrorIs(t, err, models.ErrUnauthorized)
		})
	}
}

func TestAuthenticate_DeletedUser(t *testing.T) {
	svc := newTestService(t)
	register(t, svc, "a@x.com")
	ctx := context.Background()

	token, err := svc.Login(ctx, "a@x.com", "pw1")
	require.NoError(t, err)
	c, err := svc.Authenticate(ctx, token)
	require.NoError(t, err)

	_, err = svc.DeleteUser(ctx, c, c.ID)
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, token)
	assert.ErrorIs(t, err, models.ErrUnauthorized)
}

func jwtSubject(c access.Caller) string {
	return strconv.FormatInt(c.ID, 10)
}
