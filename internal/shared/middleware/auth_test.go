package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	user "blog-backend/internal/domains/user"
	"blog-backend/pkg/jwt"
)

// fakeIdentityStore serves a fixed set of accounts keyed by id.
type fakeIdentityStore struct {
	users map[uuid.UUID]*user.User
}

func (f *fakeIdentityStore) GetByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, user.ErrUserNotFound
}

func newAuthFixture(t *testing.T) (*jwt.Manager, *fakeIdentityStore, *user.User) {
	t.Helper()
	tokens := jwt.NewManager("test-secret", 15*time.Minute, time.Hour)
	account := &user.User{
		ID:    uuid.New(),
		Name:  "Alice",
		Email: "alice@example.com",
		Role:  user.RoleAuthor,
	}
	store := &fakeIdentityStore{users: map[uuid.UUID]*user.User{account.ID: account}}
	return tokens, store, account
}

func bearerFor(t *testing.T, tokens *jwt.Manager, u *user.User) string {
	t.Helper()
	token, err := tokens.GenerateAccessToken(u.ID.String(), u.Email, string(u.Role))
	require.NoError(t, err)
	return "Bearer " + token
}

// echoIdentity reports whether an identity was attached and whose it is.
func echoIdentity(c *gin.Context) {
	if identity, ok := GetIdentity(c); ok {
		c.JSON(http.StatusOK, gin.H{"email": identity.Email})
		return
	}
	c.JSON(http.StatusOK, gin.H{"email": nil})
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokens, store, account := newAuthFixture(t)

	r := gin.New()
	r.GET("/protected", AuthMiddleware(tokens, store), echoIdentity)

	tests := []struct {
		name           string
		header         string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "no token",
			header:         "",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Unauthorized - No token provided",
		},
		{
			name:           "not a bearer scheme",
			header:         "Basic abc123",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Unauthorized - No token provided",
		},
		{
			name:           "garbage token",
			header:         "Bearer not.a.token",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Unauthorized - Invalid token",
		},
		{
			name:           "valid token",
			header:         bearerFor(t, tokens, account),
			expectedStatus: http.StatusOK,
			expectedBody:   account.Email,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestAuthMiddlewareSubjectGone(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokens, store, _ := newAuthFixture(t)

	r := gin.New()
	r.GET("/protected", AuthMiddleware(tokens, store), echoIdentity)

	// Token is validly signed but its subject no longer exists in the store.
	ghost := &user.User{ID: uuid.New(), Email: "gone@example.com", Role: user.RoleReader}
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", bearerFor(t, tokens, ghost))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "User not found")
}

func TestAuthMiddlewareRejectsRefreshToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokens, store, account := newAuthFixture(t)

	r := gin.New()
	r.GET("/protected", AuthMiddleware(tokens, store), echoIdentity)

	refresh, err := tokens.GenerateRefreshToken(account.ID.String())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+refresh)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Unauthorized - Invalid token")
}

func TestOptionalAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokens, store, account := newAuthFixture(t)

	r := gin.New()
	r.GET("/public", OptionalAuthMiddleware(tokens, store), echoIdentity)

	t.Run("anonymous passes through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/public", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"email":null`)
	})

	t.Run("invalid token degrades to anonymous", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/public", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"email":null`)
	})

	t.Run("valid token attaches identity", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/public", nil)
		req.Header.Set("Authorization", bearerFor(t, tokens, account))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), account.Email)
	})
}
