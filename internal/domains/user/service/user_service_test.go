package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	user "blog-backend/internal/domains/user"
	"blog-backend/pkg/jwt"
)

type fakeUserRepo struct {
	byEmail map[string]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*user.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u *user.User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return user.ErrEmailTaken
	}
	u.ID = uuid.New()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	f.byEmail[u.Email] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			cp := *u
			cp.Password = ""
			return &cp, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*user.User, error) {
	if u, ok := f.byEmail[email]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, user.ErrUserNotFound
}

func (f *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}

func newUserService(repo user.Repository) user.Service {
	return NewUserService(repo, jwt.NewManager("test-secret", 15*time.Minute, time.Hour))
}

func registerReq() *user.RegisterRequest {
	return &user.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "correct horse battery",
	}
}

func TestRegister(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newUserService(repo)

	resp, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	require.NotNil(t, resp.User)
	assert.Equal(t, user.RoleReader, resp.User.Role)
	assert.Empty(t, resp.User.Password)

	// The stored credential is a hash of the submitted password, never the
	// plaintext.
	stored := repo.byEmail["alice@example.com"]
	require.NotNil(t, stored)
	assert.True(t, strings.HasPrefix(stored.Password, "$2"))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("correct horse battery")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newUserService(repo)

	_, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), registerReq())
	assert.ErrorIs(t, err, user.ErrEmailTaken)
}

func TestRegisterExplicitRole(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newUserService(repo)

	req := registerReq()
	req.Role = "author"
	resp, err := svc.Register(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, user.RoleAuthor, resp.User.Role)
}

func TestRegisterValidation(t *testing.T) {
	svc := newUserService(newFakeUserRepo())

	tests := []struct {
		name   string
		mutate func(*user.RegisterRequest)
	}{
		{"missing name", func(r *user.RegisterRequest) { r.Name = "" }},
		{"bad email", func(r *user.RegisterRequest) { r.Email = "not-an-email" }},
		{"short password", func(r *user.RegisterRequest) { r.Password = "short" }},
		{"unknown role", func(r *user.RegisterRequest) { r.Role = "superuser" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := registerReq()
			tt.mutate(req)
			_, err := svc.Register(context.Background(), req)
			assert.ErrorIs(t, err, user.ErrValidation)
		})
	}
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newUserService(repo)

	_, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), &user.LoginRequest{
		Email:    "alice@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Empty(t, resp.User.Password)
}

func TestLoginBadCredentials(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newUserService(repo)

	_, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &user.LoginRequest{
			Email:    "alice@example.com",
			Password: "wrong password",
		})
		assert.ErrorIs(t, err, user.ErrInvalidCredentials)
	})

	t.Run("unknown email gets the same error", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &user.LoginRequest{
			Email:    "nobody@example.com",
			Password: "whatever works",
		})
		assert.ErrorIs(t, err, user.ErrInvalidCredentials)
	})
}
