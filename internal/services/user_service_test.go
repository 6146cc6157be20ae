package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"camp-backend/internal/models"
	"camp-backend/internal/store"
)

type fakeUserStore struct {
	byUsername map[string]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byUsername: map[string]*models.User{}}
}

func (f *fakeUserStore) Create(_ context.Context, u *models.User) error {
	if _, ok := f.byUsername[u.Username]; ok {
		return store.ErrDuplicateUsername
	}
	f.byUsername[u.Username] = u
	return nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id string) (*models.User, error) {
	for _, u := range f.byUsername {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUserStore) GetByUsername(_ context.Context, username string) (*models.User, error) {
	if u, ok := f.byUsername[username]; ok {
		return u, nil
	}
	return nil, store.ErrNotFound
}

func TestRegisterHashesPassword(t *testing.T) {
	svc := NewUserService(newFakeUserStore())

	user, err := svc.Register(context.Background(), "yogi", "picnic-basket")
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "picnic-basket", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("picnic-basket")))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := NewUserService(newFakeUserStore())

	_, err := svc.Register(context.Background(), "yogi", "one")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "yogi", "two")
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestAuthenticate(t *testing.T) {
	svc := NewUserService(newFakeUserStore())

	registered, err := svc.Register(context.Background(), "yogi", "picnic-basket")
	require.NoError(t, err)

	user, err := svc.Authenticate(context.Background(), "yogi", "picnic-basket")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	_, err = svc.Authenticate(context.Background(), "yogi", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(context.Background(), "booboo", "picnic-basket")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
