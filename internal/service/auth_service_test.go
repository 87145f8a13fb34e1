package service

import (
	"context"
	"testing"
	"time"

	"fitlog/workout-logger/internal/domain"
	"fitlog/workout-logger/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testJWTSecret = "test-secret-key"

type fakeUserRepo struct {
	usersByEmail map[string]domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{usersByEmail: make(map[string]domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) (primitive.ObjectID, error) {
	if _, ok := r.usersByEmail[user.Email]; ok {
		return primitive.NilObjectID, repository.ErrDuplicateUser
	}
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = user.CreatedAt
	r.usersByEmail[user.Email] = *user
	return user.ID, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.usersByEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	for _, u := range r.usersByEmail {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func TestRegister(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, testJWTSecret, time.Hour)

	user, err := svc.Register(context.Background(), "Alice", "alice@example.com", "password123")
	require.NoError(t, err)
	assert.False(t, user.ID.IsZero())
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Empty(t, user.PasswordHash, "hash must not leak out of the service")

	// Stored hash is not the plaintext password.
	stored, err := repo.GetByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEqual(t, "password123", stored.PasswordHash)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, testJWTSecret, time.Hour)

	_, err := svc.Register(context.Background(), "Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "Imposter", "alice@example.com", "hunter2hunter2")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, testJWTSecret, time.Hour)

	registered, err := svc.Register(context.Background(), "Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	token, user, err := svc.Login(context.Background(), "alice@example.com", "password123")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Empty(t, user.PasswordHash)

	claims := &jwtClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, registered.ID.Hex(), claims.UserID)
	assert.Equal(t, registered.ID.Hex(), claims.Subject)
}

func TestLoginFailures(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, testJWTSecret, time.Hour)

	_, err := svc.Register(context.Background(), "Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), "alice@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)

	// Unknown email maps to the same failure, no account enumeration.
	_, _, err = svc.Login(context.Background(), "nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}
