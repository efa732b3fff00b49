package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"eldercare-booking/internal/data/entity"
	"eldercare-booking/internal/data/repository"
	"eldercare-booking/internal/dto/request"
	"eldercare-booking/pkg/token"
	"eldercare-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeUserRepo enforces email uniqueness the way the database unique
// index does, so the race path is exercised without Postgres.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User

	// hideFromLookup makes FindByEmail miss while Create still collides,
	// simulating a concurrent registration landing between the service's
	// pre-check and its insert.
	hideFromLookup bool
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.users[user.Email]; exists {
		return repository.ErrDuplicateEmail
	}
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.hideFromLookup {
		return nil, nil
	}
	user, ok := f.users[email]
	if !ok {
		return nil, nil
	}
	return user, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, nil
}

func newAuthServiceForTest(t *testing.T) (AuthService, *fakeUserRepo, *token.Service) {
	t.Helper()
	users := newFakeUserRepo()
	tokens := token.NewService("test-secret", time.Hour, zap.NewNop())
	svc := NewAuthService(&repository.Repository{User: users}, tokens, zap.NewNop())
	return svc, users, tokens
}

func registerRequest() *request.RegisterRequest {
	return &request.RegisterRequest{
		Name:     "Alice Example",
		Email:    "alice@example.com",
		Password: "password123",
		Phone:    "9876543210",
	}
}

func TestRegister_Success(t *testing.T) {
	svc, users, tokens := newAuthServiceForTest(t)

	resp, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	// Token resolves back to the stored identity
	userID, err := tokens.Validate(resp.Token)
	require.NoError(t, err)
	require.Equal(t, userID.String(), resp.User.ID)

	// Stored record carries a hash, never the plaintext
	stored, err := users.FindByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.NotEqual(t, "password123", stored.PasswordHash)
	require.True(t, utils.CheckPasswordHash("password123", stored.PasswordHash))
	require.Equal(t, entity.RoleUser, stored.Role)
}

func TestRegister_PublicShapeHasNoPassword(t *testing.T) {
	svc, _, _ := newAuthServiceForTest(t)

	resp, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	require.NotContains(t, strings.ToLower(string(raw)), "password")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, users, _ := newAuthServiceForTest(t)

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	dup := registerRequest()
	dup.Name = "Second Alice"
	_, err = svc.Register(context.Background(), dup)
	require.Error(t, err)
	require.Contains(t, err.Error(), "already registered")
	require.Len(t, users.users, 1)
}

func TestRegister_DuplicateLosesAtConstraint(t *testing.T) {
	svc, users, _ := newAuthServiceForTest(t)

	// Seed a conflicting record that the pre-check cannot see: the
	// store's uniqueness guarantee alone must reject the insert.
	users.users["alice@example.com"] = &entity.User{
		Base:  entity.Base{ID: uuid.New()},
		Email: "alice@example.com",
	}
	users.hideFromLookup = true

	_, err := svc.Register(context.Background(), registerRequest())
	require.Error(t, err)
	require.Contains(t, err.Error(), "already registered")
	require.Len(t, users.users, 1)
}

func TestRegister_ProviderRole(t *testing.T) {
	svc, users, _ := newAuthServiceForTest(t)

	req := registerRequest()
	req.Role = "provider"
	resp, err := svc.Register(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, entity.RoleProvider, resp.User.Role)

	stored, _ := users.FindByEmail(context.Background(), req.Email)
	require.Equal(t, entity.RoleProvider, stored.Role)
}

func TestRegister_ValidationFailure(t *testing.T) {
	svc, users, _ := newAuthServiceForTest(t)

	req := registerRequest()
	req.Email = "not-an-email"
	_, err := svc.Register(context.Background(), req)
	require.Error(t, err)
	require.Contains(t, err.Error(), "validation failed")
	require.Empty(t, users.users)
}

func TestLogin_Success(t *testing.T) {
	svc, _, tokens := newAuthServiceForTest(t)

	reg, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	require.Equal(t, reg.User.ID, resp.User.ID)

	userID, err := tokens.Validate(resp.Token)
	require.NoError(t, err)
	require.Equal(t, reg.User.ID, userID.String())
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _, _ := newAuthServiceForTest(t)

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &request.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid credentials")
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _, _ := newAuthServiceForTest(t)

	_, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	require.Error(t, err)

	// Unknown email and wrong password must be indistinguishable
	require.Contains(t, err.Error(), "invalid credentials")
}
