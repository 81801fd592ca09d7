package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryRepository is an in-memory Repository for service tests.
type memoryRepository struct {
	users    map[int64]*User
	sessions map[string]*Session
	nextID   int64
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		users:    make(map[int64]*User),
		sessions: make(map[string]*Session),
		nextID:   1,
	}
}

func (m *memoryRepository) CreateUser(ctx context.Context, user *User) error {
	user.ID = m.nextID
	m.nextID++
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	m.users[user.ID] = user
	return nil
}

func (m *memoryRepository) GetUserByID(ctx context.Context, id int64) (*User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (m *memoryRepository) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (m *memoryRepository) IsEmailTaken(ctx context.Context, email string) (bool, error) {
	_, err := m.GetUserByEmail(ctx, email)
	return err == nil, nil
}

func (m *memoryRepository) IsUsernameTaken(ctx context.Context, username string) (bool, error) {
	for _, u := range m.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryRepository) CreateSession(ctx context.Context, session *Session) error {
	session.CreatedAt = time.Now()
	m.sessions[session.ID] = session
	return nil
}

func (m *memoryRepository) GetSessionByRefreshToken(ctx context.Context, refreshToken string) (*Session, error) {
	for _, s := range m.sessions {
		if s.RefreshToken == refreshToken && s.ExpiresAt.After(time.Now()) {
			return s, nil
		}
	}
	return nil, ErrInvalidToken
}

func (m *memoryRepository) DeleteSession(ctx context.Context, id string) error {
	delete(m.sessions, id)
	return nil
}

func (m *memoryRepository) DeleteUserSessions(ctx context.Context, userID int64) error {
	for id, s := range m.sessions {
		if s.UserID == userID {
			delete(m.sessions, id)
		}
	}
	return nil
}

func (m *memoryRepository) DeleteExpiredSessions(ctx context.Context) error {
	for id, s := range m.sessions {
		if !s.ExpiresAt.After(time.Now()) {
			delete(m.sessions, id)
		}
	}
	return nil
}

func testAuthConfig() *Config {
	return &Config{
		JWTSecret:          "test-secret",
		AccessTokenExpiry:  time.Hour,
		RefreshTokenExpiry: 24 * time.Hour,
		BCryptCost:         4, // minimum cost keeps tests fast
	}
}

func newTestAuthService() Service {
	return NewService(newMemoryRepository(), nil, testAuthConfig())
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	resp, err := svc.Register(ctx, &RegisterRequest{
		Email:    "traveler@example.com",
		Username: "traveler",
		Password: "wanderlust123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "Bearer", resp.TokenType)

	login, err := svc.Login(ctx, &LoginRequest{
		Email:    "traveler@example.com",
		Password: "wanderlust123",
	})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterRequest{
		Email:    "traveler@example.com",
		Username: "traveler",
		Password: "wanderlust123",
	})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &RegisterRequest{
		Email:    "Traveler@Example.com", // same email, different case
		Username: "other",
		Password: "wanderlust123",
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterRequest{
		Email:    "traveler@example.com",
		Username: "traveler",
		Password: "wanderlust123",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &LoginRequest{
		Email:    "traveler@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, &LoginRequest{
		Email:    "nobody@example.com",
		Password: "wanderlust123",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials, "unknown email must not be distinguishable")
}

func TestLoginRateLimited(t *testing.T) {
	svc := NewService(newMemoryRepository(), NewMemoryLoginLimiter(3, time.Minute), testAuthConfig())
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterRequest{
		Email:    "traveler@example.com",
		Username: "traveler",
		Password: "wanderlust123",
	})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err = svc.Login(ctx, &LoginRequest{
			Email:    "traveler@example.com",
			Password: "wrong",
		})
		require.ErrorIs(t, err, ErrInvalidCredentials)
	}

	// The account is locked out even with the right password.
	_, err = svc.Login(ctx, &LoginRequest{
		Email:    "traveler@example.com",
		Password: "wanderlust123",
	})
	assert.ErrorIs(t, err, ErrTooManyAttempts)
}

func TestLoginSuccessResetsLimiter(t *testing.T) {
	svc := NewService(newMemoryRepository(), NewMemoryLoginLimiter(3, time.Minute), testAuthConfig())
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterRequest{
		Email:    "traveler@example.com",
		Username: "traveler",
		Password: "wanderlust123",
	})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err = svc.Login(ctx, &LoginRequest{
			Email:    "traveler@example.com",
			Password: "wrong",
		})
		require.ErrorIs(t, err, ErrInvalidCredentials)
	}

	_, err = svc.Login(ctx, &LoginRequest{
		Email:    "traveler@example.com",
		Password: "wanderlust123",
	})
	require.NoError(t, err)

	// The successful login cleared the counter, so the budget is fresh.
	for i := 0; i < 3; i++ {
		_, err = svc.Login(ctx, &LoginRequest{
			Email:    "traveler@example.com",
			Password: "wrong",
		})
		require.ErrorIs(t, err, ErrInvalidCredentials)
	}
}

func TestLoginRateLimitIsolatedPerAccount(t *testing.T) {
	svc := NewService(newMemoryRepository(), NewMemoryLoginLimiter(2, time.Minute), testAuthConfig())
	ctx := context.Background()

	for _, u := range []struct{ email, username string }{
		{"one@example.com", "userone"},
		{"two@example.com", "usertwo"},
	} {
		_, err := svc.Register(ctx, &RegisterRequest{
			Email:    u.email,
			Username: u.username,
			Password: "wanderlust123",
		})
		require.NoError(t, err)
	}

	for i := 0; i < 2; i++ {
		_, err := svc.Login(ctx, &LoginRequest{Email: "one@example.com", Password: "wrong"})
		require.ErrorIs(t, err, ErrInvalidCredentials)
	}

	_, err := svc.Login(ctx, &LoginRequest{Email: "one@example.com", Password: "wanderlust123"})
	assert.ErrorIs(t, err, ErrTooManyAttempts)

	// The other account is unaffected.
	_, err = svc.Login(ctx, &LoginRequest{Email: "two@example.com", Password: "wanderlust123"})
	assert.NoError(t, err)
}

func TestValidateTokenClaims(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	resp, err := svc.Register(ctx, &RegisterRequest{
		Email:    "traveler@example.com",
		Username: "traveler",
		Password: "wanderlust123",
	})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(ctx, resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.Equal(t, "access", claims.Type)
	assert.Equal(t, "traveler@example.com", claims.Email)

	_, err = svc.ValidateToken(ctx, "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshTokenRotates(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	resp, err := svc.Register(ctx, &RegisterRequest{
		Email:    "traveler@example.com",
		Username: "traveler",
		Password: "wanderlust123",
	})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(ctx, resp.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, resp.RefreshToken, refreshed.RefreshToken)

	// The original refresh token died with the rotation.
	_, err = svc.RefreshToken(ctx, resp.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogoutInvalidatesSession(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	resp, err := svc.Register(ctx, &RegisterRequest{
		Email:    "traveler@example.com",
		Username: "traveler",
		Password: "wanderlust123",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, resp.RefreshToken))

	_, err = svc.RefreshToken(ctx, resp.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	// Logging out twice is a no-op, not an error.
	assert.NoError(t, svc.Logout(ctx, resp.RefreshToken))
}
