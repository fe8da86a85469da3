package session

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/ucampus/reservas-cli/internal/clients/backend"
	"github.com/ucampus/reservas-cli/internal/entity"
)

// Manager drives the session lifecycle against the backend: login,
// registration, logout and revalidation. It is handed to callers
// explicitly; nothing reads the session ambiently.
type Manager struct {
	api   *backend.Client
	store *Store
	log   *slog.Logger
}

func NewManager(api *backend.Client, store *Store, log *slog.Logger) *Manager {
	return &Manager{api: api, store: store, log: log}
}

func (m *Manager) Current() (entity.User, bool) {
	return m.store.User()
}

// Login authenticates and persists the normalized user plus the bearer
// token, when the backend issues one.
func (m *Manager) Login(ctx context.Context, email, password string) (entity.User, error) {
	email = strings.TrimSpace(email)

	if email == "" {
		return entity.User{}, entity.ErrEmailRequired
	}

	if password == "" {
		return entity.User{}, entity.ErrPasswordRequired
	}

	res, err := m.api.Login(ctx, email, password)
	if err != nil {
		return entity.User{}, err
	}

	if err := m.store.Save(res.User, res.Token); err != nil {
		return entity.User{}, err
	}

	m.log.Info("session started", "user_id", res.User.ID, "role", res.User.Role)

	return res.User, nil
}

// Register creates an account; the user signs in afterwards. The
// backend answers 200 or 201 on success depending on its version.
func (m *Manager) Register(ctx context.Context, user entity.User, password string) error {
	if strings.TrimSpace(user.Email) == "" {
		return entity.ErrEmailRequired
	}

	if password == "" {
		return entity.ErrPasswordRequired
	}

	if strings.TrimSpace(user.FirstName) == "" {
		return entity.ErrNameRequired
	}

	return m.api.CreateUser(ctx, user, password)
}

func (m *Manager) Logout() error {
	if err := m.store.Clear(); err != nil {
		return err
	}

	m.log.Info("session ended")

	return nil
}

// Revalidate reconciles the stored session with the backend's view.
// Server data wins; on transport failure the stored user is kept so a
// flaky backend does not log people out. A 401 (or a locally expired
// token) destroys the session.
func (m *Manager) Revalidate(ctx context.Context) (entity.User, error) {
	stored, ok := m.store.User()
	if !ok {
		return entity.User{}, entity.ErrNoSession
	}

	if m.tokenExpired() {
		if err := m.store.Clear(); err != nil {
			m.log.Error("clear expired session", "error", err)
		}

		return entity.User{}, entity.ErrTokenExpired
	}

	current, err := m.api.CurrentUser(ctx)
	if err != nil {
		if errors.Is(err, entity.ErrUnauthorized) {
			return entity.User{}, err
		}

		m.log.Warn("session revalidation failed, using stored session", "error", err)

		return stored, nil
	}

	// The backend omits fields inconsistently; keep the stored values
	// where the fresh record came back blank.
	if current.ID == 0 {
		current.ID = stored.ID
	}

	if current.Email == "" {
		current.Email = stored.Email
	}

	if current.Role == "" {
		current.Role = stored.Role
	}

	if err := m.store.UpdateUser(current); err != nil {
		return entity.User{}, err
	}

	return current, nil
}

// Reconcile re-reads the session file to pick up external mutation; it
// runs on the periodic job ticker.
func (m *Manager) Reconcile(_ context.Context) error {
	return m.store.Load()
}

// UpdateCurrent refreshes the session record after a self-profile edit.
func (m *Manager) UpdateCurrent(user entity.User) error {
	return m.store.UpdateUser(user)
}

// tokenExpired inspects the stored bearer token's exp claim without
// verifying the signature. Advisory only: opaque or unsigned tokens
// pass through and the backend stays the authority.
func (m *Manager) tokenExpired() bool {
	token := m.store.Token()
	if token == "" {
		return false
	}

	var claims jwt.RegisteredClaims

	_, _, err := jwt.NewParser().ParseUnverified(token, &claims)
	if err != nil {
		return false
	}

	return claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now())
}
