package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/esenmoda/esen/internal"
	"github.com/esenmoda/esen/internal/domain"
	"github.com/esenmoda/esen/internal/store"
)

// UserService is a mock authentication gate: any non-empty credentials
// log in, and the password is never stored or checked beyond presence.
// It exists to scope carts, favorites, and orders to a person, not to
// protect anything.
type UserService interface {
	// Login signs a user in, creating a profile on first sight of the
	// email. Returns the user and a fresh session token.
	Login(ctx context.Context, email, password string) (*domain.User, string, error)

	// Register creates a profile with a display name, then signs it in.
	Register(ctx context.Context, name, email, password string) (*domain.User, string, error)

	// Logout invalidates a session token. Unknown tokens are a no-op.
	Logout(ctx context.Context, token string) error

	// GetUserBySessionToken resolves a token to its user.
	GetUserBySessionToken(ctx context.Context, token string) (*domain.User, error)

	// UpdateProfile applies a partial profile update; empty patch fields
	// leave the stored value unchanged.
	UpdateProfile(ctx context.Context, userID string, patch domain.ProfilePatch) (*domain.User, error)
}

type userService struct {
	mu       sync.RWMutex
	users    map[string]domain.User // keyed by lowercased email
	sessions map[string]string      // token -> email
	admin    internal.AdminConfig
	store    store.Store
	logger   *slog.Logger
}

// NewUserService creates a UserService. Profiles restore from the
// current user slot; sessions are in-memory and die with the process.
func NewUserService(ctx context.Context, admin internal.AdminConfig, st store.Store, logger *slog.Logger) UserService {
	if logger == nil {
		logger = slog.Default()
	}

	s := &userService{
		users:    make(map[string]domain.User),
		sessions: make(map[string]string),
		admin:    admin,
		store:    st,
		logger:   logger,
	}

	if record, err := st.Load(ctx, store.SlotCurrentUser); err == nil {
		if err := json.Unmarshal(record, &s.users); err != nil {
			logger.Warn("user slot corrupt, starting empty", "error", err)
		}
	} else if !store.IsNotFound(err) {
		logger.Warn("user slot unreadable, starting empty", "error", err)
	}

	return s
}

// persist writes profiles to the user slot. Callers hold s.mu.
func (s *userService) persist(ctx context.Context) {
	record, err := json.Marshal(s.users)
	if err != nil {
		s.logger.Error("failed to marshal user profiles", "error", err)
		return
	}
	if err := s.store.Save(ctx, store.SlotCurrentUser, record); err != nil {
		s.logger.Error("failed to persist user profiles", "error", err)
	}
}

// displayName derives a default profile name from an email address.
func displayName(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}

func (s *userService) signIn(ctx context.Context, name, email, password string) (*domain.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, "", ErrEmailRequired
	}
	if password == "" {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := GenerateSessionID()
	if err != nil {
		return nil, "", domain.Internal(err, "user.signIn", "failed to create session")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[email]
	if !ok {
		if name == "" {
			name = displayName(email)
		}
		user = domain.User{
			ID:    uuid.NewString(),
			Name:  name,
			Email: email,
		}
	}
	user.IsAdmin = email == strings.ToLower(s.admin.Email) && password == s.admin.Password

	s.users[email] = user
	s.sessions[token] = email
	s.persist(ctx)
	return &user, token, nil
}

func (s *userService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	return s.signIn(ctx, "", email, password)
}

func (s *userService) Register(ctx context.Context, name, email, password string) (*domain.User, string, error) {
	if strings.TrimSpace(name) == "" {
		return nil, "", ErrNameRequired
	}
	return s.signIn(ctx, strings.TrimSpace(name), email, password)
}

func (s *userService) Logout(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, token)
	return nil
}

func (s *userService) GetUserBySessionToken(ctx context.Context, token string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	email, ok := s.sessions[token]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	user, ok := s.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, patch domain.ProfilePatch) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for email, user := range s.users {
		if user.ID != userID {
			continue
		}
		if patch.Name != "" {
			user.Name = patch.Name
		}
		if patch.Phone != "" {
			user.Phone = patch.Phone
		}
		if patch.Address != "" {
			user.Address = patch.Address
		}
		if patch.City != "" {
			user.City = patch.City
		}
		if patch.PostalCode != "" {
			user.PostalCode = patch.PostalCode
		}
		s.users[email] = user
		s.persist(ctx)
		return &user, nil
	}
	return nil, domain.ErrUserNotFound
}
