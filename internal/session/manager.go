// Package session tracks the currently authenticated user.
//
// Session state is split across the two storage scopes the same way the
// site splits it: the redacted user snapshot lives durably under
// currentUser, while the logged-in flag and the user id echo live in the
// session scope and die with the process. A session only counts as active
// while both halves are present; a dangling flag with no snapshot is healed
// back to anonymous.
package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/rentalconnect/internal/common"
	"github.com/dmitrijs2005/rentalconnect/internal/logging"
	"github.com/dmitrijs2005/rentalconnect/internal/models"
	"github.com/dmitrijs2005/rentalconnect/internal/store"
	"github.com/dmitrijs2005/rentalconnect/internal/users"
)

// Manager owns the session lifecycle. It never touches the canonical user
// records; only the redacted snapshot.
type Manager struct {
	durable store.Store
	session store.Store
	users   *users.Repository
	log     logging.Logger
}

func NewManager(durable, session store.Store, repo *users.Repository, log logging.Logger) *Manager {
	return &Manager{
		durable: durable,
		session: session,
		users:   repo,
		log:     log.With("component", "session"),
	}
}

// Login checks the credentials against the user collection and, on success,
// persists the redacted user as the active session. A credential miss
// returns common.ErrInvalidCredentials; it is a normal negative result and
// never wraps a storage fault.
func (m *Manager) Login(ctx context.Context, email, password string) (*models.RedactedUser, error) {
	u, err := m.users.FindByCredentials(ctx, email, password)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("credential lookup failed: %w", err)
	}

	red := models.Redact(u)
	if err := m.persist(ctx, red); err != nil {
		return nil, err
	}

	m.log.Info(ctx, "user logged in", "id", red.ID, "userType", red.UserType)
	return red, nil
}

// AutoLogin establishes a session for a freshly registered user without
// re-checking credentials; registration has already proven identity.
func (m *Manager) AutoLogin(ctx context.Context, u *models.User) (*models.RedactedUser, error) {
	red := models.Redact(u)
	if err := m.persist(ctx, red); err != nil {
		return nil, err
	}
	m.log.Info(ctx, "auto-login after registration", "id", red.ID)
	return red, nil
}

// Logout clears both halves of the session state unconditionally. Calling
// it with no active session is a no-op.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.durable.Delete(ctx, store.KeyCurrentUser); err != nil {
		return err
	}
	if err := m.session.Delete(ctx, store.KeyLoggedIn); err != nil {
		return err
	}
	if err := m.session.Delete(ctx, store.KeyUserID); err != nil {
		return err
	}
	m.log.Info(ctx, "user logged out")
	return nil
}

// Current returns the redacted user of the active session, or (nil, nil)
// when anonymous. A logged-in flag without a stored snapshot is not a valid
// session; the stale flag is cleared and anonymous is reported.
func (m *Manager) Current(ctx context.Context) (*models.RedactedUser, error) {
	flag, err := m.session.Get(ctx, store.KeyLoggedIn)
	if err != nil {
		return nil, err
	}
	if flag == nil {
		return nil, nil
	}

	var red models.RedactedUser
	ok, err := store.GetJSON(ctx, m.durable, store.KeyCurrentUser, &red)
	if err != nil {
		return nil, err
	}
	if !ok {
		m.log.Warn(ctx, "dangling logged-in flag without session user, healing")
		if err := m.session.Delete(ctx, store.KeyLoggedIn); err != nil {
			return nil, err
		}
		if err := m.session.Delete(ctx, store.KeyUserID); err != nil {
			return nil, err
		}
		return nil, nil
	}

	return &red, nil
}

// SetFavorites rewrites the favorites of the session snapshot so it stays
// consistent with the canonical record for the rest of the run. No-op when
// anonymous.
func (m *Manager) SetFavorites(ctx context.Context, favorites []int) error {
	red, err := m.Current(ctx)
	if err != nil {
		return err
	}
	if red == nil {
		return nil
	}
	red.Favorites = favorites
	return store.SetJSON(ctx, m.durable, store.KeyCurrentUser, red)
}

func (m *Manager) persist(ctx context.Context, red *models.RedactedUser) error {
	if err := store.SetJSON(ctx, m.durable, store.KeyCurrentUser, red); err != nil {
		return fmt.Errorf("failed to persist session user: %w", err)
	}
	if err := m.session.Set(ctx, store.KeyLoggedIn, []byte("true")); err != nil {
		return err
	}
	return m.session.Set(ctx, store.KeyUserID, []byte(strconv.Itoa(red.ID)))
}
