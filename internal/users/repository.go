// Package users implements CRUD over the persisted user collection.
//
// The collection is stored as a single JSON array under the rentalUsers key
// and rewritten in full on every mutation. That is acceptable here: the
// collection is small and there is exactly one writer per process.
package users

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/rentalconnect/internal/common"
	"github.com/dmitrijs2005/rentalconnect/internal/logging"
	"github.com/dmitrijs2005/rentalconnect/internal/models"
	"github.com/dmitrijs2005/rentalconnect/internal/store"
)

const minPasswordLen = 8

// Draft is the raw registration input. All fields arrive as primitives from
// the view layer; the repository owns normalization and validation.
type Draft struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Password  string
	UserType  models.UserType
}

// Repository owns the persisted user collection.
type Repository struct {
	store store.Store
	log   logging.Logger
	now   func() time.Time
}

func NewRepository(s store.Store, log logging.Logger) *Repository {
	return &Repository{store: s, log: log.With("component", "users"), now: time.Now}
}

// NormalizeEmail lowercases and trims an address. Applied on both write and
// read so email comparison is always case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// All returns the full collection, falling back to the built-in demo users
// when nothing has been persisted yet.
func (r *Repository) All(ctx context.Context) ([]*models.User, error) {
	return loadAll(ctx, r.store)
}

func loadAll(ctx context.Context, s store.Store) ([]*models.User, error) {
	var users []*models.User
	ok, err := store.GetJSON(ctx, s, store.KeyUsers, &users)
	if err != nil {
		return nil, err
	}
	if !ok {
		return seedUsers(), nil
	}
	return users, nil
}

func saveAll(ctx context.Context, s store.Store, users []*models.User) error {
	return store.SetJSON(ctx, s, store.KeyUsers, users)
}

// FindByEmail looks a user up by address, case-insensitively.
// Returns common.ErrNotFound when no user matches.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	users, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	email = NormalizeEmail(email)
	for _, u := range users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, common.ErrNotFound
}

// FindByID returns the user with the given id or common.ErrNotFound.
func (r *Repository) FindByID(ctx context.Context, id int) (*models.User, error) {
	users, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, common.ErrNotFound
}

// FindByCredentials returns the user whose email matches case-insensitively
// and whose password matches exactly. A miss returns common.ErrNotFound;
// that absence, not an error condition, is the invalid-credentials signal.
func (r *Repository) FindByCredentials(ctx context.Context, email, password string) (*models.User, error) {
	u, err := r.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u.Password != password {
		return nil, common.ErrNotFound
	}
	return u, nil
}

// EmailExists reports whether the address is already registered.
func (r *Repository) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := r.FindByEmail(ctx, email)
	if err == nil {
		return true, nil
	}
	if err == common.ErrNotFound {
		return false, nil
	}
	return false, err
}

// Create validates the draft, assigns the next id, stamps the join date and
// persists the grown collection. The new user is returned.
//
// IDs are assigned max(existing)+1 so an id is never reused, even if a
// record was removed from the stored collection out of band.
func (r *Repository) Create(ctx context.Context, d Draft) (*models.User, error) {
	if err := validateDraft(&d); err != nil {
		return nil, err
	}

	email := NormalizeEmail(d.Email)

	var created *models.User
	err := store.RunAtomic(ctx, r.store, func(s store.Store) error {
		users, err := loadAll(ctx, s)
		if err != nil {
			return err
		}

		maxID := 0
		for _, u := range users {
			if u.Email == email {
				return common.NewValidationError("email", "already registered")
			}
			if u.ID > maxID {
				maxID = u.ID
			}
		}

		u := &models.User{
			ID:        maxID + 1,
			FirstName: strings.TrimSpace(d.FirstName),
			LastName:  strings.TrimSpace(d.LastName),
			Email:     email,
			Password:  d.Password,
			Phone:     strings.TrimSpace(d.Phone),
			UserType:  d.UserType,
			Joined:    r.now().Format("2006-01-02"),
		}
		if u.IsOwner() {
			u.Properties = []int{}
		} else {
			u.Favorites = []int{}
		}

		if err := saveAll(ctx, s, append(users, u)); err != nil {
			return fmt.Errorf("failed to persist user collection: %w", err)
		}
		created = u
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.log.Info(ctx, "user registered", "id", created.ID, "email", created.Email, "userType", created.UserType)
	return created, nil
}

// UpdateFavorites replaces the favorites of the given user and persists the
// collection. Updating a vanished user is silently dropped: in this
// single-user context a missing record means the mutation has nowhere to
// land, which is not worth failing over.
func (r *Repository) UpdateFavorites(ctx context.Context, userID int, favorites []int) error {
	return store.RunAtomic(ctx, r.store, func(s store.Store) error {
		users, err := loadAll(ctx, s)
		if err != nil {
			return err
		}

		for _, u := range users {
			if u.ID == userID {
				u.Favorites = favorites
				return saveAll(ctx, s, users)
			}
		}

		r.log.Debug(ctx, "favorites update dropped, user not found", "userId", userID)
		return nil
	})
}

func validateDraft(d *Draft) error {
	required := []struct {
		field string
		value string
	}{
		{"firstName", d.FirstName},
		{"lastName", d.LastName},
		{"email", d.Email},
		{"phone", d.Phone},
		{"password", d.Password},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return common.NewValidationError(f.field, "is required")
		}
	}
	if len(d.Password) < minPasswordLen {
		return common.NewValidationError("password", "must be at least 8 characters")
	}
	if !d.UserType.Valid() {
		return common.NewValidationError("userType", "must be renter or owner")
	}
	return nil
}
