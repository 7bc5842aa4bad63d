// Package dashboard derives view-ready collections from the session, user,
// property and message stores. It persists nothing itself except through
// the repositories it delegates to.
package dashboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/rentalconnect/internal/common"
	"github.com/dmitrijs2005/rentalconnect/internal/logging"
	"github.com/dmitrijs2005/rentalconnect/internal/messages"
	"github.com/dmitrijs2005/rentalconnect/internal/models"
	"github.com/dmitrijs2005/rentalconnect/internal/properties"
	"github.com/dmitrijs2005/rentalconnect/internal/session"
	"github.com/dmitrijs2005/rentalconnect/internal/store"
	"github.com/dmitrijs2005/rentalconnect/internal/users"
)

// RenterView is the renter dashboard model.
type RenterView struct {
	SavedProperties []*models.Property
	FavoritesCount  int
	ViewedCount     int
	MessagesCount   int
}

// OwnerStats summarizes an owner's listings.
//
// ActiveListings currently always equals TotalProperties: the collection
// does not yet distinguish active from inactive listings. The field exists
// separately so the distinction can be introduced without reshaping the view.
type OwnerStats struct {
	TotalProperties int
	TotalInquiries  int
	ActiveListings  int
}

// OwnerView is the owner dashboard model.
type OwnerView struct {
	OwnedProperties []*models.Property
	Stats           OwnerStats
}

// Aggregator joins the session manager with the repositories to produce
// dashboard view models.
type Aggregator struct {
	sessions   *session.Manager
	users      *users.Repository
	properties *properties.Repository
	messages   *messages.Repository
	durable    store.Store
	log        logging.Logger
}

func NewAggregator(
	sessions *session.Manager,
	userRepo *users.Repository,
	propRepo *properties.Repository,
	msgRepo *messages.Repository,
	durable store.Store,
	log logging.Logger,
) *Aggregator {
	return &Aggregator{
		sessions:   sessions,
		users:      userRepo,
		properties: propRepo,
		messages:   msgRepo,
		durable:    durable,
		log:        log.With("component", "dashboard"),
	}
}

// ForRenter builds the renter view: the saved listings that still exist plus
// the favorites/viewed/messages counters. FavoritesCount reflects the stored
// favorites set, including entries whose listing has vanished.
func (a *Aggregator) ForRenter(ctx context.Context, user *models.RedactedUser) (*RenterView, error) {
	saved, err := a.properties.FindByIDs(ctx, user.Favorites)
	if err != nil {
		return nil, err
	}

	viewed, err := a.viewed(ctx)
	if err != nil {
		return nil, err
	}

	msgCount, err := a.messages.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &RenterView{
		SavedProperties: saved,
		FavoritesCount:  len(user.Favorites),
		ViewedCount:     len(viewed),
		MessagesCount:   msgCount,
	}, nil
}

// ForOwner builds the owner view: the owned listings ordered by id and the
// aggregate stats over them.
func (a *Aggregator) ForOwner(ctx context.Context, user *models.RedactedUser) (*OwnerView, error) {
	owned, err := a.properties.FindByOwner(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	stats := OwnerStats{
		TotalProperties: len(owned),
		ActiveListings:  len(owned),
	}
	for _, p := range owned {
		stats.TotalInquiries += p.Inquiries
	}

	return &OwnerView{OwnedProperties: owned, Stats: stats}, nil
}

// AddToFavorites inserts propertyID into the user's favorites and persists
// both the collection and the session snapshot. The listing must exist at
// mutation time; ids already in the set are kept once. The new favorites
// set is returned.
func (a *Aggregator) AddToFavorites(ctx context.Context, userID, propertyID int) ([]int, error) {
	if _, err := a.properties.FindByID(ctx, propertyID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NewValidationError("propertyId", "no such property")
		}
		return nil, err
	}

	u, err := a.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			a.log.Debug(ctx, "add-favorite dropped, user not found", "userId", userID)
			return nil, nil
		}
		return nil, err
	}

	for _, id := range u.Favorites {
		if id == propertyID {
			return u.Favorites, nil
		}
	}
	next := append(append([]int{}, u.Favorites...), propertyID)

	if err := a.users.UpdateFavorites(ctx, userID, next); err != nil {
		return nil, fmt.Errorf("failed to update favorites: %w", err)
	}
	if err := a.sessions.SetFavorites(ctx, next); err != nil {
		return nil, fmt.Errorf("failed to refresh session favorites: %w", err)
	}
	return next, nil
}

// RemoveFromFavorites drops propertyID from the user's favorites, persists
// the collection and refreshes the session snapshot so both copies agree
// for the rest of the run. Removing an id that is not in the set is a no-op.
// The new favorites set is returned.
func (a *Aggregator) RemoveFromFavorites(ctx context.Context, userID, propertyID int) ([]int, error) {
	u, err := a.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			a.log.Debug(ctx, "remove-favorite dropped, user not found", "userId", userID)
			return nil, nil
		}
		return nil, err
	}

	next := make([]int, 0, len(u.Favorites))
	for _, id := range u.Favorites {
		if id != propertyID {
			next = append(next, id)
		}
	}

	if err := a.users.UpdateFavorites(ctx, userID, next); err != nil {
		return nil, fmt.Errorf("failed to update favorites: %w", err)
	}
	if err := a.sessions.SetFavorites(ctx, next); err != nil {
		return nil, fmt.Errorf("failed to refresh session favorites: %w", err)
	}
	return next, nil
}

// MarkViewed records that a listing was opened. Each id is kept once.
func (a *Aggregator) MarkViewed(ctx context.Context, propertyID int) error {
	viewed, err := a.viewed(ctx)
	if err != nil {
		return err
	}
	for _, id := range viewed {
		if id == propertyID {
			return nil
		}
	}
	viewed = append(viewed, propertyID)
	return store.SetJSON(ctx, a.durable, store.KeyViewed, viewed)
}

// SetAlerts stores the free-form rental alert preferences.
func (a *Aggregator) SetAlerts(ctx context.Context, prefs string) error {
	return store.SetJSON(ctx, a.durable, store.KeyAlerts, prefs)
}

// Alerts returns the stored alert preferences, empty if none were set.
func (a *Aggregator) Alerts(ctx context.Context) (string, error) {
	var prefs string
	if _, err := store.GetJSON(ctx, a.durable, store.KeyAlerts, &prefs); err != nil {
		return "", err
	}
	return prefs, nil
}

func (a *Aggregator) viewed(ctx context.Context) ([]int, error) {
	var viewed []int
	if _, err := store.GetJSON(ctx, a.durable, store.KeyViewed, &viewed); err != nil {
		return nil, err
	}
	return viewed, nil
}
