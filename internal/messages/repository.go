// Package messages persists renter inquiries to property owners. The
// collection lives under its own key and is independent of the user and
// property collections.
package messages

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/rentalconnect/internal/common"
	"github.com/dmitrijs2005/rentalconnect/internal/models"
	"github.com/dmitrijs2005/rentalconnect/internal/store"
)

type Repository struct {
	store store.Store
	now   func() time.Time
}

func NewRepository(s store.Store) *Repository {
	return &Repository{store: s, now: time.Now}
}

// List returns all stored messages, oldest first.
func (r *Repository) List(ctx context.Context) ([]*models.Message, error) {
	var msgs []*models.Message
	if _, err := store.GetJSON(ctx, r.store, store.KeyMessages, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

// Count returns the number of stored messages.
func (r *Repository) Count(ctx context.Context) (int, error) {
	msgs, err := r.List(ctx)
	if err != nil {
		return 0, err
	}
	return len(msgs), nil
}

// Send appends a new inquiry and persists the grown collection.
func (r *Repository) Send(ctx context.Context, fromUserID, propertyID int, text string) (*models.Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, common.NewValidationError("text", "is required")
	}

	m := &models.Message{
		ID:         uuid.NewString(),
		PropertyID: propertyID,
		FromUserID: fromUserID,
		Text:       strings.TrimSpace(text),
		SentAt:     r.now().UTC(),
	}

	err := store.RunAtomic(ctx, r.store, func(s store.Store) error {
		var msgs []*models.Message
		if _, err := store.GetJSON(ctx, s, store.KeyMessages, &msgs); err != nil {
			return err
		}
		if err := store.SetJSON(ctx, s, store.KeyMessages, append(msgs, m)); err != nil {
			return fmt.Errorf("failed to persist messages: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}
