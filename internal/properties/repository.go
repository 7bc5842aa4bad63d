// Package properties provides read access to the property collection.
// The data layer never creates or edits listings; it filters and joins them.
package properties

import (
	"context"
	"sort"

	"github.com/dmitrijs2005/rentalconnect/internal/common"
	"github.com/dmitrijs2005/rentalconnect/internal/models"
	"github.com/dmitrijs2005/rentalconnect/internal/store"
)

// Repository reads the property collection persisted under the properties
// key, falling back to the built-in seed listings when nothing is stored.
type Repository struct {
	store store.Store
}

func NewRepository(s store.Store) *Repository {
	return &Repository{store: s}
}

// ListAll returns every listing in collection order.
func (r *Repository) ListAll(ctx context.Context) ([]*models.Property, error) {
	var props []*models.Property
	ok, err := store.GetJSON(ctx, r.store, store.KeyProperties, &props)
	if err != nil {
		return nil, err
	}
	if !ok {
		return seedProperties(), nil
	}
	return props, nil
}

// FindByID returns the listing with the given id or common.ErrNotFound.
func (r *Repository) FindByID(ctx context.Context, id int) (*models.Property, error) {
	props, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range props {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, common.ErrNotFound
}

// FindByOwner returns the owner's listings ordered by id ascending. An
// unknown owner simply yields an empty result.
func (r *Repository) FindByOwner(ctx context.Context, ownerID int) ([]*models.Property, error) {
	props, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	var out []*models.Property
	for _, p := range props {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// FindByIDs returns the listings whose ids appear in ids, in collection
// order. Ids that reference vanished listings are silently omitted; a
// favorites set may legitimately point at records that no longer exist.
func (r *Repository) FindByIDs(ctx context.Context, ids []int) ([]*models.Property, error) {
	props, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	want := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	var out []*models.Property
	for _, p := range props {
		if _, ok := want[p.ID]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// SaveDraft keeps the unsubmitted "add property" form payload around for
// the next visit.
func (r *Repository) SaveDraft(ctx context.Context, d *models.PropertyDraft) error {
	return store.SetJSON(ctx, r.store, store.KeyLastDraft, d)
}

// LastDraft returns the stored draft, or (nil, nil) when there is none.
func (r *Repository) LastDraft(ctx context.Context) (*models.PropertyDraft, error) {
	var d models.PropertyDraft
	ok, err := store.GetJSON(ctx, r.store, store.KeyLastDraft, &d)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &d, nil
}
