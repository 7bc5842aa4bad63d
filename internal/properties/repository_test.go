package properties

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/rentalconnect/internal/common"
	"github.com/dmitrijs2005/rentalconnect/internal/models"
	"github.com/dmitrijs2005/rentalconnect/internal/store"
)

func testRepo(t *testing.T) (*Repository, *store.MemoryStore) {
	t.Helper()
	s := store.NewMemoryStore()
	return NewRepository(s), s
}

func persist(t *testing.T, s store.Store, props []*models.Property) {
	t.Helper()
	require.NoError(t, store.SetJSON(context.Background(), s, store.KeyProperties, props))
}

func TestListAll_EmptyStoreFallsBackToSeed(t *testing.T) {
	r, _ := testRepo(t)

	props, err := r.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, props, 4)
	assert.Equal(t, "Modern Downtown Apartment", props[0].Title)
	assert.True(t, props[2].Beds.Studio)
}

func TestListAll_PersistedCollectionWins(t *testing.T) {
	r, s := testRepo(t)
	persist(t, s, []*models.Property{{ID: 10, Title: "Loft"}})

	props, err := r.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, props, 1)
	assert.Equal(t, "Loft", props[0].Title)
}

func TestFindByID(t *testing.T) {
	r, _ := testRepo(t)
	ctx := context.Background()

	p, err := r.FindByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Studio Near University", p.Title)

	_, err = r.FindByID(ctx, 999)
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestFindByOwner_OrderedByIDAscending(t *testing.T) {
	r, s := testRepo(t)
	persist(t, s, []*models.Property{
		{ID: 5, OwnerID: 2},
		{ID: 1, OwnerID: 2},
		{ID: 3, OwnerID: 7},
	})

	props, err := r.FindByOwner(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, props, 2)
	assert.Equal(t, 1, props[0].ID)
	assert.Equal(t, 5, props[1].ID)
}

func TestFindByOwner_UnknownOwnerIsEmpty(t *testing.T) {
	r, _ := testRepo(t)

	props, err := r.FindByOwner(context.Background(), 999)
	require.NoError(t, err)
	assert.Empty(t, props)
}

func TestFindByIDs_OmitsVanishedIDs(t *testing.T) {
	r, _ := testRepo(t)

	// 99 points at nothing; it must be skipped, not reported
	props, err := r.FindByIDs(context.Background(), []int{1, 3, 99})
	require.NoError(t, err)
	require.Len(t, props, 2)
	assert.Equal(t, 1, props[0].ID)
	assert.Equal(t, 3, props[1].ID)
}

func TestFindByIDs_EmptySet(t *testing.T) {
	r, _ := testRepo(t)

	props, err := r.FindByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, props)
}

func TestDraft_RoundTrip(t *testing.T) {
	r, _ := testRepo(t)
	ctx := context.Background()

	d, err := r.LastDraft(ctx)
	require.NoError(t, err)
	assert.Nil(t, d, "no draft stored yet")

	in := &models.PropertyDraft{
		Title: "Garden Flat", Price: 1200, Address: "12 Rose Ln",
		Type: "Apartment", Beds: models.Beds{Count: 1}, Baths: 1, Sqft: 600,
		Amenities: []string{"Garden"},
	}
	require.NoError(t, r.SaveDraft(ctx, in))

	d, err = r.LastDraft(ctx)
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, in, d)
}
