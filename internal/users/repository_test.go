package users

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/rentalconnect/internal/common"
	"github.com/dmitrijs2005/rentalconnect/internal/logging"
	"github.com/dmitrijs2005/rentalconnect/internal/models"
	"github.com/dmitrijs2005/rentalconnect/internal/store"
)

func testRepo(t *testing.T) *Repository {
	t.Helper()
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	r := NewRepository(store.NewMemoryStore(), log)
	r.now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }
	return r
}

func validDraft() Draft {
	return Draft{
		FirstName: "Alice",
		LastName:  "Tester",
		Email:     "Alice@Example.COM",
		Phone:     "(555) 000-1111",
		Password:  "longenough",
		UserType:  models.UserTypeRenter,
	}
}

func TestAll_EmptyStoreFallsBackToSeed(t *testing.T) {
	r := testRepo(t)

	users, err := r.All(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "renter@example.com", users[0].Email)
	assert.Equal(t, "owner@example.com", users[1].Email)
}

func TestCreate_AssignsNextIDAndPersists(t *testing.T) {
	r := testRepo(t)
	ctx := context.Background()

	u, err := r.Create(ctx, validDraft())
	require.NoError(t, err)

	// seed users occupy ids 1 and 2
	assert.Equal(t, 3, u.ID)
	assert.Equal(t, "alice@example.com", u.Email, "email must be lowercased on write")
	assert.Equal(t, "2024-06-01", u.Joined)

	found, err := r.FindByEmail(ctx, "ALICE@example.com")
	require.NoError(t, err)
	if diff := cmp.Diff(u, found); diff != "" {
		t.Fatalf("created and looked-up users differ (-want +got):\n%s", diff)
	}
}

func TestCreate_RenterGetsFavoritesOwnerGetsProperties(t *testing.T) {
	r := testRepo(t)
	ctx := context.Background()

	renter, err := r.Create(ctx, validDraft())
	require.NoError(t, err)
	assert.Equal(t, []int{}, renter.Favorites)
	assert.Nil(t, renter.Properties)

	d := validDraft()
	d.Email = "owner2@example.com"
	d.UserType = models.UserTypeOwner
	owner, err := r.Create(ctx, d)
	require.NoError(t, err)
	assert.Equal(t, []int{}, owner.Properties)
	assert.Nil(t, owner.Favorites)
}

func TestCreate_DuplicateEmailIsRejectedCaseInsensitively(t *testing.T) {
	r := testRepo(t)
	ctx := context.Background()

	before, err := r.All(ctx)
	require.NoError(t, err)

	d := validDraft()
	d.Email = "RENTER@example.com" // seed user, different case
	_, err = r.Create(ctx, d)
	require.Error(t, err)
	require.True(t, common.IsValidation(err))

	after, err := r.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(before), len(after), "failed create must not grow the collection")
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Draft)
	}{
		{"empty first name", func(d *Draft) { d.FirstName = "  " }},
		{"empty last name", func(d *Draft) { d.LastName = "" }},
		{"empty email", func(d *Draft) { d.Email = "" }},
		{"empty phone", func(d *Draft) { d.Phone = "\t" }},
		{"empty password", func(d *Draft) { d.Password = "" }},
		{"short password", func(d *Draft) { d.Password = "short" }},
		{"bad user type", func(d *Draft) { d.UserType = "admin" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := testRepo(t)
			d := validDraft()
			tt.mutate(&d)

			_, err := r.Create(context.Background(), d)
			require.Error(t, err)
			assert.True(t, common.IsValidation(err), "expected a ValidationError, got %v", err)
		})
	}
}

func TestFindByCredentials(t *testing.T) {
	r := testRepo(t)
	ctx := context.Background()

	u, err := r.FindByCredentials(ctx, "Renter@Example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "John", u.FirstName)
	assert.Equal(t, models.UserTypeRenter, u.UserType)

	_, err = r.FindByCredentials(ctx, "renter@example.com", "wrongpass")
	require.ErrorIs(t, err, common.ErrNotFound)

	_, err = r.FindByCredentials(ctx, "nobody@example.com", "password123")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestEmailExists(t *testing.T) {
	r := testRepo(t)
	ctx := context.Background()

	ok, err := r.EmailExists(ctx, "OWNER@example.com")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.EmailExists(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUpdateFavorites_RoundTrip(t *testing.T) {
	r := testRepo(t)
	ctx := context.Background()

	require.NoError(t, r.UpdateFavorites(ctx, 1, []int{2, 4}))

	u, err := r.FindByEmail(ctx, "renter@example.com")
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{2, 4}, u.Favorites)
}

func TestUpdateFavorites_VanishedUserIsSilentlyDropped(t *testing.T) {
	r := testRepo(t)
	ctx := context.Background()

	before, err := r.All(ctx)
	require.NoError(t, err)

	err = r.UpdateFavorites(ctx, 999, []int{1})
	require.NoError(t, err, "mutating a vanished record is a no-op, not an error")

	after, err := r.All(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(before, after); diff != "" {
		t.Fatalf("collection changed by a dropped update (-before +after):\n%s", diff)
	}
}

func TestFindByEmail_NotFound(t *testing.T) {
	r := testRepo(t)

	_, err := r.FindByEmail(context.Background(), "ghost@example.com")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestPasswordStrength(t *testing.T) {
	tests := []struct {
		password string
		score    int
		label    StrengthLabel
	}{
		{"abc", 0, StrengthWeak},
		{"abcdefgh", 25, StrengthWeak},
		{"Abcdefgh", 50, StrengthModerate},
		{"Abcdefg1", 75, StrengthStrong},
		{"Abcdef1!", 100, StrengthStrong},
		{"Ab1!", 75, StrengthStrong}, // short but varied
	}

	for _, tt := range tests {
		score, label := PasswordStrength(tt.password)
		assert.Equal(t, tt.score, score, "password %q", tt.password)
		assert.Equal(t, tt.label, label, "password %q", tt.password)
	}
}
