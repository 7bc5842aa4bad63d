package messages

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/rentalconnect/internal/common"
	"github.com/dmitrijs2005/rentalconnect/internal/store"
)

func TestSend_AssignsIDAndPersists(t *testing.T) {
	r := NewRepository(store.NewMemoryStore())
	r.now = func() time.Time { return time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC) }
	ctx := context.Background()

	m, err := r.Send(ctx, 1, 2, "Is the apartment still available?")
	require.NoError(t, err)
	assert.NotEmpty(t, m.ID)
	assert.Equal(t, 2, m.PropertyID)
	assert.Equal(t, 1, m.FromUserID)

	msgs, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, m.ID, msgs[0].ID)

	n, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSend_EmptyTextRejected(t *testing.T) {
	r := NewRepository(store.NewMemoryStore())

	_, err := r.Send(context.Background(), 1, 2, "   ")
	require.Error(t, err)
	assert.True(t, common.IsValidation(err))
}

func TestSend_MessagesGetDistinctIDs(t *testing.T) {
	r := NewRepository(store.NewMemoryStore())
	ctx := context.Background()

	m1, err := r.Send(ctx, 1, 1, "first")
	require.NoError(t, err)
	m2, err := r.Send(ctx, 1, 1, "second")
	require.NoError(t, err)
	assert.NotEqual(t, m1.ID, m2.ID)
}

func TestCount_EmptyStore(t *testing.T) {
	r := NewRepository(store.NewMemoryStore())

	n, err := r.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}
