package admin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAdminRepo struct {
	users        []UserRow
	guests       []GuestRow
	weddingCount int64
	pendingCount int64
}

func (r *fakeAdminRepo) CountUsers(context.Context) (int64, error)        { return int64(len(r.users)), nil }
func (r *fakeAdminRepo) CountGuests(context.Context) (int64, error)       { return int64(len(r.guests)), nil }
func (r *fakeAdminRepo) CountWeddings(context.Context) (int64, error)     { return r.weddingCount, nil }
func (r *fakeAdminRepo) CountPendingRSVPs(context.Context) (int64, error) { return r.pendingCount, nil }

func (r *fakeAdminRepo) ListUsers(_ context.Context, limit, offset int) ([]UserRow, int64, error) {
	return page(r.users, limit, offset), int64(len(r.users)), nil
}

func (r *fakeAdminRepo) ListGuests(_ context.Context, limit, offset int) ([]GuestRow, int64, error) {
	return page(r.guests, limit, offset), int64(len(r.guests)), nil
}

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

func TestStats(t *testing.T) {
	repo := &fakeAdminRepo{
		users:        make([]UserRow, 4),
		guests:       make([]GuestRow, 9),
		weddingCount: 3,
		pendingCount: 5,
	}
	svc := NewService(repo)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalUsers)
	assert.Equal(t, int64(9), stats.TotalInvites)
	assert.Equal(t, int64(3), stats.ActiveWeddings)
	assert.Equal(t, int64(5), stats.PendingRSVPs)
}

func TestListUsersPagination(t *testing.T) {
	repo := &fakeAdminRepo{users: make([]UserRow, 25)}
	svc := NewService(repo)

	rows, meta, err := svc.ListUsers(context.Background(), 3, 10)
	require.NoError(t, err)
	assert.Len(t, rows, 5)
	assert.Equal(t, 3, meta.Page)
	assert.Equal(t, int64(25), meta.Total)
	assert.Equal(t, int64(3), meta.TotalPages)
}

func TestListGuestsClampsBadInput(t *testing.T) {
	repo := &fakeAdminRepo{guests: make([]GuestRow, 2)}
	svc := NewService(repo)

	rows, meta, err := svc.ListGuests(context.Background(), -1, 1000)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, 1, meta.Page)
	assert.Equal(t, 100, meta.Limit)
	assert.Equal(t, int64(1), meta.TotalPages)
}
