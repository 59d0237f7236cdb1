package gift

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGiftRepo struct {
	weddingsByAccount map[string]string
	gifts             map[string]*Gift
	order             []string
}

func newFakeGiftRepo() *fakeGiftRepo {
	return &fakeGiftRepo{
		weddingsByAccount: make(map[string]string),
		gifts:             make(map[string]*Gift),
	}
}

func (r *fakeGiftRepo) GetWeddingID(ctx context.Context, accountID string) (string, error) {
	id, ok := r.weddingsByAccount[accountID]
	if !ok {
		return "", ErrWeddingNotFound
	}
	return id, nil
}

func (r *fakeGiftRepo) Create(ctx context.Context, g *Gift) error {
	copied := *g
	r.gifts[g.ID] = &copied
	r.order = append(r.order, g.ID)
	return nil
}

func (r *fakeGiftRepo) GetByID(ctx context.Context, weddingID, id string) (*Gift, error) {
	g, ok := r.gifts[id]
	if !ok || g.WeddingID != weddingID {
		return nil, ErrGiftNotFound
	}
	copied := *g
	return &copied, nil
}

func (r *fakeGiftRepo) List(ctx context.Context, weddingID string) ([]Gift, error) {
	var result []Gift
	for i := len(r.order) - 1; i >= 0; i-- {
		if g := r.gifts[r.order[i]]; g.WeddingID == weddingID {
			result = append(result, *g)
		}
	}
	return result, nil
}

func (r *fakeGiftRepo) Update(ctx context.Context, g *Gift) error {
	if _, ok := r.gifts[g.ID]; !ok {
		return ErrGiftNotFound
	}
	copied := *g
	r.gifts[g.ID] = &copied
	return nil
}

func (r *fakeGiftRepo) Delete(ctx context.Context, weddingID, id string) error {
	g, ok := r.gifts[id]
	if !ok || g.WeddingID != weddingID {
		return ErrGiftNotFound
	}
	delete(r.gifts, id)
	return nil
}

func TestCreateRequiresWedding(t *testing.T) {
	svc := NewService(newFakeGiftRepo())

	_, err := svc.Create(context.Background(), "acct-1", CreateInput{Name: "Toaster"})
	assert.ErrorIs(t, err, ErrWeddingNotFound)
}

func TestCreateDefaults(t *testing.T) {
	repo := newFakeGiftRepo()
	repo.weddingsByAccount["acct-1"] = "wedding-1"
	svc := NewService(repo)

	g, err := svc.Create(context.Background(), "acct-1", CreateInput{Name: "Toaster", Price: 49.99})
	require.NoError(t, err)
	assert.Equal(t, StatusAvailable, g.Status)
	assert.Equal(t, "USD", g.Currency)
	assert.Equal(t, "other", g.Category)
	assert.Equal(t, "wedding-1", g.WeddingID)
}

func TestUpdateStatusValidation(t *testing.T) {
	repo := newFakeGiftRepo()
	repo.weddingsByAccount["acct-1"] = "wedding-1"
	svc := NewService(repo)

	g, err := svc.Create(context.Background(), "acct-1", CreateInput{Name: "Vase"})
	require.NoError(t, err)

	bad := "wrapped"
	_, err = svc.Update(context.Background(), "acct-1", g.ID, Update{Status: &bad})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	purchased := StatusPurchased
	updated, err := svc.Update(context.Background(), "acct-1", g.ID, Update{Status: &purchased})
	require.NoError(t, err)
	assert.Equal(t, StatusPurchased, updated.Status)
}

func TestStats(t *testing.T) {
	repo := newFakeGiftRepo()
	repo.weddingsByAccount["acct-1"] = "wedding-1"
	svc := NewService(repo)

	mk := func(name, category string, price float64, status string) {
		g, err := svc.Create(context.Background(), "acct-1", CreateInput{Name: name, Category: category, Price: price})
		require.NoError(t, err)
		if status != StatusAvailable {
			s := status
			_, err = svc.Update(context.Background(), "acct-1", g.ID, Update{Status: &s})
			require.NoError(t, err)
		}
	}

	mk("Toaster", "kitchen", 50, StatusAvailable)
	mk("Kettle", "kitchen", 30, StatusPurchased)
	mk("Lamp", "home", 20, StatusReserved)

	stats, err := svc.Stats(context.Background(), "acct-1")
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Available)
	assert.Equal(t, 1, stats.Reserved)
	assert.Equal(t, 1, stats.Purchased)
	assert.InDelta(t, 100.0, stats.TotalValue, 0.001)
	assert.InDelta(t, 30.0, stats.PurchasedValue, 0.001)
	assert.Equal(t, map[string]int{"kitchen": 2, "home": 1}, stats.ByCategory)
}
