package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-cart-keeper/internal/events"
	"github.com/MKhiriev/go-cart-keeper/internal/mock"
	"github.com/MKhiriev/go-cart-keeper/internal/store"
	"github.com/MKhiriev/go-cart-keeper/models"
)

func newTestWishlistSvc(t *testing.T, ctrl *gomock.Controller) (*clientWishlistService, *mock.MockWishlistRepository, *atomic.Int64) {
	t.Helper()
	mockRepo := mock.NewMockWishlistRepository(ctrl)
	bus := events.NewBus(nil)

	svc := NewClientWishlistService(&store.ClientStorages{WishlistRepository: mockRepo}, bus).(*clientWishlistService)
	return svc, mockRepo, countEvents(t, bus, events.WishlistChanged)
}

func TestClientWishlistService_Toggle_Adds(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, published := newTestWishlistSvc(t, ctrl)
	ctx := context.Background()
	p := testProduct(4, "3.00")

	gomock.InOrder(
		repo.EXPECT().IsWishlisted(ctx, int64(4)).Return(false, nil),
		repo.EXPECT().AddWishlistEntry(ctx, p).Return(nil),
	)

	res, err := svc.Toggle(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, models.ToggleResult{Success: true, Action: models.WishlistAdded}, res)
	assert.Equal(t, int64(1), published.Load())
}

func TestClientWishlistService_Toggle_Removes(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, published := newTestWishlistSvc(t, ctrl)
	ctx := context.Background()
	p := testProduct(4, "3.00")

	gomock.InOrder(
		repo.EXPECT().IsWishlisted(ctx, int64(4)).Return(true, nil),
		repo.EXPECT().RemoveWishlistEntry(ctx, int64(4)).Return(nil),
	)

	res, err := svc.Toggle(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, models.WishlistRemoved, res.Action)
	assert.True(t, res.Success)
	assert.Equal(t, int64(1), published.Load())
}

func TestClientWishlistService_Toggle_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, published := newTestWishlistSvc(t, ctrl)
	ctx := context.Background()
	p := testProduct(4, "3.00")

	repo.EXPECT().IsWishlisted(ctx, int64(4)).Return(false, store.ErrScanningRow)

	res, err := svc.Toggle(ctx, p)
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrTransactionFailure)
	assert.False(t, res.Success)
	assert.Zero(t, published.Load())

	_, err = svc.Toggle(ctx, models.Product{ID: 4})
	assert.ErrorIs(t, err, ErrInvalidProduct)
}

// Two concurrent toggles on the same product end with the product absent.
func TestClientWishlistService_Toggle_Serialized(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, published := newTestWishlistSvc(t, ctrl)
	p := testProduct(4, "3.00")

	var present atomic.Bool
	repo.EXPECT().IsWishlisted(gomock.Any(), int64(4)).DoAndReturn(func(context.Context, int64) (bool, error) {
		v := present.Load()
		time.Sleep(5 * time.Millisecond)
		return v, nil
	}).Times(2)
	repo.EXPECT().AddWishlistEntry(gomock.Any(), p).DoAndReturn(func(context.Context, models.Product) error {
		present.Store(true)
		return nil
	})
	repo.EXPECT().RemoveWishlistEntry(gomock.Any(), int64(4)).DoAndReturn(func(context.Context, int64) error {
		present.Store(false)
		return nil
	})

	errs := make(chan error, 2)
	for range 2 {
		go func() {
			_, err := svc.Toggle(context.Background(), p)
			errs <- err
		}()
	}
	require.NoError(t, <-errs)
	require.NoError(t, <-errs)

	assert.False(t, present.Load())
	assert.Equal(t, int64(2), published.Load())
}

func TestClientWishlistService_AddRemove(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, published := newTestWishlistSvc(t, ctrl)
	ctx := context.Background()
	p := testProduct(8, "1")

	repo.EXPECT().AddWishlistEntry(ctx, p).Return(nil)
	repo.EXPECT().RemoveWishlistEntry(ctx, int64(8)).Return(nil)

	require.NoError(t, svc.Add(ctx, p))
	require.NoError(t, svc.Remove(ctx, 8))
	assert.Equal(t, int64(2), published.Load())

	assert.ErrorIs(t, svc.Remove(ctx, -1), ErrInvalidProduct)
	assert.Equal(t, int64(2), published.Load())
}

func TestClientWishlistService_Add_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, published := newTestWishlistSvc(t, ctrl)
	ctx := context.Background()
	p := testProduct(8, "1")

	repo.EXPECT().AddWishlistEntry(ctx, p).Return(errors.New("locked"))

	require.Error(t, svc.Add(ctx, p))
	assert.Zero(t, published.Load())
}

func TestClientWishlistService_CheckMany(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestWishlistSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().WishlistedAmong(ctx, []int64{1, 2, 3}).Return(map[int64]struct{}{2: {}}, nil)

	got, err := svc.CheckMany(ctx, []int64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, map[int64]bool{1: false, 2: true, 3: false}, got)
}

func TestClientWishlistService_CheckMany_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestWishlistSvc(t, ctrl)

	got, err := svc.CheckMany(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestClientWishlistService_CheckMany_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestWishlistSvc(t, ctrl)

	_, err := svc.CheckMany(context.Background(), []int64{1, 0})
	assert.ErrorIs(t, err, ErrInvalidProduct)
}

func TestClientWishlistService_CheckAndList(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestWishlistSvc(t, ctrl)
	ctx := context.Background()

	entries := []models.WishlistEntry{{ID: 2, ProductID: 7}, {ID: 1, ProductID: 3}}
	repo.EXPECT().IsWishlisted(ctx, int64(7)).Return(true, nil)
	repo.EXPECT().ListWishlistEntries(ctx).Return(entries, nil)

	ok, err := svc.Check(ctx, 7)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}
