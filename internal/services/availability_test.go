package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-library/internal/models"
	"github.com/sbilibin2017/gw-library/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestIsAvailable(t *testing.T) {
	tests := []struct {
		deleted  bool
		borrowed bool
		want     bool
	}{
		{false, false, true},
		{false, true, false},
		{true, false, false},
		{true, true, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, services.IsAvailable(models.Book{IsDeleted: tt.deleted}, tt.borrowed),
			"deleted=%v borrowed=%v", tt.deleted, tt.borrowed)
	}
}

func TestAvailabilityResolver_Resolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := services.NewMockActiveBorrowReader(ctrl)
	resolver := services.NewAvailabilityResolver(ledger)
	ctx := context.Background()

	// deleted books never hit the ledger
	deleted := &models.Book{ID: 1, IsDeleted: true, IsAvailable: true}
	assert.NoError(t, resolver.Resolve(ctx, deleted))
	assert.False(t, deleted.IsAvailable)

	ledger.EXPECT().GetActiveByBook(gomock.Any(), int64(2)).Return(nil, errors.New("db error"))
	assert.Error(t, resolver.Resolve(ctx, &models.Book{ID: 2}))
}

func TestAvailabilityResolver_ResolveAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := services.NewMockActiveBorrowReader(ctrl)
	resolver := services.NewAvailabilityResolver(ledger)
	ctx := context.Background()

	assert.NoError(t, resolver.ResolveAll(ctx, nil))

	books := []models.Book{{ID: 1}, {ID: 2}, {ID: 3, IsDeleted: true}}
	ledger.EXPECT().ActiveBookIDs(gomock.Any(), []int64{1, 2, 3}).Return(map[int64]struct{}{1: {}}, nil).Times(1)

	assert.NoError(t, resolver.ResolveAll(ctx, books))
	assert.False(t, books[0].IsAvailable)
	assert.True(t, books[1].IsAvailable)
	assert.False(t, books[2].IsAvailable)
}
